package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// Колонки листа импорта (первая строка — заголовок):
// A категория, B признак вступительного теста (yes/no), C текст вопроса,
// D сложность 1..3, E пояснение, F..I варианты ответов, J номер
// правильного варианта 1..4. Имя листа — имя языка.
const importColumns = 10

// ImportService загружает каталог вопросов из книги .xlsx
type ImportService struct {
	catalogRepo  repository.CatalogRepo
	questionRepo repository.QuestionRepo
}

// NewImportService создает новый сервис импорта
func NewImportService(catalogRepo repository.CatalogRepo, questionRepo repository.QuestionRepo) *ImportService {
	return &ImportService{
		catalogRepo:  catalogRepo,
		questionRepo: questionRepo,
	}
}

// ImportFile читает книгу и сохраняет языки, категории и вопросы.
// Уже существующие языки и категории переиспользуются. Возвращает
// число импортированных вопросов.
func (s *ImportService) ImportFile(ctx context.Context, path string) (int, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	imported := 0
	for _, sheet := range file.GetSheetList() {
		n, err := s.importSheet(ctx, file, sheet)
		if err != nil {
			return imported, fmt.Errorf("sheet %q: %w", sheet, err)
		}
		imported += n
	}
	return imported, nil
}

func (s *ImportService) importSheet(ctx context.Context, file *excelize.File, sheet string) (int, error) {
	rows, err := file.GetRows(sheet)
	if err != nil {
		return 0, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) <= 1 {
		return 0, nil
	}

	language, err := s.ensureLanguage(ctx, strings.TrimSpace(sheet))
	if err != nil {
		return 0, err
	}

	categories := make(map[string]uint)
	var questions []entity.Question

	for i, row := range rows[1:] {
		if len(row) < importColumns {
			log.Printf("[Import] Лист %s, строка %d: мало колонок, пропуск", sheet, i+2)
			continue
		}

		categoryName := strings.TrimSpace(row[0])
		placement := parseYes(row[1])
		text := strings.TrimSpace(row[2])
		if categoryName == "" || text == "" {
			continue
		}

		difficulty, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil || difficulty < entity.DifficultyJunior || difficulty > entity.DifficultySenior {
			return 0, fmt.Errorf("row %d: invalid difficulty %q", i+2, row[3])
		}

		correctIdx, err := strconv.Atoi(strings.TrimSpace(row[9]))
		if err != nil || correctIdx < 1 || correctIdx > 4 {
			return 0, fmt.Errorf("row %d: invalid correct option %q", i+2, row[9])
		}

		categoryID, ok := categories[categoryName]
		if !ok {
			categoryID, err = s.ensureCategory(ctx, language.ID, categoryName, placement)
			if err != nil {
				return 0, err
			}
			categories[categoryName] = categoryID
		}

		question := entity.Question{
			CategoryID:  categoryID,
			Text:        text,
			Difficulty:  difficulty,
			Explanation: strings.TrimSpace(row[4]),
		}
		for j := 0; j < 4; j++ {
			question.Options = append(question.Options, entity.Option{
				Text:      strings.TrimSpace(row[5+j]),
				IsCorrect: j+1 == correctIdx,
			})
		}
		questions = append(questions, question)
	}

	if err := s.questionRepo.CreateBatch(ctx, questions); err != nil {
		return 0, err
	}
	log.Printf("[Import] Лист %s: импортировано вопросов: %d", sheet, len(questions))
	return len(questions), nil
}

func (s *ImportService) ensureLanguage(ctx context.Context, name string) (*entity.Language, error) {
	languages, err := s.catalogRepo.Languages(ctx)
	if err != nil {
		return nil, err
	}
	for i := range languages {
		if strings.EqualFold(languages[i].Name, name) {
			return &languages[i], nil
		}
	}

	lang := &entity.Language{Name: name}
	if err := s.catalogRepo.CreateLanguage(ctx, lang); err != nil {
		return nil, err
	}
	return lang, nil
}

func (s *ImportService) ensureCategory(ctx context.Context, languageID uint, name string, placement bool) (uint, error) {
	existing, err := s.catalogRepo.CategoriesByLanguage(ctx, languageID)
	if err != nil {
		return 0, err
	}
	for _, cc := range existing {
		if strings.EqualFold(cc.Category.Name, name) {
			return cc.Category.ID, nil
		}
	}

	cat := &entity.Category{LanguageID: languageID, Name: name, IsPlacement: placement}
	if err := s.catalogRepo.CreateCategory(ctx, cat); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			return 0, fmt.Errorf("category %q: %w", name, err)
		}
		return 0, err
	}
	return cat.ID, nil
}

func parseYes(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "y", "true", "1", "да":
		return true
	}
	return false
}
