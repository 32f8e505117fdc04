package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// QuestionRepo реализует репозиторий вопросов поверх PostgreSQL
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetByID возвращает вопрос по ID вместе с вариантами ответов
func (r *QuestionRepo) GetByID(ctx context.Context, id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.WithContext(ctx).Preload("Options").First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return &question, nil
}

// ByCategory возвращает все вопросы категории (режим вступительного теста)
func (r *QuestionRepo) ByCategory(ctx context.Context, categoryID uint) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.WithContext(ctx).
		Preload("Options").
		Where("category_id = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", err)
	}
	return questions, nil
}

// NewForUser возвращает вопросы категории без SRS-записи пользователя.
// При level > 0 берутся только вопросы со сложностью не выше level.
func (r *QuestionRepo) NewForUser(ctx context.Context, userID, categoryID uint, level, limit int) ([]entity.Question, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := r.db.WithContext(ctx).
		Preload("Options").
		Where("category_id = ?", categoryID).
		Where("NOT EXISTS (SELECT 1 FROM srs_records WHERE srs_records.question_id = questions.id AND srs_records.user_id = ?)", userID)
	if level > 0 {
		query = query.Where("difficulty <= ?", level)
	}

	var questions []entity.Question
	err := query.Order("id ASC").Limit(limit).Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list new questions: %w", err)
	}
	return questions, nil
}

// DueForUser возвращает вопросы категории, срок повторения которых
// наступил к моменту now, в порядке возрастания last_review_at
// (самые давние повторения первыми).
func (r *QuestionRepo) DueForUser(ctx context.Context, userID, categoryID uint, level int, now int64, limit int) ([]entity.Question, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := r.db.WithContext(ctx).
		Preload("Options").
		Joins("JOIN srs_records ON srs_records.question_id = questions.id AND srs_records.user_id = ?", userID).
		Where("questions.category_id = ?", categoryID).
		Where("srs_records.last_review_at IS NULL OR srs_records.last_review_at + srs_records.interval_days * ? <= ?", entity.MillisPerDay, now)
	if level > 0 {
		query = query.Where("questions.difficulty <= ?", level)
	}

	var questions []entity.Question
	err := query.
		Order("srs_records.last_review_at ASC NULLS FIRST").
		Limit(limit).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list due questions: %w", err)
	}
	return questions, nil
}

// CountByCategory возвращает общее число вопросов в категории
func (r *QuestionRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Question{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count questions: %w", err)
	}
	return count, nil
}

// CreateBatch сохраняет вопросы вместе с вариантами в одной транзакции
func (r *QuestionRepo) CreateBatch(ctx context.Context, questions []entity.Question) error {
	if len(questions) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range questions {
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create questions: %w", err)
	}
	return nil
}
