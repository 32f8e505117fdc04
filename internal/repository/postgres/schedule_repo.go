package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// ScheduleRepo реализует репозиторий SRS-записей поверх PostgreSQL
type ScheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo создает новый репозиторий SRS-записей
func NewScheduleRepo(db *gorm.DB) *ScheduleRepo {
	return &ScheduleRepo{db: db}
}

// Get возвращает запись пары (вопрос, пользователь)
func (r *ScheduleRepo) Get(ctx context.Context, questionID, userID uint) (*entity.SRSRecord, error) {
	var rec entity.SRSRecord
	err := r.db.WithContext(ctx).
		Where("question_id = ? AND user_id = ?", questionID, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get srs record: %w", err)
	}
	return &rec, nil
}

// Insert создаёт новую запись. Уникальный индекс (question_id, user_id)
// гарантирует не больше одной записи на пару, дубликат превращается
// в ErrConflict.
func (r *ScheduleRepo) Insert(ctx context.Context, rec *entity.SRSRecord) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			log.Printf("[ScheduleRepo] Дубликат SRS-записи: question=%d user=%d", rec.QuestionID, rec.UserID)
			return fmt.Errorf("%w: srs record already exists for question %d", apperrors.ErrConflict, rec.QuestionID)
		}
		return fmt.Errorf("failed to insert srs record: %w", err)
	}
	return nil
}

// Update перезаписывает параметры существующей записи
func (r *ScheduleRepo) Update(ctx context.Context, rec *entity.SRSRecord) error {
	result := r.db.WithContext(ctx).
		Model(&entity.SRSRecord{}).
		Where("question_id = ? AND user_id = ?", rec.QuestionID, rec.UserID).
		Updates(map[string]interface{}{
			"easiness":         rec.Easiness,
			"repetition_count": rec.RepetitionCount,
			"interval_days":    rec.IntervalDays,
			"last_review_at":   rec.LastReviewAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update srs record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountTracked возвращает число вопросов категории с SRS-записью пользователя
func (r *ScheduleRepo) CountTracked(ctx context.Context, userID, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SRSRecord{}).
		Joins("JOIN questions ON questions.id = srs_records.question_id").
		Where("srs_records.user_id = ? AND questions.category_id = ?", userID, categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tracked questions: %w", err)
	}
	return count, nil
}

// CountWithMinInterval возвращает число записей пользователя в категории
// с интервалом не меньше minIntervalDays
func (r *ScheduleRepo) CountWithMinInterval(ctx context.Context, userID, categoryID uint, minIntervalDays int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.SRSRecord{}).
		Joins("JOIN questions ON questions.id = srs_records.question_id").
		Where("srs_records.user_id = ? AND questions.category_id = ? AND srs_records.interval_days >= ?", userID, categoryID, minIntervalDays).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count learned questions: %w", err)
	}
	return count, nil
}
