package repository

import (
	"context"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
)

// ScheduleRepo определяет методы для работы с SRS-записями
type ScheduleRepo interface {
	// Get возвращает запись пары (вопрос, пользователь).
	// Если записи нет, возвращает apperrors.ErrNotFound.
	Get(ctx context.Context, questionID, userID uint) (*entity.SRSRecord, error)

	// Insert создаёт новую запись. Повторная вставка для той же пары
	// нарушает уникальный индекс и возвращает apperrors.ErrConflict.
	Insert(ctx context.Context, rec *entity.SRSRecord) error

	// Update перезаписывает параметры существующей записи
	Update(ctx context.Context, rec *entity.SRSRecord) error

	// CountTracked возвращает число вопросов категории, по которым
	// у пользователя есть SRS-запись
	CountTracked(ctx context.Context, userID, categoryID uint) (int64, error)

	// CountWithMinInterval возвращает число SRS-записей пользователя в
	// категории с интервалом не меньше minIntervalDays (критерий "выучено")
	CountWithMinInterval(ctx context.Context, userID, categoryID uint, minIntervalDays int) (int64, error)
}
