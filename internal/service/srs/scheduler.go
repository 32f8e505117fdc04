package srs

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/yourusername/codequiz-api/internal/domain/entity"
	"github.com/yourusername/codequiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/codequiz-api/internal/pkg/errors"
)

// ReviewScheduler пересчитывает SRS-параметры вопроса по результату
// ответа (вариант SM-2 с четырьмя оценками качества 0..3)
type ReviewScheduler struct {
	scheduleRepo repository.ScheduleRepo
}

// NewReviewScheduler создает новый планировщик повторений
func NewReviewScheduler(scheduleRepo repository.ScheduleRepo) *ReviewScheduler {
	return &ReviewScheduler{scheduleRepo: scheduleRepo}
}

// NextEasiness пересчитывает коэффициент лёгкости по оценке качества.
// Результат не опускается ниже entity.MinEasiness.
func NextEasiness(easiness float64, quality int) float64 {
	q := float64(quality)
	next := easiness + (0.1 - (3-q)*(0.08+(3-q)*0.02))
	if next < entity.MinEasiness {
		return entity.MinEasiness
	}
	return next
}

// NextRecord вычисляет следующее состояние записи по предыдущему.
// Неверный ответ сбрасывает прогресс на {1 повторение, интервал 1 день},
// первое успешное повторение даёт интервал 6 дней, дальше интервал
// растёт умножением на коэффициент лёгкости.
func NextRecord(prev entity.SRSRecord, quality int) entity.SRSRecord {
	next := prev
	next.Easiness = NextEasiness(prev.Easiness, quality)

	if quality == QualityMiss {
		next.RepetitionCount = 1
		next.IntervalDays = 1
		return next
	}

	if prev.RepetitionCount == 1 {
		next.IntervalDays = 6
	} else {
		// Интервал растёт на прежнем коэффициенте, пересчитанный
		// применяется со следующего повторения
		next.IntervalDays = int(math.Floor(float64(prev.IntervalDays) * prev.Easiness))
	}
	if next.IntervalDays < 1 {
		next.IntervalDays = 1
	}
	next.RepetitionCount = prev.RepetitionCount + 1
	return next
}

// RecordReview фиксирует результат повторения вопроса.
// Для первого знакомства с вопросом вставляется запись с начальными
// параметрами независимо от оценки, для существующей записи параметры
// пересчитываются. now — момент повторения в epoch-миллисекундах.
func (s *ReviewScheduler) RecordReview(ctx context.Context, questionID, userID uint, quality int, now int64) error {
	prev, err := s.scheduleRepo.Get(ctx, questionID, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to load srs record: %w", err)
		}

		rec := &entity.SRSRecord{
			QuestionID:      questionID,
			UserID:          userID,
			Easiness:        entity.InitialEasiness,
			RepetitionCount: entity.InitialRepetitionCount,
			IntervalDays:    entity.InitialIntervalDays,
			LastReviewAt:    &now,
		}
		if err := s.scheduleRepo.Insert(ctx, rec); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				// Конкурентная вставка той же пары, перечитываем и идём
				// по пути обновления
				log.Printf("[Scheduler] Гонка вставки SRS-записи: question=%d user=%d", questionID, userID)
				prev, err = s.scheduleRepo.Get(ctx, questionID, userID)
				if err != nil {
					return fmt.Errorf("failed to reload srs record: %w", err)
				}
			} else {
				return fmt.Errorf("failed to insert srs record: %w", err)
			}
		} else {
			return nil
		}
	}

	next := NextRecord(*prev, quality)
	next.LastReviewAt = &now
	if err := s.scheduleRepo.Update(ctx, &next); err != nil {
		return fmt.Errorf("failed to update srs record: %w", err)
	}
	return nil
}
