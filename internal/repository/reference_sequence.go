package repository

import (
	"context"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/pkg/scribearc"
)

// ReferenceSequenceRepository is the uniqueness oracle behind reference code
// generation. It satisfies scribearc.SequenceSource.
type ReferenceSequenceRepository struct {
	*baseRepository
}

// Next bumps and returns the per-year counter with an atomic upsert, so
// concurrent api instances never receive the same sequence number.
func (rsr ReferenceSequenceRepository) Next(ctx context.Context, year int) (int, error) {
	rsr.logger.Debugf("Next reference sequence for year: %d", year)

	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var lastValue int
	err := rsr.db.WithContext(ctx).Raw(`
		INSERT INTO reference_sequences (year, last_value)
		VALUES (?, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = reference_sequences.last_value + 1
		RETURNING last_value`, year).Scan(&lastValue).Error
	if err != nil {
		return 0, err
	}

	return lastValue, nil
}

// Reserve reports whether the candidate code is still free. The unique
// constraint on projects.reference_code remains the final arbiter at insert
// time; this pre-check just lets the generator retry cheaply.
func (rsr ReferenceSequenceRepository) Reserve(ctx context.Context, code string) error {
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := rsr.db.WithContext(ctx).Model(&model.Project{}).
		Where("reference_code = ?", code).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return scribearc.ErrCodeTaken
	}

	return nil
}

var _ scribearc.SequenceSource = (*ReferenceSequenceRepository)(nil)
