package repository

import (
	"context"
	"errors"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"gorm.io/gorm"
)

type ProjectHistoryRepository struct {
	*baseRepository
}

// Append writes a new audit row. History rows are never updated or deleted.
func (phr ProjectHistoryRepository) Append(ctx context.Context, tx *gorm.DB, history *model.ProjectHistory) error {
	phr.logger.Debugf("Append history %s for project: %s", history.Action, history.ProjectID)

	db := phr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Create(history).Error
}

func (phr ProjectHistoryRepository) GetByProjectId(ctx context.Context, tx *gorm.DB, projectId string) ([]*model.ProjectHistory, error) {
	phr.logger.Debugf("Get project histories by project id: %s", projectId)

	db := phr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var histories []*model.ProjectHistory
	if err := db.WithContext(ctx).Model(&model.ProjectHistory{}).Where(model.ProjectHistory{
		ProjectID: projectId,
	}).Order("created_at asc").Find(&histories).Error; err != nil {
		return histories, err
	}

	return histories, nil
}

// LastByAction returns the most recent entry with the given action for the
// project, or nil when there is none. The deadline sweeper uses it to check
// the warning cooldown.
func (phr ProjectHistoryRepository) LastByAction(ctx context.Context, tx *gorm.DB, projectId, action string) (*model.ProjectHistory, error) {
	db := phr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var history model.ProjectHistory
	err := db.WithContext(ctx).Model(&model.ProjectHistory{}).Where(model.ProjectHistory{
		ProjectID: projectId,
		Action:    action,
	}).Order("created_at desc").First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &history, nil
}
