package repository

import (
	"context"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	*baseRepository
}

// Create persists a new project together with its first history entry. The
// unique constraint on reference_code is the final arbiter for code
// uniqueness; a violation here aborts the whole intake.
func (pr ProjectRepository) Create(ctx context.Context, tx *gorm.DB, project *model.Project, history *model.ProjectHistory) error {
	pr.logger.Debugf("Create project with reference code: %s", project.ReferenceCode)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db.WithContext(ctx), func(tx2 *gorm.DB) error {
		if err := tx2.Create(project).Error; err != nil {
			return err
		}

		history.ProjectID = project.ID

		return tx2.Create(history).Error
	})
}

func (pr ProjectRepository) GetById(ctx context.Context, tx *gorm.DB, projectId string) (*model.Project, error) {
	pr.logger.Debugf("Get project by id: %s", projectId)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").Preload("Writer").Preload("Package").
		Where(model.Project{BaseModel: model.BaseModel{ID: projectId}}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

func (pr ProjectRepository) GetByReferenceCode(ctx context.Context, tx *gorm.DB, referenceCode string) (*model.Project, error) {
	pr.logger.Debugf("Get project by reference code: %s", referenceCode)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").Preload("Writer").Preload("Package").
		Where(model.Project{ReferenceCode: referenceCode}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// GetByTrackingSecret resolves the anonymous tracking capability token.
func (pr ProjectRepository) GetByTrackingSecret(ctx context.Context, tx *gorm.DB, trackingSecret string) (*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var project model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").Preload("Package").
		Where(model.Project{TrackingSecret: trackingSecret}).
		First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// engineColumns are the fields the lifecycle engine may change. Kept explicit
// so a conditional update never touches anything else.
var engineColumns = []string{
	"status", "writer_id",
	"discount_amount", "additional_charges", "writer_share", "admin_share",
	"estimated_completion_at", "completed_at",
}

// CommitEngineResult writes the engine-mutated project state and its history
// entry atomically, conditional on the status still being fromStatus. The
// compare-and-swap makes concurrent actors lose cleanly with
// ErrStatusConflict instead of clobbering each other.
func (pr ProjectRepository) CommitEngineResult(ctx context.Context, tx *gorm.DB, project *model.Project, fromStatus string, history *model.ProjectHistory) error {
	pr.logger.Debugf("Commit project %s transition %s -> %s", project.ID, fromStatus, project.Status)

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return pr.withTx(db.WithContext(ctx), func(tx2 *gorm.DB) error {
		result := tx2.Model(&model.Project{}).
			Select(engineColumns).
			Where("id = ? AND status = ?", project.ID, fromStatus).
			Updates(map[string]any{
				"status":                  project.Status,
				"writer_id":               project.WriterID,
				"discount_amount":         project.DiscountAmount,
				"additional_charges":      project.AdditionalCharges,
				"writer_share":            project.WriterShare,
				"admin_share":             project.AdminShare,
				"estimated_completion_at": project.EstimatedCompletionAt,
				"completed_at":            project.CompletedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStatusConflict
		}

		history.ProjectID = project.ID

		return tx2.Create(history).Error
	})
}

// List returns a page of projects, optionally filtered by status, newest first.
func (pr ProjectRepository) List(ctx context.Context, tx *gorm.DB, status string, page, pageSize uint) ([]*model.Project, int64, error) {
	pr.logger.Debugf("List projects, status filter: %q, page: %d", status, page)

	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}

	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	query := db.WithContext(ctx).Model(&model.Project{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []*model.Project
	if err := query.
		Preload("Client").Preload("Writer").Preload("Package").
		Order("created_at desc").
		Offset(int((page - 1) * pageSize)).Limit(int(pageSize)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// ListActive returns every project in an active status, for the risk sweep.
func (pr ProjectRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []*model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").Preload("Writer").
		Where("status IN ?", []string{
			string(scribearc.StatusAssigned),
			string(scribearc.StatusInProgress),
			string(scribearc.StatusReview),
		}).
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// ListByWriter returns the writer's projects, newest first.
func (pr ProjectRepository) ListByWriter(ctx context.Context, tx *gorm.DB, writerId string) ([]*model.Project, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var projects []*model.Project
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Preload("Client").Preload("Package").
		Where("writer_id = ?", writerId).
		Order("created_at desc").
		Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// CountActiveByWriter counts the writer's projects in an active status, used
// for the capacity check on assignment.
func (pr ProjectRepository) CountActiveByWriter(ctx context.Context, tx *gorm.DB, writerId string) (int64, error) {
	db := pr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var count int64
	if err := db.WithContext(ctx).Model(&model.Project{}).
		Where("writer_id = ? AND status IN ?", writerId, []string{
			string(scribearc.StatusAssigned),
			string(scribearc.StatusInProgress),
			string(scribearc.StatusReview),
		}).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
