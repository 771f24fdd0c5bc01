package main

import (
	"context"
	"fmt"
	"time"

	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/database"
	"github.com/scribearc/scribearc/internal/env"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/model"
	"github.com/scribearc/scribearc/internal/queue"
	"github.com/scribearc/scribearc/internal/repository"
	"github.com/scribearc/scribearc/internal/util"
	"github.com/scribearc/scribearc/pkg/scribearc"
	"go.uber.org/zap"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

	sweepInterval, err := time.ParseDuration(env.GetString("SWEEP_INTERVAL", "30m"))
	if err != nil {
		sweepInterval = 30 * time.Minute
	}

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Panic("Error connecting to RabbitMQ: ", err)
	}
	logger.Info("RabbitMQ connected \n")
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()

	repo := repository.NewRepository(db, logger)

	logger.Infof("Deadline sweeper running every %s", sweepInterval)

	ctx := context.Background()

	// run once at startup, then on the ticker
	sweep(ctx, repo, rabbitMQ, &cfg, logger)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		sweep(ctx, repo, rabbitMQ, &cfg, logger)
	}
}

// sweep finds active projects close to (or past) their deadline, appends a
// deadline_warning history entry and publishes an admin notification. The 12h
// cooldown is enforced against the most recent deadline_warning entry.
func sweep(ctx context.Context, repo *repository.Repository, rabbitMQ *queue.RabbitMQ, cfg *config.Config, logger *zap.SugaredLogger) {
	now := time.Now()

	projects, err := repo.Project.ListActive(ctx, nil)
	if err != nil {
		logger.Errorf("Sweep failed to list active projects: %v", err)
		return
	}

	byId := make(map[string]*model.Project, len(projects))
	engineProjects := make([]*scribearc.Project, 0, len(projects))
	for _, p := range projects {
		byId[p.ID] = p
		engineProjects = append(engineProjects, p.ToEngine())
	}

	atRisk := scribearc.FindAtRiskProjects(engineProjects, now, scribearc.DefaultAtRiskThreshold)
	logger.Debugf("Sweep found %d at-risk projects out of %d active", len(atRisk), len(projects))

	for _, ep := range atRisk {
		project := byId[ep.ID]

		lastWarning, err := repo.ProjectHistory.LastByAction(ctx, nil, project.ID, scribearc.ActionDeadlineWarning)
		if err != nil {
			logger.Errorf("Failed to read last warning for project %s: %v", project.ID, err)
			continue
		}

		var lastWarnedAt *time.Time
		if lastWarning != nil {
			lastWarnedAt = lastWarning.CreatedAt
		}

		if !scribearc.ShouldSendDeadlineWarning(lastWarnedAt, now) {
			continue
		}

		hoursRemaining := int(time.Until(project.Deadline).Hours())

		history := model.NewProjectHistory(project.ID, scribearc.HistoryEntry{
			Action: scribearc.ActionDeadlineWarning,
			Notes:  fmt.Sprintf("deadline in %dh", hoursRemaining),
		})
		if err := repo.ProjectHistory.Append(ctx, nil, history); err != nil {
			logger.Errorf("Failed to append deadline warning for project %s: %v", project.ID, err)
			continue
		}

		if cfg.Mail.ADMIN_EMAIL == "" {
			continue
		}

		payload, err := queue.NewNotificationJobPayload("Admin", cfg.Mail.ADMIN_EMAIL, mailer.TemplateDeadlineWarning, mailer.DeadlineWarningData{
			ReferenceCode:  project.ReferenceCode,
			Title:          project.Title,
			Deadline:       project.Deadline.Format(time.RFC1123),
			HoursRemaining: hoursRemaining,
		})
		if err != nil {
			logger.Errorf("Failed to build deadline warning notification for project %s: %v", project.ID, err)
			continue
		}

		if err := rabbitMQ.PublishNotification(payload); err != nil {
			logger.Errorf("Failed to publish deadline warning for project %s: %v", project.ID, err)
		}
	}
}
