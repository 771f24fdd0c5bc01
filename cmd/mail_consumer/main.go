package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/database"
	"github.com/scribearc/scribearc/internal/env"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/queue"
	"github.com/scribearc/scribearc/internal/repository"
	"github.com/scribearc/scribearc/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

const (
	MAX_WORKER = 3
)

func main() {
	cfg := config.GetConfig()
	logger := util.NewLogger(cfg.ENV)

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

	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	repo := repository.NewRepository(db, logger)
	app := queue.NotificationConsumerContext{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
	}

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

	ctx := context.Background()

	if err := rabbitMQ.ConsumeNotificationJob(ctx, notificationJobHandler, MAX_WORKER, &app); err != nil {
		logger.Fatalf("Failed to consume notification job: %v", err)
	}

	logger.Infof("Started consuming notification job")

	// Block forever to keep the consumer running
	select {}
}

// notificationJobHandler renders and sends one queued notification. The bool
// result tells the worker whether a failure is worth requeueing.
func notificationJobHandler(ctx context.Context, jobPayload queue.NotificationJobPayload, app *queue.NotificationConsumerContext) (bool, error) {
	var data any

	switch jobPayload.TemplateFile {
	case mailer.TemplateProjectReceived, mailer.TemplateProjectValidated,
		mailer.TemplateProjectRejected, mailer.TemplateProjectAssigned,
		mailer.TemplateProjectCompleted:
		var d mailer.ProjectStatusData
		if err := json.Unmarshal(jobPayload.Data, &d); err != nil {
			return false, fmt.Errorf("failed to unmarshal ProjectStatusData: %w", err)
		}
		data = d
	case mailer.TemplateWriterNewAssignment:
		var d mailer.WriterAssignmentData
		if err := json.Unmarshal(jobPayload.Data, &d); err != nil {
			return false, fmt.Errorf("failed to unmarshal WriterAssignmentData: %w", err)
		}
		data = d
	case mailer.TemplateDeadlineWarning:
		var d mailer.DeadlineWarningData
		if err := json.Unmarshal(jobPayload.Data, &d); err != nil {
			return false, fmt.Errorf("failed to unmarshal DeadlineWarningData: %w", err)
		}
		data = d
	default:
		return false, fmt.Errorf("unsupported template: %s", jobPayload.TemplateFile)
	}

	status, err := app.Mailer.Send(jobPayload.TemplateFile, jobPayload.ToName, jobPayload.ToEmail, data)
	if err != nil {
		return true, fmt.Errorf("failed to send email: %w", err)
	}

	if status >= http.StatusBadRequest {
		return true, fmt.Errorf("email sending failed with status: %d", status)
	}

	return true, nil
}
