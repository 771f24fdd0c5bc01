package appcontext

import (
	accessgate "github.com/scribearc/scribearc/internal/access_gate"
	"github.com/scribearc/scribearc/internal/auth"
	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/queue"
	"github.com/scribearc/scribearc/internal/repository"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Repository provides access to data storage operations.
	Repository *repository.Repository

	// Mailer handles email-sending functions.
	Mailer mailer.Client

	// JWTService manages JWT operations for staff and writer authentication.
	JWTService auth.JWTInterface

	// Queue publishes notification jobs consumed by cmd/mail_consumer.
	Queue *queue.RabbitMQ

	// Gate guards client tracking access with PIN verification.
	Gate *accessgate.Gate
}
