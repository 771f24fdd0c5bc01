package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStatusConflict is returned when a conditional status update finds the
// project no longer in the status the caller read. The caller should re-fetch
// and retry or surface the conflict.
var ErrStatusConflict = errors.New("project status changed concurrently")

// IsUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505). Callers racing on uniquely indexed columns use
// this to tell "taken, retry" apart from real failures.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type baseRepository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

type Repository struct {
	// DB can be used for transaction. Example usage:
	// tx := r.DB.Begin()
	// defer tx.Commit()
	// Then pass tx to the repository function. and use tx.Rollback() if error occurred
	DB                *gorm.DB
	User              *UserRepository
	Client            *ClientRepository
	Package           *ServicePackageRepository
	Project           *ProjectRepository
	ProjectHistory    *ProjectHistoryRepository
	ReferenceSequence *ReferenceSequenceRepository
}

func newBaseRepository(db *gorm.DB, logger *zap.SugaredLogger) *baseRepository {
	return &baseRepository{db: db, logger: logger}
}

func NewRepository(db *gorm.DB, logger *zap.SugaredLogger) *Repository {
	br := newBaseRepository(db, logger)

	return &Repository{
		DB:                db,
		User:              &UserRepository{baseRepository: br},
		Client:            &ClientRepository{baseRepository: br},
		Package:           &ServicePackageRepository{baseRepository: br},
		Project:           &ProjectRepository{baseRepository: br},
		ProjectHistory:    &ProjectHistoryRepository{baseRepository: br},
		ReferenceSequence: &ReferenceSequenceRepository{baseRepository: br},
	}
}

// withTx runs fn inside a transaction. Docs: https://gorm.io/docs/transactions.html
func (b baseRepository) withTx(db *gorm.DB, fn func(*gorm.DB) error) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		return fn(tx)
	})

	if err != nil {
		b.logger.Errorf("withTx transaction error: %v", err)
	}

	return err
}

func (b baseRepository) getDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return b.db
}
