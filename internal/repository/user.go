package repository

import (
	"context"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	*baseRepository
}

func (ur UserRepository) Create(ctx context.Context, tx *gorm.DB, user *model.User) error {
	ur.logger.Debugf("Create user with email: %s", user.Email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Create(user).Error
}

func (ur UserRepository) GetById(ctx context.Context, tx *gorm.DB, userId string) (*model.User, error) {
	ur.logger.Debugf("Get user by id: %s", userId)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(model.User{
		BaseModel: model.BaseModel{ID: userId},
	}).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (ur UserRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.User, error) {
	ur.logger.Debugf("Get user by email: %s", email)

	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var user model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(model.User{
		Email: email,
	}).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// ListWriters returns active writer accounts for the assignment picker.
func (ur UserRepository) ListWriters(ctx context.Context, tx *gorm.DB) ([]*model.User, error) {
	db := ur.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var writers []*model.User
	if err := db.WithContext(ctx).Model(&model.User{}).Where(model.User{
		Role:     constant.UserRoleWriter,
		IsActive: true,
	}).Order("first_name asc").Find(&writers).Error; err != nil {
		return nil, err
	}

	return writers, nil
}
