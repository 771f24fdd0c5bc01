package repository

import (
	"context"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"gorm.io/gorm"
)

type ClientRepository struct {
	*baseRepository
}

func (cr ClientRepository) Create(ctx context.Context, tx *gorm.DB, client *model.Client) error {
	cr.logger.Debugf("Create client with referral code: %s", client.ReferralCode)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Create(client).Error
}

func (cr ClientRepository) GetById(ctx context.Context, tx *gorm.DB, clientId string) (*model.Client, error) {
	cr.logger.Debugf("Get client by id: %s", clientId)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).Where(model.Client{
		BaseModel: model.BaseModel{ID: clientId},
	}).First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (cr ClientRepository) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*model.Client, error) {
	cr.logger.Debugf("Get client by email: %s", email)

	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).Where(model.Client{
		Email: email,
	}).First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

func (cr ClientRepository) GetByReferralCode(ctx context.Context, tx *gorm.DB, referralCode string) (*model.Client, error) {
	db := cr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var client model.Client
	if err := db.WithContext(ctx).Model(&model.Client{}).Where(model.Client{
		ReferralCode: referralCode,
	}).First(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}
