package repository

import (
	"context"

	"github.com/scribearc/scribearc/internal/constant"
	"github.com/scribearc/scribearc/internal/model"
	"gorm.io/gorm"
)

type ServicePackageRepository struct {
	*baseRepository
}

func (spr ServicePackageRepository) Create(ctx context.Context, tx *gorm.DB, pkg *model.ServicePackage) error {
	spr.logger.Debugf("Create service package: %s", pkg.Name)

	db := spr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	return db.WithContext(ctx).Create(pkg).Error
}

func (spr ServicePackageRepository) GetById(ctx context.Context, tx *gorm.DB, packageId string) (*model.ServicePackage, error) {
	spr.logger.Debugf("Get service package by id: %s", packageId)

	db := spr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var pkg model.ServicePackage
	if err := db.WithContext(ctx).Model(&model.ServicePackage{}).Where(model.ServicePackage{
		BaseModel: model.BaseModel{ID: packageId},
	}).First(&pkg).Error; err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (spr ServicePackageRepository) ListActive(ctx context.Context, tx *gorm.DB) ([]*model.ServicePackage, error) {
	db := spr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	var packages []*model.ServicePackage
	if err := db.WithContext(ctx).Model(&model.ServicePackage{}).Where(model.ServicePackage{
		IsActive: true,
	}).Order("name asc").Find(&packages).Error; err != nil {
		return nil, err
	}

	return packages, nil
}
