package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/model"
)

type OrganizationRepo interface {
	GetOrgByID(ctx context.Context, id uint64) (*model.Organization, error)
	GetOrgByName(ctx context.Context, name string) (*model.Organization, error)
	GetOrgByURL(ctx context.Context, url string) (*model.Organization, error)
	ListOrgs(ctx context.Context, limit, offset int) ([]*model.Organization, int64, error)
	CreateOrg(ctx context.Context, org *model.Organization) error
	UpdateOrg(ctx context.Context, org *model.Organization) error
	UpdateIsActive(ctx context.Context, id uint64, active bool) (int64, error)
}

type OrganizationRepoImpl struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) OrganizationRepo {
	return &OrganizationRepoImpl{db: db}
}

func (s *OrganizationRepoImpl) GetOrgByID(ctx context.Context, id uint64) (*model.Organization, error) {
	org := &model.Organization{}
	result := s.db.WithContext(ctx).First(org, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return org, nil
}

func (s *OrganizationRepoImpl) GetOrgByName(ctx context.Context, name string) (*model.Organization, error) {
	org := &model.Organization{}
	result := s.db.WithContext(ctx).
		Where("org_name = ?", name).
		First(org)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return org, nil
}

func (s *OrganizationRepoImpl) GetOrgByURL(ctx context.Context, url string) (*model.Organization, error) {
	org := &model.Organization{}
	result := s.db.WithContext(ctx).
		Where("org_url = ?", url).
		First(org)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return org, nil
}

func (s *OrganizationRepoImpl) ListOrgs(ctx context.Context, limit, offset int) ([]*model.Organization, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).
		Model(&model.Organization{}).
		Where("is_active = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orgs := make([]*model.Organization, 0)
	result := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("org_name ASC").
		Limit(limit).Offset(offset).
		Find(&orgs)
	if result.Error != nil {
		return nil, 0, result.Error
	}
	return orgs, total, nil
}

func (s *OrganizationRepoImpl) CreateOrg(ctx context.Context, org *model.Organization) error {
	return s.db.WithContext(ctx).Create(org).Error
}

func (s *OrganizationRepoImpl) UpdateOrg(ctx context.Context, org *model.Organization) error {
	return s.db.WithContext(ctx).
		Model(&model.Organization{}).
		Where("id = ?", org.ID).
		Updates(org).Error
}

func (s *OrganizationRepoImpl) UpdateIsActive(ctx context.Context, id uint64, active bool) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Organization{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}
