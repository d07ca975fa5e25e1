package service

import (
	"context"
	"strings"
	"time"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type OrganizationService interface {
	CreateOrg(ctx context.Context, req *dto.OrgCreateDTO) (*dto.OrgDTO, error)
	GetOrg(ctx context.Context, id uint64) (*dto.OrgDTO, error)
	ListOrgs(ctx context.Context, page, pageSize int) (*dto.PageResponse, error)
	SetActive(ctx context.Context, id uint64, active bool) error
	Subscribe(ctx context.Context, userID, orgID uint64) error
	Unsubscribe(ctx context.Context, userID, orgID uint64) error
	GetSubscribedOrgs(ctx context.Context, userID uint64) ([]*dto.OrgDTO, error)
	GetSubscriberCount(ctx context.Context, orgID uint64) (int64, error)
}

type organizationServiceImpl struct {
	orgRepo          repository.OrganizationRepo
	userRepo         repository.UserRepo
	subscriptionRepo repository.SubscriptionRepo
}

func NewOrganizationService(
	orgRepo repository.OrganizationRepo,
	userRepo repository.UserRepo,
	subscriptionRepo repository.SubscriptionRepo,
) OrganizationService {
	return &organizationServiceImpl{
		orgRepo:          orgRepo,
		userRepo:         userRepo,
		subscriptionRepo: subscriptionRepo,
	}
}

func (s *organizationServiceImpl) CreateOrg(ctx context.Context, req *dto.OrgCreateDTO) (*dto.OrgDTO, error) {
	name := strings.TrimSpace(req.OrgName)

	existing, err := s.orgRepo.GetOrgByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOrgNameExists
	}
	existing, err = s.orgRepo.GetOrgByURL(ctx, req.OrgURL)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrOrgURLExists
	}

	org := &model.Organization{
		OrgName:     name,
		OrgURL:      req.OrgURL,
		Description: req.Description,
		OrgSecret:   req.OrgSecret,
		IsActive:    true,
		JoinedAt:    time.Now(),
	}
	if err := s.orgRepo.CreateOrg(ctx, org); err != nil {
		if isDuplicateError(err) {
			if o, lookupErr := s.orgRepo.GetOrgByName(ctx, name); lookupErr == nil && o != nil {
				return nil, ErrOrgNameExists
			}
			return nil, ErrOrgURLExists
		}
		return nil, err
	}
	return toOrgDTO(org), nil
}

func (s *organizationServiceImpl) GetOrg(ctx context.Context, id uint64) (*dto.OrgDTO, error) {
	org, err := s.orgRepo.GetOrgByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, ErrOrgNotFound
	}
	return toOrgDTO(org), nil
}

func (s *organizationServiceImpl) ListOrgs(ctx context.Context, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	orgs, total, err := s.orgRepo.ListOrgs(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.OrgDTO, 0, len(orgs))
	for _, org := range orgs {
		list = append(list, toOrgDTO(org))
	}
	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *organizationServiceImpl) SetActive(ctx context.Context, id uint64, active bool) error {
	rows, err := s.orgRepo.UpdateIsActive(ctx, id, active)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrgNotFound
	}
	return nil
}

// Subscribe is idempotent; subscribing twice leaves one subscription.
func (s *organizationServiceImpl) Subscribe(ctx context.Context, userID, orgID uint64) error {
	org, err := s.orgRepo.GetOrgByID(ctx, orgID)
	if err != nil {
		return err
	}
	if org == nil {
		return ErrOrgNotFound
	}
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	exists, err := s.subscriptionRepo.CheckSubscriptionExists(ctx, userID, orgID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = s.subscriptionRepo.CreateSubscription(ctx, &model.UserOrgSubscription{
		UserID:         userID,
		OrganizationID: orgID,
	})
	if err != nil && isDuplicateError(err) {
		return nil
	}
	return err
}

func (s *organizationServiceImpl) Unsubscribe(ctx context.Context, userID, orgID uint64) error {
	_, err := s.subscriptionRepo.DeleteSubscription(ctx, userID, orgID)
	return err
}

func (s *organizationServiceImpl) GetSubscribedOrgs(ctx context.Context, userID uint64) ([]*dto.OrgDTO, error) {
	ids, err := s.subscriptionRepo.GetSubscribedOrgIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.OrgDTO, 0, len(ids))
	for _, id := range ids {
		org, err := s.orgRepo.GetOrgByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if org != nil {
			list = append(list, toOrgDTO(org))
		}
	}
	return list, nil
}

func (s *organizationServiceImpl) GetSubscriberCount(ctx context.Context, orgID uint64) (int64, error) {
	return s.subscriptionRepo.CountByOrg(ctx, orgID)
}

func toOrgDTO(org *model.Organization) *dto.OrgDTO {
	return &dto.OrgDTO{
		ID:          org.ID,
		OrgName:     org.OrgName,
		OrgURL:      org.OrgURL,
		Description: org.Description,
		TotalModels: org.TotalModels,
		IsActive:    org.IsActive,
		JoinedAt:    org.JoinedAt,
		CreatedAt:   org.CreatedAt,
	}
}
