package service

import (
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/model"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/redis"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/security"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error)
	Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, token string) error
	GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserByUsername(ctx context.Context, username string) (*dto.UserDTO, error)
	ListUsers(ctx context.Context, page, pageSize int) (*dto.PageResponse, error)
	UpdateUser(ctx context.Context, id uint64, req *dto.UserUpdateDTO) (*dto.UserDTO, error)
	SetActive(ctx context.Context, id uint64, active bool) error
	CreateApiKey(ctx context.Context, userID uint64, req *dto.ApiKeyCreateDTO) (*dto.ApiKeyDTO, error)
	ListApiKeys(ctx context.Context, userID uint64) ([]*dto.ApiKeyDTO, error)
	RevokeApiKey(ctx context.Context, userID, keyID uint64) error
}

type userServiceImpl struct {
	userRepo   repository.UserRepo
	apiKeyRepo repository.ApiKeyRepo
}

func NewUserService(userRepo repository.UserRepo, apiKeyRepo repository.ApiKeyRepo) UserService {
	return &userServiceImpl{
		userRepo:   userRepo,
		apiKeyRepo: apiKeyRepo,
	}
}

func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterDTO) (*dto.UserDTO, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}
	existing, err = s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	verificationToken := newOpaqueToken()
	user := &model.User{
		Username:          username,
		Email:             email,
		Password:          hashed,
		FullName:          req.FullName,
		Bio:               req.Bio,
		Role:              consts.RoleUser,
		IsActive:          true,
		VerificationToken: &verificationToken,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// A concurrent registration can slip past the precheck; map the
		// unique key violation back to the right conflict.
		if isDuplicateError(err) {
			if u, lookupErr := s.userRepo.GetUserByUsername(ctx, username); lookupErr == nil && u != nil {
				return nil, ErrUsernameExists
			}
			return nil, ErrEmailExists
		}
		return nil, err
	}

	log.InfoContext(ctx, "user registered", "userID", user.ID, "username", username)
	return toUserDTO(user), nil
}

func (s *userServiceImpl) Login(ctx context.Context, req *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := security.CheckPasswordHash(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	token, err := security.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, now); err != nil {
		log.WarnContext(ctx, "update last login failed", "userID", user.ID, "err", err)
	}
	user.LastLoginAt = &now

	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Logout blacklists the token signature until the token would expire
// on its own anyway.
func (s *userServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return ErrParamInvalid
	}
	ttl := time.Duration(config.Cfg.JWT.ExpirationHours) * time.Hour
	return redis.SetWithExpiration(ctx, consts.TokenBlacklistKey+signature, 1, ttl)
}

func (s *userServiceImpl) VerifyEmail(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidVerifyToken
	}
	user, err := s.userRepo.GetUserByVerificationToken(ctx, token)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidVerifyToken
	}

	rows, err := s.userRepo.MarkVerified(ctx, user.ID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrInvalidVerifyToken
	}
	return nil
}

func (s *userServiceImpl) GetUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) GetUserByUsername(ctx context.Context, username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// ListUsers pages through every account, newest first. Admin only.
func (s *userServiceImpl) ListUsers(ctx context.Context, page, pageSize int) (*dto.PageResponse, error) {
	offset := (page - 1) * pageSize
	users, total, err := s.userRepo.ListUsers(ctx, pageSize, offset)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, toUserDTO(u))
	}

	return &dto.PageResponse{
		Content:    list,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
	}, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id uint64, req *dto.UserUpdateDTO) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

func (s *userServiceImpl) SetActive(ctx context.Context, id uint64, active bool) error {
	rows, err := s.userRepo.UpdateIsActive(ctx, id, active)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *userServiceImpl) CreateApiKey(ctx context.Context, userID uint64, req *dto.ApiKeyCreateDTO) (*dto.ApiKeyDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	key := &model.ApiKey{
		UserID:    userID,
		KeyName:   strings.TrimSpace(req.KeyName),
		KeyValue:  newOpaqueToken(),
		IsActive:  true,
		ExpiresAt: req.ExpiresAt,
	}
	if err := s.apiKeyRepo.CreateApiKey(ctx, key); err != nil {
		return nil, err
	}

	out := toApiKeyDTO(key)
	out.KeyValue = key.KeyValue
	return out, nil
}

func (s *userServiceImpl) ListApiKeys(ctx context.Context, userID uint64) ([]*dto.ApiKeyDTO, error) {
	keys, err := s.apiKeyRepo.GetApiKeysByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	list := make([]*dto.ApiKeyDTO, 0, len(keys))
	for _, k := range keys {
		list = append(list, toApiKeyDTO(k))
	}
	return list, nil
}

func (s *userServiceImpl) RevokeApiKey(ctx context.Context, userID, keyID uint64) error {
	rows, err := s.apiKeyRepo.Deactivate(ctx, keyID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrApiKeyNotFound
	}
	return nil
}

// newOpaqueToken returns a 64 character hex-like token.
func newOpaqueToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") +
		strings.ReplaceAll(uuid.NewString(), "-", "")
}

func toUserDTO(u *model.User) *dto.UserDTO {
	item := &dto.UserDTO{}
	_ = copier.Copy(item, u)
	return item
}

func toApiKeyDTO(k *model.ApiKey) *dto.ApiKeyDTO {
	return &dto.ApiKeyDTO{
		ID:         k.ID,
		KeyName:    k.KeyName,
		IsActive:   k.IsActive,
		LastUsedAt: k.LastUsedAt,
		ExpiresAt:  k.ExpiresAt,
		CreatedAt:  k.CreatedAt,
	}
}
