package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{
		userSvc: userSvc,
	}
}

// Register creates an account and issues a verification token.
func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "user registered", user)
}

// Login exchanges credentials for a JWT.
func (s *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout blacklists the presented token.
func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// VerifyEmail consumes a verification token.
func (s *UserHandler) VerifyEmail(c *gin.Context) {
	if err := s.userSvc.VerifyEmail(c.Request.Context(), c.Query("token")); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "email verified", nil)
}

// GetMe returns the authenticated user's profile.
func (s *UserHandler) GetMe(c *gin.Context) {
	user, err := s.userSvc.GetUser(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetUser returns a user's public profile.
func (s *UserHandler) GetUser(c *gin.Context) {
	userID := pathID(c, "user_id")
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := s.userSvc.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// GetUserByUsername returns a user's public profile looked up by name.
func (s *UserHandler) GetUserByUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	user, err := s.userSvc.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// ListUsers pages through every account (admin only).
func (s *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := pageParams(c)

	users, err := s.userSvc.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// UpdateMe edits the authenticated user's profile.
func (s *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UserUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	user, err := s.userSvc.UpdateUser(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// BanUser disables an account (admin only).
func (s *UserHandler) BanUser(c *gin.Context) {
	userID := pathID(c, "user_id")
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userSvc.SetActive(c.Request.Context(), userID, false); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// UnbanUser re-enables an account (admin only).
func (s *UserHandler) UnbanUser(c *gin.Context) {
	userID := pathID(c, "user_id")
	if userID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userSvc.SetActive(c.Request.Context(), userID, true); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// CreateApiKey issues a new API key; the value is shown only once.
func (s *UserHandler) CreateApiKey(c *gin.Context) {
	var req dto.ApiKeyCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	key, err := s.userSvc.CreateApiKey(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "api key created", key)
}

// ListApiKeys lists the caller's keys without their values.
func (s *UserHandler) ListApiKeys(c *gin.Context) {
	keys, err := s.userSvc.ListApiKeys(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, keys)
}

// RevokeApiKey deactivates one of the caller's keys.
func (s *UserHandler) RevokeApiKey(c *gin.Context) {
	keyID := pathID(c, "key_id")
	if keyID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.userSvc.RevokeApiKey(c.Request.Context(), c.GetUint64("user_id"), keyID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
