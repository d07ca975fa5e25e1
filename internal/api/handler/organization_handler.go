package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

type OrganizationHandler struct {
	orgSvc service.OrganizationService
}

func NewOrganizationHandler(orgSvc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgSvc: orgSvc,
	}
}

// CreateOrg registers an organization (admin only).
func (s *OrganizationHandler) CreateOrg(c *gin.Context) {
	var req dto.OrgCreateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	org, err := s.orgSvc.CreateOrg(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "organization created", org)
}

// GetOrg returns an organization by id.
func (s *OrganizationHandler) GetOrg(c *gin.Context) {
	orgID := pathID(c, "org_id")
	if orgID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	org, err := s.orgSvc.GetOrg(c.Request.Context(), orgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, org)
}

// ListOrgs pages through active organizations.
func (s *OrganizationHandler) ListOrgs(c *gin.Context) {
	page, pageSize := pageParams(c)

	result, err := s.orgSvc.ListOrgs(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Subscribe follows an organization's releases.
func (s *OrganizationHandler) Subscribe(c *gin.Context) {
	orgID := pathID(c, "org_id")
	if orgID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.orgSvc.Subscribe(c.Request.Context(), c.GetUint64("user_id"), orgID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// Unsubscribe stops following an organization.
func (s *OrganizationHandler) Unsubscribe(c *gin.Context) {
	orgID := pathID(c, "org_id")
	if orgID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	if err := s.orgSvc.Unsubscribe(c.Request.Context(), c.GetUint64("user_id"), orgID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// GetSubscriptions lists the organizations the caller follows.
func (s *OrganizationHandler) GetSubscriptions(c *gin.Context) {
	orgs, err := s.orgSvc.GetSubscribedOrgs(c.Request.Context(), c.GetUint64("user_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, orgs)
}

// GetSubscriberCount returns how many users follow an organization.
func (s *OrganizationHandler) GetSubscriberCount(c *gin.Context) {
	orgID := pathID(c, "org_id")
	if orgID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.orgSvc.GetSubscriberCount(c.Request.Context(), orgID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.CountDTO{Count: count})
}

// SetActive enables or disables an organization (admin only).
func (s *OrganizationHandler) SetActive(c *gin.Context) {
	orgID := pathID(c, "org_id")
	if orgID == 0 {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := s.orgSvc.SetActive(c.Request.Context(), orgID, req.Active); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
