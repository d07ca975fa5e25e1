package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/util"
)

// pathID parses a positive uint64 path parameter; 0 means invalid.
func pathID(c *gin.Context, name string) uint64 {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// pageParams reads page/pageSize query parameters with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(consts.DefaultPageSize)))
	return util.NormalizePage(page, pageSize, consts.MaxPageSize)
}

// callerID resolves the acting user: the authenticated identity when
// present, otherwise the optional userId query parameter. Anonymous
// callers resolve to 0.
func callerID(c *gin.Context) uint64 {
	if id := c.GetUint64("user_id"); id != 0 {
		return id
	}
	if raw := c.Query("userId"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
			return id
		}
	}
	return 0
}

func isAdmin(c *gin.Context) bool {
	return c.GetString("role") == consts.RoleAdmin
}
