package handler

import (
	log "log/slog"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/pkg/response"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/security"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/ws"
)

type WsHandler struct {
	hub *ws.Hub
}

func NewWsHandler(hub *ws.Hub) *WsHandler {
	return &WsHandler{
		hub: hub,
	}
}

// Connect upgrades to a websocket for notification pushes. Browsers
// cannot set an Authorization header on the upgrade request, so the
// token rides in the query string.
func (s *WsHandler) Connect(c *gin.Context) {
	token := c.Query("token")
	claims, err := security.ValidateToken(token)
	if err != nil {
		response.Fail(c, response.Unauthorized, "token is invalid or expired")
		return
	}

	if err := s.hub.Serve(c.Writer, c.Request, claims.UserID); err != nil {
		log.WarnContext(c.Request.Context(), "websocket upgrade failed", "userID", claims.UserID, "err", err)
	}
}
