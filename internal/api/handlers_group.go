package api

import "github.com/pramanandasarkar02/toolsai/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	UserHandler         *handler.UserHandler
	OrganizationHandler *handler.OrganizationHandler
	ModelHandler        *handler.ModelHandler
	LikeHandler         *handler.LikeHandler
	RatingHandler       *handler.RatingHandler
	CommentHandler      *handler.CommentHandler
	TagHandler          *handler.TagHandler
	NotificationHandler *handler.NotificationHandler
	MediaHandler        *handler.MediaHandler
	WsHandler           *handler.WsHandler
}
