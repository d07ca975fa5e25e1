package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pramanandasarkar02/toolsai/internal/api/middleware"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/logger"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/mongo"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
)

func SetupRouter(group *HandlersGroup, auditRepo mongo.AuditLogRepo, apiKeyRepo repository.ApiKeyRepo) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware(auditRepo))
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
			})
		})

		userGroup := apiGroup.Group("/users")
		{
			userGroup.POST("/register", group.UserHandler.Register)
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.GET("/verify", group.UserHandler.VerifyEmail)
			userGroup.GET("/username/:username", group.UserHandler.GetUserByUsername)
			userGroup.GET("/:user_id", group.UserHandler.GetUser)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/me/profile", group.UserHandler.GetMe)
				authGroup.PUT("/me/profile", group.UserHandler.UpdateMe)
				authGroup.POST("/me/avatar", group.MediaHandler.UploadAvatar)

				authGroup.GET("/me/ratings", group.RatingHandler.GetMyRatings)
				authGroup.GET("/me/comments", group.CommentHandler.GetMyComments)

				authGroup.POST("/me/api-keys", group.UserHandler.CreateApiKey)
				authGroup.GET("/me/api-keys", group.UserHandler.ListApiKeys)
				authGroup.DELETE("/me/api-keys/:key_id", group.UserHandler.RevokeApiKey)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.GET("", group.UserHandler.ListUsers)
				adminGroup.POST("/:user_id/ban", group.UserHandler.BanUser)
				adminGroup.POST("/:user_id/unban", group.UserHandler.UnbanUser)
			}
		}

		orgGroup := apiGroup.Group("/organizations")
		{
			orgGroup.GET("", group.OrganizationHandler.ListOrgs)
			orgGroup.GET("/:org_id", group.OrganizationHandler.GetOrg)
			orgGroup.GET("/:org_id/subscribers/count", group.OrganizationHandler.GetSubscriberCount)

			authGroup := orgGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/:org_id/subscribe", group.OrganizationHandler.Subscribe)
				authGroup.DELETE("/:org_id/subscribe", group.OrganizationHandler.Unsubscribe)
				authGroup.GET("/subscriptions", group.OrganizationHandler.GetSubscriptions)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.POST("", group.OrganizationHandler.CreateOrg)
				adminGroup.PUT("/:org_id/active", group.OrganizationHandler.SetActive)
			}
		}

		modelGroup := apiGroup.Group("/models")
		{
			modelGroup.GET("", group.ModelHandler.ListModels)
			modelGroup.GET("/search", group.ModelHandler.SearchModels)
			modelGroup.GET("/suggest", group.ModelHandler.Suggest)
			modelGroup.GET("/trending", group.ModelHandler.GetTrendingModels)
			modelGroup.GET("/slug/:slug", group.ModelHandler.GetModelBySlug)
			modelGroup.GET("/:model_id", group.ModelHandler.GetModel)
			modelGroup.GET("/:model_id/views", group.ModelHandler.GetViewCount)

			authGroup := modelGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.ModelHandler.CreateModel)
				authGroup.PUT("/:model_id", group.ModelHandler.UpdateModel)
				authGroup.DELETE("/:model_id", group.ModelHandler.DeleteModel)
				authGroup.POST("/:model_id/image", group.MediaHandler.UploadModelImage)
				authGroup.GET("/metadata", group.ModelHandler.FetchDocMetadata)
			}

			adminGroup := authGroup.Group("")
			adminGroup.Use(middleware.CheckRoles(consts.RoleAdmin))
			{
				adminGroup.PUT("/:model_id/status", group.ModelHandler.UpdateStatus)
				adminGroup.PUT("/:model_id/featured", group.ModelHandler.SetFeatured)
			}
		}

		// Engagement endpoints: reads are public; writes accept either a
		// JWT or an explicit userId query parameter.
		engagementGroup := apiGroup.Group("/models/:model_id")
		engagementGroup.Use(middleware.AuthOptionalMiddleware())
		{
			engagementGroup.GET("/engagement", group.ModelHandler.GetEngagementState)

			engagementGroup.POST("/like", group.LikeHandler.ToggleLike)
			engagementGroup.GET("/like/count", group.LikeHandler.GetLikeCount)
			engagementGroup.GET("/like/me", group.LikeHandler.IsLiked)

			engagementGroup.PUT("/rating", group.RatingHandler.UpsertRating)
			engagementGroup.GET("/rating/me", group.RatingHandler.GetUserRating)
			engagementGroup.GET("/ratings", group.RatingHandler.GetRatings)
			engagementGroup.DELETE("/ratings/:rating_id", group.RatingHandler.DeleteRating)

			engagementGroup.POST("/comments", group.CommentHandler.CreateComment)
			engagementGroup.GET("/comments", group.CommentHandler.GetComments)
			engagementGroup.GET("/comments/count", group.CommentHandler.GetCommentCount)
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthOptionalMiddleware())
		{
			commentGroup.GET("/:comment_id/replies", group.CommentHandler.GetReplies)
			commentGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
		}

		likedGroup := apiGroup.Group("/liked-models")
		likedGroup.Use(middleware.AuthOptionalMiddleware())
		{
			likedGroup.GET("", group.LikeHandler.GetLikedModels)
		}

		tagGroup := apiGroup.Group("/tags")
		{
			tagGroup.GET("", group.TagHandler.ListTags)
			tagGroup.GET("/:slug", group.TagHandler.GetTag)

			authGroup := tagGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/suggest", group.TagHandler.SuggestTags)
			}
		}

		notificationGroup := apiGroup.Group("/notifications")
		notificationGroup.Use(middleware.AuthMiddleware())
		{
			notificationGroup.GET("", group.NotificationHandler.GetNotifications)
			notificationGroup.GET("/unread/count", group.NotificationHandler.GetUnreadCount)
			notificationGroup.POST("/:notification_id/read", group.NotificationHandler.MarkRead)
			notificationGroup.POST("/read/all", group.NotificationHandler.MarkAllRead)
			notificationGroup.DELETE("/:notification_id", group.NotificationHandler.DeleteNotification)
		}

		// Server-to-server access keyed by X-API-Key. The key resolves to
		// its owner, so the engagement state is personalized.
		integrationGroup := apiGroup.Group("/integration")
		integrationGroup.Use(middleware.ApiKeyMiddleware(apiKeyRepo))
		{
			integrationGroup.GET("/models", group.ModelHandler.ListModels)
			integrationGroup.GET("/models/:model_id", group.ModelHandler.GetModel)
			integrationGroup.GET("/models/:model_id/engagement", group.ModelHandler.GetEngagementState)
		}

		apiGroup.GET("/ws", group.WsHandler.Connect)
	}

	return r
}
