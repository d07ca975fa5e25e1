package wire

import (
	"time"

	"github.com/gin-gonic/gin"
	mongodb "go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	"github.com/pramanandasarkar02/toolsai/internal/api"
	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/pramanandasarkar02/toolsai/internal/api/handler"
	"github.com/pramanandasarkar02/toolsai/internal/job"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/cron"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/es"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/fetcher"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/kafka"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/mongo"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/ws"
	"github.com/pramanandasarkar02/toolsai/internal/repository"
	"github.com/pramanandasarkar02/toolsai/internal/service"
)

// ApplicationContainer bundles the top-level components the process runs.
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
	Producer     kafka.Producer
}

func BuildApplication(db *gorm.DB, mongoDB *mongodb.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	orgRepo := repository.NewOrganizationRepo(db)
	modelRepo := repository.NewModelRepo(db)
	engagementRepo := repository.NewEngagementRepo(db)
	tagRepo := repository.NewTagRepo(db)
	notificationRepo := repository.NewNotificationRepo(db)
	apiKeyRepo := repository.NewApiKeyRepo(db)
	subscriptionRepo := repository.NewSubscriptionRepo(db)

	modelESRepo := es.NewModelRepo(es.Client)
	auditRepo := mongo.NewAuditLogRepo(mongoDB)

	var producer kafka.Producer = kafka.NopProducer{}
	if len(cfg.Kafka.Brokers) > 0 {
		p, err := kafka.NewProducer(cfg)
		if err != nil {
			return nil, err
		}
		producer = p
	}

	hub := ws.NewHub()
	pageFetcher := fetcher.NewPageFetcher(15 * time.Second)

	userService := service.NewUserService(userRepo, apiKeyRepo)
	orgService := service.NewOrganizationService(orgRepo, userRepo, subscriptionRepo)
	modelService := service.NewModelService(modelRepo, orgRepo, tagRepo, engagementRepo, modelESRepo, producer, pageFetcher)
	likeService := service.NewLikeService(engagementRepo, modelRepo, userRepo, producer)
	ratingService := service.NewRatingService(engagementRepo, modelRepo, userRepo, producer)
	commentService := service.NewCommentService(engagementRepo, modelRepo, userRepo, producer)
	tagService := service.NewTagService(tagRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	mediaService := service.NewMediaService(modelRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:         handler.NewUserHandler(userService),
		OrganizationHandler: handler.NewOrganizationHandler(orgService),
		ModelHandler:        handler.NewModelHandler(modelService),
		LikeHandler:         handler.NewLikeHandler(likeService),
		RatingHandler:       handler.NewRatingHandler(ratingService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		TagHandler:          handler.NewTagHandler(tagService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		MediaHandler:        handler.NewMediaHandler(mediaService),
		WsHandler:           handler.NewWsHandler(hub),
	}

	router := api.SetupRouter(handlers, auditRepo, apiKeyRepo)

	var kafkaMgr *kafka.ConsumerManager
	if len(cfg.Kafka.Brokers) > 0 {
		mgr, err := kafka.NewConsumerManager(cfg, modelRepo, userRepo, notificationRepo, modelESRepo, hub)
		if err != nil {
			return nil, err
		}
		kafkaMgr = mgr
	}

	counterJob := job.NewCounterReconcileJob(modelRepo, engagementRepo)
	var healthJob *job.ModelHealthJob
	if cfg.HealthChecker.Enable {
		healthJob = job.NewModelHealthJob(modelRepo, cfg.HealthChecker)
	}
	cronMgr := cron.NewCronManager(counterJob, healthJob)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
		Producer:     producer,
	}, nil
}
