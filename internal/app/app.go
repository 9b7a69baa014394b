package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/claimspulse/recovery-service/config"
	"github.com/claimspulse/recovery-service/internal/assistant"
	"github.com/claimspulse/recovery-service/internal/database"
	"github.com/claimspulse/recovery-service/internal/handlers"
	"github.com/claimspulse/recovery-service/internal/metrics"
	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/publisher"
	"github.com/claimspulse/recovery-service/internal/repository/posgrest"
	"github.com/claimspulse/recovery-service/internal/service"
	"github.com/claimspulse/recovery-service/internal/subscriber"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type App struct {
	config    *config.Config
	Router    *gin.Engine
	publisher *publisher.KafkaPublisher
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Payment{}, &models.FundingSource{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	a.publisher = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.GetRetryConfig())

	recoveryService, err := a.buildService(context.Background(), db)
	if err != nil {
		log.Fatalf("failed to build snapshot: %v", err)
	}
	recoveryHandler := handlers.NewRecoveryHandler(recoveryService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(recoveryHandler)

	a.initSubscribers(recoveryHandler)
}

// buildService seeds the demo snapshot on an empty database, loads the
// authoritative collections and wires the orchestrator.
func (a *App) buildService(ctx context.Context, db *gorm.DB) (*service.RecoveryService, error) {
	paymentRepo := posgrest.New[models.Payment](db)
	sourceRepo := posgrest.New[models.FundingSource](db)

	count, err := paymentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting payments: %w", err)
	}
	if count == 0 {
		if err := database.SeedDemoData(db, time.Now()); err != nil {
			return nil, fmt.Errorf("error seeding demo data: %w", err)
		}
	}

	payments, err := paymentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading payments: %w", err)
	}
	fundingSources, err := sourceRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading funding sources: %w", err)
	}

	var enhancer service.Enhancer
	if a.config.Assistant.OpenAIAPIKey != "" {
		enhancer = assistant.NewWordingEnhancer(a.config.Assistant.OpenAIAPIKey, a.config.Assistant.OpenAIModel)
	}

	return service.NewRecoveryService(paymentRepo, a.publisher, enhancer, payments, fundingSources), nil
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}

func (a *App) initSubscribers(recoveryHandler *handlers.RecoveryHandler) {
	brokers := strings.Split(a.config.Kafka.Brokers, ",")
	topics := strings.Split(a.config.Kafka.SubscriberTopics, ",")
	groupID := a.config.Kafka.RecoveryConsumerGroup

	consumer := subscriber.NewMultiTopicConsumer(brokers, topics, groupID, a.publisher, a.config.GetRetryConfig())

	ctx := context.Background()
	consumer.Listen(ctx, func(topic string, value []byte) error {
		logrus.Infof("Received message topic=%s", topic)
		err := recoveryHandler.HandleEvents(ctx, topic, value)
		if err != nil {
			logrus.Error(err.Error())
		}
		return err
	})
}
