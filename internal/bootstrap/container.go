package bootstrap

import (
	"log"
	"time"

	"ai-studymate-be/internal/config"
	"ai-studymate-be/internal/controller"
	"ai-studymate-be/internal/pkg/logger"
	"ai-studymate-be/internal/repository/unitofwork"
	"ai-studymate-be/internal/service"
	"ai-studymate-be/pkg/embedding"

	pktNats "ai-studymate-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController  controller.INoteController
	StudyController controller.IStudyController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	uowFactory := unitofwork.NewRepositoryFactory(db, cfg.Ai.EmbeddingDimension, sysLogger)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Embedding Provider
	// Without a Gemini key the synthetic provider keeps the retrieval
	// pipeline alive with deterministic hash-seeded vectors.
	var embeddingProvider embedding.EmbeddingProvider
	switch {
	case cfg.Ai.EmbeddingProvider == "synthetic" || cfg.Keys.GoogleGemini == "":
		embeddingProvider = embedding.NewSyntheticProvider(cfg.Ai.EmbeddingDimension)
		sysLogger.Warn("bootstrap", "using synthetic embedding provider, search quality is degraded", map[string]interface{}{
			"dimension": cfg.Ai.EmbeddingDimension,
		})
	default:
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}
	generator := embedding.NewGenerator(embeddingProvider, cfg.Ai.EmbeddingDimension)

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	profileCache := cache.New(5*time.Minute, 10*time.Minute)

	// 5. Services
	publisherService := service.NewPublisherService(pubSub, cfg.Keys.EmbedTopic)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.EmbedTopic,
		uowFactory,
		generator,
		natsPub,
		sysLogger,
	)

	noteService := service.NewNoteService(
		uowFactory,
		publisherService,
		generator,
		sysLogger,
	)

	profileService := service.NewStudyProfileService(
		uowFactory,
		natsPub,
		profileCache,
		sysLogger,
	)

	// 6. Controllers
	return &Container{
		NoteController:  controller.NewNoteController(noteService),
		StudyController: controller.NewStudyController(profileService),

		ConsumerService: consumerService,
	}
}
