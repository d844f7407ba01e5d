package bootstrap

import (
	"context"
	"time"

	"studynotes-be/internal/config"
	"studynotes-be/internal/controller"
	"studynotes-be/internal/graph"
	"studynotes-be/internal/listingcache"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/internal/service"
	"studynotes-be/pkg/events"
	pktNats "studynotes-be/pkg/nats"
	"studynotes-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	GraphQLController controller.IGraphQLController
	HealthController  controller.IHealthController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config, sysLogger logger.ILogger) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// 2. Listing cache
	cacheStore, closeStore := newCacheStore(cfg.Cache, sysLogger)
	listingCache := listingcache.New(cacheStore, listingcache.PolicyFromConfig(cfg.Cache), sysLogger)

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	// Domain events go to NATS only when it is configured. A nil interface keeps
	// the services from publishing.
	var eventPublisher events.Publisher
	closers := []func(){closeStore, func() { _ = pubSub.Close() }}
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Failed to connect to NATS Publisher", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			eventPublisher = natsPub
			closers = append(closers, natsPub.Close)
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.ViewTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.ViewTopic, uowFactory, sysLogger)

	noteService := service.NewNoteService(uowFactory, listingCache, eventPublisher, sysLogger)
	interactionService := service.NewInteractionService(uowFactory, listingCache, eventPublisher, sysLogger)
	viewService := service.NewViewService(uowFactory, publisherService)
	commentService := service.NewCommentService(uowFactory, eventPublisher, sysLogger)
	userService := service.NewUserService(uowFactory, sysLogger)

	resolver := graph.NewResolver(noteService, interactionService, viewService, commentService, userService, sysLogger)

	// 5. Controllers
	return &Container{
		GraphQLController: controller.NewGraphQLController(graph.NewSchema(resolver)),
		HealthController:  controller.NewHealthController(db, cacheStore),

		ConsumerService: consumerService,
		Logger:          sysLogger,
		closers:         closers,
	}
}

// Close releases the connections opened by NewContainer.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func newCacheStore(cfg config.CacheConfig, log logger.ILogger) (store.Store, func()) {
	if cfg.Driver == "memory" {
		log.Info("Bootstrap", "Using in-process listing cache", nil)
		return store.NewMemoryStore(time.Minute), func() {}
	}

	rdb := store.NewRedisClient(cfg.RedisURL)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		// Listing reads fall back to the database until Redis comes back.
		log.Warn("Bootstrap", "Failed to connect to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return store.NewRedisStore(rdb), func() { _ = rdb.Close() }
}
