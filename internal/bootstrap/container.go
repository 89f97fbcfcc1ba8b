package bootstrap

import (
	"ocs-provisioning-be/internal/config"
	"ocs-provisioning-be/internal/controller"
	"ocs-provisioning-be/internal/pkg/logger"
	"ocs-provisioning-be/internal/repository/unitofwork"
	"ocs-provisioning-be/internal/service"
	"ocs-provisioning-be/pkg/catalog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SubscriberController   controller.ISubscriberController
	SubscriptionController controller.ISubscriptionController
	BalanceController      controller.IBalanceController
	HistoryController      controller.IHistoryController
	OfferController        controller.IOfferController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Offer Catalog
	offerCatalog := catalog.New()
	offerCatalog.SeedDefaults()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, cfg.App.TransitionTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.App.TransitionTopic, sysLogger)

	historyService := service.NewHistoryService(uowFactory)
	offerService := service.NewOfferService(offerCatalog)
	subscriberService := service.NewSubscriberService(uowFactory, publisherService, sysLogger)
	subscriptionService := service.NewSubscriptionService(uowFactory, offerCatalog, publisherService, sysLogger)
	balanceService := service.NewBalanceService(uowFactory)

	// 5. Controllers
	return &Container{
		SubscriberController:   controller.NewSubscriberController(subscriberService, subscriptionService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		BalanceController:      controller.NewBalanceController(balanceService),
		HistoryController:      controller.NewHistoryController(historyService),
		OfferController:        controller.NewOfferController(offerService),

		ConsumerService: consumerService,
	}
}
