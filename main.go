package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vaxportal/config"
	"vaxportal/cron"
	"vaxportal/database"
	appointmentRepoPkg "vaxportal/database/repository/appointment"
	childRepoPkg "vaxportal/database/repository/child"
	feedbackRepoPkg "vaxportal/database/repository/feedback"
	newsRepoPkg "vaxportal/database/repository/news"
	notificationRepoPkg "vaxportal/database/repository/notification"
	userRepoPkg "vaxportal/database/repository/user"
	vaccineRepoPkg "vaxportal/database/repository/vaccine"
	"vaxportal/handlers"
	"vaxportal/routes"
	"vaxportal/services/booking"
	"vaxportal/services/cart"
	"vaxportal/services/catalog"
	"vaxportal/services/feedback"
	"vaxportal/services/notification"
	"vaxportal/services/tasks"
	"vaxportal/services/user"
	"vaxportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Warn("Media storage disabled", zap.Error(err))
	}

	if config.AppConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	childRepo := childRepoPkg.NewMongoChildRepo()
	appointmentRepo := appointmentRepoPkg.NewMongoAppointmentRepo()
	vaccineRepo := vaccineRepoPkg.NewMongoVaccineRepo()
	newsRepo := newsRepoPkg.NewMongoNewsRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	store := utils.NewRedisKVStore(utils.GetCacheClient())
	sessionStore := utils.NewRedisKVStore(utils.GetSessionCacheClient())

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Children: childRepo,
	}
	cartService := &cart.DefaultCartService{Store: store}
	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}
	catalogService := &catalog.DefaultCatalogService{
		VaccineRepo: vaccineRepo,
		NewsRepo:    newsRepo,
		Storage:     storageService,
	}
	feedbackService := &feedback.DefaultFeedbackService{
		Repo:     feedbackRepo,
		Notifier: notificationService,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Store:        sessionStore,
		CartSvc:      cartService,
		Children:     childRepo,
		Vaccines:     vaccineRepo,
		Appointments: appointmentRepo,
		Notifier:     notificationService,
		Reminders:    tasks.NewReminderScheduler(),
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	childHandler := handlers.NewChildHandler(userService)
	cartHandler := handlers.NewCartHandler(cartService)
	bookingHandler := handlers.NewBookingHandler(bookingService, cartService, logger)
	paymentHandler := handlers.NewPaymentHandler(store)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentRepo)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService, userService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	storageHandler := handlers.NewStorageHandler(storageService)

	handlerBundle := &handlers.HandlerBundle{
		LoginHandler:          authHandler.LoginHandler,
		RegisterHandler:       authHandler.RegisterHandler,
		UpdateFCMTokenHandler: authHandler.UpdateFCMTokenHandler,

		ListVaccinesHandler: catalogHandler.ListVaccines,
		ListNewsHandler:     catalogHandler.ListNews,
		GetNewsByIDHandler:  catalogHandler.GetNewsByID,
		PublishNewsHandler:  catalogHandler.PublishNews,

		ListChildrenHandler: childHandler.ListChildren,
		AddChildHandler:     childHandler.AddChild,

		GetCartHandler:        cartHandler.GetCart,
		AddCartItemHandler:    cartHandler.AddCartItem,
		RemoveCartItemHandler: cartHandler.RemoveCartItem,

		InitiateSessionHandler: bookingHandler.InitiateSession,
		GetSessionHandler:      bookingHandler.GetSession,
		UpdateSessionHandler:   bookingHandler.UpdateSession,
		NextStepHandler:        bookingHandler.NextStep,
		PrevStepHandler:        bookingHandler.PrevStep,
		CheckoutHandler:        bookingHandler.Checkout,
		CancelSessionHandler:   bookingHandler.CancelSession,

		PaymentReturnHandler: paymentHandler.PaymentReturnHandler,

		ListAppointmentsHandler:  appointmentHandler.ListByUser,
		GetAppointmentHandler:    appointmentHandler.GetByID,
		CancelAppointmentHandler: appointmentHandler.Cancel,
		EditAppointmentHandler:   appointmentHandler.Edit,

		ListNotificationsHandler: notificationHandler.ListByUser,
		MarkAllReadHandler:       notificationHandler.MarkAllRead,

		SubmitFeedbackHandler:  feedbackHandler.Submit,
		ListFeedbackHandler:    feedbackHandler.ListAll,
		RespondFeedbackHandler: feedbackHandler.Respond,

		UploadNewsCoverHandler: storageHandler.UploadNewsCoverHandler,
	}

	routes.RegisterRoutes(router, handlerBundle)

	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
