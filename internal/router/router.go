package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-roulette-api/internal/client"
	"meeting-roulette-api/internal/handler"
	"meeting-roulette-api/internal/metrics"
	"meeting-roulette-api/internal/middleware"
	"meeting-roulette-api/internal/repository"
	"meeting-roulette-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      *zap.Logger
	JWTSecret   string
	BasePath    string
	Metrics     *metrics.Metrics
	NotiClient  client.NotificationClient
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Prometheus metrics endpoint
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "meeting-roulette-api"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "meeting-roulette-api"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "meeting-roulette-api"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "meeting-roulette-api"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "meeting-roulette-api"})
	})

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	restaurantRepo := repository.NewRestaurantRepository(cfg.DB)
	meetingRepo := repository.NewMeetingRepository(cfg.DB)
	participantRepo := repository.NewParticipantRepository(cfg.DB)
	voteRepo := repository.NewVoteRepository(cfg.DB)
	preferenceRepo := repository.NewPreferenceRepository(cfg.DB)

	// Notification client falls back to no-op when not configured
	notiClient := cfg.NotiClient
	if notiClient == nil {
		notiClient = client.NewNoOpNotificationClient()
	}

	// Initialize services
	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.Logger)
	restaurantService := service.NewRestaurantService(restaurantRepo, cfg.RedisClient, cfg.Logger)
	meetingService := service.NewMeetingService(
		meetingRepo,
		participantRepo,
		voteRepo,
		userRepo,
		restaurantRepo,
		cfg.Metrics,
		cfg.Logger,
	)
	voteService := service.NewVoteService(voteRepo, meetingRepo, participantRepo, cfg.Metrics, cfg.Logger)
	rouletteService := service.NewRouletteService(
		meetingRepo,
		voteRepo,
		participantRepo,
		notiClient,
		cfg.Metrics,
		cfg.Logger,
	)
	preferenceService := service.NewPreferenceService(preferenceRepo, restaurantRepo, cfg.Logger)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	restaurantHandler := handler.NewRestaurantHandler(restaurantService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	voteHandler := handler.NewVoteHandler(voteService)
	rouletteHandler := handler.NewRouletteHandler(rouletteService)
	preferenceHandler := handler.NewPreferenceHandler(preferenceService)

	// API routes group
	api := r.Group(cfg.BasePath)

	// Metrics endpoint is also reachable under the base path for ingress setups
	if cfg.BasePath != "" {
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// ============================================================
	// Auth routes (public)
	// ============================================================
	auth := api.Group("/auth")
	{
		auth.POST("/signup", userHandler.SignUp)
		auth.POST("/login", userHandler.Login)
	}

	// ============================================================
	// User routes
	// ============================================================
	users := api.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.GetMe)
		users.PATCH("/me", userHandler.UpdateMe)
	}

	// ============================================================
	// Restaurant routes
	// ============================================================
	restaurants := api.Group("/restaurants")
	restaurants.Use(authMiddleware)
	{
		restaurants.POST("", restaurantHandler.CreateRestaurant)
		restaurants.GET("", restaurantHandler.ListRestaurants)
		restaurants.GET("/:restaurantId", restaurantHandler.GetRestaurant)
	}

	// ============================================================
	// Meeting routes
	// ============================================================
	meetings := api.Group("/meetings")
	meetings.Use(authMiddleware)
	{
		meetings.POST("", meetingHandler.CreateMeeting)
		meetings.GET("", meetingHandler.ListMeetings)
		meetings.GET("/me", meetingHandler.MyMeetings)
		meetings.GET("/:meetingId", meetingHandler.GetMeeting)
		meetings.DELETE("/:meetingId", meetingHandler.DissolveMeeting)
		meetings.POST("/:meetingId/join", meetingHandler.JoinMeeting)
		meetings.POST("/:meetingId/leave", meetingHandler.LeaveMeeting)

		// Vote and roulette
		meetings.POST("/:meetingId/vote", voteHandler.Vote)
		meetings.GET("/:meetingId/vote", voteHandler.GetMyVote)
		meetings.POST("/:meetingId/spin", rouletteHandler.Spin)
	}

	// ============================================================
	// Preference routes
	// ============================================================
	preferences := api.Group("/preferences")
	preferences.Use(authMiddleware)
	{
		preferences.PUT("", preferenceHandler.UpsertPreference)
		preferences.GET("", preferenceHandler.ListMyPreferences)
		preferences.DELETE("/:restaurantId", preferenceHandler.DeletePreference)
	}

	return r
}
