package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	accessgate "github.com/scribearc/scribearc/internal/access_gate"
	appcontext "github.com/scribearc/scribearc/internal/app_context"
	"github.com/scribearc/scribearc/internal/auth"
	"github.com/scribearc/scribearc/internal/config"
	"github.com/scribearc/scribearc/internal/controller"
	"github.com/scribearc/scribearc/internal/database"
	"github.com/scribearc/scribearc/internal/env"
	"github.com/scribearc/scribearc/internal/mailer"
	"github.com/scribearc/scribearc/internal/middleware"
	"github.com/scribearc/scribearc/internal/queue"
	ratelimiter "github.com/scribearc/scribearc/internal/rate_limiter"
	"github.com/scribearc/scribearc/internal/repository"
	"github.com/scribearc/scribearc/internal/route"
	"github.com/scribearc/scribearc/internal/util"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg)

	db, err := database.ConnectReturnGormDB(cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	sqlDb, err := db.DB()
	if err != nil {
		logger.Panic(err)
	}
	defer sqlDb.Close()
	logger.Info("Database connected \n")

	redisClient, err := accessgate.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Error("Error connecting to redis")
		logger.Panic(err)
	}
	defer redisClient.Close()
	logger.Info("Redis connected \n")

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitMQ.GetConnectionString())
	if err != nil {
		logger.Error("Error connecting to RabbitMQ")
		logger.Panic(err)
	}
	defer func() {
		if err := rabbitMQ.Close(); err != nil {
			logger.Errorf("Failed to close RabbitMQ connection: %v", err)
		}
	}()
	logger.Info("RabbitMQ connected \n")

	// Custom validation
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := util.RegisterCustomValidations(v); err != nil {
			logger.Panicf("Failed to register custom validations: %v", err)
		}
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	mail := mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	jwtService := auth.NewJwt(cfg.Auth, logger)
	repo := repository.NewRepository(db, logger)
	gate := accessgate.NewGate(accessgate.NewRedisSessionStore(redisClient, cfg.Tracking), cfg.Tracking, logger)

	app := appcontext.Application{
		Config:     &cfg,
		Repository: repo,
		Logger:     logger,
		Mailer:     mail,
		JWTService: jwtService,
		Queue:      rabbitMQ,
		Gate:       gate,
	}

	_middleware := middleware.NewMiddleware(&app, rateLimiter)

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	// docs: https://github.com/gin-contrib/cors?tab=readme-ov-file#using-defaultconfig-as-start-point
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Requested-With", "Accept", "X-Tracking-Session"}
	r.Use(cors.New(corsConfig))
	r.Use(_middleware.RateLimiterMiddleware)

	_controller := controller.NewController(&app)

	r.GET("/", _controller.Index.Index)

	rApi := r.Group("/api")

	route.V1_Auth(rApi, _controller.Auth)
	route.V1_Users(rApi, _controller.User, _middleware)
	route.V1_Clients(rApi, _controller.Client)
	route.V1_Packages(rApi, _controller.Package, _middleware)
	route.V1_Projects(rApi, _controller.Project, _middleware)
	route.V1_Tracking(rApi, _controller.Tracking)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
