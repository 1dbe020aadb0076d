package main

import (
	"context"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gearguard/internal/repositories"
	"gearguard/internal/routes"
	"gearguard/internal/services"
	"gearguard/migrations"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/database/postgresql"
	apperrors "gearguard/pkg/errors"
	applogger "gearguard/pkg/logger"
	appmw "gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
	"gearguard/seeders"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger()
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.RecoverWithConfig(echomw.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(appmw.RequestLogger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("failed to register custom validations", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	deps := routes.Deps{
		Config:       cfg,
		Logger:       logger,
		JWTService:   service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL),
		OpenAIClient: services.NewOpenAIClient(cfg.Assistant),
	}

	switch cfg.Store.Driver {
	case "memory":
		logger.Info("using in-memory store")
		store := repositories.NewMemoryStore()
		seeders.SeedMemory(store, logger)
		deps.RequestRepo = store
		deps.EquipmentRepo = store
		deps.TeamRepo = store
		deps.TechnicianRepo = store
		deps.UserRepo = store
	default:
		logger.Info("using postgres store")
		if err := postgresql.Migrate(cfg.Postgres.DSN, migrations.FS); err != nil {
			logger.Fatal("migrations failed", zap.Error(err))
		}
		dbConn := postgresql.ConnectDB(cfg.Postgres.DSN)
		defer dbConn.Close()
		deps.RequestRepo = repositories.NewRequestRepository(dbConn, logger)
		deps.EquipmentRepo = repositories.NewEquipmentRepository(dbConn, logger)
		deps.TeamRepo = repositories.NewTeamRepository(dbConn)
		deps.TechnicianRepo = repositories.NewTechnicianRepository(dbConn)
		deps.UserRepo = repositories.NewUserRepository(dbConn, logger)
	}

	switch cfg.Store.CacheDriver {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		deps.CacheRepo = repositories.NewRedisCacheRepository(redisClient)
	default:
		deps.CacheRepo = repositories.NewMemoryCacheRepository()
	}

	routes.InitRouter(e, deps)

	logger.Info("server starting", zap.String("port", cfg.Server.Port))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
