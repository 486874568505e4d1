package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"

	"sports-federation-api/config/common"
	applogger "sports-federation-api/config/logger"
	"sports-federation-api/handler"
	"sports-federation-api/middleware"
	"sports-federation-api/repository"
	"sports-federation-api/routes"
	"sports-federation-api/security"
	"sports-federation-api/usecase"
	"sports-federation-api/ws"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	AppLog *applogger.AppLogger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	Config *common.Config
}

func RunServer() {
	newConfig := common.NewViper()
	app := NewFiber(newConfig)
	log := NewLogrus()
	appLog := applogger.NewLogger()
	newDB := NewDB(newConfig, appLog)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	appConfig := &AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		AppLog:     appLog,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Config:     newConfig,
	}
	relay := App(appConfig)
	defer relay.Close()

	if err := app.Listen(":" + newConfig.GetServerPort()); err != nil {
		log.WithError(err).Errorf("Failed to start server: %v", err)
	}
}

// App wires the whole dependency graph. One registry, one relay and
// one session manager per process; for multi-instance deployments the
// redis relay carries fan-out between processes.
func App(aC *AppConfig) ws.Relay {
	newAuthRepository := repository.NewAuthRepository()
	newUserRepository := repository.NewUserRepository()
	newRoomRepository := repository.NewChatRoomRepository()
	newParticipantRepository := repository.NewParticipantRepository()
	newMessageRepository := repository.NewMessageRepository()
	newNotificationRepository := repository.NewNotificationRepository()

	registry := ws.NewRegistry()
	relay := newRelay(aC, registry)
	relay.Start()

	store := ws.NewGormStore(aC.GetDB())
	manager := ws.NewSessionManager(aC.JWT, store, registry, relay, aC.Validate, aC.AppLog)
	dispatcher := ws.NewNotificationDispatcher(registry, relay, aC.AppLog.WS.Error)

	newAuthUsecase := usecase.NewAuthUsecase(newAuthRepository, aC.Validate, aC.GetDB(), aC.Logger, aC.JWT)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, aC.Validate, aC.GetDB(), aC.AppLog, aC.JWT)
	newChatUsecase := usecase.NewChatUsecase(newRoomRepository, newParticipantRepository, newMessageRepository, aC.Validate, aC.Logger, aC.GetDB())
	newNotificationUsecase := usecase.NewNotificationUsecase(newNotificationRepository, dispatcher, aC.Validate, aC.Logger, aC.GetDB())

	newAuthHandler := handler.NewAuthHandler(newAuthUsecase, aC.Logger)
	newUserHandler := handler.NewUserHandler(newUserUsecase, aC.Logger)
	newChatHandler := handler.NewChatHandler(newChatUsecase, aC.Logger)
	newNotificationHandler := handler.NewNotificationHandler(newNotificationUsecase, dispatcher, aC.Logger)

	wsHandler := handler.NewWebSocketHandler(manager, aC.Logger)

	route := routes.ConfigRoute{
		App:                 aC.App,
		Middleware:          aC.Middleware,
		AuthHandler:         newAuthHandler,
		UserHandler:         newUserHandler,
		ChatHandler:         newChatHandler,
		NotificationHandler: newNotificationHandler,
	}
	route.GetRoute()
	route.GetWebSocketRoute(wsHandler)

	return relay
}

func newRelay(aC *AppConfig, registry *ws.Registry) ws.Relay {
	mode, _, _ := aC.Config.GetRelayConfig()
	if mode == "redis" {
		return ws.NewRedisRelay(NewRedis(aC.Config), registry, aC.AppLog.WS.Error)
	}
	return ws.NewLocalRelay(registry, aC.AppLog.WS.Error)
}
