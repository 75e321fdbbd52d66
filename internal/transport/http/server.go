package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "resume-analyzer/internal/app"
	"resume-analyzer/internal/bootstrap"
	rabbitmqClient "resume-analyzer/internal/platform/rabbitmq"
	"resume-analyzer/internal/session"
	"resume-analyzer/internal/transport/http/handler"
	"resume-analyzer/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	cfg := app.Config
	store := session.NewRedisStore(app.Redis, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	validator := appsvc.NewResumeValidator(
		cfg.Analysis.MinTextChars,
		cfg.Analysis.MinKeywordMatches,
		cfg.Analysis.ResumeKeywords,
	)
	uploadService := appsvc.NewUploadService(
		store,
		validator,
		nil,
		app.Logger,
		cfg.Upload.Dir,
		cfg.Upload.MaxFiles,
		cfg.MaxFileSizeBytes(),
		cfg.Session.MaxDocuments,
	)

	classifier := appsvc.NewClassifier(cfg.Analysis.ComparisonKeywords, cfg.Analysis.SearchKeywords)
	builder := appsvc.NewContextBuilder(cfg.Analysis.PerDocContextChars)
	publisher := rabbitmqClient.NewExchangePublisher(app.MQConn, cfg.RabbitMQ.ExchangeAuditQueue)
	chatService := appsvc.NewChatService(
		store,
		classifier,
		builder,
		app.LLMClient,
		app.LLMConfig(),
		publisher,
		app.Logger,
	)

	uploadHandler := handler.NewUploadHandler(uploadService)
	chatHandler := handler.NewChatHandler(chatService)
	sessionHandler := handler.NewSessionHandler(store, uploadService)
	healthHandler := handler.NewHealthHandler(app)

	router.StaticFile("/", "web/index.html")
	router.GET("/health", healthHandler.Check)

	withSession := router.Group("/")
	withSession.Use(middleware.SessionToken(
		cfg.Session.CookieName,
		cfg.Session.TokenSecret,
		time.Duration(cfg.Session.TTLMinutes)*time.Minute,
	))
	withSession.POST("/upload", uploadHandler.Upload)
	withSession.POST("/chat", chatHandler.Chat)
	withSession.GET("/status", sessionHandler.Status)
	withSession.GET("/clear", sessionHandler.Clear)

	return router
}
