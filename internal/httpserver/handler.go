package httpserver

import (
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	// Import this to execute the init function in docs.go which setups the Swagger docs.
	_ "engage-api/docs"

	candidateHTTP "engage-api/internal/candidate/delivery/http"
	candidatePostgres "engage-api/internal/candidate/repository/postgre"
	candidateUC "engage-api/internal/candidate/usecase"
	engagementHTTP "engage-api/internal/engagement/delivery/http"
	engagementPostgres "engage-api/internal/engagement/repository/postgre"
	engagementUC "engage-api/internal/engagement/usecase"
	"engage-api/internal/middleware"
	monitorHTTP "engage-api/internal/monitor/delivery/http"
	monitorPostgres "engage-api/internal/monitor/repository/postgre"
	monitorUC "engage-api/internal/monitor/usecase"
	"engage-api/internal/platform"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Api = "/api/v1"

func (srv *HTTPServer) mapHandlers() error {
	// Global middleware
	mw := middleware.New(srv.logger, srv.jwtManager)
	srv.gin.Use(middleware.Recovery(srv.logger, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	if srv.registry != nil {
		srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))
	}

	// Repositories
	monitorRepo := monitorPostgres.New(srv.logger, srv.db)
	candidateRepo := candidatePostgres.New(srv.logger, srv.db)
	postedRepo := engagementPostgres.New(srv.logger, srv.db)
	srv.monitorRepo = monitorRepo
	srv.postedRepo = postedRepo

	// Usecases
	monitorUsecase := monitorUC.New(srv.logger, monitorRepo, candidateRepo)
	engagementUsecase := engagementUC.New(srv.logger, postedRepo, srv.publisher, srv.metrics, srv.engageCfg.RefreshMinStaleness)
	candidateUsecase := candidateUC.New(srv.logger, candidateUC.Deps{
		Repo:         candidateRepo,
		MonitorRepo:  monitorRepo,
		EngagementUC: engagementUsecase,
		Gate:         srv.gate,
		Discovery:    srv.discovery,
		Generator:    srv.generator,
		Publisher:    srv.publisher,
		Alert:        srv.discord,
		Metrics:      srv.metrics,

		PublishTimeout: srv.engageCfg.PublishTimeout,
		Style: platform.StyleConfig{
			Tone:      srv.engageCfg.StyleTone,
			Language:  srv.engageCfg.StyleLanguage,
			MaxLength: srv.engageCfg.StyleMaxLength,
			Persona:   srv.engageCfg.StylePersona,
		},
	})

	// Handlers
	monitorHandler := monitorHTTP.New(srv.logger, monitorUsecase, srv.discord)
	candidateHandler := candidateHTTP.New(srv.logger, candidateUsecase, srv.discord)
	postedHandler := engagementHTTP.New(srv.logger, engagementUsecase, srv.discord)

	// API routes (auth required)
	api := srv.gin.Group(Api)
	api.Use(mw.Auth())

	monitorHTTP.MapMonitorRoutes(api.Group("/monitors"), monitorHandler)
	candidateHTTP.MapCandidateRoutes(api.Group("/candidates"), candidateHandler)
	engagementHTTP.MapPostedRoutes(api.Group("/posted"), postedHandler)

	return nil
}
