package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nmorandeau/portfolio-os/adapters/event"
	httpAdapter "github.com/nmorandeau/portfolio-os/adapters/http"
	"github.com/nmorandeau/portfolio-os/adapters/media_storage"
	"github.com/nmorandeau/portfolio-os/adapters/persistence"
	contactUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/contact"
	curateUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/curate"
	reconcileUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/reconcile"
	snapshotUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/snapshot"
	syncUC "github.com/nmorandeau/portfolio-os/internal/application/usecase/sync"
	"github.com/nmorandeau/portfolio-os/internal/config"
	"github.com/nmorandeau/portfolio-os/pkg/logger"
)

func main() {
	fmt.Println("Start Portfolio OS API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Change bus: Redis when configured, in-process otherwise.
	var bus event.Bus
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		bus = event.NewRedisBus(redisClient, appLogger)
	} else {
		appLogger.Warn("redis not configured, change events stay in-process")
		bus = event.NewInprocBus()
	}

	store, err := persistence.NewFileStore(cfg.Store.Path, bus, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open content store", err)
	}
	defer store.Close()

	// Kafka is optional; without it edits simply do not emit events.
	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
	} else {
		appLogger.Warn("kafka not configured, content events disabled")
	}

	// Use Cases
	reconciler := reconcileUC.NewService(store)
	snapshots := snapshotUC.NewService(store, appLogger)
	curator := curateUC.NewService(store, kafkaClient, appLogger)
	syncer := syncUC.NewUseCase(cfg.Sync.URL, store, snapshots, appLogger)
	contacts := contactUC.NewService(cfg, appLogger)

	// One sync pass at startup, same as the site does on load. A failure is
	// logged and the server starts on local state.
	if cfg.Sync.URL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if result, err := syncer.Execute(ctx); err != nil {
			appLogger.Warn("startup sync failed", zap.Error(err))
		} else {
			appLogger.Info("startup sync done", zap.String("status", string(result.Status)))
		}
		cancel()
	}

	// HTTP Handlers
	contentHandler := httpAdapter.NewContentHandler(reconciler, appLogger)
	curateHandler := httpAdapter.NewCurateHandler(curator, store, appLogger)
	snapshotHandler := httpAdapter.NewSnapshotHandler(snapshots, cfg.Publish.Dir, appLogger)
	syncHandler := httpAdapter.NewSyncHandler(syncer, appLogger)
	contactHandler := httpAdapter.NewContactHandler(contacts, appLogger)
	eventsHandler := httpAdapter.NewEventsHandler(store, appLogger)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	if cfg.Publish.Dir != "" {
		router.StaticFile("/data/"+snapshotUC.PublishedFileName,
			filepath.Join(cfg.Publish.Dir, snapshotUC.PublishedFileName))
	}

	api := router.Group("/api")
	{
		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/content", contentHandler.GetSiteContent)
			public.GET("/projects", contentHandler.GetProjects)
			public.GET("/projects/categories", contentHandler.GetProjectCategories)
			public.GET("/projects/:slug", contentHandler.GetProjectBySlug)
			public.GET("/experiences", contentHandler.GetExperiences)
			public.GET("/skills", contentHandler.GetSkillCategories)
			public.GET("/certifications", contentHandler.GetCertifications)
			public.GET("/articles", contentHandler.GetArticles)
			public.GET("/tech-watch", contentHandler.GetTechWatch)
			public.GET("/events", eventsHandler.Stream)
			public.POST("/contact", contactHandler.Send)
		}

		// The admin surface is deliberately unauthenticated; it binds to a
		// private interface in deployment.
		admin := api.Group("/admin")
		{
			projects := admin.Group("/projects")
			{
				projects.GET("", curateHandler.GetProjectsState)
				projects.PUT("", curateHandler.ReplaceProjects)
				projects.POST("", curateHandler.UpsertProject)
				projects.DELETE("/:id", curateHandler.RemoveProject)
				projects.POST("/:id/restore", curateHandler.RestoreProject)
			}
			experiences := admin.Group("/experiences")
			{
				experiences.GET("", curateHandler.GetExperiencesState)
				experiences.PUT("", curateHandler.ReplaceExperiences)
				experiences.POST("", curateHandler.UpsertExperience)
				experiences.DELETE("/:id", curateHandler.RemoveExperience)
				experiences.POST("/:id/restore", curateHandler.RestoreExperience)
			}
			skills := admin.Group("/skills")
			{
				skills.GET("", curateHandler.GetSkillsState)
				skills.PUT("", curateHandler.ReplaceSkills)
				skills.POST("", curateHandler.UpsertSkillCategory)
				skills.DELETE("/:id", curateHandler.RemoveSkillCategory)
				skills.POST("/:id/restore", curateHandler.RestoreSkillCategory)
				skills.DELETE("/items/:id", curateHandler.HideSkill)
				skills.POST("/items/:id/restore", curateHandler.RestoreSkill)
			}
			certifications := admin.Group("/certifications")
			{
				certifications.GET("", curateHandler.GetCertificationsState)
				certifications.PUT("", curateHandler.ReplaceCertifications)
				certifications.POST("", curateHandler.UpsertCertification)
				certifications.DELETE("/:id", curateHandler.RemoveCertification)
				certifications.POST("/:id/restore", curateHandler.RestoreCertification)
			}
			articles := admin.Group("/articles")
			{
				articles.GET("", curateHandler.GetArticlesState)
				articles.PUT("", curateHandler.ReplaceArticles)
				articles.POST("", curateHandler.UpsertArticle)
				articles.DELETE("/:id", curateHandler.RemoveArticle)
				articles.POST("/:id/restore", curateHandler.RestoreArticle)
			}

			admin.GET("/tech-watch-profile", curateHandler.GetTechWatchProfile)
			admin.PUT("/tech-watch-profile", curateHandler.UpdateTechWatchProfile)

			admin.GET("/snapshot", snapshotHandler.Export)
			admin.POST("/snapshot", snapshotHandler.Import)
			admin.POST("/publish", snapshotHandler.Publish)
			admin.POST("/sync", syncHandler.Run)

			// Media routes exist only when Cloudinary credentials are set.
			if cfg.Cloudinary.CloudName != "" {
				uploader, err := media_storage.NewCloudinaryAdapter(cfg)
				if err != nil {
					appLogger.Fatal("Failed to initialize uploader", err)
				}
				mediaHandler := httpAdapter.NewMediaHandler(uploader, appLogger)
				admin.POST("/media", mediaHandler.Upload)
				admin.DELETE("/media/:id", mediaHandler.Delete)
			}
		}
	}

	appLogger.Info("server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
