package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"DF-DSGNR/internal"
	"DF-DSGNR/internal/config"
	"DF-DSGNR/internal/handlers"
	"DF-DSGNR/internal/services"
	"DF-DSGNR/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := internal.InitDB(cfg); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Logo uploads need cloud storage credentials. Everything else works
	// without them, so a missing bucket only disables the asset routes.
	gcsClient, err := storage.NewGCSClient(context.Background(), cfg.GCS.BucketName, cfg.GCS.ProjectID, cfg.GCS.CredentialsPath)
	if err != nil {
		log.Printf("Logo storage disabled: %v", err)
		gcsClient = nil
	}

	pdfService, err := services.NewPDFService(cfg.Gotenberg.URL, cfg.Gotenberg.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize PDF service: %v", err)
	}

	templateService := services.NewTemplateService()
	sessionService := services.NewSessionService(cfg.Designer.SessionTTL, cfg.Designer.CleanupInterval)
	activityLogService := services.NewActivityLogService()

	// Idle editing sessions are reclaimed in the background
	sessionService.Start()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Println("Shutting down server...")
		sessionService.Stop()
		if gcsClient != nil {
			gcsClient.Close()
		}
		internal.CloseDB()
		os.Exit(0)
	}()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(activityLogService.LoggingMiddleware())

	templatesHandler := handlers.NewTemplatesHandler(templateService, pdfService)
	sessionsHandler := handlers.NewSessionsHandler(sessionService, templateService)
	fieldsHandler := handlers.NewFieldsHandler()
	logsHandler := handlers.NewLogsHandler(activityLogService)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Template management and compiled artifacts
		v1.POST("/templates", templatesHandler.CreateTemplate)
		v1.GET("/templates", templatesHandler.ListTemplates)
		v1.GET("/templates/:templateId", templatesHandler.GetTemplate)
		v1.PUT("/templates/:templateId", templatesHandler.SaveTemplate)
		v1.DELETE("/templates/:templateId", templatesHandler.DeleteTemplate)
		v1.PUT("/templates/:templateId/default", templatesHandler.SetDefaultTemplate)
		v1.GET("/templates/:templateId/design", templatesHandler.GetDesign)
		v1.POST("/templates/:templateId/compile", templatesHandler.CompileTemplate)
		v1.GET("/templates/:templateId/preview", templatesHandler.PreviewTemplate)
		v1.GET("/templates/:templateId/preview/pdf", templatesHandler.PreviewTemplatePDF)
		v1.POST("/designs/default", templatesHandler.GenerateDefaultDesign)
	}
	{
		// Interactive editing sessions
		v1.POST("/sessions", sessionsHandler.OpenSession)
		v1.GET("/sessions/:sessionId", sessionsHandler.GetSession)
		v1.DELETE("/sessions/:sessionId", sessionsHandler.CloseSession)
		v1.POST("/sessions/:sessionId/elements", sessionsHandler.AddElement)
		v1.PATCH("/sessions/:sessionId/elements/:elementId", sessionsHandler.UpdateElement)
		v1.PATCH("/sessions/:sessionId/elements/:elementId/styles", sessionsHandler.UpdateElementStyles)
		v1.DELETE("/sessions/:sessionId/elements/:elementId", sessionsHandler.DeleteElement)
		v1.DELETE("/sessions/:sessionId/elements", sessionsHandler.DeleteSelectedElements)
		v1.POST("/sessions/:sessionId/elements/:elementId/duplicate", sessionsHandler.DuplicateElement)
		v1.POST("/sessions/:sessionId/elements/:elementId/front", sessionsHandler.MoveElementToFront)
		v1.POST("/sessions/:sessionId/elements/:elementId/back", sessionsHandler.MoveElementToBack)
		v1.POST("/sessions/:sessionId/selection", sessionsHandler.SelectElement)
		v1.DELETE("/sessions/:sessionId/selection", sessionsHandler.ClearSelection)
		v1.PUT("/sessions/:sessionId/zoom", sessionsHandler.SetZoom)
		v1.POST("/sessions/:sessionId/grid/toggle", sessionsHandler.ToggleGrid)
		v1.POST("/sessions/:sessionId/snap/toggle", sessionsHandler.ToggleSnap)
		v1.PATCH("/sessions/:sessionId/page", sessionsHandler.UpdatePageSetup)
		v1.PATCH("/sessions/:sessionId/global-styles", sessionsHandler.UpdateGlobalStyles)
		v1.POST("/sessions/:sessionId/undo", sessionsHandler.Undo)
		v1.POST("/sessions/:sessionId/redo", sessionsHandler.Redo)
		v1.POST("/sessions/:sessionId/load", sessionsHandler.LoadDesign)
		v1.POST("/sessions/:sessionId/save", sessionsHandler.SaveSession)
		v1.GET("/sessions/:sessionId/preview", sessionsHandler.PreviewSession)
	}
	{
		// Field catalog for the editor palette
		v1.GET("/fields", fieldsHandler.GetCatalog)
	}
	{
		// Request activity
		v1.GET("/logs", logsHandler.GetAllLogs)
		v1.GET("/logs/stats", logsHandler.GetLogStats)
		v1.GET("/logs/saves", logsHandler.GetSaveHistory)
	}

	if gcsClient != nil {
		assetsHandler := handlers.NewAssetsHandler(gcsClient)

		// Logo assets in cloud storage
		v1.POST("/assets/logos", assetsHandler.UploadLogo)
		v1.GET("/assets/logos/download", assetsHandler.DownloadLogo)
		v1.GET("/assets/logos/url", assetsHandler.GetLogoURL)
		v1.DELETE("/assets/logos", assetsHandler.DeleteLogo)
	}

	log.Printf("Starting server on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
