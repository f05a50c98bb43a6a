// File: leadform/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadform/clients/consultation"
	"leadform/config"
	"leadform/cron"
	"leadform/database"
	leadRepo "leadform/database/repository/lead"
	"leadform/handlers"
	"leadform/middleware"
	"leadform/routes"
	"leadform/services/form"
	"leadform/services/tasks"
	"leadform/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories and stores.
	leads := leadRepo.NewMongoLeadRepo()
	sessionStore := form.NewRedisSessionStore(utils.GetSessionCacheClient(), utils.GetLockCacheClient())

	// services.
	consultationClient := consultation.NewClient(config.AppConfig.ConsultationBaseURL)
	followupScheduler := tasks.NewAsynqFollowupScheduler()

	registry := form.NewPageRegistry(form.DefaultPages()...)
	flowService := &form.DefaultFormFlowService{
		Registry:     registry,
		Store:        sessionStore,
		Consultation: consultationClient,
		Leads:        leads,
		Followups:    followupScheduler,
		Logger:       logger,
	}

	formHandler := handlers.NewFormHandler(flowService, registry, logger)
	adminHandler := handlers.NewAdminHandler(leads)

	routes.RegisterRoutes(router, formHandler, adminHandler)

	// Background workers and health monitoring.
	cron.InitFollowupWorker(leads)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetLockCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
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

	// Wait for an OS signal to gracefully shutdown.
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
