package main

import (
	"GSM_Uptime_Microservice/internal/uptime-service/api/handler"
	"GSM_Uptime_Microservice/internal/uptime-service/api/middleware"
	"GSM_Uptime_Microservice/internal/uptime-service/api/routes"
	"GSM_Uptime_Microservice/internal/uptime-service/config"
	apperrors "GSM_Uptime_Microservice/internal/uptime-service/errors"
	"GSM_Uptime_Microservice/internal/uptime-service/notify"
	"GSM_Uptime_Microservice/internal/uptime-service/probe"
	"GSM_Uptime_Microservice/internal/uptime-service/repository"
	"GSM_Uptime_Microservice/internal/uptime-service/service"
	"GSM_Uptime_Microservice/internal/uptime-service/stream"
	"GSM_Uptime_Microservice/pkg/infra"
	"GSM_Uptime_Microservice/pkg/logger"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/uptime-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "uptime-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	serverRepo := repository.NewServerRepository(db)
	historyRepo := repository.NewUptimeRecordRepository(db)

	deps := service.ScannerDeps{}

	// optional cross-instance scan lock
	if appConfig.Redis.Host != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host: appConfig.Redis.Host,
			Port: appConfig.Redis.Port,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		deps.Lock = service.NewRedisScanLock(redisClient, appConfig.Monitor.ScanLockTTL)
		zapLogger.Info("connected to redis successfully")
	}

	// optional uptime statistics backend
	if len(appConfig.Elasticsearch.Addresses) > 0 {
		esClient, e := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
			Addresses: appConfig.Elasticsearch.Addresses,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(e))
		}
		deps.Stats = repository.NewUptimeStatsRepository(esClient)
		zapLogger.Info("connected to elasticsearch successfully")
	}

	// optional check-result event stream
	if len(appConfig.Kafka.Brokers) > 0 {
		publisher := stream.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.ResultTopic))
		defer publisher.Close()
		deps.Publisher = publisher
	}

	// escalation channel
	if appConfig.Discord.BotToken != "" && appConfig.Discord.GuildID != "" && appConfig.Discord.AlertRoleID != "" {
		notifier, e := notify.NewDiscordNotifier(
			appConfig.Discord.BotToken,
			appConfig.Discord.GuildID,
			appConfig.Discord.AlertRoleID,
			appConfig.Discord.SendDelay,
			zapLogger,
		)
		if e != nil {
			zapLogger.Fatal("failed to create discord notifier", zap.Error(e))
		}
		deps.Notifier = notifier
	} else {
		zapLogger.Warn("discord escalation is not fully configured, outage alerts will be skipped")
	}

	checker := service.NewChecker(
		probe.NativeProbers(),
		probe.NewRemoteProber(appConfig.Monitor.RemoteAPIBaseURL, appConfig.Monitor.ProbeTimeout),
		appConfig.Monitor.MaxRetries,
		appConfig.Monitor.RetryBackoff,
		appConfig.Monitor.ProbeTimeout,
		zapLogger,
	)
	tracker := service.NewTracker(appConfig.Monitor.FailureThreshold)
	scanService := service.NewScanService(
		serverRepo,
		historyRepo,
		checker,
		tracker,
		appConfig.Monitor.ScanWorkers,
		time.Duration(appConfig.Monitor.RetentionDays)*24*time.Hour,
		deps,
		zapLogger,
	)
	monitorHandler := handler.NewMonitorHandler(zapLogger, scanService, deps.Stats)

	m := middleware.NewCronAuthMiddleware(appConfig.Monitor.CronSecret, zapLogger)

	// optional in-process scheduler for deployments without an external trigger
	if appConfig.Monitor.ScanCron != "" {
		cronJob := cron.New()
		_, err = cronJob.AddFunc(appConfig.Monitor.ScanCron, func() {
			ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel2()
			if _, e := scanService.RunCycle(ctx2); e != nil && !errors.Is(e, apperrors.ErrScanInProgress) {
				zapLogger.Error("scheduled scan cycle failed", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for scan cycle", zap.Error(err))
		}
		cronJob.Start()
		defer cronJob.Stop()
		zapLogger.Info("in-process scan scheduler started", zap.String("schedule", appConfig.Monitor.ScanCron))
	}

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.AddMonitorRoutes(r, monitorHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
