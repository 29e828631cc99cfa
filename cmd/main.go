package main

import (
	"context"
	"net/http"
	"time"

	"hostelhub/backend/internal/api/handler"
	"hostelhub/backend/internal/complaint"
	"hostelhub/backend/internal/config"
	"hostelhub/backend/internal/hub"
	"hostelhub/backend/internal/logger"
	"hostelhub/backend/internal/models"
	"hostelhub/backend/internal/notice"
	"hostelhub/backend/internal/notify"
	"hostelhub/backend/internal/security"
	"hostelhub/backend/internal/storage"
	"hostelhub/backend/internal/workorder"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config, log *zap.Logger) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect PostgreSQL", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatal("failed to connect Redis", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Complaint{},
		&models.Notice{},
		&models.Event{},
		&models.EventMessage{},
		&models.SecurityAlert{},
		&models.AttendanceRecord{},
	)
	if err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	log.Info("database and redis connections established, migrations complete")
	return db, rdb
}

func main() {
	if err := godotenv.Load(); err != nil {
		// .env is optional outside development.
	}
	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat, "hostelhub-backend")
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("starting HostelHub backend")

	db, rdb := setupDependencies(cfg, log)
	store := storage.NewStorageService(db, rdb, log)

	hubManager := hub.NewManager(store, log)
	relay := workorder.NewRelayService(rdb, log)

	notifier, err := notify.NewService(cfg.TelegramBotToken, cfg.TelegramStaffChatID, hubManager, log)
	if err != nil {
		log.Fatal("failed to configure staff notifications", zap.Error(err))
	}

	complaints := complaint.NewService(store, relay, notifier, log)
	notices := notice.NewService(store, log)
	securitySvc := security.NewService(store, log)

	go hubManager.Run()

	r := gin.Default()
	h := handler.NewHandler(complaints, relay, notices, securitySvc, notifier, hubManager, store, []byte(cfg.JWTSecret), log)
	h.RegisterRoutes(r)

	server := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Info("listening", zap.String("addr", cfg.ListenAddr))
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
