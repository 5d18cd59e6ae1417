package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	staticcatalog "villagrove/internal/adapter/catalog/static"
	httpadapter "villagrove/internal/adapter/http"
	metricsinmem "villagrove/internal/adapter/metrics/inmemory"
	gormrepo "villagrove/internal/adapter/repo/gorm"
	jwttoken "villagrove/internal/adapter/token/jwt"
	"villagrove/internal/app/activity"
	"villagrove/internal/app/auth"
	"villagrove/internal/app/inventory"
	"villagrove/internal/app/museum"
	"villagrove/internal/app/shop"
	"villagrove/internal/app/villager"
	"villagrove/internal/domain/village"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()
	log := buildLogger()

	dsn := strings.TrimSpace(os.Getenv("VILLAGROVE_DB_DSN"))
	if dsn == "" {
		log.Fatal("VILLAGROVE_DB_DSN is required")
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.WithError(err).Fatal("open postgres")
	}
	if dir := strings.TrimSpace(os.Getenv("VILLAGROVE_MIGRATIONS_DIR")); dir != "" {
		if err := gormrepo.ApplyMigrations(context.Background(), db, dir); err != nil {
			log.WithError(err).Fatal("apply migrations")
		}
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	tokens := jwttoken.NewManager(secret, durationEnv("JWT_TTL", 24*time.Hour))

	users := gormrepo.NewUserRepo(db)
	villagers := gormrepo.NewVillagerRepo(db)
	caught := gormrepo.NewCaughtRecordRepo(db)
	inventoryRepo := gormrepo.NewInventoryRepo(db)
	txManager := gormrepo.NewTxManager(db)
	catalogProvider := staticcatalog.Provider{}
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{Users: users, Now: time.Now},
		LoginUC:    auth.LoginUseCase{Users: users, Tokens: tokens},
		ProfileUC:  auth.ProfileUseCase{Users: users},
		Tokens:     tokens,
		VillagerUC: villager.UseCase{
			TxManager: txManager,
			Villagers: villagers,
			Caught:    caught,
			Inventory: inventoryRepo,
			Interact:  village.InteractionService{},
			Now:       time.Now,
		},
		ActivityUC: activity.UseCase{
			TxManager: txManager,
			Villagers: villagers,
			Caught:    caught,
			Inventory: inventoryRepo,
			Catalog:   catalogProvider,
			Resolver:  village.CatchService{},
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		MuseumUC: museum.UseCase{
			Villagers: villagers,
			Caught:    caught,
			Catalog:   catalogProvider,
		},
		InventoryUC: inventory.UseCase{
			TxManager: txManager,
			Users:     users,
			Inventory: inventoryRepo,
			Catalog:   catalogProvider,
		},
		ShopUC: shop.UseCase{
			TxManager: txManager,
			Users:     users,
			Villagers: villagers,
			Inventory: inventoryRepo,
			Catalog:   catalogProvider,
			Now:       time.Now,
		},
		KPI:         kpiRecorder,
		Log:         log,
		AuthLimiter: buildAuthLimiter(log),
	}

	addr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.WithField("addr", addr).Info("villagrove server listening")
	s.Spin()
}

func buildLogger() *logrus.Logger {
	log := logrus.New()
	if strings.EqualFold(strings.TrimSpace(os.Getenv("APP_ENV")), "production") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// buildAuthLimiter throttles login and register through Redis. Without
// REDIS_ADDR the limiter stays off.
func buildAuthLimiter(log *logrus.Logger) app.HandlerFunc {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	limit := intEnv("AUTH_RATE_LIMIT", 10)
	return httpadapter.NewRateLimiter(rdb, limit, time.Minute, log)
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
