package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/agendaservices/salon-agenda/internal/brasilapi"
	"github.com/agendaservices/salon-agenda/internal/config"
	dbpkg "github.com/agendaservices/salon-agenda/internal/db"
	domain "github.com/agendaservices/salon-agenda/internal/domain/appointment"
	"github.com/agendaservices/salon-agenda/internal/logger"
	"github.com/agendaservices/salon-agenda/internal/middleware"
	"github.com/agendaservices/salon-agenda/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	policy, err := domain.ParseExclusionPolicy(cfg.AvailabilityPolicy)
	if err != nil {
		zlog.Fatal("configuração inválida", zap.Error(err))
	}

	brasil := brasilapi.NewClient(cfg.BrasilAPIURL, cfg.BrasilAPITimeout, zlog)

	var calendar brasilapi.Calendar = brasil
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		calendar = brasilapi.NewCachedCalendar(brasil, rdb, cfg.HolidayCacheTTL, zlog)
		zlog.Info("cache de feriados habilitado", zap.String("redis", cfg.RedisAddr))
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, zlog, policy, calendar, brasil)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
