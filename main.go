package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sparkleclean/sparkleclean/backend/go-services/handlers"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/admin"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/backup"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/handler"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/service"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/booking/store"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/config"
	"github.com/sparkleclean/sparkleclean/backend/go-services/internal/database"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/logger"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/metrics"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: dataFile=%s mongo=%v redis=%v minio=%v",
		cfg.Store.DataFile, cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Backup.Endpoint != "")

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Lightweight CORS middleware so the marketing pages can call the API
	// directly. (Keep this intentionally simple — production should use a
	// stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, x-admin-token")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	ctx := context.Background()

	// Admin secret: config override or a fresh one per process. Restarting
	// invalidates every outstanding admin link; that is the contract.
	secret := cfg.Admin.Token
	if secret == "" {
		secret, err = admin.NewSecret()
		if err != nil {
			logger.Fatalf("failed to generate admin secret: %v", err)
		}
	}

	// Pick the booking store: Mongo when configured, flat JSON file otherwise.
	var st store.Store
	if cfg.MongoDB.URI != "" {
		client, errConn := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if errConn != nil {
			logger.Warnf("cannot connect to MongoDB (%v) — falling back to file store", errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			col := client.Database(cfg.MongoDB.Database).Collection("bookings")
			st = store.NewMongoStore(col)
			logger.Infof("using MongoDB-backed booking store")
		}
	}
	if st == nil {
		st = store.NewFileStore(cfg.Store.DataFile)
		logger.Infof("using file-backed booking store at %s", cfg.Store.DataFile)
	}
	// failure is logged, not fatal: the server still answers, requests
	// will surface storage errors individually
	storeReady := true
	if err := st.EnsureReady(ctx); err != nil {
		storeReady = false
		logger.Errorf("booking store not ready: %v", err)
	}

	svc := service.New(st)

	// Optional rate limiter for the public submission route
	var publicMW gin.HandlerFunc
	var rdb *redis.Client
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && cfg.Redis.Host != "" {
			rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warnf("redis unavailable for rate limiting (%v) — using in-memory limiter", err)
				rdb = nil
			}
		}
		win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
		if rdb != nil {
			publicMW = middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win)
		} else {
			publicMW = middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		}
	}

	// Optional snapshot backup target
	var uploader handler.SnapshotUploader
	if cfg.Backup.Endpoint != "" {
		bc, errB := backup.NewClient(cfg.Backup)
		if errB != nil {
			logger.Warnf("backup storage unavailable: %v", errB)
		} else {
			uploader = bc
			logger.Infof("snapshot backups enabled (bucket %s)", cfg.Backup.Bucket)
		}
	}

	handler.RegisterBookingRoutes(r, svc, middleware.AdminGuard(secret), publicMW, uploader)
	handlers.RegisterSwagger(r)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — report the store and optional dependencies
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"storage": storeReady,
			"backup":  uploader != nil,
		}
		if !storeReady {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// The console is the only delivery mechanism for the admin secret;
	// it is never persisted and changes on every restart.
	fmt.Printf("Admin token: %s\n", secret)
	fmt.Printf("Admin panel: %s\n", admin.PanelURL(cfg.Admin.PublicBaseURL, secret))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting booking service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
