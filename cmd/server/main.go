package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rhyrak/go-advisor/internal/config"
	"github.com/rhyrak/go-advisor/internal/scheduler"
)

const defaultAddr = ":3001"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file, using process environment")
	}

	cfg := scheduler.NewDefaultConfiguration()
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		logger.Error("loading config", "error", err)
		os.Exit(1)
	}
	if err := fileCfg.Apply(cfg); err != nil {
		logger.Error("applying config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("validating config", "error", err)
		os.Exit(1)
	}

	addr := os.Getenv("ADVISOR_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	r := newRouter(&server{cfg: cfg, logger: logger}, gin.Default())
	logger.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newRouter(s *server, r *gin.Engine) *gin.Engine {
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.POST("/eligible", s.handleEligible)
	r.POST("/next-term", s.handleNextTerm)
	r.POST("/simulate", s.handleSimulate)
	return r
}
