package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"boundary-diagnostic/internal/api"
)

func main() {
	_ = godotenv.Load()

	baseDir, err := os.Getwd()
	if err != nil {
		logrus.Fatalf("determine working directory: %v", err)
	}

	dataDir := filepath.Join(baseDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		logrus.Fatalf("create data directory: %v", err)
	}

	cfg := api.Config{
		DBPath:         filepath.Join(dataDir, "boundary-diagnostic.db"),
		AllowedOrigins: splitOrigins(os.Getenv("ALLOWED_ORIGINS")),
		DisableStats:   strings.EqualFold(strings.TrimSpace(os.Getenv("DISABLE_STATS")), "true"),
	}

	if override := strings.TrimSpace(os.Getenv("DIAGNOSTIC_DB_PATH")); override != "" {
		cfg.DBPath = override
	}

	if len(cfg.AllowedOrigins) == 0 {
		logrus.Warn("ALLOWED_ORIGINS not set - allowing all origins (development mode)")
	}

	server, err := api.NewServer(cfg)
	if err != nil {
		logrus.Fatalf("create server: %v", err)
	}

	router, err := server.Router()
	if err != nil {
		logrus.Fatalf("configure router: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.Infof("starting boundary-diagnostic backend on :%s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
