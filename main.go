package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/di"
	"social-spectrum-server/internal/logging"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/storage"

	"github.com/gin-gonic/gin"
)

const (
	applicationName    = "Social Spectrum Server"
	applicationVersion = "1.0.0"
	shutdownTimeout    = 5 * time.Second
)

func main() {
	configDir := flag.String("config", "config", "directory containing config.yaml")
	exportRoutes := flag.Bool("export", false, "write routes.json and exit")
	flag.Parse()

	if err := run(*configDir, *exportRoutes); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(configDir string, exportRoutes bool) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}
	logging.Init(cfg.Log.Level)

	if strings.EqualFold(cfg.Storage.Driver, "local") || cfg.Storage.Driver == "" {
		if err := checkSecurePath(cfg.Storage.LocalPath); err != nil {
			return err
		}
	}

	gormDB, err := db.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		defer sqlDB.Close()
	}

	blobs, err := storage.New(cfg)
	if err != nil {
		return err
	}

	redisClient := platformservice.NewRedisClient(cfg)
	defer func() {
		if err := platformservice.CloseRedisClient(redisClient); err != nil {
			slog.Warn("close redis", "error", err)
		}
	}()

	app, err := di.InitializeApplication(cfg, gormDB, redisClient, blobs)
	if err != nil {
		return fmt.Errorf("build application: %w", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	app.Router.Init(r)

	if exportRoutes {
		return exportAPI(r, "routes.json")
	}

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "mode", cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("server exited")
	return nil
}

func printWelcomeMessage(cfg *config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   %s\n", applicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   version  : %s\n", applicationVersion)
	fmt.Printf(" │   port     : %s\n", cfg.Server.Port)
	fmt.Printf(" │   database : %s\n", cfg.Database.Type)
	fmt.Printf(" │   storage  : %s\n", cfg.Storage.Driver)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

// RouteInfo is one entry of the exported route list.
type RouteInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportAPI(r *gin.Engine, filename string) error {
	routes := r.Routes()
	exportList := make([]RouteInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	slog.Info("routes exported", "file", filename, "count", len(exportList))
	return nil
}

// checkSecurePath refuses local storage directories that would expose the
// working tree: the project root itself, or anything outside the allowed
// top-level directories.
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve storage path: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("storage path %q must not be the project root", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}

	allowedDirs := []string{"uploads", "public", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("storage path %q must live under one of %v", path, allowedDirs)
}
