// @title Agora API
// @version 0.1.0
// @description Authorization-aware domain API and live GraphQL subscription streams.
// @BasePath /
// @securityDefinitions.apikey ViewerAuth
// @in header
// @name Authorization
// @description Provide the viewer bearer token as `Bearer <token>`.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"agora/internal"
	"agora/internal/env"
	"agora/internal/logx"
	"agora/internal/swagger"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v3"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on (overrides ADDR)")
	envRoot := flag.String("env-root", "", "directory containing the .env file")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	cfg, err := env.Load(*envRoot, *appVersion)
	if err != nil {
		log.Fatal("could not load configuration", "err", err)
	}

	if deploy := strings.TrimSpace(*deployment); deploy != "" {
		cfg.Deployment = deploy
	} else if args := flag.Args(); len(args) > 0 {
		cfg.Deployment = strings.TrimSpace(args[0])
	}

	addr := cfg.Addr
	if port := strings.TrimSpace(*portFlag); port != "" {
		addr = fmt.Sprintf(":%s", port)
	}

	logger, err := logx.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("could not build logger", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := internal.SetupApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("could not start", "err", err)
	}
	swagger.Register(srv.App)

	logger.Info("starting", "version", env.VERSION, "addr", addr, "deployment", cfg.Deployment)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		// stop handlers first so nothing emits into closed components
		if err := srv.App.ShutdownWithTimeout(5 * time.Second); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
		srv.Close()
	}()

	if err := srv.App.Listen(addr, fiber.ListenConfig{
		EnablePrefork: env.PREFORK,
	}); err != nil {
		logger.Fatal("listen failed", "addr", addr, "err", err)
	}
}
