package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/mkarpovich/identity-server/internal/api/http/router"
	httpServer "github.com/mkarpovich/identity-server/internal/api/http/server"
	"github.com/mkarpovich/identity-server/internal/broker/rabbit"
	"github.com/mkarpovich/identity-server/internal/config"
	"github.com/mkarpovich/identity-server/internal/logger"
	"github.com/mkarpovich/identity-server/internal/repository/postgres"
	"github.com/mkarpovich/identity-server/internal/security"
	"github.com/mkarpovich/identity-server/internal/service"
	storage "github.com/mkarpovich/identity-server/internal/storage/minio"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	claimRepo := postgres.NewClaimRepository(db)
	refreshTokenRepo := postgres.NewRefreshTokenRepository(db)

	publisher, err := rabbit.NewPublisher(cfg.Broker.URL)
	if err != nil {
		logger.Fatal("failed to connect to broker", "error", err)
	}
	defer publisher.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	avatarStore, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize avatar storage", "error", err)
	}

	hasher := security.NewHasher(cfg.Security.BcryptCost)

	userService := service.NewUserService(userRepo, roleRepo, claimRepo, refreshTokenRepo, publisher, hasher, logger)
	roleService := service.NewRoleService(roleRepo, logger)
	tokenService := service.NewRefreshTokenService(refreshTokenRepo, logger)

	if err := roleService.SetupRoles(ctx); err != nil {
		logger.Fatal("failed to set up roles", "error", err)
	}

	r := router.New(userService, roleService, tokenService, avatarStore, logger)
	srv := httpServer.NewHTTPServer(r.Register(), ":"+cfg.HTTP.Port)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", srv.Address())
		if err := srv.Start(); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
