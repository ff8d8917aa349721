package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/sgfroerer/swift-dialer-nexus/internal/config"
	"github.com/sgfroerer/swift-dialer-nexus/internal/database"
	"github.com/sgfroerer/swift-dialer-nexus/internal/handler"
	"github.com/sgfroerer/swift-dialer-nexus/internal/localstore"
	middlewarepkg "github.com/sgfroerer/swift-dialer-nexus/internal/middleware"
	"github.com/sgfroerer/swift-dialer-nexus/internal/repository"
	"github.com/sgfroerer/swift-dialer-nexus/internal/router"
	"github.com/sgfroerer/swift-dialer-nexus/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var (
		contactsRepo  repository.ContactsRepository
		callListsRepo repository.CallListsRepository
	)

	switch cfg.StorageDriver {
	case config.StorageLocal:
		store, err := localstore.Open(cfg.LocalStorePath, cfg.SeedSampleData)
		if err != nil {
			log.Fatalf("failed to open local store: %v", err)
		}
		contactsRepo = store
	default:
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
		defer pool.Close()

		if err := database.Migrate(ctx, pool); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}

		contactsRepo = repository.NewPGXContactsRepository(pool)
		callListsRepo = repository.NewPGXCallListsRepository(pool)
	}

	contactService := service.NewContactService(contactsRepo, cfg.PhoneRegion)
	if cfg.StorageDriver != config.StorageLocal {
		contactService.RequireCallList()
	}
	templateService := service.NewTemplateService()
	simulator := service.NewSimulator(rand.NewSource(time.Now().UnixNano()))

	handlers := router.Handlers{
		Contacts:  handler.NewContactsHandler(contactService),
		Dialer:    handler.NewDialerHandler(contactService, simulator, cfg.DialCooldown),
		CSV:       handler.NewCSVHandler(contactService),
		Templates: handler.NewTemplatesHandler(templateService, contactService),
	}
	if callListsRepo != nil {
		handlers.CallLists = handler.NewCallListsHandler(service.NewCallListService(callListsRepo))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, handlers)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
