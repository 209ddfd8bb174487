package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	_ "counter_billing/docs" // generated by swag init
	"counter_billing/internal/adapter/http/handlers"
	"counter_billing/internal/config"
	"counter_billing/internal/infrastructure/images"
	"counter_billing/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const startupTimeout = 15 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	counter, closeStore, err := bootCounter(ctx, cfg, openStore)
	cancel()
	if err != nil {
		log.Fatalf("Failed to start counter: %v", err)
	}

	router := NewRouter(cfg, counter)
	err = router.Run(":" + strconv.Itoa(cfg.Port))
	closeStore()
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

type storeOpener func(ctx context.Context, cfg *config.Config) (storeAPI, func(), error)

// bootCounter opens the store and loads the saved menu and history. On
// failure the store is already closed, since callers exit via log.Fatalf,
// which skips deferred calls.
func bootCounter(ctx context.Context, cfg *config.Config, open storeOpener) (*usecase.CounterUseCase, func(), error) {
	store, closeStore, err := open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}

	counter := newCounter(store, cfg)
	if err := counter.Load(ctx, cfg.DiscardCorruptSnapshots); err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("load saved data (set DISCARD_CORRUPT_SNAPSHOTS=true to start empty): %w", err)
	}
	return counter, closeStore, nil
}

func newCounter(store storeAPI, cfg *config.Config) *usecase.CounterUseCase {
	menu := usecase.NewMenuCatalogUseCase(
		store,
		images.NewPromptURLBuilder(cfg.ImageBaseURL),
		usecase.StoreKey(cfg.Store.KeyPrefix, usecase.MenuStoreKey),
	)
	ledger := usecase.NewHistoryLedgerUseCase(
		store,
		usecase.StoreKey(cfg.Store.KeyPrefix, usecase.HistoryStoreKey),
		cfg.BillLocation,
	)
	return usecase.NewCounterUseCase(menu, usecase.NewBillBuilder(), ledger)
}

// NewRouter builds the HTTP engine around an already loaded counter.
func NewRouter(cfg *config.Config, counter usecase.ICounterUseCase) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCounterRoutes(v1,
		handlers.NewMenuHandler(counter),
		handlers.NewBillHandler(counter),
		handlers.NewHistoryHandler(counter),
	)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
