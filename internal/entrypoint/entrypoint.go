package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mrlokans/bookshelf/internal/bookstore"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/demo"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRepository builds the repository selected by cfg.Store.Driver. The
// returned close function releases it.
func NewRepository(cfg *config.Config) (bookstore.Repository, func() error, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory, "":
		return bookstore.NewMemoryRepository(), func() error { return nil }, nil
	case config.StoreDriverSQLite:
		db, err := database.NewDatabase(cfg.Store.SQLiteDSN)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// NewApp wires the service and router from cfg. In demo mode the store is
// seeded with sample books and writes are blocked.
func NewApp(cfg *config.Config, version string) (*gin.Engine, func() error, error) {
	repo, closeRepo, err := NewRepository(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	log.Printf("Store driver: %s", cfg.Store.Driver)

	service := bookstore.NewService(repo)

	var demoMiddleware *demo.Middleware
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)

		if err := service.Seed(bookstore.SeedData()); err != nil {
			closeRepo()
			return nil, nil, fmt.Errorf("failed to seed demo books: %w", err)
		}
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:          service,
		Store:          service,
		Version:        version,
		DemoMiddleware: demoMiddleware,
	})

	return router, closeRepo, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	router, closeRepo, err := NewApp(cfg, version)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	onShutdown := func(ctx context.Context) {
		if err := closeRepo(); err != nil {
			log.Printf("Error closing store: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
