package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"desi-beats/config"
	httpapi "desi-beats/menu-svc/internal/api/http"
	"desi-beats/menu-svc/internal/seed"
	"desi-beats/menu-svc/internal/service"
	"desi-beats/menu-svc/internal/storage"
)

// repository is what every catalog/order backend implements.
type repository interface {
	service.CategoryRepository
	service.MenuItemRepository
	service.OrderRepository
}

type backends struct {
	repo      repository
	sessions  service.SessionStore
	stats     service.StatsReader
	publisher service.OrderPublisher
	closers   []func()
}

func (b *backends) close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openBackends picks Mongo, then Postgres, then process memory for the
// catalog and orders, and Redis or memory for admin sessions.
func openBackends(ctx context.Context, cfg config.Config) *backends {
	b := &backends{}

	switch {
	case cfg.MongoURI != "":
		db := config.MustInitMongo(cfg.MongoURI, cfg.MongoDatabase)
		repo := storage.NewMongoRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Fatalf("[menu-svc] mongo indexes: %v", err)
		}
		b.repo = repo
		b.closers = append(b.closers, func() { _ = db.Client().Disconnect(context.Background()) })
		log.Println("[menu-svc] using MongoDB storage")
	case cfg.DBHost != "":
		db := config.MustInitPostgres()
		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("[menu-svc] postgres schema: %v", err)
		}
		b.repo = repo
		b.closers = append(b.closers, func() { db.Close() })
		log.Println("[menu-svc] using PostgreSQL storage")
	default:
		b.repo = storage.NewMemoryStore()
		log.Println("[menu-svc] WARNING: no database configured, data is kept in memory only")
	}

	if cfg.RedisHost != "" {
		rdb := config.MustInitRedis()
		b.sessions = storage.NewRedisSessionStore(rdb)
		b.stats = storage.NewRedisStats(rdb)
		b.closers = append(b.closers, func() { rdb.Close() })
	} else {
		b.sessions = storage.NewMemorySessionStore()
	}

	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.OrdersTopic)
		b.publisher = storage.NewKafkaPublisher(writer)
		b.closers = append(b.closers, func() { writer.Close() })
	}
	return b
}

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := openBackends(ctx, cfg)
	defer b.close()

	if cfg.SeedCatalog {
		seedCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if _, err := seed.Run(seedCtx, b.repo, b.repo); err != nil {
			log.Printf("[menu-svc] seeding failed: %v", err)
		}
		cancel()
	}

	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "admin" {
		log.Println("[menu-svc] WARNING: using the default admin password")
	}

	qr := service.DefaultQRGenerator{BaseURL: cfg.PublicBaseURL}
	handler := httpapi.NewHandler(httpapi.Services{
		Categories: service.NewCategoryService(b.repo),
		MenuItems:  service.NewMenuItemService(b.repo, b.repo, storage.NewLocalImageStore(cfg.UploadDir, "/uploads")),
		Orders:     service.NewOrderService(b.repo, b.publisher, qr),
		Auth: service.NewAuthService(service.AdminCredentials{
			Username:     cfg.AdminUsername,
			Password:     cfg.AdminPassword,
			PasswordHash: cfg.AdminPasswordHash,
		}, b.sessions, cfg.SessionTTL),
		Dashboard: service.NewDashboardService(b.repo, b.repo, b.repo, b.stats),
		Content:   service.NewContentService(cfg.HeroSliderPath, cfg.ImageKitPrivateKey),
	})
	handler.CookieSecure = cfg.CookieSecure

	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		UploadDir:      cfg.UploadDir,
	})

	if err := httpapi.StartServer(ctx, ":"+cfg.Port, router); err != nil {
		log.Printf("[menu-svc] server error: %v", err)
		b.close()
		os.Exit(1)
	}
	log.Println("[menu-svc] server exited properly")
}
