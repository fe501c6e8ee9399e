package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/semprecheioapp/semprecheio-api/internal/config"
	dbpkg "github.com/semprecheioapp/semprecheio-api/internal/db"
	"github.com/semprecheioapp/semprecheio-api/internal/routes"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/storage/memory"
	"github.com/semprecheioapp/semprecheio-api/internal/storage/postgres"
)

func main() {

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()
	store := newStore(cfg, log)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, cfg, log)

	log.Info("server starting",
		zap.String("addr", cfg.Addr()),
		zap.String("storage_driver", cfg.StorageDriver))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// newStore picks the storage backend once at startup. Postgres keeps
// sessions in redis when REDIS_URL is set, in the database otherwise.
func newStore(cfg *config.Config, log *zap.Logger) storage.Storage {
	switch cfg.StorageDriver {
	case "memory":
		return memory.New()
	case "postgres":
		db := dbpkg.NewDB(cfg, log)

		sessions := postgres.NewGormSessions(db)
		if rdb := dbpkg.NewRedis(cfg.RedisURL, log); rdb != nil {
			sessions = postgres.NewRedisSessions(rdb)
		}

		return postgres.New(db, sessions)
	default:
		log.Fatal("unknown STORAGE_DRIVER", zap.String("driver", cfg.StorageDriver))
		return nil
	}
}
