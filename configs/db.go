package configs

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yunusinal/lezzetlimani-sub001/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) {
	database, err := gorm.Open(sqlite.Open(cfg.DBSource), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// Catalog schema only; cart and favorites live behind the KV store.
	db.AutoMigrate(
		&entity.Cuisine{},
		&entity.DiscountRule{},
		&entity.Restaurant{},
		&entity.Menu{},
		&entity.Campaign{},
	)
}

// NewRedisClient connects the session-state store (cart/favorites blobs).
func NewRedisClient(cfg *Config) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
}
