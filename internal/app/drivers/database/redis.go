package database

import (
	"context"
	"fmt"
	"jondonfit-service/internal/app/config"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the client used for sessions and the
// weigh-in sweep lock.
func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	var ctx = context.Background()
	rdb := redis.NewClient(&redis.Options{
		Addr:       fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password:   driverConfig.Redis.Password,
		ClientName: "jondonfit-service",
	})

	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}

	return rdb
}
