package server

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/redis/v3"
)

// newRedisStorage connects the limiter storage. The redis driver panics when
// the first ping fails, so that is turned into an error here.
func newRedisStorage(url string) (storage fiber.Storage, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to connect to redis: %v", r)
		}
	}()
	return redis.New(redis.Config{URL: url}), nil
}
