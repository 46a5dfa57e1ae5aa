package cache

import (
	"os"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Enabled reports whether a redis endpoint is configured. The cache is an
// optional read-path accelerator; everything works without it.
func Enabled() bool {
	return os.Getenv("REDIS_URL") != ""
}

func CreateRedisPool() *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return redis.Dial("tcp", os.Getenv("REDIS_URL")) },
	}
}
