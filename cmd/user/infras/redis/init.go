package redis

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var redisDB *redis.Client

// Init 连接 redis，地址为空时不启用
func Init(addr, password string, db int) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}
	redisDB = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	pong, err := redisDB.Ping(ctx).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to redis %s", addr)
	}
	hlog.Info("Connected to redis : ", pong)
	return redisDB, nil
}

func Close() {
	if redisDB != nil {
		_ = redisDB.Close()
	}
}
