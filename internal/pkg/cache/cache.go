// Package cache 提供基于 Redis 的只读接口缓存。未配置 Redis 时全部操作为空实现，
// 调用方不需要判空。
package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AndriiHamasa/lunchify/internal/pkg/options"
	"github.com/maxiaolu1981/cretem/nexuscore/log"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New 建立 Redis 连接。opts.Host 为空时返回禁用的缓存实例。
func New(opts *options.RedisOptions) (*Cache, error) {
	if opts == nil || opts.Host == "" {
		return &Cache{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:        opts.Addr(),
		Password:    opts.Password,
		DB:          opts.Database,
		DialTimeout: opts.Timeout,
		ReadTimeout: opts.Timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	log.Infof("menu cache connected to redis at %s", opts.Addr())

	return &Cache{client: client, ttl: opts.CacheTTL}, nil
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get 返回缓存值。未命中或缓存不可用时第二个返回值为 false。
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warnf("cache get %s failed: %v", key, err)
		}

		return nil, false
	}

	return data, true
}

// Set 写入缓存，失败只记日志不影响主流程。
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if !c.Enabled() {
		return
	}

	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		log.Warnf("cache set %s failed: %v", key, err)
	}
}

// Invalidate 删除一组缓存键。
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Warnf("cache invalidate failed: %v", err)
	}
}

// Close 断开 Redis 连接。
func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}

	return c.client.Close()
}
