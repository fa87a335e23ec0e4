package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"menuboard/internal/domain/entity"
	"menuboard/internal/domain/service"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const (
	publicMenuKey     = "menu:public"
	menuGenerationKey = "menu:generation"
	defaultMenuTTL    = 5 * time.Minute
)

// redisStore is the subset of *redis.Client the cache needs.
type redisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

type redisMenuCache struct {
	store         redisStore
	key           string
	generationKey string
	ttl           time.Duration
}

// NewRedisMenuCache stores the public menu as JSON under <prefix>menu:public:<generation>.
// The generation counter lives under <prefix>menu:generation; superseded entries expire with the TTL.
func NewRedisMenuCache(store redisStore, keyPrefix string, ttl time.Duration) service.MenuCache {
	if ttl <= 0 {
		ttl = defaultMenuTTL
	}

	return &redisMenuCache{
		store:         store,
		key:           keyPrefix + publicMenuKey,
		generationKey: keyPrefix + menuGenerationKey,
		ttl:           ttl,
	}
}

func (c *redisMenuCache) menuKey(generation int64) string {
	return c.key + ":" + strconv.FormatInt(generation, 10)
}

func (c *redisMenuCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.store.Get(ctx, c.generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	return generation, errors.Wrap(err, "failed to read menu generation")
}

func (c *redisMenuCache) GetPublicMenu(ctx context.Context, generation int64) (*entity.PublicMenu, bool, error) {
	raw, err := c.store.Get(ctx, c.menuKey(generation)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to read cached menu")
	}

	menu := &entity.PublicMenu{}
	if err := json.Unmarshal(raw, menu); err != nil {
		return nil, false, errors.Wrap(err, "failed to decode cached menu")
	}

	return menu, true, nil
}

func (c *redisMenuCache) SetPublicMenu(ctx context.Context, generation int64, menu *entity.PublicMenu) error {
	raw, err := json.Marshal(menu)
	if err != nil {
		return errors.Wrap(err, "failed to encode menu")
	}

	return errors.Wrap(c.store.Set(ctx, c.menuKey(generation), raw, c.ttl).Err(), "failed to cache menu")
}

func (c *redisMenuCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.store.Incr(ctx, c.generationKey).Err(), "failed to invalidate cached menu")
}
