package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"storefront-service/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	productDetailPrefix = "product:detail:"
	latestPagePrefix    = "products:latest:"
	catalogVersionKey   = "products:version"

	defaultTTL = 5 * time.Minute
)

// Manager handles Redis caching for product lookups. All operations are
// best-effort: a cache failure never fails the request.
type Manager struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewManager creates a cache Manager around an existing redis client.
func NewManager(client *redis.Client) *Manager {
	return &Manager{redis: client, ttl: defaultTTL}
}

// Connect builds a redis client from address/password and verifies the
// connection.
func Connect(ctx context.Context, addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// GetProduct retrieves a cached formatted product by slug.
func (m *Manager) GetProduct(ctx context.Context, slug string) (*models.FormattedProduct, bool) {
	if m == nil || m.redis == nil {
		return nil, false
	}
	data, err := m.redis.Get(ctx, productDetailPrefix+slug).Result()
	if err != nil {
		return nil, false
	}
	var p models.FormattedProduct
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		zap.L().Warn("failed to unmarshal cached product", zap.Error(err), zap.String("slug", slug))
		return nil, false
	}
	return &p, true
}

// SetProductAsync caches a formatted product without blocking the
// request path.
func (m *Manager) SetProductAsync(slug string, product *models.FormattedProduct) {
	if m == nil || m.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		b, err := json.Marshal(product)
		if err != nil {
			zap.L().Warn("failed to marshal product for cache", zap.Error(err), zap.String("slug", slug))
			return
		}
		if err := m.redis.Set(bgCtx, productDetailPrefix+slug, b, m.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product", zap.Error(err), zap.String("slug", slug))
		}
	}()
}

// GetLatestPage retrieves a cached latest-products page for the current
// catalog version.
func (m *Manager) GetLatestPage(ctx context.Context, limit, offset int) (*models.ProductPage, bool) {
	if m == nil || m.redis == nil {
		return nil, false
	}
	data, err := m.redis.Get(ctx, m.latestPageKey(ctx, limit, offset)).Result()
	if err != nil {
		return nil, false
	}
	var page models.ProductPage
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		zap.L().Warn("failed to unmarshal cached product page", zap.Error(err))
		return nil, false
	}
	return &page, true
}

// SetLatestPageAsync caches a latest-products page without blocking the
// request path.
func (m *Manager) SetLatestPageAsync(limit, offset int, page *models.ProductPage) {
	if m == nil || m.redis == nil {
		return
	}
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		b, err := json.Marshal(page)
		if err != nil {
			zap.L().Warn("failed to marshal product page for cache", zap.Error(err))
			return
		}
		if err := m.redis.Set(bgCtx, m.latestPageKey(bgCtx, limit, offset), b, m.ttl).Err(); err != nil {
			zap.L().Warn("failed to cache product page", zap.Error(err))
		}
	}()
}

// latestPageKey embeds the catalog version, so bumping the version on a
// catalog write retires every cached page at once and stale keys age
// out with the TTL.
func (m *Manager) latestPageKey(ctx context.Context, limit, offset int) string {
	version, err := m.redis.Get(ctx, catalogVersionKey).Int64()
	if err != nil {
		version = 0
	}
	return fmt.Sprintf("%s%d:%d:%d", latestPagePrefix, version, limit, offset)
}

// InvalidateProduct drops the cached detail entry for a slug and bumps
// the catalog version so cached list pages roll over.
func (m *Manager) InvalidateProduct(ctx context.Context, slug string) {
	if m == nil || m.redis == nil {
		return
	}
	if err := m.redis.Del(ctx, productDetailPrefix+slug).Err(); err != nil && err != redis.Nil {
		zap.L().Warn("failed to invalidate cached product", zap.Error(err), zap.String("slug", slug))
	}
	if err := m.redis.Incr(ctx, catalogVersionKey).Err(); err != nil {
		zap.L().Warn("failed to bump catalog cache version", zap.Error(err))
	}
}
