package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

const filterOptionsKeyPrefix = "filter_options:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=redis.go -destination=mocks/redis.go -package=mocks
type FilterOptionsCache interface {
	Get(ctx context.Context, accountID string) (domain.FilterOptions, bool, error)
	Set(ctx context.Context, accountID string, options domain.FilterOptions) error
	Invalidate(ctx context.Context, accountID string) error
}

// NewRedisClient abre o cliente a partir de uma URL redis:// e valida a conexão
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("url do redis inválida: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("falha ao conectar no redis: %w", err)
	}

	return client, nil
}

type redisFilterOptionsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFilterOptionsCache(client *redis.Client, ttl time.Duration) FilterOptionsCache {
	return &redisFilterOptionsCache{
		client: client,
		ttl:    ttl,
	}
}

func filterOptionsKey(accountID string) string {
	return filterOptionsKeyPrefix + accountID
}

func (c *redisFilterOptionsCache) Get(ctx context.Context, accountID string) (domain.FilterOptions, bool, error) {
	raw, err := c.client.Get(ctx, filterOptionsKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("erro ao ler opções de filtro do cache: %w", err)
	}

	var options domain.FilterOptions
	if err := json.Unmarshal(raw, &options); err != nil {
		return nil, false, fmt.Errorf("erro ao decodificar opções de filtro: %w", err)
	}

	return options, true, nil
}

func (c *redisFilterOptionsCache) Set(ctx context.Context, accountID string, options domain.FilterOptions) error {
	payload, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("erro ao serializar opções de filtro: %w", err)
	}

	if err := c.client.Set(ctx, filterOptionsKey(accountID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("erro ao gravar opções de filtro no cache: %w", err)
	}

	return nil
}

func (c *redisFilterOptionsCache) Invalidate(ctx context.Context, accountID string) error {
	return c.client.Del(ctx, filterOptionsKey(accountID)).Err()
}
