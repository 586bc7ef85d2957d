package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"restopos/pos-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	syncStatusKey   = "sync:status"
	tableBoardKey   = "board:tables"
	dailyRetention  = 7 * 24 * time.Hour
	deviceRetention = 30 * 24 * time.Hour
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// CachedStatus returns the cached sync status, or nil on a miss.
func (c *RedisCache) CachedStatus(ctx context.Context) (*domain.SyncStatus, error) {
	raw, err := c.Client.Get(ctx, syncStatusKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var status domain.SyncStatus
	if err := json.Unmarshal(raw, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *RedisCache) StoreStatus(ctx context.Context, status *domain.SyncStatus) error {
	payload, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, syncStatusKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateStatus(ctx context.Context) error {
	return c.Client.Del(ctx, syncStatusKey).Err()
}

func (c *RedisCache) DeviceSyncKey(deviceID string) string {
	return "sync:device:" + deviceID
}

func (c *RedisCache) MarkDeviceSync(ctx context.Context, deviceID string, at time.Time) error {
	return c.Client.Set(ctx, c.DeviceSyncKey(deviceID), at.UTC().Format(time.RFC3339Nano), deviceRetention).Err()
}

// DeviceLastSync returns nil when the device never synced.
func (c *RedisCache) DeviceLastSync(ctx context.Context, deviceID string) (*time.Time, error) {
	raw, err := c.Client.Get(ctx, c.DeviceSyncKey(deviceID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, err
	}
	return &at, nil
}

func (c *RedisCache) SetTableStatus(ctx context.Context, tableID int, status domain.TableStatus) error {
	return c.Client.HSet(ctx, tableBoardKey, strconv.Itoa(tableID), string(status)).Err()
}

// TableBoard maps table id to its last projected status.
func (c *RedisCache) TableBoard(ctx context.Context) (map[int]domain.TableStatus, error) {
	raw, err := c.Client.HGetAll(ctx, tableBoardKey).Result()
	if err != nil {
		return nil, err
	}

	board := make(map[int]domain.TableStatus, len(raw))
	for field, value := range raw {
		id, err := strconv.Atoi(field)
		if err != nil {
			continue
		}
		board[id] = domain.TableStatus(value)
	}
	return board, nil
}

func (c *RedisCache) DailySalesKey(day time.Time) string {
	return "analytics:daily:" + day.UTC().Format("2006-01-02")
}

func (c *RedisCache) AddItemSales(ctx context.Context, day time.Time, menuItemID, delta int) error {
	key := c.DailySalesKey(day)
	if err := c.Client.ZIncrBy(ctx, key, float64(delta), strconv.Itoa(menuItemID)).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, dailyRetention).Err()
}

// TopItems returns up to limit menu items sold on day, best sellers first.
func (c *RedisCache) TopItems(ctx context.Context, day time.Time, limit int) ([]domain.ItemSales, error) {
	entries, err := c.Client.ZRevRangeWithScores(ctx, c.DailySalesKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.ItemSales, 0, len(entries))
	for _, entry := range entries {
		member, _ := entry.Member.(string)
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		items = append(items, domain.ItemSales{MenuItemID: id, Quantity: int(entry.Score)})
	}
	return items, nil
}
