package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"admin/internal/configuration"

	"github.com/redis/rueidis"
	"go.uber.org/zap"
)

type RueidisCache struct {
	client rueidis.Client
}

var _ ICache = (*RueidisCache)(nil)

func NewRueidisCache(
	hosts []string,
	password string,
	tlsEnabled bool,
	tlsServerName string,
) (*RueidisCache, error) {
	clientOption := rueidis.ClientOption{
		InitAddress: hosts,
		Password:    password,
	}

	if tlsEnabled {
		clientOption.TLSConfig = &tls.Config{
			ServerName: tlsServerName,
			MinVersion: tls.VersionTLS12,
		}
	}

	client, err := rueidis.NewClient(clientOption)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cache: %w", err)
	}
	return &RueidisCache{client: client}, nil
}

func (r *RueidisCache) RegisterPlatform(id string) error {
	ctx := context.Background()
	currentTime := float64(time.Now().Unix())
	return r.client.Do(ctx,
		r.client.B().Zadd().Key(configuration.CacheAppIdentityKey).ScoreMember().
			ScoreMember(currentTime, id).Build(),
	).Error()
}

func (r *RueidisCache) DeleteInactivePlatform() error {
	ctx := context.Background()
	currentTime := float64(time.Now().Unix())
	maxLifetime := float64(configuration.CacheMaxAppIdentityLifetime)
	return r.client.Do(ctx,
		r.client.B().Zremrangebyscore().Key(configuration.CacheAppIdentityKey).
			Min("-inf").Max(fmt.Sprintf("%f", currentTime-maxLifetime)).Build(),
	).Error()
}

func (r *RueidisCache) StartIdentityTicker(id string) {
	err := r.RegisterPlatform(id)
	if err != nil {
		zap.L().Fatal("Failed to register platform", zap.String("platform", id), zap.Error(err))
	}

	err = r.DeleteInactivePlatform()
	if err != nil {
		zap.L().Fatal("Failed to delete platform", zap.String("platform", id), zap.Error(err))
	}

	ticker := time.NewTicker(60 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		err = r.RegisterPlatform(id)
		if err != nil {
			zap.L().Fatal("App identity ticker crashed", zap.Error(err))
		}
		err = r.DeleteInactivePlatform()
		if err != nil {
			zap.L().Fatal("App identity ticker crashed", zap.Error(err))
		}
	}
}

func (r *RueidisCache) GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error) {
	ctx := context.Background()

	key := fmt.Sprintf(configuration.CacheAppRateLimitKey, userIdentifier)
	count, err := r.client.Do(ctx, r.client.B().Incr().Key(key).Build()).AsInt64()
	if err != nil {
		return 0, err
	}

	if count == 1 {
		expireErr := r.client.Do(ctx, r.client.B().Expire().Key(key).Seconds(int64(1*time.Minute.Seconds())).Build()).
			Error()
		if expireErr != nil {
			return 0, expireErr
		}
	}

	if int(count) > requestsPerMinute {
		retryAfter, ttlErr := r.client.Do(ctx, r.client.B().Ttl().Key(key).Build()).AsInt64()
		if ttlErr != nil {
			return 0, ttlErr
		}

		return int(retryAfter), nil
	}

	return 0, nil
}

func (r *RueidisCache) TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error) {
	ctx := context.Background()
	err := r.client.Do(ctx,
		r.client.B().Set().Key(key).Value(instanceID).Nx().Ex(time.Duration(ttlSeconds)*time.Second).Build(),
	).Error()

	if err != nil {
		if rueidis.IsRedisNil(err) {
			// Key already exists, lock not acquired
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *RueidisCache) RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error) {
	ctx := context.Background()
	current, err := r.client.Do(ctx, r.client.B().Getex().Key(key).ExSeconds(int64(ttlSeconds)).Build()).ToString()

	if err != nil {
		if rueidis.IsRedisNil(err) {
			return false, nil
		}
		return false, err
	}

	if current != instanceID {
		return false, nil
	}

	err = r.client.Do(ctx,
		r.client.B().Expire().Key(key).Seconds(int64(ttlSeconds)).Build(),
	).Error()

	return err == nil, err
}

func (r *RueidisCache) SetSnapshot(resource string, payload []byte) error {
	ctx := context.Background()
	key := fmt.Sprintf(configuration.CacheSnapshotKey, resource)
	return r.client.Do(ctx,
		r.client.B().Set().Key(key).Value(string(payload)).
			ExSeconds(int64(configuration.CacheSnapshotTTL)).Build(),
	).Error()
}

func (r *RueidisCache) GetSnapshot(resource string) ([]byte, bool, error) {
	ctx := context.Background()
	key := fmt.Sprintf(configuration.CacheSnapshotKey, resource)

	payload, err := r.client.Do(ctx, r.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return payload, true, nil
}

func (r *RueidisCache) Close() error {
	r.client.Close()
	return nil
}
