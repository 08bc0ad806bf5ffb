package cache

type ICache interface {
	RegisterPlatform(id string) error
	DeleteInactivePlatform() error
	StartIdentityTicker(id string)

	GetRateLimit(userIdentifier string, requestsPerMinute int) (int, error)

	// TryAcquireLock attempts to acquire a distributed lock so a worker runs
	// on a single instance at a time.
	TryAcquireLock(key string, instanceID string, ttlSeconds int) (bool, error)
	// RefreshLock extends the TTL of a lock held by this instance.
	RefreshLock(key string, instanceID string, ttlSeconds int) (bool, error)

	// SetSnapshot stores the serialized latest snapshot for a resource so API
	// instances can serve it without polling upstream themselves.
	SetSnapshot(resource string, payload []byte) error
	// GetSnapshot returns the serialized snapshot for a resource; ok is false
	// when no snapshot has been written or it has expired.
	GetSnapshot(resource string) ([]byte, bool, error)

	Close() error
}
