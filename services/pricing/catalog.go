package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"pawcare/models"

	"github.com/go-redis/redis/v8"
)

const CatalogSnapshotKey = "pricingCatalog:snapshot"

// Catalog is a read-mostly table of service price definitions. Updates
// replace the whole snapshot; concurrent readers never observe a partial
// catalog.
type Catalog struct {
	mu       sync.RWMutex
	services map[string]models.Service
}

// NewCatalog builds a catalog from an initial snapshot.
func NewCatalog(services []models.Service) *Catalog {
	c := &Catalog{}
	c.Replace(services)
	return c
}

// Lookup returns the price definition for a service id. An unknown id fails
// with ErrServiceNotFound.
func (c *Catalog) Lookup(serviceID string) (models.Service, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	svc, ok := c.services[serviceID]
	if !ok {
		return models.Service{}, fmt.Errorf("lookup %q: %w", serviceID, ErrServiceNotFound)
	}
	return svc, nil
}

// Replace swaps in a new catalog snapshot wholesale.
func (c *Catalog) Replace(services []models.Service) {
	next := make(map[string]models.Service, len(services))
	for _, svc := range services {
		next[svc.ID] = svc
	}
	c.mu.Lock()
	c.services = next
	c.mu.Unlock()
}

// Active returns the currently bookable services.
func (c *Catalog) Active() []models.Service {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Service, 0, len(c.services))
	for _, svc := range c.services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out
}

// StoreSnapshot caches a catalog snapshot in Redis as a JSON blob.
func StoreSnapshot(ctx context.Context, client *redis.Client, services []models.Service, ttl time.Duration) error {
	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog snapshot: %w", err)
	}
	if err := client.Set(ctx, CatalogSnapshotKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store catalog snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot retrieves the cached catalog snapshot from Redis.
func LoadSnapshot(ctx context.Context, client *redis.Client) ([]models.Service, error) {
	data, err := client.Get(ctx, CatalogSnapshotKey).Result()
	if err != nil {
		return nil, err
	}
	var services []models.Service
	if err := json.Unmarshal([]byte(data), &services); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog snapshot: %w", err)
	}
	return services, nil
}
