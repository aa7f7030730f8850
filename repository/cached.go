package repository

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/dcode-github/property_listing_app/cache"
	"github.com/dcode-github/property_listing_app/models"
	"github.com/dcode-github/property_listing_app/utils"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	propertyCachePrefix = "property:"
	typeCachePrefix     = "type:"
)

type propertyList struct {
	Items []models.Property `bson:"items"`
}

type typeList struct {
	Items []models.PropertyType `bson:"items"`
}

// CachedPropertyRepository serves list queries from the cache and drops
// every cached list after a successful write, before the write returns.
type CachedPropertyRepository struct {
	PropertyRepository
	cache cache.Store
	ttl   time.Duration
}

func NewCachedPropertyRepository(inner PropertyRepository, store cache.Store, ttl time.Duration) *CachedPropertyRepository {
	return &CachedPropertyRepository{PropertyRepository: inner, cache: store, ttl: ttl}
}

func (r *CachedPropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	key := utils.CacheKey(propertyCachePrefix, "all", nil)
	return r.cached(ctx, key, r.PropertyRepository.FindAll)
}

func (r *CachedPropertyRepository) FindByType(ctx context.Context, propertyType string) ([]models.Property, error) {
	key := utils.CacheKey(propertyCachePrefix, "type", url.Values{"property_type": {propertyType}})
	return r.cached(ctx, key, func(ctx context.Context) ([]models.Property, error) {
		return r.PropertyRepository.FindByType(ctx, propertyType)
	})
}

func (r *CachedPropertyRepository) FindByCreator(ctx context.Context, username string) ([]models.Property, error) {
	key := utils.CacheKey(propertyCachePrefix, "creator", url.Values{"created_by": {username}})
	return r.cached(ctx, key, func(ctx context.Context) ([]models.Property, error) {
		return r.PropertyRepository.FindByCreator(ctx, username)
	})
}

func (r *CachedPropertyRepository) cached(ctx context.Context, key string, load func(context.Context) ([]models.Property, error)) ([]models.Property, error) {
	if data, ok := r.cache.Get(ctx, key); ok {
		var list propertyList
		if err := bson.Unmarshal(data, &list); err == nil {
			return list.Items, nil
		}
		log.Printf("Discarding undecodable cache entry %s", key)
	}

	properties, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := bson.Marshal(propertyList{Items: properties})
	if err != nil {
		log.Printf("Failed to encode properties for cache key %s: %v", key, err)
		return properties, nil
	}
	r.cache.Set(ctx, key, data, r.ttl)
	return properties, nil
}

func (r *CachedPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if err := r.PropertyRepository.Create(ctx, property); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, propertyCachePrefix)
	return nil
}

func (r *CachedPropertyRepository) Replace(ctx context.Context, id string, property *models.Property) error {
	if err := r.PropertyRepository.Replace(ctx, id, property); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, propertyCachePrefix)
	return nil
}

func (r *CachedPropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := r.PropertyRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		r.cache.DeletePrefix(ctx, propertyCachePrefix)
	}
	return deleted, nil
}

// CachedTypeRepository caches the property type list. Types are never
// written by the application, so entries only expire by TTL.
type CachedTypeRepository struct {
	TypeRepository
	cache cache.Store
	ttl   time.Duration
}

func NewCachedTypeRepository(inner TypeRepository, store cache.Store, ttl time.Duration) *CachedTypeRepository {
	return &CachedTypeRepository{TypeRepository: inner, cache: store, ttl: ttl}
}

func (r *CachedTypeRepository) FindAll(ctx context.Context) ([]models.PropertyType, error) {
	key := utils.CacheKey(typeCachePrefix, "all", nil)
	if data, ok := r.cache.Get(ctx, key); ok {
		var list typeList
		if err := bson.Unmarshal(data, &list); err == nil {
			return list.Items, nil
		}
		log.Printf("Discarding undecodable cache entry %s", key)
	}

	types, err := r.TypeRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := bson.Marshal(typeList{Items: types}); err == nil {
		r.cache.Set(ctx, key, data, r.ttl)
	}
	return types, nil
}
