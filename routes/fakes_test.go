package routes

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]models.User{}}
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (m *memoryUsers) Create(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Username]; ok {
		return apperrors.ErrUserExists
	}
	user.ID = primitive.NewObjectID()
	m.users[user.Username] = *user
	return nil
}

func (m *memoryUsers) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.users)
}

type memoryProperties struct {
	mu    sync.Mutex
	items []models.Property
}

func (m *memoryProperties) filter(keep func(models.Property) bool) []models.Property {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Property{}
	for _, p := range m.items {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (m *memoryProperties) FindAll(context.Context) ([]models.Property, error) {
	return m.filter(func(models.Property) bool { return true }), nil
}

func (m *memoryProperties) FindByType(_ context.Context, propertyType string) ([]models.Property, error) {
	return m.filter(func(p models.Property) bool { return p.PropertyType == propertyType }), nil
}

func (m *memoryProperties) FindByCreator(_ context.Context, username string) ([]models.Property, error) {
	return m.filter(func(p models.Property) bool { return p.CreatedBy == username }), nil
}

func (m *memoryProperties) index(id string) int {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return -1
	}
	for i, p := range m.items {
		if p.ID == objID {
			return i
		}
	}
	return -1
}

func (m *memoryProperties) FindByID(_ context.Context, id string) (*models.Property, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return nil, apperrors.ErrPropertyNotFound
	}
	p := m.items[i]
	return &p, nil
}

func (m *memoryProperties) Create(_ context.Context, property *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	property.ID = primitive.NewObjectID()
	m.items = append(m.items, *property)
	return nil
}

func (m *memoryProperties) Replace(_ context.Context, id string, property *models.Property) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index(id)
	if i < 0 {
		return apperrors.ErrPropertyNotFound
	}
	property.ID = m.items[i].ID
	m.items[i] = *property
	return nil
}

func (m *memoryProperties) Delete(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return false, apperrors.ErrPropertyNotFound
	}
	i := m.index(id)
	if i < 0 {
		return false, nil
	}
	m.items = append(m.items[:i], m.items[i+1:]...)
	return true, nil
}

func (m *memoryProperties) seed(p models.Property) models.Property {
	_ = m.Create(context.Background(), &p)
	return p
}

type memoryTypes []models.PropertyType

func (m memoryTypes) FindAll(context.Context) ([]models.PropertyType, error) {
	return m, nil
}

type brokenProperties struct {
	memoryProperties
}

var errStoreDown = errors.New("connection refused")

func (b *brokenProperties) FindAll(context.Context) ([]models.Property, error) {
	return nil, errStoreDown
}

type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string][]byte{}}
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func (c *mapCache) DeletePrefix(_ context.Context, prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}
