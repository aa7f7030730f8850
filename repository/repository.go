package repository

import (
	"context"

	"github.com/dcode-github/property_listing_app/models"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

// PropertyRepository stores listings. Replace overwrites the whole document;
// it never merges fields.
type PropertyRepository interface {
	FindAll(ctx context.Context) ([]models.Property, error)
	FindByType(ctx context.Context, propertyType string) ([]models.Property, error)
	FindByCreator(ctx context.Context, username string) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Replace(ctx context.Context, id string, property *models.Property) error
	Delete(ctx context.Context, id string) (bool, error)
}

type TypeRepository interface {
	FindAll(ctx context.Context) ([]models.PropertyType, error)
}
