package repository

import (
	"context"
	"fmt"

	"github.com/dcode-github/property_listing_app/config"
	"github.com/dcode-github/property_listing_app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoTypeRepository struct {
	coll *mongo.Collection
}

func NewTypeRepository(db *mongo.Database) TypeRepository {
	return &mongoTypeRepository{coll: db.Collection(config.TypeCollectionName)}
}

// FindAll returns every property type ordered by label.
func (r *mongoTypeRepository) FindAll(ctx context.Context) ([]models.PropertyType, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "property_type", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find property types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.PropertyType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("decode property types: %w", err)
	}
	return types, nil
}
