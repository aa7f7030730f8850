package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/config"
	"github.com/dcode-github/property_listing_app/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoPropertyRepository struct {
	coll *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &mongoPropertyRepository{coll: db.Collection(config.PropertyCollectionName)}
}

func (r *mongoPropertyRepository) FindAll(ctx context.Context) ([]models.Property, error) {
	return r.find(ctx, bson.M{})
}

// FindByType matches property_type exactly; the comparison is case-sensitive.
func (r *mongoPropertyRepository) FindByType(ctx context.Context, propertyType string) ([]models.Property, error) {
	return r.find(ctx, bson.M{"property_type": propertyType})
}

func (r *mongoPropertyRepository) FindByCreator(ctx context.Context, username string) ([]models.Property, error) {
	return r.find(ctx, bson.M{"created_by": username})
}

func (r *mongoPropertyRepository) find(ctx context.Context, filter bson.M) ([]models.Property, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find properties %v: %w", filter, err)
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode properties: %w", err)
	}
	return properties, nil
}

func (r *mongoPropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrPropertyNotFound
	}

	var property models.Property
	if err := r.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&property); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property %s: %w", id, err)
	}
	return &property, nil
}

func (r *mongoPropertyRepository) Create(ctx context.Context, property *models.Property) error {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, property); err != nil {
		return fmt.Errorf("insert property: %w", err)
	}
	return nil
}

func (r *mongoPropertyRepository) Replace(ctx context.Context, id string, property *models.Property) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrPropertyNotFound
	}
	property.ID = objID

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": objID}, property)
	if err != nil {
		return fmt.Errorf("replace property %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrPropertyNotFound
	}
	return nil
}

// Delete reports whether a document was removed. A malformed id is
// NotFound; a well-formed id with no document is not an error.
func (r *mongoPropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, apperrors.ErrPropertyNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return false, fmt.Errorf("delete property %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
