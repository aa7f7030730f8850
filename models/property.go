package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Property is a listing document in the properties collection. Price and
// bedrooms hold the submitted text unchanged.
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyType string             `bson:"property_type" json:"property_type"`
	Price        string             `bson:"price" json:"price"`
	City         string             `bson:"city" json:"city"`
	Bedrooms     string             `bson:"bedrooms" json:"bedrooms"`
	Description  string             `bson:"description" json:"description"`
	ImageURLs    []string           `bson:"img_url" json:"img_url"`
	CreatedBy    string             `bson:"created_by" json:"created_by"`
}

// PropertyType is reference data for the property type select control.
type PropertyType struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PropertyType string             `bson:"property_type" json:"property_type"`
}
