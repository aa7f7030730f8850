package models

import (
	"net/url"
	"strings"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ListingForm holds the fields submitted by the list and edit property forms.
type ListingForm struct {
	PropertyType string   `validate:"required"`
	Price        string   `validate:"required"`
	City         string   `validate:"required"`
	Bedrooms     string   `validate:"required,number"`
	Description  string   `validate:"omitempty"`
	ImageURLs    []string `validate:"dive,omitempty,url"`
}

var validate = validator.New()

// ParseListingForm reads the listing fields from an already parsed form.
// Image URLs keep their submitted order.
func ParseListingForm(form url.Values) ListingForm {
	return ListingForm{
		PropertyType: form.Get("property_type"),
		Price:        form.Get("price"),
		City:         form.Get("city"),
		Bedrooms:     form.Get("bedrooms"),
		Description:  form.Get("description"),
		ImageURLs:    form["img_url"],
	}
}

// Validate applies the strict listing rules: required type, price and city,
// an integer bedroom count, a non-negative decimal price and well-formed
// image URLs.
func (f ListingForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			return apperrors.Validation(fieldMessage(fieldErrs[0]))
		}
		return apperrors.Validation("Listing is invalid")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(f.Price))
	if err != nil || price.IsNegative() {
		return apperrors.Validation("Price must be a non-negative amount")
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	field, _, _ := strings.Cut(fe.StructField(), "[")
	switch field {
	case "PropertyType":
		return "Property type is required"
	case "Price":
		return "Price is required"
	case "City":
		return "City is required"
	case "Bedrooms":
		return "Bedrooms must be a whole number"
	case "ImageURLs":
		return "Image URLs must be valid links"
	}
	return "Listing is invalid"
}

// Property builds the document stored for this form.
func (f ListingForm) Property(createdBy string) *Property {
	images := f.ImageURLs
	if images == nil {
		images = []string{}
	}
	return &Property{
		PropertyType: f.PropertyType,
		Price:        f.Price,
		City:         f.City,
		Bedrooms:     f.Bedrooms,
		Description:  f.Description,
		ImageURLs:    images,
		CreatedBy:    createdBy,
	}
}
