package controllers

import (
	"net/http"

	"github.com/dcode-github/property_listing_app/middleware"
	"github.com/dcode-github/property_listing_app/models"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
	"github.com/gorilla/mux"
)

// GetProperties renders every listing. The featured section repeats the
// full listing until curated featured listings exist.
func GetProperties(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		properties, err := d.Properties.FindAll(r.Context())
		if err != nil {
			return err
		}
		return d.renderIndex(w, r, sess, properties)
	}
}

// Search filters listings on the submitted propertytype. An empty or
// missing value matches nothing.
func Search(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		selected := r.PostFormValue("propertytype")

		filtered := []models.Property{}
		if selected != "" {
			var err error
			filtered, err = d.Properties.FindByType(r.Context(), selected)
			if err != nil {
				return err
			}
		}
		return d.renderIndex(w, r, sess, filtered)
	}
}

func (d *Deps) renderIndex(w http.ResponseWriter, r *http.Request, sess *utils.Session, properties []models.Property) error {
	featured, err := d.Properties.FindAll(r.Context())
	if err != nil {
		return err
	}
	types, err := d.Types.FindAll(r.Context())
	if err != nil {
		return err
	}
	return d.render(w, sess, "properties.html", views.Page{
		Properties: properties,
		Featured:   featured,
		Types:      types,
	})
}

func PropertyDetail(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		property, err := d.Properties.FindByID(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			return err
		}
		return d.render(w, sess, "property_detail.html", views.Page{Property: property})
	}
}
