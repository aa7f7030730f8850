package controllers

import (
	"log"
	"net/http"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/middleware"
	"github.com/dcode-github/property_listing_app/models"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
	"github.com/gorilla/mux"
)

func (d *Deps) parseListing(r *http.Request) (models.ListingForm, error) {
	if err := r.ParseForm(); err != nil {
		log.Printf("Error parsing listing form: %v", err)
		return models.ListingForm{}, apperrors.Validation("Could not read the submitted form")
	}
	form := models.ParseListingForm(r.PostForm)
	if d.StrictListings {
		if err := form.Validate(); err != nil {
			return models.ListingForm{}, err
		}
	}
	return form, nil
}

func ListProperty(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		current, err := requireUser(sess)
		if err != nil {
			return err
		}

		if r.Method != http.MethodPost {
			types, err := d.Types.FindAll(r.Context())
			if err != nil {
				return err
			}
			return d.render(w, sess, "list_property.html", views.Page{Types: types})
		}

		form, err := d.parseListing(r)
		if err != nil {
			return err
		}
		if err := d.Properties.Create(r.Context(), form.Property(current)); err != nil {
			return err
		}

		sess.Flash("Property Listing Successful!")
		return redirect(w, r, "/get_properties")
	}
}

// EditProperty replaces the stored listing with the submitted one. Who
// ends up owning it is decided by the configured ownership policy.
func EditProperty(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		current, err := requireUser(sess)
		if err != nil {
			return err
		}
		id := mux.Vars(r)["id"]

		stored, err := d.Properties.FindByID(r.Context(), id)
		if err != nil {
			return err
		}

		if r.Method != http.MethodPost {
			types, err := d.Types.FindAll(r.Context())
			if err != nil {
				return err
			}
			return d.render(w, sess, "edit_property.html", views.Page{Property: stored, Types: types})
		}

		form, err := d.parseListing(r)
		if err != nil {
			return err
		}
		if err := d.Properties.Replace(r.Context(), id, form.Property(d.editOwner(stored, current))); err != nil {
			return err
		}

		sess.Flash("Property Listing Updated!")
		return redirect(w, r, "/edit_property/"+id)
	}
}

func (d *Deps) editOwner(stored *models.Property, editor string) string {
	if d.EditOwnership == KeepOriginalOwner {
		return stored.CreatedBy
	}
	return editor
}

// DeleteProperty removes the listing without an ownership check.
func DeleteProperty(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		if _, err := requireUser(sess); err != nil {
			return err
		}

		if _, err := d.Properties.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
			return err
		}

		sess.Flash("Property Deleted")
		return redirect(w, r, "/get_properties")
	}
}
