package controllers

import (
	"net/http"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/repository"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
)

// OwnershipPolicy decides who owns a listing after it is edited.
type OwnershipPolicy int

const (
	// ReassignToEditor writes the editing user as created_by.
	ReassignToEditor OwnershipPolicy = iota
	// KeepOriginalOwner leaves created_by as it was stored.
	KeepOriginalOwner
)

func ParseOwnershipPolicy(s string) OwnershipPolicy {
	if s == "keep" {
		return KeepOriginalOwner
	}
	return ReassignToEditor
}

// Deps are the collaborators shared by every handler.
type Deps struct {
	Users      repository.UserRepository
	Properties repository.PropertyRepository
	Types      repository.TypeRepository
	Views      views.Renderer

	EditOwnership  OwnershipPolicy
	StrictListings bool
}

func (d *Deps) render(w http.ResponseWriter, sess *utils.Session, name string, page views.Page) error {
	page.User = sess.User
	page.Flashes = sess.PopFlashes()
	return d.Views.Render(w, http.StatusOK, name, page)
}

func redirect(w http.ResponseWriter, r *http.Request, to string) error {
	http.Redirect(w, r, to, http.StatusFound)
	return nil
}

func requireUser(sess *utils.Session) (string, error) {
	if !sess.LoggedIn() {
		return "", apperrors.ErrLoginRequired
	}
	return sess.User, nil
}
