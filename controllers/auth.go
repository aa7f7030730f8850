package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/middleware"
	"github.com/dcode-github/property_listing_app/models"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
	"golang.org/x/crypto/bcrypt"
)

func profilePath(username string) string {
	return "/profile/" + url.PathEscape(username)
}

func Register(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		if r.Method != http.MethodPost {
			return d.render(w, sess, "register.html", views.Page{})
		}

		username := strings.ToLower(r.PostFormValue("username"))
		if username == "" {
			return apperrors.Validation("Username is required")
		}
		if strings.Contains(username, "/") {
			return apperrors.Validation("Username must not contain '/'")
		}

		_, err := d.Users.FindByUsername(r.Context(), username)
		if err == nil {
			log.Printf("Username already exists: %s", username)
			return apperrors.ErrUserExists
		}
		if !apperrors.Is(err, apperrors.KindNotFound) {
			return err
		}

		hashedPwd, err := utils.HashPassword(r.PostFormValue("password"))
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return apperrors.Validation("Password must be at most 72 bytes")
			}
			return fmt.Errorf("hash password: %w", err)
		}
		if err := d.Users.Create(r.Context(), &models.User{Username: username, Password: hashedPwd}); err != nil {
			return err
		}

		sess.SetUser(username)
		sess.Flash("Successfully registered")
		return redirect(w, r, profilePath(username))
	}
}

// Login gives the same answer for an unknown username and a wrong password.
func Login(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		if r.Method != http.MethodPost {
			return d.render(w, sess, "login.html", views.Page{})
		}

		typed := r.PostFormValue("username")
		username := strings.ToLower(typed)

		user, err := d.Users.FindByUsername(r.Context(), username)
		if err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				log.Printf("Login failed for %q", username)
				return apperrors.ErrInvalidCredentials
			}
			return err
		}
		if !utils.CheckPasswordHash(r.PostFormValue("password"), user.Password) {
			log.Printf("Login failed for %q", username)
			return apperrors.ErrInvalidCredentials
		}

		sess.SetUser(username)
		sess.Flash(fmt.Sprintf("Hey there, %s", typed))
		return redirect(w, r, profilePath(username))
	}
}

// Logout without a logged-in user only redirects.
func Logout(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		if sess.ClearUser() {
			sess.Flash("You've been logged out")
		}
		return redirect(w, r, "/login")
	}
}

// Profile shows the listings of the session user. The username in the path
// is not trusted: users can only view their own profile.
func Profile(d *Deps) middleware.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error {
		current, err := requireUser(sess)
		if err != nil {
			return err
		}

		user, err := d.Users.FindByUsername(r.Context(), current)
		if err != nil {
			if apperrors.Is(err, apperrors.KindNotFound) {
				sess.ClearUser()
				return apperrors.ErrLoginRequired
			}
			return err
		}

		properties, err := d.Properties.FindByCreator(r.Context(), user.Username)
		if err != nil {
			return err
		}
		return d.render(w, sess, "profile.html", views.Page{
			Username:   user.Username,
			Properties: properties,
		})
	}
}
