package middleware

import (
	"log"
	"net/http"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/dcode-github/property_listing_app/views"
)

// HandlerFunc is a route handler that receives the session resolved for the
// request and reports failures as errors.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, sess *utils.Session) error

// sessionWriter writes the session cookie just before the response header,
// so handlers never have to save it themselves.
type sessionWriter struct {
	http.ResponseWriter
	store       *utils.SessionStore
	sess        *utils.Session
	wroteHeader bool
}

func (sw *sessionWriter) WriteHeader(code int) {
	if !sw.wroteHeader {
		sw.wroteHeader = true
		if sw.sess.Modified() {
			if err := sw.store.Save(sw.ResponseWriter, sw.sess); err != nil {
				log.Printf("Error saving session: %v", err)
			}
		}
	}
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *sessionWriter) Write(b []byte) (int, error) {
	if !sw.wroteHeader {
		sw.WriteHeader(http.StatusOK)
	}
	return sw.ResponseWriter.Write(b)
}

// Session loads the session once, runs h, and turns any returned error into
// a response: validation failures flash and go back to the submitted form,
// auth failures flash and go to the login page, missing records render 404,
// and everything else is a logged 500.
func Session(store *utils.SessionStore, renderer views.Renderer, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := store.Load(r)
		sw := &sessionWriter{ResponseWriter: w, store: store, sess: sess}

		err := h(sw, r, sess)
		if err == nil {
			return
		}
		if sw.wroteHeader {
			log.Printf("Error after response started for %s %s: %v", r.Method, r.URL.Path, err)
			return
		}

		switch apperrors.KindOf(err) {
		case apperrors.KindValidation:
			sess.Flash(apperrors.Message(err))
			http.Redirect(sw, r, r.URL.Path, http.StatusFound)
		case apperrors.KindAuth, apperrors.KindUnauthorized:
			sess.Flash(apperrors.Message(err))
			http.Redirect(sw, r, "/login", http.StatusFound)
		case apperrors.KindNotFound:
			renderError(sw, r, renderer, sess, http.StatusNotFound, "not_found.html", apperrors.Message(err))
		default:
			log.Printf("Error handling %s %s: %v", r.Method, r.URL.Path, err)
			renderError(sw, r, renderer, sess, http.StatusInternalServerError, "error.html", apperrors.Message(err))
		}
	}
}

func renderError(w http.ResponseWriter, r *http.Request, renderer views.Renderer, sess *utils.Session, status int, name, message string) {
	page := views.Page{User: sess.User, Flashes: sess.PopFlashes(), Message: message}
	if err := renderer.Render(w, status, name, page); err != nil {
		log.Printf("Error rendering %s for %s %s: %v", name, r.Method, r.URL.Path, err)
		http.Error(w, message, status)
	}
}
