package routes

import (
	"net/http"

	"github.com/dcode-github/property_listing_app/controllers"
	"github.com/dcode-github/property_listing_app/middleware"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/gorilla/mux"
)

func Routes(router *mux.Router, deps *controllers.Deps, sessions *utils.SessionStore) {
	handle := func(h middleware.HandlerFunc) http.HandlerFunc {
		return middleware.Session(sessions, deps.Views, h)
	}

	router.Use(middleware.Logging)

	// Listings
	router.HandleFunc("/", handle(controllers.GetProperties(deps))).Methods("GET")
	router.HandleFunc("/get_properties", handle(controllers.GetProperties(deps))).Methods("GET")
	router.HandleFunc("/search", handle(controllers.GetProperties(deps))).Methods("GET")
	router.HandleFunc("/search", handle(controllers.Search(deps))).Methods("POST")
	router.HandleFunc("/property_detail/{id}", handle(controllers.PropertyDetail(deps))).Methods("GET")

	// Identity
	router.HandleFunc("/register", handle(controllers.Register(deps))).Methods("GET", "POST")
	router.HandleFunc("/login", handle(controllers.Login(deps))).Methods("GET", "POST")
	router.HandleFunc("/profile/{username}", handle(controllers.Profile(deps))).Methods("GET", "POST")
	router.HandleFunc("/logout", handle(controllers.Logout(deps))).Methods("GET")

	// Listing management
	router.HandleFunc("/list_property", handle(controllers.ListProperty(deps))).Methods("GET", "POST")
	router.HandleFunc("/edit_property/{id}", handle(controllers.EditProperty(deps))).Methods("GET", "POST")
	router.HandleFunc("/delete_property/{id}", handle(controllers.DeleteProperty(deps))).Methods("GET")
}
