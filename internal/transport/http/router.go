package http

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Services bundles the application services the router exposes.
type Services struct {
	Bookings   BookingManager
	Properties PropertyReader
	Reviews    ReviewManager
	Favourites FavouriteManager
	Users      UserManager
}

// NewRouter wires every route of the API surface.
func NewRouter(svcs Services) http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", HealthHandler)

	router.GET("/api/properties", HandleListProperties(svcs.Properties))
	router.GET("/api/properties/:id", HandleGetProperty(svcs.Properties))

	router.GET("/api/properties/:id/reviews", HandlePropertyReviews(svcs.Reviews))
	router.POST("/api/properties/:id/review", HandleAddReview(svcs.Reviews))
	router.DELETE("/api/reviews/:id", HandleRemoveReview(svcs.Reviews))

	router.POST("/api/properties/:id/favourite", HandleAddFavourite(svcs.Favourites))
	router.DELETE("/api/favourites/:id", HandleRemoveFavourite(svcs.Favourites))

	router.GET("/api/users/:id", HandleGetUser(svcs.Users))
	router.PATCH("/api/users/:id", HandleUpdateUser(svcs.Users))

	router.GET("/api/properties/:id/bookings", HandlePropertyBookings(svcs.Bookings))
	router.POST("/api/properties/:id/booking", HandleCreateBooking(svcs.Bookings))
	router.PATCH("/api/bookings/:id", HandleAmendBooking(svcs.Bookings))
	router.DELETE("/api/bookings/:id", HandleCancelBooking(svcs.Bookings))
	router.GET("/api/users/:id/bookings", HandleGuestBookings(svcs.Bookings))

	router.NotFound = NotFoundHandler()
	router.MethodNotAllowed = MethodNotAllowedHandler()
	router.HandleMethodNotAllowed = true

	return router
}
