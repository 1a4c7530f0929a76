package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
)

// Controllers bundles the controllers wired into the router.
type Controllers struct {
	Auth         *controllers.AuthController
	Event        *controllers.EventController
	Social       *controllers.SocialController
	Notification *controllers.NotificationController
	OAuth        *controllers.OAuthController
	Stats        *controllers.StatsController
}

// NewRouter initializes the HTTP router with all application routes.
// Mutating event and comment routes require a Bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/signup", c.Auth.SignUp)
	mux.HandleFunc("POST /auth/login", c.Auth.Login)

	// OAuth
	mux.HandleFunc("POST /oauth/google", c.OAuth.OAuthGoogle)
	mux.HandleFunc("POST /oauth/facebook", c.OAuth.OAuthFacebook)

	// Events
	mux.HandleFunc("POST /events", authed(c.Event.CreateEvent))
	mux.HandleFunc("GET /events/upcoming", c.Event.ListUpcomingEvents)
	mux.HandleFunc("GET /events/past", c.Event.ListPastEvents)
	mux.HandleFunc("GET /events/{eventID}", c.Event.GetEvent)
	mux.HandleFunc("PUT /events/{eventID}", authed(c.Event.UpdateEvent))
	mux.HandleFunc("DELETE /events/{eventID}", authed(c.Event.DeleteEvent))
	mux.HandleFunc("POST /events/attend", authed(c.Event.RegisterAttendance))
	mux.HandleFunc("GET /events/{eventID}/attendees", c.Event.ListAttendees)

	// Social
	mux.HandleFunc("POST /social/comments", authed(c.Social.CreateComment))
	mux.HandleFunc("GET /social/events/{eventID}/comments", c.Social.ListEventComments)
	mux.HandleFunc("POST /social/share", c.Social.ShareEvent)

	// Notifications
	mux.HandleFunc("GET /social/notifications/user/{userID}", c.Notification.GetUserNotifications)
	mux.HandleFunc("GET /social/notifications/reminders", c.Notification.GetRemindersDue)

	// Stats
	mux.HandleFunc("GET /stats/user/{userID}", c.Stats.GetUserStats)
	mux.HandleFunc("GET /stats/event/{eventID}", c.Stats.GetEventStats)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
