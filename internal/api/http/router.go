package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"growthlink-backend/internal/security"
	"growthlink-backend/internal/service"
)

// NewRouter assembles the API surface. Browsing fundraisers is public,
// everything that acts on behalf of a caller sits behind the auth middleware.
func NewRouter(
	tokenManager security.TokenManager,
	fundraiserSvc service.FundraiserService,
	donationSvc service.DonationService,
	collabSvc service.CollaborationService,
	businessSvc service.BusinessService,
	notificationSvc service.NotificationService,
) *mux.Router {
	fundraiserHandler := NewFundraiserHandler(fundraiserSvc, donationSvc)
	collabHandler := NewCollaborationHandler(collabSvc)
	businessHandler := NewBusinessHandler(businessSvc)
	notificationHandler := NewNotificationHandler(notificationSvc)
	auth := NewAuthMiddleware(tokenManager)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Authenticated routes. Registered first so /fundraisers/my wins over
	// the public /fundraisers/{id} pattern.
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Handler)

	protected.HandleFunc("/fundraisers", fundraiserHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/fundraisers/my", fundraiserHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/fundraisers/{id}", fundraiserHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/fundraisers/{id}/cancel", fundraiserHandler.Cancel).Methods(http.MethodPut)
	protected.HandleFunc("/fundraisers/{id}/support", fundraiserHandler.Support).Methods(http.MethodPost)
	protected.HandleFunc("/donations/history", fundraiserHandler.DonationHistory).Methods(http.MethodGet)

	protected.HandleFunc("/collaborations", collabHandler.Send).Methods(http.MethodPost)
	protected.HandleFunc("/collaborations", collabHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/collaborations/stats", collabHandler.Stats).Methods(http.MethodGet)
	protected.HandleFunc("/collaborations/{id}", collabHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/collaborations/{id}/respond", collabHandler.Respond).Methods(http.MethodPut)
	protected.HandleFunc("/collaborations/{id}/complete", collabHandler.Complete).Methods(http.MethodPut)
	protected.HandleFunc("/collaborations/{id}", collabHandler.Cancel).Methods(http.MethodDelete)

	protected.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", notificationHandler.MarkAsRead).Methods(http.MethodPut)

	// Public browsing routes.
	api.HandleFunc("/fundraisers", fundraiserHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/fundraisers/{id}", fundraiserHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/businesses", businessHandler.List).Methods(http.MethodGet)

	return r
}
