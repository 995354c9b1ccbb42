package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"apnrghor-backend/internal/storage"
)

// Handlers bundles the per-resource handlers the router wires up.
type Handlers struct {
	Apartment    *ApartmentHandler
	User         *UserHandler
	Agreement    *AgreementHandler
	Payment      *PaymentHandler
	Coupon       *CouponHandler
	Announcement *AnnouncementHandler
}

// NewRouter builds the REST surface. Route paths, including the misspelled
// /announcment, match the original public API.
func NewRouter(h *Handlers, guard *Guard, allowedOrigins []string, localStorage *storage.LocalStorageService) *mux.Router {
	router := mux.NewRouter()
	router.Use(CORS(allowedOrigins))

	auth := func(handler http.HandlerFunc) http.Handler {
		return guard.RequireAuth(handler)
	}
	authEmail := func(handler http.HandlerFunc) http.Handler {
		return guard.RequireAuth(guard.RequireEmailMatch(handler))
	}
	authEmailAdmin := func(handler http.HandlerFunc) http.Handler {
		return guard.RequireAuth(guard.RequireEmailMatch(guard.RequireAdmin(handler)))
	}

	// Public routes
	router.HandleFunc("/apartments", h.Apartment.ListApartments).Methods("GET")
	router.HandleFunc("/coupons", h.Coupon.List).Methods("GET")
	router.HandleFunc("/allcoupons", h.Coupon.List).Methods("GET")
	router.HandleFunc("/addcoupons", h.Coupon.Add).Methods("POST")
	router.HandleFunc("/adduser", h.User.CreateUser).Methods("POST")

	// Authenticated routes
	router.Handle("/user", auth(h.User.GetUser)).Methods("GET")
	router.Handle("/announcements", auth(h.Announcement.List)).Methods("GET")
	router.Handle("/dashboard-stats", auth(h.Apartment.DashboardStats)).Methods("GET")
	router.Handle("/addagreement", auth(h.Agreement.SubmitApplication)).Methods("POST")
	router.Handle("/validate-coupon", auth(h.Payment.ValidateCoupon)).Methods("POST")
	router.Handle("/create-payment-intent", auth(h.Payment.CreateIntent)).Methods("POST")

	// Email-scoped routes
	router.Handle("/specificagreement", authEmail(h.Agreement.GetActiveAgreement)).Methods("GET")
	router.Handle("/paymenthistory", authEmail(h.Payment.History)).Methods("GET")

	// Admin routes
	router.Handle("/agreementrqst", authEmailAdmin(h.Agreement.ListPending)).Methods("GET")
	router.Handle("/allmembers", authEmailAdmin(h.User.ListMembers)).Methods("GET")
	router.Handle("/announcment", authEmailAdmin(h.Announcement.Create)).Methods("POST")
	router.Handle("/acceptagreement", authEmailAdmin(h.Agreement.Accept)).Methods("PATCH")
	router.Handle("/removemember", authEmailAdmin(h.Agreement.RemoveMember)).Methods("PATCH")
	router.Handle("/deleteagreement", authEmailAdmin(h.Agreement.Reject)).Methods("DELETE")

	// Stored images (local storage backend only)
	if localStorage != nil {
		uploadHandler := NewUploadHandler(localStorage)
		router.HandleFunc("/uploads/{folder}/{file}", uploadHandler.ServeFile).Methods("GET")
	}

	return router
}
