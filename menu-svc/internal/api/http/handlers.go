package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"desi-beats/menu-svc/internal/domain"
	"desi-beats/menu-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxJSONBody = 1 << 20

type Services struct {
	Categories service.CategoryServiceInterface
	MenuItems  service.MenuItemServiceInterface
	Orders     service.OrderServiceInterface
	Auth       service.AuthServiceInterface
	Dashboard  service.DashboardServiceInterface
	Content    service.ContentServiceInterface
}

type Handler struct {
	Categories service.CategoryServiceInterface
	MenuItems  service.MenuItemServiceInterface
	Orders     service.OrderServiceInterface
	Auth       service.AuthServiceInterface
	Dashboard  service.DashboardServiceInterface
	Content    service.ContentServiceInterface

	// CookieSecure marks the session cookie Secure; enable behind HTTPS.
	CookieSecure bool

	logins *loginLimiter
}

func NewHandler(s Services) *Handler {
	if s.Content == nil {
		s.Content = service.NewContentService("", "")
	}
	return &Handler{
		Categories: s.Categories,
		MenuItems:  s.MenuItems,
		Orders:     s.Orders,
		Auth:       s.Auth,
		Dashboard:  s.Dashboard,
		Content:    s.Content,
		logins:     newLoginLimiter(),
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/logout", h.logout).Methods("POST")
	r.HandleFunc("/api/auth/status", h.authStatus).Methods("GET")

	r.HandleFunc("/api/hero-slider", h.getHeroSlider).Methods("GET")
	r.Handle("/api/imagekit/auth", h.requireAdmin(http.HandlerFunc(h.getImageKitAuth))).Methods("GET")

	r.HandleFunc("/api/categories", h.getCategories).Methods("GET")
	r.HandleFunc("/api/categories/slug/{slug}", h.getCategoryBySlug).Methods("GET")
	r.HandleFunc("/api/categories/{id}", h.getCategory).Methods("GET")

	r.HandleFunc("/api/menu-items", h.getMenuItems).Methods("GET")
	r.HandleFunc("/api/menu-items/{id}", h.getMenuItem).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.Handle("/api/orders", h.requireAdmin(http.HandlerFunc(h.getOrders))).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.Handle("/api/orders/{id}", h.requireAdmin(http.HandlerFunc(h.updateOrderStatus))).Methods("PATCH")
	r.Handle("/api/orders/{id}/status", h.requireAdmin(http.HandlerFunc(h.updateOrderStatus))).Methods("PATCH")
	r.Handle("/api/orders/{id}", h.requireAdmin(http.HandlerFunc(h.deleteOrder))).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/receipt", h.getOrderReceipt).Methods("GET")

	admin := r.PathPrefix("/api/admin").Subrouter()
	admin.Use(h.requireAdmin)
	admin.HandleFunc("/stats", h.getDashboardStats).Methods("GET")
	admin.HandleFunc("/categories", h.createCategory).Methods("POST")
	admin.HandleFunc("/categories/{id}", h.updateCategory).Methods("PATCH", "PUT")
	admin.HandleFunc("/categories/{id}", h.deleteCategory).Methods("DELETE")
	admin.HandleFunc("/menu-items", h.createMenuItem).Methods("POST")
	admin.HandleFunc("/menu-items/{id}", h.updateMenuItem).Methods("PATCH", "PUT")
	admin.HandleFunc("/menu-items/{id}", h.deleteMenuItem).Methods("DELETE")
	admin.HandleFunc("/menu-items/{id}/image", h.uploadMenuItemImage).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "menu-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

type errorResponse struct {
	Error   string               `json:"error"`
	Details []service.FieldError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[menu-svc] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps service and store errors onto HTTP statuses.
// Unexpected failures are logged and answered with the generic failMsg.
func writeServiceError(w http.ResponseWriter, err error, entity, failMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Message, Details: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, entity+" already exists")
	case errors.Is(err, domain.ErrInvalidImage):
		writeError(w, http.StatusBadRequest, "Unsupported or corrupt image")
	default:
		log.Printf("[menu-svc] %s: %v", failMsg, err)
		writeError(w, http.StatusInternalServerError, failMsg)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}
