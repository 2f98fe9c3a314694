// Package demoserver is an in-memory double of the storefront backend,
// used by cmd/demo-backend for local runs and by the integration tests.
// It mirrors the production REST interface but keeps every record in
// process memory.
package demoserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type user struct {
	ID            int
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  []byte
	Address       string
	ShippingPhone string
}

type storedOrder struct {
	ID        string      `json:"id"`
	User      string      `json:"user"`
	UserID    int         `json:"-"`
	Items     []orderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
}

type orderItem struct {
	ProductID string  `json:"productId"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type paymentMethod struct {
	ID             int
	UserID         int
	CardType       string
	CardholderName string
	CardNumber     string
	LastFour       string
	ExpiryDate     string
	CVV            string
	BillingZip     string
	IsDefault      bool
	CreatedAt      time.Time
}

type Server struct {
	secret []byte
	log    *zap.Logger

	mu         sync.Mutex
	users      map[string]*user          // keyed by email
	carts      map[string]map[string]int // demo token -> productId -> qty
	orders     map[string]*storedOrder
	methods    map[int]*paymentMethod
	nextUserID int
	nextCardID int
	now        func() time.Time
}

func New(secret string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		secret:     []byte(secret),
		log:        log,
		users:      make(map[string]*user),
		carts:      make(map[string]map[string]int),
		orders:     make(map[string]*storedOrder),
		methods:    make(map[int]*paymentMethod),
		nextUserID: 1,
		nextCardID: 1,
		now:        time.Now,
	}
}

// Router mounts every endpoint under /api, matching the production layout.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverPanics)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/products", s.handleListProducts)

		r.Get("/cart", s.handleGetCart)
		r.Post("/cart/items", s.handleAddCartItem)
		r.Patch("/cart/items/{productID}", s.handleUpdateCartItem)
		r.Delete("/cart/items/{productID}", s.handleRemoveCartItem)

		r.Post("/orders", s.handleCreateOrder)
		r.Get("/orders", s.handleListOrders)
		r.Post("/payments/mock", s.handleMockPayment)

		r.Get("/account/me", s.handleGetAccount)
		r.Put("/account/me", s.handleUpdateAccount)

		r.Get("/payment-methods", s.handleListPaymentMethods)
		r.Post("/payment-methods", s.handleCreatePaymentMethod)
		r.Get("/payment-methods/default", s.handleDefaultPaymentMethod)
		r.Get("/payment-methods/{id}", s.handleGetPaymentMethod)
		r.Put("/payment-methods/{id}", s.handleUpdatePaymentMethod)
		r.Delete("/payment-methods/{id}", s.handleDeletePaymentMethod)
	})

	return r
}

// recoverPanics turns a handler panic into a 500 so one bad request cannot
// kill the connection.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic in handler",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				writeText(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := s.now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", s.now().Sub(start)))
	})
}

// demoToken identifies the anonymous cart; guests share the fallback.
func demoToken(r *http.Request) string {
	if t := r.Header.Get("X-Demo-Token"); t != "" {
		return t
	}
	return "guest"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeText matches the production backend's plain-text error responses;
// the client surfaces the body verbatim.
func writeText(w http.ResponseWriter, status int, msg string) {
	http.Error(w, msg, status)
}
