package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"barista/internal/admin"
	"barista/internal/customer"
	"barista/internal/dashboard"
	menucontroller "barista/internal/menu/controller"
	"barista/internal/rewards"
)

type Controllers struct {
	Customer  *customer.Module
	Menu      *menucontroller.MenuController
	Rewards   *rewards.Controller
	Dashboard *dashboard.Controller
	Admin     *admin.Controller
	AdminAuth admin.TokenVerifier
}

func NewRouter(c Controllers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		// Public menu browser.
		r.Get("/menu", c.Menu.HandleGetMenu)
		r.Get("/menu-items/{id}", c.Menu.HandleGetItem)

		// Purchases and loyalty.
		r.Post("/customers/purchase", c.Customer.Purchase.HandlePurchase)
		r.Get("/customers", c.Customer.Customers.HandleGetCustomers)
		r.Get("/rewards", c.Rewards.HandleGetRewards)
		r.Post("/rewards/claim", c.Customer.Claim.HandleClaim)

		// Admin.
		r.Post("/admin/login", c.Admin.HandleLogin)
		r.Group(func(r chi.Router) {
			r.Use(admin.RequireAuth(c.AdminAuth))
			r.Get("/admin/profile", c.Admin.HandleProfile)
			r.Post("/admin/change-password", c.Admin.HandleChangePassword)
			r.Get("/dashboard/stats", c.Dashboard.HandleGetStats)
			r.Post("/menu-items", c.Menu.HandleCreateItem)
			r.Put("/menu-items/{id}", c.Menu.HandleUpdateItem)
			r.Delete("/menu-items/{id}", c.Menu.HandleDeleteItem)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
