package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/wkittisak/shoppay/docs"
	accounthandlers "github.com/wkittisak/shoppay/internal/handlers/accounts"
	authhandlers "github.com/wkittisak/shoppay/internal/handlers/auth"
	balancehandlers "github.com/wkittisak/shoppay/internal/handlers/balance"
	ordershandlers "github.com/wkittisak/shoppay/internal/handlers/orders"
	topuphandlers "github.com/wkittisak/shoppay/internal/handlers/topup"
	"github.com/wkittisak/shoppay/internal/service"
	"github.com/wkittisak/shoppay/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type TopupHandler interface {
	VerifySlip(w http.ResponseWriter, r *http.Request)
	Topup(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	OrderHandler   OrderHandler
	BalanceHandler BalanceHandler
	TopupHandler   TopupHandler
	AccountHandler AccountHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		OrderHandler:   ordershandlers.New(s.OrderService),
		BalanceHandler: balancehandlers.New(s.BalanceService),
		TopupHandler:   topuphandlers.New(s.TopupService),
		AccountHandler: accounthandlers.New(s.AccountService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	// Checkout resolves an identity when a token is supplied but stays open
	// to guests.
	r.Group(func(r chi.Router) {
		r.Use(auth.OptionalAuthMiddleware)
		r.Post("/api/orders", h.OrderHandler.Checkout)
	})

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Get("/orders", h.OrderHandler.GetOrders)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Route("/topup", func(r chi.Router) {
				r.Post("/", h.TopupHandler.Topup)
				r.Post("/verify", h.TopupHandler.VerifySlip)
			})
		})
	})

	r.Route("/api/admin/slip-accounts", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Get("/", h.AccountHandler.List)
		r.Post("/", h.AccountHandler.Create)
		r.Put("/{id}", h.AccountHandler.Update)
		r.Delete("/{id}", h.AccountHandler.Delete)
	})

	return r
}
