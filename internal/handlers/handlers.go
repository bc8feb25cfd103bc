package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/refledger/docs"
	adminhandlers "github.com/GlebRadaev/refledger/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/refledger/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/refledger/internal/handlers/balance"
	cyclehandlers "github.com/GlebRadaev/refledger/internal/handlers/cycles"
	eventhandlers "github.com/GlebRadaev/refledger/internal/handlers/events"
	referralhandlers "github.com/GlebRadaev/refledger/internal/handlers/referrals"
	withdrawalhandlers "github.com/GlebRadaev/refledger/internal/handlers/withdrawals"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/service"
	"github.com/GlebRadaev/refledger/pkg/auth"
)

//go:generate mockgen -destination=mock_handlers.go -package=handlers . AuthHandler,ReferralHandler,BalanceHandler,CycleHandler,WithdrawalHandler,AdminHandler,EventHandler

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	ApplyCode(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetEarnings(w http.ResponseWriter, r *http.Request)
}

type CycleHandler interface {
	GetCycles(w http.ResponseWriter, r *http.Request)
	GetCycle(w http.ResponseWriter, r *http.Request)
}

type WithdrawalHandler interface {
	CreateWithdrawal(w http.ResponseWriter, r *http.Request)
	UpdateWithdrawal(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
	GetBankDetails(w http.ResponseWriter, r *http.Request)
	SaveBankDetails(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	ListWithdrawals(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	DeactivateCode(w http.ResponseWriter, r *http.Request)
	ActivateCode(w http.ResponseWriter, r *http.Request)
}

type EventHandler interface {
	SubscriptionChanged(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	ReferralHandler   ReferralHandler
	BalanceHandler    BalanceHandler
	CycleHandler      CycleHandler
	WithdrawalHandler WithdrawalHandler
	AdminHandler      AdminHandler
	EventHandler      EventHandler

	jwtService auth.JWTServiceInterface
	apiKey     string
}

// New builds the HTTP layer. User routes authenticate with jwtService;
// internal and admin routes require apiKey in the X-Api-Key header.
func New(s *service.Services, jwtService auth.JWTServiceInterface, apiKey string) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		ReferralHandler:   referralhandlers.New(s.ReferralService),
		BalanceHandler:    balancehandlers.New(s.LedgerService),
		CycleHandler:      cyclehandlers.New(s.CycleService),
		WithdrawalHandler: withdrawalhandlers.New(s.WithdrawalService),
		AdminHandler:      adminhandlers.New(s.WithdrawalService, s.ReferralService),
		EventHandler:      eventhandlers.New(s.RewardService),
		jwtService:        jwtService,
		apiKey:            apiKey,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", h.AuthHandler.Register)
		r.Post("/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Post("/referral", h.ReferralHandler.ApplyCode)
			r.Get("/referrals", h.ReferralHandler.GetReferrals)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/earnings", h.BalanceHandler.GetEarnings)
			r.Route("/cycles", func(r chi.Router) {
				r.Get("/", h.CycleHandler.GetCycles)
				r.Get("/{id}", h.CycleHandler.GetCycle)
			})
			r.Route("/withdrawals", func(r chi.Router) {
				r.Post("/", h.WithdrawalHandler.CreateWithdrawal)
				r.Get("/", h.WithdrawalHandler.GetWithdrawals)
				r.Patch("/{id}", h.WithdrawalHandler.UpdateWithdrawal)
			})
			r.Get("/bank-details", h.WithdrawalHandler.GetBankDetails)
			r.Put("/bank-details", h.WithdrawalHandler.SaveBankDetails)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.APIKeyMiddleware(h.apiKey))
		r.Post("/api/internal/subscriptions/events", h.EventHandler.SubscriptionChanged)
		r.Route("/api/admin", func(r chi.Router) {
			r.Route("/withdrawals", func(r chi.Router) {
				r.Get("/", h.AdminHandler.ListWithdrawals)
				r.Post("/{id}/approve", h.AdminHandler.Approve)
				r.Post("/{id}/reject", h.AdminHandler.Reject)
				r.Post("/{id}/paid", h.AdminHandler.MarkPaid)
			})
			r.Post("/users/{id}/referral-code/deactivate", h.AdminHandler.DeactivateCode)
			r.Post("/users/{id}/referral-code/activate", h.AdminHandler.ActivateCode)
		})
	})

	return r
}
