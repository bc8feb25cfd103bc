package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/profile"
	"github.com/GlebRadaev/refledger/internal/repo"
	"github.com/GlebRadaev/refledger/internal/service/authservice"
	"github.com/GlebRadaev/refledger/internal/service/cycleservice"
	"github.com/GlebRadaev/refledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/refledger/internal/service/referralservice"
	"github.com/GlebRadaev/refledger/internal/service/rewardservice"
	"github.com/GlebRadaev/refledger/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/retry"
)

// Deps are the collaborators shared by the services.
type Deps struct {
	TXManager pg.TXManager
	Retrier   *retry.Retrier
	// Names resolves display names; the users repository is used when nil.
	Names    profile.Names
	Notifier rewardservice.Notifier
	Hasher   pkgauth.HashServiceInterface
	JWT      pkgauth.JWTServiceInterface
	Reward   decimal.Decimal
	Cycles   cycleservice.Config
}

type Services struct {
	AuthService       *authservice.Service
	ReferralService   *referralservice.Service
	LedgerService     *ledgerservice.Service
	CycleService      *cycleservice.Service
	RewardService     *rewardservice.Service
	WithdrawalService *withdrawalservice.Service
}

func New(repos *repo.Repositories, deps Deps) *Services {
	names := deps.Names
	if names == nil {
		names = repos.UserRepo
	}
	retrier := deps.Retrier
	if retrier == nil {
		retrier = retry.New(retry.DefaultConfig())
	}

	referralService := referralservice.New(repos.UserRepo, repos.ReferralRepo, names)
	ledgerService := ledgerservice.New(deps.TXManager, repos.EarningRepo, repos.BalanceRepo, names)
	cycleService := cycleservice.New(deps.TXManager, repos.CycleRepo, names, deps.Cycles)
	rewardService := rewardservice.New(
		deps.TXManager,
		retrier,
		referralService,
		ledgerService,
		cycleService,
		repos.SubscriptionRepo,
		deps.Notifier,
		deps.Reward,
	)
	withdrawalService := withdrawalservice.New(
		deps.TXManager,
		retrier,
		repos.BalanceRepo,
		repos.CycleRepo,
		cycleService,
		repos.Withdrawal,
		repos.BankRepo,
	)
	authService := authservice.New(repos.UserRepo, referralService, deps.Hasher, deps.JWT)

	return &Services{
		AuthService:       authService,
		ReferralService:   referralService,
		LedgerService:     ledgerService,
		CycleService:      cycleService,
		RewardService:     rewardService,
		WithdrawalService: withdrawalService,
	}
}

// SetClock replaces the time source of every clocked service.
func (s *Services) SetClock(now func() time.Time) {
	s.ReferralService.SetClock(now)
	s.LedgerService.SetClock(now)
	s.CycleService.SetClock(now)
	s.RewardService.SetClock(now)
	s.WithdrawalService.SetClock(now)
}
