package repo

import (
	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/profile"
	balancerepo "github.com/GlebRadaev/refledger/internal/repo/balance-repo"
	bankrepo "github.com/GlebRadaev/refledger/internal/repo/bank-repo"
	cyclerepo "github.com/GlebRadaev/refledger/internal/repo/cycle-repo"
	earningrepo "github.com/GlebRadaev/refledger/internal/repo/earning-repo"
	referralrepo "github.com/GlebRadaev/refledger/internal/repo/referral-repo"
	subscriptionrepo "github.com/GlebRadaev/refledger/internal/repo/subscription-repo"
	userrepo "github.com/GlebRadaev/refledger/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/refledger/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/refledger/internal/service/authservice"
	"github.com/GlebRadaev/refledger/internal/service/cycleservice"
	"github.com/GlebRadaev/refledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/refledger/internal/service/referralservice"
	"github.com/GlebRadaev/refledger/internal/service/rewardservice"
	"github.com/GlebRadaev/refledger/internal/service/withdrawalservice"
)

type UserRepo interface {
	authservice.Repo
	referralservice.UserRepo
	profile.Names
}

type BalanceRepo interface {
	ledgerservice.BalanceRepo
	withdrawalservice.BalanceRepo
}

type CycleRepo interface {
	cycleservice.CycleRepo
	withdrawalservice.CycleRepo
}

type Repositories struct {
	UserRepo         UserRepo
	BalanceRepo      BalanceRepo
	BankRepo         withdrawalservice.BankRepo
	SubscriptionRepo rewardservice.SubscriptionRepo
	ReferralRepo     referralservice.EdgeRepo
	EarningRepo      ledgerservice.EarningRepo
	CycleRepo        CycleRepo
	Withdrawal       withdrawalservice.WithdrawalRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:         userrepo.New(conn),
		BalanceRepo:      balancerepo.New(conn),
		BankRepo:         bankrepo.New(conn),
		SubscriptionRepo: subscriptionrepo.New(conn),
		ReferralRepo:     referralrepo.New(conn),
		EarningRepo:      earningrepo.New(conn),
		CycleRepo:        cyclerepo.New(conn),
		Withdrawal:       withdrawalrepo.New(conn),
	}
}
