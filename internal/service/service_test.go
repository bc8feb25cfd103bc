package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/pg"
	"github.com/GlebRadaev/refledger/internal/repo/memrepo"
	"github.com/GlebRadaev/refledger/internal/service/authservice"
	"github.com/GlebRadaev/refledger/internal/service/cycleservice"
	"github.com/GlebRadaev/refledger/internal/service/rewardservice"
	"github.com/GlebRadaev/refledger/internal/service/withdrawalservice"
	pkgauth "github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/retry"
)

var (
	t0     = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	reward = decimal.NewFromInt(25)
	day    = 24 * time.Hour
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recorder struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *recorder) Notify(_ context.Context, ns []domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, ns...)
}

func (r *recorder) count(typ domain.NotificationType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, x := range r.notifications {
		if x.Type == typ {
			n++
		}
	}
	return n
}

type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "plain:" + password, nil }

func (plainHasher) ComparePassword(hashed, password string) bool { return hashed == "plain:"+password }

type engine struct {
	t        *testing.T
	store    *memrepo.Store
	services *Services
	clock    *clock
	notes    *recorder
}

func newEngine(t *testing.T) *engine {
	return buildEngine(t, func(store *memrepo.Store) pg.TXManager { return store })
}

// newUnlockedEngine lets concurrent callers interleave inside a transaction.
// It has no rollback, so use it only for flows that fail on their first write.
func newUnlockedEngine(t *testing.T) *engine {
	return buildEngine(t, (*memrepo.Store).Unlocked)
}

func buildEngine(t *testing.T, txManager func(*memrepo.Store) pg.TXManager) *engine {
	store := memrepo.New()
	e := &engine{
		t:     t,
		store: store,
		clock: &clock{now: t0},
		notes: &recorder{},
	}
	e.services = New(store.Repositories(), Deps{
		TXManager: txManager(store),
		Retrier:   retry.New(retry.Config{MaxRetries: 5, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}),
		Notifier:  e.notes,
		Hasher:    plainHasher{},
		JWT:       pkgauth.NewJWTService("test-secret"),
		Reward:    reward,
		Cycles:    cycleservice.Config{Threshold: 25, Window: 30 * day},
	})
	e.services.SetClock(e.clock.Now)
	return e
}

func (e *engine) user(login, code string) *domain.User {
	u, err := e.store.Create(context.Background(), &domain.User{Login: login, ReferralCode: code})
	require.NoError(e.t, err)
	return u
}

func (e *engine) subscribe(userID int, expiresIn time.Duration) rewardservice.Outcome {
	now := e.clock.Now()
	outcome, err := e.services.RewardService.OnSubscriptionStatusChanged(context.Background(), domain.Subscription{
		UserID:    userID,
		Plan:      "pro",
		Status:    domain.SubscriptionActive,
		Paid:      true,
		ExpiresAt: now.Add(expiresIn),
		UpdatedAt: now,
	})
	require.NoError(e.t, err)
	return outcome
}

func (e *engine) link(child *domain.User, code string) {
	_, err := e.services.ReferralService.LinkReferral(context.Background(), child.ID, code)
	require.NoError(e.t, err)
}

func (e *engine) balance(userID int) *domain.Balance {
	b, err := e.services.LedgerService.GetBalance(context.Background(), userID)
	require.NoError(e.t, err)
	return b
}

func (e *engine) saveBank(userID int) {
	_, err := e.services.WithdrawalService.SaveBankDetails(context.Background(), &domain.BankDetails{
		UserID:        userID,
		AccountHolder: "Aru Sharma",
		AccountNumber: "123456789012",
		IFSC:          "HDFC0001234",
		BankName:      "HDFC",
	})
	require.NoError(e.t, err)
}

func assertConserved(t *testing.T, b *domain.Balance) {
	assert.True(t, b.TotalEarnings.Equal(b.BalanceEarnings.Add(b.WithdrawnEarnings)),
		"total %s != balance %s + withdrawn %s", b.TotalEarnings, b.BalanceEarnings, b.WithdrawnEarnings)
	assert.False(t, b.BalanceEarnings.IsNegative())
}

func TestNew(t *testing.T) {
	store := memrepo.New()
	services := New(store.Repositories(), Deps{TXManager: store, Notifier: &recorder{}, Reward: reward})

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ReferralService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.CycleService)
	assert.NotNil(t, services.RewardService)
	assert.NotNil(t, services.WithdrawalService)
}

func TestEngine_FullCycleAndWithdrawal(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	assert.Equal(t, rewardservice.OutcomeNoParent, e.subscribe(a.ID, 365*day))

	var firstCycle *domain.ReferralCycle
	for i := 1; i <= 25; i++ {
		child := e.user(fmt.Sprintf("child%02d", i), fmt.Sprintf("CHI%03d", i))
		e.link(child, "aru234")
		assert.Equal(t, rewardservice.OutcomeGranted, e.subscribe(child.ID, 30*day))

		cycles, err := e.services.CycleService.ListCycles(ctx, a.ID)
		require.NoError(t, err)
		require.Len(t, cycles, 1)
		firstCycle = &cycles[0]
		assert.Equal(t, i, firstCycle.ReferralCount)
		if i < 25 {
			assert.Equal(t, domain.CycleActive, firstCycle.Status)
		}
		e.clock.Advance(time.Hour)
	}
	assert.Equal(t, domain.CycleCompleted, firstCycle.Status)
	assert.True(t, decimal.NewFromInt(625).Equal(firstCycle.EarnedAmount))
	assert.True(t, decimal.NewFromInt(625).Equal(e.balance(a.ID).BalanceEarnings))
	assert.Equal(t, 50, e.notes.count(domain.NotificationRewardGranted))

	_, err := e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "")
	assert.ErrorIs(t, err, domain.ErrMissingBankDetails)

	e.saveBank(a.ID)
	req, err := e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "payout")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(625).Equal(req.Amount))
	require.Len(t, req.CycleIDs, 1)
	assert.Equal(t, firstCycle.ID, req.CycleIDs[0])
	assert.Equal(t, "HDFC0001234", req.BankDetails.IFSC)

	cycle, err := e.services.CycleService.GetCycle(ctx, a.ID, firstCycle.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.CycleWithdrawn, cycle.Cycle.Status)
	assert.Len(t, cycle.Referred, 25)

	b := e.balance(a.ID)
	assert.True(t, b.BalanceEarnings.IsZero())
	assert.True(t, decimal.NewFromInt(625).Equal(b.WithdrawnEarnings))
	assertConserved(t, b)

	_, err = e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "again")
	assert.ErrorIs(t, err, domain.ErrPendingRequestExists)

	_, err = e.services.WithdrawalService.Approve(ctx, req.ID, "ok")
	require.NoError(t, err)
	_, err = e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "again")
	assert.ErrorIs(t, err, domain.ErrNoEligibleEarnings)

	paid, err := e.services.WithdrawalService.MarkPaid(ctx, req.ID, "")
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalPaid, paid.Status)
	assertConserved(t, e.balance(a.ID))
}

func TestEngine_IdempotentCrediting(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	b := e.user("bob", "BOB111")
	e.link(b, "ARU234")

	assert.Equal(t, rewardservice.OutcomeGranted, e.subscribe(b.ID, 30*day))
	for i := 0; i < 3; i++ {
		outcome, err := e.services.RewardService.Evaluate(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, rewardservice.OutcomeDuplicate, outcome)
	}

	assert.True(t, reward.Equal(e.balance(a.ID).TotalEarnings))
	sum, err := e.services.LedgerService.SumEarnings(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, reward.Equal(sum))
	entries, err := e.services.LedgerService.ListEarnings(ctx, a.ID, domain.NewPage(1, 10))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "bob", entries[0].SourceName)

	cycles, err := e.services.CycleService.ListCycles(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, 1, cycles[0].ReferralCount)
}

func TestEngine_ConcurrentThreshold(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	children := make([]*domain.User, 30)
	for i := range children {
		children[i] = e.user(fmt.Sprintf("child%02d", i), fmt.Sprintf("CHI%03d", i))
		e.link(children[i], "ARU234")
	}

	var wg sync.WaitGroup
	for _, child := range children {
		wg.Add(2)
		for range 2 {
			go func(id int) {
				defer wg.Done()
				_, err := e.services.RewardService.Evaluate(ctx, id)
				assert.NoError(t, err)
			}(child.ID)
		}
	}
	wg.Wait()

	cycles, err := e.services.CycleService.ListCycles(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, domain.CycleCompleted, cycles[0].Status)
	assert.Equal(t, 30, cycles[0].ReferralCount)
	assert.True(t, decimal.NewFromInt(750).Equal(cycles[0].EarnedAmount))

	b := e.balance(a.ID)
	assert.True(t, decimal.NewFromInt(750).Equal(b.TotalEarnings))
	assertConserved(t, b)
}

// holdFirstReads makes the first n cycle reads wait until all n happened, so
// every caller works on the same snapshot before anyone writes.
func holdFirstReads(store *memrepo.Store, n int32) {
	var reads atomic.Int32
	all := make(chan struct{})
	store.AfterCycleRead(func() {
		seen := reads.Add(1)
		if seen == n {
			close(all)
		}
		if seen <= n {
			<-all
		}
	})
}

func TestEngine_StaleCycleReadLosesVersionRace(t *testing.T) {
	ctx := context.Background()
	e := newUnlockedEngine(t)

	a := e.user("aru", "ARU234")
	_, err := e.services.CycleService.GetOrCreateActiveCycle(ctx, a.ID)
	require.NoError(t, err)

	var conflicts atomic.Int32
	retrier := retry.New(retry.Config{
		MaxRetries: 5,
		BaseDelay:  time.Millisecond,
		MaxDelay:   2 * time.Millisecond,
		OnRetry:    func(int, error) { conflicts.Add(1) },
	})
	holdFirstReads(e.store, 2)

	var wg sync.WaitGroup
	for _, childID := range []int{100, 101} {
		wg.Add(1)
		go func(childID int) {
			defer wg.Done()
			err := retrier.Do(ctx, func(ctx context.Context) error {
				_, err := e.services.CycleService.RecordReferral(ctx, a.ID, childID, reward)
				return err
			})
			assert.NoError(t, err)
		}(childID)
	}
	wg.Wait()

	assert.Equal(t, int32(1), conflicts.Load())
	cycle, err := e.store.FindOpenCycle(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, cycle)
	assert.ElementsMatch(t, []int{100, 101}, cycle.ReferralIDs)
	assert.Equal(t, 2, cycle.ReferralCount)
	assert.True(t, decimal.NewFromInt(50).Equal(cycle.EarnedAmount))
}

func TestEngine_ConcurrentWithdrawalLosesOnPendingIndex(t *testing.T) {
	ctx := context.Background()
	e := newUnlockedEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	for i := 0; i < 25; i++ {
		child := e.user(fmt.Sprintf("child%02d", i), fmt.Sprintf("CHI%03d", i))
		e.link(child, "ARU234")
		e.subscribe(child.ID, 30*day)
	}
	e.saveBank(a.ID)
	holdFirstReads(e.store, 2)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrPendingRequestExists)
	}
	assert.Equal(t, 1, succeeded)

	b := e.balance(a.ID)
	assert.True(t, decimal.NewFromInt(625).Equal(b.WithdrawnEarnings))
	assert.True(t, b.BalanceEarnings.IsZero())
	assertConserved(t, b)

	cycles, err := e.services.CycleService.ListCycles(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, domain.CycleWithdrawn, cycles[0].Status)
}

func TestEngine_NoDoubleWithdrawal(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	for i := 0; i < 25; i++ {
		child := e.user(fmt.Sprintf("child%02d", i), fmt.Sprintf("CHI%03d", i))
		e.link(child, "ARU234")
		e.subscribe(child.ID, 30*day)
	}
	e.saveBank(a.ID)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "")
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, domain.ErrPendingRequestExists)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	b := e.balance(a.ID)
	assert.True(t, decimal.NewFromInt(625).Equal(b.WithdrawnEarnings))
	assertConserved(t, b)

	history, err := e.services.WithdrawalService.History(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestEngine_LazyExpiry(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	b := e.user("bob", "BOB111")
	e.link(b, "ARU234")
	e.subscribe(b.ID, 30*day)

	e.clock.Advance(31 * day)
	cycles, err := e.services.CycleService.ListCycles(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 1)
	assert.Equal(t, domain.CycleExpired, cycles[0].Status)
	expiredID := cycles[0].ID

	_, err = e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "")
	assert.ErrorIs(t, err, domain.ErrNoEligibleEarnings)

	c := e.user("cat", "CAT222")
	e.link(c, "ARU234")
	assert.Equal(t, rewardservice.OutcomeGranted, e.subscribe(c.ID, 30*day))

	cycles, err = e.services.CycleService.ListCycles(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, cycles, 2)
	assert.NotEqual(t, expiredID, cycles[0].ID)
	assert.Equal(t, domain.CycleActive, cycles[0].Status)
	assert.Equal(t, 1, cycles[0].ReferralCount)
	assert.Equal(t, e.clock.Now(), cycles[0].StartDate)

	assert.True(t, decimal.NewFromInt(50).Equal(e.balance(a.ID).BalanceEarnings))
}

func TestEngine_SweepExpiresStaleCycles(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	b := e.user("bob", "BOB111")
	e.link(b, "ARU234")
	e.subscribe(b.ID, 30*day)

	n, err := e.services.CycleService.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	e.clock.Advance(30*day + time.Second)
	n, err = e.services.CycleService.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEngine_LapsedParentUnlinks(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, day)
	b := e.user("bob", "BOB111")
	e.link(b, "ARU234")

	e.clock.Advance(2 * day)
	assert.Equal(t, rewardservice.OutcomeUnlinked, e.subscribe(b.ID, 30*day))
	assert.Equal(t, 2, e.notes.count(domain.NotificationReferralExpired))

	_, linked, err := e.services.ReferralService.GetParent(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, linked)
	assert.True(t, e.balance(a.ID).TotalEarnings.IsZero())

	outcome, err := e.services.RewardService.Evaluate(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, rewardservice.OutcomeNoParent, outcome)

	c := e.user("cat", "CAT222")
	e.subscribe(c.ID, 365*day)
	e.link(b, "CAT222")
	outcome, err = e.services.RewardService.Evaluate(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, rewardservice.OutcomeGranted, outcome)
	assert.True(t, reward.Equal(e.balance(c.ID).BalanceEarnings))
}

func TestEngine_ConflictRetryIsAtomic(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	b := e.user("bob", "BOB111")
	e.link(b, "ARU234")
	c := e.user("cat", "CAT222")
	e.link(c, "ARU234")

	e.store.InjectCycleConflicts(2)
	outcome, err := e.services.RewardService.Evaluate(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, rewardservice.OutcomeGranted, outcome)
	assert.True(t, reward.Equal(e.balance(a.ID).TotalEarnings))

	e.store.InjectCycleConflicts(100)
	_, err = e.services.RewardService.Evaluate(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrTransientFailure)
	e.store.InjectCycleConflicts(0)

	assert.True(t, reward.Equal(e.balance(a.ID).TotalEarnings))
	entries, err := e.services.LedgerService.ListEarnings(ctx, a.ID, domain.NewPage(1, 10))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestEngine_RegisterWithReferralCode(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a, err := e.services.AuthService.Register(ctx, "aru", "password1", "")
	require.NoError(t, err)
	assert.Regexp(t, `^ARU\d{3}$`, a.ReferralCode)

	b, err := e.services.AuthService.Register(ctx, "bob", "password2", a.ReferralCode)
	require.NoError(t, err)
	parent, linked, err := e.services.ReferralService.GetParent(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, linked)
	assert.Equal(t, a.ID, parent)

	referrals, err := e.services.ReferralService.ListReferrals(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, referrals, 1)
	assert.Equal(t, "bob", referrals[0].DisplayName)

	require.NoError(t, e.services.ReferralService.SetCodeActive(ctx, a.ID, false))
	_, err = e.services.AuthService.Register(ctx, "cat", "password3", a.ReferralCode)
	assert.ErrorIs(t, err, domain.ErrInvalidReferralCode)

	user, err := e.services.AuthService.Authenticate(ctx, "bob", "password2")
	require.NoError(t, err)
	assert.Equal(t, b.ID, user.ID)
}

func TestEngine_RegisterManyUsersSharingPrefix(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	codes := make(map[string]struct{})
	for i := 0; i < 1200; i++ {
		u, err := e.services.AuthService.Register(ctx, fmt.Sprintf("user%04d", i), "password1", "")
		require.NoError(t, err, "registration #%d", i)
		assert.True(t, strings.HasPrefix(u.ReferralCode, "USE"))
		codes[u.ReferralCode] = struct{}{}
	}
	assert.Len(t, codes, 1200)
}

func TestEngine_ConcurrentRegistrationOfOneLogin(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.services.AuthService.Register(ctx, "aru", "password1", "")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, authservice.ErrLoginTaken)
	}
	assert.Equal(t, 1, succeeded)
}

func TestEngine_UpdatePendingRequest(t *testing.T) {
	ctx := context.Background()
	e := newEngine(t)

	a := e.user("aru", "ARU234")
	e.subscribe(a.ID, 365*day)
	for i := 0; i < 25; i++ {
		child := e.user(fmt.Sprintf("child%02d", i), fmt.Sprintf("CHI%03d", i))
		e.link(child, "ARU234")
		e.subscribe(child.ID, 30*day)
	}
	e.saveBank(a.ID)
	req, err := e.services.WithdrawalService.RequestWithdrawal(ctx, a.ID, "")
	require.NoError(t, err)

	notes := "use UPI"
	updated, err := e.services.WithdrawalService.UpdateRequest(ctx, a.ID, req.ID, withdrawalservice.UpdateInput{
		Notes:       &notes,
		BankDetails: &domain.BankDetails{AccountHolder: "Aru Sharma", UPIID: "aru@okhdfc"},
	})
	require.NoError(t, err)
	assert.Equal(t, "aru@okhdfc", updated.BankDetails.UPIID)

	_, err = e.services.WithdrawalService.Reject(ctx, req.ID, "kyc")
	require.NoError(t, err)
	_, err = e.services.WithdrawalService.UpdateRequest(ctx, a.ID, req.ID, withdrawalservice.UpdateInput{Notes: &notes})
	assert.ErrorIs(t, err, domain.ErrRequestNotPending)

	rejected, err := e.services.WithdrawalService.ListByStatus(ctx, domain.WithdrawalRejected)
	require.NoError(t, err)
	assert.Len(t, rejected, 1)
}
