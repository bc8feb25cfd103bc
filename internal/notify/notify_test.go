package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/refledger/internal/domain"
)

func TestPair(t *testing.T) {
	amount := decimal.NewFromInt(25)
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	got := Pair(domain.NotificationRewardGranted, 1, 2, &amount, at)

	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].RecipientID)
	assert.Equal(t, 2, got[1].RecipientID)
	for _, n := range got {
		assert.Equal(t, domain.NotificationRewardGranted, n.Type)
		assert.Equal(t, 1, n.BeneficiaryID)
		assert.Equal(t, 2, n.SourceUserID)
		assert.Equal(t, at, n.OccurredAt)
		assert.True(t, n.Amount.Equal(amount))
	}
}

func TestDispatcher_Notify(t *testing.T) {
	tests := []struct {
		name       string
		publishErr error
	}{
		{name: "Delivered"},
		{name: "Sink failure is swallowed", publishErr: errors.New("bus down")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := NewMockSink(ctrl)
			d := NewDispatcher(sink, 2)

			var mu sync.Mutex
			var recipients []int
			sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
				func(_ context.Context, n domain.Notification) error {
					mu.Lock()
					recipients = append(recipients, n.RecipientID)
					mu.Unlock()
					return tt.publishErr
				})

			d.Notify(context.Background(), Pair(domain.NotificationReferralExpired, 10, 20, nil, time.Now()))
			d.Close()

			assert.ElementsMatch(t, []int{10, 20}, recipients)
		})
	}
}

func TestDispatcher_NotifyAfterRequestCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := NewMockSink(ctrl)
	d := NewDispatcher(sink, 1)

	sink.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(2).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Notify(ctx, Pair(domain.NotificationRewardGranted, 1, 2, nil, time.Now()))
	d.Close()
}

func TestLogSink_Publish(t *testing.T) {
	amount := decimal.NewFromInt(25)
	err := LogSink{}.Publish(context.Background(), domain.Notification{
		Type:        domain.NotificationRewardGranted,
		RecipientID: 1,
		Amount:      &amount,
	})
	assert.NoError(t, err)
}
