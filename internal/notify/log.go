package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/internal/domain"
)

// LogSink writes notifications to the log. Used when no bus is configured.
type LogSink struct{}

func (LogSink) Publish(_ context.Context, n domain.Notification) error {
	fields := []zap.Field{
		zap.String("type", string(n.Type)),
		zap.Int("recipientID", n.RecipientID),
		zap.Int("beneficiaryID", n.BeneficiaryID),
		zap.Int("sourceUserID", n.SourceUserID),
		zap.Time("occurredAt", n.OccurredAt),
	}
	if n.Amount != nil {
		fields = append(fields, zap.String("amount", n.Amount.String()))
	}
	zap.L().Info("notification", fields...)
	return nil
}
