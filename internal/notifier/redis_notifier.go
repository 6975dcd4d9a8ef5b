package notifier

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/imovelhub/rent-billing/internal/domain"
	customError "github.com/imovelhub/rent-billing/pkg/errors"
)

// PaymentsConfirmedChannel is the pub/sub channel payment confirmations
// are published to.
const PaymentsConfirmedChannel = "payments.confirmed"

type redisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) PaymentNotifier {
	return &redisNotifier{client: client}
}

func (n *redisNotifier) NotifyPaymentConfirmed(ctx context.Context, notification *domain.PaymentNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return customError.WrapCacheError(err)
	}

	if err := n.client.Publish(ctx, PaymentsConfirmedChannel, payload).Err(); err != nil {
		return customError.WrapCacheError(err)
	}

	return nil
}
