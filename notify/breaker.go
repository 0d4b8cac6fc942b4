package notify

import (
	"context"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// BreakerSender stops calling a failing provider for a cool-down period so a
// dead provider fails fast instead of stalling each reminder in a batch
type BreakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewBreakerSender wraps next. The breaker opens after failures consecutive
// errors and half-opens again after cooldown.
func NewBreakerSender(next Sender, failures uint32, cooldown time.Duration) *BreakerSender {
	st := gobreaker.Settings{
		Name:    next.Name(),
		Timeout: cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			// a missing address is the caller's problem, not the provider's
			return err == nil || err == ErrNoRecipient
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			zap.S().Warnw("email circuit breaker changed state", "provider", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerSender{next: next, cb: gobreaker.NewCircuitBreaker[struct{}](st)}
}

// Name implements Sender
func (b *BreakerSender) Name() string { return b.next.Name() }

// Send implements Sender. It returns gobreaker.ErrOpenState while open.
func (b *BreakerSender) Send(ctx context.Context, e Email) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Send(ctx, e)
	})
	return err
}
