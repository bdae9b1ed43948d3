package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xyzrestro/food-billing-app/config"
	"github.com/xyzrestro/food-billing-app/models"
	"github.com/xyzrestro/food-billing-app/utils"
)

// NotificationChannel is one outbound delivery path for a finalized bill.
type NotificationChannel interface {
	Name() string
	// Configured reports whether the channel has credentials. Unconfigured
	// channels are skipped cleanly, not treated as failures.
	Configured() bool
	Send(ctx context.Context, bill *models.Bill, link, body string) error
}

// ChannelResult is the per-channel outcome of a dispatch.
type ChannelResult struct {
	Channel string `json:"channel"`
	Skipped bool   `json:"skipped"`
	Sent    bool   `json:"sent"`
	Error   string `json:"error,omitempty"`
}

// Dispatcher fans a finalized bill out to the configured channels.
// Channels are attempted independently and concurrently; one failing must
// not prevent another from succeeding, and no failure bubbles up to the
// caller: the bill is already durably saved before dispatch is attempted.
type Dispatcher struct {
	Channels []NotificationChannel
	// Timeout bounds how long a single channel may take; a hanging
	// provider must not stall the HTTP response.
	Timeout time.Duration
}

func NewDispatcher(cfg *config.AppConfig) *Dispatcher {
	return &Dispatcher{
		Channels: []NotificationChannel{
			NewEmailChannel(cfg),
			NewWhatsAppChannel(cfg),
		},
		Timeout: 10 * time.Second,
	}
}

// Dispatch sends the rendered bill over every configured channel and
// reports per-channel outcomes. Best-effort: errors are logged, never
// returned.
func (d *Dispatcher) Dispatch(bill *models.Bill, link, body string) []ChannelResult {
	results := make([]ChannelResult, len(d.Channels))

	var wg sync.WaitGroup
	for i, ch := range d.Channels {
		if !ch.Configured() {
			utils.InfoLogger.Printf("%s not configured; skipping send for bill %s", ch.Name(), bill.ID)
			results[i] = ChannelResult{Channel: ch.Name(), Skipped: true}
			continue
		}

		wg.Add(1)
		go func(i int, ch NotificationChannel) {
			defer wg.Done()
			results[i] = d.attempt(ch, bill, link, body)
		}(i, ch)
	}
	wg.Wait()

	return results
}

// attempt runs one channel send under the dispatcher timeout. The send runs
// in its own goroutine so a provider that ignores context cancellation still
// cannot hold up the caller.
func (d *Dispatcher) attempt(ch NotificationChannel, bill *models.Bill, link, body string) ChannelResult {
	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- ch.Send(ctx, bill, link, body)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("%s send timed out after %s", ch.Name(), d.Timeout)
	}

	if err != nil {
		utils.ErrorLogger.Printf("%s send warning for bill %s: %v", ch.Name(), bill.ID, err)
		return ChannelResult{Channel: ch.Name(), Error: err.Error()}
	}
	utils.InfoLogger.Printf("%s sent bill %s to customer", ch.Name(), bill.ID)
	return ChannelResult{Channel: ch.Name(), Sent: true}
}
