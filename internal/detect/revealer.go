package detect

import (
	"context"
	"log/slog"
	"time"

	"fridgescan/internal/logging"
	"fridgescan/internal/scan"
)

// ItemSink admits one proto item into the session and returns the stored
// item. *session.Store satisfies this.
type ItemSink interface {
	AddItem(proto scan.Proto) scan.Item
}

// Revealer feeds a detection batch into a sink one item per interval,
// simulating progressive scanning.
type Revealer struct {
	sink     ItemSink
	interval time.Duration
	logger   *slog.Logger

	// OnReveal, when set, is called after each item is admitted with the
	// running count and batch total.
	OnReveal func(item scan.Item, revealed, total int)
}

// NewRevealer builds a revealer over the given sink and cadence.
func NewRevealer(sink ItemSink, interval time.Duration, logger *slog.Logger) *Revealer {
	return &Revealer{
		sink:     sink,
		interval: interval,
		logger:   logging.NewComponentLogger(logger, "detect"),
	}
}

// Run reveals the batch in order until it is exhausted or ctx is cancelled.
// Cancellation discards the unrevealed remainder so a restarted session
// cannot receive stale items. It returns the number of items revealed, with
// ctx.Err() when the run was cut short.
func (r *Revealer) Run(ctx context.Context, protos []scan.Proto) (int, error) {
	total := len(protos)
	if total == 0 {
		return 0, nil
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	revealed := 0
	for _, proto := range protos {
		select {
		case <-ctx.Done():
			r.logger.Debug("reveal cancelled",
				logging.Int("revealed", revealed),
				logging.Int("discarded", total-revealed))
			return revealed, ctx.Err()
		case <-ticker.C:
		}

		item := r.sink.AddItem(proto)
		revealed++
		r.logger.Debug("item revealed",
			logging.String("item_id", item.ID),
			logging.String("name", scan.DisplayName(item)),
			logging.Int("revealed", revealed),
			logging.Int("total", total))
		if r.OnReveal != nil {
			r.OnReveal(item, revealed, total)
		}
	}

	r.logger.Info("detection complete", logging.Int("items", revealed))
	return revealed, nil
}
