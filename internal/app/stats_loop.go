package app

import (
	"context"
	"time"

	"github.com/shivanisurendran/hostelparcel-management/internal/domain"
	"github.com/shivanisurendran/hostelparcel-management/internal/logx"
	"github.com/shivanisurendran/hostelparcel-management/internal/metrics"
)

type statsSource interface {
	Stats(ctx context.Context) (domain.Stats, error)
}

// startStatsLoop refreshes the desk gauges every interval until ctx is done.
// A non-positive interval disables the loop.
func startStatsLoop(ctx context.Context, logger logx.Logger, src statsSource, m *metrics.ParcelMetrics, interval time.Duration) {
	if interval <= 0 || src == nil || m == nil {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		refreshStats(ctx, logger, src, m)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				refreshStats(ctx, logger, src, m)
			}
		}
	}()
}

func refreshStats(ctx context.Context, logger logx.Logger, src statsSource, m *metrics.ParcelMetrics) {
	st, err := src.Stats(ctx)
	if err != nil {
		logger.Error("stats refresh failed", logx.Err(err))
		return
	}
	m.ObserveDesk(st.Pending, st.Overdue)
	if st.Overdue > 0 {
		logger.Warn("overdue parcels waiting at desk",
			logx.Int("overdue", st.Overdue),
			logx.Int("pending", st.Pending),
		)
	}
}
