package server

import (
	"context"
	"time"
)

// runReferenceRefresh keeps the environment catalog warm so page loads almost
// never pay the upstream round trip. Failures are logged and retried on the
// next tick; the fetch-through path covers any gap.
func (s *Server) runReferenceRefresh(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		s.logger.Error("reference refresh disabled: non-positive interval", "interval", interval)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("starting reference data refresh", "interval", interval)

	if _, err := s.reference.Refresh(ctx); err != nil {
		s.logger.Error("initial reference refresh failed", "error", err)
	}

	for {
		select {
		case <-ticker.C:
			if _, err := s.reference.Refresh(ctx); err != nil {
				s.logger.Error("reference refresh failed", "error", err, "retry_in", interval)
			}
		case <-ctx.Done():
			s.logger.Info("reference data refresh canceled")
			return
		}
	}
}
