package server

import (
	"context"
	"time"

	"github.com/veridia/identity/internal/logging"
	"github.com/veridia/identity/internal/repeat"
	"github.com/veridia/identity/internal/server/data"
)

// startCleanupJob removes expired password reset tokens in the background.
// Expired tokens are already rejected at claim time, so the job only keeps
// the active set from growing without bound.
func (s *Server) startCleanupJob(ctx context.Context) {
	repeat.Start(ctx, time.Hour, func(context.Context) {
		if err := data.RemoveExpiredPasswordResetTokens(s.db); err != nil {
			logging.Errorf("remove expired password reset tokens: %s", err)
		}
	})
}
