package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/auth"
)

type TokenJobs struct {
	jwtRepo auth.JWTRepository
}

func NewTokenJobs(jwtRepo auth.JWTRepository) *TokenJobs {
	return &TokenJobs{jwtRepo: jwtRepo}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)
}

// PurgeExpiredRefreshTokens removes refresh tokens past their expiry.
// Revocation checks only ever look at live rows, so expired ones are
// dead weight.
func (j *TokenJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.jwtRepo.DeleteExpiredTokens(ctx)
	if err != nil {
		return err
	}

	if deleted > 0 {
		slog.Info("Cron: Purged expired refresh tokens", "deleted", deleted)
	}
	return nil
}
