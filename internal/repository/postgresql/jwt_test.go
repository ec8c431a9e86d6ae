package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payflow-hq/payflow-backend-go/internal/domain/auth"
	"github.com/payflow-hq/payflow-backend-go/internal/pkg/database"
)

func newMockJWTRepo(t *testing.T) (pgxmock.PgxPoolIface, *jwtRepositoryImpl) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, &jwtRepositoryImpl{db: &database.DB{Pool: mock}}
}

func TestJWTRepository_CreateRefreshToken_StoresHash(t *testing.T) {
	mock, repo := newMockJWTRepo(t)

	expiresAt := time.Now().Add(24 * time.Hour).Unix()

	sessionReq := auth.SessionTrackingRequest{UserAgent: "Mozilla/5.0", IPAddress: "192.0.2.1:40312"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO refresh_tokens")).
		WithArgs("emp-1", repo.hashToken("raw-refresh-token"), time.Unix(expiresAt, 0).UTC(), sessionReq.UserAgent, sessionReq.IPAddress).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.CreateRefreshToken(context.Background(), "emp-1", "raw-refresh-token", expiresAt, sessionReq)
	require.NoError(t, err)

	assert.NotEqual(t, "raw-refresh-token", repo.hashToken("raw-refresh-token"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_IsRefreshTokenRevoked(t *testing.T) {
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)
	revokedAt := time.Now().Add(-time.Minute)

	tests := []struct {
		name      string
		revokedAt *time.Time
		expiresAt time.Time
		want      bool
	}{
		{name: "active token", revokedAt: nil, expiresAt: future, want: false},
		{name: "revoked token", revokedAt: &revokedAt, expiresAt: future, want: true},
		{name: "expired token", revokedAt: nil, expiresAt: past, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMockJWTRepo(t)

			rows := pgxmock.NewRows([]string{"revoked_at", "expires_at"}).
				AddRow(tt.revokedAt, tt.expiresAt)

			mock.ExpectQuery(regexp.QuoteMeta("WHERE token_hash = $1")).
				WithArgs(repo.hashToken("tok")).
				WillReturnRows(rows)

			revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "tok")
			require.NoError(t, err)
			assert.Equal(t, tt.want, revoked)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestJWTRepository_IsRefreshTokenRevoked_Unknown(t *testing.T) {
	mock, repo := newMockJWTRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE token_hash = $1")).
		WithArgs(repo.hashToken("unknown")).
		WillReturnError(pgx.ErrNoRows)

	// Purged tokens count as revoked so logout stays idempotent.
	revoked, err := repo.IsRefreshTokenRevoked(context.Background(), "unknown")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_RevokeRefreshToken(t *testing.T) {
	mock, repo := newMockJWTRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SET revoked_at = NOW()")).
		WithArgs(repo.hashToken("tok")).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.RevokeRefreshToken(context.Background(), "tok"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJWTRepository_DeleteExpiredTokens(t *testing.T) {
	mock, repo := newMockJWTRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM refresh_tokens WHERE expires_at < NOW()")).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	deleted, err := repo.DeleteExpiredTokens(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
