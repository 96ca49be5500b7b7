package identity

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/kryva/kryva/internal/failure"
	"github.com/kryva/kryva/internal/model"
	"github.com/kryva/kryva/internal/tx"
)

// DefaultRecentLoginWindow is how old a sign-in may be for DeleteIdentity.
const DefaultRecentLoginWindow = 5 * time.Minute

// EventWriter records an event in the same transaction as the change.
type EventWriter interface {
	InsertTx(ctx context.Context, tx *sql.Tx, topic, key string, payload []byte) error
}

// Provider is the identity provider backed by the Postgres users table.
type Provider struct {
	DB                *sql.DB
	Tx                *tx.Manager
	Events            EventWriter
	RecentLoginWindow time.Duration
	Now               func() time.Time
}

func NewProvider(db *sql.DB, events EventWriter, window time.Duration) *Provider {
	if window <= 0 {
		window = DefaultRecentLoginWindow
	}
	return &Provider{
		DB:                db,
		Tx:                &tx.Manager{DB: db},
		Events:            events,
		RecentLoginWindow: window,
		Now:               time.Now,
	}
}

// RequireRecentLogin fails with auth/requires-recent-login when the session
// signed in longer than window ago, or its sign-in time is unknown.
func RequireRecentLogin(s Session, now time.Time, window time.Duration) error {
	if s.AuthTime.IsZero() || now.Sub(s.AuthTime) > window {
		return failure.New(failure.CodeRequiresRecentLogin, "this operation requires a recent sign-in")
	}
	return nil
}

// UpdateDisplayName sets the display name of the session's user.
func (p *Provider) UpdateDisplayName(ctx context.Context, s Session, name string) error {
	res, err := p.DB.ExecContext(ctx,
		`UPDATE users SET display_name=$1, updated_at=NOW() WHERE id=$2`,
		name, s.UID,
	)
	if err != nil {
		return providerError(err)
	}
	return requireRow(res)
}

// DeleteIdentity removes the session's user and records an account.deleted
// event in the same transaction.
func (p *Provider) DeleteIdentity(ctx context.Context, s Session) error {
	now := p.Now()
	if err := RequireRecentLogin(s, now, p.RecentLoginWindow); err != nil {
		return err
	}

	payload, err := json.Marshal(model.AccountDeleted{UserID: s.UID, DeletedAt: now.UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal account.deleted: %w", err)
	}

	err = p.Tx.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id=$1`, s.UID)
		if err != nil {
			return err
		}
		if err := requireRow(res); err != nil {
			return err
		}
		return p.Events.InsertTx(ctx, tx, model.TopicAccountDeleted, s.UID, payload)
	})
	return providerError(err)
}

// Ping reports whether the database is reachable.
func (p *Provider) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return failure.New(failure.CodeUserNotFound, "no user record for this identity")
	}
	return nil
}
