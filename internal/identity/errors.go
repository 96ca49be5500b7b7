package identity

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"

	"github.com/lib/pq"

	"github.com/kryva/kryva/internal/failure"
)

// providerError attaches a provider code to database errors the preferences
// screen knows how to explain. Other errors are returned unchanged.
func providerError(err error) error {
	if err == nil {
		return nil
	}
	var pe *failure.ProviderError
	if errors.As(err, &pe) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "42501":
			return failure.Wrap(failure.CodePermissionDenied, err)
		case pqErr.Code == "53300", pqErr.Code == "53400":
			return failure.Wrap(failure.CodeResourceExhausted, err)
		case pqErr.Code == "57014":
			return failure.Wrap(failure.CodeDeadlineExceeded, err)
		case strings.HasPrefix(string(pqErr.Code), "08"):
			return failure.Wrap(failure.CodeUnavailable, err)
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return failure.Wrap(failure.CodeDeadlineExceeded, err)
	case errors.Is(err, driver.ErrBadConn):
		return failure.Wrap(failure.CodeUnavailable, err)
	}
	return err
}
