package failure

import (
	"errors"
	"strings"
)

// Kind is the category of a provider failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindRequiresRecentLogin
	KindEmailInUse
	KindInvalidEmail
	KindOperationNotAllowed
	KindPermissionDenied
	KindNetwork
	KindQuotaExceeded
)

// Kinds lists every Kind.
var Kinds = []Kind{
	KindUnknown,
	KindRequiresRecentLogin,
	KindEmailInUse,
	KindInvalidEmail,
	KindOperationNotAllowed,
	KindPermissionDenied,
	KindNetwork,
	KindQuotaExceeded,
}

func (k Kind) String() string {
	switch k {
	case KindRequiresRecentLogin:
		return "requires_recent_login"
	case KindEmailInUse:
		return "email_in_use"
	case KindInvalidEmail:
		return "invalid_email"
	case KindOperationNotAllowed:
		return "operation_not_allowed"
	case KindPermissionDenied:
		return "permission_denied"
	case KindNetwork:
		return "network"
	case KindQuotaExceeded:
		return "quota_exceeded"
	}
	return "unknown"
}

var codeKinds = map[string]Kind{
	CodeRequiresRecentLogin: KindRequiresRecentLogin,
	CodeEmailInUse:          KindEmailInUse,
	CodeInvalidEmail:        KindInvalidEmail,
	CodeOperationNotAllowed: KindOperationNotAllowed,
	CodePermissionDenied:    KindPermissionDenied,
	CodeNetworkFailed:       KindNetwork,
	CodeUnavailable:         KindNetwork,
	CodeDeadlineExceeded:    KindNetwork,
	CodeQuotaExceeded:       KindQuotaExceeded,
	CodeResourceExhausted:   KindQuotaExceeded,
	CodeTooManyRequests:     KindQuotaExceeded,
}

// Checked in order; the first keyword found in the lowercased error text wins.
var keywordKinds = []struct {
	keyword string
	kind    Kind
}{
	{"requires-recent-login", KindRequiresRecentLogin},
	{"recent login", KindRequiresRecentLogin},
	{"email-already-in-use", KindEmailInUse},
	{"already in use", KindEmailInUse},
	{"invalid-email", KindInvalidEmail},
	{"invalid email", KindInvalidEmail},
	{"operation-not-allowed", KindOperationNotAllowed},
	{"not allowed", KindOperationNotAllowed},
	{"permission", KindPermissionDenied},
	{"network", KindNetwork},
	{"quota", KindQuotaExceeded},
	{"too many requests", KindQuotaExceeded},
}

type coder interface {
	ErrorCode() string
}

// HasCode reports whether err carries the provider code.
func HasCode(err error, code string) bool {
	var c coder
	return errors.As(err, &c) && c.ErrorCode() == code
}

// Classify returns the Kind of err: by provider code first, then by
// keywords in the error text. Unrecognized errors are KindUnknown.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var c coder
	if errors.As(err, &c) {
		if k, ok := codeKinds[c.ErrorCode()]; ok {
			return k
		}
	}

	text := strings.ToLower(err.Error())
	for _, kw := range keywordKinds {
		if strings.Contains(text, kw.keyword) {
			return kw.kind
		}
	}
	return KindUnknown
}
