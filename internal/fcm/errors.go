package fcm

import (
	"strings"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
)

// Canonical provider error codes recognized by the API error mapping.
const (
	CodeInvalidToken = "messaging/invalid-registration-token"
	CodeUnregistered = "messaging/registration-token-not-registered"
)

// ErrorCode classifies a provider send error into one of the canonical
// token error codes, or returns "" for anything else. The admin SDK reports
// dead tokens as UNREGISTERED and malformed tokens as INVALID_ARGUMENT with
// a registration-token message; both legacy code strings are also matched so
// fakes and proxied errors classify the same way.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ToLower(err.Error())
	switch {
	case messaging.IsUnregistered(err), strings.Contains(msg, "registration-token-not-registered"):
		return CodeUnregistered
	case strings.Contains(msg, "invalid-registration-token"):
		return CodeInvalidToken
	case errorutils.IsInvalidArgument(err) && strings.Contains(msg, "registration token"):
		return CodeInvalidToken
	}
	return ""
}
