package utils

import (
	"strings"

	"travelbook/internal/logging"
)

// LogEvent writes a standardized module/action line tagged with request_id.
// Keep message summarized; never pass tokens or passwords.
func LogEvent(requestID, module, action, message string) {
	logging.Info().
		Str("module", strings.ToLower(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg(message)
}

// LogFailure is LogEvent at error level with the cause attached.
func LogFailure(requestID, module, action string, err error) {
	logging.Error().
		Err(err).
		Str("module", strings.ToLower(module)).
		Str("action", action).
		Str("request_id", strings.TrimSpace(requestID)).
		Msg("operation failed")
}
