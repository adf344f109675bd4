package utils

import (
	"log"
	"strings"
)

// LogEvent prints one standardized line per domain action. Keep messages
// summarized and free of sensitive payload; actor info, when known, is
// appended to the message by the caller.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	if req == "" {
		req = "-"
	}
	log.Printf("[%s] action=%s request_id=%s %s", strings.ToUpper(module), action, req, message)
}
