package repository

import "strings"

// Postgres reports these conditions only through error text, so
// classification is substring matching against the driver message.
var (
	duplicateKeyMarkers = []string{"duplicate key", "UNIQUE constraint", "Duplicate entry"}
	connectionMarkers   = []string{"connection", "dial", "network", "timeout", "EOF", "broken pipe"}
)

func isDuplicateKeyError(err error) bool {
	return matchesAny(err, duplicateKeyMarkers)
}

func isConnectionError(err error) bool {
	return matchesAny(err, connectionMarkers)
}

func matchesAny(err error, markers []string) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range markers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
