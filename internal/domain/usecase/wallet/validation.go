package wallet

import (
	"strings"

	errs "github.com/camilosanchez/virtual-wallet/internal/domain/error"
)

// requireParams checks that every named parameter carries a non-blank value.
// Order matters only for the message: the first missing name is reported.
func requireParams(pairs ...string) *Result {
	for i := 0; i+1 < len(pairs); i += 2 {
		name, value := pairs[i], pairs[i+1]
		if strings.TrimSpace(value) == "" {
			return fail(errs.ErrMissingParameter, msgMissingParams+": "+name)
		}
	}
	return nil
}
