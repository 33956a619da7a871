package prefixtrie

import "github.com/cockroachdb/errors"

// Configuration errors returned by Search. Absence of a match is not an
// error; it is reported through Result.Found.
var (
	// ErrNegativeBudget is returned when the correction budget is below zero.
	ErrNegativeBudget = errors.New("correction budget must be non-negative")

	// ErrIndelsDisabled is returned when a positive correction budget is
	// supplied to an engine built without indels. The engine never coerces
	// such a call into a substitution-only search.
	ErrIndelsDisabled = errors.New("engine built without indels accepts only a zero correction budget")
)
