package records

import (
	"accountease/internal/core/apperror"
	"accountease/internal/core/types"
)

// parseMoney converts a decimal string to Money. Empty input means zero;
// malformed input is a validation error, never silently coerced.
func parseMoney(s, field string) (types.Money, error) {
	if s == "" {
		return types.Zero(), nil
	}
	m, err := types.NewMoneyFromString(s)
	if err != nil {
		return types.Zero(), apperror.NewInvalidArgument("malformed monetary amount").
			WithDetail("field", field).
			WithDetail("value", s)
	}
	return m, nil
}
