package services

import (
	"fmt"

	"crm_backend/internal/apperrors"
)

// checkEnumUpdate guards enum fields arriving through the dynamic
// partial-update path, mirroring the storage CHECK constraints so a bad
// value is a 400 rather than a database error.
func checkEnumUpdate(updates map[string]interface{}, key string, allowed ...string) error {
	raw, ok := updates[key]
	if !ok {
		return nil
	}
	value, ok := raw.(string)
	if !ok {
		return &apperrors.ValidationError{Msg: fmt.Sprintf("%s must be a string", key)}
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &apperrors.ValidationError{Msg: fmt.Sprintf("%s has invalid value %q", key, value)}
}
