package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"crm_backend/internal/apperrors"
)

// The storage schema enforces every enum with a CHECK constraint; this
// validator is the application-level counterpart so a bad value is
// rejected before it ever reaches the database.
var validate = validator.New()

// Validate checks the struct's validate tags and converts failures into
// the API's validation error type.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			case "oneof":
				msgs = append(msgs, fmt.Sprintf("%s has invalid value %q", fe.Field(), fe.Value()))
			default:
				msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
			}
		}
		return &apperrors.ValidationError{Msg: strings.Join(msgs, "; ")}
	}
	return err
}
