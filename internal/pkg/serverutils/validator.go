package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"shared-notes-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs the struct's validate tags and converts failures
// into the 400 branch of the error taxonomy.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		messages := make([]string, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			messages = append(messages, fmt.Sprintf("%s failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return apperr.Validation("Invalid request: " + strings.Join(messages, ", "))
	}
	return apperr.Validation("Invalid request")
}
