package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"qa-review-be/internal/pkg/apperr"
)

var validate = validator.New()

// ValidateRequest checks a DTO against its validate tags and reports a
// validation error naming the offending fields.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		var fields []string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, ve := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", ve.Field(), ve.Tag()))
			}
		}
		return apperr.Validation("request.validate", "invalid request: "+strings.Join(fields, ", "))
	}
	return nil
}
