package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"explorewithme/internal/domain"
)

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate decodes the request body into dest (with DisallowUnknownFields)
// and, if dest implements Validator, runs Validate(). On decode or validation failure
// it writes a 400 JSON error and returns false; otherwise returns true.
// Callers should return immediately when DecodeAndValidate returns false.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		writeError(w, http.StatusBadRequest, &APIError{
			Code:    ErrCodeBadRequest,
			Reason:  domain.ReasonValidation,
			Message: err.Error(),
		})
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			writeError(w, http.StatusBadRequest, &APIError{
				Code:    ErrCodeBadRequest,
				Reason:  domain.ReasonValidation,
				Message: strings.Join(errs, "; "),
				Errors:  errs,
			})
			return false
		}
	}
	return true
}

// CheckLength appends a message to errs when value is set and its rune count is outside [min, max].
// A required value that is blank is reported as well.
func CheckLength(errs []string, field string, value *string, min, max int, required bool) []string {
	if value == nil || strings.TrimSpace(*value) == "" {
		if required || value != nil {
			return append(errs, fmt.Sprintf("Field: %s. Error: must not be blank. Value: null", field))
		}
		return errs
	}
	if n := utf8.RuneCountInString(*value); n < min || n > max {
		errs = append(errs, fmt.Sprintf("Field: %s. Error: length must be between %d and %d. Value: %s", field, min, max, *value))
	}
	return errs
}
