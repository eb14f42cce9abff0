package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var genderValues = map[string]struct{}{
	"male": {}, "female": {}, "m": {}, "f": {}, "other": {}, "nonbinary": {},
}

// IsGender validates the optional gender field against the accepted set.
func IsGender(fl validator.FieldLevel) bool {
	_, ok := genderValues[strings.ToLower(fl.Field().String())]
	return ok
}
