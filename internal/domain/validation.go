package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// requireUnique reports the first repeated value in values, naming field.
func requireUnique(field string, values []string) error {
	seen := make(map[string]int, len(values))
	for i, v := range values {
		if first, ok := seen[v]; ok {
			return fmt.Errorf("%s[%d] duplicates %s[%d] (%q)", field, i, field, first, v)
		}
		seen[v] = i
	}
	return nil
}
