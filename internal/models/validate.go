package models

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks boundary constraints on a record decoded from the catalog.
func Validate(v interface{}) error {
	return validatorInstance().Struct(v)
}

// ValidMovies returns the records that pass validation, in their original
// order, plus the number rejected.
func ValidMovies(movies []MovieSummary) ([]MovieSummary, int) {
	valid := make([]MovieSummary, 0, len(movies))
	rejected := 0
	for _, m := range movies {
		if err := Validate(m); err != nil {
			rejected++
			continue
		}
		valid = append(valid, m)
	}
	return valid, rejected
}
