package validate

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var ErrMissingFields = errors.New("missing required fields")

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		// decimal amounts are checked by value, so a zero price counts as missing.
		instance.RegisterCustomTypeFunc(func(field reflect.Value) any {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.InexactFloat64()
			}
			return nil
		}, decimal.Decimal{})
	})
	return instance
}

// Required reports ErrMissingFields when any field tagged `validate:"required"`
// holds its zero value: empty strings, zero numbers and absent values all fail.
func Required(s any) error {
	if err := get().Struct(s); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) {
			return ErrMissingFields
		}
		return err
	}
	return nil
}
