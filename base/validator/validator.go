package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const (
	// TagAddress is the struct tag for ledger account addresses
	TagAddress = "address"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{1,64}$`)

// IsValidAddress accepts 0x-prefixed account addresses in short or long form
func IsValidAddress(address string) bool {
	return addressPattern.MatchString(address)
}

// New returns a validator with the ledger specific tags registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagAddress, func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
