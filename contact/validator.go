package contact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

// PhoneNumberLength is the number of digits expected by strict validation.
const PhoneNumberLength = 10

var validate = newValidate()

type AddContactRequest struct {
	FirstName   string `validate:"required,notblank"`
	LastName    string `validate:"required,notblank"`
	PhoneNumber string `validate:"required,notblank"`
}

// strictPhoneTag expects exactly PhoneNumberLength ASCII digits.
var strictPhoneTag = fmt.Sprintf("len=%d,number", PhoneNumberLength)

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", isNotBlank); err != nil {
		panic(fmt.Sprintf("register notblank validation: %v", err))
	}
	return v
}

// ValidateAddContact checks that every field is present and not blank.
// With strict set, the phone number must also be exactly ten digits.
func ValidateAddContact(req AddContactRequest, strict bool) error {
	if err := validate.Struct(req); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) {
			fields := lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
				return fe.Field()
			})
			return fmt.Errorf("missing or blank fields: %s", strings.Join(fields, ", "))
		}
		return err
	}

	if strict {
		if err := validate.Var(req.PhoneNumber, strictPhoneTag); err != nil {
			return fmt.Errorf("PhoneNumber must contain exactly %d digits, got %q", PhoneNumberLength, req.PhoneNumber)
		}
	}
	return nil
}

func isNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
