package validator

import (
	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	optsGenValidator.Set(Validator)

	// token_id accepts types that validate themselves, e.g. types.MessageID.
	if err := Validator.RegisterValidation("token_id", func(fl validator.FieldLevel) bool {
		v, ok := fl.Field().Interface().(interface{ Validate() error })
		return ok && v.Validate() == nil
	}); err != nil {
		panic(err)
	}
}
