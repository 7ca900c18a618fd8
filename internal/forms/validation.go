package forms

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/2beens/trainsmart/internal/musclegroups"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by the names the client sends
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("musclegroup", func(fl validator.FieldLevel) bool {
		return musclegroups.Valid(fl.Field().Int())
	}); err != nil {
		panic(err)
	}

	return v
}

// validateForm returns one message per failing field. messages is keyed by
// "field.tag", unknown combinations fall back to a generic message.
func validateForm(form any, messages map[string]string) map[string]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return map[string]string{"form": err.Error()}
	}

	errs := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		if _, seen := errs[fe.Field()]; seen {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		errs[fe.Field()] = msg
	}

	return errs
}
