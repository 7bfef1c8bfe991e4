package utils

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators adds the date and clock rules used by request DTOs
// and reports fields by their json or query name.
func RegisterCustomValidators(v *validator.Validate) {
	v.RegisterValidation("isodate", ValidateISODateRule)
	v.RegisterValidation("clock", ValidateClockRule)
	v.RegisterTagNameFunc(fieldName)
}

var Validate *validator.Validate

// InitValidator registers the custom rules on both the standalone validator
// and the one gin uses for ShouldBind*.
func InitValidator() {
	Validate = validator.New()
	RegisterCustomValidators(Validate)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidators(v)
	}
}

func ValidateISODateRule(fl validator.FieldLevel) bool {
	return IsDate(fl.Field().String())
}

func ValidateClockRule(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
