package utils

import (
	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("remindertag", ValidateTagRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("remindertag", ValidateTagRule)
	}
}

// ValidateTagRule accepts the closed tag set or an empty value, which
// downstream defaults to General.
func ValidateTagRule(fl validator.FieldLevel) bool {
	tag := fl.Field().String()
	if tag == "" {
		return true
	}
	return model.ValidTag(tag)
}
