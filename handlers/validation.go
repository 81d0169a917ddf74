package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/vit0-9/namegen_api/models"
	"github.com/vit0-9/namegen_api/pkg/naming"
)

var registerOnce sync.Once

// RegisterValidators adds the tone and style rules to gin's validator and
// makes validation errors report JSON field names.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected validator engine")
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err = v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
			return naming.ValidTone(fl.Field().String())
		}); err != nil {
			return
		}
		err = v.RegisterValidation("style", func(fl validator.FieldLevel) bool {
			return naming.ValidStyle(fl.Field().String())
		})
	})
	return err
}

// Messages that read better than the generic ones below.
var fieldMessages = map[string]string{
	"productDescription.required": "Product description is required",
	"productDescription.min":      "Product description must be at least 10 characters",
	"productDescription.max":      "Product description too long",
	"domain.required":             "Domain is required",
	"tonePreference.tone":         "Tone preference must be one of: Funny, Trendy, Minimalist, Straightforward, Edgy",
	"stylePreference.style":       "Style preference must be one of: Open to All, One word, Phrase, Two Word Combo",
}

// bindingErrorDetails converts a ShouldBindJSON error into field errors.
func bindingErrorDetails(err error) []models.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]models.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, models.FieldError{
				Field:   fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []models.FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String()),
		}}
	}

	return []models.FieldError{{Field: "body", Message: err.Error()}}
}

func fieldMessage(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
