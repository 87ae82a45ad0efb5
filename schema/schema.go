// Package schema holds the declarative validation rules for the public
// intake form, plus the option lists the default form configuration is
// built from.
package schema

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LeadForm is the shape a public submission must have. Validation rules
// live in the validate tags; json tags double as the field names used to
// key validation errors.
type LeadForm struct {
	FirstName     string   `json:"firstName" validate:"required"`
	LastName      string   `json:"lastName" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Country       string   `json:"country" validate:"required"`
	LinkedIn      string   `json:"linkedIn" validate:"required,url"`
	VisaInterests []string `json:"visaInterests" validate:"min=1"`
	HelpMessage   string   `json:"helpMessage" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Key errors by the json field name rather than the Go field name,
	// so the form UI can attribute messages to its inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessages maps "field/tag" to the message shown to the applicant.
var fieldMessages = map[string]string{
	"firstName/required":   "First name is required",
	"lastName/required":    "Last name is required",
	"email/required":       "Email is required",
	"email/email":          "Please enter a valid email",
	"country/required":     "Country is required",
	"linkedIn/required":    "LinkedIn / Website URL is required",
	"linkedIn/url":         "Please enter a valid URL",
	"visaInterests/min":    "Please select at least one visa category",
	"helpMessage/required": "Please tell us how we can help",
}

// ValidateLeadForm checks f against the form rules. It returns nil when the
// form is acceptable, otherwise a map of json field name to the messages
// for that field. Fields that pass have no entry.
func ValidateLeadForm(f *LeadForm) map[string][]string {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Struct-level failure outside the tag rules; attribute it to the
		// form as a whole.
		return map[string][]string{"form": {err.Error()}}
	}

	details := make(map[string][]string)
	for _, fe := range errs {
		msg, ok := fieldMessages[fe.Field()+"/"+fe.Tag()]
		if !ok {
			msg = "Invalid value"
		}
		details[fe.Field()] = append(details[fe.Field()], msg)
	}
	return details
}
