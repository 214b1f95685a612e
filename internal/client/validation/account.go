// Package validation implements the client-side field rules for the
// account-creation form. A failed validation blocks submission; nothing
// here ever reaches the network.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// AccountForm carries the raw values of the account-creation form.
// Tag order matters: per field, the first failing rule wins.
type AccountForm struct {
	Name     string `json:"name" validate:"notblank,namelen"`
	Email    string `json:"email" validate:"required,emailfmt"`
	Address  string `json:"address" validate:"required,max=400"`
	Password string `json:"password" validate:"required,pwdlen,hasupper,hasspecial"`
}

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	specialRe = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// AccountValidator validates AccountForm values.
type AccountValidator struct {
	v *validator.Validate
}

func NewAccountValidator() *AccountValidator {
	v := validator.New()

	// Error keys use the json field names so they line up with the form.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("namelen", func(fl validator.FieldLevel) bool {
		n := len(strings.TrimSpace(fl.Field().String()))
		return n >= 3 && n <= 60
	})
	_ = v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
		return emailRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("pwdlen", func(fl validator.FieldLevel) bool {
		n := len(fl.Field().String())
		return n >= 8 && n <= 16
	})
	_ = v.RegisterValidation("hasupper", func(fl validator.FieldLevel) bool {
		return upperRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("hasspecial", func(fl validator.FieldLevel) bool {
		return specialRe.MatchString(fl.Field().String())
	})

	return &AccountValidator{v: v}
}

// Validate checks the form and returns a message per offending field.
// An empty map means the form is valid.
func (a *AccountValidator) Validate(form AccountForm) map[string]string {
	err := a.v.Struct(form)
	if err == nil {
		return map[string]string{}
	}

	out := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		out[fe.Field()] = message(fe.Field(), fe.Tag())
	}
	return out
}

func message(field, tag string) string {
	switch field {
	case "name":
		if tag == "notblank" {
			return "Name is required."
		}
		return "Name must be between 3 and 60 characters."
	case "email":
		if tag == "required" {
			return "Email is required."
		}
		return "Enter a valid email address."
	case "address":
		if tag == "required" {
			return "Address is required."
		}
		return "Address cannot exceed 400 characters."
	case "password":
		switch tag {
		case "required":
			return "Password is required."
		case "pwdlen":
			return "Password must be 8-16 characters."
		case "hasupper":
			return "Password must contain at least one uppercase letter."
		default:
			return "Password must contain at least one special character."
		}
	}
	return "Invalid value."
}
