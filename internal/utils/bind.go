package utils

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"agora/internal/errmsg"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Bind decodes the JSON body into dst and validates it. It returns
// errmsg.EmptyStatusError when the payload is usable.
func Bind(c fiber.Ctx, dst any) errmsg.StatusError {
	if err := json.Unmarshal(c.Body(), dst); err != nil {
		return errmsg.InvalidPayload
	}

	return Validate(dst)
}

// Validate checks dst against its validate tags.
func Validate(dst any) errmsg.StatusError {
	err := validate.Struct(dst)
	if err == nil {
		return errmsg.EmptyStatusError
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return errmsg.InvalidField(fieldErrs[0].Field(), fieldErrs[0].Tag())
	}

	return errmsg.InvalidPayload
}
