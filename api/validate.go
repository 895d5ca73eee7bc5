package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator builds a validator whose maxitems tag enforces the configured
// array size limit on both slice lengths and plain integer sizes.
func newValidator(maxItems int) *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = v.RegisterValidation("maxitems", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		switch f.Kind() {
		case reflect.Slice:
			return f.Len() <= maxItems
		case reflect.Int, reflect.Int64, reflect.Int32:
			return f.Int() <= int64(maxItems)
		}
		return false
	})

	return v
}

// describe turns validation failures into a message suitable for clients.
func describe(err error, maxItems int) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "maxitems":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %d", fe.Field(), maxItems))
		case "gtefield":
			msgs = append(msgs, fmt.Sprintf("%s must not be less than %s", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(msgs, "; ")
}
