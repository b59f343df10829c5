package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// useJSONFieldNames makes validation errors report the json name of a field
// ("region") rather than the Go name ("Region").
func useJSONFieldNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// describeBindError turns a request binding error into a field and message.
func describeBindError(err error) (string, string) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "", "request body must be a JSON object"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field(), "field required"
	case "min":
		return fe.Field(), fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fe.Field(), fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fe.Field(), "invalid value"
	}
}
