package binder

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/segmentio/encoding/json"
)

const (
	gt       = "gt"
	gte      = "gte"
	lt       = "lt"
	lte      = "lte"
	mx       = "max"
	mn       = "min"
	oneof    = "oneof"
	required = "required"
)

var patchTypeRE = regexp.MustCompile(`^patch\.Field\[(?:.*\.)?(.+)\]$`)

func formatUnmarshalTypeError(err *json.UnmarshalTypeError) string {
	return fmt.Sprintf("%q should be of type %s", strings.Trim(err.Field, "."), typeName(err.Type))
}

func formatSchemaConversionError(err schema.ConversionError) string {
	return fmt.Sprintf("%q should be of type %s", err.Key, typeName(err.Type))
}

// typeName reports partial update fields by the type they wrap.
func typeName(t reflect.Type) string {
	if t == nil {
		return "unknown"
	}
	name := t.String()
	if m := patchTypeRE.FindStringSubmatch(name); len(m) > 1 {
		return strings.ToLower(m[1])
	}
	return name
}

func isNumeric(k reflect.Kind) bool {
	//exhaustive:ignore
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func lengthBound(err validator.FieldError, comparison string) string {
	resource := "character"
	if err.Kind() == reflect.Slice {
		resource = "element"
	}
	if err.Param() != "1" {
		resource += "s"
	}
	return fmt.Sprintf("%q length must be %s %s %s", err.Field(), comparison, err.Param(), resource)
}

func formatValidationError(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case gt:
		return fmt.Sprintf("%q must be greater than %s", field, err.Param())
	case gte:
		return fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param())
	case lt:
		return fmt.Sprintf("%q must be less than %s", field, err.Param())
	case lte:
		return fmt.Sprintf("%q must be less than or equal to %s", field, err.Param())
	case mx:
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%q must be less than or equal to %s", field, err.Param())
		}
		return lengthBound(err, "less than or equal to")
	case mn:
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%q must be greater than or equal to %s", field, err.Param())
		}
		return lengthBound(err, "greater than or equal to")
	case oneof:
		valids := []string{}
		for _, p := range strings.Fields(err.Param()) {
			valids = append(valids, fmt.Sprintf("%q", p))
		}
		return fmt.Sprintf("%q must be one of the following: %s", field, strings.Join(valids, ", "))
	case required:
		return fmt.Sprintf("%q is required", field)
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}
