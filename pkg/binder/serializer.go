package binder

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// JSONSerializer encodes responses with segmentio's json package.
type JSONSerializer struct{}

func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return errors.WithStack(enc.Encode(i))
}

func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return echo.NewHTTPError(400, formatUnmarshalTypeError(typeErr)).SetInternal(err)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return echo.NewHTTPError(400, "Malformed Payload").SetInternal(err)
	}
	return errors.WithStack(err)
}
