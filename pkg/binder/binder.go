package binder

import (
	"encoding/json"
	"net/http"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/models"
	"github.com/bookstoreapi/bookstore/pkg/patch"
	"github.com/creasty/defaults"
	"github.com/go-playground/mold/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/echo/v4/middleware/logger"
)

var unknownFieldsRE = regexp.MustCompile(`^json: unknown field "(.*)"$`)

// Binder is a custom struct that implements the Echo Binder interface. It binds
// to a struct, uses mold to clean up the params, and validator to validate
// them.
type Binder struct {
	queryDecoder *schema.Decoder
	formDecoder  *schema.Decoder
	conform      *mold.Transformer
	validate     *validator.Validate
}

// New initializes a new Binder instance with the appropriate validation
// functions registered.
func New() (*Binder, error) {
	queryDecoder := schema.NewDecoder()
	queryDecoder.SetAliasTag("query")
	formDecoder := schema.NewDecoder()
	formDecoder.SetAliasTag("form")
	conform := modifiers.New()
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterCustomTypeFunc(patchFieldValue,
		patch.Field[string]{},
		patch.Field[int]{},
		patch.Field[float64]{},
		patch.Field[models.Date]{},
	)
	validate.RegisterCustomTypeFunc(dateValue, models.Date{})

	return &Binder{queryDecoder, formDecoder, conform, validate}, nil
}

// Bind binds, modifies, and validates payloads against the given struct.
func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()

	if req.ContentLength != 0 && req.Body != nil && req.Body != http.NoBody {
		ctype := req.Header.Get(echo.HeaderContentType)
		switch {
		case strings.HasPrefix(ctype, echo.MIMEApplicationJSON):
			if err := b.bindJSON(i, c); err != nil {
				return err
			}
		case strings.HasPrefix(ctype, echo.MIMEApplicationForm), strings.HasPrefix(ctype, echo.MIMEMultipartForm):
			if err := b.bindForm(i, c, strings.HasPrefix(ctype, echo.MIMEMultipartForm)); err != nil {
				return err
			}
		default:
			return errcodes.UnsupportedMediaType()
		}
	} else if req.Method == http.MethodGet || req.Method == http.MethodDelete {
		if err := b.decodeQuery(i, c.QueryParams(), b.queryDecoder); err != nil {
			return err
		}
	} else {
		return errcodes.EmptyRequestBody()
	}

	if err := b.conform.Struct(req.Context(), i); err != nil {
		return errors.WithStack(err)
	}

	if err := defaults.Set(i); err != nil {
		return errors.WithStack(err)
	}

	if err := b.validate.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return errors.WithStack(err)
		}
		return errcodes.ValidationError(formatValidationError(errs[0]))
	}
	return nil
}

func (b *Binder) bindJSON(i interface{}, c echo.Context) error {
	req := c.Request()
	defer req.Body.Close()

	dec := json.NewDecoder(req.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(i); err != nil {
		// return better error message when there are unknown fields
		if matches := unknownFieldsRE.FindStringSubmatch(err.Error()); len(matches) > 1 {
			return errcodes.UnknownParameter(matches[1])
		}

		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return errcodes.ValidationTypeError(formatUnmarshalTypeError(typeErr))
		}

		logger.FromEchoContext(c).Err(err).Warn("json decode error")

		return errcodes.MalformedPayload()
	}
	return nil
}

func (b *Binder) bindForm(i interface{}, c echo.Context, multipart bool) error {
	params, err := c.FormParams()
	if err != nil {
		return errcodes.MalformedPayload()
	}
	if err := b.decodeQuery(i, params, b.formDecoder); err != nil {
		return err
	}
	if !multipart {
		return nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return errcodes.MalformedPayload()
	}
	// Files are only collected into a FormFiles field, keyed by form name.
	field := reflect.ValueOf(i).Elem().FieldByName("FormFiles")
	if !field.IsValid() || !field.CanSet() {
		return nil
	}
	for key, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		if field.IsNil() {
			field.Set(reflect.MakeMap(field.Type()))
		}
		field.SetMapIndex(reflect.ValueOf(key), reflect.ValueOf(headers[0]))
	}
	return nil
}

func (b *Binder) decodeQuery(i interface{}, params url.Values, decoder *schema.Decoder) error {
	err := decoder.Decode(i, params)
	if err == nil {
		return nil
	}

	var multi schema.MultiError
	if !errors.As(err, &multi) {
		return errors.WithStack(err)
	}
	for _, e := range multi {
		var conv schema.ConversionError
		if errors.As(e, &conv) {
			return errcodes.ValidationTypeError(formatSchemaConversionError(conv))
		}
		var unknown schema.UnknownKeyError
		if errors.As(e, &unknown) {
			return errcodes.UnknownParameter(unknown.Key)
		}
		return errors.WithStack(e)
	}
	return nil
}

func patchFieldValue(field reflect.Value) interface{} {
	if v, ok := field.Interface().(interface{ ValidationValue() interface{} }); ok {
		return v.ValidationValue()
	}
	return nil
}

func dateValue(field reflect.Value) interface{} {
	d, ok := field.Interface().(models.Date)
	if !ok || d.IsZero() {
		return nil
	}
	return d.Time
}
