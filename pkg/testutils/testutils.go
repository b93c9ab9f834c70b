// Package testutils builds the database and HTTP fixtures shared by package
// tests.
package testutils

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bookstoreapi/bookstore/pkg/binder"
	"github.com/bookstoreapi/bookstore/pkg/config"
	"github.com/bookstoreapi/bookstore/pkg/database"
	"github.com/bookstoreapi/bookstore/pkg/errcodes"
	"github.com/bookstoreapi/bookstore/pkg/migrations"
	"github.com/labstack/echo/v4"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// NewDB returns a migrated, seeded in-memory database that is closed when the
// test ends.
func NewDB(t *testing.T) *bun.DB {
	t.Helper()

	db, err := database.New(config.NewForTest())
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// NewEcho returns an Echo instance configured like the API server.
func NewEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.JSONSerializer = binder.JSONSerializer{}
	e.HTTPErrorHandler = errcodes.NewHandler().Handle
	return e
}

// Do sends a request through e and returns the recorded response.
func Do(e *echo.Echo, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rr := httptest.NewRecorder()
	e.ServeHTTP(rr, req)
	return rr
}

// DoJSON sends payload as a JSON body.
func DoJSON(e *echo.Echo, method, path, payload string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}
	return Do(e, method, path, body, echo.MIMEApplicationJSON)
}

// File is a file part of a multipart form.
type File struct {
	Field    string
	Filename string
	Content  []byte
}

// DoMultipart sends fields and files as a multipart form.
func DoMultipart(t *testing.T, e *echo.Echo, method, path string, fields map[string]string, files ...File) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		fw, err := w.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = fw.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return Do(e, method, path, body, w.FormDataContentType())
}

// Decode unmarshals a JSON response body into v.
func Decode(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v))
}

// ErrorCode returns the code of an error response.
func ErrorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	Decode(t, rr, &payload)
	return payload.Error.Code
}

// RequireStatus asserts the response status and prints the body on failure.
func RequireStatus(t *testing.T, rr *httptest.ResponseRecorder, status int) {
	t.Helper()
	require.Equal(t, status, rr.Code, rr.Body.String())
}
