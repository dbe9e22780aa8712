package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/storefront-labs/catalog-api/internal/config"
	"github.com/storefront-labs/catalog-api/internal/router"
	"github.com/storefront-labs/catalog-api/internal/server"
)

// newTestRouter builds the full router with middleware, backed by a
// minimal config and a silent logger, so tests exercise the same
// pipeline production requests go through.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test", LogLevel: "error"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			BodyLimit:          "2M",
			CORSAllowedOrigins: []string{"*"},
		},
	}

	log := zerolog.Nop()
	srv, err := server.New(cfg, &log)
	if err != nil {
		t.Fatalf("server.New: %v", err)
	}

	return router.New(srv)
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into a generic map.
func doJSON(t *testing.T, e *echo.Echo, method, target string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code, decodeObject(t, rec.Body.Bytes())
}

func decodeObject(t *testing.T, data []byte) map[string]interface{} {
	t.Helper()

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode response %s: %v", data, err)
	}
	return decoded
}

// doForm performs a request with an urlencoded form body.
func doForm(t *testing.T, e *echo.Echo, method, target, form string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(form))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code, decodeObject(t, rec.Body.Bytes())
}

// doMultipart performs a request with a multipart body holding the
// given form fields and, when filename is non-empty, one file part.
func doMultipart(t *testing.T, e *echo.Echo, target string, fields map[string]string, filename string, content []byte) (int, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	if filename != "" {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file content: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code, decodeObject(t, rec.Body.Bytes())
}

// hasFieldError reports whether the error response carries a field
// error for the given field name.
func hasFieldError(body map[string]interface{}, field string) bool {
	fieldErrors, ok := body["errors"].([]interface{})
	if !ok {
		return false
	}
	for _, raw := range fieldErrors {
		if fe, ok := raw.(map[string]interface{}); ok && fe["field"] == field {
			return true
		}
	}
	return false
}
