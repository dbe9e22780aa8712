package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/storefront-labs/catalog-api/internal/errs"
)

// sampleRequest exercises the common tag shapes used by the API.
type sampleRequest struct {
	ID    int     `param:"id" json:"-" validate:"required,min=1,max=1000"`
	Q     *string `query:"q" json:"-" validate:"omitempty,min=3,max=50"`
	Order string  `query:"order" json:"-" validate:"omitempty,oneof=asc desc"`
}

func (r *sampleRequest) Defaults() {
	r.Order = "asc"
}

func (r *sampleRequest) Validate() error {
	return Struct(r)
}

// cookieRequest exercises the Bindable extension point.
type cookieRequest struct {
	Session *string
}

func (r *cookieRequest) BindRequest(c echo.Context) error {
	cookie, err := c.Cookie("session_id")
	if err != nil {
		return nil
	}
	r.Session = &cookie.Value
	return nil
}

func (r *cookieRequest) Validate() error {
	return nil
}

func newContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func fieldErrorFor(t *testing.T, err error, field string) errs.FieldError {
	t.Helper()

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T", err)
	}
	if httpErr.Status != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", httpErr.Status)
	}
	for _, fe := range httpErr.Errors {
		if fe.Field == field {
			return fe
		}
	}
	t.Fatalf("no field error for %q in %+v", field, httpErr.Errors)
	return errs.FieldError{}
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid request with defaults", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?q=pencil")
		c.SetParamNames("id")
		c.SetParamValues("7")

		req := &sampleRequest{}
		if err := BindAndValidate(c, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if req.ID != 7 {
			t.Errorf("id: got %d", req.ID)
		}
		if req.Q == nil || *req.Q != "pencil" {
			t.Errorf("q: got %v", req.Q)
		}
		if req.Order != "asc" {
			t.Errorf("default order: got %q", req.Order)
		}
	})

	t.Run("provided value overrides default", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?order=desc")
		c.SetParamNames("id")
		c.SetParamValues("7")

		req := &sampleRequest{}
		if err := BindAndValidate(c, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Order != "desc" {
			t.Errorf("order: got %q", req.Order)
		}
	})

	t.Run("range violation reports the bound field name", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues("1001")

		err := BindAndValidate(c, &sampleRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		fe := fieldErrorFor(t, err, "id")
		if !strings.Contains(fe.Error, "1000") {
			t.Errorf("message should name the bound: %q", fe.Error)
		}
	})

	t.Run("oneof violation", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?order=down")
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := BindAndValidate(c, &sampleRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		fe := fieldErrorFor(t, err, "order")
		if !strings.Contains(fe.Error, "asc desc") {
			t.Errorf("message should list choices: %q", fe.Error)
		}
	})

	t.Run("short string violation", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/?q=ab")
		c.SetParamNames("id")
		c.SetParamValues("5")

		err := BindAndValidate(c, &sampleRequest{})
		if err == nil {
			t.Fatal("expected error")
		}
		fe := fieldErrorFor(t, err, "q")
		if !strings.Contains(fe.Error, "characters") {
			t.Errorf("string min should mention characters: %q", fe.Error)
		}
	})

	t.Run("unparseable path param is a bad request", func(t *testing.T) {
		c, _ := newContext(http.MethodGet, "/")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := BindAndValidate(c, &sampleRequest{})
		if err == nil {
			t.Fatal("expected error")
		}

		var httpErr *errs.HTTPError
		if !errors.As(err, &httpErr) {
			t.Fatalf("expected *errs.HTTPError, got %T", err)
		}
		if httpErr.Status != http.StatusBadRequest {
			t.Errorf("status: got %d", httpErr.Status)
		}
	})

	t.Run("bindable reads the cookie", func(t *testing.T) {
		e := echo.New()
		httpReq := httptest.NewRequest(http.MethodGet, "/", nil)
		httpReq.AddCookie(&http.Cookie{Name: "session_id", Value: "abc123"})
		c := e.NewContext(httpReq, httptest.NewRecorder())

		req := &cookieRequest{}
		if err := BindAndValidate(c, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Session == nil || *req.Session != "abc123" {
			t.Errorf("session: got %v", req.Session)
		}
	})
}

func TestFieldNamesKeepBoundCase(t *testing.T) {
	type casedRequest struct {
		Token *string `json:"sessionToken" validate:"required"`
	}

	_, fieldErrors := extractValidationError(Struct(&casedRequest{}))
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "sessionToken" {
		t.Errorf("field errors: got %+v", fieldErrors)
	}
}

func TestExtractValidationErrorCustom(t *testing.T) {
	msg, fieldErrors := extractValidationError(CustomValidationErrors{
		{Field: "file", Message: "is required"},
	})

	if msg != "Validation failed" {
		t.Errorf("message: got %q", msg)
	}
	if len(fieldErrors) != 1 || fieldErrors[0].Field != "file" || fieldErrors[0].Error != "is required" {
		t.Errorf("field errors: got %+v", fieldErrors)
	}
}
