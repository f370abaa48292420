package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v5"

	"github.com/samcharles93/vfiopatch/internal/report"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	NewServer(nil).Register(e)
	return e
}

func doROM(t *testing.T, e *echo.Echo, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEOctetStream)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// testImage builds a GTX 980-shaped image. markers controls the body marker
// sequence so sanity failures can be provoked.
func testImage(markers []string) []byte {
	img := []byte{0x55, 0xaa, 0x80, 0xeb}
	img = append(img, bytes.Repeat([]byte{0x11}, 10)...)
	img = append(img, []byte("VIDEO")...)
	for _, m := range markers {
		img = append(img, bytes.Repeat([]byte{0x00}, 4)...)
		img = append(img, []byte(m)...)
	}
	img = append(img, []byte("VN")...)
	img = append(img, bytes.Repeat([]byte{0x22}, 94)...)
	img = append(img, []byte("NPDS")...)
	img = append(img, bytes.Repeat([]byte{0x33}, 28)...)
	return append(img, []byte("NPDE")...)
}

func wellFormedImage() []byte {
	return testImage([]string{"NPDE", "NPDS", "NPDE", "NPDE"})
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/v1/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status: got %d", rec.Code)
	}
}

func TestInspectWellFormed(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/inspect", wellFormedImage())
	if rec.Code != http.StatusOK {
		t.Fatalf("inspect status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}

	var rep report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.HeaderOffset != 0 {
		t.Fatalf("header offset: got %d, want 0", rep.HeaderOffset)
	}
	if rep.Series != "GTX 980" {
		t.Fatalf("series: got %q, want GTX 980", rep.Series)
	}
	if rep.Sanity == nil || !rep.Sanity.OK {
		t.Fatalf("expected passing sanity finding: %+v", rep.Sanity)
	}
}

func TestInspectReportsSanityViolation(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/inspect", testImage([]string{"NPDS", "NPDE"}))
	if rec.Code != http.StatusOK {
		t.Fatalf("inspect status: got %d body=%s", rec.Code, rec.Body.String())
	}
	var rep report.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if rep.Sanity == nil || rep.Sanity.OK {
		t.Fatalf("expected failing sanity finding: %+v", rep.Sanity)
	}
}

func TestInspectHeaderNotFound(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/inspect", bytes.Repeat([]byte{0x00}, 64))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("header_not_found")) {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}
}

func TestInspectEmptyBody(t *testing.T) {
	t.Parallel()

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/inspect", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTrimWellFormed(t *testing.T) {
	t.Parallel()

	img := wellFormedImage()
	footerStart := bytes.Index(img, []byte("VN"))

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/trim", img)
	if rec.Code != http.StatusOK {
		t.Fatalf("trim status: got %d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("X-Rom-Series"); got != "GTX 980" {
		t.Fatalf("X-Rom-Series: got %q", got)
	}
	if !bytes.Equal(rec.Body.Bytes(), img[:footerStart]) {
		t.Fatalf("trimmed body mismatch: got %d bytes, want %d", rec.Body.Len(), footerStart)
	}
}

func TestTrimSanityViolationFatalByDefault(t *testing.T) {
	t.Parallel()

	img := testImage([]string{"NPDS", "NPDE"})
	e := newTestEcho()

	rec := doROM(t, e, "/v1/rom/trim", img)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("sanity_error")) {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}

	rec = doROM(t, e, "/v1/rom/trim?ignore_sanity=true", img)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with ignore_sanity, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestTrimDisableFooter(t *testing.T) {
	t.Parallel()

	img := wellFormedImage()
	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/trim?disable_footer=true", img)
	if rec.Code != http.StatusOK {
		t.Fatalf("trim status: got %d body=%s", rec.Code, rec.Body.String())
	}
	// Header starts at image offset 0, so footer-optional trim returns the
	// whole image including the trailer.
	if !bytes.Equal(rec.Body.Bytes(), img) {
		t.Fatalf("expected full image, got %d bytes, want %d", rec.Body.Len(), len(img))
	}
}

func TestTrimFooterNotFound(t *testing.T) {
	t.Parallel()

	img := wellFormedImage()
	img = img[:bytes.Index(img, []byte("VN"))]

	e := newTestEcho()
	rec := doROM(t, e, "/v1/rom/trim", img)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("footer_not_found")) {
		t.Fatalf("unexpected error body: %s", rec.Body.String())
	}

	// The same truncated image is fine in footer-optional mode.
	rec = doROM(t, e, "/v1/rom/trim?disable_footer=true", img)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with disable_footer, got %d body=%s", rec.Code, rec.Body.String())
	}
}
