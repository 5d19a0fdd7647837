package certificates_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/features/certificates"
	uierrors "github.com/dalemusser/traininghub/internal/app/features/errors"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*certificates.Handler, *testutil.Stores) {
	t.Helper()
	stores := testutil.SeededStores(t)
	h := certificates.NewHandler(stores.Certificates, uierrors.NewErrorLogger(zap.NewNop()), zap.NewNop())
	return h, stores
}

func TestServeDownload_OwnCertificateIsPDF(t *testing.T) {
	h, _ := newTestHandler(t)

	// cert1 is seeded for user1.
	req := testutil.NewAuthenticatedRequest("GET", "/certificates/cert1/download", testutil.RegularUser())
	req = testutil.WithChiURLParam(req, "id", "cert1")
	rec := httptest.NewRecorder()

	h.ServeDownload(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q, want %q", ct, "application/pdf")
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, ".pdf") {
		t.Errorf("content disposition = %q, want a .pdf filename", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body does not start with a PDF header")
	}
}

func TestServeDownload_ForeignCertificateForbidden(t *testing.T) {
	h, _ := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("GET", "/certificates/cert1/download", testutil.CustomerAdmin())
	req = testutil.WithChiURLParam(req, "id", "cert1")
	rec := httptest.NewRecorder()

	// The forbidden page render may panic without initialized templates.
	func() {
		defer func() { _ = recover() }()
		h.ServeDownload(rec, req)
	}()

	if ct := rec.Header().Get("Content-Type"); ct == "application/pdf" {
		t.Error("foreign certificate was served as a PDF")
	}
}
