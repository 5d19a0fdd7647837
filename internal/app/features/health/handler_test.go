package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/traininghub/internal/app/features/health"
	"github.com/dalemusser/traininghub/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_ReportsEntityCounts(t *testing.T) {
	stores := testutil.SeededStores(t)
	h := health.NewHandler(stores.Customers, stores.Users, stores.Groups, stores.Courses, stores.Certificates, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()

	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q, want %q", ct, "application/json")
	}

	var resp struct {
		Status   string         `json:"status"`
		Entities map[string]int `json:"entities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("status = %q, want %q", resp.Status, "ok")
	}
	if resp.Entities["customers"] != 3 {
		t.Errorf("customers = %d, want 3", resp.Entities["customers"])
	}
	if resp.Entities["certificates"] != 3 {
		t.Errorf("certificates = %d, want 3", resp.Entities["certificates"])
	}
	if resp.Entities["users"] == 0 {
		t.Error("users count is zero")
	}
}
