package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
)

func TestHealth_ReportsMode(t *testing.T) {
	e := newEchoWithValidator()
	for _, tc := range []struct {
		demo bool
		want string
	}{
		{demo: false, want: "live"},
		{demo: true, want: "demo"},
	} {
		h := NewHandler(tc.demo)
		req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		if err := h.Health(e.NewContext(req, rec)); err != nil {
			t.Fatalf("health: %v", err)
		}
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var res struct {
			Status string `json:"status"`
			Mode   string `json:"mode"`
		}
		_ = json.Unmarshal(rec.Body.Bytes(), &res)
		if res.Status != "ok" || res.Mode != tc.want {
			t.Fatalf("demo=%v: res %+v, want mode %q", tc.demo, res, tc.want)
		}
	}
}
