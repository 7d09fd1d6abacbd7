package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSystemStatusRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	srv := HTTPServer{environment: "test"}
	router := gin.New()
	router.GET("/health", srv.healthCheck)
	router.GET("/ready", srv.readyCheck)
	router.GET("/live", srv.liveCheck)

	cases := []struct {
		path   string
		status string
	}{
		{"/health", "healthy"},
		{"/ready", "ready"},
		{"/live", "alive"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var resp struct {
				Data map[string]interface{} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Data["status"] != tc.status {
				t.Errorf("expected status %q, got %v", tc.status, resp.Data["status"])
			}
			if resp.Data["service"] != ServiceName {
				t.Errorf("expected service %q, got %v", ServiceName, resp.Data["service"])
			}
			if resp.Data["environment"] != "test" {
				t.Errorf("expected environment 'test', got %v", resp.Data["environment"])
			}
		})
	}
}
