package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"taskboard-api/pkg/log"
	"taskboard-api/pkg/response"
)

func TestSystemRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := HTTPServer{gin: gin.New(), l: log.NewNop()}
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/live", srv.liveCheck)

	for path, want := range map[string]string{"/health": "healthy", "/live": "alive"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}

			var resp response.Resp
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			data, _ := resp.Data.(map[string]any)
			if data["status"] != want || data["service"] != ServiceName {
				t.Errorf("unexpected body: %v", resp.Data)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080}); err == nil {
		t.Error("expected an error without a postgres pool")
	}
	if _, err := New(log.NewNop(), Config{Mode: gin.TestMode}); err == nil {
		t.Error("expected an error without a port")
	}
}
