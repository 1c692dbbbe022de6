package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/config"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/handlers/orders"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/metrics"
	"github.com/pr-poehali-dev/lordhost-game-server/internal/service"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		OrderService: orders.NewMockService(ctrl),
	}

	h := New(services, &config.Config{ExposeErrors: true}, metrics.New())
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.OrderHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderHandler := NewMockOrderHandler(ctrl)
	mockOrderHandler.EXPECT().HandleHTTP(gomock.Any(), gomock.Any()).
		Do(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}).AnyTimes()

	h := &Handlers{
		OrderHandler: mockOrderHandler,
		Metrics:      metrics.New(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/", http.StatusTeapot},
		{"POST", "/", http.StatusTeapot},
		{"OPTIONS", "/", http.StatusTeapot},
		{"DELETE", "/", http.StatusTeapot},
		{"GET", "/api/orders?email=a@x.com", http.StatusTeapot},
		{"POST", "/api/orders", http.StatusTeapot},
		{"PUT", "/api/orders", http.StatusTeapot},
		{"GET", "/ping", http.StatusOK},
		{"GET", "/metrics", http.StatusOK},
		{"GET", "/swagger/doc.json", http.StatusOK},
		{"GET", "/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()
	ping(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
