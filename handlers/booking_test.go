package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"opsdeck/catalog"
	"opsdeck/database/repository"
	"opsdeck/handlers"
	"opsdeck/routes"
	"opsdeck/services/booking"
	ai "opsdeck/services/intelligence"
	"opsdeck/services/invoice"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cat := catalog.Default()
	bookingRepo := repository.NewMemoryBookingRepo(cat.SeedBookings)
	invoiceRepo := repository.NewMemoryInvoiceRepo(cat.SeedInvoices)
	logger := zap.NewNop()

	invoiceService := &invoice.DefaultInvoiceService{Repo: invoiceRepo, Catalog: cat, Logger: logger}
	sessionService := &booking.DefaultSessionService{
		Catalog:      cat,
		Sessions:     booking.NewMemorySessionStore(time.Minute),
		Bookings:     bookingRepo,
		Reconciler:   invoiceService,
		DemoTenantID: "t1",
		Logger:       logger,
	}

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(cat),
		Booking:   handlers.NewBookingHandler(sessionService, logger),
		Invoice:   handlers.NewInvoiceHandler(invoiceService, cat, logger),
		Dashboard: handlers.NewDashboardHandler(invoiceRepo, bookingRepo, cat, ai.DisabledService{}, logger),
		AI:        handlers.NewAIHandler(ai.DisabledService{}, cat, logger),
	})
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestBookingFlow_EndToEnd(t *testing.T) {
	router := newTestRouter()

	// The seed booking occupies 14:00 on Conference Room A.
	w := doJSON(t, router, http.MethodGet, "/api/resources/br1/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Open a session, lock 10:00, confirm.
	w = doJSON(t, router, http.MethodPost, "/api/booking/session", gin.H{"resourceId": "br1"})
	require.Equal(t, http.StatusOK, w.Code)
	session := decodeBody(t, w)
	sessionID := session["sessionId"].(string)
	require.Equal(t, "t1", session["tenantId"])

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/booking/session/%s/select", sessionID), gin.H{"hour": 10})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/booking/session/%s/confirm", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	conf := decodeBody(t, w)
	require.NotNil(t, conf["booking"])
	inv := conf["invoice"].(map[string]any)
	require.Equal(t, "inv005", inv["id"])

	// The confirmed hour is now booked for every caller.
	w = doJSON(t, router, http.MethodGet, "/api/resources/br1/slots", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var grid struct {
		Slots []struct {
			Hour   int    `json:"hour"`
			Status string `json:"status"`
		} `json:"slots"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &grid))
	for _, s := range grid.Slots {
		if s.Hour == 10 || s.Hour == 14 {
			require.Equal(t, "booked", s.Status, "hour %d", s.Hour)
		}
	}
}

func TestBookingRoutes_ErrorMapping(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodPost, "/api/booking/session", gin.H{"resourceId": "nope"})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/booking/session", gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/booking/session/missing/select", gin.H{"hour": 10})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Locking the seed-booked hour conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/booking/session", gin.H{"resourceId": "br1"})
	require.Equal(t, http.StatusOK, w.Code)
	sessionID := decodeBody(t, w)["sessionId"].(string)

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/booking/session/%s/select", sessionID), gin.H{"hour": 14})
	require.Equal(t, http.StatusConflict, w.Code)

	// Confirming with no lock is a bad request.
	w = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/booking/session/%s/confirm", sessionID), nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Cancel, then the session is gone.
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/booking/session/%s", sessionID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/booking/session/%s/select", sessionID), gin.H{"hour": 10})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogRoutes(t *testing.T) {
	router := newTestRouter()

	w := doJSON(t, router, http.MethodGet, "/api/catalog/tenants", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	require.Len(t, body["tenants"], 3)

	w = doJSON(t, router, http.MethodGet, "/api/catalog/resources", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, router, http.MethodGet, "/api/catalog/meters", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestHealthRoute(t *testing.T) {
	router := newTestRouter()
	w := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", decodeBody(t, w)["status"])
}
