package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nycdash/taxi-dashboard-go/internal/config"
	"github.com/nycdash/taxi-dashboard-go/internal/database"
	"github.com/nycdash/taxi-dashboard-go/internal/dataset"
	"github.com/nycdash/taxi-dashboard-go/internal/middleware"
	"github.com/nycdash/taxi-dashboard-go/internal/models"
	"github.com/nycdash/taxi-dashboard-go/internal/repository"
	"github.com/nycdash/taxi-dashboard-go/internal/service"
	"github.com/nycdash/taxi-dashboard-go/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func rawTrip(t *testing.T, pickup string, minutes int, puZone int, fare, dist, total float64, payment int64) models.RawTrip {
	t.Helper()
	start, err := time.Parse("2006-01-02 15:04:05", pickup)
	if err != nil {
		t.Fatalf("bad pickup %q: %v", pickup, err)
	}
	end := start.Add(time.Duration(minutes) * time.Minute)
	pu, do := int32(puZone), int32(236)
	return models.RawTrip{
		PickupDatetime:  &start,
		DropoffDatetime: &end,
		PULocationID:    &pu,
		DOLocationID:    &do,
		FareAmount:      &fare,
		TripDistance:    &dist,
		TotalAmount:     total,
		PaymentType:     payment,
	}
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := database.Open()
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Init(db); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := database.LoadZones(db, []models.Zone{
		{LocationID: 1, Borough: "Manhattan", Name: "Midtown Center"},
		{LocationID: 2, Borough: "Manhattan", Name: "Upper East Side South"},
	}); err != nil {
		t.Fatalf("LoadZones() error = %v", err)
	}

	raws := []models.RawTrip{
		rawTrip(t, "2024-01-05 03:10:00", 15, 1, 10, 1.5, 12, 1),
		rawTrip(t, "2024-01-08 17:00:00", 25, 2, 20, 5.0, 24, 2),
		rawTrip(t, "2024-01-15 09:30:00", 12, 1, 14, 2.2, 16.8, 1),
	}
	if err := database.LoadTrips(db, dataset.Clean(raws)); err != nil {
		t.Fatalf("LoadTrips() error = %v", err)
	}

	svc, err := service.NewDashboardService(repository.NewTripRepository(db))
	if err != nil {
		t.Fatalf("NewDashboardService() error = %v", err)
	}

	cfg := &config.Config{RateLimit: 1000, SessionTTL: time.Hour}
	store := session.NewStore(cfg.SessionTTL)
	tokens := session.NewTokenManager("test-secret")
	return SetupRouter(cfg, svc, store, tokens)
}

func doRequest(t *testing.T, r *gin.Engine, method, target, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) (code float64, message string, data map[string]any) {
	t.Helper()
	var envelope map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("response not valid JSON: %v\n%s", err, w.Body.String())
	}
	code, _ = envelope["code"].(float64)
	message, _ = envelope["message"].(string)
	data, _ = envelope["data"].(map[string]any)
	return code, message, data
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("health body = %s, want status ok", w.Body.String())
	}
}

func TestGetFilterOptions(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/filters/options", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /filters/options = %d, want 200", w.Code)
	}

	_, _, data := decodeEnvelope(t, w)
	if data["min_date"] != "2024-01-05" || data["max_date"] != "2024-01-15" {
		t.Errorf("options span = [%v, %v], want [2024-01-05, 2024-01-15]", data["min_date"], data["max_date"])
	}

	if w.Header().Get(middleware.SessionTokenHeader) == "" {
		t.Error("first request did not issue a session token")
	}
	// Without the expose header a browser client cannot read the token.
	if got := w.Header().Get("Access-Control-Expose-Headers"); got != middleware.SessionTokenHeader {
		t.Errorf("Access-Control-Expose-Headers = %q, want %q", got, middleware.SessionTokenHeader)
	}
}

func TestGetDashboardDefaultFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /dashboard = %d, want 200\n%s", w.Code, w.Body.String())
	}

	_, _, data := decodeEnvelope(t, w)
	charts, ok := data["charts"].([]any)
	if !ok || len(charts) != 5 {
		t.Fatalf("charts = %v, want 5 entries", data["charts"])
	}
	metrics, ok := data["metrics"].(map[string]any)
	if !ok {
		t.Fatalf("metrics missing from payload: %v", data)
	}
	if metrics["total_trips"] != float64(3) {
		t.Errorf("total_trips = %v, want 3", metrics["total_trips"])
	}
}

func TestGetMetricsWithExplicitFilter(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet,
		"/api/v1/dashboard/metrics?startDate=2024-01-01&endDate=2024-01-10&hourFrom=0&hourTo=23&paymentTypes=Credit+card&paymentTypes=Cash",
		"", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /dashboard/metrics = %d, want 200\n%s", w.Code, w.Body.String())
	}

	_, _, data := decodeEnvelope(t, w)
	if data["total_trips"] != float64(2) {
		t.Errorf("total_trips = %v, want 2", data["total_trips"])
	}
}

func TestInvalidFilterIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	for _, target := range []string{
		"/api/v1/dashboard?startDate=January+5",
		"/api/v1/dashboard/metrics?hourFrom=7&hourTo=3",
		"/api/v1/dashboard/views/top-zones?paymentTypes=Barter",
	} {
		w := doRequest(t, r, http.MethodGet, target, "", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400\n%s", target, w.Code, w.Body.String())
		}
	}
}

func TestEmptyResultIsInformational(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodGet,
		"/api/v1/dashboard?startDate=2024-01-20&endDate=2024-01-25", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("empty result status = %d, want 200\n%s", w.Code, w.Body.String())
	}

	code, message, data := decodeEnvelope(t, w)
	if code != 0 {
		t.Errorf("code = %v, want 0", code)
	}
	if !strings.Contains(message, "widen") {
		t.Errorf("message = %q, want guidance to widen the filter", message)
	}
	if data["empty"] != true {
		t.Errorf("data = %v, want empty marker", data)
	}
}

func TestViewEndpoints(t *testing.T) {
	r := newTestRouter(t)

	views := []string{
		"top-zones", "fare-by-hour", "distance-distribution",
		"payment-breakdown", "weekday-hour-heatmap",
	}
	for _, view := range views {
		w := doRequest(t, r, http.MethodGet, "/api/v1/dashboard/views/"+view, "", nil)
		if w.Code != http.StatusOK {
			t.Errorf("GET views/%s = %d, want 200\n%s", view, w.Code, w.Body.String())
			continue
		}
		_, _, data := decodeEnvelope(t, w)
		if data["title"] == "" || data["type"] == "" {
			t.Errorf("views/%s payload missing title/type: %v", view, data)
		}
	}
}

func TestSessionFilterPersists(t *testing.T) {
	r := newTestRouter(t)

	// First request establishes the session.
	w := doRequest(t, r, http.MethodGet, "/api/v1/filters/options", "", nil)
	token := w.Header().Get(middleware.SessionTokenHeader)
	if token == "" {
		t.Fatal("no session token issued")
	}
	authed := http.Header{middleware.SessionTokenHeader: []string{token}, "Content-Type": []string{"application/json"}}

	// Save a narrow filter on the session.
	w = doRequest(t, r, http.MethodPut, "/api/v1/session/filter",
		`{"start_date":"2024-01-01","end_date":"2024-01-10","hour_from":0,"hour_to":23,"payment_types":["Credit card"]}`,
		authed)
	if w.Code != http.StatusOK {
		t.Fatalf("PUT /session/filter = %d, want 200\n%s", w.Code, w.Body.String())
	}

	// A param-less request now uses the saved filter: only the two
	// credit-card trips before Jan 10 remain... one of them is Jan 5.
	w = doRequest(t, r, http.MethodGet, "/api/v1/dashboard/metrics", "", authed)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /dashboard/metrics = %d, want 200\n%s", w.Code, w.Body.String())
	}
	_, _, data := decodeEnvelope(t, w)
	if data["total_trips"] != float64(1) {
		t.Errorf("total_trips = %v, want 1 (saved filter applied)", data["total_trips"])
	}

	// A different visitor is unaffected.
	w = doRequest(t, r, http.MethodGet, "/api/v1/dashboard/metrics", "", nil)
	_, _, data = decodeEnvelope(t, w)
	if data["total_trips"] != float64(3) {
		t.Errorf("total_trips for new session = %v, want 3", data["total_trips"])
	}
}

func TestPutFilterRejectsInvalid(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPut, "/api/v1/session/filter",
		`{"start_date":"2024-01-10","end_date":"2024-01-01","hour_from":0,"hour_to":23,"payment_types":["Cash"]}`,
		http.Header{"Content-Type": []string{"application/json"}})
	if w.Code != http.StatusBadRequest {
		t.Errorf("PUT /session/filter with inverted dates = %d, want 400\n%s", w.Code, w.Body.String())
	}
}
