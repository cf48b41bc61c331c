package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orrynara/timebank/internal/config"
	"github.com/orrynara/timebank/internal/handler"
	"github.com/orrynara/timebank/internal/model"
	"github.com/orrynara/timebank/internal/repository"
	"github.com/orrynara/timebank/internal/router"
)

// newTestServer wires a fresh store into the real router with no Redis
// and no broker, mirroring production wiring minus the side cars.
func newTestServer(t *testing.T) (*echo.Echo, *repository.Store) {
	t.Helper()
	store := repository.NewStore(repository.SeedCatalog())
	if _, err := store.RegisterUser("alice", "Alice", "alice@example.com"); err != nil {
		t.Fatalf("register alice: %v", err)
	}
	e := echo.New()
	router.RegisterRoutes(e, handler.New(store, ""), config.Config{}, nil)
	return e, store
}

func doJSON(e *echo.Echo, method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetRegions(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/v1/regions", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var regions []model.Region
	if err := json.Unmarshal(rec.Body.Bytes(), &regions); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(regions) != 4 {
		t.Errorf("expected 4 regions, got %d", len(regions))
	}
}

func TestGetUnitNotFound(t *testing.T) {
	e, _ := newTestServer(t)
	if rec := doJSON(e, http.MethodGet, "/v1/units/U999", "", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestCreateBookingFlow(t *testing.T) {
	e, store := newTestServer(t)

	body := `{"unit_id":"U302","check_in":"2026-09-01","check_out":"2026-09-02","guests":2}`
	rec := doJSON(e, http.MethodPost, "/v1/bookings", "alice", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var b model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b.FinalPrice != 150000 || b.EarnedPoints != 7500 {
		t.Errorf("unexpected pricing: final=%d earned=%d", b.FinalPrice, b.EarnedPoints)
	}

	// The booking is visible in the caller's list.
	rec = doJSON(e, http.MethodGet, "/v1/bookings", "alice", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var list []model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].ID != b.ID {
		t.Errorf("expected the created booking in the list, got %+v", list)
	}

	// Overlapping follow-up is a conflict.
	if rec := doJSON(e, http.MethodPost, "/v1/bookings", "alice", body); rec.Code != http.StatusConflict {
		t.Errorf("expected 409 on overlap, got %d", rec.Code)
	}
	if got := len(store.Bookings()); got != 1 {
		t.Errorf("expected 1 ledger entry, got %d", got)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	e, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		want int
	}{
		{"bad date", `{"unit_id":"U302","check_in":"tomorrow","check_out":"2026-09-02","guests":2}`, http.StatusBadRequest},
		{"checkout before checkin", `{"unit_id":"U302","check_in":"2026-09-02","check_out":"2026-09-01","guests":2}`, http.StatusBadRequest},
		{"over capacity", `{"unit_id":"U302","check_in":"2026-09-01","check_out":"2026-09-02","guests":9}`, http.StatusBadRequest},
		{"unknown unit", `{"unit_id":"U999","check_in":"2026-09-01","check_out":"2026-09-02","guests":2}`, http.StatusNotFound},
		{"points over balance", `{"unit_id":"U302","check_in":"2026-09-01","check_out":"2026-09-02","guests":2,"points_to_use":10}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := doJSON(e, http.MethodPost, "/v1/bookings", "alice", tc.body); rec.Code != tc.want {
				t.Errorf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGuestIsProvisionedOnFirstUse(t *testing.T) {
	e, store := newTestServer(t)

	// No X-User-ID header: the caller becomes the guest identity and a
	// record is provisioned on the fly.
	rec := doJSON(e, http.MethodGet, "/v1/me", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var u model.User
	if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if u.ID != "guest" || u.InviteCode == "" {
		t.Errorf("unexpected guest profile %+v", u)
	}
	if _, err := store.GetUser("guest"); err != nil {
		t.Errorf("guest record not persisted: %v", err)
	}
}

func TestUnknownNamedUserIs404(t *testing.T) {
	e, _ := newTestServer(t)
	if rec := doJSON(e, http.MethodGet, "/v1/me", "mallory", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown named identity, got %d", rec.Code)
	}
}

func TestJoinMembershipEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	for i := 0; i < 2; i++ {
		rec := doJSON(e, http.MethodPost, "/v1/membership/join", "alice", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("join %d: expected 200, got %d", i, rec.Code)
		}
		var u model.User
		if err := json.Unmarshal(rec.Body.Bytes(), &u); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !u.IsMember || u.Points != repository.MembershipPayback {
			t.Errorf("join %d: expected member with single payback, got %+v", i, u)
		}
	}
}

func TestQuoteEndpointDoesNotMutate(t *testing.T) {
	e, store := newTestServer(t)

	body := `{"unit_id":"U402","check_in":"2026-09-01","check_out":"2026-09-02","guests":2}`
	rec := doJSON(e, http.MethodPost, "/v1/price/quote", "alice", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var q struct {
		FinalPrice int `json:"final_price"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.FinalPrice != 100000 {
		t.Errorf("expected quote of 100000, got %d", q.FinalPrice)
	}
	if got := len(store.Bookings()); got != 0 {
		t.Errorf("quote must not create bookings, got %d", got)
	}
}

func TestInvestorROIEndpoint(t *testing.T) {
	e, _ := newTestServer(t)

	path := fmt.Sprintf("/v1/investor/roi?loan_amount=%d&monthly_revenue=%d", 100000000, 10000000)
	rec := doJSON(e, http.MethodGet, path, "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var rep struct {
		ROIPercent float64 `json:"roi_percent"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rep.ROIPercent != 74.0 {
		t.Errorf("expected 74.0%% ROI, got %v", rep.ROIPercent)
	}

	if rec := doJSON(e, http.MethodGet, "/v1/investor/roi?loan_amount=x&monthly_revenue=1", "", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed query, got %d", rec.Code)
	}
}
