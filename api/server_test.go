package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/tabi/config"
	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/model"
	"github.com/stsysd/tabi/store"
)

// テスト用の定数
const testAPIKey = "test-api-key"

// envelope はテストでレスポンスを読むための型です。
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

func newTestServer(t *testing.T, apiKey string) (*Server, *store.SQLiteStore) {
	t.Helper()
	s, err := store.NewSQLiteStore(t.TempDir(), db.Migrate)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cfg := &config.Config{DataDir: t.TempDir(), Port: "8080", APIKey: apiKey}
	return NewServer(s, cfg), s
}

func doRequest(t *testing.T, srv http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatalf("Failed to encode body: %v", err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(env.Data, &v); err != nil {
		t.Fatalf("Failed to decode data %s: %v", env.Data, err)
	}
	return v
}

func naraiPlanBody() map[string]any {
	return map[string]any{
		"title":       "奈良井旅行",
		"description": "中山道の宿場町を歩く",
		"startDate":   "2024-05-01",
		"endDate":     "2024-05-03",
		"destination": "奈良井宿",
		"budget": map[string]any{
			"total":    50000,
			"currency": "JPY",
			"breakdown": map[string]any{
				"accommodation":  20000,
				"transportation": 10000,
				"food":           15000,
				"activities":     5000,
				"other":          0,
			},
		},
	}
}

func accommodationBody(name, typ string, planID int64) map[string]any {
	body := map[string]any{
		"name":        name,
		"description": "宿場町の旅籠",
		"type":        typ,
		"location":    map[string]any{"address": "奈良井", "prefecture": "長野県", "city": "塩尻市"},
		"contact":     map[string]any{"phone": "0264-00-0000"},
		"checkIn":     "15:00",
		"checkOut":    "10:00",
		"policies":    map[string]any{"cancellation": "前日50%", "payment": "現金"},
	}
	body["travelPlanId"] = planID
	return body
}

func attractionBody(name, category string, planID int64) map[string]any {
	return map[string]any{
		"name":        name,
		"description": "木曽の名所",
		"category":    category,
		"location": map[string]any{
			"address":     "奈良井",
			"prefecture":  "長野県",
			"city":        "塩尻市",
			"coordinates": map[string]any{"latitude": 35.96, "longitude": 137.81},
		},
		"openingHours": map[string]any{"open": "09:00", "close": "17:00"},
		"admission":    map[string]any{"adult": 300, "currency": "JPY"},
		"travelPlanId": planID,
	}
}

func createPlan(t *testing.T, srv http.Handler) model.TravelPlan {
	t.Helper()
	rec, env := doRequest(t, srv, http.MethodPost, "/api/travel", naraiPlanBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	return decodeData[model.TravelPlan](t, env)
}

func TestHealthCheck(t *testing.T) {
	srv, s := newTestServer(t, "")

	rec, env := doRequest(t, srv, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("Expected healthy response, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[map[string]string](t, env); got["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", got)
	}

	s.Close()
	rec, env = doRequest(t, srv, http.MethodGet, "/api/health", nil)
	if rec.Code != http.StatusServiceUnavailable || env.Success {
		t.Errorf("Expected 503 after close, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreateTravelPlan(t *testing.T) {
	srv, _ := newTestServer(t, "")

	rec, env := doRequest(t, srv, http.MethodPost, "/api/travel", naraiPlanBody())
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if !env.Success || env.Message != "旅行プランを作成しました" {
		t.Errorf("Unexpected envelope: %+v", env)
	}

	var raw map[string]any
	if err := json.Unmarshal(env.Data, &raw); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
	if raw["isPublic"] != false {
		t.Errorf("Expected isPublic false, got %v", raw["isPublic"])
	}
	if itinerary, ok := raw["itinerary"].([]any); !ok || len(itinerary) != 0 {
		t.Errorf("Expected empty itinerary array, got %v", raw["itinerary"])
	}
	if raw["id"].(float64) <= 0 {
		t.Errorf("Expected positive id, got %v", raw["id"])
	}
}

func TestCreateTravelPlanValidation(t *testing.T) {
	tests := []struct {
		description string
		body        any
		wantStatus  int
		wantErrors  []string
	}{
		{
			description: "終了日が開始日より前",
			body: func() map[string]any {
				b := naraiPlanBody()
				b["startDate"] = "2024-05-03"
				b["endDate"] = "2024-05-01"
				return b
			}(),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"終了日は開始日より後の日付である必要があります"},
		},
		{
			description: "タイトルなし",
			body: func() map[string]any {
				b := naraiPlanBody()
				delete(b, "title")
				return b
			}(),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"タイトルは必須です"},
		},
		{
			description: "予算の合計なし",
			body: func() map[string]any {
				b := naraiPlanBody()
				b["budget"] = map[string]any{}
				return b
			}(),
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"予算の合計は必須です"},
		},
		{
			description: "JSONとして不正",
			body:        "{invalid",
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			srv, _ := newTestServer(t, "")
			rec, env := doRequest(t, srv, http.MethodPost, "/api/travel", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if env.Success {
				t.Errorf("Expected success false")
			}
			if tt.wantErrors != nil {
				if diff := cmp.Diff(tt.wantErrors, env.Errors); diff != "" {
					t.Errorf("Unexpected errors (-want +got):\n%s", diff)
				}
			}

			// 何も保存されていないこと
			_, listEnv := doRequest(t, srv, http.MethodGet, "/api/travel", nil)
			if got := decodeData[[]json.RawMessage](t, listEnv); len(got) != 0 {
				t.Errorf("Expected no plans, got %d", len(got))
			}
		})
	}
}

func TestTravelPlanNotFound(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		method string
		path   string
		body   any
		status int
	}{
		{http.MethodGet, "/api/travel/999", nil, http.StatusNotFound},
		{http.MethodPut, "/api/travel/999", map[string]any{"title": "x"}, http.StatusNotFound},
		{http.MethodDelete, "/api/travel/999", nil, http.StatusNotFound},
		{http.MethodGet, "/api/travel/abc", nil, http.StatusBadRequest},
		{http.MethodGet, "/api/travel/999/calendar.svg", nil, http.StatusNotFound},
		{http.MethodGet, "/api/unknown", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			rec, env := doRequest(t, srv, tt.method, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Errorf("Expected status %d, got %d: %s", tt.status, rec.Code, rec.Body.String())
			}
			if env.Success || env.Message == "" {
				t.Errorf("Expected error envelope, got %+v", env)
			}
		})
	}
}

func TestTravelPlanLifecycle(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)
	path := fmt.Sprintf("/api/travel/%d", plan.ID)

	// 部分更新
	rec, env := doRequest(t, srv, http.MethodPut, path, map[string]any{"isPublic": true, "notes": "雨具を持参"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeData[model.TravelPlan](t, env)
	if !updated.IsPublic || updated.Notes != "雨具を持参" || updated.Title != "奈良井旅行" {
		t.Errorf("Unexpected updated plan: %+v", updated)
	}

	// 更新後の値も再検証される
	rec, env = doRequest(t, srv, http.MethodPut, path, map[string]any{"endDate": "2024-04-01"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// 公開フラグで絞り込み
	_, env = doRequest(t, srv, http.MethodGet, "/api/travel?public=true", nil)
	if got := decodeData[[]model.TravelPlan](t, env); len(got) != 1 {
		t.Errorf("Expected 1 public plan, got %d", len(got))
	}
	rec, _ = doRequest(t, srv, http.MethodGet, "/api/travel?public=maybe", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid public, got %d", rec.Code)
	}

	rec, env = doRequest(t, srv, http.MethodDelete, path, nil)
	if rec.Code != http.StatusOK || env.Message != "旅行プランを削除しました" {
		t.Fatalf("Unexpected delete response %d: %s", rec.Code, rec.Body.String())
	}
	rec, _ = doRequest(t, srv, http.MethodGet, path, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", rec.Code)
	}
}

func TestItineraryActivities(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)
	base := fmt.Sprintf("/api/travel/%d/itinerary", plan.ID)

	rec, env := doRequest(t, srv, http.MethodPost, base, map[string]any{
		"date":  "2024-05-02",
		"time":  "09:00",
		"title": "鳥居峠",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	withActivity := decodeData[model.TravelPlan](t, env)
	if len(withActivity.Itinerary) != 1 || len(withActivity.Itinerary[0].Activities) != 1 {
		t.Fatalf("Expected 1 activity, got %+v", withActivity.Itinerary)
	}
	activityID := withActivity.Itinerary[0].Activities[0].ID

	rec, _ = doRequest(t, srv, http.MethodPost, base, map[string]any{"date": "2024/05/02", "time": "09:00", "title": "x"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bad date, got %d", rec.Code)
	}

	rec, env = doRequest(t, srv, http.MethodPut, fmt.Sprintf("%s/%s", base, activityID), map[string]any{"time": "10:30"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[model.TravelPlan](t, env).Itinerary[0].Activities[0]; got.Time != "10:30" || got.Title != "鳥居峠" {
		t.Errorf("Unexpected activity after update: %+v", got)
	}

	// カレンダー表示
	rec, _ = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/api/travel/%d/calendar.svg", plan.ID), nil)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "image/svg+xml" {
		t.Fatalf("Unexpected calendar response %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !strings.Contains(rec.Body.String(), "10:30 鳥居峠") {
		t.Errorf("Expected activity in calendar, got %s", rec.Body.String())
	}

	rec, env = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("%s/%s", base, activityID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[model.TravelPlan](t, env); len(got.Itinerary) != 0 {
		t.Errorf("Expected empty itinerary, got %+v", got.Itinerary)
	}

	rec, _ = doRequest(t, srv, http.MethodDelete, fmt.Sprintf("%s/%s", base, activityID), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for removed activity, got %d", rec.Code)
	}
	rec, _ = doRequest(t, srv, http.MethodDelete, base+"/not-a-uuid", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid activity id, got %d", rec.Code)
	}
}

func TestCalendarRangeLimit(t *testing.T) {
	srv, _ := newTestServer(t, "")

	tests := []struct {
		endDate    string
		wantStatus int
	}{
		{"2024-12-31", http.StatusOK},
		{"2025-01-01", http.StatusBadRequest},
		{"9999-12-31", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.endDate, func(t *testing.T) {
			body := naraiPlanBody()
			body["startDate"] = "2024-01-01"
			body["endDate"] = tt.endDate
			rec, env := doRequest(t, srv, http.MethodPost, "/api/travel", body)
			if rec.Code != http.StatusCreated {
				t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
			}
			plan := decodeData[model.TravelPlan](t, env)

			rec, env = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/api/travel/%d/calendar.svg", plan.ID), nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus == http.StatusBadRequest && len(env.Errors) == 0 {
				t.Errorf("Expected validation errors, got %s", rec.Body.String())
			}
		})
	}
}

func TestAccommodationReviews(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)

	body := accommodationBody("旅籠 松屋", "旅館", plan.ID)
	body["rating"] = 5
	body["reviews"] = []map[string]any{
		{"author": "a", "rating": 4},
		{"author": "b", "rating": 4},
		{"author": "c", "rating": 4},
		{"author": "d", "rating": 4},
	}
	rec, env := doRequest(t, srv, http.MethodPost, "/api/accommodations", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[model.Accommodation](t, env)
	if created.Rating != 4 {
		t.Errorf("Expected rating 4 computed from reviews, got %v", created.Rating)
	}

	path := fmt.Sprintf("/api/accommodations/%d/reviews", created.ID)
	for _, author := range []string{"e", "f"} {
		rec, env = doRequest(t, srv, http.MethodPost, path, map[string]any{"author": author, "rating": 1})
		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}
	reviewed := decodeData[model.Accommodation](t, env)
	if reviewed.Rating != 3 || len(reviewed.Reviews) != 6 {
		t.Errorf("Expected rating 3 with 6 reviews, got %v with %d", reviewed.Rating, len(reviewed.Reviews))
	}

	rec, env = doRequest(t, srv, http.MethodPost, path, map[string]any{"author": "g", "rating": 6})
	if rec.Code != http.StatusBadRequest || len(env.Errors) == 0 {
		t.Errorf("Expected 400 with errors, got %d: %s", rec.Code, rec.Body.String())
	}
	rec, _ = doRequest(t, srv, http.MethodPost, "/api/accommodations/999/reviews", map[string]any{"author": "g", "rating": 3})
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}

	// 旅行プランの要約付きで取得
	rec, env = doRequest(t, srv, http.MethodGet, fmt.Sprintf("/api/accommodations/%d", created.ID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	var detail struct {
		Rating     float64                  `json:"rating"`
		TravelPlan *model.TravelPlanSummary `json:"travelPlan"`
	}
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		t.Fatalf("Failed to decode detail: %v", err)
	}
	if detail.TravelPlan == nil || detail.TravelPlan.ID != plan.ID {
		t.Errorf("Expected travel plan summary, got %+v", detail.TravelPlan)
	}
}

func TestAccommodationFilters(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)

	ascii := accommodationBody("Narai Minshuku", "民宿", plan.ID)
	ascii["location"] = map[string]any{"address": "Narai 1-1", "prefecture": "Nagano", "city": "Shiojiri"}
	for _, b := range []map[string]any{
		ascii,
		accommodationBody("ホテルA", "ホテル", plan.ID),
		accommodationBody("旅館B", "旅館", plan.ID),
	} {
		if rec, _ := doRequest(t, srv, http.MethodPost, "/api/accommodations", b); rec.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}

	tests := []struct {
		path       string
		wantStatus int
		wantNames  []string
	}{
		{"/api/accommodations?type=" + url.QueryEscape("ホテル"), http.StatusOK, []string{"ホテルA"}},
		{"/api/accommodations/type/" + url.PathEscape("旅館"), http.StatusOK, []string{"旅館B"}},
		// 評価が同じ場合は新しいものが先
		{"/api/accommodations?rating=0&city=" + url.QueryEscape("塩尻市"), http.StatusOK, []string{"旅館B", "ホテルA"}},
		{"/api/accommodations/recommended", http.StatusOK, []string{}},
		// 英字の都道府県・市区町村は大文字小文字を区別しない
		{"/api/accommodations?prefecture=NAGA&city=jIRI", http.StatusOK, []string{"Narai Minshuku"}},
		{"/api/accommodations?prefecture=nagano&city=SHIOJIRI&type=" + url.QueryEscape("民宿"), http.StatusOK, []string{"Narai Minshuku"}},
		{"/api/accommodations?rating=abc", http.StatusBadRequest, nil},
		{"/api/accommodations?rating=6", http.StatusBadRequest, nil},
		{"/api/accommodations/type/" + url.PathEscape("城"), http.StatusBadRequest, nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodGet, tt.path, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantNames == nil {
				return
			}
			got := []string{}
			for _, a := range decodeData[[]model.Accommodation](t, env) {
				got = append(got, a.Name)
			}
			if diff := cmp.Diff(tt.wantNames, got); diff != "" {
				t.Errorf("Unexpected names (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLinkedTravelPlanSummary(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)

	other := naraiPlanBody()
	other["title"] = "木曽路の旅"
	rec, env := doRequest(t, srv, http.MethodPost, "/api/travel", other)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	otherPlan := decodeData[model.TravelPlan](t, env)

	type linked struct {
		ID         int64                    `json:"id"`
		TravelPlan *model.TravelPlanSummary `json:"travelPlan"`
	}

	tests := []struct {
		base string
		body map[string]any
	}{
		{"/api/accommodations", accommodationBody("ゑちごや旅館", "旅館", plan.ID)},
		{"/api/attractions", attractionBody("鎮神社", "神社・寺院", plan.ID)},
	}
	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			rec, env := doRequest(t, srv, http.MethodPost, tt.base, tt.body)
			if rec.Code != http.StatusCreated {
				t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
			}
			created := decodeData[linked](t, env)
			if created.TravelPlan == nil || created.TravelPlan.Title != "奈良井旅行" {
				t.Errorf("Expected travelPlan.title in create response, got %s", env.Data)
			}

			path := fmt.Sprintf("%s/%d", tt.base, created.ID)
			rec, env = doRequest(t, srv, http.MethodPut, path, map[string]any{"description": "更新"})
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := decodeData[linked](t, env); got.TravelPlan == nil || got.TravelPlan.Title != "奈良井旅行" {
				t.Errorf("Expected travelPlan.title in update response, got %s", env.Data)
			}

			rec, env = doRequest(t, srv, http.MethodPut, path, map[string]any{"travelPlanId": otherPlan.ID})
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := decodeData[linked](t, env); got.TravelPlan == nil || got.TravelPlan.Title != "木曽路の旅" {
				t.Errorf("Expected relinked travelPlan.title, got %s", env.Data)
			}
		})
	}
}

func TestAttractionEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, "")
	plan := createPlan(t, srv)

	body := attractionBody("鳥居峠", "自然", plan.ID)
	body["isRecommended"] = true
	rec, env := doRequest(t, srv, http.MethodPost, "/api/attractions", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[model.Attraction](t, env)

	noCoords := attractionBody("木曽漆器館", "博物館・美術館", plan.ID)
	noCoords["location"] = map[string]any{"address": "奈良井", "prefecture": "長野県", "city": "塩尻市"}
	rec, _ = doRequest(t, srv, http.MethodPost, "/api/attractions", noCoords)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without coordinates, got %d", rec.Code)
	}

	_, env = doRequest(t, srv, http.MethodGet, "/api/attractions/recommended", nil)
	if got := decodeData[[]model.Attraction](t, env); len(got) != 1 || got[0].ID != created.ID {
		t.Errorf("Unexpected recommended attractions: %+v", got)
	}
	_, env = doRequest(t, srv, http.MethodGet, "/api/attractions/category/"+url.PathEscape("自然"), nil)
	if got := decodeData[[]model.Attraction](t, env); len(got) != 1 {
		t.Errorf("Expected 1 attraction in category, got %d", len(got))
	}

	path := fmt.Sprintf("/api/attractions/%d", created.ID)
	rec, env = doRequest(t, srv, http.MethodPut, path, map[string]any{"rating": 5, "phone": "0264-34-0000"})
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := decodeData[model.Attraction](t, env); got.Rating != 0 || got.Phone != "0264-34-0000" {
		t.Errorf("Expected rating unchanged and phone updated, got %+v", got)
	}

	rec, _ = doRequest(t, srv, http.MethodDelete, path, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
	rec, _ = doRequest(t, srv, http.MethodDelete, path, nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestStorageFailure(t *testing.T) {
	srv, s := newTestServer(t, "")
	s.Close()

	rec, env := doRequest(t, srv, http.MethodGet, "/api/travel", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Expected status 500, got %d: %s", rec.Code, rec.Body.String())
	}
	if env.Message != "サーバーエラーが発生しました" || len(env.Errors) != 0 {
		t.Errorf("Expected generic error without cause, got %+v", env)
	}
}

func TestAuthMiddleware(t *testing.T) {
	srv, _ := newTestServer(t, testAPIKey)

	tests := []struct {
		description string
		method      string
		path        string
		apiKey      string
		wantStatus  int
	}{
		{"GETは認証不要", http.MethodGet, "/api/travel", "", http.StatusOK},
		{"ヘルスチェックは認証不要", http.MethodGet, "/api/health", "", http.StatusOK},
		{"APIキーなしのPOST", http.MethodPost, "/api/travel", "", http.StatusUnauthorized},
		{"誤ったAPIキー", http.MethodPost, "/api/travel", "wrong", http.StatusUnauthorized},
		{"正しいAPIキー", http.MethodPost, "/api/travel", testAPIKey, http.StatusCreated},
		{"APIキーなしのDELETE", http.MethodDelete, "/api/travel/1", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			var buf bytes.Buffer
			if tt.method == http.MethodPost {
				json.NewEncoder(&buf).Encode(naraiPlanBody())
			}
			req := httptest.NewRequest(tt.method, tt.path, &buf)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestRecoverMiddleware(t *testing.T) {
	h := recoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/travel", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", rec.Code)
	}
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Success {
		t.Errorf("Expected error envelope, got %s", rec.Body.String())
	}
}
