package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/stsysd/tabi/calendar"
	"github.com/stsysd/tabi/core"
	"github.com/stsysd/tabi/logger"
	"github.com/stsysd/tabi/model"
)

// ListTravelPlansParams は旅行プラン一覧のクエリパラメータです。
type ListTravelPlansParams struct {
	Filter model.TravelPlanFilter
}

// NewListTravelPlansParams はリクエストから一覧の絞り込み条件を取得します。
func NewListTravelPlansParams(r *http.Request) (*ListTravelPlansParams, error) {
	query := r.URL.Query()
	public, err := parseBoolQuery(query.Get("public"), "public")
	if err != nil {
		return nil, err
	}
	return &ListTravelPlansParams{
		Filter: model.TravelPlanFilter{
			Destination: query.Get("destination"),
			IsPublic:    public,
		},
	}, nil
}

// TravelPlanParams はパスで指定された旅行プランを表します。
type TravelPlanParams struct {
	ID int64
}

// NewTravelPlanParams はパスパラメータから旅行プランIDを取得します。
func NewTravelPlanParams(r *http.Request) (*TravelPlanParams, error) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	return &TravelPlanParams{ID: id}, nil
}

// ActivityParams はパスで指定された旅程の予定を表します。
type ActivityParams struct {
	TravelPlanID int64
	ActivityID   uuid.UUID
}

// NewActivityParams はパスパラメータから旅行プランIDと予定IDを取得します。
func NewActivityParams(r *http.Request) (*ActivityParams, error) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	activityID, err := uuid.Parse(r.PathValue("activity_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid activity id: %q", r.PathValue("activity_id"))
	}
	return &ActivityParams{TravelPlanID: id, ActivityID: activityID}, nil
}

// handleListTravelPlans は旅行プランの一覧を返します。
func (s *Server) handleListTravelPlans(w http.ResponseWriter, r *http.Request) {
	params, err := NewListTravelPlansParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	plans, err := s.managers.TravelPlans.List(r.Context(), params.Filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, plans, "")
}

// handleCreateTravelPlan は旅行プランを作成します。
func (s *Server) handleCreateTravelPlan(w http.ResponseWriter, r *http.Request) {
	var in model.TravelPlanInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err)
		return
	}

	plan, err := s.managers.TravelPlans.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, plan, "旅行プランを作成しました")
}

// handleGetTravelPlan は旅行プランを関連情報とともに返します。
func (s *Server) handleGetTravelPlan(w http.ResponseWriter, r *http.Request) {
	params, err := NewTravelPlanParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	detail, err := s.managers.TravelPlans.Get(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, detail, "")
}

// handleUpdateTravelPlan は旅行プランを部分更新します。
func (s *Server) handleUpdateTravelPlan(w http.ResponseWriter, r *http.Request) {
	params, err := NewTravelPlanParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var patch model.TravelPlanInput
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, err)
		return
	}

	plan, err := s.managers.TravelPlans.Update(r.Context(), params.ID, &patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, plan, "旅行プランを更新しました")
}

// handleDeleteTravelPlan は旅行プランを削除します。
func (s *Server) handleDeleteTravelPlan(w http.ResponseWriter, r *http.Request) {
	params, err := NewTravelPlanParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	if err := s.managers.TravelPlans.Delete(r.Context(), params.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, nil, "旅行プランを削除しました")
}

// handleAddItineraryActivity は旅程に予定を追加します。
func (s *Server) handleAddItineraryActivity(w http.ResponseWriter, r *http.Request) {
	params, err := NewTravelPlanParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var req core.ActivityRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, err)
		return
	}

	plan, _, err := s.managers.TravelPlans.AddItineraryActivity(r.Context(), params.ID, &req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, plan, "旅程に予定を追加しました")
}

// handleUpdateItineraryActivity は旅程の予定を部分更新します。
func (s *Server) handleUpdateItineraryActivity(w http.ResponseWriter, r *http.Request) {
	params, err := NewActivityParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var patch model.ActivityInput
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, err)
		return
	}

	plan, _, err := s.managers.TravelPlans.UpdateItineraryActivity(r.Context(), params.TravelPlanID, params.ActivityID, &patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, plan, "旅程の予定を更新しました")
}

// handleDeleteItineraryActivity は旅程の予定を削除します。
func (s *Server) handleDeleteItineraryActivity(w http.ResponseWriter, r *http.Request) {
	params, err := NewActivityParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	plan, err := s.managers.TravelPlans.DeleteItineraryActivity(r.Context(), params.TravelPlanID, params.ActivityID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, plan, "旅程の予定を削除しました")
}

// handleGetCalendar は旅程をカレンダー形式のSVGで返します。
func (s *Server) handleGetCalendar(w http.ResponseWriter, r *http.Request) {
	params, err := NewTravelPlanParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	detail, err := s.managers.TravelPlans.Get(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	opts := calendar.DefaultOptions()
	opts.Title = detail.Title
	days, err := calendar.FromTravelPlan(detail.TravelPlan)
	if err != nil {
		writeError(w, r, err)
		return
	}
	svg := calendar.GenerateSVG(days, opts)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(svg)); err != nil {
		logger.L().ErrorContext(r.Context(), "failed to write calendar", "error", err)
	}
}

// parseBoolQuery は真偽値のクエリパラメータを解釈します。空の場合はnilを返します。
func parseBoolQuery(v, name string) (*bool, error) {
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &b, nil
}

// parseFloatQuery は数値のクエリパラメータを解釈します。空の場合はnilを返します。
func parseFloatQuery(v, name string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", name, v)
	}
	return &f, nil
}
