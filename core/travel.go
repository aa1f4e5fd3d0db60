package core

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stsysd/tabi/model"
	"github.com/stsysd/tabi/store"
)

// TravelPlans は旅行プランのライフサイクルを管理します。
type TravelPlans struct {
	store store.Store
	now   func() time.Time
}

// TravelPlanDetail は旅行プランに紐づく宿泊施設・観光地の要約を付与したものです。
type TravelPlanDetail struct {
	*model.TravelPlan
	Accommodations []model.AccommodationSummary `json:"accommodations"`
	Attractions    []model.AttractionSummary    `json:"attractions"`
}

// ActivityRequest は旅程に予定を追加するリクエストです。
type ActivityRequest struct {
	Date *string `json:"date"`
	model.ActivityInput
}

// Create は旅行プランを検証して保存します。
func (m *TravelPlans) Create(ctx context.Context, in *model.TravelPlanInput) (*model.TravelPlan, error) {
	plan, err := model.NewTravelPlan(in, m.now())
	if err != nil {
		return nil, err
	}
	created, err := m.store.InsertTravelPlan(ctx, plan)
	if err != nil {
		return nil, classify("insert travel plan", err)
	}
	return created, nil
}

// Get は旅行プランを紐づく宿泊施設・観光地の要約とともに取得します。
func (m *TravelPlans) Get(ctx context.Context, id int64) (*TravelPlanDetail, error) {
	plan, err := m.store.FindTravelPlanByID(ctx, id)
	if err != nil {
		return nil, classify("find travel plan", err)
	}
	return m.detail(ctx, plan)
}

// List は条件に一致する旅行プランを開始日の降順で取得します。
func (m *TravelPlans) List(ctx context.Context, filter model.TravelPlanFilter) ([]*TravelPlanDetail, error) {
	plans, err := m.store.FindAllTravelPlans(ctx, filter)
	if err != nil {
		return nil, classify("list travel plans", err)
	}
	details := make([]*TravelPlanDetail, 0, len(plans))
	for _, plan := range plans {
		d, err := m.detail(ctx, plan)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (m *TravelPlans) detail(ctx context.Context, plan *model.TravelPlan) (*TravelPlanDetail, error) {
	accommodations, err := m.store.FindAccommodationsByTravelPlan(ctx, plan.ID)
	if err != nil {
		return nil, classify("find accommodations by travel plan", err)
	}
	attractions, err := m.store.FindAttractionsByTravelPlan(ctx, plan.ID)
	if err != nil {
		return nil, classify("find attractions by travel plan", err)
	}

	d := &TravelPlanDetail{
		TravelPlan:     plan,
		Accommodations: make([]model.AccommodationSummary, 0, len(accommodations)),
		Attractions:    make([]model.AttractionSummary, 0, len(attractions)),
	}
	for _, a := range accommodations {
		d.Accommodations = append(d.Accommodations, a.Summary())
	}
	for _, a := range attractions {
		d.Attractions = append(d.Attractions, a.Summary())
	}
	return d, nil
}

// Update は部分更新を適用します。マージ後のプラン全体を再検証してから保存します。
func (m *TravelPlans) Update(ctx context.Context, id int64, patch *model.TravelPlanInput) (*model.TravelPlan, error) {
	current, err := m.store.FindTravelPlanByID(ctx, id)
	if err != nil {
		return nil, classify("find travel plan", err)
	}
	next, err := current.Merge(patch, m.now())
	if err != nil {
		return nil, err
	}
	return m.save(ctx, next)
}

// Delete は旅行プランを削除します。紐づく宿泊施設・観光地の参照はそのまま残ります。
func (m *TravelPlans) Delete(ctx context.Context, id int64) error {
	affected, err := m.store.DeleteTravelPlanByID(ctx, id)
	if err != nil {
		return classify("delete travel plan", err)
	}
	if affected == 0 {
		return model.ErrTravelPlanNotFound
	}
	return nil
}

// AddItineraryActivity は指定日の旅程に予定を追加します。
func (m *TravelPlans) AddItineraryActivity(ctx context.Context, id int64, req *ActivityRequest) (*model.TravelPlan, *model.Activity, error) {
	date, errs := parseActivityDate(req.Date)
	errs = append(errs, model.ValidateActivity(&req.ActivityInput)...)
	if len(errs) > 0 {
		return nil, nil, model.NewValidationError(errs...)
	}

	plan, err := m.store.FindTravelPlanByID(ctx, id)
	if err != nil {
		return nil, nil, classify("find travel plan", err)
	}
	activity, err := plan.AddActivity(date, &req.ActivityInput, m.now())
	if err != nil {
		return nil, nil, err
	}
	saved, err := m.save(ctx, plan)
	if err != nil {
		return nil, nil, err
	}
	return saved, activity, nil
}

// UpdateItineraryActivity は旅程の予定を部分更新します。
func (m *TravelPlans) UpdateItineraryActivity(ctx context.Context, id int64, activityID uuid.UUID, patch *model.ActivityInput) (*model.TravelPlan, *model.Activity, error) {
	plan, err := m.store.FindTravelPlanByID(ctx, id)
	if err != nil {
		return nil, nil, classify("find travel plan", err)
	}
	activity, err := plan.UpdateActivity(activityID, patch, m.now())
	if err != nil {
		return nil, nil, err
	}
	saved, err := m.save(ctx, plan)
	if err != nil {
		return nil, nil, err
	}
	return saved, activity, nil
}

// DeleteItineraryActivity は旅程から予定を削除します。
func (m *TravelPlans) DeleteItineraryActivity(ctx context.Context, id int64, activityID uuid.UUID) (*model.TravelPlan, error) {
	plan, err := m.store.FindTravelPlanByID(ctx, id)
	if err != nil {
		return nil, classify("find travel plan", err)
	}
	if err := plan.RemoveActivity(activityID, m.now()); err != nil {
		return nil, err
	}
	return m.save(ctx, plan)
}

func (m *TravelPlans) save(ctx context.Context, plan *model.TravelPlan) (*model.TravelPlan, error) {
	affected, err := m.store.UpdateTravelPlanByID(ctx, plan)
	if err != nil {
		return nil, classify("update travel plan", err)
	}
	// 読み込み後に削除された場合
	if affected == 0 {
		return nil, model.ErrTravelPlanNotFound
	}
	return plan, nil
}

func parseActivityDate(s *string) (time.Time, []string) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return time.Time{}, []string{"日付は必須です"}
	}
	date, err := model.ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, []string{"日付の形式が正しくありません (YYYY-MM-DD)"}
	}
	return date, nil
}
