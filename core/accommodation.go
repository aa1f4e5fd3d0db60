package core

import (
	"context"
	"strings"
	"time"

	"github.com/stsysd/tabi/model"
	"github.com/stsysd/tabi/store"
)

// Accommodations は宿泊施設のライフサイクルを管理します。
type Accommodations struct {
	store store.Store
	now   func() time.Time
}

// AccommodationDetail は宿泊施設に参照先の旅行プランの要約を付与したものです。
// 参照先が削除されている場合、TravelPlan は nil です。
type AccommodationDetail struct {
	*model.Accommodation
	TravelPlan *model.TravelPlanSummary `json:"travelPlan"`
}

// Create は宿泊施設を検証し、旅行プランIDを解決してから保存します。
// 戻り値には解決した旅行プランの要約が付与されます。
func (m *Accommodations) Create(ctx context.Context, in *model.AccommodationInput) (*AccommodationDetail, error) {
	a, err := model.NewAccommodation(in, m.now())
	if err != nil {
		return nil, err
	}
	plan, err := resolveTravelPlan(ctx, m.store, a.TravelPlanID)
	if err != nil {
		return nil, err
	}
	created, err := m.store.InsertAccommodation(ctx, a)
	if err != nil {
		return nil, classify("insert accommodation", err)
	}
	return &AccommodationDetail{Accommodation: created, TravelPlan: planSummary(plan)}, nil
}

// Get は宿泊施設を参照先の旅行プランの要約とともに取得します。
func (m *Accommodations) Get(ctx context.Context, id int64) (*AccommodationDetail, error) {
	a, err := m.store.FindAccommodationByID(ctx, id)
	if err != nil {
		return nil, classify("find accommodation", err)
	}
	summary, err := summaryOf(ctx, m.store, a.TravelPlanID)
	if err != nil {
		return nil, err
	}
	return &AccommodationDetail{Accommodation: a, TravelPlan: summary}, nil
}

// List は条件に一致する宿泊施設を評価の高い順に取得します。
func (m *Accommodations) List(ctx context.Context, filter model.AccommodationFilter) ([]*model.Accommodation, error) {
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > 5) {
		return nil, model.NewValidationError("評価は0~5の範囲で入力してください")
	}
	list, err := m.store.FindAllAccommodations(ctx, filter)
	if err != nil {
		return nil, classify("list accommodations", err)
	}
	return list, nil
}

// Recommended はおすすめの宿泊施設を取得します。
func (m *Accommodations) Recommended(ctx context.Context) ([]*model.Accommodation, error) {
	recommended := true
	return m.List(ctx, model.AccommodationFilter{IsRecommended: &recommended})
}

// ByType は指定したタイプの宿泊施設を取得します。
func (m *Accommodations) ByType(ctx context.Context, typ string) ([]*model.Accommodation, error) {
	typ = strings.TrimSpace(typ)
	if !model.AccommodationType(typ).IsValid() {
		return nil, model.NewValidationError(model.AccommodationTypeMessage())
	}
	return m.List(ctx, model.AccommodationFilter{Type: typ})
}

// Update は部分更新を適用します。旅行プランIDが指定された場合は再解決します。
func (m *Accommodations) Update(ctx context.Context, id int64, patch *model.AccommodationInput) (*AccommodationDetail, error) {
	current, err := m.store.FindAccommodationByID(ctx, id)
	if err != nil {
		return nil, classify("find accommodation", err)
	}
	next, err := current.Merge(patch, m.now())
	if err != nil {
		return nil, err
	}
	var summary *model.TravelPlanSummary
	if patch.TravelPlanID != nil {
		plan, err := resolveTravelPlan(ctx, m.store, next.TravelPlanID)
		if err != nil {
			return nil, err
		}
		summary = planSummary(plan)
	} else if summary, err = summaryOf(ctx, m.store, next.TravelPlanID); err != nil {
		return nil, err
	}

	affected, err := m.store.UpdateAccommodationByID(ctx, next)
	if err != nil {
		return nil, classify("update accommodation", err)
	}
	if affected == 0 {
		return nil, model.ErrAccommodationNotFound
	}
	return &AccommodationDetail{Accommodation: next, TravelPlan: summary}, nil
}

// Delete は宿泊施設を削除します。
func (m *Accommodations) Delete(ctx context.Context, id int64) error {
	affected, err := m.store.DeleteAccommodationByID(ctx, id)
	if err != nil {
		return classify("delete accommodation", err)
	}
	if affected == 0 {
		return model.ErrAccommodationNotFound
	}
	return nil
}

// AddReview はレビューを追加し、評価を再計算して保存します。
func (m *Accommodations) AddReview(ctx context.Context, id int64, in *model.ReviewInput) (*model.Accommodation, error) {
	now := m.now()
	a, err := m.store.AppendAccommodationReview(ctx, id, func(a *model.Accommodation) error {
		return a.AddReview(in, now)
	})
	if err != nil {
		return nil, classify("append accommodation review", err)
	}
	return a, nil
}
