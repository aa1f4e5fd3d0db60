package core

import (
	"context"
	"strings"
	"time"

	"github.com/stsysd/tabi/model"
	"github.com/stsysd/tabi/store"
)

// Attractions は観光地のライフサイクルを管理します。
type Attractions struct {
	store store.Store
	now   func() time.Time
}

// AttractionDetail は観光地に参照先の旅行プランの要約を付与したものです。
// 参照先が削除されている場合、TravelPlan は nil です。
type AttractionDetail struct {
	*model.Attraction
	TravelPlan *model.TravelPlanSummary `json:"travelPlan"`
}

// Create は観光地を検証し、旅行プランIDを解決してから保存します。
// 戻り値には解決した旅行プランの要約が付与されます。
func (m *Attractions) Create(ctx context.Context, in *model.AttractionInput) (*AttractionDetail, error) {
	a, err := model.NewAttraction(in, m.now())
	if err != nil {
		return nil, err
	}
	plan, err := resolveTravelPlan(ctx, m.store, a.TravelPlanID)
	if err != nil {
		return nil, err
	}
	created, err := m.store.InsertAttraction(ctx, a)
	if err != nil {
		return nil, classify("insert attraction", err)
	}
	return &AttractionDetail{Attraction: created, TravelPlan: planSummary(plan)}, nil
}

// Get は観光地を参照先の旅行プランの要約とともに取得します。
func (m *Attractions) Get(ctx context.Context, id int64) (*AttractionDetail, error) {
	a, err := m.store.FindAttractionByID(ctx, id)
	if err != nil {
		return nil, classify("find attraction", err)
	}
	summary, err := summaryOf(ctx, m.store, a.TravelPlanID)
	if err != nil {
		return nil, err
	}
	return &AttractionDetail{Attraction: a, TravelPlan: summary}, nil
}

// List は条件に一致する観光地を評価の高い順に取得します。
func (m *Attractions) List(ctx context.Context, filter model.AttractionFilter) ([]*model.Attraction, error) {
	if filter.MinRating != nil && (*filter.MinRating < 0 || *filter.MinRating > 5) {
		return nil, model.NewValidationError("評価は0~5の範囲で入力してください")
	}
	list, err := m.store.FindAllAttractions(ctx, filter)
	if err != nil {
		return nil, classify("list attractions", err)
	}
	return list, nil
}

// Recommended はおすすめの観光地を取得します。
func (m *Attractions) Recommended(ctx context.Context) ([]*model.Attraction, error) {
	recommended := true
	return m.List(ctx, model.AttractionFilter{IsRecommended: &recommended})
}

// ByCategory は指定したカテゴリの観光地を取得します。
func (m *Attractions) ByCategory(ctx context.Context, category string) ([]*model.Attraction, error) {
	category = strings.TrimSpace(category)
	if !model.AttractionCategory(category).IsValid() {
		return nil, model.NewValidationError(model.AttractionCategoryMessage())
	}
	return m.List(ctx, model.AttractionFilter{Category: category})
}

// Update は部分更新を適用します。旅行プランIDが指定された場合は再解決します。
func (m *Attractions) Update(ctx context.Context, id int64, patch *model.AttractionInput) (*AttractionDetail, error) {
	current, err := m.store.FindAttractionByID(ctx, id)
	if err != nil {
		return nil, classify("find attraction", err)
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

	affected, err := m.store.UpdateAttractionByID(ctx, next)
	if err != nil {
		return nil, classify("update attraction", err)
	}
	if affected == 0 {
		return nil, model.ErrAttractionNotFound
	}
	return &AttractionDetail{Attraction: next, TravelPlan: summary}, nil
}

// Delete は観光地を削除します。
func (m *Attractions) Delete(ctx context.Context, id int64) error {
	affected, err := m.store.DeleteAttractionByID(ctx, id)
	if err != nil {
		return classify("delete attraction", err)
	}
	if affected == 0 {
		return model.ErrAttractionNotFound
	}
	return nil
}

// AddReview はレビューを追加し、評価を再計算して保存します。
func (m *Attractions) AddReview(ctx context.Context, id int64, in *model.ReviewInput) (*model.Attraction, error) {
	now := m.now()
	a, err := m.store.AppendAttractionReview(ctx, id, func(a *model.Attraction) error {
		return a.AddReview(in, now)
	})
	if err != nil {
		return nil, classify("append attraction review", err)
	}
	return a, nil
}
