package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/model"
)

// InsertTravelPlan は新しい旅行プランをデータベースに保存します。
func (s *SQLiteStore) InsertTravelPlan(ctx context.Context, plan *model.TravelPlan) (*model.TravelPlan, error) {
	var cols jsonColumns
	budget := cols.encode("budget", plan.Budget)
	itinerary := cols.encode("itinerary", plan.Itinerary)
	if cols.err != nil {
		return nil, cols.err
	}

	id, err := s.queries.CreateTravelPlan(ctx, db.CreateTravelPlanParams{
		Title:       plan.Title,
		Description: plan.Description,
		StartDate:   formatTime(plan.StartDate),
		EndDate:     formatTime(plan.EndDate),
		Destination: plan.Destination,
		Budget:      budget,
		Itinerary:   itinerary,
		Notes:       plan.Notes,
		IsPublic:    plan.IsPublic,
		CreatedAt:   formatTime(plan.CreatedAt),
		UpdatedAt:   formatTime(plan.UpdatedAt),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create travel plan: %w", err)
	}

	plan.ID = id
	return plan, nil
}

// FindTravelPlanByID は指定されたIDの旅行プランを取得します。
func (s *SQLiteStore) FindTravelPlanByID(ctx context.Context, id int64) (*model.TravelPlan, error) {
	row, err := s.queries.GetTravelPlan(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrTravelPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get travel plan: %w", err)
	}
	return travelPlanFromRow(row)
}

// FindAllTravelPlans は条件に一致する旅行プランを取得します。
func (s *SQLiteStore) FindAllTravelPlans(ctx context.Context, filter model.TravelPlanFilter) ([]*model.TravelPlan, error) {
	rows, err := s.queries.ListTravelPlans(ctx, db.ListTravelPlansParams{
		Destination: nullString(filter.Destination),
		IsPublic:    nullBool(filter.IsPublic),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list travel plans: %w", err)
	}

	plans := make([]*model.TravelPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := travelPlanFromRow(row)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

// UpdateTravelPlanByID は旅行プランを更新します。作成日時は変更しません。
func (s *SQLiteStore) UpdateTravelPlanByID(ctx context.Context, plan *model.TravelPlan) (int64, error) {
	var cols jsonColumns
	budget := cols.encode("budget", plan.Budget)
	itinerary := cols.encode("itinerary", plan.Itinerary)
	if cols.err != nil {
		return 0, cols.err
	}

	affected, err := s.queries.UpdateTravelPlan(ctx, db.UpdateTravelPlanParams{
		Title:       plan.Title,
		Description: plan.Description,
		StartDate:   formatTime(plan.StartDate),
		EndDate:     formatTime(plan.EndDate),
		Destination: plan.Destination,
		Budget:      budget,
		Itinerary:   itinerary,
		Notes:       plan.Notes,
		IsPublic:    plan.IsPublic,
		UpdatedAt:   formatTime(plan.UpdatedAt),
		ID:          plan.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to update travel plan: %w", err)
	}
	return affected, nil
}

// DeleteTravelPlanByID は旅行プランを削除します。紐づく宿泊施設・観光地は削除しません。
func (s *SQLiteStore) DeleteTravelPlanByID(ctx context.Context, id int64) (int64, error) {
	affected, err := s.queries.DeleteTravelPlan(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete travel plan: %w", err)
	}
	return affected, nil
}

func travelPlanFromRow(row db.TravelPlan) (*model.TravelPlan, error) {
	plan := &model.TravelPlan{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Destination: row.Destination,
		Notes:       row.Notes,
		IsPublic:    row.IsPublic,
	}

	var err error
	if plan.StartDate, err = parseTime("start_date", row.StartDate); err != nil {
		return nil, err
	}
	if plan.EndDate, err = parseTime("end_date", row.EndDate); err != nil {
		return nil, err
	}
	if plan.CreatedAt, err = parseTime("created_at", row.CreatedAt); err != nil {
		return nil, err
	}
	if plan.UpdatedAt, err = parseTime("updated_at", row.UpdatedAt); err != nil {
		return nil, err
	}

	var cols jsonColumns
	cols.decode("budget", row.Budget, &plan.Budget)
	cols.decode("itinerary", row.Itinerary, &plan.Itinerary)
	if cols.err != nil {
		return nil, cols.err
	}
	if plan.Itinerary == nil {
		plan.Itinerary = []model.ItineraryDay{}
	}
	return plan, nil
}
