package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TravelPlan は旅行プランエンティティを表すモデルです。
type TravelPlan struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   time.Time      `json:"startDate"`
	EndDate     time.Time      `json:"endDate"`
	Destination string         `json:"destination"`
	Budget      Budget         `json:"budget"`
	Itinerary   []ItineraryDay `json:"itinerary"`
	Notes       string         `json:"notes,omitempty"`
	IsPublic    bool           `json:"isPublic"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

// ItineraryDay は旅程の1日分です。
type ItineraryDay struct {
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}

// Activity は旅程に含まれる予定です。
type Activity struct {
	ID          uuid.UUID `json:"id"`
	Time        string    `json:"time"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Cost        *float64  `json:"cost,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// TravelPlanSummary は宿泊施設・観光地に付与される旅行プランの要約です。
type TravelPlanSummary struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// Summary は旅行プランの要約を返します。
func (p *TravelPlan) Summary() *TravelPlanSummary {
	return &TravelPlanSummary{
		ID:          p.ID,
		Title:       p.Title,
		Destination: p.Destination,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

// TravelPlanInput は旅行プランの作成・更新リクエストの内容です。
// nil のフィールドは未指定として扱います。
type TravelPlanInput struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	StartDate   *string             `json:"startDate"`
	EndDate     *string             `json:"endDate"`
	Destination *string             `json:"destination"`
	Budget      *BudgetInput        `json:"budget"`
	Itinerary   []ItineraryDayInput `json:"itinerary"`
	Notes       *string             `json:"notes"`
	IsPublic    *bool               `json:"isPublic"`
}

// ItineraryDayInput は旅程1日分の入力です。
type ItineraryDayInput struct {
	Date       string          `json:"date"`
	Activities []ActivityInput `json:"activities"`
}

// ActivityInput は予定の入力です。
type ActivityInput struct {
	Time        *string  `json:"time"`
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	Cost        *float64 `json:"cost"`
	Notes       *string  `json:"notes"`
}

// NewTravelPlan は検証済みの入力から新しいTravelPlanを作成します。
func NewTravelPlan(in *TravelPlanInput, now time.Time) (*TravelPlan, error) {
	if errs := ValidateTravelPlan(in); len(errs) > 0 {
		return nil, NewValidationError(errs...)
	}
	p := in.build()
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Merge は部分更新の入力を既存のプランに適用し、結果全体を再検証します。
// ID と作成日時は変更されません。
func (p *TravelPlan) Merge(patch *TravelPlanInput, now time.Time) (*TravelPlan, error) {
	merged := travelPlanInputOf(p)
	merged.overlay(patch)
	if errs := ValidateTravelPlan(merged); len(errs) > 0 {
		return nil, NewValidationError(errs...)
	}
	next := merged.build()
	next.ID = p.ID
	next.CreatedAt = p.CreatedAt
	next.UpdatedAt = now
	// 既存の予定IDは再入力で失われないよう維持する
	if patch.Itinerary == nil {
		next.Itinerary = p.Itinerary
	}
	return next, nil
}

func (in *TravelPlanInput) overlay(patch *TravelPlanInput) {
	if patch.Title != nil {
		in.Title = patch.Title
	}
	if patch.Description != nil {
		in.Description = patch.Description
	}
	if patch.StartDate != nil {
		in.StartDate = patch.StartDate
	}
	if patch.EndDate != nil {
		in.EndDate = patch.EndDate
	}
	if patch.Destination != nil {
		in.Destination = patch.Destination
	}
	if patch.Budget != nil {
		in.Budget = patch.Budget
	}
	if patch.Itinerary != nil {
		in.Itinerary = patch.Itinerary
	}
	if patch.Notes != nil {
		in.Notes = patch.Notes
	}
	if patch.IsPublic != nil {
		in.IsPublic = patch.IsPublic
	}
}

// build は検証済みの入力からエンティティを組み立てます。
func (in *TravelPlanInput) build() *TravelPlan {
	start, _ := ParseDate(trimPtr(in.StartDate))
	end, _ := ParseDate(trimPtr(in.EndDate))
	budget := in.Budget.build()

	itinerary := make([]ItineraryDay, 0, len(in.Itinerary))
	for _, d := range in.Itinerary {
		date, _ := ParseDate(strings.TrimSpace(d.Date))
		day := ItineraryDay{Date: CalendarDate(date), Activities: make([]Activity, 0, len(d.Activities))}
		for i := range d.Activities {
			day.Activities = append(day.Activities, d.Activities[i].build(uuid.New()))
		}
		itinerary = append(itinerary, day)
	}

	return &TravelPlan{
		Title:       trimPtr(in.Title),
		Description: trimPtr(in.Description),
		StartDate:   start,
		EndDate:     end,
		Destination: trimPtr(in.Destination),
		Budget:      budget,
		Itinerary:   itinerary,
		Notes:       trimPtr(in.Notes),
		IsPublic:    in.IsPublic != nil && *in.IsPublic,
	}
}

func travelPlanInputOf(p *TravelPlan) *TravelPlanInput {
	start := p.StartDate.Format(time.RFC3339Nano)
	end := p.EndDate.Format(time.RFC3339Nano)
	in := &TravelPlanInput{
		Title:       &p.Title,
		Description: &p.Description,
		StartDate:   &start,
		EndDate:     &end,
		Destination: &p.Destination,
		Budget:      budgetInputOf(p.Budget),
		Notes:       &p.Notes,
		IsPublic:    &p.IsPublic,
	}
	for _, d := range p.Itinerary {
		day := ItineraryDayInput{Date: d.Date.Format("2006-01-02")}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, activityInputOf(a))
		}
		in.Itinerary = append(in.Itinerary, day)
	}
	return in
}

func (in *ActivityInput) build(id uuid.UUID) Activity {
	return Activity{
		ID:          id,
		Time:        trimPtr(in.Time),
		Title:       trimPtr(in.Title),
		Description: trimPtr(in.Description),
		Location:    trimPtr(in.Location),
		Cost:        in.Cost,
		Notes:       trimPtr(in.Notes),
	}
}

func activityInputOf(a Activity) ActivityInput {
	return ActivityInput{
		Time:        &a.Time,
		Title:       &a.Title,
		Description: &a.Description,
		Location:    &a.Location,
		Cost:        a.Cost,
		Notes:       &a.Notes,
	}
}

// AddActivity は指定日の旅程に予定を追加します。
// 同じ暦日の旅程があればその末尾に追加し、なければ新しい日を末尾に作成します。
func (p *TravelPlan) AddActivity(date time.Time, in *ActivityInput, now time.Time) (*Activity, error) {
	if errs := ValidateActivity(in); len(errs) > 0 {
		return nil, NewValidationError(errs...)
	}
	activity := in.build(uuid.New())

	for i := range p.Itinerary {
		if SameDay(p.Itinerary[i].Date, date) {
			p.Itinerary[i].Activities = append(p.Itinerary[i].Activities, activity)
			p.UpdatedAt = now
			return &activity, nil
		}
	}

	p.Itinerary = append(p.Itinerary, ItineraryDay{
		Date:       CalendarDate(date),
		Activities: []Activity{activity},
	})
	p.UpdatedAt = now
	return &activity, nil
}

// UpdateActivity は指定IDの予定に部分更新を適用します。
func (p *TravelPlan) UpdateActivity(id uuid.UUID, patch *ActivityInput, now time.Time) (*Activity, error) {
	for i := range p.Itinerary {
		for j := range p.Itinerary[i].Activities {
			current := &p.Itinerary[i].Activities[j]
			if current.ID != id {
				continue
			}
			merged := activityInputOf(*current)
			if patch.Time != nil {
				merged.Time = patch.Time
			}
			if patch.Title != nil {
				merged.Title = patch.Title
			}
			if patch.Description != nil {
				merged.Description = patch.Description
			}
			if patch.Location != nil {
				merged.Location = patch.Location
			}
			if patch.Cost != nil {
				merged.Cost = patch.Cost
			}
			if patch.Notes != nil {
				merged.Notes = patch.Notes
			}
			if errs := ValidateActivity(&merged); len(errs) > 0 {
				return nil, NewValidationError(errs...)
			}
			*current = merged.build(id)
			p.UpdatedAt = now
			return current, nil
		}
	}
	return nil, ErrActivityNotFound
}

// RemoveActivity は指定IDの予定を削除します。予定がなくなった日は旅程から取り除きます。
func (p *TravelPlan) RemoveActivity(id uuid.UUID, now time.Time) error {
	for i := range p.Itinerary {
		activities := p.Itinerary[i].Activities
		for j := range activities {
			if activities[j].ID != id {
				continue
			}
			p.Itinerary[i].Activities = append(activities[:j:j], activities[j+1:]...)
			if len(p.Itinerary[i].Activities) == 0 {
				p.Itinerary = append(p.Itinerary[:i:i], p.Itinerary[i+1:]...)
			}
			p.UpdatedAt = now
			return nil
		}
	}
	return ErrActivityNotFound
}

// TravelPlanFilter は旅行プラン一覧の絞り込み条件です。
type TravelPlanFilter struct {
	Destination string
	IsPublic    *bool
}
