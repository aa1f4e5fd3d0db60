package model

import "time"

// AttractionCategory は観光地のカテゴリです。
type AttractionCategory string

// AttractionCategories は許可されている観光地カテゴリの一覧です。
var AttractionCategories = []AttractionCategory{
	"観光地", "神社・寺院", "博物館・美術館", "自然", "温泉", "グルメ", "ショッピング", "体験", "その他",
}

// IsValid はカテゴリが許可された値かどうかを返します。
func (c AttractionCategory) IsValid() bool {
	for _, v := range AttractionCategories {
		if c == v {
			return true
		}
	}
	return false
}

// Weekdays は休館日として指定できる曜日の一覧です。
var Weekdays = []string{"月", "火", "水", "木", "金", "土", "日"}

// OpeningHours は営業時間です。
type OpeningHours struct {
	Open       string   `json:"open"`
	Close      string   `json:"close"`
	ClosedDays []string `json:"closedDays,omitempty"`
}

// Admission は入場料金です。
type Admission struct {
	Adult    *float64 `json:"adult"`
	Child    *float64 `json:"child,omitempty"`
	Senior   *float64 `json:"senior,omitempty"`
	Currency Currency `json:"currency"`
}

// Attraction は観光地エンティティを表すモデルです。
type Attraction struct {
	ID            int64              `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	Category      AttractionCategory `json:"category"`
	Location      Location           `json:"location"`
	OpeningHours  OpeningHours       `json:"openingHours"`
	Admission     Admission          `json:"admission"`
	Features      []string           `json:"features"`
	Photos        []string           `json:"photos"`
	Website       string             `json:"website,omitempty"`
	Phone         string             `json:"phone,omitempty"`
	Rating        float64            `json:"rating"`
	Reviews       []Review           `json:"reviews"`
	IsRecommended bool               `json:"isRecommended"`
	Tags          []string           `json:"tags"`
	TravelPlanID  *int64             `json:"travelPlanId"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// AttractionSummary は旅行プランに付与される観光地の要約です。
type AttractionSummary struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Category AttractionCategory `json:"category"`
	Rating   float64            `json:"rating"`
	Location Location           `json:"location"`
}

// Summary は観光地の要約を返します。
func (a *Attraction) Summary() AttractionSummary {
	return AttractionSummary{
		ID:       a.ID,
		Name:     a.Name,
		Category: a.Category,
		Rating:   a.Rating,
		Location: a.Location,
	}
}

// AttractionInput は観光地の作成・更新リクエストの内容です。
type AttractionInput struct {
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Category      *string       `json:"category"`
	Location      *Location     `json:"location"`
	OpeningHours  *OpeningHours `json:"openingHours"`
	Admission     *Admission    `json:"admission"`
	Features      []string      `json:"features"`
	Photos        []string      `json:"photos"`
	Website       *string       `json:"website"`
	Phone         *string       `json:"phone"`
	Rating        *float64      `json:"rating"`
	Reviews       []ReviewInput `json:"reviews"`
	IsRecommended *bool         `json:"isRecommended"`
	Tags          []string      `json:"tags"`
	TravelPlanID  *RefID        `json:"travelPlanId"`
}

// NewAttraction は検証済みの入力から新しいAttractionを作成します。
func NewAttraction(in *AttractionInput, now time.Time) (*Attraction, error) {
	errs := ValidateAttraction(in)
	for i := range in.Reviews {
		errs = append(errs, ValidateReview(&in.Reviews[i])...)
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs...)
	}
	a := in.build()
	a.Reviews = make([]Review, 0, len(in.Reviews))
	for i := range in.Reviews {
		a.Reviews = append(a.Reviews, in.Reviews[i].build(now))
	}
	a.Rating = AverageRating(a.Reviews)
	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

// Merge は部分更新の入力を既存の観光地に適用し、結果全体を再検証します。
func (a *Attraction) Merge(patch *AttractionInput, now time.Time) (*Attraction, error) {
	merged := attractionInputOf(a)
	merged.overlay(patch)
	if errs := ValidateAttraction(merged); len(errs) > 0 {
		return nil, NewValidationError(errs...)
	}
	next := merged.build()
	next.ID = a.ID
	next.Rating = a.Rating
	next.Reviews = a.Reviews
	next.CreatedAt = a.CreatedAt
	next.UpdatedAt = now
	return next, nil
}

// AddReview はレビューを追加し、評価を再計算します。
func (a *Attraction) AddReview(in *ReviewInput, now time.Time) error {
	reviews, rating, err := appendReview(a.Reviews, in, now)
	if err != nil {
		return err
	}
	a.Reviews = reviews
	a.Rating = rating
	a.UpdatedAt = now
	return nil
}

func (in *AttractionInput) overlay(patch *AttractionInput) {
	if patch.Name != nil {
		in.Name = patch.Name
	}
	if patch.Description != nil {
		in.Description = patch.Description
	}
	if patch.Category != nil {
		in.Category = patch.Category
	}
	if patch.Location != nil {
		in.Location = patch.Location
	}
	if patch.OpeningHours != nil {
		in.OpeningHours = patch.OpeningHours
	}
	if patch.Admission != nil {
		in.Admission = patch.Admission
	}
	if patch.Features != nil {
		in.Features = patch.Features
	}
	if patch.Photos != nil {
		in.Photos = patch.Photos
	}
	if patch.Website != nil {
		in.Website = patch.Website
	}
	if patch.Phone != nil {
		in.Phone = patch.Phone
	}
	in.Rating = patch.Rating
	if patch.IsRecommended != nil {
		in.IsRecommended = patch.IsRecommended
	}
	if patch.Tags != nil {
		in.Tags = patch.Tags
	}
	if patch.TravelPlanID != nil {
		in.TravelPlanID = patch.TravelPlanID
	}
}

func (in *AttractionInput) build() *Attraction {
	hours := *in.OpeningHours
	admission := *in.Admission
	admission.Currency = admission.Currency.orDefault()
	a := &Attraction{
		Name:        trimPtr(in.Name),
		Description: trimPtr(in.Description),
		Category:    AttractionCategory(trimPtr(in.Category)),
		Location:    in.Location.trimmed(),
		OpeningHours: OpeningHours{
			Open:       trimString(hours.Open),
			Close:      trimString(hours.Close),
			ClosedDays: trimAll(hours.ClosedDays),
		},
		Admission:     admission,
		Features:      trimAll(in.Features),
		Photos:        trimAll(in.Photos),
		Website:       trimPtr(in.Website),
		Phone:         trimPtr(in.Phone),
		Reviews:       []Review{},
		IsRecommended: in.IsRecommended != nil && *in.IsRecommended,
		Tags:          trimAll(in.Tags),
	}
	if id, ok := in.TravelPlanID.Int64(); ok {
		a.TravelPlanID = &id
	}
	return a
}

func attractionInputOf(a *Attraction) *AttractionInput {
	category := string(a.Category)
	location := a.Location
	hours := a.OpeningHours
	admission := a.Admission
	in := &AttractionInput{
		Name:          &a.Name,
		Description:   &a.Description,
		Category:      &category,
		Location:      &location,
		OpeningHours:  &hours,
		Admission:     &admission,
		Features:      a.Features,
		Photos:        a.Photos,
		Website:       &a.Website,
		Phone:         &a.Phone,
		IsRecommended: &a.IsRecommended,
		Tags:          a.Tags,
	}
	if a.TravelPlanID != nil {
		in.TravelPlanID = NewRefID(*a.TravelPlanID)
	}
	return in
}

// AttractionFilter は観光地一覧の絞り込み条件です。すべての条件はANDで結合されます。
type AttractionFilter struct {
	Category      string
	Prefecture    string
	City          string
	MinRating     *float64
	IsRecommended *bool
	Tag           string
}
