package model

import "time"

// AccommodationType は宿泊施設の種別です。
type AccommodationType string

// AccommodationTypes は許可されている宿泊施設タイプの一覧です。
var AccommodationTypes = []AccommodationType{
	"ホテル", "旅館", "民宿", "ゲストハウス", "ペンション", "リゾート", "その他",
}

// IsValid は宿泊施設タイプが許可された値かどうかを返します。
func (t AccommodationType) IsValid() bool {
	for _, v := range AccommodationTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Contact は宿泊施設の連絡先です。
type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Website string `json:"website,omitempty"`
}

// RoomPrice は部屋の料金です。
type RoomPrice struct {
	PerNight float64  `json:"perNight"`
	Currency Currency `json:"currency"`
}

// Room は部屋タイプごとの情報です。
type Room struct {
	Type     string    `json:"type"`
	Capacity int       `json:"capacity"`
	Price    RoomPrice `json:"price"`
	Features []string  `json:"features"`
}

// Policies は宿泊施設のポリシーです。
type Policies struct {
	Cancellation string `json:"cancellation"`
	Payment      string `json:"payment"`
	Other        string `json:"other,omitempty"`
}

// Accommodation は宿泊施設エンティティを表すモデルです。
type Accommodation struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Type          AccommodationType `json:"type"`
	Location      Location          `json:"location"`
	Contact       Contact           `json:"contact"`
	Amenities     []string          `json:"amenities"`
	Rooms         []Room            `json:"rooms"`
	CheckIn       string            `json:"checkIn"`
	CheckOut      string            `json:"checkOut"`
	Policies      Policies          `json:"policies"`
	Photos        []string          `json:"photos"`
	Rating        float64           `json:"rating"`
	Reviews       []Review          `json:"reviews"`
	IsRecommended bool              `json:"isRecommended"`
	Tags          []string          `json:"tags"`
	TravelPlanID  *int64            `json:"travelPlanId"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
}

// AccommodationSummary は旅行プランに付与される宿泊施設の要約です。
type AccommodationSummary struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Type     AccommodationType `json:"type"`
	Rating   float64           `json:"rating"`
	Location Location          `json:"location"`
}

// Summary は宿泊施設の要約を返します。
func (a *Accommodation) Summary() AccommodationSummary {
	return AccommodationSummary{
		ID:       a.ID,
		Name:     a.Name,
		Type:     a.Type,
		Rating:   a.Rating,
		Location: a.Location,
	}
}

// AccommodationInput は宿泊施設の作成・更新リクエストの内容です。
// ポインタと nil スライスは未指定として扱います。
type AccommodationInput struct {
	Name          *string       `json:"name"`
	Description   *string       `json:"description"`
	Type          *string       `json:"type"`
	Location      *Location     `json:"location"`
	Contact       *Contact      `json:"contact"`
	Amenities     []string      `json:"amenities"`
	Rooms         []Room        `json:"rooms"`
	CheckIn       *string       `json:"checkIn"`
	CheckOut      *string       `json:"checkOut"`
	Policies      *Policies     `json:"policies"`
	Photos        []string      `json:"photos"`
	Rating        *float64      `json:"rating"`
	Reviews       []ReviewInput `json:"reviews"`
	IsRecommended *bool         `json:"isRecommended"`
	Tags          []string      `json:"tags"`
	TravelPlanID  *RefID        `json:"travelPlanId"`
}

// NewAccommodation は検証済みの入力から新しいAccommodationを作成します。
// 評価は初期レビューから算出し、入力の rating は保存しません。
func NewAccommodation(in *AccommodationInput, now time.Time) (*Accommodation, error) {
	errs := ValidateAccommodation(in)
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

// Merge は部分更新の入力を既存の宿泊施設に適用し、結果全体を再検証します。
// rating と reviews は更新の対象外です。
func (a *Accommodation) Merge(patch *AccommodationInput, now time.Time) (*Accommodation, error) {
	merged := accommodationInputOf(a)
	merged.overlay(patch)
	if errs := ValidateAccommodation(merged); len(errs) > 0 {
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
func (a *Accommodation) AddReview(in *ReviewInput, now time.Time) error {
	reviews, rating, err := appendReview(a.Reviews, in, now)
	if err != nil {
		return err
	}
	a.Reviews = reviews
	a.Rating = rating
	a.UpdatedAt = now
	return nil
}

func (in *AccommodationInput) overlay(patch *AccommodationInput) {
	if patch.Name != nil {
		in.Name = patch.Name
	}
	if patch.Description != nil {
		in.Description = patch.Description
	}
	if patch.Type != nil {
		in.Type = patch.Type
	}
	if patch.Location != nil {
		in.Location = patch.Location
	}
	if patch.Contact != nil {
		in.Contact = patch.Contact
	}
	if patch.Amenities != nil {
		in.Amenities = patch.Amenities
	}
	if patch.Rooms != nil {
		in.Rooms = patch.Rooms
	}
	if patch.CheckIn != nil {
		in.CheckIn = patch.CheckIn
	}
	if patch.CheckOut != nil {
		in.CheckOut = patch.CheckOut
	}
	if patch.Policies != nil {
		in.Policies = patch.Policies
	}
	if patch.Photos != nil {
		in.Photos = patch.Photos
	}
	// rating は検証のみ行い、値は引き継がない
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

func (in *AccommodationInput) build() *Accommodation {
	rooms := make([]Room, 0, len(in.Rooms))
	for _, r := range in.Rooms {
		r.Price.Currency = r.Price.Currency.orDefault()
		r.Features = trimAll(r.Features)
		rooms = append(rooms, r)
	}
	contact := *in.Contact
	policies := *in.Policies
	a := &Accommodation{
		Name:        trimPtr(in.Name),
		Description: trimPtr(in.Description),
		Type:        AccommodationType(trimPtr(in.Type)),
		Location:    in.Location.trimmed(),
		Contact: Contact{
			Phone:   trimString(contact.Phone),
			Email:   trimString(contact.Email),
			Website: trimString(contact.Website),
		},
		Amenities: trimAll(in.Amenities),
		Rooms:     rooms,
		CheckIn:   trimPtr(in.CheckIn),
		CheckOut:  trimPtr(in.CheckOut),
		Policies: Policies{
			Cancellation: trimString(policies.Cancellation),
			Payment:      trimString(policies.Payment),
			Other:        trimString(policies.Other),
		},
		Photos:        trimAll(in.Photos),
		Reviews:       []Review{},
		IsRecommended: in.IsRecommended != nil && *in.IsRecommended,
		Tags:          trimAll(in.Tags),
	}
	if id, ok := in.TravelPlanID.Int64(); ok {
		a.TravelPlanID = &id
	}
	return a
}

func accommodationInputOf(a *Accommodation) *AccommodationInput {
	typ := string(a.Type)
	location := a.Location
	contact := a.Contact
	policies := a.Policies
	in := &AccommodationInput{
		Name:          &a.Name,
		Description:   &a.Description,
		Type:          &typ,
		Location:      &location,
		Contact:       &contact,
		Amenities:     a.Amenities,
		Rooms:         a.Rooms,
		CheckIn:       &a.CheckIn,
		CheckOut:      &a.CheckOut,
		Policies:      &policies,
		Photos:        a.Photos,
		IsRecommended: &a.IsRecommended,
		Tags:          a.Tags,
	}
	if a.TravelPlanID != nil {
		in.TravelPlanID = NewRefID(*a.TravelPlanID)
	}
	return in
}

// AccommodationFilter は宿泊施設一覧の絞り込み条件です。すべての条件はANDで結合されます。
type AccommodationFilter struct {
	Type          string
	Prefecture    string
	City          string
	MinRating     *float64
	IsRecommended *bool
	Tag           string
}
