package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/model"
)

const duplicateAccommodationName = "同じ名前の宿泊施設が既に登録されています"

// accommodationColumns は宿泊施設のJSON列をエンコードした値です。
type accommodationColumns struct {
	contact   string
	amenities string
	rooms     string
	policies  string
	photos    string
	reviews   string
	tags      string
}

func encodeAccommodation(a *model.Accommodation) (accommodationColumns, error) {
	var cols jsonColumns
	c := accommodationColumns{
		contact:   cols.encode("contact", a.Contact),
		amenities: cols.encode("amenities", a.Amenities),
		rooms:     cols.encode("rooms", a.Rooms),
		policies:  cols.encode("policies", a.Policies),
		photos:    cols.encode("photos", a.Photos),
		reviews:   cols.encode("reviews", a.Reviews),
		tags:      cols.encode("tags", a.Tags),
	}
	return c, cols.err
}

// InsertAccommodation は新しい宿泊施設をデータベースに保存します。
func (s *SQLiteStore) InsertAccommodation(ctx context.Context, a *model.Accommodation) (*model.Accommodation, error) {
	c, err := encodeAccommodation(a)
	if err != nil {
		return nil, err
	}
	lat, lng := coordinatesColumns(a.Location.Coordinates)

	id, err := s.queries.CreateAccommodation(ctx, db.CreateAccommodationParams{
		Name:          a.Name,
		Description:   a.Description,
		Type:          string(a.Type),
		Address:       a.Location.Address,
		Prefecture:    a.Location.Prefecture,
		City:          a.Location.City,
		Latitude:      lat,
		Longitude:     lng,
		Contact:       c.contact,
		Amenities:     c.amenities,
		Rooms:         c.rooms,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Policies:      c.policies,
		Photos:        c.photos,
		Rating:        a.Rating,
		Reviews:       c.reviews,
		IsRecommended: a.IsRecommended,
		Tags:          c.tags,
		TravelPlanID:  nullID(a.TravelPlanID),
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return nil, model.NewValidationError(duplicateAccommodationName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create accommodation: %w", err)
	}

	a.ID = id
	return a, nil
}

// FindAccommodationByID は指定されたIDの宿泊施設を取得します。
func (s *SQLiteStore) FindAccommodationByID(ctx context.Context, id int64) (*model.Accommodation, error) {
	row, err := s.queries.GetAccommodation(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAccommodationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get accommodation: %w", err)
	}
	return accommodationFromRow(row)
}

// FindAllAccommodations は条件に一致する宿泊施設を評価の高い順に取得します。
func (s *SQLiteStore) FindAllAccommodations(ctx context.Context, filter model.AccommodationFilter) ([]*model.Accommodation, error) {
	rows, err := s.queries.ListAccommodations(ctx, db.ListAccommodationsParams{
		Type:          nullString(filter.Type),
		Prefecture:    nullString(filter.Prefecture),
		City:          nullString(filter.City),
		MinRating:     nullFloat(filter.MinRating),
		IsRecommended: nullBool(filter.IsRecommended),
		Tag:           nullString(filter.Tag),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations: %w", err)
	}
	return accommodationsFromRows(rows)
}

// FindAccommodationsByTravelPlan は旅行プランに紐づく宿泊施設を取得します。
func (s *SQLiteStore) FindAccommodationsByTravelPlan(ctx context.Context, planID int64) ([]*model.Accommodation, error) {
	rows, err := s.queries.ListAccommodationsByTravelPlan(ctx, sql.NullInt64{Int64: planID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list accommodations by travel plan: %w", err)
	}
	return accommodationsFromRows(rows)
}

// UpdateAccommodationByID は宿泊施設を更新します。評価とレビューは変更しません。
func (s *SQLiteStore) UpdateAccommodationByID(ctx context.Context, a *model.Accommodation) (int64, error) {
	c, err := encodeAccommodation(a)
	if err != nil {
		return 0, err
	}
	lat, lng := coordinatesColumns(a.Location.Coordinates)

	affected, err := s.queries.UpdateAccommodation(ctx, db.UpdateAccommodationParams{
		Name:          a.Name,
		Description:   a.Description,
		Type:          string(a.Type),
		Address:       a.Location.Address,
		Prefecture:    a.Location.Prefecture,
		City:          a.Location.City,
		Latitude:      lat,
		Longitude:     lng,
		Contact:       c.contact,
		Amenities:     c.amenities,
		Rooms:         c.rooms,
		CheckIn:       a.CheckIn,
		CheckOut:      a.CheckOut,
		Policies:      c.policies,
		Photos:        c.photos,
		IsRecommended: a.IsRecommended,
		Tags:          c.tags,
		TravelPlanID:  nullID(a.TravelPlanID),
		UpdatedAt:     formatTime(a.UpdatedAt),
		ID:            a.ID,
	})
	if isUniqueViolation(err) {
		return 0, model.NewValidationError(duplicateAccommodationName)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update accommodation: %w", err)
	}
	return affected, nil
}

// DeleteAccommodationByID は宿泊施設を削除します。
func (s *SQLiteStore) DeleteAccommodationByID(ctx context.Context, id int64) (int64, error) {
	affected, err := s.queries.DeleteAccommodation(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete accommodation: %w", err)
	}
	return affected, nil
}

// AppendAccommodationReview は宿泊施設にレビューを追加します。
func (s *SQLiteStore) AppendAccommodationReview(ctx context.Context, id int64, apply func(*model.Accommodation) error) (*model.Accommodation, error) {
	var result *model.Accommodation
	err := s.withTx(ctx, func(q *db.Queries) error {
		row, err := q.GetAccommodation(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrAccommodationNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get accommodation: %w", err)
		}

		a, err := accommodationFromRow(row)
		if err != nil {
			return err
		}
		if err := apply(a); err != nil {
			return err
		}

		reviews, err := encodeJSON("reviews", a.Reviews)
		if err != nil {
			return err
		}
		if _, err := q.UpdateAccommodationReviews(ctx, db.UpdateAccommodationReviewsParams{
			Reviews:   reviews,
			Rating:    a.Rating,
			UpdatedAt: formatTime(a.UpdatedAt),
			ID:        id,
		}); err != nil {
			return fmt.Errorf("failed to update accommodation reviews: %w", err)
		}

		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func accommodationsFromRows(rows []db.Accommodation) ([]*model.Accommodation, error) {
	list := make([]*model.Accommodation, 0, len(rows))
	for _, row := range rows {
		a, err := accommodationFromRow(row)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func accommodationFromRow(row db.Accommodation) (*model.Accommodation, error) {
	a := &model.Accommodation{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Type:        model.AccommodationType(row.Type),
		Location: model.Location{
			Address:     row.Address,
			Prefecture:  row.Prefecture,
			City:        row.City,
			Coordinates: coordinatesOf(row.Latitude, row.Longitude),
		},
		CheckIn:       row.CheckIn,
		CheckOut:      row.CheckOut,
		Rating:        row.Rating,
		IsRecommended: row.IsRecommended,
		TravelPlanID:  idOf(row.TravelPlanID),
	}

	var err error
	if a.CreatedAt, err = parseTime("created_at", row.CreatedAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime("updated_at", row.UpdatedAt); err != nil {
		return nil, err
	}

	var cols jsonColumns
	cols.decode("contact", row.Contact, &a.Contact)
	cols.decode("amenities", row.Amenities, &a.Amenities)
	cols.decode("rooms", row.Rooms, &a.Rooms)
	cols.decode("policies", row.Policies, &a.Policies)
	cols.decode("photos", row.Photos, &a.Photos)
	cols.decode("reviews", row.Reviews, &a.Reviews)
	cols.decode("tags", row.Tags, &a.Tags)
	if cols.err != nil {
		return nil, cols.err
	}
	return a, nil
}
