package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/model"
)

const duplicateAttractionName = "同じ名前の観光地が既に登録されています"

type attractionColumns struct {
	openingHours string
	admission    string
	features     string
	photos       string
	reviews      string
	tags         string
}

func encodeAttraction(a *model.Attraction) (attractionColumns, error) {
	var cols jsonColumns
	c := attractionColumns{
		openingHours: cols.encode("opening_hours", a.OpeningHours),
		admission:    cols.encode("admission", a.Admission),
		features:     cols.encode("features", a.Features),
		photos:       cols.encode("photos", a.Photos),
		reviews:      cols.encode("reviews", a.Reviews),
		tags:         cols.encode("tags", a.Tags),
	}
	return c, cols.err
}

// InsertAttraction は新しい観光地をデータベースに保存します。
func (s *SQLiteStore) InsertAttraction(ctx context.Context, a *model.Attraction) (*model.Attraction, error) {
	c, err := encodeAttraction(a)
	if err != nil {
		return nil, err
	}
	lat, lng := coordinatesColumns(a.Location.Coordinates)

	id, err := s.queries.CreateAttraction(ctx, db.CreateAttractionParams{
		Name:          a.Name,
		Description:   a.Description,
		Category:      string(a.Category),
		Address:       a.Location.Address,
		Prefecture:    a.Location.Prefecture,
		City:          a.Location.City,
		Latitude:      lat,
		Longitude:     lng,
		OpeningHours:  c.openingHours,
		Admission:     c.admission,
		Features:      c.features,
		Photos:        c.photos,
		Website:       a.Website,
		Phone:         a.Phone,
		Rating:        a.Rating,
		Reviews:       c.reviews,
		IsRecommended: a.IsRecommended,
		Tags:          c.tags,
		TravelPlanID:  nullID(a.TravelPlanID),
		CreatedAt:     formatTime(a.CreatedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
	})
	if isUniqueViolation(err) {
		return nil, model.NewValidationError(duplicateAttractionName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create attraction: %w", err)
	}

	a.ID = id
	return a, nil
}

// FindAttractionByID は指定されたIDの観光地を取得します。
func (s *SQLiteStore) FindAttractionByID(ctx context.Context, id int64) (*model.Attraction, error) {
	row, err := s.queries.GetAttraction(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrAttractionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attraction: %w", err)
	}
	return attractionFromRow(row)
}

// FindAllAttractions は条件に一致する観光地を評価の高い順に取得します。
func (s *SQLiteStore) FindAllAttractions(ctx context.Context, filter model.AttractionFilter) ([]*model.Attraction, error) {
	rows, err := s.queries.ListAttractions(ctx, db.ListAttractionsParams{
		Category:      nullString(filter.Category),
		Prefecture:    nullString(filter.Prefecture),
		City:          nullString(filter.City),
		MinRating:     nullFloat(filter.MinRating),
		IsRecommended: nullBool(filter.IsRecommended),
		Tag:           nullString(filter.Tag),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list attractions: %w", err)
	}
	return attractionsFromRows(rows)
}

// FindAttractionsByTravelPlan は旅行プランに紐づく観光地を取得します。
func (s *SQLiteStore) FindAttractionsByTravelPlan(ctx context.Context, planID int64) ([]*model.Attraction, error) {
	rows, err := s.queries.ListAttractionsByTravelPlan(ctx, sql.NullInt64{Int64: planID, Valid: true})
	if err != nil {
		return nil, fmt.Errorf("failed to list attractions by travel plan: %w", err)
	}
	return attractionsFromRows(rows)
}

// UpdateAttractionByID は観光地を更新します。評価とレビューは変更しません。
func (s *SQLiteStore) UpdateAttractionByID(ctx context.Context, a *model.Attraction) (int64, error) {
	c, err := encodeAttraction(a)
	if err != nil {
		return 0, err
	}
	lat, lng := coordinatesColumns(a.Location.Coordinates)

	affected, err := s.queries.UpdateAttraction(ctx, db.UpdateAttractionParams{
		Name:          a.Name,
		Description:   a.Description,
		Category:      string(a.Category),
		Address:       a.Location.Address,
		Prefecture:    a.Location.Prefecture,
		City:          a.Location.City,
		Latitude:      lat,
		Longitude:     lng,
		OpeningHours:  c.openingHours,
		Admission:     c.admission,
		Features:      c.features,
		Photos:        c.photos,
		Website:       a.Website,
		Phone:         a.Phone,
		IsRecommended: a.IsRecommended,
		Tags:          c.tags,
		TravelPlanID:  nullID(a.TravelPlanID),
		UpdatedAt:     formatTime(a.UpdatedAt),
		ID:            a.ID,
	})
	if isUniqueViolation(err) {
		return 0, model.NewValidationError(duplicateAttractionName)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update attraction: %w", err)
	}
	return affected, nil
}

// DeleteAttractionByID は観光地を削除します。
func (s *SQLiteStore) DeleteAttractionByID(ctx context.Context, id int64) (int64, error) {
	affected, err := s.queries.DeleteAttraction(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attraction: %w", err)
	}
	return affected, nil
}

// AppendAttractionReview は観光地にレビューを追加します。
func (s *SQLiteStore) AppendAttractionReview(ctx context.Context, id int64, apply func(*model.Attraction) error) (*model.Attraction, error) {
	var result *model.Attraction
	err := s.withTx(ctx, func(q *db.Queries) error {
		row, err := q.GetAttraction(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrAttractionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get attraction: %w", err)
		}

		a, err := attractionFromRow(row)
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
		if _, err := q.UpdateAttractionReviews(ctx, db.UpdateAttractionReviewsParams{
			Reviews:   reviews,
			Rating:    a.Rating,
			UpdatedAt: formatTime(a.UpdatedAt),
			ID:        id,
		}); err != nil {
			return fmt.Errorf("failed to update attraction reviews: %w", err)
		}

		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func attractionsFromRows(rows []db.Attraction) ([]*model.Attraction, error) {
	list := make([]*model.Attraction, 0, len(rows))
	for _, row := range rows {
		a, err := attractionFromRow(row)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func attractionFromRow(row db.Attraction) (*model.Attraction, error) {
	a := &model.Attraction{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    model.AttractionCategory(row.Category),
		Location: model.Location{
			Address:     row.Address,
			Prefecture:  row.Prefecture,
			City:        row.City,
			Coordinates: coordinatesOf(row.Latitude, row.Longitude),
		},
		Website:       row.Website,
		Phone:         row.Phone,
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
	cols.decode("opening_hours", row.OpeningHours, &a.OpeningHours)
	cols.decode("admission", row.Admission, &a.Admission)
	cols.decode("features", row.Features, &a.Features)
	cols.decode("photos", row.Photos, &a.Photos)
	cols.decode("reviews", row.Reviews, &a.Reviews)
	cols.decode("tags", row.Tags, &a.Tags)
	if cols.err != nil {
		return nil, cols.err
	}
	return a, nil
}
