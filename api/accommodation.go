package api

import (
	"net/http"

	"github.com/stsysd/tabi/model"
)

// ListAccommodationsParams は宿泊施設一覧のクエリパラメータです。
type ListAccommodationsParams struct {
	Filter model.AccommodationFilter
}

// NewListAccommodationsParams はリクエストから一覧の絞り込み条件を取得します。
func NewListAccommodationsParams(r *http.Request) (*ListAccommodationsParams, error) {
	query := r.URL.Query()
	rating, err := parseFloatQuery(query.Get("rating"), "rating")
	if err != nil {
		return nil, err
	}
	recommended, err := parseBoolQuery(query.Get("recommended"), "recommended")
	if err != nil {
		return nil, err
	}
	return &ListAccommodationsParams{
		Filter: model.AccommodationFilter{
			Type:          query.Get("type"),
			Prefecture:    query.Get("prefecture"),
			City:          query.Get("city"),
			MinRating:     rating,
			IsRecommended: recommended,
			Tag:           query.Get("tag"),
		},
	}, nil
}

// AccommodationParams はパスで指定された宿泊施設を表します。
type AccommodationParams struct {
	ID int64
}

// NewAccommodationParams はパスパラメータから宿泊施設IDを取得します。
func NewAccommodationParams(r *http.Request) (*AccommodationParams, error) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	return &AccommodationParams{ID: id}, nil
}

func (s *Server) handleListAccommodations(w http.ResponseWriter, r *http.Request) {
	params, err := NewListAccommodationsParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	accommodations, err := s.managers.Accommodations.List(r.Context(), params.Filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, accommodations, "")
}

func (s *Server) handleRecommendedAccommodations(w http.ResponseWriter, r *http.Request) {
	accommodations, err := s.managers.Accommodations.Recommended(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, accommodations, "")
}

func (s *Server) handleAccommodationsByType(w http.ResponseWriter, r *http.Request) {
	accommodations, err := s.managers.Accommodations.ByType(r.Context(), r.PathValue("type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, accommodations, "")
}

// handleCreateAccommodation は宿泊施設を登録します。
func (s *Server) handleCreateAccommodation(w http.ResponseWriter, r *http.Request) {
	var in model.AccommodationInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err)
		return
	}

	accommodation, err := s.managers.Accommodations.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, accommodation, "宿泊施設を登録しました")
}

// handleGetAccommodation は宿泊施設を紐づく旅行プランの要約とともに返します。
func (s *Server) handleGetAccommodation(w http.ResponseWriter, r *http.Request) {
	params, err := NewAccommodationParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	detail, err := s.managers.Accommodations.Get(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, detail, "")
}

// handleUpdateAccommodation は宿泊施設を部分更新します。評価とレビューは変更されません。
func (s *Server) handleUpdateAccommodation(w http.ResponseWriter, r *http.Request) {
	params, err := NewAccommodationParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var patch model.AccommodationInput
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, err)
		return
	}

	accommodation, err := s.managers.Accommodations.Update(r.Context(), params.ID, &patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, accommodation, "宿泊施設を更新しました")
}

func (s *Server) handleDeleteAccommodation(w http.ResponseWriter, r *http.Request) {
	params, err := NewAccommodationParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	if err := s.managers.Accommodations.Delete(r.Context(), params.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, nil, "宿泊施設を削除しました")
}

// handleAddAccommodationReview はレビューを追加し、評価を再計算します。
func (s *Server) handleAddAccommodationReview(w http.ResponseWriter, r *http.Request) {
	params, err := NewAccommodationParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var in model.ReviewInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err)
		return
	}

	accommodation, err := s.managers.Accommodations.AddReview(r.Context(), params.ID, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, accommodation, "レビューを追加しました")
}
