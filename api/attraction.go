package api

import (
	"net/http"

	"github.com/stsysd/tabi/model"
)

// ListAttractionsParams は観光地一覧のクエリパラメータです。
type ListAttractionsParams struct {
	Filter model.AttractionFilter
}

// NewListAttractionsParams はリクエストから一覧の絞り込み条件を取得します。
func NewListAttractionsParams(r *http.Request) (*ListAttractionsParams, error) {
	query := r.URL.Query()
	rating, err := parseFloatQuery(query.Get("rating"), "rating")
	if err != nil {
		return nil, err
	}
	recommended, err := parseBoolQuery(query.Get("recommended"), "recommended")
	if err != nil {
		return nil, err
	}
	return &ListAttractionsParams{
		Filter: model.AttractionFilter{
			Category:      query.Get("category"),
			Prefecture:    query.Get("prefecture"),
			City:          query.Get("city"),
			MinRating:     rating,
			IsRecommended: recommended,
			Tag:           query.Get("tag"),
		},
	}, nil
}

// AttractionParams はパスで指定された観光地を表します。
type AttractionParams struct {
	ID int64
}

// NewAttractionParams はパスパラメータから観光地IDを取得します。
func NewAttractionParams(r *http.Request) (*AttractionParams, error) {
	id, err := model.ParseID(r.PathValue("id"))
	if err != nil {
		return nil, err
	}
	return &AttractionParams{ID: id}, nil
}

func (s *Server) handleListAttractions(w http.ResponseWriter, r *http.Request) {
	params, err := NewListAttractionsParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	attractions, err := s.managers.Attractions.List(r.Context(), params.Filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, attractions, "")
}

func (s *Server) handleRecommendedAttractions(w http.ResponseWriter, r *http.Request) {
	attractions, err := s.managers.Attractions.Recommended(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, attractions, "")
}

func (s *Server) handleAttractionsByCategory(w http.ResponseWriter, r *http.Request) {
	attractions, err := s.managers.Attractions.ByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, attractions, "")
}

// handleCreateAttraction は観光地を登録します。
func (s *Server) handleCreateAttraction(w http.ResponseWriter, r *http.Request) {
	var in model.AttractionInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err)
		return
	}

	attraction, err := s.managers.Attractions.Create(r.Context(), &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, attraction, "観光地を登録しました")
}

func (s *Server) handleGetAttraction(w http.ResponseWriter, r *http.Request) {
	params, err := NewAttractionParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	detail, err := s.managers.Attractions.Get(r.Context(), params.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, detail, "")
}

func (s *Server) handleUpdateAttraction(w http.ResponseWriter, r *http.Request) {
	params, err := NewAttractionParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var patch model.AttractionInput
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, err)
		return
	}

	attraction, err := s.managers.Attractions.Update(r.Context(), params.ID, &patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, attraction, "観光地を更新しました")
}

func (s *Server) handleDeleteAttraction(w http.ResponseWriter, r *http.Request) {
	params, err := NewAttractionParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}

	if err := s.managers.Attractions.Delete(r.Context(), params.ID); err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, nil, "観光地を削除しました")
}

// handleAddAttractionReview はレビューを追加し、評価を再計算します。
func (s *Server) handleAddAttractionReview(w http.ResponseWriter, r *http.Request) {
	params, err := NewAttractionParams(r)
	if err != nil {
		badRequest(w, err)
		return
	}
	var in model.ReviewInput
	if err := decodeBody(r, &in); err != nil {
		badRequest(w, err)
		return
	}

	attraction, err := s.managers.Attractions.AddReview(r.Context(), params.ID, &in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, attraction, "レビューを追加しました")
}
