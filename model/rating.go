package model

import (
	"math"
	"time"
)

// ReviewInput はレビュー投稿リクエストの内容です。
type ReviewInput struct {
	Author  *string    `json:"author"`
	Rating  *float64   `json:"rating"`
	Comment *string    `json:"comment"`
	Date    *time.Time `json:"date"`
}

func (in *ReviewInput) build(now time.Time) Review {
	date := now
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}
	return Review{
		Author:  trimPtr(in.Author),
		Rating:  int(*in.Rating),
		Comment: trimPtr(in.Comment),
		Date:    date,
	}
}

// AverageRating はレビュー評価の平均を小数第1位に丸めて返します。
// レビューがない場合は0です。
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// appendReview は検証済みのレビューを追加した新しい一覧と再計算した評価を返します。
func appendReview(reviews []Review, in *ReviewInput, now time.Time) ([]Review, float64, error) {
	if errs := ValidateReview(in); len(errs) > 0 {
		return nil, 0, NewValidationError(errs...)
	}
	next := make([]Review, 0, len(reviews)+1)
	next = append(next, reviews...)
	next = append(next, in.build(now))
	return next, AverageRating(next), nil
}
