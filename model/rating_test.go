package model

import (
	"errors"
	"testing"
	"time"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"No reviews", nil, 0},
		{"Single", []int{4}, 4},
		{"Two", []int{4, 2}, 3},
		{"Rounds to one decimal", []int{5, 4, 4}, 4.3},
		{"Rounds half up", []int{1, 2, 2, 2}, 1.8},
		{"Order independent", []int{2, 2, 2, 1}, 1.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reviews []Review
			for _, r := range tt.ratings {
				reviews = append(reviews, Review{Author: "A", Rating: r})
			}
			if got := AverageRating(reviews); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAccommodationAddReview(t *testing.T) {
	now := testTime()
	a, err := NewAccommodation(validAccommodationInput(), now)
	if err != nil {
		t.Fatalf("Failed to create accommodation: %v", err)
	}
	if a.Rating != 0 || len(a.Reviews) != 0 {
		t.Fatalf("Expected rating 0 and no reviews, got %v / %v", a.Rating, a.Reviews)
	}

	later := now.Add(time.Minute)
	if err := a.AddReview(&ReviewInput{Author: strPtr("A"), Rating: floatPtr(4)}, later); err != nil {
		t.Fatalf("Failed to add review: %v", err)
	}
	if err := a.AddReview(&ReviewInput{Author: strPtr("B"), Rating: floatPtr(2)}, later); err != nil {
		t.Fatalf("Failed to add review: %v", err)
	}

	if a.Rating != 3.0 {
		t.Errorf("Expected rating 3.0, got %v", a.Rating)
	}
	if !a.Reviews[0].Date.Equal(later) {
		t.Errorf("Expected review date to default to now, got %v", a.Reviews[0].Date)
	}
	if !a.UpdatedAt.Equal(later) {
		t.Error("Expected UpdatedAt to be bumped")
	}

	// 範囲外の評価は拒否され、既存の状態は変わらないこと
	err = a.AddReview(&ReviewInput{Author: strPtr("C"), Rating: floatPtr(6)}, later)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if len(a.Reviews) != 2 || a.Rating != 3.0 {
		t.Errorf("Expected state to be unchanged, got %d reviews rating %v", len(a.Reviews), a.Rating)
	}
}

func TestNewAttractionIgnoresSubmittedRating(t *testing.T) {
	in := validAttractionInput()
	in.Rating = floatPtr(5)
	in.Reviews = []ReviewInput{
		{Author: strPtr("A"), Rating: floatPtr(3)},
		{Author: strPtr("B"), Rating: floatPtr(4)},
	}
	a, err := NewAttraction(in, testTime())
	if err != nil {
		t.Fatalf("Failed to create attraction: %v", err)
	}
	if a.Rating != 3.5 {
		t.Errorf("Expected rating derived from reviews (3.5), got %v", a.Rating)
	}
	if a.Admission.Currency != CurrencyJPY {
		t.Errorf("Expected default currency JPY, got %s", a.Admission.Currency)
	}
}

func TestAttractionMergeKeepsRating(t *testing.T) {
	a, err := NewAttraction(validAttractionInput(), testTime())
	if err != nil {
		t.Fatalf("Failed to create attraction: %v", err)
	}
	if err := a.AddReview(&ReviewInput{Author: strPtr("A"), Rating: floatPtr(5)}, testTime()); err != nil {
		t.Fatalf("Failed to add review: %v", err)
	}

	merged, err := a.Merge(&AttractionInput{Rating: floatPtr(1), Description: strPtr("木曽の鎮守")}, testTime())
	if err != nil {
		t.Fatalf("Failed to merge: %v", err)
	}
	if merged.Rating != 5 || len(merged.Reviews) != 1 {
		t.Errorf("Expected rating to be unchanged by update, got %v", merged.Rating)
	}
	if merged.Description != "木曽の鎮守" {
		t.Errorf("Expected description to be updated, got %s", merged.Description)
	}
}
