// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"errors"
	"fmt"
	"strings"
)

// センチネルエラー - リソースが見つからない場合
var (
	ErrNotFound              = errors.New("not found")
	ErrTravelPlanNotFound    = fmt.Errorf("travel plan %w", ErrNotFound)
	ErrAccommodationNotFound = fmt.Errorf("accommodation %w", ErrNotFound)
	ErrAttractionNotFound    = fmt.Errorf("attraction %w", ErrNotFound)
	ErrActivityNotFound      = fmt.Errorf("itinerary activity %w", ErrNotFound)
)

// ValidationError はバリデーションエラーを表す型
// Errors にはフィールドごとのエラーメッセージがすべて格納されます。
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// NewValidationError はValidationErrorを生成するヘルパー関数
func NewValidationError(msgs ...string) error {
	return &ValidationError{Errors: msgs}
}

// StorageError はストレージ層の予期しない失敗を表す型
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError はStorageErrorを生成するヘルパー関数
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
