// Package core は、旅行プラン・宿泊施設・観光地のユースケースを提供します。
// 入力の検証、旅行プランIDの解決、ストレージ操作をまとめ、
// 失敗を ValidationError / ErrNotFound / StorageError のいずれかとして返します。
package core

import (
	"context"
	"errors"
	"time"

	"github.com/stsysd/tabi/model"
	"github.com/stsysd/tabi/store"
)

// Option は Managers の生成オプションです。
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock は現在時刻の取得方法を差し替えます。
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Managers はすべてのエンティティのマネージャーをまとめたものです。
type Managers struct {
	TravelPlans    *TravelPlans
	Accommodations *Accommodations
	Attractions    *Attractions
}

// New はストアを使用する Managers を生成します。
func New(s store.Store, opts ...Option) *Managers {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return &Managers{
		TravelPlans:    &TravelPlans{store: s, now: o.now},
		Accommodations: &Accommodations{store: s, now: o.now},
		Attractions:    &Attractions{store: s, now: o.now},
	}
}

// classify はストアから返されたエラーを3種類のいずれかに揃えます。
// 検証エラーと未検出エラーはそのまま、それ以外は StorageError として返します。
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var validationErr *model.ValidationError
	if errors.Is(err, model.ErrNotFound) || errors.As(err, &validationErr) {
		return err
	}
	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		return err
	}
	return model.NewStorageError(op, err)
}

// resolveTravelPlan は旅行プランIDが存在することを確認します。
func resolveTravelPlan(ctx context.Context, s store.TravelPlanStore, id *int64) (*model.TravelPlan, error) {
	if id == nil {
		return nil, nil
	}
	plan, err := s.FindTravelPlanByID(ctx, *id)
	if err != nil {
		return nil, classify("resolve travel plan", err)
	}
	return plan, nil
}

// summaryOf は参照先の旅行プランの要約を返します。参照先が削除されている場合は nil です。
func summaryOf(ctx context.Context, s store.TravelPlanStore, id *int64) (*model.TravelPlanSummary, error) {
	plan, err := resolveTravelPlan(ctx, s, id)
	if errors.Is(err, model.ErrTravelPlanNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return planSummary(plan), nil
}

func planSummary(plan *model.TravelPlan) *model.TravelPlanSummary {
	if plan == nil {
		return nil
	}
	return plan.Summary()
}
