// Package seed は、YAMLで記述した旅行プラン・宿泊施設・観光地のフィクスチャを登録します。
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stsysd/tabi/core"
	"github.com/stsysd/tabi/model"
)

// Fixture はフィクスチャファイル全体です。
//
// 宿泊施設と観光地は plan に旅行プランの key を指定して紐づけます。
type Fixture struct {
	TravelPlans    []PlanFixture  `yaml:"travelPlans"`
	Accommodations []EntryFixture `yaml:"accommodations"`
	Attractions    []EntryFixture `yaml:"attractions"`
}

// PlanFixture は旅行プラン1件分のフィクスチャです。
type PlanFixture struct {
	Key  string         `yaml:"key"`
	Data map[string]any `yaml:"data"`
}

// EntryFixture は宿泊施設・観光地1件分のフィクスチャです。
type EntryFixture struct {
	Plan string         `yaml:"plan"`
	Data map[string]any `yaml:"data"`
}

// Result は登録件数です。
type Result struct {
	TravelPlans    int
	Accommodations int
	Attractions    int
}

// Load はYAMLを読み込みます。
func Load(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}

	seen := make(map[string]bool, len(f.TravelPlans))
	for i, p := range f.TravelPlans {
		if p.Key == "" {
			return nil, fmt.Errorf("travelPlans[%d]: key is required", i)
		}
		if seen[p.Key] {
			return nil, fmt.Errorf("travelPlans[%d]: duplicate key %q", i, p.Key)
		}
		seen[p.Key] = true
	}
	return &f, nil
}

// LoadFile はファイルからフィクスチャを読み込みます。
func LoadFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture: %w", err)
	}
	defer file.Close()
	return Load(file)
}

// Apply はフィクスチャを旅行プラン、宿泊施設、観光地の順に登録します。
// 途中で失敗した場合、それまでに登録したものは残ります。
func (f *Fixture) Apply(ctx context.Context, m *core.Managers) (*Result, error) {
	res := &Result{}
	ids := make(map[string]int64, len(f.TravelPlans))

	for _, p := range f.TravelPlans {
		var in model.TravelPlanInput
		if err := convert(p.Data, &in); err != nil {
			return res, fmt.Errorf("travel plan %q: %w", p.Key, err)
		}
		plan, err := m.TravelPlans.Create(ctx, &in)
		if err != nil {
			return res, fmt.Errorf("travel plan %q: %w", p.Key, err)
		}
		ids[p.Key] = plan.ID
		res.TravelPlans++
	}

	for i, e := range f.Accommodations {
		var in model.AccommodationInput
		if err := convert(e.Data, &in); err != nil {
			return res, fmt.Errorf("accommodations[%d]: %w", i, err)
		}
		ref, err := planRef(ids, e.Plan)
		if err != nil {
			return res, fmt.Errorf("accommodations[%d]: %w", i, err)
		}
		if ref != nil {
			in.TravelPlanID = ref
		}
		if _, err := m.Accommodations.Create(ctx, &in); err != nil {
			return res, fmt.Errorf("accommodations[%d]: %w", i, err)
		}
		res.Accommodations++
	}

	for i, e := range f.Attractions {
		var in model.AttractionInput
		if err := convert(e.Data, &in); err != nil {
			return res, fmt.Errorf("attractions[%d]: %w", i, err)
		}
		ref, err := planRef(ids, e.Plan)
		if err != nil {
			return res, fmt.Errorf("attractions[%d]: %w", i, err)
		}
		if ref != nil {
			in.TravelPlanID = ref
		}
		if _, err := m.Attractions.Create(ctx, &in); err != nil {
			return res, fmt.Errorf("attractions[%d]: %w", i, err)
		}
		res.Attractions++
	}

	return res, nil
}

func planRef(ids map[string]int64, key string) (*model.RefID, error) {
	if key == "" {
		return nil, nil
	}
	id, ok := ids[key]
	if !ok {
		return nil, fmt.Errorf("unknown travel plan key %q", key)
	}
	return model.NewRefID(id), nil
}

// convert はYAMLのデータをAPIと同じJSON表現を経由して入力型に変換します。
func convert(data map[string]any, v any) error {
	b, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to convert fixture: %w", err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("failed to convert fixture: %w", err)
	}
	return nil
}
