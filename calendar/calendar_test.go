package calendar

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stsysd/tabi/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFromTravelPlan(t *testing.T) {
	plan := &model.TravelPlan{
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 3),
		Itinerary: []model.ItineraryDay{
			{Date: date(2024, 5, 2), Activities: []model.Activity{
				{ID: uuid.New(), Time: "09:00", Title: "鳥居峠"},
				{ID: uuid.New(), Time: "14:00", Title: "木曽漆器館"},
			}},
			{Date: date(2024, 5, 1), Activities: []model.Activity{
				{ID: uuid.New(), Time: "15:00", Title: "チェックイン"},
			}},
		},
	}

	days, err := FromTravelPlan(plan)
	if err != nil {
		t.Fatalf("Failed to build days: %v", err)
	}

	want := []Day{
		{Date: date(2024, 5, 1), Titles: []string{"15:00 チェックイン"}},
		{Date: date(2024, 5, 2), Titles: []string{"09:00 鳥居峠", "14:00 木曽漆器館"}},
		{Date: date(2024, 5, 3)},
	}
	if diff := cmp.Diff(want, days); diff != "" {
		t.Errorf("Unexpected days (-want +got):\n%s", diff)
	}
}

func TestFromTravelPlanIncludesOutOfRangeDays(t *testing.T) {
	plan := &model.TravelPlan{
		StartDate: date(2024, 5, 1),
		EndDate:   date(2024, 5, 2),
		Itinerary: []model.ItineraryDay{
			{Date: date(2024, 4, 30), Activities: []model.Activity{{Time: "20:00", Title: "前泊"}}},
		},
	}

	days, err := FromTravelPlan(plan)
	if err != nil {
		t.Fatalf("Failed to build days: %v", err)
	}
	if len(days) != 3 || !days[0].Date.Equal(date(2024, 4, 30)) {
		t.Errorf("Expected days from 4/30 to 5/2, got %+v", days)
	}
}

func TestFromTravelPlanMaxDays(t *testing.T) {
	start := date(2024, 1, 1)
	tests := []struct {
		description string
		end         time.Time
		itinerary   []model.ItineraryDay
		wantDays    int
		wantErr     bool
	}{
		{"上限ちょうど", start.AddDate(0, 0, MaxDays-1), nil, MaxDays, false},
		{"上限を1日超える", start.AddDate(0, 0, MaxDays), nil, 0, true},
		{"旅程で範囲が広がる", start.AddDate(0, 0, MaxDays-1), []model.ItineraryDay{
			{Date: date(2023, 12, 31), Activities: []model.Activity{{Title: "前泊"}}},
		}, 0, true},
		{"数千年", date(9999, 12, 31), nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			plan := &model.TravelPlan{StartDate: start, EndDate: tt.end, Itinerary: tt.itinerary}
			days, err := FromTravelPlan(plan)
			if tt.wantErr {
				var validationErr *model.ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Failed to build days: %v", err)
			}
			if len(days) != tt.wantDays {
				t.Errorf("Expected %d days, got %d", tt.wantDays, len(days))
			}
		})
	}
}

func TestDaysBetweenBeyondDurationRange(t *testing.T) {
	tests := []struct {
		from, to time.Time
		want     int64
	}{
		{date(2024, 5, 1), date(2024, 5, 1), 0},
		{date(2024, 2, 28), date(2024, 3, 1), 2},
		{date(1, 1, 1), date(9999, 12, 31), 3652058},
		{date(1700, 1, 1), date(2100, 1, 1), 146097},
	}

	for _, tt := range tests {
		if got := daysBetween(tt.from, tt.to); got != tt.want {
			t.Errorf("daysBetween(%s, %s) = %d, want %d", tt.from.Format("2006-01-02"), tt.to.Format("2006-01-02"), got, tt.want)
		}
	}
}

func TestGenerateSVGWeeksAcrossCenturies(t *testing.T) {
	// 1700-01-01 は金曜日、2100-01-01 も金曜日
	days := []Day{{Date: date(1700, 1, 1)}, {Date: date(2100, 1, 1)}}
	svg := GenerateSVG(days, nil)

	if !strings.Contains(svg, `data-date="2100-01-01"`) {
		t.Errorf("Expected last day to be rendered")
	}
	opts := DefaultOptions()
	step := opts.CellSize + opts.CellPadding
	// 先頭の週は日曜日 (1699-12-27) から始まる
	weeks := int64((5+146097)/7) + 1
	height := opts.FontSize + 4 + opts.FontSize + 4 + int(weeks)*step + opts.CellPadding
	if !strings.Contains(svg, fmt.Sprintf(`height="%d"`, height)) {
		t.Errorf("Expected height %d for %d weeks", height, weeks)
	}
}

func TestGenerateSVG(t *testing.T) {
	tests := []struct {
		description string
		days        []Day
		contains    []string
		cells       int
	}{
		{
			description: "データなし",
			days:        nil,
			cells:       0,
		},
		{
			description: "3日間の旅程",
			days: []Day{
				{Date: date(2024, 5, 1), Titles: []string{"15:00 チェックイン"}},
				{Date: date(2024, 5, 2), Titles: []string{"09:00 鳥居峠", "14:00 木曽漆器館"}},
				{Date: date(2024, 5, 3)},
			},
			contains: []string{
				`data-date="2024-05-01" data-count="1"`,
				`data-date="2024-05-02" data-count="2"`,
				`data-date="2024-05-03" data-count="0"`,
				"<title>2024年05月02日: 09:00 鳥居峠, 14:00 木曽漆器館</title>",
			},
			cells: 3,
		},
		{
			description: "特殊文字のエスケープ",
			days: []Day{
				{Date: date(2024, 5, 1), Titles: []string{"<夕食> & 温泉"}},
			},
			contains: []string{"&lt;夕食&gt; &amp; 温泉"},
			cells:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			svg := GenerateSVG(tt.days, nil)
			if tt.cells == 0 {
				if svg != "" {
					t.Errorf("Expected empty svg, got %q", svg)
				}
				return
			}
			if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
				t.Errorf("Expected svg document, got %q", svg)
			}
			if got := strings.Count(svg, "<rect"); got != tt.cells {
				t.Errorf("Expected %d cells, got %d", tt.cells, got)
			}
			for _, s := range tt.contains {
				if !strings.Contains(svg, s) {
					t.Errorf("Expected svg to contain %q", s)
				}
			}
		})
	}
}

func TestGenerateSVGWithTitle(t *testing.T) {
	opts := DefaultOptions()
	opts.Title = "奈良井旅行"
	svg := GenerateSVG([]Day{{Date: date(2024, 5, 1)}}, opts)
	if !strings.Contains(svg, ">奈良井旅行</text>") {
		t.Errorf("Expected title in svg, got %q", svg)
	}
}
