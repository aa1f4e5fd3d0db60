// Package calendar は、旅程をカレンダー形式のSVGとして描画します。
package calendar

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/stsysd/tabi/model"
)

// Day は1日分の予定です。
type Day struct {
	Date   time.Time
	Titles []string
}

// Options は描画パラメータです。
type Options struct {
	CellSize    int      // 日付セルの大きさ (px)
	CellPadding int      // セル間の余白 (px)
	Colors      []string // 予定の件数ごとの色。0件はColors[0]
	FontSize    int      // ラベルのフォントサイズ (px)
	FontFamily  string
	Title       string
}

// DefaultOptions は既定の描画パラメータを返します。
func DefaultOptions() *Options {
	return &Options{
		CellSize:    28,
		CellPadding: 4,
		FontSize:    11,
		FontFamily:  "sans-serif",
		Colors:      []string{"#ebedf0", "#c6e6ff", "#79c0ff", "#388bfd", "#1f6feb"},
	}
}

// MaxDays はカレンダーに描画できる日数の上限です。
const MaxDays = 366

// daysBetween は2つの暦日の差を日数で返します。
// time.Duration は約292年で飽和するため、Unix秒から計算します。
func daysBetween(from, to time.Time) int64 {
	return (model.CalendarDate(to).Unix() - model.CalendarDate(from).Unix()) / 86400
}

// FromTravelPlan は旅行期間のすべての日について予定を集計します。
// 旅行期間外の旅程も含めます。描画範囲が MaxDays を超える場合は ValidationError を返します。
func FromTravelPlan(plan *model.TravelPlan) ([]Day, error) {
	byDate := make(map[string][]string)
	first := model.CalendarDate(plan.StartDate)
	last := model.CalendarDate(plan.EndDate)
	for _, d := range plan.Itinerary {
		date := model.CalendarDate(d.Date)
		key := date.Format("2006-01-02")
		for _, a := range d.Activities {
			byDate[key] = append(byDate[key], strings.TrimSpace(a.Time+" "+a.Title))
		}
		if date.Before(first) {
			first = date
		}
		if date.After(last) {
			last = date
		}
	}

	if span := daysBetween(first, last) + 1; span > MaxDays {
		return nil, model.NewValidationError(
			fmt.Sprintf("カレンダーに表示できる期間は%d日までです (%d日)", MaxDays, span))
	}

	days := make([]Day, 0, daysBetween(first, last)+1)
	for current := first; !current.After(last); current = current.AddDate(0, 0, 1) {
		days = append(days, Day{Date: current, Titles: byDate[current.Format("2006-01-02")]})
	}
	return days, nil
}

// GenerateSVG は日ごとの予定を週単位のカレンダーとして描画したSVGを返します。
// days は日付の昇順である必要があります。
func GenerateSVG(days []Day, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(days) == 0 {
		return ""
	}

	startDate := model.CalendarDate(days[0].Date)
	endDate := model.CalendarDate(days[len(days)-1].Date)

	byDate := make(map[string]Day, len(days))
	for _, d := range days {
		byDate[d.Date.Format("2006-01-02")] = d
	}

	// 最初の列を日曜日に揃える
	firstSunday := startDate.AddDate(0, 0, -int(startDate.Weekday()))
	weeks := int(daysBetween(firstSunday, endDate)/7) + 1

	step := opts.CellSize + opts.CellPadding
	header := opts.FontSize + 4
	if opts.Title != "" {
		header += opts.FontSize + 6
	}
	width := 7*step + opts.CellPadding
	height := header + opts.FontSize + 4 + weeks*step + opts.CellPadding

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.day{font-family:%s;font-size:%dpx;fill:#24292f}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	y := opts.FontSize
	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
			opts.CellPadding, y, html.EscapeString(opts.Title)))
		y += opts.FontSize + 6
	}

	// 曜日ラベル
	weekdays := []string{"日", "月", "火", "水", "木", "金", "土"}
	for i, wd := range weekdays {
		x := opts.CellPadding + i*step
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n", x, y, wd))
	}
	top := y + 4

	levels := len(opts.Colors)
	for w := 0; w < weeks; w++ {
		for i := 0; i < 7; i++ {
			current := firstSunday.AddDate(0, 0, w*7+i)
			key := current.Format("2006-01-02")
			day, ok := byDate[key]
			if !ok {
				continue
			}

			level := len(day.Titles)
			if level >= levels {
				level = levels - 1
			}
			x := opts.CellPadding + i*step
			cy := top + opts.CellPadding + w*step

			// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, cy, opts.CellSize, opts.CellSize, opts.Colors[level], key, len(day.Titles)))
			tooltip := current.Format("2006年01月02日")
			if len(day.Titles) > 0 {
				tooltip += ": " + strings.Join(day.Titles, ", ")
			}
			sb.WriteString(fmt.Sprintf(`    <title>%s</title>`+"\n", html.EscapeString(tooltip)))
			sb.WriteString(`  </rect>` + "\n")
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="day">%d</text>`+"\n",
				x+2, cy+opts.FontSize, current.Day()))
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}
