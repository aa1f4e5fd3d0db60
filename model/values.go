// Package model は、アプリケーションのデータモデル定義を提供します。
package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Currency は金額の通貨を表します。
type Currency string

const (
	CurrencyJPY Currency = "JPY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Currencies は許可されている通貨の一覧です。
var Currencies = []Currency{CurrencyJPY, CurrencyUSD, CurrencyEUR}

// IsValid は通貨が許可された値かどうかを返します。
func (c Currency) IsValid() bool {
	for _, v := range Currencies {
		if c == v {
			return true
		}
	}
	return false
}

// orDefault は未指定の通貨をJPYとして扱います。
func (c Currency) orDefault() Currency {
	if strings.TrimSpace(string(c)) == "" {
		return CurrencyJPY
	}
	return c
}

// BudgetBreakdown は予算の内訳です。合計との一致はチェックしません。
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Other          float64 `json:"other"`
}

// Budget は旅行プランの予算です。
type Budget struct {
	Total     float64         `json:"total"`
	Currency  Currency        `json:"currency"`
	Breakdown BudgetBreakdown `json:"breakdown"`
}

// BudgetInput は予算の入力です。合計は必須です。
type BudgetInput struct {
	Total     *float64        `json:"total"`
	Currency  Currency        `json:"currency"`
	Breakdown BudgetBreakdown `json:"breakdown"`
}

func (in *BudgetInput) build() Budget {
	return Budget{
		Total:     *in.Total,
		Currency:  in.Currency.orDefault(),
		Breakdown: in.Breakdown,
	}
}

func budgetInputOf(b Budget) *BudgetInput {
	return &BudgetInput{Total: &b.Total, Currency: b.Currency, Breakdown: b.Breakdown}
}

// Coordinates は緯度経度です。
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location は施設の所在地です。
type Location struct {
	Address     string       `json:"address"`
	Prefecture  string       `json:"prefecture"`
	City        string       `json:"city"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

func (l Location) trimmed() Location {
	l.Address = strings.TrimSpace(l.Address)
	l.Prefecture = strings.TrimSpace(l.Prefecture)
	l.City = strings.TrimSpace(l.City)
	return l
}

// Review は施設に対するレビューです。
type Review struct {
	Author  string    `json:"author"`
	Rating  int       `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}

// RefID は外部参照IDの生の入力値です。
// 数値であるかどうかの判定はバリデーション時に行います。
type RefID struct {
	raw []byte
}

// NewRefID は数値IDからRefIDを生成します。
func NewRefID(id int64) *RefID {
	return &RefID{raw: []byte(strconv.FormatInt(id, 10))}
}

// UnmarshalJSON は入力値をそのまま保持します。
func (r *RefID) UnmarshalJSON(b []byte) error {
	r.raw = append(r.raw[:0], b...)
	return nil
}

// MarshalJSON は保持している入力値をそのまま返します。
func (r RefID) MarshalJSON() ([]byte, error) {
	if len(r.raw) == 0 {
		return []byte("null"), nil
	}
	return r.raw, nil
}

// Int64 はIDが正の整数リテラルであればその値を返します。
func (r *RefID) Int64() (int64, bool) {
	if r == nil {
		return 0, false
	}
	raw := bytes.TrimSpace(r.raw)
	// 文字列リテラルは数値とみなさない
	if len(raw) == 0 || raw[0] == '"' {
		return 0, false
	}
	id, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

var _ json.Unmarshaler = (*RefID)(nil)

// ParseID はパスパラメータなどの文字列からエンティティIDを取得します。
func ParseID(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("id is required")
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}

// ParseDate は日付文字列を解析します。RFC3339 と YYYY-MM-DD を受け付けます。
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %q", s)
}

// CalendarDate は日時を暦日 (UTCの0時) に正規化します。
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay は2つの日時が同じ暦日かどうかを返します。
func SameDay(a, b time.Time) bool {
	return CalendarDate(a).Equal(CalendarDate(b))
}

// isTimeOfDay は HH:MM 形式の時刻かどうかを返します。
func isTimeOfDay(s string) bool {
	_, err := time.Parse("15:04", strings.TrimSpace(s))
	return err == nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func trimPtr(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func trimString(s string) string {
	return strings.TrimSpace(s)
}
