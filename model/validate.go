package model

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxTitleLength       = 100
	maxDescriptionLength = 500
)

// ValidateTravelPlan は旅行プランの入力を検証し、エラーメッセージの一覧を返します。
// 空の一覧は入力が妥当であることを意味します。
func ValidateTravelPlan(in *TravelPlanInput) []string {
	var errs []string

	// 必須項目
	if isBlank(in.Title) {
		errs = append(errs, "タイトルは必須です")
	} else if utf8.RuneCountInString(strings.TrimSpace(*in.Title)) > maxTitleLength {
		errs = append(errs, fmt.Sprintf("タイトルは%d文字以内で入力してください", maxTitleLength))
	}
	if isBlank(in.Description) {
		errs = append(errs, "説明は必須です")
	} else if utf8.RuneCountInString(strings.TrimSpace(*in.Description)) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("説明は%d文字以内で入力してください", maxDescriptionLength))
	}
	if isBlank(in.Destination) {
		errs = append(errs, "目的地は必須です")
	}
	if isBlank(in.StartDate) {
		errs = append(errs, "開始日は必須です")
	}
	if isBlank(in.EndDate) {
		errs = append(errs, "終了日は必須です")
	}

	// 予算
	if in.Budget == nil {
		errs = append(errs, "予算情報は必須です")
	} else {
		if c := in.Budget.Currency.orDefault(); !c.IsValid() {
			errs = append(errs, enumMessage("予算の通貨", Currencies))
		}
		if in.Budget.Total == nil {
			errs = append(errs, "予算の合計は必須です")
		} else {
			errs = appendNonNegative(errs, "予算の合計", *in.Budget.Total)
		}
		b := in.Budget.Breakdown
		errs = appendNonNegative(errs, "宿泊費", b.Accommodation)
		errs = appendNonNegative(errs, "交通費", b.Transportation)
		errs = appendNonNegative(errs, "食費", b.Food)
		errs = appendNonNegative(errs, "アクティビティ費", b.Activities)
		errs = appendNonNegative(errs, "その他費用", b.Other)
	}

	// 旅程
	for _, day := range in.Itinerary {
		if _, err := ParseDate(strings.TrimSpace(day.Date)); err != nil {
			errs = append(errs, fmt.Sprintf("旅程の日付の形式が正しくありません: %q", day.Date))
		}
		for i := range day.Activities {
			errs = append(errs, ValidateActivity(&day.Activities[i])...)
		}
	}

	// 日付の前後関係
	start, startOK := parseOptionalDate(in.StartDate)
	end, endOK := parseOptionalDate(in.EndDate)
	if !isBlank(in.StartDate) && !startOK {
		errs = append(errs, "開始日の形式が正しくありません (YYYY-MM-DD)")
	}
	if !isBlank(in.EndDate) && !endOK {
		errs = append(errs, "終了日の形式が正しくありません (YYYY-MM-DD)")
	}
	if startOK && endOK && !end.After(start) {
		errs = append(errs, "終了日は開始日より後の日付である必要があります")
	}

	return errs
}

// ValidateActivity は旅程の予定の入力を検証します。
func ValidateActivity(in *ActivityInput) []string {
	var errs []string
	if isBlank(in.Title) {
		errs = append(errs, "予定のタイトルは必須です")
	}
	if isBlank(in.Time) {
		errs = append(errs, "予定の時刻は必須です")
	} else if !isTimeOfDay(*in.Time) {
		errs = append(errs, "予定の時刻はHH:MM形式で入力してください")
	}
	if in.Cost != nil {
		errs = appendNonNegative(errs, "予定の費用", *in.Cost)
	}
	return errs
}

// ValidateAccommodation は宿泊施設の入力を検証します。
func ValidateAccommodation(in *AccommodationInput) []string {
	var errs []string

	// 必須項目
	if isBlank(in.Name) {
		errs = append(errs, "宿泊施設名は必須です")
	}
	if isBlank(in.Description) {
		errs = append(errs, "説明は必須です")
	}
	if isBlank(in.Type) {
		errs = append(errs, "宿泊施設タイプは必須です")
	}
	if isBlank(in.CheckIn) {
		errs = append(errs, "チェックイン時間は必須です")
	} else if !isTimeOfDay(*in.CheckIn) {
		errs = append(errs, "チェックイン時間はHH:MM形式で入力してください")
	}
	if isBlank(in.CheckOut) {
		errs = append(errs, "チェックアウト時間は必須です")
	} else if !isTimeOfDay(*in.CheckOut) {
		errs = append(errs, "チェックアウト時間はHH:MM形式で入力してください")
	}

	// 列挙値
	if !isBlank(in.Type) && !AccommodationType(strings.TrimSpace(*in.Type)).IsValid() {
		errs = append(errs, AccommodationTypeMessage())
	}

	// ネストしたオブジェクト
	errs = append(errs, validateLocation(in.Location, false)...)
	if in.Contact == nil {
		errs = append(errs, "連絡先情報は必須です")
	} else if strings.TrimSpace(in.Contact.Phone) == "" {
		errs = append(errs, "電話番号は必須です")
	}
	if in.Policies == nil {
		errs = append(errs, "ポリシー情報は必須です")
	} else {
		if strings.TrimSpace(in.Policies.Cancellation) == "" {
			errs = append(errs, "キャンセルポリシーは必須です")
		}
		if strings.TrimSpace(in.Policies.Payment) == "" {
			errs = append(errs, "支払い方法は必須です")
		}
	}
	for _, room := range in.Rooms {
		if strings.TrimSpace(room.Type) == "" {
			errs = append(errs, "部屋タイプは必須です")
		}
		if c := room.Price.Currency.orDefault(); !c.IsValid() {
			errs = append(errs, enumMessage("部屋料金の通貨", Currencies))
		}
		if room.Capacity < 1 {
			errs = append(errs, "部屋の定員は1以上である必要があります")
		}
		errs = appendNonNegative(errs, "1泊あたりの料金", room.Price.PerNight)
	}

	// 数値範囲
	errs = appendRating(errs, in.Rating)

	// 外部参照
	errs = appendTravelPlanRef(errs, in.TravelPlanID)

	return errs
}

// ValidateAttraction は観光地の入力を検証します。
func ValidateAttraction(in *AttractionInput) []string {
	var errs []string

	// 必須項目
	if isBlank(in.Name) {
		errs = append(errs, "観光地名は必須です")
	}
	if isBlank(in.Description) {
		errs = append(errs, "説明は必須です")
	}
	if isBlank(in.Category) {
		errs = append(errs, "カテゴリは必須です")
	}

	// 列挙値
	if !isBlank(in.Category) && !AttractionCategory(strings.TrimSpace(*in.Category)).IsValid() {
		errs = append(errs, AttractionCategoryMessage())
	}

	// ネストしたオブジェクト
	errs = append(errs, validateLocation(in.Location, true)...)
	if in.OpeningHours == nil {
		errs = append(errs, "営業時間は必須です")
	} else {
		h := in.OpeningHours
		if strings.TrimSpace(h.Open) == "" {
			errs = append(errs, "開館時間は必須です")
		} else if !isTimeOfDay(h.Open) {
			errs = append(errs, "開館時間はHH:MM形式で入力してください")
		}
		if strings.TrimSpace(h.Close) == "" {
			errs = append(errs, "閉館時間は必須です")
		} else if !isTimeOfDay(h.Close) {
			errs = append(errs, "閉館時間はHH:MM形式で入力してください")
		}
		for _, d := range h.ClosedDays {
			if !contains(Weekdays, strings.TrimSpace(d)) {
				errs = append(errs, enumMessage("休館日", Weekdays))
				break
			}
		}
	}
	if in.Admission == nil {
		errs = append(errs, "料金情報は必須です")
	} else {
		ad := in.Admission
		if c := ad.Currency.orDefault(); !c.IsValid() {
			errs = append(errs, enumMessage("料金の通貨", Currencies))
		}
		if ad.Adult == nil {
			errs = append(errs, "大人料金は必須です")
		} else {
			errs = appendNonNegative(errs, "大人料金", *ad.Adult)
		}
		if ad.Child != nil {
			errs = appendNonNegative(errs, "子供料金", *ad.Child)
		}
		if ad.Senior != nil {
			errs = appendNonNegative(errs, "シニア料金", *ad.Senior)
		}
	}

	// 数値範囲
	errs = appendRating(errs, in.Rating)

	// 外部参照
	errs = appendTravelPlanRef(errs, in.TravelPlanID)

	return errs
}

// ValidateReview はレビューの入力を検証します。
func ValidateReview(in *ReviewInput) []string {
	var errs []string
	if isBlank(in.Author) {
		errs = append(errs, "投稿者名は必須です")
	}
	switch {
	case in.Rating == nil:
		errs = append(errs, "評価は必須です")
	case *in.Rating < 1 || *in.Rating > 5 || *in.Rating != math.Trunc(*in.Rating):
		errs = append(errs, "評価は1~5の整数で入力してください")
	}
	return errs
}

func validateLocation(l *Location, requireCoordinates bool) []string {
	if l == nil {
		return []string{"場所情報は必須です"}
	}
	var errs []string
	if strings.TrimSpace(l.Address) == "" {
		errs = append(errs, "住所は必須です")
	}
	if strings.TrimSpace(l.Prefecture) == "" {
		errs = append(errs, "都道府県は必須です")
	}
	if strings.TrimSpace(l.City) == "" {
		errs = append(errs, "市区町村は必須です")
	}
	if l.Coordinates == nil {
		if requireCoordinates {
			errs = append(errs, "座標は必須です")
		}
		return errs
	}
	if lat := l.Coordinates.Latitude; lat < -90 || lat > 90 {
		errs = append(errs, "緯度は-90~90の範囲で入力してください")
	}
	if lng := l.Coordinates.Longitude; lng < -180 || lng > 180 {
		errs = append(errs, "経度は-180~180の範囲で入力してください")
	}
	return errs
}

func appendRating(errs []string, rating *float64) []string {
	if rating != nil && (*rating < 0 || *rating > 5) {
		errs = append(errs, "評価は0~5の範囲で入力してください")
	}
	return errs
}

func appendTravelPlanRef(errs []string, ref *RefID) []string {
	if _, ok := ref.Int64(); !ok {
		errs = append(errs, "旅行プランIDは必須です (数値で指定してください)")
	}
	return errs
}

func appendNonNegative(errs []string, label string, v float64) []string {
	if v < 0 || math.IsNaN(v) {
		errs = append(errs, fmt.Sprintf("%sは0以上である必要があります", label))
	}
	return errs
}

func parseOptionalDate(s *string) (time.Time, bool) {
	if isBlank(s) {
		return time.Time{}, false
	}
	t, err := ParseDate(strings.TrimSpace(*s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func enumMessage[T ~string](label string, allowed []T) string {
	values := make([]string, 0, len(allowed))
	for _, v := range allowed {
		values = append(values, string(v))
	}
	return fmt.Sprintf("%sは以下のいずれかである必要があります: %s", label, strings.Join(values, ", "))
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// AccommodationTypeMessage は宿泊施設タイプが不正な場合のエラーメッセージを返します。
func AccommodationTypeMessage() string {
	return enumMessage("宿泊施設タイプ", AccommodationTypes)
}

// AttractionCategoryMessage はカテゴリが不正な場合のエラーメッセージを返します。
func AttractionCategoryMessage() string {
	return enumMessage("カテゴリ", AttractionCategories)
}
