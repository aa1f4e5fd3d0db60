// Package store は、データの永続化機能を提供します。
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stsysd/tabi/db"
	"github.com/stsysd/tabi/model"
)

// TravelPlanStore は旅行プランの保存と取得を行うインターフェースです。
type TravelPlanStore interface {
	// InsertTravelPlan は新しい旅行プランを保存し、採番されたIDを設定して返します。
	InsertTravelPlan(ctx context.Context, plan *model.TravelPlan) (*model.TravelPlan, error)
	// FindTravelPlanByID は指定されたIDの旅行プランを取得します。
	FindTravelPlanByID(ctx context.Context, id int64) (*model.TravelPlan, error)
	// FindAllTravelPlans は条件に一致する旅行プランを開始日の降順で取得します。
	FindAllTravelPlans(ctx context.Context, filter model.TravelPlanFilter) ([]*model.TravelPlan, error)
	// UpdateTravelPlanByID は旅行プランを更新し、更新された行数を返します。
	UpdateTravelPlanByID(ctx context.Context, plan *model.TravelPlan) (int64, error)
	// DeleteTravelPlanByID は旅行プランを削除し、削除された行数を返します。
	DeleteTravelPlanByID(ctx context.Context, id int64) (int64, error)
}

// AccommodationStore は宿泊施設の保存と取得を行うインターフェースです。
type AccommodationStore interface {
	InsertAccommodation(ctx context.Context, a *model.Accommodation) (*model.Accommodation, error)
	FindAccommodationByID(ctx context.Context, id int64) (*model.Accommodation, error)
	FindAllAccommodations(ctx context.Context, filter model.AccommodationFilter) ([]*model.Accommodation, error)
	FindAccommodationsByTravelPlan(ctx context.Context, planID int64) ([]*model.Accommodation, error)
	UpdateAccommodationByID(ctx context.Context, a *model.Accommodation) (int64, error)
	DeleteAccommodationByID(ctx context.Context, id int64) (int64, error)
	// AppendAccommodationReview は読み込みから書き込みまでを1つのトランザクションで行い、
	// apply で追加したレビューと再計算した評価を保存します。
	AppendAccommodationReview(ctx context.Context, id int64, apply func(*model.Accommodation) error) (*model.Accommodation, error)
}

// AttractionStore は観光地の保存と取得を行うインターフェースです。
type AttractionStore interface {
	InsertAttraction(ctx context.Context, a *model.Attraction) (*model.Attraction, error)
	FindAttractionByID(ctx context.Context, id int64) (*model.Attraction, error)
	FindAllAttractions(ctx context.Context, filter model.AttractionFilter) ([]*model.Attraction, error)
	FindAttractionsByTravelPlan(ctx context.Context, planID int64) ([]*model.Attraction, error)
	UpdateAttractionByID(ctx context.Context, a *model.Attraction) (int64, error)
	DeleteAttractionByID(ctx context.Context, id int64) (int64, error)
	AppendAttractionReview(ctx context.Context, id int64, apply func(*model.Attraction) error) (*model.Attraction, error)
}

// Store はすべてのコレクションをまとめたインターフェースです。
type Store interface {
	TravelPlanStore
	AccommodationStore
	AttractionStore
	// Ping はデータベースへの接続を確認します。
	Ping(ctx context.Context) error
	// Close はストアの接続を閉じます。
	Close() error
}

// MigrateFunc はデータベースのマイグレーションを行う関数です。
type MigrateFunc func(conn *sql.DB) error

// SQLiteStore はSQLiteを使用したStoreの実装です。
type SQLiteStore struct {
	conn    *sql.DB
	queries *db.Queries
}

var _ Store = (*SQLiteStore)(nil)

// DatabaseFile はデータディレクトリ内のデータベースファイル名です。
const DatabaseFile = "tabi.db"

// OpenDB はデータディレクトリ内のSQLiteデータベースを開きます。
// トランザクションは BEGIN IMMEDIATE で開始されるため、書き込みを伴う処理は直列化されます。
func OpenDB(dataDir string) (*sql.DB, error) {
	// データディレクトリの作成（存在しない場合）
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_txlock=immediate&_busy_timeout=5000", filepath.Join(dataDir, DatabaseFile))
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}
	return conn, nil
}

// NewSQLiteStore は新しいSQLiteStoreを作成します。
func NewSQLiteStore(dataDir string, migrate MigrateFunc) (*SQLiteStore, error) {
	conn, err := OpenDB(dataDir)
	if err != nil {
		return nil, err
	}

	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteStore{
		conn:    conn,
		queries: db.New(conn),
	}, nil
}

// Ping はデータベースへの接続を確認します。
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

// Close はデータベース接続を閉じます。
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// withTx はトランザクション内で fn を実行し、成功した場合のみコミットします。
func (s *SQLiteStore) withTx(ctx context.Context, fn func(q *db.Queries) error) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// トランザクションをロールバックするための遅延関数
	defer func() {
		if tx != nil {
			tx.Rollback() // 成功した場合は既にnilになっているためエラーは無視
		}
	}()

	if err := fn(s.queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	tx = nil // コミットが成功したのでnilにして遅延関数でのロールバックを防ぐ

	return nil
}

// 日時は辞書順と時系列順が一致するよう、UTCの固定長文字列で保存する
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(column, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", column, err)
	}
	return t, nil
}

func encodeJSON(column string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s: %w", column, err)
	}
	return string(b), nil
}

func decodeJSON(column, s string, v any) error {
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", column, err)
	}
	return nil
}

// jsonColumns はJSON列のエンコードをまとめて行い、最初のエラーを保持します。
type jsonColumns struct {
	err error
}

func (c *jsonColumns) encode(column string, v any) string {
	if c.err != nil {
		return ""
	}
	s, err := encodeJSON(column, v)
	c.err = err
	return s
}

func (c *jsonColumns) decode(column, s string, v any) {
	if c.err != nil {
		return
	}
	c.err = decodeJSON(column, s, v)
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}

func idOf(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	id := n.Int64
	return &id
}

func coordinatesColumns(c *model.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Latitude, Valid: true}, sql.NullFloat64{Float64: c.Longitude, Valid: true}
}

func coordinatesOf(lat, lng sql.NullFloat64) *model.Coordinates {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &model.Coordinates{Latitude: lat.Float64, Longitude: lng.Float64}
}

// isUniqueViolation は一意制約違反のエラーかどうかを返します。
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
