// Package adapters はtickersフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finmetrics_backend/internal/feature/tickers/domain/entity"
	"finmetrics_backend/internal/feature/tickers/usecase"
)

const upsertBatchSize = 200

// tickerRepository はTickerRepositoryインターフェースのgorm実装です。SQLiteとPostgreSQLの両方で動作します。
type tickerRepository struct {
	db *gorm.DB
}

var (
	_ usecase.TickerRepository = (*tickerRepository)(nil)
	_ usecase.SeedRepository   = (*tickerRepository)(nil)
)

// NewTickerRepository は指定されたDB接続でtickerRepositoryの新しいインスタンスを生成します。
func NewTickerRepository(db *gorm.DB) *tickerRepository {
	return &tickerRepository{db: db}
}

// Migrate はstock_symbolsテーブルを作成または更新します。
func (r *tickerRepository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&entity.Ticker{})
}

// Exists は銘柄が許可リストに含まれるかを返します。大文字小文字は区別します。
func (r *tickerRepository) Exists(ctx context.Context, symbol string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Ticker{}).
		Where("symbol = ?", symbol).
		Limit(1).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListByPrefix はsymbol順に prefix で始まる銘柄を最大 limit 件返します。prefix が空の場合は全件が対象です。
func (r *tickerRepository) ListByPrefix(ctx context.Context, prefix string, limit int) ([]entity.Ticker, error) {
	q := r.db.WithContext(ctx).Order("symbol ASC").Limit(limit)
	if prefix != "" {
		q = q.Where("symbol LIKE ?", strings.ToUpper(prefix)+"%")
	}

	var tickers []entity.Ticker
	if err := q.Find(&tickers).Error; err != nil {
		return nil, err
	}
	return tickers, nil
}

// Count は登録済みの銘柄数を返します。
func (r *tickerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Ticker{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// UpsertBatch は銘柄を一括登録します。既存のsymbolは変更しません（INSERT OR IGNORE相当）。
func (r *tickerRepository) UpsertBatch(ctx context.Context, tickers []entity.Ticker) error {
	if len(tickers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "symbol"}}, DoNothing: true}).
		CreateInBatches(&tickers, upsertBatchSize).Error
}
