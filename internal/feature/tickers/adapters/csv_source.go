package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"finmetrics_backend/internal/feature/tickers/domain/entity"
	"finmetrics_backend/internal/feature/tickers/usecase"
)

// CSV column headers of the constituent list.
const (
	colSymbol   = "Symbol"
	colName     = "Security"
	colSector   = "GICS Sector"
	colIndustry = "GICS Sub-Industry"
)

// CSVSource は構成銘柄のCSVファイルから銘柄を読み込みます。
type CSVSource struct {
	path string
}

var _ usecase.TickerSource = (*CSVSource)(nil)

// NewCSVSource は path のCSVを読むCSVSourceを生成します。
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Load はCSVの全行を読み込みます。SymbolまたはSecurityが空の行は読み飛ばします。
func (s *CSVSource) Load(ctx context.Context) ([]entity.Ticker, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open tickers csv: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close tickers csv", "path", s.path, "error", err)
		}
	}()
	return ParseCSV(ctx, f)
}

// ParseCSV はヘッダー付きCSVを銘柄に変換します。
func ParseCSV(ctx context.Context, r io.Reader) ([]entity.Ticker, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	if _, ok := idx[colSymbol]; !ok {
		return nil, fmt.Errorf("csv header has no %q column", colSymbol)
	}
	if _, ok := idx[colName]; !ok {
		return nil, fmt.Errorf("csv header has no %q column", colName)
	}

	field := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var tickers []entity.Ticker
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}

		t := entity.Ticker{
			Symbol:   field(rec, colSymbol),
			Name:     field(rec, colName),
			Sector:   field(rec, colSector),
			Industry: field(rec, colIndustry),
		}
		if t.Symbol == "" || t.Name == "" {
			continue
		}
		tickers = append(tickers, t)
	}
	return tickers, nil
}
