// Package entity defines the domain models for the tickers feature.
package entity

// Ticker is an allow-listed symbol that the API serves data for.
type Ticker struct {
	ID       uint   `gorm:"primaryKey"`
	Symbol   string `gorm:"size:20;not null;uniqueIndex"`
	Name     string `gorm:"size:255;not null"`
	Sector   string `gorm:"size:100"`
	Industry string `gorm:"size:255"`
}

// TableName keeps the table name shared with existing databases.
func (Ticker) TableName() string { return "stock_symbols" }
