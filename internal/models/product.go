package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a catalog item. The catalog itself is maintained by an
// external process; this service only reads it.
type Product struct {
	ProductID uint            `json:"PRD_ID" gorm:"column:PRD_ID;primaryKey;autoIncrement"`
	Code      string          `json:"CODE" gorm:"column:CODE;size:50;not null;index"`
	Name      string          `json:"NAME" gorm:"column:NAME;size:100;not null"`
	Price     decimal.Decimal `json:"PRICE" gorm:"column:PRICE;type:decimal(12,2);not null"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}
