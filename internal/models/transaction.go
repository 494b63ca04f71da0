package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a purchase header. TOTAL_AMT starts at zero and is written
// exactly once, after every line of the purchase has been recorded.
type Transaction struct {
	TransactionID uint            `json:"TRD_ID" gorm:"column:TRD_ID;primaryKey;autoIncrement"`
	TotalAmount   decimal.Decimal `json:"TOTAL_AMT" gorm:"column:TOTAL_AMT;type:decimal(12,2);not null"`
	CreatedAt     time.Time       `json:"created_at" gorm:"autoCreateTime"`

	// relations
	Details []TransactionDetail `json:"-" gorm:"foreignKey:TransactionID;references:TransactionID"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "transactions"
}

// TransactionDetail is one purchased line. Product code, name and price are
// snapshots taken at purchase time, so later catalog edits never rewrite
// history.
type TransactionDetail struct {
	DetailID      uint            `json:"DTL_ID" gorm:"column:DTL_ID;primaryKey;autoIncrement"`
	TransactionID uint            `json:"TRD_ID" gorm:"column:TRD_ID;not null;index"`
	ProductID     uint            `json:"PRD_ID" gorm:"column:PRD_ID;not null"`
	ProductCode   string          `json:"PRD_CODE" gorm:"column:PRD_CODE;size:50;not null"`
	ProductName   string          `json:"PRD_NAME" gorm:"column:PRD_NAME;size:100;not null"`
	ProductPrice  decimal.Decimal `json:"PRD_PRICE" gorm:"column:PRD_PRICE;type:decimal(12,2);not null"`
	Quantity      int             `json:"QUANTITY" gorm:"column:QUANTITY;not null"`
}

// TableName specifies the table name
func (TransactionDetail) TableName() string {
	return "transaction_details"
}
