package services

import (
	"context"
	"fmt"

	"pos-api/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PurchaseLine is one requested line item of a purchase.
type PurchaseLine struct {
	ProductID uint
	Quantity  int
}

// PurchaseResult is the outcome of a committed purchase.
type PurchaseResult struct {
	TransactionID uint
	TotalAmount   decimal.Decimal
}

// PurchaseService records purchases. It owns the Transaction and
// TransactionDetail lifecycle for the duration of each call.
type PurchaseService struct {
	db *gorm.DB
}

// NewPurchaseService creates a new purchase service over the given
// connection pool
func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// Purchase records a multi-line purchase as a single unit of work: one
// transaction header, one snapshot detail per line, and the final total,
// committed all-or-nothing. A missing product on any line aborts the whole
// call with a ProductNotFoundError naming that line's product ID; no partial
// purchase is ever visible after a failure.
//
// Lines are processed strictly in input order. An empty line list is valid
// here and yields a zero-total transaction with no details; rejecting empty
// requests is the HTTP layer's policy.
func (s *PurchaseService) Purchase(ctx context.Context, lines []PurchaseLine) (*PurchaseResult, error) {
	var purchaseResult *PurchaseResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Create the transaction header with a zero total. The assigned
		// ID becomes visible to the steps below within the same tx.
		transaction := models.Transaction{TotalAmount: decimal.Zero}
		if err := tx.Create(&transaction).Error; err != nil {
			return fmt.Errorf("failed to create transaction: %w", err)
		}

		// 2. Snapshot each line against the catalog, in input order
		totalAmount := decimal.Zero
		for _, line := range lines {
			product, err := lookupProductByID(tx, line.ProductID)
			if err != nil {
				return err
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			totalAmount = totalAmount.Add(lineTotal)

			detail := models.TransactionDetail{
				TransactionID: transaction.TransactionID,
				ProductID:     product.ProductID,
				ProductCode:   product.Code,
				ProductName:   product.Name,
				ProductPrice:  product.Price,
				Quantity:      line.Quantity,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return fmt.Errorf("failed to create transaction detail: %w", err)
			}
		}

		// 3. Finalize the total, written exactly once
		result := tx.Model(&models.Transaction{}).
			Where("\"TRD_ID\" = ?", transaction.TransactionID).
			Update("TOTAL_AMT", totalAmount)
		if result.Error != nil {
			return fmt.Errorf("failed to finalize transaction total: %w", result.Error)
		}

		purchaseResult = &PurchaseResult{
			TransactionID: transaction.TransactionID,
			TotalAmount:   totalAmount,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchaseResult, nil
}
