package services_test

import (
	"context"
	"testing"

	"pos-api/internal/models"
	"pos-api/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestPurchase_SingleLine_ExactTotal(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "A1", "Widget", "9.99")

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(context.Background(), []services.PurchaseLine{
		{ProductID: product.ProductID, Quantity: 3},
	})

	require.NoError(t, err)
	assert.NotZero(t, result.TransactionID)
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("29.97")),
		"expected total 29.97, got %s", result.TotalAmount)

	var header models.Transaction
	require.NoError(t, db.First(&header, result.TransactionID).Error)
	assert.True(t, header.TotalAmount.Equal(result.TotalAmount))

	var details []models.TransactionDetail
	require.NoError(t, db.Where("\"TRD_ID\" = ?", result.TransactionID).Find(&details).Error)
	require.Len(t, details, 1)
	assert.Equal(t, product.ProductID, details[0].ProductID)
	assert.Equal(t, "A1", details[0].ProductCode)
	assert.Equal(t, "Widget", details[0].ProductName)
	assert.True(t, details[0].ProductPrice.Equal(product.Price))
	assert.Equal(t, 3, details[0].Quantity)
}

func TestPurchase_MultiLine_SumsInInputOrder(t *testing.T) {
	db := setupTestDB(t)
	widget := createProduct(t, db, "A1", "Widget", "9.99")
	gadget := createProduct(t, db, "B2", "Gadget", "14.50")

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(context.Background(), []services.PurchaseLine{
		{ProductID: gadget.ProductID, Quantity: 2},
		{ProductID: widget.ProductID, Quantity: 1},
	})

	require.NoError(t, err)
	// 14.50*2 + 9.99 = 38.99
	assert.True(t, result.TotalAmount.Equal(decimal.RequireFromString("38.99")),
		"expected total 38.99, got %s", result.TotalAmount)

	var details []models.TransactionDetail
	require.NoError(t, db.Where("\"TRD_ID\" = ?", result.TransactionID).
		Order("\"DTL_ID\"").Find(&details).Error)
	require.Len(t, details, 2)
	assert.Equal(t, "B2", details[0].ProductCode)
	assert.Equal(t, "A1", details[1].ProductCode)
}

func TestPurchase_MissingProduct_RollsBackEverything(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "A1", "Widget", "9.99")

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(context.Background(), []services.PurchaseLine{
		{ProductID: product.ProductID, Quantity: 2},
		{ProductID: 999, Quantity: 1},
	})

	assert.Nil(t, result)

	var notFound *services.ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(999), notFound.ProductID)

	// Nothing from the failed call may remain visible
	assert.Zero(t, countRows(t, db, &models.Transaction{}))
	assert.Zero(t, countRows(t, db, &models.TransactionDetail{}))
}

func TestPurchase_EmptyLines_ZeroTotal(t *testing.T) {
	db := setupTestDB(t)

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, result.TotalAmount.IsZero())
	assert.Equal(t, int64(1), countRows(t, db, &models.Transaction{}))
	assert.Zero(t, countRows(t, db, &models.TransactionDetail{}))
}

func TestPurchase_SnapshotSurvivesPriceChange(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "A1", "Widget", "9.99")

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(context.Background(), []services.PurchaseLine{
		{ProductID: product.ProductID, Quantity: 1},
	})
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Product{}).
		Where("\"PRD_ID\" = ?", product.ProductID).
		Update("PRICE", decimal.RequireFromString("19.99")).Error)

	var detail models.TransactionDetail
	require.NoError(t, db.Where("\"TRD_ID\" = ?", result.TransactionID).First(&detail).Error)
	assert.True(t, detail.ProductPrice.Equal(decimal.RequireFromString("9.99")),
		"recorded snapshot must keep the purchase-time price, got %s", detail.ProductPrice)

	catalog := services.NewCatalogService(db, nil)
	current, err := catalog.GetProductByID(context.Background(), product.ProductID)
	require.NoError(t, err)
	assert.True(t, current.Price.Equal(decimal.RequireFromString("19.99")))
}

func TestPurchase_CancelledContext_Aborts(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "A1", "Widget", "9.99")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	purchase := services.NewPurchaseService(db)
	result, err := purchase.Purchase(ctx, []services.PurchaseLine{
		{ProductID: product.ProductID, Quantity: 1},
	})

	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Zero(t, countRows(t, db, &models.Transaction{}))
}
