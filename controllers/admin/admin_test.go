package admincontroller

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}))
	return db
}

func TestGetAnalytics(t *testing.T) {
	db := newTestDB(t)

	t.Run("empty platform", func(t *testing.T) {
		a, err := GetAnalytics(db)
		require.NoError(t, err)
		assert.Zero(t, a.TotalUsers)
		assert.Zero(t, a.TotalProducts)
		assert.Zero(t, a.TotalOrders)
		assert.Zero(t, a.TotalRevenue)
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.User{
			ID:       uuid.NewString(),
			Email:    uuid.NewString() + "@example.com",
			Username: uuid.NewString(),
			Password: "hash",
			Role:     models.RoleBuyer,
			IsActive: true,
		}).Error)
	}

	active := models.Product{ID: uuid.NewString(), Name: "Active", SellerID: "s1", IsActive: true}
	require.NoError(t, db.Create(&active).Error)
	inactive := models.Product{ID: uuid.NewString(), Name: "Inactive", SellerID: "s1", IsActive: true}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", inactive.ID).Update("is_active", false).Error)

	require.NoError(t, db.Create(&models.Order{
		ID: uuid.NewString(), BuyerID: "b1", SellerID: "s1",
		TotalAmount: 100, Status: models.OrderStatusPending,
	}).Error)
	require.NoError(t, db.Create(&models.Order{
		ID: uuid.NewString(), BuyerID: "b2", SellerID: "s1",
		TotalAmount: 50, Status: models.OrderStatusDelivered,
	}).Error)

	a, err := GetAnalytics(db)
	require.NoError(t, err)
	assert.Equal(t, int64(3), a.TotalUsers)
	assert.Equal(t, int64(1), a.TotalProducts) // deactivated products excluded
	assert.Equal(t, int64(2), a.TotalOrders)
	assert.Equal(t, 150.0, a.TotalRevenue)
}
