package productcontroller

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Ramizraj19/B2B-nexus/apperrors"
	"github.com/Ramizraj19/B2B-nexus/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}))
	return db
}

func seedSeller(t *testing.T, db *gorm.DB, name string) models.User {
	t.Helper()
	user := models.User{
		ID:       uuid.NewString(),
		Email:    uuid.NewString() + "@example.com",
		Username: uuid.NewString(),
		FullName: name,
		Password: "hash",
		Role:     models.RoleSeller,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestCreateProduct(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db, "Acme Wholesale")

	t.Run("stamps seller and starts active", func(t *testing.T) {
		product, err := CreateProduct(db, seller, CreateProductRequest{
			Name:          "Widget",
			Price:         9.99,
			StockQuantity: 100,
			Category:      "hardware",
			Tags:          []string{"bulk", "metal"},
		})
		require.NoError(t, err)
		assert.Equal(t, seller.ID, product.SellerID)
		assert.Equal(t, "Acme Wholesale", product.SellerName)
		assert.True(t, product.IsActive)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, err := CreateProduct(db, seller, CreateProductRequest{Name: "Bad", Price: -1})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, err := CreateProduct(db, seller, CreateProductRequest{Name: "Bad", StockQuantity: -5})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestUpdateProductPartial(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db, "Acme")

	product, err := CreateProduct(db, seller, CreateProductRequest{
		Name:          "Widget",
		Description:   "original description",
		Price:         10,
		StockQuantity: 5,
	})
	require.NoError(t, err)

	newPrice := 12.5
	updated, err := UpdateProduct(db, seller, product.ID, UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	// only the present field changed
	assert.Equal(t, 12.5, updated.Price)
	assert.Equal(t, "Widget", updated.Name)
	assert.Equal(t, "original description", updated.Description)
	assert.Equal(t, 5, updated.StockQuantity)
	assert.False(t, updated.UpdatedAt.Before(product.UpdatedAt))
}

func TestUpdateProductValidation(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db, "Acme")
	product, err := CreateProduct(db, seller, CreateProductRequest{Name: "Widget", Price: 10, StockQuantity: 5})
	require.NoError(t, err)

	badPrice := -3.0
	_, err = UpdateProduct(db, seller, product.ID, UpdateProductRequest{Price: &badPrice})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	badStock := -1
	_, err = UpdateProduct(db, seller, product.ID, UpdateProductRequest{StockQuantity: &badStock})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProductOwnership(t *testing.T) {
	db := newTestDB(t)
	owner := seedSeller(t, db, "Owner")
	intruder := seedSeller(t, db, "Intruder")
	admin := models.User{ID: uuid.NewString(), Role: models.RoleAdmin, FullName: "Admin"}

	product, err := CreateProduct(db, owner, CreateProductRequest{Name: "Widget", Price: 10, StockQuantity: 5})
	require.NoError(t, err)

	name := "Renamed"
	_, err = UpdateProduct(db, intruder, product.ID, UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = DeactivateProduct(db, intruder, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	_, err = UpdateProduct(db, admin, product.ID, UpdateProductRequest{Name: &name})
	assert.NoError(t, err)

	assert.NoError(t, DeactivateProduct(db, admin, product.ID))
}

func TestDeactivateHidesProduct(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db, "Acme")
	product, err := CreateProduct(db, seller, CreateProductRequest{Name: "Widget", Price: 10, StockQuantity: 5})
	require.NoError(t, err)

	require.NoError(t, DeactivateProduct(db, seller, product.ID))

	_, err = GetProduct(db, product.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	products, err := ListProducts(db, ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)

	// deactivating is distinct from a missing record: update still resolves it
	name := "Still here"
	_, err = UpdateProduct(db, seller, product.ID, UpdateProductRequest{Name: &name})
	assert.NoError(t, err)
}

func TestGetProductMissing(t *testing.T) {
	db := newTestDB(t)
	_, err := GetProduct(db, uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestListProductsFilters(t *testing.T) {
	db := newTestDB(t)
	seller := seedSeller(t, db, "Acme")

	mustCreate := func(req CreateProductRequest) models.Product {
		product, err := CreateProduct(db, seller, req)
		require.NoError(t, err)
		return product
	}

	bolt := mustCreate(CreateProductRequest{
		Name: "Steel Bolt", Description: "zinc plated", Category: "hardware",
		Price: 2, StockQuantity: 1000, Tags: []string{"fastener"},
	})
	gear := mustCreate(CreateProductRequest{
		Name: "Brass Gear", Description: "precision machined", Category: "hardware",
		Price: 25, StockQuantity: 50, Tags: []string{"transmission"},
	})
	cloth := mustCreate(CreateProductRequest{
		Name: "Cotton Roll", Description: "raw fabric", Category: "textile",
		Price: 15, StockQuantity: 200, Tags: []string{"fabric", "fastener-free"},
	})

	t.Run("category exact match", func(t *testing.T) {
		products, err := ListProducts(db, ProductFilter{Category: "textile"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, cloth.ID, products[0].ID)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		products, err := ListProducts(db, ProductFilter{Search: "BOLT"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, bolt.ID, products[0].ID)
	})

	t.Run("search matches description", func(t *testing.T) {
		products, err := ListProducts(db, ProductFilter{Search: "machined"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, gear.ID, products[0].ID)
	})

	t.Run("search matches tags", func(t *testing.T) {
		products, err := ListProducts(db, ProductFilter{Search: "transmission"})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, gear.ID, products[0].ID)
	})

	t.Run("price range is inclusive", func(t *testing.T) {
		min, max := 15.0, 25.0
		products, err := ListProducts(db, ProductFilter{MinPrice: &min, MaxPrice: &max})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("filters compose conjunctively", func(t *testing.T) {
		min := 10.0
		products, err := ListProducts(db, ProductFilter{Category: "hardware", MinPrice: &min})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, gear.ID, products[0].ID)
	})

	t.Run("skip and limit paginate", func(t *testing.T) {
		page1, err := ListProducts(db, ProductFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page1, 2)

		page2, err := ListProducts(db, ProductFilter{Skip: 2, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page2, 1)
	})
}
