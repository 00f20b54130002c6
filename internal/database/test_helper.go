package database

import (
	"testing"
	"time"

	"lunargrid/internal/config"
	"lunargrid/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CreateTestTransaction(t *testing.T, db *DB, userID uuid.UUID, txType, category, subcategory string, amount float64, date time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      decimal.NewFromFloat(amount),
		Date:        date,
		Category:    category,
		Subcategory: subcategory,
	}

	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	return tx
}

func CreateTestCategory(t *testing.T, db *DB, userID uuid.UUID, name, catType string, subcategories ...string) *models.CategoryDefinition {
	t.Helper()

	def := &models.CategoryDefinition{
		UserID: userID,
		Name:   name,
		Type:   catType,
	}
	for i, sub := range subcategories {
		def.Subcategories = append(def.Subcategories, models.SubcategoryDefinition{
			Name:     sub,
			Position: i,
		})
	}

	if err := db.Create(def).Error; err != nil {
		t.Fatalf("failed to create test category: %v", err)
	}

	return def
}
