package testutil

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/kendall-kelly/ecommerce-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// RunWithTestEnvironment is meant to be called from TestMain. It refuses to
// run tests when GO_ENV names another environment, so a stray DATABASE_URL
// from development or production is never touched. An unset GO_ENV is
// switched to "test".
func RunWithTestEnvironment(m *testing.M) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		os.Setenv("GO_ENV", "test")
		env = "test"
	}
	if env != "test" {
		fmt.Fprintf(os.Stderr, "\n"+
			"╔════════════════════════════════════════════════════════════════╗\n"+
			"║                    SAFETY CHECK FAILED                         ║\n"+
			"║                                                                ║\n"+
			"║  Tests must run with GO_ENV=test to prevent data loss!        ║\n"+
			"║                                                                ║\n"+
			"║  Current GO_ENV: %-45s ║\n"+
			"║                                                                ║\n"+
			"║  To run tests safely:                                          ║\n"+
			"║    GO_ENV=test go test ./...                                   ║\n"+
			"╚════════════════════════════════════════════════════════════════╝\n\n",
			fmt.Sprintf("%q", env))
		os.Exit(1)
	}

	os.Exit(m.Run())
}

// NewTestDB opens a private in-memory SQLite database with every table
// migrated. It is closed automatically when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get test database instance: %v", err)
	}
	// Every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// SeedUser inserts a user and returns it
func SeedUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()
	user := models.User{Name: name, Address: "42 Test Street", Email: email}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

// SeedProduct inserts a product and returns it
func SeedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

// SeedOrder inserts an order for userID and returns it
func SeedOrder(t *testing.T, db *gorm.DB, userID uint) models.Order {
	t.Helper()
	order := models.Order{UserID: userID, OrderDate: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	if err := db.Omit("User").Create(&order).Error; err != nil {
		t.Fatalf("Failed to seed order: %v", err)
	}
	return order
}

// LinkProduct adds productID to orderID directly in the database
func LinkProduct(t *testing.T, db *gorm.DB, orderID, productID uint) {
	t.Helper()
	link := models.OrderProduct{OrderID: orderID, ProductID: productID}
	if err := db.Omit("Order", "Product").Create(&link).Error; err != nil {
		t.Fatalf("Failed to link product %d to order %d: %v", productID, orderID, err)
	}
}
