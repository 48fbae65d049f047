package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"go-stockroom/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const TestSchema = "test_stockroom"

// projectRoot returns the project root directory by looking for go.mod
func projectRoot() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// loadEnv loads .env from the project root
func loadEnv() {
	root := projectRoot()
	if root != "" {
		godotenv.Load(filepath.Join(root, ".env"))
	}
}

// SetupTestDB creates a test database connection using a dedicated test
// schema. Each test gets an isolated schema that is cleaned up after the test.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	loadEnv()

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "stockroom")
	password := getEnv("DB_PASSWORD", "stockroom123")
	dbname := getEnv("DB_NAME", "stockroom")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	schemaName := fmt.Sprintf("%s_%d", TestSchema, time.Now().UnixNano()%1000000)

	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to database for schema setup: %v", err)
	}
	setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName))
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// search_path in the DSN so all pooled connections use the test schema
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Dealer{},
		&model.Storage{},
		&model.Product{},
		&model.BOM{},
		&model.PurchaseOrder{},
		&model.MaterialInward{},
		&model.MaterialOutward{},
		&model.Section{},
		&model.Operator{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// NewApp creates a fiber app for tests, without request logging.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{DisableStartupMessage: true})
}

// DoRequest executes an HTTP request against the test app. Bodies are sent as
// JSON; the handlers accept JSON and form bodies alike. Redirects are not
// followed, so post-submit responses surface as 303.
func DoRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	return resp
}

// ParseBody parses a JSON response body into a generic map.
func ParseBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("Failed to parse response body %q: %v", raw, err)
	}
	return result
}

// ParseList parses a JSON array response body.
func ParseList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	var result []map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("Failed to parse response body %q: %v", raw, err)
	}
	return result
}

// SeedDealer creates a dealer row directly in the database.
func SeedDealer(t *testing.T, db *gorm.DB, name string) *model.Dealer {
	t.Helper()
	dealer := &model.Dealer{
		Name:    name,
		Address: "12 Industrial Estate",
		State:   "Tamil Nadu",
		Country: "India",
		Email:   "sales@example.com",
	}
	if err := db.Create(dealer).Error; err != nil {
		t.Fatalf("Failed to seed dealer: %v", err)
	}
	return dealer
}

// SeedStorage creates a storage row owned by the given dealer.
func SeedStorage(t *testing.T, db *gorm.DB, dealerID uint, baseName, brand string) *model.Storage {
	t.Helper()
	storage := &model.Storage{
		BaseName:            baseName,
		DefinedNameWithSpec: baseName + " 8mm",
		Brand:               brand,
		HSNCode:             "7214",
		DealerID:            dealerID,
		Tax:                 decimal.RequireFromString("0.18"),
		CurrentStock:        decimal.RequireFromString("100"),
		Units:               model.UnitKgs,
	}
	if err := db.Create(storage).Error; err != nil {
		t.Fatalf("Failed to seed storage: %v", err)
	}
	return storage
}

// SeedProduct creates a product with the given raw materials.
func SeedProduct(t *testing.T, db *gorm.DB, name string, materials ...model.Storage) *model.Product {
	t.Helper()
	product := &model.Product{
		ProductName:      name,
		SectionName:      "Fabrication",
		Qty:              10,
		Stock:            5,
		RawMaterialsUsed: materials,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("Failed to seed product: %v", err)
	}
	return product
}

// SeedOperator creates an active operator account.
func SeedOperator(t *testing.T, db *gorm.DB, email, password string) *model.Operator {
	t.Helper()
	op := &model.Operator{
		Email:    email,
		FullName: "Test Operator",
		IsActive: true,
	}
	if err := op.SetPassword(password); err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	if err := db.Create(op).Error; err != nil {
		t.Fatalf("Failed to seed operator: %v", err)
	}
	return op
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
