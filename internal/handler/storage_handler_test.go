package handler

import (
	"net/http"
	"testing"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupStorageTest(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	dealerRepo := repository.NewDealerRepo(db)
	storageRepo := repository.NewStorageRepo(db)
	productRepo := repository.NewProductRepo(db)

	dealerService := service.NewDealerService(dealerRepo, db)
	storageService := service.NewStorageService(storageRepo, dealerRepo, db)
	productService := service.NewProductService(productRepo, storageRepo, db)

	sh := NewStorageHandler(storageService, dealerService)
	ph := NewProductHandler(productService, storageService)

	app := testutil.NewApp()
	app.Get("/storage", sh.ListStorage)
	app.Get("/storage/add", sh.NewStorageForm)
	app.Post("/storage/add", sh.CreateStorage)
	app.Get("/storage/edit/:id", sh.EditStorageForm)
	app.Post("/storage/edit/:id", sh.UpdateStorage)
	app.Post("/storage/delete/:id", sh.DeleteStorage)
	app.Get("/product/edit/:id", ph.EditProductForm)

	return db, app
}

func storagePayload(dealerID uint) map[string]interface{} {
	return map[string]interface{}{
		"base_name":              "Steel Rod",
		"defined_name_with_spec": "Steel Rod 12mm TMT",
		"brand":                  "Tata",
		"hsn_code":               "7214",
		"dealer_id":              itoa(dealerID),
		"tax":                    "0.18",
		"current_stock":          "250.5",
		"units":                  "Kgs",
	}
}

func TestStorageCreateRoundTrip(t *testing.T) {
	db, app := setupStorageTest(t)
	dealer := testutil.SeedDealer(t, db, "Acme Corp")

	resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/add", storagePayload(dealer.ID), "")
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	resp = testutil.DoRequest(t, app, http.MethodGet, "/storage", nil, "")
	list := testutil.ParseList(t, resp)
	if len(list) != 1 {
		t.Fatalf("expected 1 storage row, got %d", len(list))
	}
	got := list[0]
	if got["base_name"] != "Steel Rod" || got["brand"] != "Tata" || got["units"] != "Kgs" {
		t.Fatalf("unexpected storage row: %v", got)
	}
	if got["tax"] != "0.18" || got["current_stock"] != "250.5" {
		t.Fatalf("expected exact decimal round-trip, got tax=%v stock=%v", got["tax"], got["current_stock"])
	}
	// List view carries the owning dealer for display
	owner := got["dealer"].(map[string]interface{})
	if owner["name"] != "Acme Corp" {
		t.Fatalf("expected dealer preloaded, got %v", got["dealer"])
	}
}

func TestStorageCreateUnknownDealer(t *testing.T) {
	db, app := setupStorageTest(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/add", storagePayload(9999), "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	fields := testutil.ParseBody(t, resp)["fields"].([]interface{})
	first := fields[0].(map[string]interface{})
	if first["field"] != "dealer_id" {
		t.Fatalf("expected error on dealer_id, got %v", first["field"])
	}

	var count int64
	db.Model(&model.Storage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected nothing persisted, got %d rows", count)
	}
}

func TestStorageCreateRejectsBadInput(t *testing.T) {
	db, app := setupStorageTest(t)
	dealer := testutil.SeedDealer(t, db, "Acme Corp")

	cases := []struct {
		name  string
		field string
		value string
	}{
		{"non-numeric tax", "tax", "abc"},
		{"negative stock", "current_stock", "-5"},
		{"unlisted unit", "units", "Tons"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := storagePayload(dealer.ID)
			payload[tc.field] = tc.value
			resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/add", payload, "")
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			fields := testutil.ParseBody(t, resp)["fields"].([]interface{})
			first := fields[0].(map[string]interface{})
			if first["field"] != tc.field {
				t.Fatalf("expected error on %s, got %v", tc.field, first["field"])
			}
		})
	}

	var count int64
	db.Model(&model.Storage{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected nothing persisted, got %d rows", count)
	}
}

func TestStorageSearch(t *testing.T) {
	db, app := setupStorageTest(t)
	dealer := testutil.SeedDealer(t, db, "Acme Corp")
	testutil.SeedStorage(t, db, dealer.ID, "Steel Rod", "Tata")
	testutil.SeedStorage(t, db, dealer.ID, "Copper Wire", "Finolex")

	// Matches are case-insensitive across base name, defined name and brand.
	for query, want := range map[string]string{
		"STEEL":   "Steel Rod",
		"finolex": "Copper Wire",
	} {
		resp := testutil.DoRequest(t, app, http.MethodGet, "/storage?q="+query, nil, "")
		list := testutil.ParseList(t, resp)
		if len(list) != 1 || list[0]["base_name"] != want {
			t.Fatalf("query %q: expected only %q, got %v", query, want, list)
		}
	}

	resp := testutil.DoRequest(t, app, http.MethodGet, "/storage", nil, "")
	if list := testutil.ParseList(t, resp); len(list) != 2 {
		t.Fatalf("expected 2 rows without filter, got %d", len(list))
	}
}

func TestStorageFormContext(t *testing.T) {
	db, app := setupStorageTest(t)
	testutil.SeedDealer(t, db, "Acme Corp")

	resp := testutil.DoRequest(t, app, http.MethodGet, "/storage/add", nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := testutil.ParseBody(t, resp)
	if dealers := body["dealers"].([]interface{}); len(dealers) != 1 {
		t.Fatalf("expected 1 dealer in form context, got %d", len(dealers))
	}
	units := body["units_list"].([]interface{})
	if len(units) != len(model.UnitsList) || units[0] != "Nos" {
		t.Fatalf("unexpected units list: %v", units)
	}
}

func TestStorageUpdateFullReplace(t *testing.T) {
	db, app := setupStorageTest(t)
	acme := testutil.SeedDealer(t, db, "Acme Corp")
	bharat := testutil.SeedDealer(t, db, "Bharat Steels")
	storage := testutil.SeedStorage(t, db, acme.ID, "Steel Rod", "Tata")

	payload := map[string]interface{}{
		"base_name":              "Steel Rod",
		"defined_name_with_spec": "Steel Rod 16mm TMT",
		"brand":                  "JSW",
		"hsn_code":               "7215",
		"dealer_id":              itoa(bharat.ID),
		"tax":                    "0.12",
		"current_stock":          "75",
		"units":                  "pieces",
	}
	resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/edit/"+itoa(storage.ID), payload, "")
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	var got model.Storage
	if err := db.First(&got, storage.ID).Error; err != nil {
		t.Fatalf("reload storage: %v", err)
	}
	if got.DealerID != bharat.ID || got.Brand != "JSW" || got.Units != "pieces" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Tax.String() != "0.12" || got.CurrentStock.String() != "75" {
		t.Fatalf("decimals not replaced: tax=%s stock=%s", got.Tax, got.CurrentStock)
	}
}

func TestStorageUpdateUnknownID(t *testing.T) {
	db, app := setupStorageTest(t)
	dealer := testutil.SeedDealer(t, db, "Acme Corp")

	resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/edit/9999", storagePayload(dealer.ID), "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestStorageDeleteDetachesFromProducts(t *testing.T) {
	db, app := setupStorageTest(t)
	dealer := testutil.SeedDealer(t, db, "Acme Corp")
	rod := testutil.SeedStorage(t, db, dealer.ID, "Steel Rod", "Tata")
	wire := testutil.SeedStorage(t, db, dealer.ID, "Copper Wire", "Finolex")
	product := testutil.SeedProduct(t, db, "Bracket", *rod, *wire)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/storage/delete/"+itoa(rod.ID), nil, "")
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	// The product survives with the remaining material only.
	resp = testutil.DoRequest(t, app, http.MethodGet, "/product/edit/"+itoa(product.ID), nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected product to survive, got %d", resp.StatusCode)
	}
	got := testutil.ParseBody(t, resp)["product"].(map[string]interface{})
	materials := got["raw_materials_used"].([]interface{})
	if len(materials) != 1 {
		t.Fatalf("expected 1 remaining material, got %d", len(materials))
	}
	remaining := materials[0].(map[string]interface{})
	if uint(remaining["id"].(float64)) != wire.ID {
		t.Fatalf("expected Copper Wire to remain, got %v", remaining)
	}

	resp = testutil.DoRequest(t, app, http.MethodPost, "/storage/delete/"+itoa(rod.ID), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on repeated delete, got %d", resp.StatusCode)
	}
}
