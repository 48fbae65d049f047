package handler

import (
	"net/http"
	"testing"

	"go-stockroom/internal/middleware"
	"go-stockroom/internal/repository"
	"go-stockroom/internal/service"
	"go-stockroom/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *fiber.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)

	operatorRepo := repository.NewOperatorRepo(db)
	dealerRepo := repository.NewDealerRepo(db)

	authService := service.NewAuthService(operatorRepo)
	dealerService := service.NewDealerService(dealerRepo, db)

	ah := NewAuthHandler(authService)
	dh := NewDealerHandler(dealerService)

	app := testutil.NewApp()
	app.Post("/auth/login", ah.Login)
	app.Post("/auth/reset-password", ah.ResetPassword)
	app.Post("/dealer/add", middleware.RequireAuth(operatorRepo), dh.CreateDealer)

	return db, app
}

func login(t *testing.T, app *fiber.App, email, password string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp := testutil.DoRequest(t, app, http.MethodPost, "/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	if resp.StatusCode != http.StatusOK {
		return resp, nil
	}
	return resp, testutil.ParseBody(t, resp)
}

func TestLoginIssuesUsableToken(t *testing.T) {
	db, app := setupAuthTest(t)
	testutil.SeedOperator(t, db, "operator@example.com", "operator123")

	resp, body := login(t, app, "operator@example.com", "operator123")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token in the login response")
	}
	operator := body["operator"].(map[string]interface{})
	if operator["email"] != "operator@example.com" {
		t.Fatalf("unexpected operator payload: %v", operator)
	}
	if _, hasPassword := operator["password"]; hasPassword {
		t.Fatal("password hash must not appear in the response")
	}

	// The token opens guarded write routes.
	resp = testutil.DoRequest(t, app, http.MethodPost, "/dealer/add", dealerPayload("Acme Corp"), token)
	if resp.StatusCode != fiber.StatusSeeOther {
		t.Fatalf("expected 303 with valid token, got %d", resp.StatusCode)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db, app := setupAuthTest(t)
	testutil.SeedOperator(t, db, "operator@example.com", "operator123")

	resp, _ := login(t, app, "operator@example.com", "wrong-password")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", resp.StatusCode)
	}

	resp, _ = login(t, app, "nobody@example.com", "operator123")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", resp.StatusCode)
	}
}

func TestGuardedRouteRequiresToken(t *testing.T) {
	_, app := setupAuthTest(t)

	resp := testutil.DoRequest(t, app, http.MethodPost, "/dealer/add", dealerPayload("Acme Corp"), "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	resp = testutil.DoRequest(t, app, http.MethodPost, "/dealer/add", dealerPayload("Acme Corp"), "not-a-jwt")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", resp.StatusCode)
	}
}

func TestLoginRotationInvalidatesOldToken(t *testing.T) {
	db, app := setupAuthTest(t)
	testutil.SeedOperator(t, db, "operator@example.com", "operator123")

	_, first := login(t, app, "operator@example.com", "operator123")
	oldToken := first["token"].(string)

	// A second login rotates the token version, killing the first session.
	if _, second := login(t, app, "operator@example.com", "operator123"); second["token"] == oldToken {
		t.Fatal("expected a fresh token on re-login")
	}

	resp := testutil.DoRequest(t, app, http.MethodPost, "/dealer/add", dealerPayload("Acme Corp"), oldToken)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected stale token to be rejected, got %d", resp.StatusCode)
	}
}

func TestResetPassword(t *testing.T) {
	db, app := setupAuthTest(t)
	testutil.SeedOperator(t, db, "operator@example.com", "operator123")

	resp := testutil.DoRequest(t, app, http.MethodPost, "/auth/reset-password", map[string]interface{}{
		"email":        "operator@example.com",
		"old_password": "operator123",
		"new_password": "fresh-secret",
	}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	if resp, _ := login(t, app, "operator@example.com", "operator123"); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected old password rejected, got %d", resp.StatusCode)
	}
	if resp, _ := login(t, app, "operator@example.com", "fresh-secret"); resp.StatusCode != http.StatusOK {
		t.Fatalf("expected new password accepted, got %d", resp.StatusCode)
	}
}
