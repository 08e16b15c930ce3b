package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lpo-tracker/internal/adapters/http/middleware"
	"lpo-tracker/internal/adapters/persistence/models"
	"lpo-tracker/internal/config"
	"lpo-tracker/internal/core/domain"
	"lpo-tracker/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-access-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
	config.AppConfig = cfg

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.CustomErrorHandler,
	})
	Setup(app, db, cfg)

	return app, db
}

func createUser(t *testing.T, db *gorm.DB, name, email, plaintext, role string) *models.User {
	t.Helper()

	hashed, err := password.Hash(plaintext)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, Password: hashed, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var parsed map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed
}

func loginToken(t *testing.T, app *fiber.App, email, plaintext string) string {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/login", "", fiber.Map{
		"email":    email,
		"password": plaintext,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	return token
}

func TestLoginEndpoint(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Admin", "admin@example.com", "admin123456", "admin")

	resp, body := doJSON(t, app, http.MethodPost, "/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123456",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doJSON(t, app, http.MethodPost, "/login", "", fiber.Map{
		"email":    "admin@example.com",
		"password": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "auth_error", body["kind"])

	resp, _ = doJSON(t, app, http.MethodPost, "/login", "", fiber.Map{
		"email": "admin@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserAdminGate(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Admin", "admin@example.com", "admin123456", "admin")
	createUser(t, db, "Alice", "alice@example.com", "password123", "user")

	adminToken := loginToken(t, app, "admin@example.com", "admin123456")
	userToken := loginToken(t, app, "alice@example.com", "password123")

	newUser := fiber.Map{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "pw",
		"role":     "user",
	}

	// No token
	resp, _ := doJSON(t, app, http.MethodPost, "/users/", "", newUser)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Non-admin token
	resp, body := doJSON(t, app, http.MethodPost, "/users/", userToken, newUser)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "authorization_error", body["kind"])

	// Role is required alongside the other fields
	resp, _ = doJSON(t, app, http.MethodPost, "/users/", adminToken, fiber.Map{
		"name":     "Bob",
		"email":    "bob@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Admin token. A two character password is accepted.
	resp, _ = doJSON(t, app, http.MethodPost, "/users/", adminToken, newUser)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate email
	resp, body = doJSON(t, app, http.MethodPost, "/users/", adminToken, newUser)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["kind"])

	resp, _ = doJSON(t, app, http.MethodGet, "/users/", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequisitionEndpoints(t *testing.T) {
	app, db := setupApp(t)
	createUser(t, db, "Admin", "admin@example.com", "admin123456", "admin")
	alice := createUser(t, db, "Alice", "alice@example.com", "password123", "user")

	adminToken := loginToken(t, app, "admin@example.com", "admin123456")
	userToken := loginToken(t, app, "alice@example.com", "password123")

	pen := &models.Product{Name: "Pen", Price: 1.50}
	require.NoError(t, db.Create(pen).Error)

	// Owner comes from the token, not the body
	resp, body := doJSON(t, app, http.MethodPost, "/requisitions/", userToken, fiber.Map{
		"product_ids": []uint{pen.ID, pen.ID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	reqID := uint(data["id"].(float64))

	var stored models.Requisition
	require.NoError(t, db.First(&stored, reqID).Error)
	assert.Equal(t, alice.ID, stored.UserID)

	// Invalid status filter
	resp, _ = doJSON(t, app, http.MethodGet, "/requisitions/?status=bogus", userToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Status change is admin only
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/requisitions/%d", reqID), userToken, fiber.Map{
		"status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/requisitions/%d", reqID), adminToken, fiber.Map{
		"status": "approved",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Approved requisitions cannot be recalled
	resp, body = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/requisitions/%d", reqID), userToken, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["kind"])
}

func TestLPOEndpoints(t *testing.T) {
	app, db := setupApp(t)
	alice := createUser(t, db, "Alice", "alice@example.com", "password123", "user")
	userToken := loginToken(t, app, "alice@example.com", "password123")

	supplier := &models.Supplier{Name: "Acme Supplies"}
	require.NoError(t, db.Create(supplier).Error)

	pending := &models.Requisition{UserID: alice.ID, Status: domain.RequisitionPending}
	require.NoError(t, db.Create(pending).Error)
	approved := &models.Requisition{UserID: alice.ID, Status: domain.RequisitionApproved}
	require.NoError(t, db.Create(approved).Error)

	// Creation is open but gated on requisition state
	resp, body := doJSON(t, app, http.MethodPost, "/lpos", "", fiber.Map{
		"requisition_id": pending.ID,
		"supplier_id":    supplier.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "conflict", body["kind"])

	resp, body = doJSON(t, app, http.MethodPost, "/lpos", "", fiber.Map{
		"requisition_id": approved.ID,
		"supplier_id":    supplier.ID,
		"total_value":    250.0,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	lpoID := uint(data["id"].(float64))

	// Single LPO is public
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/lpos/%d", lpoID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The list requires a token
	resp, _ = doJSON(t, app, http.MethodGet, "/lpos", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/lpos", userToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Delivery update is public
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/lpos/%d", lpoID), "", fiber.Map{
		"status": "delivered",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/lpos/%d", lpoID), "", fiber.Map{
		"status": "lost",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/lpos/999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogEndpointsArePublic(t *testing.T) {
	app, db := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/products", "", fiber.Map{
		"name":  "Pen",
		"price": 1.50,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/products", "", fiber.Map{
		"name": "No price",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/products", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/suppliers", "", fiber.Map{
		"name": "Acme Supplies",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.Supplier{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSeedEndpoint(t *testing.T) {
	app, db := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/seed", "", nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var products int64
	require.NoError(t, db.Model(&models.Product{}).Count(&products).Error)
	assert.Equal(t, int64(5), products)

	var lpoItems int64
	require.NoError(t, db.Model(&models.LPOItem{}).Count(&lpoItems).Error)
	assert.Equal(t, int64(2), lpoItems)
}

func TestHealthEndpoints(t *testing.T) {
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
