package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/krasbyt/appliance-service-api/config"
	"github.com/krasbyt/appliance-service-api/models"
	"github.com/krasbyt/appliance-service-api/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	for _, status := range models.DefaultStatuses() {
		s := status
		if err := db.Create(&s).Error; err != nil {
			t.Fatalf("Failed to seed order statuses: %v", err)
		}
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		GoEnv:         "test",
		SessionSecret: "test-session-secret",
	})

	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	return router
}

// mockAuthMiddleware injects a principal the way RequireAuth does.
func mockAuthMiddleware(userID uint, username, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("username", username)
		c.Set("role", role)
		c.Next()
	}
}

func createTestUser(t *testing.T, db *gorm.DB, username, password, role string) *models.User {
	t.Helper()

	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return &user
}

func createTestClient(t *testing.T, db *gorm.DB, name, phone string) *models.Client {
	t.Helper()

	client := models.Client{Name: name, Phone: phone}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}
	return &client
}

func createTestOrder(t *testing.T, db *gorm.DB, order models.Order) *models.Order {
	t.Helper()

	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return &order
}

func floatPtr(v float64) *float64 {
	return &v
}

// postForm performs a form-encoded POST against the router.
func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// flashCookie returns the flash message set on the response, decoded.
func flashCookie(w *httptest.ResponseRecorder) string {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == flashCookieName && cookie.MaxAge >= 0 {
			value, err := url.QueryUnescape(cookie.Value)
			if err != nil {
				return cookie.Value
			}
			return value
		}
	}
	return ""
}

// createMultipartBody builds a multipart body with a single file field.
func createMultipartBody(t *testing.T, fieldName, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}
