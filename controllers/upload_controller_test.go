package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krasbyt/appliance-service-api/models"
	"github.com/krasbyt/appliance-service-api/services"
)

func setupMockImageService(t *testing.T) *services.MockS3Service {
	t.Helper()

	mock := services.NewMockS3Service()
	mock.SetAsMockForTesting()
	services.InitImageService(mock)

	t.Cleanup(func() {
		services.SetImageService(nil)
		services.SetS3Service(nil)
	})

	return mock
}

func TestUploadOrderPhoto(t *testing.T) {
	db := setupTestDB(t)
	mock := setupMockImageService(t)

	client := createTestClient(t, db, "Anna", "555")
	order := createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "LG-X", StatusID: models.StatusNew})

	router := setupTestRouter()
	router.POST("/api/order_photo/:id", mockAuthMiddleware(1, "admin", "admin"), UploadOrderPhoto)

	body, contentType := createMultipartBody(t, "photo", "appliance.png", []byte("png-bytes"))
	req, _ := http.NewRequest(http.MethodPost, "/api/order_photo/"+itoa(order.ID), body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	s3Key := data["photo_s3_key"].(string)
	assert.True(t, mock.FileExists(s3Key))
	assert.NotEmpty(t, data["photo_url"])

	var updated models.Order
	db.First(&updated, order.ID)
	assert.NotNil(t, updated.PhotoS3Key)
	assert.Equal(t, s3Key, *updated.PhotoS3Key)
}

func TestUploadOrderPhoto_ReplacesExisting(t *testing.T) {
	db := setupTestDB(t)
	mock := setupMockImageService(t)

	client := createTestClient(t, db, "Anna", "555")
	order := createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "LG-X", StatusID: models.StatusNew})

	router := setupTestRouter()
	router.POST("/api/order_photo/:id", mockAuthMiddleware(1, "admin", "admin"), UploadOrderPhoto)

	upload := func(filename string) string {
		body, contentType := createMultipartBody(t, "photo", filename, []byte("png-bytes"))
		req, _ := http.NewRequest(http.MethodPost, "/api/order_photo/"+itoa(order.ID), body)
		req.Header.Set("Content-Type", contentType)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		return response["data"].(map[string]interface{})["photo_s3_key"].(string)
	}

	firstKey := upload("before.png")
	secondKey := upload("after.png")

	assert.NotEqual(t, firstKey, secondKey)
	assert.False(t, mock.FileExists(firstKey), "replaced photo is removed from storage")
	assert.True(t, mock.FileExists(secondKey))
}

func TestUploadOrderPhoto_InvalidFormat(t *testing.T) {
	db := setupTestDB(t)
	setupMockImageService(t)

	client := createTestClient(t, db, "Anna", "555")
	order := createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "LG-X", StatusID: models.StatusNew})

	router := setupTestRouter()
	router.POST("/api/order_photo/:id", mockAuthMiddleware(1, "admin", "admin"), UploadOrderPhoto)

	body, contentType := createMultipartBody(t, "photo", "appliance.jpg", []byte("jpg-bytes"))
	req, _ := http.NewRequest(http.MethodPost, "/api/order_photo/"+itoa(order.ID), body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_FILE_FORMAT", errorData["code"])

	var updated models.Order
	db.First(&updated, order.ID)
	assert.Nil(t, updated.PhotoS3Key)
}

func TestUploadOrderPhoto_OrderNotFound(t *testing.T) {
	setupTestDB(t)
	setupMockImageService(t)

	router := setupTestRouter()
	router.POST("/api/order_photo/:id", mockAuthMiddleware(1, "admin", "admin"), UploadOrderPhoto)

	body, contentType := createMultipartBody(t, "photo", "appliance.png", []byte("png-bytes"))
	req, _ := http.NewRequest(http.MethodPost, "/api/order_photo/99", body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadOrderPhoto_Disabled(t *testing.T) {
	db := setupTestDB(t)
	services.SetImageService(nil)

	client := createTestClient(t, db, "Anna", "555")
	order := createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "LG-X", StatusID: models.StatusNew})

	router := setupTestRouter()
	router.POST("/api/order_photo/:id", mockAuthMiddleware(1, "admin", "admin"), UploadOrderPhoto)

	body, contentType := createMultipartBody(t, "photo", "appliance.png", []byte("png-bytes"))
	req, _ := http.NewRequest(http.MethodPost, "/api/order_photo/"+itoa(order.ID), body)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
