package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krasbyt/appliance-service-api/models"
)

func TestAddOrder(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Buyer", "555-0100")

	employee := models.Employee{Name: "Master Oleg", Position: "master"}
	db.Create(&employee)

	tests := []struct {
		name          string
		form          url.Values
		expectedCount int64
		expectedFlash string
	}{
		{
			name: "Create order with all fields",
			form: url.Values{
				"client_id":      {"1"},
				"model":          {"LG-X100"},
				"description":    {"drum replacement"},
				"status_id":      {"1"},
				"employee_id":    {"1"},
				"purchase_price": {"100"},
				"repair_costs":   {"20"},
				"sale_price":     {"200"},
			},
			expectedCount: 1,
			expectedFlash: "Order created successfully",
		},
		{
			name: "Missing model rejects the form",
			form: url.Values{
				"client_id": {"1"},
				"status_id": {"1"},
			},
			expectedCount: 1,
		},
		{
			name: "Unknown client rejects the form",
			form: url.Values{
				"client_id": {"42"},
				"model":     {"LG-X100"},
				"status_id": {"1"},
			},
			expectedCount: 1,
			expectedFlash: "Client not found",
		},
		{
			name: "Unknown status rejects the form",
			form: url.Values{
				"client_id": {"1"},
				"model":     {"LG-X100"},
				"status_id": {"9"},
			},
			expectedCount: 1,
			expectedFlash: "Order status not found",
		},
		{
			name: "Unknown employee rejects the form",
			form: url.Values{
				"client_id":   {"1"},
				"model":       {"LG-X100"},
				"status_id":   {"1"},
				"employee_id": {"5"},
			},
			expectedCount: 1,
			expectedFlash: "Employee not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.POST("/add_order", mockAuthMiddleware(1, "admin", "admin"), AddOrder)

			w := postForm(router, "/add_order", tt.form)

			assert.Equal(t, http.StatusFound, w.Code)
			assert.Equal(t, "/orders", w.Header().Get("Location"))

			if tt.expectedFlash != "" {
				assert.Contains(t, flashCookie(w), tt.expectedFlash)
			}

			var count int64
			db.Model(&models.Order{}).Count(&count)
			assert.Equal(t, tt.expectedCount, count)
		})
	}

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Equal(t, client.ID, order.ClientID)
	assert.Equal(t, "LG-X100", order.Model)
	assert.NotNil(t, order.EmployeeID)
	assert.Equal(t, float64(100), *order.PurchasePrice)
}

func TestAddOrder_BlankAndZeroPricesStoredAsNull(t *testing.T) {
	db := setupTestDB(t)
	createTestClient(t, db, "Buyer", "555-0100")

	router := setupTestRouter()
	router.POST("/add_order", mockAuthMiddleware(1, "admin", "admin"), AddOrder)

	w := postForm(router, "/add_order", url.Values{
		"client_id":      {"1"},
		"model":          {"Bosch-77"},
		"status_id":      {"1"},
		"purchase_price": {"0"},
		"repair_costs":   {""},
		"sale_price":     {"0.00"},
	})

	assert.Equal(t, http.StatusFound, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order).Error)
	assert.Nil(t, order.PurchasePrice)
	assert.Nil(t, order.RepairCosts)
	assert.Nil(t, order.SalePrice)
	assert.Nil(t, order.EmployeeID)
	assert.Equal(t, float64(0), order.Profit())
}

func TestListOrders_MostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Buyer", "555-0100")

	base := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)
	createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "First", StatusID: models.StatusNew, CreatedAt: base})
	createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "Second", StatusID: models.StatusNew, CreatedAt: base.Add(time.Hour)})
	createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "Third", StatusID: models.StatusNew, CreatedAt: base.Add(2 * time.Hour)})

	router := setupTestRouter()
	router.GET("/orders", mockAuthMiddleware(1, "admin", "admin"), ListOrders)

	req, _ := http.NewRequest(http.MethodGet, "/orders", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	data := response["data"].(map[string]interface{})
	orders := data["orders"].([]interface{})
	assert.Len(t, orders, 3)
	assert.Equal(t, "Third", orders[0].(map[string]interface{})["model"])
	assert.Equal(t, "First", orders[2].(map[string]interface{})["model"])

	// Reference lists for the order form ride along.
	assert.Len(t, data["statuses"].([]interface{}), 5)
	assert.Len(t, data["clients"].([]interface{}), 1)
}

func TestDeleteOrder(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Buyer", "555-0100")
	createTestOrder(t, db, models.Order{ClientID: client.ID, Model: "LG-X", StatusID: models.StatusNew})

	router := setupTestRouter()
	router.DELETE("/delete_order/:id", mockAuthMiddleware(1, "admin", "admin"), DeleteOrder)

	req, _ := http.NewRequest(http.MethodDelete, "/delete_order/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)

	// Deleting again reports not found.
	req, _ = http.NewRequest(http.MethodDelete, "/delete_order/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderDetails_Profit(t *testing.T) {
	db := setupTestDB(t)
	client := createTestClient(t, db, "Anna", "555-0003")
	client.Email = "anna@example.com"
	db.Save(client)

	employee := models.Employee{Name: "Master Oleg"}
	db.Create(&employee)

	tests := []struct {
		name           string
		order          models.Order
		expectedProfit float64
		expectedClass  string
	}{
		{
			name: "All prices present",
			order: models.Order{
				ClientID: client.ID, Model: "LG-X", StatusID: models.StatusCompleted,
				EmployeeID:    &employee.ID,
				PurchasePrice: floatPtr(100), RepairCosts: floatPtr(20), SalePrice: floatPtr(200),
			},
			expectedProfit: 80,
			expectedClass:  "success",
		},
		{
			name: "All prices absent",
			order: models.Order{
				ClientID: client.ID, Model: "Bosch-3", StatusID: models.StatusNew,
			},
			expectedProfit: 0,
			expectedClass:  "primary",
		},
		{
			name: "Only repair costs",
			order: models.Order{
				ClientID: client.ID, Model: "Indesit-5", StatusID: models.StatusInRepair,
				RepairCosts: floatPtr(30),
			},
			expectedProfit: -30,
			expectedClass:  "warning",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := createTestOrder(t, db, tt.order)

			router := setupTestRouter()
			router.GET("/api/order_details/:id", mockAuthMiddleware(1, "admin", "admin"), OrderDetails)

			req, _ := http.NewRequest(http.MethodGet, "/api/order_details/"+itoa(order.ID), nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.True(t, response["success"].(bool))

			data := response["order"].(map[string]interface{})
			assert.Equal(t, tt.expectedProfit, data["profit"])
			assert.Equal(t, tt.expectedClass, data["status_class"])
			assert.Equal(t, client.Name, data["client_name"])
			assert.Equal(t, client.Phone, data["client_phone"])
			assert.Nil(t, data["photo_url"])

			if tt.order.EmployeeID != nil {
				assert.Equal(t, employee.Name, data["master"])
			} else {
				assert.Nil(t, data["master"])
			}
		})
	}
}

func TestOrderDetails_NotFound(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.GET("/api/order_details/:id", mockAuthMiddleware(1, "admin", "admin"), OrderDetails)

	req, _ := http.NewRequest(http.MethodGet, "/api/order_details/123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
