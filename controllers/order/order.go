package orderControllers

import (
	"net/http"

	"github.com/SebastianPortocarrero/TFVitanza/cart"
	"github.com/SebastianPortocarrero/TFVitanza/models"
	"github.com/SebastianPortocarrero/TFVitanza/orders"
	"github.com/SebastianPortocarrero/TFVitanza/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlaceOrderRequest struct {
	FulfillmentType string `json:"fulfillment_type" binding:"required"`
	DeliveryAddress string `json:"delivery_address"`
	DeliveryPhone   string `json:"delivery_phone"`
	PaymentMethod   string `json:"payment_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /orders/place
func PlaceOrderHandler(db *gorm.DB, carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if req.DeliveryPhone != "" && !validation.ValidPhone(req.DeliveryPhone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El formato del teléfono no es válido"})
			return
		}

		store, err := carts.Session(c.Request.Context(), userID, userID)
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "No se pudo cargar el carrito, intenta de nuevo"})
			return
		}

		draft, err := orders.Assemble(
			store.Entries(),
			models.FulfillmentType(req.FulfillmentType),
			req.DeliveryAddress,
			validation.FormatPhone(req.DeliveryPhone),
			models.PaymentMethod(req.PaymentMethod),
		)
		if err != nil {
			if orders.IsValidation(err) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble order"})
			return
		}

		order := draft.Record(uuid.NewString(), userID)

		err = db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(&order).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		store.Clear(c.Request.Context())
		broadcastOrderUpdate(order)

		c.JSON(http.StatusCreated, gin.H{
			"order":    order,
			"progress": orders.Project(order.Status),
		})
	}
}

// GET /orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, _ := c.Get("user_id")
		roleVal, _ := c.Get("role")

		var order models.Order
		err := db.Preload("Items").Preload("Items.MenuItem").
			First(&order, "id = ?", c.Param("orderID")).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Customers may only see their own orders.
		role, _ := roleVal.(string)
		userID, _ := userIDVal.(string)
		if order.UserID != userID && role != string(models.RoleAdmin) && role != string(models.RoleStaff) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"order":    order,
			"progress": orders.Project(order.Status),
		})
	}
}

// GET /orders/mine
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		userID, ok := userIDVal.(string)
		if !exists || !ok || userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var list []models.Order
		err := db.Preload("Items").Preload("Items.MenuItem").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&list).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GET /admin/orders
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var list []models.Order
		err := db.Preload("User").Preload("User.Profile").
			Preload("Items").Preload("Items.MenuItem").
			Order("created_at DESC").
			Find(&list).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		newStatus := models.OrderStatus(req.Status)

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("orderID")).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Pedido no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if !orders.CanTransition(order.Status, newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Transición de estado inválida: " + string(order.Status) + " → " + string(newStatus),
			})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		order.Status = newStatus
		broadcastOrderUpdate(order)

		c.JSON(http.StatusOK, gin.H{
			"order":    order,
			"progress": orders.Project(order.Status),
		})
	}
}
