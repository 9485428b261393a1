package routes

import (
	"github.com/SebastianPortocarrero/TFVitanza/cart"
	"github.com/SebastianPortocarrero/TFVitanza/localstore"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the shared collaborators the route groups wire into their
// handlers.
type Deps struct {
	DB    *gorm.DB
	Carts *cart.Manager
	Local *localstore.Store
}

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth + menu routes (no middleware)
	SetupAuthRoutes(r, deps)
	SetupMenuRoutes(r, deps)

	// Session routes (JWT, guests allowed)
	SetupSessionRoutes(r, deps)

	// User routes (JWT, account required)
	SetupUserRoutes(r, deps)

	// Order routes
	SetupOrderRoutes(r, deps)

	// Admin console (role-protected)
	SetupAdminRoutes(r, deps)
}
