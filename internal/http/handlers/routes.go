package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/mashiroreo/qr-menu-backend/internal/app"
	"github.com/mashiroreo/qr-menu-backend/internal/http/middleware"
)

// SetupRoutes sets up all API routes
func SetupRoutes(api *echo.Group, services *app.Services) {
	// Auth routes (no authentication required)
	authHandler := NewAuthHandler(services.AuthService)
	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.RefreshToken)

	// Public guest-facing routes reached through the QR code
	publicHandler := NewPublicHandler(services.StoreService)
	public := api.Group("/public")
	public.GET("/stores/:store_id/menu", publicHandler.GetMenu)
	public.GET("/stores/:store_id/hours", publicHandler.GetHours)

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(services.AuthService))

	profileAuth := protected.Group("/auth")
	profileAuth.PUT("/profile", authHandler.UpdateProfile)
	profileAuth.PUT("/change-password", authHandler.ChangePassword)

	// Store-scoped routes: the owner's store is resolved once here
	storeScoped := protected.Group("")
	storeScoped.Use(middleware.OwnerOrAbove())
	storeScoped.Use(middleware.StoreResolver(services.DB))

	storeHandler := NewStoreHandler(services.StoreService, services.StorageService, services.QRCodeService)
	store := storeScoped.Group("/store")
	store.GET("", storeHandler.Get)
	store.PUT("", storeHandler.Update)
	store.GET("/business-hours", storeHandler.GetBusinessHours)
	store.PUT("/business-hours", storeHandler.UpdateBusinessHours)
	store.POST("/business-hours/validate", storeHandler.ValidateBusinessHours)
	store.GET("/business-hours/preview", storeHandler.PreviewDay)
	store.POST("/logo", storeHandler.UploadLogo)
	store.POST("/qrcode", storeHandler.GenerateQRCode)

	categoryHandler := NewCategoryHandler(services.CategoryService)
	categories := storeScoped.Group("/categories")
	categories.GET("", categoryHandler.List)
	categories.POST("", categoryHandler.Create)
	categories.PUT("/reorder", categoryHandler.Reorder)
	categories.PUT("/:id", categoryHandler.Update)
	categories.DELETE("/:id", categoryHandler.Delete)

	itemHandler := NewMenuItemHandler(services.MenuItemService, services.StorageService)
	items := storeScoped.Group("/items")
	items.GET("/category/:category_id", itemHandler.ListByCategory)
	items.POST("", itemHandler.Create)
	items.PUT("/reorder", itemHandler.Reorder)
	items.PUT("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)
	items.POST("/:id/image", itemHandler.UploadImage)
}
