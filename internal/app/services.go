package app

import (
	"github.com/mashiroreo/qr-menu-backend/internal/auth"
	"github.com/mashiroreo/qr-menu-backend/internal/repo"
	"github.com/mashiroreo/qr-menu-backend/internal/services"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Services holds all application services
type Services struct {
	DB              *gorm.DB
	AuthService     *auth.Service
	UserRepo        *repo.UserRepository
	StoreRepo       *repo.StoreRepository
	CategoryRepo    *repo.CategoryRepository
	MenuItemRepo    *repo.MenuItemRepository
	StoreService    *services.StoreService
	CategoryService *services.CategoryService
	MenuItemService *services.MenuItemService
	StorageService  *services.StorageService
	QRCodeService   *services.QRCodeService
}

// NewServices creates a new services container
func NewServices(db *gorm.DB) *Services {
	userRepo := repo.NewUserRepository(db)
	storeRepo := repo.NewStoreRepository(db)
	categoryRepo := repo.NewCategoryRepository(db)
	itemRepo := repo.NewMenuItemRepository(db)

	authService := auth.NewService(userRepo)
	storeService := services.NewStoreService(storeRepo, categoryRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	itemService := services.NewMenuItemService(itemRepo, categoryRepo)

	storageService, err := services.NewStorageService()
	if err != nil {
		log.Warn().Err(err).Msg("Storage service not available, uploads disabled")
	}

	var qrCodeService *services.QRCodeService
	if storageService != nil {
		qrCodeService = services.NewQRCodeService(storeRepo, storageService)
	}

	return &Services{
		DB:              db,
		AuthService:     authService,
		UserRepo:        userRepo,
		StoreRepo:       storeRepo,
		CategoryRepo:    categoryRepo,
		MenuItemRepo:    itemRepo,
		StoreService:    storeService,
		CategoryService: categoryService,
		MenuItemService: itemService,
		StorageService:  storageService,
		QRCodeService:   qrCodeService,
	}
}
