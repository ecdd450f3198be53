package models

// GetAllModels returns all models for GORM AutoMigrate
func GetAllModels() []interface{} {
	return []interface{}{
		&User{},
		&Store{},
		&Category{},
		&MenuItem{},
	}
}
