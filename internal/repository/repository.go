package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Person PersonRepository
	Slot   SlotRepository
	Admin  AdminRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Person: NewPersonRepo(db),
		Slot:   NewSlotRepo(db),
		Admin:  NewAdminRepo(db),
	}
}
