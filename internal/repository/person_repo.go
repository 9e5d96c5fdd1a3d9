package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
)

// PersonRepository 学生档案数据访问接口
// 档案的增删由管理端离线维护，服务内只读。
type PersonRepository interface {
	List(ctx context.Context) ([]model.Person, error)
	GetByID(ctx context.Context, id string) (*model.Person, error)
}

type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo 创建 PersonRepository 实例
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) List(ctx context.Context) ([]model.Person, error) {
	var persons []model.Person
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&persons).Error
	return persons, err
}

func (r *personRepo) GetByID(ctx context.Context, id string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("person_id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}
