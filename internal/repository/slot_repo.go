package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
)

// SlotRepository 课表时段数据访问接口
type SlotRepository interface {
	Create(ctx context.Context, slot *model.TimetableSlot) error
	GetByID(ctx context.Context, id string) (*model.TimetableSlot, error)
	// ListByPerson 返回某人全部时段，按 (day, start) 排序；
	// created_at 兜底保证同时段的并行记录有稳定的插入序。
	ListByPerson(ctx context.Context, personID string) ([]model.TimetableSlot, error)
	Update(ctx context.Context, slot *model.TimetableSlot) error
	Delete(ctx context.Context, id string) error
}

type slotRepo struct {
	db *gorm.DB
}

// NewSlotRepo 创建 SlotRepository 实例
func NewSlotRepo(db *gorm.DB) SlotRepository {
	return &slotRepo{db: db}
}

func (r *slotRepo) Create(ctx context.Context, slot *model.TimetableSlot) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

func (r *slotRepo) GetByID(ctx context.Context, id string) (*model.TimetableSlot, error) {
	var slot model.TimetableSlot
	err := r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		First(&slot).Error
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepo) ListByPerson(ctx context.Context, personID string) ([]model.TimetableSlot, error) {
	var slots []model.TimetableSlot
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("day_of_week ASC, start_time ASC, created_at ASC").
		Find(&slots).Error
	return slots, err
}

func (r *slotRepo) Update(ctx context.Context, slot *model.TimetableSlot) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *slotRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("slot_id = ?", id).
		Delete(&model.TimetableSlot{}).Error
}
