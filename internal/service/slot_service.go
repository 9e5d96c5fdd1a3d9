package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/timeutil"
)

// ── 时段模块业务错误 ──

var (
	ErrSlotNotFound    = errors.New("时段不存在")
	ErrSlotInvalidTime = errors.New("开始时间必须早于结束时间")
)

// ChangePublisher 课表变更事件发布接口
// 生产实现为 Redis Pub/Sub；nil 表示广播降级停用。
type ChangePublisher interface {
	PublishChange(ctx context.Context, personID string, payload []byte) error
}

// SlotService 时段编辑业务接口
//
// 设计说明：
//   - 每次变更都是单条时段操作，无批量语义。
//   - 每次成功落库后向该学生的变更频道广播一条完整事件；
//     订阅方整表重拉重算，因此广播失败只记日志不回滚。
//   - start < end 在写入口校验（倒置时段对网格合成没有良定义）。
type SlotService interface {
	CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error)
	UpdateSlot(ctx context.Context, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error)
	DeleteSlot(ctx context.Context, id string) error
	// ListSlots 返回某人的原始时段集合（fetchSlots 契约）
	ListSlots(ctx context.Context, personID string) ([]dto.SlotResponse, error)
}

type slotService struct {
	repo      *repository.Repository
	publisher ChangePublisher
	logger    *zap.Logger
}

// NewSlotService 创建 SlotService 实例
func NewSlotService(repo *repository.Repository, publisher ChangePublisher, logger *zap.Logger) SlotService {
	return &slotService{repo: repo, publisher: publisher, logger: logger}
}

func (s *slotService) CreateSlot(ctx context.Context, req *dto.CreateSlotRequest) (*dto.SlotResponse, error) {
	if err := validateSlotTimes(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	// 确认归属学生存在
	if _, err := s.repo.Person.GetByID(ctx, req.PersonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		return nil, err
	}

	slot := model.TimetableSlot{
		PersonID:  req.PersonID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		Teacher:   req.Teacher,
	}
	if err := s.repo.Slot.Create(ctx, &slot); err != nil {
		s.logger.Error("创建时段失败", zap.Error(err))
		return nil, err
	}

	resp := toSlotResponse(slot)
	s.publishChange(ctx, dto.ChangeInsert, resp)
	return &resp, nil
}

func (s *slotService) UpdateSlot(ctx context.Context, id string, req *dto.UpdateSlotRequest) (*dto.SlotResponse, error) {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	// 应用更新
	if req.DayOfWeek != nil {
		slot.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.Subject != nil {
		slot.Subject = *req.Subject
	}
	if req.Teacher != nil {
		slot.Teacher = *req.Teacher
	}

	if err := validateSlotTimes(slot.StartTime, slot.EndTime); err != nil {
		return nil, err
	}

	if err := s.repo.Slot.Update(ctx, slot); err != nil {
		s.logger.Error("更新时段失败", zap.Error(err))
		return nil, err
	}

	resp := toSlotResponse(*slot)
	s.publishChange(ctx, dto.ChangeUpdate, resp)
	return &resp, nil
}

func (s *slotService) DeleteSlot(ctx context.Context, id string) error {
	slot, err := s.repo.Slot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSlotNotFound
		}
		return err
	}

	if err := s.repo.Slot.Delete(ctx, id); err != nil {
		s.logger.Error("删除时段失败", zap.Error(err))
		return err
	}

	s.publishChange(ctx, dto.ChangeDelete, toSlotResponse(*slot))
	return nil
}

func (s *slotService) ListSlots(ctx context.Context, personID string) ([]dto.SlotResponse, error) {
	slots, err := s.repo.Slot.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, toSlotResponse(slot))
	}
	return result, nil
}

// publishChange 广播变更事件；失败只记日志（订阅方会在下次拉取时对齐）
func (s *slotService) publishChange(ctx context.Context, kind string, slot dto.SlotResponse) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(dto.SlotChangeEvent{Kind: kind, Slot: slot})
	if err != nil {
		s.logger.Error("序列化变更事件失败", zap.Error(err))
		return
	}
	if err := s.publisher.PublishChange(ctx, slot.PersonID, payload); err != nil {
		s.logger.Warn("广播变更事件失败",
			zap.String("person_id", slot.PersonID),
			zap.String("kind", kind),
			zap.Error(err),
		)
	}
}

func validateSlotTimes(start, end string) error {
	if timeutil.MinutesOf(start) >= timeutil.MinutesOf(end) {
		return ErrSlotInvalidTime
	}
	return nil
}

// ── 响应转换器 ──

func toSlotResponse(slot model.TimetableSlot) dto.SlotResponse {
	color := ColorOf(slot.Subject)
	return dto.SlotResponse{
		ID:         slot.SlotID,
		PersonID:   slot.PersonID,
		DayOfWeek:  slot.DayOfWeek,
		StartTime:  slot.StartTime,
		EndTime:    slot.EndTime,
		StartLabel: timeutil.DisplayTime(slot.StartTime),
		EndLabel:   timeutil.DisplayTime(slot.EndTime),
		Subject:    slot.Subject,
		Teacher:    slot.Teacher,
		Color: dto.ColorResponse{
			Name:       color.Name,
			Background: color.Background,
			Text:       color.Text,
			Border:     color.Border,
			Badge:      color.Badge,
		},
	}
}

func toSlotResponses(slots []model.TimetableSlot) []dto.SlotResponse {
	result := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, toSlotResponse(s))
	}
	return result
}
