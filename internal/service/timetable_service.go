package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/config"
	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/timeutil"
)

// ── TimetableService 接口 ──────────────────────────────────
//
// 设计说明：
//   - 两个视图都是无状态派生：从当前时段集合整表重算，
//     任何一次变更后重新请求即得到一致结果，无需增量维护。
//   - 交互视图（DayView）按天分组 + 严格同时段合并；
//     打印视图（PrintView）从全周边界合成共享时间轴 + 跨列单元格。
//   - 排版算法本体在 layout.go / palette.go，本服务只负责取数、
//     调用引擎与组装响应。
// ─────────────────────────────────────────────────────────────

// TimetableService 课表视图业务接口
type TimetableService interface {
	// DayView 交互视图：周一至周五的显示组序列
	DayView(ctx context.Context, personID string) (*dto.DayViewResponse, error)
	// PrintView 打印视图：共享时间轴 + 每天的跨列单元格
	PrintView(ctx context.Context, personID string) (*dto.PrintViewResponse, error)
}

type timetableService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimetableService 创建 TimetableService 实例
func NewTimetableService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) TimetableService {
	return &timetableService{cfg: cfg, repo: repo, logger: logger}
}

func (s *timetableService) DayView(ctx context.Context, personID string) (*dto.DayViewResponse, error) {
	person, slots, err := s.fetchSnapshot(ctx, personID)
	if err != nil {
		return nil, err
	}

	groups := BuildDayGroups(slots)

	days := make([]dto.DayColumnResponse, 0, len(model.Days))
	for _, day := range model.Days {
		dayGroups := make([]dto.SlotGroupResponse, 0, len(groups[day]))
		for _, group := range groups[day] {
			dayGroups = append(dayGroups, dto.SlotGroupResponse{
				Slots: toSlotResponses(group),
			})
		}
		days = append(days, dto.DayColumnResponse{Day: day, Groups: dayGroups})
	}

	return &dto.DayViewResponse{
		PersonID:   person.PersonID,
		PersonName: person.Name,
		Days:       days,
	}, nil
}

func (s *timetableService) PrintView(ctx context.Context, personID string) (*dto.PrintViewResponse, error) {
	person, slots, err := s.fetchSnapshot(ctx, personID)
	if err != nil {
		return nil, err
	}

	intervals, rows := BuildPrintGrid(slots, s.cfg.Timetable.DayStartMinute(), s.cfg.Timetable.DayEndMinute())

	intervalResps := make([]dto.IntervalResponse, 0, len(intervals))
	for _, iv := range intervals {
		intervalResps = append(intervalResps, dto.IntervalResponse{
			Start:      iv.Start,
			End:        iv.End,
			StartLabel: timeutil.FormatClock(iv.Start),
			EndLabel:   timeutil.FormatClock(iv.End),
		})
	}

	rowResps := make([]dto.PrintRowResponse, 0, len(model.Days))
	for _, day := range model.Days {
		cells := make([]dto.PrintCellResponse, 0, len(rows[day]))
		for _, cell := range rows[day] {
			cells = append(cells, dto.PrintCellResponse{
				Span:  cell.Span,
				Slots: toSlotResponses(cell.Slots),
			})
		}
		rowResps = append(rowResps, dto.PrintRowResponse{Day: day, Cells: cells})
	}

	return &dto.PrintViewResponse{
		PersonID:   person.PersonID,
		PersonName: person.Name,
		LogoURL:    person.LogoURL,
		Intervals:  intervalResps,
		Rows:       rowResps,
	}, nil
}

// fetchSnapshot 取一个学生的完整时段快照
// 视图总是基于完整快照推导，不存在半更新状态。
func (s *timetableService) fetchSnapshot(ctx context.Context, personID string) (*model.Person, []model.TimetableSlot, error) {
	person, err := s.repo.Person.GetByID(ctx, personID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrPersonNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, nil, err
	}

	slots, err := s.repo.Slot.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, nil, err
	}

	return person, slots, nil
}
