package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/config"
	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/timeutil"
)

// ExportService 课表导出业务接口
//
// 设计说明：
//   - Excel 导出复用打印视图的网格合成：列 = 合成时间轴，
//     行 = 周一至周五，跨列单元格用 MergeCell 呈现，
//     填充色取科目调色板的 Fill。
//   - ICS 导出把每条时段表达为每周重复的 VEVENT（RRULE FREQ=WEEKLY），
//     锚定在本周对应的工作日。
//   - 两者都以 bytes.Buffer 返回，由 Handler 层设置下载响应头。
type ExportService interface {
	// ExportExcel 导出打印网格为 .xlsx
	ExportExcel(ctx context.Context, personID string) (*bytes.Buffer, string, error)
	// ExportICS 导出每周课表为 iCalendar
	ExportICS(ctx context.Context, personID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ════════════════════════════════════════════════════════════
// ExportExcel — 打印网格导出为 Excel
// ════════════════════════════════════════════════════════════
//
// 输出格式：
//   - 第 1 行：标题（学生姓名 — Weekly Timetable）
//   - 第 2 行：DAY + 各时间列的起止标签
//   - 第 3~7 行：周一至周五，每格列出该组全部科目（并行课换行堆叠）

func (s *exportService) ExportExcel(ctx context.Context, personID string) (*bytes.Buffer, string, error) {
	person, err := s.repo.Person.GetByID(ctx, personID)
	if err != nil {
		return nil, "", ErrPersonNotFound
	}
	slots, err := s.repo.Slot.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, "", err
	}

	intervals, rows := BuildPrintGrid(slots, s.cfg.Timetable.DayStartMinute(), s.cfg.Timetable.DayEndMinute())

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Timetable"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：A 为星期列，其余按时间列
	f.SetColWidth(sheetName, "A", "A", 14)
	if len(intervals) > 0 {
		last, _ := excelize.ColumnNumberToName(1 + len(intervals))
		f.SetColWidth(sheetName, "B", last, 16)
	}

	// 样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E5E7EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 标题行
	lastCol, _ := excelize.ColumnNumberToName(1 + len(intervals))
	f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s — Weekly Timetable", person.Name))
	f.MergeCell(sheetName, "A1", lastCol+"1")
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	// 表头行：DAY + 时间列
	f.SetCellValue(sheetName, "A2", "DAY")
	f.SetCellStyle(sheetName, "A2", "A2", headerStyle)
	for i, iv := range intervals {
		cell, _ := excelize.CoordinatesToCellName(2+i, 2)
		f.SetCellValue(sheetName, cell, fmt.Sprintf("%s - %s", timeutil.FormatClock(iv.Start), timeutil.FormatClock(iv.End)))
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 数据行：每天一行，跨列单元格 MergeCell
	for d, day := range model.Days {
		rowNum := 3 + d
		dayCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		f.SetCellValue(sheetName, dayCell, day)
		f.SetCellStyle(sheetName, dayCell, dayCell, headerStyle)

		col := 2 // 第 1 列是星期
		for _, cell := range rows[day] {
			startCell, _ := excelize.CoordinatesToCellName(col, rowNum)

			if !cell.IsEmpty() {
				text := ""
				for i, slot := range cell.Slots {
					if i > 0 {
						text += "\n"
					}
					text += slot.Subject
					if slot.Teacher != "" {
						text += " (" + slot.Teacher + ")"
					}
				}
				f.SetCellValue(sheetName, startCell, text)

				if cell.Span > 1 {
					endCell, _ := excelize.CoordinatesToCellName(col+cell.Span-1, rowNum)
					f.MergeCell(sheetName, startCell, endCell)
				}

				// 科目配色（取组内首个科目，与打印视图一致）
				color := ColorOf(cell.Slots[0].Subject)
				cellStyle, _ := f.NewStyle(&excelize.Style{
					Fill:      excelize.Fill{Type: "pattern", Color: []string{"#" + color.Fill}, Pattern: 1},
					Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
				})
				f.SetCellStyle(sheetName, startCell, startCell, cellStyle)
			}

			col += cell.Span
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", err
	}

	filename := fmt.Sprintf("timetable_%s.xlsx", person.Name)
	return buf, filename, nil
}

// ════════════════════════════════════════════════════════════
// ExportICS — 每周课表导出为 iCalendar
// ════════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ctx context.Context, personID string) (*bytes.Buffer, string, error) {
	person, err := s.repo.Person.GetByID(ctx, personID)
	if err != nil {
		return nil, "", ErrPersonNotFound
	}
	slots, err := s.repo.Slot.ListByPerson(ctx, personID)
	if err != nil {
		s.logger.Error("查询时段失败", zap.Error(err))
		return nil, "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//school-timetable//EN")

	weekStart := startOfWeek(time.Now())
	for _, slot := range slots {
		dayOffset := dayIndex(slot.DayOfWeek)
		if dayOffset < 0 {
			continue // 非法星期值不导出
		}
		date := weekStart.AddDate(0, 0, dayOffset)

		event := cal.AddEvent(slot.SlotID)
		event.SetStartAt(atMinute(date, timeutil.MinutesOf(slot.StartTime)))
		event.SetEndAt(atMinute(date, timeutil.MinutesOf(slot.EndTime)))
		event.SetSummary(slot.Subject)
		if slot.Teacher != "" {
			event.SetDescription("Teacher: " + slot.Teacher)
		}
		event.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("timetable_%s.ics", person.Name)
	return buf, filename, nil
}

// ── 辅助函数 ──

// startOfWeek 返回 t 所在周的周一零点（本地时区）
func startOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // 周日归入上一周
	}
	day := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// dayIndex Monday→0 … Friday→4；非法值返回 -1
func dayIndex(day string) int {
	for i, d := range model.Days {
		if d == day {
			return i
		}
	}
	return -1
}

func atMinute(date time.Time, minutes int) time.Time {
	return date.Add(time.Duration(minutes) * time.Minute)
}
