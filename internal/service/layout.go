package service

import (
	"sort"

	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/timeutil"
)

// ── 课表排版引擎 ────────────────────────────────────────────
//
// 职责：把一个人的无序时段集合推导为两种展示结构：
//   1. BuildDayGroups — 交互视图：按天分组，起止时间完全相同的
//      时段合并为同一"显示组"并排呈现（并行选修课场景）。
//   2. BuildPrintGrid — 打印视图：从全周所有时段边界合成一条
//      公共时间轴，再为每天计算跨列合并单元格。
//
// 设计决策：
//   - 全部为纯函数，每次变更后整表重算；时段量级为几十条，
//     O(n) 重算开销可忽略，因此不存在缓存失效问题。
//   - 显示组只合并 (start, end) 严格相等的时段；仅有重叠的时段
//     保持为相邻的独立组，不做区间归并。
//   - 组内顺序 = 输入顺序（稳定排序保证），无第二排序键。
// ─────────────────────────────────────────────────────────────

// 打印网格的哨兵边界：无论时段多稀疏，时间轴至少覆盖这一区间。
const (
	DefaultDayStartMinute = 7*60 + 30  // 07:30
	DefaultDayEndMinute   = 18*60 + 30 // 18:30
)

// Interval 打印网格的一列：半开分钟区间 [Start, End)。
type Interval struct {
	Start int
	End   int
}

// Cell 打印网格的一个单元格：跨 Span 列，纵向堆叠 Slots。
// 空单元格 Span 恒为 1 且 Slots 为空。
type Cell struct {
	Span  int
	Slots []model.TimetableSlot
}

// IsEmpty 是否为占位空单元格
func (c Cell) IsEmpty() bool { return len(c.Slots) == 0 }

// BuildDayGroups 将时段集合划分为 5 天的有序显示组序列。
//
// 每天内部：按开始分钟稳定升序排序后单趟扫描，当前时段与当前组
// 首元素的 (start, end) 完全相等则并入该组，否则另起新组。
// 没有时段的天返回空序列（由展示层渲染为占位，不是错误）。
func BuildDayGroups(slots []model.TimetableSlot) map[string][][]model.TimetableSlot {
	groups := make(map[string][][]model.TimetableSlot, len(model.Days))

	for _, day := range model.Days {
		daySlots := make([]model.TimetableSlot, 0)
		for _, s := range slots {
			if s.DayOfWeek == day {
				daySlots = append(daySlots, s)
			}
		}

		// 稳定排序：同起点的时段保持输入相对顺序
		sort.SliceStable(daySlots, func(i, j int) bool {
			return timeutil.MinutesOf(daySlots[i].StartTime) < timeutil.MinutesOf(daySlots[j].StartTime)
		})

		dayGroups := make([][]model.TimetableSlot, 0, len(daySlots))
		for _, s := range daySlots {
			if n := len(dayGroups); n > 0 {
				head := dayGroups[n-1][0]
				if head.StartTime == s.StartTime && head.EndTime == s.EndTime {
					dayGroups[n-1] = append(dayGroups[n-1], s)
					continue
				}
			}
			dayGroups = append(dayGroups, []model.TimetableSlot{s})
		}

		groups[day] = dayGroups
	}

	return groups
}

// BuildPrintGrid 合成打印网格：一条全周共享的时间轴 + 每天的单元格序列。
//
// 时间轴取全部时段起止分钟的去重集合，外加 [dayStart, dayEnd] 两个
// 哨兵边界，升序后相邻配对成列。这是能区分所有边界的最粗列划分：
// 任何时段边界都恰好落在某条列边界上。
//
// 每天独立扫描时间轴：
//   - 起点恰为当前列起点的时段构成一个合并单元格；
//   - 跨度取组内最大结束分钟（较短的并行时段随组延展，这是
//     沿用的"课块"语义，不是待修的缺陷）；
//   - 无时段起始的列输出一个空单元格。
func BuildPrintGrid(slots []model.TimetableSlot, dayStart, dayEnd int) ([]Interval, map[string][]Cell) {
	// 1. 收集去重后的边界分钟
	boundarySet := map[int]bool{
		dayStart: true,
		dayEnd:   true,
	}
	for _, s := range slots {
		boundarySet[timeutil.MinutesOf(s.StartTime)] = true
		boundarySet[timeutil.MinutesOf(s.EndTime)] = true
	}

	boundaries := make([]int, 0, len(boundarySet))
	for b := range boundarySet {
		boundaries = append(boundaries, b)
	}
	sort.Ints(boundaries)

	// 2. 相邻配对成列
	intervals := make([]Interval, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		intervals = append(intervals, Interval{Start: boundaries[i], End: boundaries[i+1]})
	}

	// 3. 逐天扫描
	rows := make(map[string][]Cell, len(model.Days))
	for _, day := range model.Days {
		daySlots := make([]model.TimetableSlot, 0)
		for _, s := range slots {
			if s.DayOfWeek == day {
				daySlots = append(daySlots, s)
			}
		}

		cells := make([]Cell, 0, len(intervals))
		for i := 0; i < len(intervals); {
			// 起点恰为本列起点的时段（输入顺序即堆叠顺序）
			var starting []model.TimetableSlot
			for _, s := range daySlots {
				if timeutil.MinutesOf(s.StartTime) == intervals[i].Start {
					starting = append(starting, s)
				}
			}

			if len(starting) == 0 {
				cells = append(cells, Cell{Span: 1})
				i++
				continue
			}

			maxEnd := timeutil.MinutesOf(starting[0].EndTime)
			for _, s := range starting[1:] {
				if end := timeutil.MinutesOf(s.EndTime); end > maxEnd {
					maxEnd = end
				}
			}

			// 自本列起连续计入所有 end <= maxEnd 的列
			span := 0
			for j := i; j < len(intervals) && intervals[j].End <= maxEnd; j++ {
				span++
			}
			// 零时长/倒置时段会得出 0 跨度，收敛为占位 1 列防止网格塌缩
			if span < 1 {
				span = 1
			}

			cells = append(cells, Cell{Span: span, Slots: starting})
			i += span
		}

		rows[day] = cells
	}

	return intervals, rows
}
