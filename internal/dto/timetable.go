package dto

// ── 交互视图（按天分组） ──

// SlotGroupResponse 一个显示组：起止时间完全相同的若干时段并排呈现
type SlotGroupResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DayColumnResponse 一天的列：有序显示组序列（可为空）
type DayColumnResponse struct {
	Day    string              `json:"day"`
	Groups []SlotGroupResponse `json:"groups"`
}

// DayViewResponse 交互视图：周一至周五的 5 列
type DayViewResponse struct {
	PersonID   string              `json:"person_id"`
	PersonName string              `json:"person_name"`
	Days       []DayColumnResponse `json:"days"`
}

// ── 打印视图（合成网格） ──

// IntervalResponse 网格的一列：半开分钟区间 [Start, End)
type IntervalResponse struct {
	Start      int    `json:"start"`
	End        int    `json:"end"`
	StartLabel string `json:"start_label"` // "7:30 AM"
	EndLabel   string `json:"end_label"`
}

// PrintCellResponse 网格单元格：跨 Span 列；Slots 为空表示占位空格
type PrintCellResponse struct {
	Span  int            `json:"span"`
	Slots []SlotResponse `json:"slots,omitempty"`
}

// PrintRowResponse 一天的行
type PrintRowResponse struct {
	Day   string              `json:"day"`
	Cells []PrintCellResponse `json:"cells"`
}

// PrintViewResponse 打印视图：全周共享时间轴 + 5 行
type PrintViewResponse struct {
	PersonID   string             `json:"person_id"`
	PersonName string             `json:"person_name"`
	LogoURL    *string            `json:"logo_url,omitempty"`
	Intervals  []IntervalResponse `json:"intervals"`
	Rows       []PrintRowResponse `json:"rows"`
}
