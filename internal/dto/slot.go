package dto

// CreateSlotRequest 新建时段请求
type CreateSlotRequest struct {
	PersonID  string `json:"person_id" binding:"required,uuid"`
	DayOfWeek string `json:"day_of_week" binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string `json:"start_time" binding:"required"` // "HH:MM"
	EndTime   string `json:"end_time" binding:"required"`   // "HH:MM"
	Subject   string `json:"subject" binding:"required,max=100"`
	Teacher   string `json:"teacher" binding:"max=100"`
}

// UpdateSlotRequest 更新时段请求（字段均可选，nil 表示不变）
type UpdateSlotRequest struct {
	DayOfWeek *string `json:"day_of_week" binding:"omitempty,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Subject   *string `json:"subject" binding:"omitempty,max=100"`
	Teacher   *string `json:"teacher" binding:"omitempty,max=100"`
}

// ColorResponse 科目配色（四个样式角色，前端直接套用）
type ColorResponse struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Badge      string `json:"badge"`
}

// SlotResponse 时段
type SlotResponse struct {
	ID         string        `json:"id"`
	PersonID   string        `json:"person_id"`
	DayOfWeek  string        `json:"day_of_week"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	StartLabel string        `json:"start_label"` // "8:00 AM"
	EndLabel   string        `json:"end_label"`   // "9:30 AM"
	Subject    string        `json:"subject"`
	Teacher    string        `json:"teacher"`
	Color      ColorResponse `json:"color"`
}

// ── 变更事件 ──

// 变更事件类型
const (
	ChangeInsert = "insert"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// SlotChangeEvent 课表变更事件（Redis 频道 / SSE 载荷）
// 事件自包含完整时段，订阅方收到后整表重拉重算，不做增量合并。
type SlotChangeEvent struct {
	Kind string       `json:"kind"` // insert | update | delete
	Slot SlotResponse `json:"slot"`
}
