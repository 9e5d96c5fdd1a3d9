package model

// TimetableSlot 课表时段表 — 对应 timetable_slots
//
// 时间以 "HH:MM" 文本存储（time 列），分钟精度。
// 同一人允许存在 (day, start, end) 完全相同的多条记录：
// 这是并行选修课的正常形态，由展示层合并为同组渲染，不做唯一约束。
type TimetableSlot struct {
	SlotID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"slot_id"`
	PersonID  string `gorm:"type:uuid;not null;index"                       json:"person_id"`
	DayOfWeek string `gorm:"type:varchar(10);not null"                      json:"day_of_week"` // Monday–Friday
	StartTime string `gorm:"type:time;not null"                             json:"start_time"`  // "HH:MM"
	EndTime   string `gorm:"type:time;not null"                             json:"end_time"`    // "HH:MM"
	Subject   string `gorm:"type:varchar(100);not null"                     json:"subject"`
	Teacher   string `gorm:"type:varchar(100);not null;default:''"          json:"teacher"`
	BaseModel

	// 关联
	Person *Person `gorm:"foreignKey:PersonID;references:PersonID" json:"person,omitempty"`
}

// TableName 指定表名
func (TimetableSlot) TableName() string { return "timetable_slots" }
