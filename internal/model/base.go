package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── 星期枚举 ──
//
// 课表只覆盖工作日：周一至周五，周末不建模。
// 存储层以英文全称落库（与前端/导出共用同一组常量）。

const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
)

// Days 固定的 5 天显示顺序
var Days = []string{DayMonday, DayTuesday, DayWednesday, DayThursday, DayFriday}

// IsValidDay 校验是否为合法的星期值
func IsValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}
