// Package timeutil 提供课表专用的墙钟时间换算与显示格式化。
//
// 所有函数均为纯函数：同输入同输出，无副作用。
// 两个渲染路径（交互视图 / 打印网格）共用同一套换算，
// 保证全局时间排序口径一致。
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesOf 将 "HH:MM" 或 "HH:MM:SS" 解析为自零点起的分钟数。
//
// 宽容策略：空串或格式非法时返回 0，不报错 —— 该值只作为排序键使用，
// 上游存储（time 列）已保证入库格式合法，此处无需再设防。
func MinutesOf(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}

// DisplayTime 将 "HH:MM[:SS]" 渲染为 12 小时制标签，如 "2:05 PM"。
// 空串或非法输入渲染为空串。
func DisplayTime(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return ""
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return ""
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return ""
	}
	return FormatClock(hours*60 + minutes)
}

// FormatClock 将分钟偏移渲染为 12 小时制标签，如 845 → "2:05 PM"。
// 用于打印网格的列头（列边界只存在分钟偏移，无原始字符串）。
func FormatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}
