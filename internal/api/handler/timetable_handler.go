package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

// TimetableHandler 课表视图 HTTP 处理器
// 两个视图都是无状态派生，公开只读。
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler 创建 TimetableHandler
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// DayView 交互视图：按天分组的显示组序列
// GET /api/v1/persons/:id/timetable
func (h *TimetableHandler) DayView(c *gin.Context) {
	result, err := h.timetableSvc.DayView(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.NotFound(c, 12001, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// PrintView 打印视图：共享时间轴 + 跨列单元格
// GET /api/v1/persons/:id/timetable/print
func (h *TimetableHandler) PrintView(c *gin.Context) {
	result, err := h.timetableSvc.PrintView(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.NotFound(c, 12001, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
