package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

// SlotHandler 课表时段 HTTP 处理器
// 读取公开，写入需要认证（路由层挂 JWTAuth）。
type SlotHandler struct {
	slotSvc service.SlotService
}

// NewSlotHandler 创建 SlotHandler
func NewSlotHandler(slotSvc service.SlotService) *SlotHandler {
	return &SlotHandler{slotSvc: slotSvc}
}

// List 某学生的全部时段
// GET /api/v1/persons/:id/slots
func (h *SlotHandler) List(c *gin.Context) {
	result, err := h.slotSvc.ListSlots(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Create 新建时段
// POST /api/v1/slots
func (h *SlotHandler) Create(c *gin.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.slotSvc.CreateSlot(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotInvalidTime):
			response.BadRequest(c, 13001, "开始时间必须早于结束时间")
		case errors.Is(err, service.ErrPersonNotFound):
			response.NotFound(c, 12001, "学生不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Update 更新时段（部分字段）
// PUT /api/v1/slots/:id
func (h *SlotHandler) Update(c *gin.Context) {
	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.slotSvc.UpdateSlot(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlotNotFound):
			response.NotFound(c, 13002, "时段不存在")
		case errors.Is(err, service.ErrSlotInvalidTime):
			response.BadRequest(c, 13001, "开始时间必须早于结束时间")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除时段
// DELETE /api/v1/slots/:id
func (h *SlotHandler) Delete(c *gin.Context) {
	if err := h.slotSvc.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSlotNotFound) {
			response.NotFound(c, 13002, "时段不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, nil)
}
