package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

// PersonHandler 学生档案 HTTP 处理器（只读）
type PersonHandler struct {
	personSvc service.PersonService
}

// NewPersonHandler 创建 PersonHandler
func NewPersonHandler(personSvc service.PersonService) *PersonHandler {
	return &PersonHandler{personSvc: personSvc}
}

// List 学生列表
// GET /api/v1/persons
func (h *PersonHandler) List(c *gin.Context) {
	result, err := h.personSvc.ListPersons(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Get 单个学生档案
// GET /api/v1/persons/:id
func (h *PersonHandler) Get(c *gin.Context) {
	result, err := h.personSvc.GetPerson(c.Request.Context(), c.Param("id"))
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
