package handler

import (
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/redis"
)

// Handler 所有 HTTP 处理器的聚合入口
type Handler struct {
	Auth      *AuthHandler
	Person    *PersonHandler
	Slot      *SlotHandler
	Timetable *TimetableHandler
	Export    *ExportHandler
	Stream    *StreamHandler
}

// NewHandler 创建 Handler 聚合
// rdb 允许为 nil：SSE 流降级为仅心跳（无变更推送）。
func NewHandler(svc *service.Service, rdb *redis.Client, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(svc.Auth),
		Person:    NewPersonHandler(svc.Person),
		Slot:      NewSlotHandler(svc.Slot),
		Timetable: NewTimetableHandler(svc.Timetable),
		Export:    NewExportHandler(svc.Export),
		Stream:    NewStreamHandler(svc.Person, rdb, logger),
	}
}
