package handler

import (
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/redis"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

// 心跳间隔：低于常见反向代理的空闲超时，保活长连接
const heartbeatInterval = 25 * time.Second

// StreamHandler 课表变更 SSE 流
//
// 浏览器订阅某学生的变更频道后，每当该学生的时段被增删改，
// 就收到一条自包含的变更事件（与写路径广播的 JSON 一致）。
// 客户端收到事件后整表重拉视图接口，服务端不做增量下发。
type StreamHandler struct {
	personSvc service.PersonService
	rdb       *redis.Client
	logger    *zap.Logger
}

// NewStreamHandler 创建 StreamHandler
// rdb 为 nil 时流降级为仅心跳（连接可建立，但没有变更推送）。
func NewStreamHandler(personSvc service.PersonService, rdb *redis.Client, logger *zap.Logger) *StreamHandler {
	return &StreamHandler{personSvc: personSvc, rdb: rdb, logger: logger}
}

// Changes 订阅某学生的课表变更事件
// GET /api/v1/persons/:id/timetable/stream
func (h *StreamHandler) Changes(c *gin.Context) {
	personID := c.Param("id")

	// 先确认学生存在，避免为无效 ID 挂起长连接
	if _, err := h.personSvc.GetPerson(c.Request.Context(), personID); err != nil {
		if errors.Is(err, service.ErrPersonNotFound) {
			response.NotFound(c, 12001, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ctx := c.Request.Context()

	// rdb 为 nil 时 events 保持 nil 通道（select 中永不命中），
	// 统一走心跳分支，省去两套流循环。
	var events <-chan *goredis.Message
	if h.rdb != nil {
		pubsub := h.rdb.SubscribeChanges(ctx, personID)
		defer pubsub.Close()
		events = pubsub.Channel()
		h.logger.Info("SSE 订阅建立",
			zap.String("person_id", personID),
			zap.String("client_ip", c.ClientIP()),
		)
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent("change", msg.Payload)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
