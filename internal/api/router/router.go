package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/config"
	"github.com/muhamadnurizanfakir/school-timetable/internal/api/handler"
	"github.com/muhamadnurizanfakir/school-timetable/internal/api/middleware"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/jwt"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
//
// 访问模型："已登录即可编辑"。所有读取接口（学生、时段、视图、
// 导出、SSE 流）公开；时段写入与认证自身的接口挂 JWTAuth。
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1 MiB，课表请求体都很小
	r.Use(middleware.Metrics())

	// ── 健康检查与指标 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 学生与课表（公开只读）
		persons := v1.Group("/persons")
		{
			persons.GET("", h.Person.List)
			persons.GET("/:id", h.Person.Get)
			persons.GET("/:id/slots", h.Slot.List)
			persons.GET("/:id/timetable", h.Timetable.DayView)
			persons.GET("/:id/timetable/print", h.Timetable.PrintView)
			persons.GET("/:id/timetable/stream", h.Stream.Changes)
			persons.GET("/:id/export/excel", h.Export.Excel)
			persons.GET("/:id/export/ics", h.Export.ICS)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 时段编辑
			slots := authorized.Group("/slots")
			{
				slots.POST("", h.Slot.Create)
				slots.PUT("/:id", h.Slot.Update)
				slots.DELETE("/:id", h.Slot.Delete)
			}
		}
	}

	return r
}
