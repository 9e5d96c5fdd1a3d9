package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/service"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 管理员登录
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "邮箱或密码错误")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// RefreshToken 刷新 Token
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.authSvc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			response.Unauthorized(c, 11002, "refresh token 无效")
		case errors.Is(err, service.ErrAdminNotFound):
			response.Unauthorized(c, 11003, "管理员不存在")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout 管理员登出
// POST /api/v1/auth/logout
// 将当前 access token 的 JTI 加入黑名单直至自然过期
func (h *AuthHandler) Logout(c *gin.Context) {
	jti, expiresAt := currentTokenJTI(c)
	if jti == "" {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), jti, expiresAt); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me 当前管理员信息
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	adminID := currentAdminID(c)
	if adminID == "" {
		response.Unauthorized(c, 10002, "未认证")
		return
	}

	result, err := h.authSvc.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.NotFound(c, 11003, "管理员不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
