package api

import (
	"expensetracker/config"
	"expensetracker/database"
	"expensetracker/middleware"
	"expensetracker/models"
	"expensetracker/service"

	"github.com/gin-gonic/gin"
)

// GoogleAuthHandler Google 登录处理器
type GoogleAuthHandler struct {
	cfg *config.Config
}

// NewGoogleAuthHandler 创建 Google 登录处理器
func NewGoogleAuthHandler(cfg *config.Config) *GoogleAuthHandler {
	return &GoogleAuthHandler{cfg: cfg}
}

// GoogleLoginRequest Google 登录请求
type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// Login Google 账号登录
// @Summary Google 账号登录
// @Description 使用客户端获取的 Google id_token 登录。首次登录自动创建账号（无需管理员解锁），后续按 Google 账号标识匹配已有用户。
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google id_token"
// @Success 200 {object} Response{data=LoginResponse} "登录成功"
// @Failure 400 {object} Response "id_token 无效"
// @Failure 403 {object} Response "Google 登录未启用或账号已锁定"
// @Router /api/v1/auth/google [post]
func (h *GoogleAuthHandler) Login(c *gin.Context) {
	if !h.cfg.Google.Enabled {
		Error(c, 403, "Google 登录未启用")
		return
	}

	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误")
		return
	}

	info, err := service.VerifyGoogleIDToken(req.IDToken, h.cfg.Google.ClientID)
	if err != nil {
		BadRequest(c, SafeErrorMessage(err, "Google 登录校验失败"))
		return
	}

	var user models.User
	err = database.DB.Where("google_sub = ?", info.Sub).First(&user).Error
	if err != nil {
		// 首次登录，自动建号
		username := info.Name
		if username == "" {
			username = info.Email
		}
		sub := info.Sub
		user = models.User{
			Username:  username,
			Email:     info.Email,
			GoogleSub: &sub,
			PhotoURL:  info.Picture,
			Status:    models.UserStatusActive,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "创建用户失败"))
			return
		}
	}

	if user.Status != models.UserStatusActive {
		Error(c, 403, "账号已锁定，请联系管理员解锁")
		return
	}

	// 同步头像（Google 侧可能更新）
	if info.Picture != "" && info.Picture != user.PhotoURL {
		database.DB.Model(&user).Update("photo_url", info.Picture)
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		InternalError(c, "生成 token 失败")
		return
	}

	Success(c, LoginResponse{Token: token, UserInfo: user})
}
