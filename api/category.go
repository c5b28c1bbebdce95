package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"unicode/utf8"

	"expensetracker/database"
	"expensetracker/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CategoryHandler 消费类别处理器
type CategoryHandler struct{}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// ErrCategoryInUse 类别仍被消费记录引用，无法删除
var ErrCategoryInUse = errors.New("类别下存在消费记录")

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required"`
	Icon  string `json:"icon" binding:"omitempty,max=10"`
	Color string `json:"color" binding:"omitempty,max=20"` // 颜色代码，如 #ef4444
}

type CategoryUpdateRequest struct {
	Name  string  `json:"name"`
	Icon  *string `json:"icon" binding:"omitempty,max=10"`
	Color *string `json:"color" binding:"omitempty,max=20"`
}

// validateCategoryName 名称非空且不超过30个字符（按 Unicode 字符计）
func validateCategoryName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "名称不能为空"
	}
	if utf8.RuneCountInString(name) > 30 {
		return "", "名称最多30个字符"
	}
	return name, ""
}

// List 列出所有类别
// @Summary 获取消费类别列表
// @Description 获取所有消费类别，默认类别在前，按排序值和ID升序排列
// @Tags 消费类别
// @Produce json
// @Success 200 {object} Response{data=[]models.Category} "获取成功"
// @Router /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	var list []models.Category
	if err := database.DB.Order("sort_order ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	Success(c, list)
}

// Create 创建自定义类别
// @Summary 创建消费类别
// @Description 创建自定义消费类别。名称区分大小写且全局唯一，自定义类别统一排在默认类别之后。
// @Tags 消费类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "类别信息"
// @Success 200 {object} Response{data=models.Category} "创建成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Router /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	name, msg := validateCategoryName(req.Name)
	if msg != "" {
		BadRequest(c, msg)
		return
	}

	// 名称唯一（区分大小写，BINARY 避免 MySQL 默认排序规则忽略大小写）
	var existing models.Category
	if err := database.DB.Where("BINARY name = ?", name).First(&existing).Error; err == nil {
		BadRequest(c, "类别名称已存在")
		return
	}

	icon := req.Icon
	if icon == "" {
		icon = "📦"
	}
	color := req.Color
	if color == "" {
		color = "#64748b" // 默认灰色
	}

	cat := models.Category{
		Name:      name,
		Icon:      icon,
		Color:     color,
		IsCustom:  true,
		SortOrder: models.CustomCategorySortOrder,
	}
	if err := database.DB.Create(&cat).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建失败"))
		return
	}
	SuccessWithMessage(c, "创建成功", cat)
}

// Update 更新类别
// @Summary 更新消费类别
// @Description 更新指定的消费类别。改名时同样要求全局唯一（排除自身）。
// @Tags 消费类别
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Param request body CategoryUpdateRequest true "更新的类别信息"
// @Success 200 {object} Response{data=models.Category} "更新成功"
// @Failure 400 {object} Response "参数错误或类别名称已存在"
// @Failure 404 {object} Response "类别不存在"
// @Router /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		name, msg := validateCategoryName(req.Name)
		if msg != "" {
			BadRequest(c, msg)
			return
		}
		var existing models.Category
		if err := database.DB.Where("BINARY name = ? AND id != ?", name, cat.ID).First(&existing).Error; err == nil {
			BadRequest(c, "类别名称已存在")
			return
		}
		updates["name"] = name
	}
	if req.Icon != nil && *req.Icon != "" {
		updates["icon"] = *req.Icon
	}
	if req.Color != nil {
		color := *req.Color
		if color == "" {
			color = "#64748b"
		}
		updates["color"] = color
	}
	if len(updates) == 0 {
		SuccessWithMessage(c, "无需更新", cat)
		return
	}

	if err := database.DB.Model(&cat).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}
	database.DB.First(&cat, cat.ID)
	SuccessWithMessage(c, "更新成功", cat)
}

// deleteCategory 在事务内检查引用并删除，保证检查和删除之间不插入新记录
func deleteCategory(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Expense{}).Where("category_id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrCategoryInUse
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// Delete 删除类别
// @Summary 删除消费类别
// @Description 软删除指定的消费类别。类别下仍有消费记录时拒绝删除并返回 409。
// @Tags 消费类别
// @Produce json
// @Security BearerAuth
// @Param id path int true "类别ID"
// @Success 200 {object} Response "删除成功"
// @Failure 400 {object} Response "无效的ID"
// @Failure 404 {object} Response "类别不存在"
// @Failure 409 {object} Response "类别下存在消费记录"
// @Router /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var cat models.Category
	if err := database.DB.First(&cat, uint(id64)).Error; err != nil {
		NotFound(c, "类别不存在")
		return
	}

	if err := deleteCategory(database.DB, cat.ID); err != nil {
		if errors.Is(err, ErrCategoryInUse) {
			Error(c, http.StatusConflict, "该类别下存在消费记录，无法删除")
			return
		}
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
