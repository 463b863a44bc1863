package controllers

import (
	"net/http"

	"github.com/despesas/backend/internal/httputil"
	"github.com/despesas/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetCategory)
		r.PATCH("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}

	// Monthly limits
	{
		r.OPTIONS("/:id/limits/:month", httputil.OptionsGetPut)
		r.GET("/:id/limits/:month", GetMonthLimit)
		r.PUT("/:id/limits/:month", SetMonthLimit)
	}
}

// CategoryEditable contains the category fields that clients may set. The
// system flag is deliberately not part of it.
type CategoryEditable struct {
	Name         string           `json:"name"`
	Color        string           `json:"color"`
	Icon         string           `json:"icon"`
	MonthlyLimit *decimal.Decimal `json:"monthlyLimit"`
}

func (e CategoryEditable) model() models.Category {
	return models.Category{
		Name:         e.Name,
		Color:        e.Color,
		Icon:         e.Icon,
		MonthlyLimit: e.MonthlyLimit,
	}
}

// MonthLimitEditable is the body for setting a monthly limit.
type MonthLimitEditable struct {
	Limit decimal.Decimal `json:"limit"`
}

// CreateCategory creates a new category.
func CreateCategory(c *gin.Context) {
	var editable CategoryEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	category := editable.model()
	err = models.CreateCategory(models.DB, &category)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

// GetCategories returns all categories ordered by name.
func GetCategories(c *gin.Context) {
	categories, err := models.Categories(models.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category.
func GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := models.CategoryByID(models.DB, id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// UpdateCategory updates the fields of a category that are set in the
// request body.
func UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var update models.CategoryUpdate
	err := httputil.BindData(c, &update)
	if err != nil {
		return
	}

	category, err := models.UpdateCategory(models.DB, id, update)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category. System categories and categories that
// still have expenses cannot be deleted.
func DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := models.DeleteCategory(models.DB, id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMonthLimit returns the limit configured for a category and month.
func GetMonthLimit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	month, ok := parseMonth(c, "month")
	if !ok {
		return
	}

	limit, err := models.MonthLimitFor(models.DB, id, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, limit)
}

// SetMonthLimit sets the limit for a category and month, overwriting an
// existing one.
func SetMonthLimit(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	month, ok := parseMonth(c, "month")
	if !ok {
		return
	}

	var editable MonthLimitEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	limit, err := models.SetMonthLimit(models.DB, id, month, editable.Limit)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, limit)
}
