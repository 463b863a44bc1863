package controllers

import (
	"net/http"
	"time"

	"github.com/despesas/backend/internal/httputil"
	"github.com/despesas/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// ExpenseEditable contains the expense fields that clients may set.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CategoryID  uuid.UUID       `json:"categoryId"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
}

func (e ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:      e.Amount,
		Date:        e.Date,
		CategoryID:  e.CategoryID,
		Description: e.Description,
		Source:      e.Source,
	}
}

// ExpenseQueryFilter are the query parameters for the expense listing.
// Dates are specified as YYYY-MM-DD, the range is inclusive on both ends.
type ExpenseQueryFilter struct {
	From     time.Time        `form:"from" time_format:"2006-01-02" time_utc:"1"`
	To       time.Time        `form:"to" time_format:"2006-01-02" time_utc:"1"`
	Category string           `form:"category"`
	Min      *decimal.Decimal `form:"min"`
	Max      *decimal.Decimal `form:"max"`
	Source   string           `form:"source"`
	Limit    int              `form:"limit"`
}

func (f ExpenseQueryFilter) model() (models.ExpenseFilter, error) {
	filter := models.ExpenseFilter{
		MinAmount: f.Min,
		MaxAmount: f.Max,
		Source:    f.Source,
		Limit:     f.Limit,
	}

	if !f.From.IsZero() {
		from := f.From
		filter.From = &from
	}

	if !f.To.IsZero() {
		// The to parameter is a date, extend it to the whole day
		to := f.To.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &to
	}

	if f.Category != "" {
		id, err := uuid.Parse(f.Category)
		if err != nil {
			return models.ExpenseFilter{}, errInvalidUUID
		}
		filter.CategoryID = id
	}

	return filter, nil
}

// bindExpenseFilter binds the listing query parameters, answering the
// request itself when they are invalid.
func bindExpenseFilter(c *gin.Context) (models.ExpenseFilter, bool) {
	var query ExpenseQueryFilter
	err := c.ShouldBindQuery(&query)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return models.ExpenseFilter{}, false
	}

	filter, err := query.model()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return models.ExpenseFilter{}, false
	}

	return filter, true
}

// CreateExpense creates a new expense.
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		return
	}

	expense := editable.model()
	err = models.CreateExpense(models.DB, &expense)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// GetExpenses returns the filtered expense listing, most recent first.
func GetExpenses(c *gin.Context) {
	filter, ok := bindExpenseFilter(c)
	if !ok {
		return
	}

	expenses, err := models.Expenses(models.DB, filter)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense returns a single expense.
func GetExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	expense, err := models.ExpenseByID(models.DB, id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// UpdateExpense updates the fields of an expense that are set in the
// request body.
func UpdateExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var update models.ExpenseUpdate
	err := httputil.BindData(c, &update)
	if err != nil {
		return
	}

	expense, err := models.UpdateExpense(models.DB, id, update)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense deletes an expense.
func DeleteExpense(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := models.DeleteExpense(models.DB, id)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}
