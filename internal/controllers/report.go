package controllers

import (
	"net/http"
	"time"

	"github.com/despesas/backend/internal/httputil"
	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/reports"
	"github.com/despesas/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterReportRoutes registers the routes for the aggregation reports
// with the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/category-totals", httputil.OptionsGet)
	r.GET("/category-totals", GetCategoryTotals)

	r.OPTIONS("/monthly-totals", httputil.OptionsGet)
	r.GET("/monthly-totals", GetMonthlyTotals)

	r.OPTIONS("/total", httputil.OptionsGet)
	r.GET("/total", GetTotal)

	r.OPTIONS("/limits", httputil.OptionsGet)
	r.GET("/limits", GetLimits)

	r.OPTIONS("/limit-alerts", httputil.OptionsGet)
	r.GET("/limit-alerts", GetLimitAlerts)
}

// PeriodQuery is the inclusive date range shared by the period reports.
type PeriodQuery struct {
	From time.Time `form:"from" time_format:"2006-01-02" time_utc:"1" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" time_utc:"1" binding:"required"`
}

// MonthsQuery selects the window for the monthly totals.
type MonthsQuery struct {
	Months int `form:"months"`
}

// MonthQuery selects the month for the limit evaluation, defaulting to the
// current month.
type MonthQuery struct {
	Month string `form:"month"`
}

// TotalResponse is the response for the period total.
type TotalResponse struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Total decimal.Decimal `json:"total"`
}

func bindPeriod(c *gin.Context) (PeriodQuery, bool) {
	var query PeriodQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errPeriodRequired)
		return PeriodQuery{}, false
	}

	// Extend the to date to the whole day
	query.To = query.To.AddDate(0, 0, 1).Add(-time.Nanosecond)

	return query, true
}

func bindMonth(c *gin.Context) (types.Month, bool) {
	var query MonthQuery
	_ = c.ShouldBindQuery(&query)

	if query.Month == "" {
		return types.MonthOf(time.Now().In(time.UTC)), true
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, errInvalidMonth)
		return types.Month{}, false
	}

	return month, true
}

// GetCategoryTotals returns the spend per category for an inclusive date
// range. Categories without expenses in the range are not included.
func GetCategoryTotals(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	totals, err := models.CategoryTotals(models.DB, period.From, period.To)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetMonthlyTotals returns one total per month for a rolling window ending
// at the current month. Months without expenses are zero.
func GetMonthlyTotals(c *gin.Context) {
	var query MonthsQuery
	_ = c.ShouldBindQuery(&query)

	months := query.Months
	if months <= 0 {
		months = 12
	}

	totals, err := models.MonthlyTotals(models.DB, months, time.Now().In(time.UTC))
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// GetTotal returns the total spend for an inclusive date range.
func GetTotal(c *gin.Context) {
	period, ok := bindPeriod(c)
	if !ok {
		return
	}

	total, err := models.TotalSpent(models.DB, period.From, period.To)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, TotalResponse{
		From:  period.From,
		To:    period.To,
		Total: total,
	})
}

// GetLimits returns the limit evaluation for every category in a month.
func GetLimits(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	results, err := reports.EvaluateLimits(models.DB, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetLimitAlerts returns the categories that reached their limit in a month.
func GetLimitAlerts(c *gin.Context) {
	month, ok := bindMonth(c)
	if !ok {
		return
	}

	alerts, err := reports.AtOrOverLimit(models.DB, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, alerts)
}
