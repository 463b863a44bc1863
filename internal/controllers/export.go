package controllers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/despesas/backend/internal/export"
	"github.com/despesas/backend/internal/httputil"
	"github.com/despesas/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterExportRoutes registers the routes for file exports with the
// RouterGroup that is passed. Files are written below dir.
func RegisterExportRoutes(r *gin.RouterGroup, dir string) {
	r.OPTIONS("/csv", httputil.OptionsPost)
	r.POST("/csv", createExport(dir, "csv", export.WriteCSV))

	r.OPTIONS("/pdf", httputil.OptionsPost)
	r.POST("/pdf", createExport(dir, "pdf", export.WritePDF))
}

// ExportResponse contains the path of the written export file.
type ExportResponse struct {
	Path string `json:"path"`
}

func createExport(dir, extension string, write func(*gorm.DB, models.ExpenseFilter, string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, ok := bindExpenseFilter(c)
		if !ok {
			return
		}

		path := filepath.Join(dir, export.FileName(time.Now(), extension))
		written, err := write(models.DB, filter, path)
		if err != nil {
			httputil.NewError(c, http.StatusInternalServerError, err)
			return
		}

		c.JSON(http.StatusCreated, ExportResponse{Path: written})
	}
}
