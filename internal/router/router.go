// Package router configures the gin engine and attaches all routes.
package router

import (
	"io"
	"net/http"
	"time"

	"github.com/despesas/backend/internal/controllers"
	"github.com/despesas/backend/internal/controllers/healthz"
	"github.com/despesas/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Options configures the router.
type Options struct {
	// Origins allowed to call the API cross-origin. CORS stays disabled
	// when empty.
	CORSAllowOrigins []string

	// Registers the pprof routes under /debug/pprof when set.
	EnablePprof bool

	// Directory export files are written to.
	ExportDir string
}

// Router sets up the engine with all middlewares and routes.
func Router(options Options) (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(options.CORSAllowOrigins) > 0 {
		log.Debug().Strs("allowOrigins", options.CORSAllowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     options.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	healthz.RegisterRoutes(r.Group("/healthz"))

	// pprof performance profiles
	if options.EnablePprof {
		pprof.Register(r, "debug/pprof")
	}

	// API v1 setup
	v1 := r.Group("/v1")
	{
		v1.GET("", GetV1)
		v1.OPTIONS("", OptionsV1)
	}

	controllers.RegisterCategoryRoutes(v1.Group("/categories"))
	controllers.RegisterExpenseRoutes(v1.Group("/expenses"))
	controllers.RegisterReportRoutes(v1.Group("/reports"))
	controllers.RegisterExportRoutes(v1.Group("/exports"), options.ExportDir)

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"/healthz"`
	Version string `json:"version" example:"/version"`
	V1      string `json:"v1" example:"/v1"`
}

// GetRoot returns the links to the available endpoints.
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Version: "/version",
			V1:      "/v1",
		},
	})
}

func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// GetVersion returns the backend version.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{Version: version})
}

func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Categories string `json:"categories" example:"/v1/categories"`
	Expenses   string `json:"expenses" example:"/v1/expenses"`
	Reports    string `json:"reports" example:"/v1/reports"`
	Exports    string `json:"exports" example:"/v1/exports"`
}

// GetV1 returns the links to the v1 endpoints.
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Categories: "/v1/categories",
			Expenses:   "/v1/expenses",
			Reports:    "/v1/reports",
			Exports:    "/v1/exports",
		},
	})
}

func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
