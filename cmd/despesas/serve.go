package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/despesas/backend/internal/models"
	"github.com/despesas/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP backend",
		RunE:  runServe,
	}

	cmd.Flags().String("address", "", "address to listen on (default :8080)")
	_ = viper.BindPFlag("server.address", cmd.Flags().Lookup("address"))

	return cmd
}

func runServe(_ *cobra.Command, _ []string) error {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		ginMode = "release"
	}
	gin.SetMode(ginMode)

	_, err := openDatabase()
	if err != nil {
		return err
	}

	options := router.Options{
		EnablePprof: viper.GetBool("server.pprof"),
		ExportDir:   viper.GetString("exports.directory"),
	}

	if origins := viper.GetString("server.cors_allow_origins"); origins != "" {
		options.CORSAllowOrigins = strings.Fields(origins)
	}

	r, err := router.Router(options)
	if err != nil {
		return err
	}

	return r.Run(viper.GetString("server.address"))
}

// openDatabase connects to the configured SQLite database, migrates the
// schema and seeds the default categories.
func openDatabase() (*gorm.DB, error) {
	path := viper.GetString("database.path")

	err := os.MkdirAll(filepath.Dir(path), os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}

	db, err := models.Connect(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path))
	if err != nil {
		return nil, err
	}

	err = models.Migrate(db)
	if err != nil {
		return nil, err
	}

	err = models.Seed(db)
	if err != nil {
		return nil, err
	}

	return db, nil
}
