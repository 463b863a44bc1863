package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/despesas/backend/internal/export"
	"github.com/despesas/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the expense listing to a CSV or PDF file",
		RunE:  runExport,
	}

	cmd.Flags().String("format", "csv", "export format (csv, pdf)")
	cmd.Flags().String("from", "", "start date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("to", "", "end date (YYYY-MM-DD, inclusive)")
	cmd.Flags().String("category", "", "filter by category ID")
	cmd.Flags().String("source", "", "filter by payment source substring")
	cmd.Flags().String("min", "", "minimum amount, e.g. 10.00")
	cmd.Flags().String("max", "", "maximum amount, e.g. 500.00")
	cmd.Flags().String("output", "", "output file (default: a timestamped file in the exports directory)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "csv" && format != "pdf" {
		return fmt.Errorf("unknown export format %q", format)
	}

	filter, err := exportFilter(cmd)
	if err != nil {
		return err
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}

	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		path = filepath.Join(viper.GetString("exports.directory"), export.FileName(time.Now(), format))
	}

	var written string
	if format == "csv" {
		written, err = export.WriteCSV(db, filter, path)
	} else {
		written, err = export.WritePDF(db, filter, path)
	}
	if err != nil {
		return err
	}

	fmt.Println(written)
	return nil
}

func exportFilter(cmd *cobra.Command) (models.ExpenseFilter, error) {
	var filter models.ExpenseFilter

	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return filter, fmt.Errorf("invalid from date: %w", err)
		}
		filter.From = &t
	}

	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return filter, fmt.Errorf("invalid to date: %w", err)
		}

		// The flag is a date, extend it to the whole day
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.To = &end
	}

	if category, _ := cmd.Flags().GetString("category"); category != "" {
		id, err := uuid.Parse(category)
		if err != nil {
			return filter, fmt.Errorf("invalid category ID: %w", err)
		}
		filter.CategoryID = id
	}

	if min, _ := cmd.Flags().GetString("min"); min != "" {
		amount, err := decimal.NewFromString(min)
		if err != nil {
			return filter, fmt.Errorf("invalid minimum amount: %w", err)
		}
		filter.MinAmount = &amount
	}

	if max, _ := cmd.Flags().GetString("max"); max != "" {
		amount, err := decimal.NewFromString(max)
		if err != nil {
			return filter, fmt.Errorf("invalid maximum amount: %w", err)
		}
		filter.MaxAmount = &amount
	}

	filter.Source, _ = cmd.Flags().GetString("source")

	return filter, nil
}
