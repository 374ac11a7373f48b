package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"veristat/adapters/excel"
	"veristat/adapters/extract"
	"veristat/adapters/report"
	"veristat/app"
	"veristat/internal/config"
)

// The CLI runs the verification engine over the materialized output of the
// external extraction step (a JSON file with "tests" and/or "means"
// arrays), prints the report tables, and optionally writes them to an
// Excel workbook.
func main() {
	inputPath := flag.String("input", "", "path to the extractor output JSON file")
	excelPath := flag.String("excel", "", "optional path for an .xlsx report (overrides EXCEL_FILE)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -input extracted.json [-excel report.xlsx]")
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *excelPath == "" {
		*excelPath = cfg.Report.ExcelFile
	}

	ctx := context.Background()
	source := extract.NewFileSource(*inputPath)
	service := app.NewVerifyService(cfg.Engine.SignificanceLevel, cfg.Engine.MaxWorkers)

	tests, err := source.TestRecords(ctx)
	if err != nil {
		log.Fatalf("Failed to read extractor output: %v", err)
	}
	means, err := source.MeanRecords(ctx)
	if err != nil {
		log.Fatalf("Failed to read extractor output: %v", err)
	}
	if len(tests) == 0 && len(means) == 0 {
		log.Println("No statistical tests were found.")
		return
	}

	var writer *excel.ReportWriter
	if *excelPath != "" {
		writer = excel.NewReportWriter(*excelPath)
	}

	if len(tests) > 0 {
		outcomes, err := service.VerifyBatch(ctx, tests)
		if err != nil {
			log.Fatalf("Verification aborted: %v", err)
		}
		rows := report.StatcheckRows(tests, outcomes)
		fmt.Println(report.Markdown("Statcheck Results", report.StatcheckHeader, rows, app.Summarize(outcomes)))
		if writer != nil {
			if err := writer.AddSheet("Statcheck", report.StatcheckHeader, rows); err != nil {
				log.Fatalf("Failed to build Excel report: %v", err)
			}
		}
	}

	if len(means) > 0 {
		outcomes, err := service.CheckMeans(ctx, means)
		if err != nil {
			log.Fatalf("Verification aborted: %v", err)
		}
		rows := report.GrimRows(means, outcomes)
		fmt.Println(report.Markdown("GRIM Results", report.GrimHeader, rows, app.Summarize(outcomes)))
		if writer != nil {
			if err := writer.AddSheet("GRIM", report.GrimHeader, rows); err != nil {
				log.Fatalf("Failed to build Excel report: %v", err)
			}
		}
	}

	if writer != nil {
		if err := writer.Save(); err != nil {
			log.Fatalf("Failed to save Excel report: %v", err)
		}
	}
}
