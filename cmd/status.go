package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"maintenance-tracker/internal/formatters"
	"maintenance-tracker/internal/storage"

	"github.com/spf13/cobra"
)

var (
	statusEval    evalFlags
	outputFormats string // Comma-separated: text,json,markdown
	jsonFile      string
	markdownFile  string

	statusS3Upload bool
	statusS3Bucket string
	statusS3Prefix string
	statusS3Region string
	statusS3RunID  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Compute the full ranked reminder report",
	Long: `Compute the full reminder report: every configured rule, ranked with
overdue items first and then by tightest remaining margin.

Examples:
  # Console report
  maintenance-tracker status --mileage 15500

  # Machine-readable outputs
  maintenance-tracker status --mileage 15500 \
    --output json,markdown \
    --json-file report.json --markdown-file digest.md

  # Publish the report bundle to S3
  maintenance-tracker status --mileage 15500 \
    --output json,markdown \
    --json-file report.json --markdown-file digest.md \
    --s3-upload --s3-bucket my-bucket --s3-prefix fleet/camry`,
	Run: func(cmd *cobra.Command, args []string) {
		runStatus(cmd)
	},
}

func init() {
	addEvalFlags(statusCmd, &statusEval)
	statusCmd.Flags().StringVarP(&outputFormats, "output", "o", "text", "Output formats (comma-separated): text,json,markdown")
	statusCmd.Flags().StringVar(&jsonFile, "json-file", "", "JSON output file path")
	statusCmd.Flags().StringVar(&markdownFile, "markdown-file", "", "Markdown digest output file path")

	statusCmd.Flags().BoolVar(&statusS3Upload, "s3-upload", false, "Upload the report bundle to S3")
	statusCmd.Flags().StringVar(&statusS3Bucket, "s3-bucket", "", "S3 bucket name (or use S3_BUCKET env var)")
	statusCmd.Flags().StringVar(&statusS3Prefix, "s3-prefix", "", "S3 key prefix (or use S3_PREFIX env var)")
	statusCmd.Flags().StringVar(&statusS3Region, "s3-region", "", "AWS region (or use AWS_REGION env var; default eu-west-1)")
	statusCmd.Flags().StringVar(&statusS3RunID, "s3-run-id", "", "Run ID for the published bundle (default: auto-generated)")
}

func runStatus(cmd *cobra.Command) {
	formats := parseOutputFormats(outputFormats)
	if len(formats) == 0 {
		log.Fatal("Error: At least one output format must be specified")
	}
	for _, format := range formats {
		switch format {
		case "text", "json", "markdown":
		default:
			log.Fatalf("Error: Unknown output format: %s. Valid formats: text, json, markdown", format)
		}
	}
	if statusS3Upload && jsonFile == "" && markdownFile == "" {
		log.Fatal("Error: --s3-upload needs --json-file and/or --markdown-file to publish")
	}

	sched, results, refMileage, refDate := loadEvaluation(cmd, &statusEval)
	report := formatters.BuildReport(sched.VehicleName, refMileage, refDate, results)

	for _, format := range formats {
		switch format {
		case "text":
			formatters.Text(report)

		case "json":
			if jsonFile != "" {
				data, err := json.MarshalIndent(report, "", "  ")
				if err != nil {
					log.Fatalf("Error marshaling JSON: %v", err)
				}
				if err := os.WriteFile(jsonFile, data, 0600); err != nil {
					log.Fatalf("Error writing JSON file: %v", err)
				}
				fmt.Printf("JSON report saved to %s\n", jsonFile)
			} else {
				formatters.JSON(report)
			}

		case "markdown":
			digest := formatters.Markdown(report, sched.Thresholds.Miles, sched.Thresholds.Days)
			if markdownFile != "" {
				if err := os.WriteFile(markdownFile, []byte(digest), 0600); err != nil {
					log.Fatalf("Error writing markdown file: %v", err)
				}
				fmt.Printf("Markdown digest saved to %s\n", markdownFile)
			} else {
				fmt.Println(digest)
			}
		}
	}

	if statusS3Upload {
		uploadStatusReport(report)
	}
}

func uploadStatusReport(report formatters.ReportData) {
	bucket := statusS3Bucket
	if bucket == "" {
		bucket = os.Getenv("S3_BUCKET")
	}
	prefix := statusS3Prefix
	if prefix == "" {
		prefix = os.Getenv("S3_PREFIX")
	}
	region := statusS3Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
		if region == "" {
			region = "eu-west-1"
		}
	}

	manifest := &storage.ReportManifest{
		VehicleName:      report.VehicleName,
		ReferenceDate:    report.ReferenceDate,
		ReferenceMileage: report.ReferenceMileage,
		TotalRules:       report.TotalRules,
		OverdueCount:     report.OverdueCount,
	}

	fmt.Println("\nUploading report bundle to S3...")
	config := storage.ReportUploadConfig{
		Bucket:       bucket,
		Prefix:       prefix,
		Region:       region,
		RunID:        statusS3RunID,
		JSONFile:     jsonFile,
		MarkdownFile: markdownFile,
		Manifest:     manifest,
	}
	if err := storage.UploadReport(config); err != nil {
		log.Fatalf("Error: Failed to upload to S3: %v", err)
	}
}

// parseOutputFormats parses comma-separated output formats.
func parseOutputFormats(formats string) []string {
	if formats == "" {
		return []string{"text"}
	}

	parts := strings.Split(formats, ",")
	var result []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
