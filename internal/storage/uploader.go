package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ReportUploadConfig describes one reminder-report bundle to publish.
type ReportUploadConfig struct {
	Bucket       string
	Prefix       string
	Region       string
	RunID        string
	JSONFile     string
	MarkdownFile string
	Manifest     *ReportManifest
}

// ReportManifest is the metadata object written alongside each published
// report bundle.
type ReportManifest struct {
	Timestamp        string   `json:"timestamp"`
	RunID            string   `json:"run_id"`
	VehicleName      string   `json:"vehicle_name"`
	ReferenceDate    string   `json:"reference_date"`
	ReferenceMileage *float64 `json:"reference_mileage,omitempty"`
	TotalRules       int      `json:"total_rules"`
	OverdueCount     int      `json:"overdue_count"`
	Files            struct {
		JSON     string `json:"json,omitempty"`
		Markdown string `json:"markdown,omitempty"`
		Manifest string `json:"manifest"`
	} `json:"files"`
}

// UploadReport publishes the report files and their manifest under
// reports/<run-id>/. A fresh run ID is generated when none is supplied;
// supplying one that already exists is an error rather than an overwrite.
func UploadReport(config ReportUploadConfig) error {
	s3Client, err := NewS3Client(config.Bucket, config.Prefix, config.Region)
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	runID := config.RunID
	if runID == "" {
		runID = uuid.New().String()
	}
	s3Prefix := fmt.Sprintf("reports/%s", runID)
	manifestS3Key := fmt.Sprintf("%s/manifest.json", s3Prefix)

	if config.RunID != "" {
		exists, err := s3Client.FileExists(manifestS3Key)
		if err != nil {
			return fmt.Errorf("failed to check for existing run: %w", err)
		}
		if exists {
			return fmt.Errorf("run %s already published at %s", runID, s3Client.GetS3URI(s3Prefix))
		}
	}

	if config.Manifest == nil {
		config.Manifest = &ReportManifest{}
	}
	config.Manifest.RunID = runID
	if config.Manifest.Timestamp == "" {
		config.Manifest.Timestamp = time.Now().Format(time.RFC3339)
	}

	if config.JSONFile != "" {
		s3Key := fmt.Sprintf("%s/report.json", s3Prefix)
		if err := s3Client.UploadFile(config.JSONFile, s3Key); err != nil {
			return fmt.Errorf("failed to upload JSON report: %w", err)
		}
		config.Manifest.Files.JSON = s3Key
		fmt.Printf("Uploaded JSON report to %s\n", s3Client.GetS3URI(s3Key))
	}

	if config.MarkdownFile != "" {
		s3Key := fmt.Sprintf("%s/digest.md", s3Prefix)
		if err := s3Client.UploadFile(config.MarkdownFile, s3Key); err != nil {
			return fmt.Errorf("failed to upload markdown digest: %w", err)
		}
		config.Manifest.Files.Markdown = s3Key
		fmt.Printf("Uploaded markdown digest to %s\n", s3Client.GetS3URI(s3Key))
	}

	config.Manifest.Files.Manifest = manifestS3Key
	manifestData, err := json.MarshalIndent(config.Manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := s3Client.UploadContent(manifestData, manifestS3Key); err != nil {
		return fmt.Errorf("failed to upload manifest: %w", err)
	}
	fmt.Printf("Uploaded manifest to %s\n", s3Client.GetS3URI(manifestS3Key))

	fmt.Printf("\nReport bundle: s3://%s/%s/\n", config.Bucket, s3Prefix)
	fmt.Printf("   Run ID: %s\n", runID)
	fmt.Printf("   Vehicle: %s\n", config.Manifest.VehicleName)
	fmt.Printf("   Overdue: %d of %d rules\n", config.Manifest.OverdueCount, config.Manifest.TotalRules)

	return nil
}
