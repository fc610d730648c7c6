package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05"

// Header returns the title block every report starts with: an H1 title and a
// generation timestamp line.
func Header(title string) []string {
	return []string{
		"# " + title,
		"Generated: " + time.Now().Format(timestampFormat),
		"",
	}
}

// Contract returns the fixed Required Headers and Standard Response Envelope
// blocks. These are part of the API contract and appear verbatim in every
// report regardless of input.
func Contract() []string {
	return []string{
		"## Required Headers",
		"- X-Correlation-Id (ULID, required)",
		"- X-Transaction-Id (ULID, required)",
		"- X-Request-Id (ULID, required)",
		"- Accept: application/json",
		"- Authorization: Bearer <token> (required for protected endpoints)",
		"",
		"## Standard Response Envelope",
		"- success: boolean",
		"- message: string",
		"- data: object|array|null",
		"- meta: object (timestamp, api_version, locale, pagination if applicable)",
		"- trace: object (correlation_id, transaction_id, request_id)",
		"",
	}
}

// Write joins lines with "\n" and writes the whole report in one shot,
// creating the output directory if needed. Callers build the complete report
// in memory first so a failed run never leaves a partial file behind.
func Write(outputPath string, lines []string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
