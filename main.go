package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/farmstack/go-apidetails-generator/internal/report"
	"github.com/farmstack/go-apidetails-generator/internal/scanner"
	"github.com/farmstack/go-apidetails-generator/internal/spec"
	"github.com/google/uuid"
)

type Config struct {
	SpecPath       string   `json:"spec_path"`
	OutputPath     string   `json:"output_path"`
	ScanRoots      []string `json:"scan_roots"`
	ControllerDirs []string `json:"controller_dirs"`
	ExcludedFiles  []string `json:"excluded_files"`
	SourceExt      string   `json:"source_ext"`
	RoutesFilename string   `json:"routes_filename"`
	Title          string   `json:"title"`
}

func main() {
	// cmd line flags
	var (
		configPath     = flag.String("config", "", "Path to configuration file")
		mode           = flag.String("mode", "spec", "Generation mode (spec|scan)")
		specPath       = flag.String("spec", "docs/architecture/openapi.json", "Path to OpenAPI document (spec mode)")
		outputPath     = flag.String("output", "docs/architecture/API_DETAILS.md", "Output Markdown file path")
		scanRoots      = flag.String("roots", "backend/app,backend/modules", "Comma-separated source roots (scan mode)")
		controllerDirs = flag.String("controllers", "", "Comma-separated controller directories (scan mode)")
		excludedFiles  = flag.String("exclude", "", "Comma-separated files excluded from scanning")
		sourceExt      = flag.String("ext", ".php", "Source file extension (scan mode)")
		routesFilename = flag.String("routes-file", "routes.php", "Conventional routes filename (scan mode)")
		title          = flag.String("title", "", "Report title (defaults per mode)")
		help           = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	if *help {
		flag.PrintDefaults()
		return
	}

	var config Config

	if *configPath != "" {
		if err := loadConfig(*configPath, &config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	} else {
		config = Config{
			SpecPath:       *specPath,
			OutputPath:     *outputPath,
			ScanRoots:      splitList(*scanRoots),
			ControllerDirs: splitList(*controllerDirs),
			ExcludedFiles:  splitList(*excludedFiles),
			SourceExt:      *sourceExt,
			RoutesFilename: *routesFilename,
			Title:          *title,
		}
	}
	applyDefaults(&config)

	runID := uuid.NewString()

	var lines []string
	switch *mode {
	case "spec":
		if config.Title == "" {
			config.Title = "API Details"
		}
		fmt.Printf("[%s] rendering spec document: %s\n", runID, config.SpecPath)
		doc, err := spec.Load(config.SpecPath)
		if err != nil {
			log.Fatalf("Failed to load spec: %v", err)
		}
		lines = spec.Render(doc, config.Title)
	case "scan":
		if config.Title == "" {
			config.Title = "API Details (Parsed from Code)"
		}
		fmt.Printf("[%s] scanning %d source roots\n", runID, len(config.ScanRoots))
		src := scanner.New(scanner.Config{
			Roots:          config.ScanRoots,
			ControllerDirs: config.ControllerDirs,
			ExcludedFiles:  config.ExcludedFiles,
			SourceExt:      config.SourceExt,
			RoutesFilename: config.RoutesFilename,
		})
		result := src.Scan()
		fmt.Printf("[%s] found %d routes (%d attribute, %d %s)\n",
			runID, len(result.Routes), result.AttributeCount, result.RouterCount, config.RoutesFilename)

		lines = report.Header(config.Title)
		lines = append(lines, report.RenderCoverage(report.Coverage{
			Total:          len(result.Routes),
			Attribute:      result.AttributeCount,
			Router:         result.RouterCount,
			RoutesFilename: config.RoutesFilename,
			Missing:        result.MissingControllers,
		})...)
		lines = append(lines, report.Contract()...)
		lines = append(lines, report.RenderRoutes(result.Routes)...)
	default:
		log.Fatalf("Unknown mode: %s (supported: spec, scan)", *mode)
	}

	if err := report.Write(config.OutputPath, lines); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	// Verify the file was created
	if info, err := os.Stat(config.OutputPath); err == nil {
		fmt.Printf("[%s] wrote %s (%d bytes)\n", runID, config.OutputPath, info.Size())
	} else {
		fmt.Printf("ERROR: Output file was not created: %v\n", err)
	}
}

func loadConfig(configPath string, config *Config) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func applyDefaults(config *Config) {
	if config.SourceExt == "" {
		config.SourceExt = ".php"
	}
	if config.RoutesFilename == "" {
		config.RoutesFilename = "routes.php"
	}
	if config.OutputPath == "" {
		config.OutputPath = "docs/architecture/API_DETAILS.md"
	}
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
