package main

// Analyze a resume file from the command line without a running server:
//   go run ./cmd/analyze -resume path/to/resume.pdf

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-ats/internal/insight"
	"resume-ats/internal/insight/openai"
	"resume-ats/internal/keywords"
	"resume-ats/internal/pipeline"
	"resume-ats/internal/shared/config"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path to resume file (pdf, doc or docx)")
	taxonomyPath := flag.String("taxonomy", cfg.TaxonomyFile, "Path to keyword taxonomy file (optional)")
	enrich := flag.Bool("enrich", false, "Enrich the result via OpenAI (requires OPENAI_API_KEY)")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" {
		exitErr("resume path is required")
	}

	mimeType, err := mimeFromExt(*resumePath)
	if err != nil {
		exitErr(err.Error())
	}

	data, err := os.ReadFile(*resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}

	taxonomy := keywords.Default()
	if strings.TrimSpace(*taxonomyPath) != "" {
		taxonomy, err = keywords.Load(*taxonomyPath)
		if err != nil {
			exitErr(fmt.Sprintf("load taxonomy: %v", err))
		}
	}

	var insightClient insight.Client
	if *enrich {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		if err != nil {
			exitErr(fmt.Sprintf("insight client: %v", err))
		}
		insightClient = client
	}

	analyzer := pipeline.NewAnalyzer(taxonomy, insightClient, cfg.InsightTimeout)
	result, err := analyzer.Analyze(context.Background(), pipeline.RawDocument{
		Data:     data,
		MimeType: mimeType,
		FileName: filepath.Base(*resumePath),
	})
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		exitErr(fmt.Sprintf("format json: %v", err))
	}
	fmt.Println(string(pretty))
}

func mimeFromExt(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf", nil
	case ".doc":
		return "application/msword", nil
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document", nil
	default:
		return "", fmt.Errorf("unsupported file extension: %s", filepath.Ext(path))
	}
}

func exitErr(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
