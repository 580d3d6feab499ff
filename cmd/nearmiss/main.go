package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/benedoc-inc/nearmiss/catalog"
	"github.com/benedoc-inc/nearmiss/config"
	"github.com/benedoc-inc/nearmiss/glyph"
	"github.com/benedoc-inc/nearmiss/report"
	"github.com/benedoc-inc/nearmiss/types"
)

func main() {
	// Catch panics and write to stderr
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "PANIC: %v\n", r)
			os.Exit(1)
		}
	}()

	var (
		answerJSON = flag.String("answer", "", "Path to the JSON answer record written by the form")
		configPath = flag.String("config", "", "Path to YAML config file (optional)")
		langTag    = flag.String("lang", "", "Report language tag, overrides the config (fr, en, de)")
		outputPDF  = flag.String("output", "", "Path to output PDF, overrides the record's save/name")
		capture    = flag.String("capture", "", "Path to the body diagram capture, overrides the config")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		logFile    = flag.String("log", "", "Path to log file (if empty, logs to stderr)")
	)
	flag.Parse()

	if *answerJSON == "" {
		log.Fatal("Error: -answer flag is required")
	}

	var logF *os.File
	if *logFile != "" {
		var err error
		logF, err = os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file: %v\n", err)
			os.Exit(1)
		}
		log.SetOutput(logF)
		fmt.Fprintf(os.Stderr, "Logging to: %s\n", *logFile)
		defer logF.Close()
	} else {
		log.SetOutput(os.Stderr)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fail(logF, err)
	}
	if *langTag != "" {
		cfg.Language = *langTag
	}
	if *capture != "" {
		cfg.BodyCapture = *capture
	}
	if *verbose {
		cfg.Verbose = true
	}

	lang, err := cfg.Lang()
	if err != nil {
		fail(logF, err)
	}
	if cfg.Verbose {
		log.Printf("Answer: %s", *answerJSON)
		log.Printf("Language: %s", lang)
		if *configPath != "" {
			log.Printf("Config: %s", *configPath)
		}
	}

	answer, err := readAnswer(*answerJSON)
	if err != nil {
		fail(logF, err)
	}

	compiler, cat, err := newCompiler(cfg)
	if err != nil {
		fail(logF, err)
	}

	if *outputPDF != "" {
		answer.SaveDir, answer.Name = filepath.Split(*outputPDF)
		if answer.SaveDir == "" {
			answer.SaveDir = "."
		}
	}
	if answer.Name == "" {
		texts, err := cat.Texts(lang)
		if err != nil {
			fail(logF, err)
		}
		answer.Name = types.DefaultFileName(texts[catalog.KeyTitle], answer.Date)
	}

	result, err := compiler.Compile(context.Background(), answer, lang)
	if err != nil {
		fail(logF, err)
	}

	if cfg.Verbose {
		log.Printf("Report: %d page(s), %s, %d warning(s)", result.Pages, result.Mode, len(result.Warnings))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", w)
	}
	if logF != nil {
		fmt.Fprintf(logF, "Output: %s\n", result.Path)
		logF.Sync()
	}
	fmt.Println(result.Path)
}

// newCompiler loads the catalog and glyphs named by cfg.
func newCompiler(cfg *config.Config) (*report.Compiler, *catalog.Catalog, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogDir != "" {
		cat, err = catalog.LoadDir(cfg.CatalogDir, cfg.Verbose)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		return nil, nil, err
	}

	glyphs, err := glyph.New(cfg.AssetsDir)
	if err != nil {
		return nil, nil, err
	}

	compiler := report.NewCompiler(cat, glyphs, report.Options{
		BodyCapture:     cfg.BodyCapture,
		Verbose:         cfg.Verbose,
		CollectWarnings: true,
	})
	return compiler, cat, nil
}

func readAnswer(path string) (types.Answer, error) {
	var answer types.Answer
	data, err := os.ReadFile(path)
	if err != nil {
		return answer, types.PathError(types.ErrCodeIOFailure, path, err)
	}
	if err := json.Unmarshal(data, &answer); err != nil {
		return answer, err
	}
	return answer, nil
}

// fail prints the single failure notice and exits.
func fail(logF *os.File, err error) {
	if logF != nil {
		fmt.Fprintf(logF, "Error: %v\n", err)
		logF.Sync()
		logF.Close()
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
