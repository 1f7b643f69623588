// Copyright 2025 Talentfold
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/talentfold/ingest"
	"github.com/talentfold/ingest/ai"
	"github.com/talentfold/ingest/dataset"
	"github.com/talentfold/ingest/ingestion"
	"github.com/talentfold/ingest/report"
	"github.com/talentfold/ingest/storage/sqlite"
	"github.com/urfave/cli/v2"
)

func dataDirFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "data-dir",
		Aliases: []string{"d"},
		Usage:   "Root directory for raw files, databases and reports",
		Value:   "data",
	}
}

func main() {
	app := &cli.App{
		Name:  "ingest",
		Usage: "Normalize job, resume and skill datasets into a retrieval index",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: func(c *cli.Context) error {
			_ = godotenv.Load() // silently ignore if .env doesn't exist
			return setupLogger(c)
		},
		Commands: []*cli.Command{
			{
				Name:   "download",
				Usage:  "Download every configured dataset (or fall back to bundled samples)",
				Action: downloadCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
			{
				Name:   "clean",
				Usage:  "Normalize raw rows, dedupe listings and build the chunk table",
				Action: cleanCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
			{
				Name:   "embed",
				Usage:  "Embed cleaned chunks and save them to the vector collection",
				Action: embedCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
			{
				Name:   "load-db",
				Usage:  "Load cleaned tables into the SQLite database",
				Action: loadDBCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
			{
				Name:   "report",
				Usage:  "Write the ingestion quality report",
				Action: reportCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
			{
				Name:      "query",
				Usage:     "Search the vector collection for chunks similar to a text",
				ArgsUsage: "<text>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					dataDirFlag(),
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Number of results to return",
						Value:   5,
					},
					&cli.StringFlag{
						Name:  "source-type",
						Usage: "Restrict results to one source type (listing, resume)",
					},
					&cli.StringFlag{
						Name:  "city",
						Usage: "Restrict results to one city",
					},
					&cli.StringFlag{
						Name:  "state",
						Usage: "Restrict results to one state",
					},
					&cli.StringFlag{
						Name:  "country",
						Usage: "Restrict results to one country",
					},
					&cli.StringFlag{
						Name:  "mode",
						Usage: "Restrict results to one work mode (online, onsite, hybrid)",
					},
				},
			},
			{
				Name:   "all",
				Usage:  "Run download, clean, embed, load-db and report in sequence",
				Action: allCommand,
				Flags:  []cli.Flag{dataDirFlag()},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

// loadConfig assembles the run configuration from flags and environment.
// Credentials only ever come from the environment (or a .env file).
func loadConfig(c *cli.Context) ingest.Config {
	config := ingest.DefaultConfig()
	config.DataDir = c.String("data-dir")
	config.KaggleUsername = os.Getenv("KAGGLE_USERNAME")
	config.KaggleKey = os.Getenv("KAGGLE_KEY")

	var opts []ai.ConfigOption
	if host := os.Getenv("EMBEDDING_HOST"); host != "" {
		opts = append(opts, ai.WithHost(host))
	}
	if model := os.Getenv("EMBEDDING_MODEL"); model != "" {
		opts = append(opts, ai.WithModel(model))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		opts = append(opts, ai.WithAPIKey(key))
	} else {
		// No key means no remote provider; fall back to deterministic
		// local vectors so every step still runs.
		opts = append(opts, ai.WithProvider(ai.ProviderLocal))
	}
	if provider := os.Getenv("EMBEDDING_PROVIDER"); provider != "" {
		opts = append(opts, ai.WithProvider(ai.Provider(provider)))
	}
	config.AI = ai.NewConfig(opts...)

	return config
}

func downloadCommand(c *cli.Context) error {
	return runDownload(context.Background(), loadConfig(c))
}

func cleanCommand(c *cli.Context) error {
	_, err := runClean(context.Background(), loadConfig(c))
	return err
}

func embedCommand(c *cli.Context) error {
	config := loadConfig(c)
	result, err := readState(config.StatePath())
	if err != nil {
		return err
	}
	return runEmbed(context.Background(), config, result)
}

func loadDBCommand(c *cli.Context) error {
	config := loadConfig(c)
	result, err := readState(config.StatePath())
	if err != nil {
		return err
	}
	return runLoadDB(context.Background(), config, result)
}

func reportCommand(c *cli.Context) error {
	config := loadConfig(c)
	result, err := readState(config.StatePath())
	if err != nil {
		return err
	}
	return runReport(config, result)
}

func queryCommand(c *cli.Context) error {
	text := strings.TrimSpace(c.Args().First())
	if text == "" {
		return fmt.Errorf("query text is required")
	}

	config := loadConfig(c)
	ws, err := ingest.OpenWorkspace(config)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	searcher, err := ws.NewSearcher()
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	filter := map[string]string{}
	for flag, key := range map[string]string{
		"source-type": "source_type",
		"city":        "city",
		"state":       "state",
		"country":     "country",
		"mode":        "mode",
	} {
		if value := c.String(flag); value != "" {
			filter[key] = value
		}
	}

	matches, err := searcher.FindSimilar(context.Background(), text, c.Int("top-k"), filter)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(matches) == 0 {
		fmt.Println("No matches.")
		return nil
	}
	for i, match := range matches {
		meta := match.Record.Metadata
		place := meta["city"]
		if meta["state"] != "" {
			if place != "" {
				place += ", "
			}
			place += meta["state"]
		}
		fmt.Printf("%2d. %-32s score=%.4f source=%s %s\n",
			i+1, match.Record.ChunkID, match.Score, meta["source_type"], place)
	}
	return nil
}

func allCommand(c *cli.Context) error {
	ctx := context.Background()
	config := loadConfig(c)

	if err := runDownload(ctx, config); err != nil {
		return err
	}
	result, err := runClean(ctx, config)
	if err != nil {
		return err
	}
	if err := runEmbed(ctx, config, result); err != nil {
		return err
	}
	if err := runLoadDB(ctx, config, result); err != nil {
		return err
	}
	return runReport(config, result)
}

func runDownload(ctx context.Context, config ingest.Config) error {
	downloader := dataset.NewDownloader(config.RawDir(), config.SamplesDir(),
		dataset.WithCredentials(config.KaggleUsername, config.KaggleKey))
	if err := downloader.DownloadAll(ctx, dataset.DefaultSpecs); err != nil {
		return fmt.Errorf("download failed: %w", err)
	}
	return nil
}

func runClean(ctx context.Context, config ingest.Config) (*ingestion.Result, error) {
	pipeline, err := ingestion.NewPipeline()
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}
	defer pipeline.Release()

	raw := loadRawTables(config)
	result, err := pipeline.Clean(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("clean failed: %w", err)
	}
	if err := writeState(config.StatePath(), result); err != nil {
		return nil, fmt.Errorf("failed to persist clean results: %w", err)
	}
	if err := ingestion.ExportCSV(config.CleanDir(), result); err != nil {
		return nil, fmt.Errorf("failed to export cleaned tables: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Listings: %d\n", len(result.Listings))
	fmt.Fprintf(os.Stderr, "Resumes:  %d\n", len(result.Resumes))
	fmt.Fprintf(os.Stderr, "Chunks:   %d\n", len(result.Chunks))
	return result, nil
}

func runEmbed(ctx context.Context, config ingest.Config, result *ingestion.Result) error {
	ws, err := ingest.OpenWorkspace(config)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer ws.Close()

	if err := ws.EmbedChunks(ctx, result.Chunks); err != nil {
		return fmt.Errorf("embed failed: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Embedded %d chunks\n", len(result.Chunks))
	return nil
}

func runLoadDB(ctx context.Context, config ingest.Config, result *ingestion.Result) error {
	store, err := sqlite.NewStore(config.DBPath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	if err := store.LoadSkills(ctx, result.Skills); err != nil {
		return fmt.Errorf("failed to load skills: %w", err)
	}
	if err := store.LoadCompanies(ctx, result.Companies); err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}
	if err := store.LoadListings(ctx, result.Listings); err != nil {
		return fmt.Errorf("failed to load listings: %w", err)
	}
	if err := store.LoadResumes(ctx, result.Resumes); err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}
	if err := store.LoadChunks(ctx, result.Chunks); err != nil {
		return fmt.Errorf("failed to load chunks: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Database: %s\n", config.DBPath())
	return nil
}

func runReport(config ingest.Config, result *ingestion.Result) error {
	data := report.FromResult(result, locationSamples(result))
	if err := report.Write(config.ReportPath(), data); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Report: %s\n", config.ReportPath())
	return nil
}

// loadRawTables reads every configured dataset directory and groups the rows
// by dataset type. Missing or malformed files are logged and skipped.
func loadRawTables(config ingest.Config) ingestion.RawTables {
	logger := slog.Default()
	var raw ingestion.RawTables
	for _, spec := range dataset.DefaultSpecs {
		rows := dataset.LoadStructuredFiles(filepath.Join(config.RawDir(), spec.Alias), logger)
		switch spec.Type {
		case dataset.TypeListings:
			raw.Listings = append(raw.Listings, rows...)
		case dataset.TypeSkills:
			raw.Skills = append(raw.Skills, rows...)
		case dataset.TypeCompanies:
			raw.Companies = append(raw.Companies, rows...)
		case dataset.TypeResumes:
			raw.Resumes = append(raw.Resumes, rows...)
		}
	}
	return raw
}

// locationSamples formats resolved listing locations for the report.
func locationSamples(result *ingestion.Result) []string {
	var samples []string
	for _, listing := range result.Listings {
		var parts []string
		for _, part := range []string{listing.LocationCity, listing.LocationState, listing.LocationCountry} {
			if part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) == 0 {
			continue
		}
		samples = append(samples, strings.Join(parts, ", "))
		if len(samples) == 20 {
			break
		}
	}
	return samples
}

func writeState(path string, result *ingestion.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}

func readState(path string) (*ingestion.Result, error) {
	encoded, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("no clean results at %s: run the clean step first", path)
		}
		return nil, err
	}
	var result ingestion.Result
	if err := json.Unmarshal(encoded, &result); err != nil {
		return nil, fmt.Errorf("failed to read clean results: %w", err)
	}
	return &result, nil
}
