// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/sparta"
	"github.com/poiesic/sparta/ai"
	"github.com/poiesic/sparta/core"
	"github.com/poiesic/sparta/export"
	"github.com/poiesic/sparta/reindex"
	"github.com/poiesic/sparta/search"
)

func main() {
	app := &cli.App{
		Name:  "sparta",
		Usage: "Space attack technique catalog and search",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "query",
				Usage:     "Answer a query with a tactic listing or semantic matches",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags:     append(databaseFlags(), searchFlags()...),
			},
			{
				Name:      "keyword",
				Usage:     "Rank techniques by lexical keyword score",
				ArgsUsage: "<query text>",
				Action:    keywordCommand,
				Flags: append(databaseFlags(),
					&cli.IntFlag{
						Name:  "top-k",
						Usage: "Maximum number of results",
						Value: search.DefaultTopK,
					},
				),
			},
			{
				Name:   "interactive",
				Usage:  "Interactive query loop (quit, exit, or q to leave)",
				Action: interactiveCommand,
				Flags:  append(databaseFlags(), searchFlags()...),
			},
			{
				Name:      "related",
				Usage:     "Find techniques similar to an existing technique",
				ArgsUsage: "<technique id>",
				Action:    relatedCommand,
				Flags:     append(databaseFlags(), searchFlags()...),
			},
			{
				Name:   "export",
				Usage:  "Export the catalog as training data or JSON",
				Action: exportCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format (instruction, conversation, corpus, records)",
						Value:   "records",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path, or - for stdout",
						Value:   "-",
					},
				),
			},
			{
				Name:   "reindex",
				Usage:  "Re-embed all records and write a fresh index snapshot",
				Action: reindexCommand,
				Flags: append(databaseFlags(),
					&cli.StringFlag{
						Name:  "index",
						Usage: "Path of the index snapshot to write",
						Value: defaultIndexPath,
					},
					&cli.IntFlag{
						Name:  "batch-size",
						Usage: "Number of records to embed in each batch",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "report-interval",
						Usage: "Report progress every N records",
						Value: 100,
					},
					&cli.IntFlag{
						Name:  "max-retries",
						Usage: "Maximum retry attempts for failed operations",
						Value: 3,
					},
					&cli.DurationFlag{
						Name:  "retry-delay",
						Usage: "Base delay for exponential backoff",
						Value: 1 * time.Second,
					},
					&cli.IntFlag{
						Name:  "pool-size",
						Usage: "Number of batches embedded concurrently (0 = auto)",
					},
				),
			},
			{
				Name:   "stats",
				Usage:  "Print catalog statistics",
				Action: statsCommand,
				Flags:  databaseFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

const defaultIndexPath = "sparta_embeddings.idx"

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			Aliases: []string{"d"},
			Usage:   "Path to BadgerDB database directory",
			Value:   "./sparta_db",
		},
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "index",
			Usage: "Path used to persist and restore the embedding index",
			Value: defaultIndexPath,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Trace query routing decisions to stderr",
		},
		&cli.IntFlag{
			Name:  "top-k",
			Usage: "Maximum number of semantic matches",
			Value: search.DefaultTopK,
		},
		&cli.Float64Flag{
			Name:  "min-score",
			Usage: "Similarity floor for semantic matches",
			Value: search.DefaultMinScore,
		},
	}
}

func openDatabase(c *cli.Context) (*sparta.Database, error) {
	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := sparta.NewDatabase(c.String("db"), sparta.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func newRouter(db *sparta.Database, c *cli.Context) (*search.Router, error) {
	opts := []search.Option{
		search.WithIndexPath(c.String("index")),
		search.WithTopK(c.Int("top-k")),
		search.WithMinScore(float32(c.Float64("min-score"))),
	}
	if c.Bool("verbose") {
		opts = append(opts, search.WithMonitor(&traceMonitor{out: os.Stderr}))
	}
	return db.NewRouter(opts...)
}

// traceMonitor prints query routing decisions, enabled by --verbose.
type traceMonitor struct {
	out io.Writer
}

func (m *traceMonitor) Start(query string) {
	fmt.Fprintf(m.out, "query: %q\n", query)
}

func (m *traceMonitor) RoutedToTactic(keyword, tactic string) {
	fmt.Fprintf(m.out, "matched tactic keyword %q, listing %s\n", keyword, tactic)
}

func (m *traceMonitor) AfterIndexReady(vectors int) {
	fmt.Fprintf(m.out, "embedding index ready (%d vectors)\n", vectors)
}

func (m *traceMonitor) AfterSimilarityRank(matches []core.SimilarityMatch) {
	fmt.Fprintf(m.out, "similarity ranking kept %d matches\n", len(matches))
}

func (m *traceMonitor) Finish(resp *search.Response) {
	if resp.Kind == search.TacticQuery {
		fmt.Fprintf(m.out, "answered with %d records from the %s tactic\n", len(resp.Records), resp.Tactic)
		return
	}
	fmt.Fprintf(m.out, "answered with %d semantic matches\n", len(resp.Matches))
}

func queryCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	router, err := newRouter(db, c)
	if err != nil {
		return err
	}

	resp, err := router.Route(context.Background(), query)
	if err != nil {
		return err
	}

	fmt.Println(search.FormatResponse(resp))
	return nil
}

func keywordCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	matches := search.RankKeyword(db.Store().Records(), query, c.Int("top-k"))
	fmt.Println(search.FormatKeywordMatches(query, matches))
	return nil
}

func interactiveCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	router, err := newRouter(db, c)
	if err != nil {
		return err
	}

	fmt.Println("SPARTA Space Attack Technique Search")
	fmt.Println("Type a query, a tactic name, or quit/exit/q to leave.")

	ctx := context.Background()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nEnter query: ")
		if !scanner.Scan() {
			break
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		switch strings.ToLower(query) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		}

		resp, err := router.Route(ctx, query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "search failed: %v\n", err)
			continue
		}
		fmt.Println(search.FormatResponse(resp))
	}
	return scanner.Err()
}

func relatedCommand(c *cli.Context) error {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return fmt.Errorf("technique id is required")
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	router, err := newRouter(db, c)
	if err != nil {
		return err
	}

	matches, err := router.Related(context.Background(), id, c.Int("top-k"))
	if err != nil {
		return err
	}

	rec, err := db.Store().FindByID(id)
	if err != nil {
		return err
	}

	fmt.Println(search.FormatMatches(fmt.Sprintf("techniques related to %s (%s)", rec.Name, rec.ID), matches))
	return nil
}

func exportCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	var out io.Writer = os.Stdout
	if path := c.String("output"); path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	generator, err := db.NewExportGenerator()
	if err != nil {
		return err
	}

	var count int
	format := c.String("format")
	switch format {
	case "instruction":
		count, err = generator.WriteInstructions(out)
	case "conversation":
		count, err = generator.WriteConversations(out)
	case "corpus":
		count, err = generator.WriteCorpus(out)
	case "records":
		count = db.Store().Len()
		err = export.WriteRecords(out, db.Store().Records())
	default:
		return fmt.Errorf("unknown export format %q: must be one of instruction, conversation, corpus, records", format)
	}
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Exported %d entries (%s format)\n", count, format)
	return nil
}

func reindexCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	config := &reindex.Config{
		BatchSize:      c.Int("batch-size"),
		ReportInterval: c.Int("report-interval"),
		MaxRetries:     c.Int("max-retries"),
		RetryDelay:     c.Duration("retry-delay"),
		PoolSize:       c.Int("pool-size"),
	}
	if config.BatchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}
	if config.ReportInterval <= 0 {
		return fmt.Errorf("report-interval must be greater than 0")
	}
	if config.MaxRetries <= 0 {
		return fmt.Errorf("max-retries must be greater than 0")
	}

	reindexer, err := db.NewReindexer(config, os.Stderr)
	if err != nil {
		return err
	}
	defer reindexer.Close()

	fmt.Fprintf(os.Stderr, "Database: %s\n", c.String("db"))
	fmt.Fprintf(os.Stderr, "Embedding host: %s\n", c.String("embedding-host"))
	fmt.Fprintf(os.Stderr, "Embedding model: %s\n", c.String("embedding-model"))
	fmt.Fprintln(os.Stderr)

	snap, err := reindexer.Run(context.Background())
	if err != nil {
		return fmt.Errorf("reindexing failed: %w", err)
	}

	indexPath := c.String("index")
	if err := reindex.WriteSnapshot(snap, indexPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Index snapshot written to %s\n", indexPath)
	return nil
}

func statsCommand(c *cli.Context) error {
	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	stats := db.Store().Stats()
	fmt.Printf("Total entries: %d\n", stats.Total)
	fmt.Printf("Techniques: %d\n", stats.Techniques)
	fmt.Printf("Sub-techniques: %d\n", stats.SubTechniques)
	fmt.Println("\nBy tactic:")
	for _, tc := range stats.PerTactic {
		fmt.Printf("  %s %-22s %3d techniques, %3d sub-techniques\n",
			tc.TacticID, tc.TacticName, tc.Techniques, tc.SubTechniques)
	}
	return nil
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
