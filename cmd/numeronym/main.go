// Copyright 2025 The Numeronym Generator Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the numeronym batch generator, CLI and IPC server.

Numeronym spells the last seven digits of phone numbers with dictionary words
dialed on a standard telephone keypad. Every way of covering the digits with
words is found, longest leading word first, and written to a plain text report.

# Usage

Solve every number in telephone.txt against word_list.txt and write results.txt:

	numeronym

Use other files, more workers and keep an SQLite archive of every path:

	numeronym -phones numbers.txt -words words.txt -out report.txt -workers 8 -db results.db

Compile the word list into a snapshot that loads faster next time:

	numeronym -snapshot words.msgpack
	numeronym -words words.msgpack

Run in CLI mode to solve numbers typed on stdin, or ?<digits> for keypad completions:

	numeronym -c

Run as a MessagePack IPC server on stdin/stdout:

	numeronym -s

# Configuration

Defaults come from a TOML file, created on first run, and flags override them:

	[files]
	phone_numbers = "telephone.txt"
	words = "word_list.txt"
	output = "results.txt"

	[report]
	max_paths = 10
	max_permutations = 3

	[batch]
	workers = 1

	[server]
	max_limit = 64

Relative input files are looked up in the working directory, next to the
executable, then in the config directory.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/brennanwilkes/Numeronym-Generator/internal/cli"
	"github.com/brennanwilkes/Numeronym-Generator/internal/utils"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/batch"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/config"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/dictionary"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/lexicon"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/report"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/server"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/store"
	"github.com/brennanwilkes/Numeronym-Generator/pkg/suggest"
)

const (
	Version = "1.0.0"
	AppName = "numeronym"
	gh      = "https://github.com/brennanwilkes/Numeronym-Generator"
)

// sigHandler cancels the returned context on the first interrupt and exits on the second.
func sigHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		cancel()
		<-c
		os.Exit(1)
	}()
	return ctx
}

// main parses flags, resolves files and hands off to the selected mode.
func main() {
	ctx := sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Path to a TOML config file")
	phonesFile := flag.String("phones", "", "File with one phone number per line")
	wordsFile := flag.String("words", "", "Word list or lexicon snapshot")
	outFile := flag.String("out", "", "Report file to write")
	cliMode := flag.Bool("c", false, "Run CLI, reading numbers from stdin")
	serverMode := flag.Bool("s", false, "Run msgpack IPC server on stdin/stdout")
	dbFile := flag.String("db", "", "SQLite archive to store every path in")
	workers := flag.Int("workers", 0, "Numbers solved in parallel")
	maxPaths := flag.Int("max-paths", 0, "Paths printed per number")
	maxPerms := flag.Int("max-perms", 0, "Tied words printed per span")
	snapshotFile := flag.String("snapshot", "", "Write the compiled lexicon to this file")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedConfig)

	applyFlags(cfg, *phonesFile, *wordsFile, *outFile, *dbFile, *snapshotFile, *workers, *maxPaths, *maxPerms)

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	ix, err := loadLexicon(pathResolver, cfg)
	if err != nil {
		log.Fatalf("Failed to load words: %v", err)
	}

	opts := report.Options{MaxPaths: cfg.Report.MaxPaths, MaxPermutations: cfg.Report.MaxPermutations}

	switch {
	case *serverMode:
		srv := server.NewServer(ix, suggest.NewCompleter(ix), cfg)
		showStartupInfo(ix)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		inputHandler := cli.NewInputHandler(ix, suggest.NewCompleter(ix), opts, cfg.Server.MaxLimit)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		if err := runBatch(ctx, pathResolver, cfg, ix, opts); err != nil {
			log.Fatalf("%v", err)
		}
	}
}

// applyFlags overrides config values with any flag that was set.
func applyFlags(cfg *config.Config, phones, words, out, db, snapshot string, workers, maxPaths, maxPerms int) {
	if phones != "" {
		cfg.Files.PhoneNumbers = phones
	}
	if words != "" {
		cfg.Files.Words = words
	}
	if out != "" {
		cfg.Files.Output = out
	}
	if db != "" {
		cfg.Files.Database = db
	}
	if snapshot != "" {
		cfg.Files.Snapshot = snapshot
	}
	if workers > 0 {
		cfg.Batch.Workers = workers
	}
	if maxPaths > 0 {
		cfg.Report.MaxPaths = maxPaths
	}
	if maxPerms > 0 {
		cfg.Report.MaxPermutations = maxPerms
	}
}

// loadLexicon reads the word list or snapshot and writes a snapshot when one is configured.
func loadLexicon(pr *utils.PathResolver, cfg *config.Config) (*lexicon.Index, error) {
	start := time.Now()
	path := pr.ResolveInput(cfg.Files.Words)

	ix, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug("Lexicon loaded", "file", utils.GetAbsolutePath(path), "words", ix.Len(), "sizes", ix.Sizes(), "took", time.Since(start))

	if cfg.Files.Snapshot != "" {
		out := pr.ResolveOutput(cfg.Files.Snapshot)
		if err := dictionary.SaveSnapshot(out, ix); err != nil {
			return nil, fmt.Errorf("write snapshot: %w", err)
		}
		log.Infof("Wrote lexicon snapshot to %s", out)
	}
	return ix, nil
}

// runBatch solves the phone number file, writes the report and optionally archives it.
func runBatch(ctx context.Context, pr *utils.PathResolver, cfg *config.Config, ix *lexicon.Index, opts report.Options) error {
	phones := pr.ResolveInput(cfg.Files.PhoneNumbers)
	numbers, err := dictionary.ReadNumbers(phones)
	if err != nil {
		return fmt.Errorf("read phone numbers: %w", err)
	}
	log.Debugf("Read %d numbers from %s", len(numbers), phones)

	results, failures, runErr := batch.NewRunner(ix, cfg.Batch.Workers).Run(ctx, numbers)
	if runErr != nil {
		log.Warnf("%v", runErr)
	}

	out := pr.ResolveOutput(cfg.Files.Output)
	err = utils.WriteFileAtomic(out, func(w io.Writer) error {
		return report.New(w, ix, opts).Write(results...)
	})
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.Infof("Wrote %d numbers to %s (%d skipped)", len(results), out, len(failures))

	if cfg.Files.Database != "" {
		dbPath := pr.ResolveOutput(cfg.Files.Database)
		db, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := store.NewArchive(db, ix).Save(ctx, results...); err != nil {
			return err
		}
		log.Infof("Archived %d numbers to %s", len(results), dbPath)
	}
	return runErr
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Numeronym ] Spells phone numbers with words")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(ix *lexicon.Index) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %d", ix.Len())
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
