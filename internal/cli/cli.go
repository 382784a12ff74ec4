// Package cli parses summit command configuration and runs one generation
// session per player file.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/summit/dataset"
	"github.com/katalvlaran/summit/export"
	"github.com/katalvlaran/summit/options"
	"github.com/katalvlaran/summit/world"
)

// Config holds summit command configuration.
type Config struct {
	DatasetPath  string `env:"SUMMIT_DATASET"`
	TopologyPath string `env:"SUMMIT_TOPOLOGY"`
	DBPath       string `env:"SUMMIT_DB_PATH"`
	Verbose      bool   `env:"SUMMIT_VERBOSE"`
	PackagePath  string `env:"SUMMIT_PACKAGE"`

	// PlayerFiles are the positional arguments. None means one player
	// with default options.
	PlayerFiles []string
}

// ParseConfig parses environment and flags into Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "dataset rows file (.csv or .json); embedded when empty")
	fs.StringVar(&cfg.TopologyPath, "topology", cfg.TopologyPath, "level topology YAML; embedded when empty")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite file to record sessions in")
	fs.StringVar(&cfg.PackagePath, "package", cfg.PackagePath, "write the data package JSON to this file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log session phases to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.PlayerFiles = fs.Args()

	return cfg, nil
}

// PlayerReport is the outcome of one player's session.
type PlayerReport struct {
	Name    string                `json:"name"`
	File    string                `json:"file,omitempty"`
	Summary export.SessionSummary `json:"summary"`
}

// Report is what Run prints.
type Report struct {
	Checksum string         `json:"checksum"`
	Players  []PlayerReport `json:"players"`
}

// Run generates every player and writes a JSON Report to out. Phase logs
// go to errOut when cfg.Verbose is set.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil || !cfg.Verbose {
		errOut = io.Discard
	}
	logger := log.New(errOut, "[SUMMIT] ", log.LstdFlags)

	d, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	var store *export.SQLiteStore
	if cfg.DBPath != "" {
		if store, err = export.Open(cfg.DBPath); err != nil {
			return err
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close store: %v", err)
			}
		}()
	}

	files := cfg.PlayerFiles
	if len(files) == 0 {
		files = []string{""}
	}
	var report Report
	var groups map[string][]string
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := loadPlayer(file, i+1)
		if err != nil {
			return err
		}
		sess := world.NewSession(d, world.WithPlayer(i+1), world.WithLogger(logger))
		if err := sess.Generate(p.Options); err != nil {
			return fmt.Errorf("player %q: %w", p.Name, err)
		}
		if groups == nil {
			groups = sess.Groups()
		}
		sum := export.Summarize(sess)
		if store != nil {
			if err := store.SaveSession(ctx, sum); err != nil {
				return err
			}
		}
		report.Players = append(report.Players, PlayerReport{Name: p.Name, File: file, Summary: sum})
	}

	pkg := export.NewDataPackage(d, groups)
	report.Checksum = pkg.Checksum
	if store != nil {
		if err := store.SaveDataPackage(ctx, pkg); err != nil {
			return err
		}
	}
	if cfg.PackagePath != "" {
		if err := writePackage(cfg.PackagePath, pkg); err != nil {
			return err
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

func loadDataset(cfg Config) (dataset.Dataset, error) {
	if cfg.DatasetPath == "" {
		if cfg.TopologyPath != "" {
			return dataset.Dataset{}, fmt.Errorf("topology %q given without a dataset", cfg.TopologyPath)
		}
		return dataset.Default()
	}

	return dataset.LoadFiles(cfg.DatasetPath, cfg.TopologyPath)
}

func loadPlayer(file string, slot int) (options.Player, error) {
	p := options.Player{Options: options.Defaults()}
	if file != "" {
		var err error
		if p, err = options.LoadPlayerFile(file); err != nil {
			return options.Player{}, err
		}
	}
	if p.Name == "" {
		p.Name = fmt.Sprintf("Player%d", slot)
	}

	return p, nil
}

func writePackage(path string, pkg export.DataPackage) (retErr error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create package file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && retErr == nil {
			retErr = err
		}
	}()

	return pkg.WriteJSON(f)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
