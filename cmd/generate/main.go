package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dconn.dev/islands/internal/config"
	"dconn.dev/islands/internal/generation"
	"dconn.dev/islands/internal/layout"
	"dconn.dev/islands/internal/render"
)

// options are the generate command's flags
type options struct {
	width, height int
	format        string
	season        string
	seed          uint64
	caption       string
	out           string
	configPath    string
	verbose       bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a tile island field and write it to a file",
		Long: `Generate runs one layout pass for a canvas and writes the result as
SVG, PNG, HTML, JSON, or a terminal preview.

A non-zero --seed makes the output reproducible, island IDs included.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(opts, stdout, logger)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 1280, "canvas width in pixels")
	f.IntVar(&opts.height, "height", 720, "canvas height in pixels")
	f.StringVarP(&opts.format, "format", "f", render.FormatSVG, fmt.Sprintf("output format %v", render.Formats()))
	f.StringVar(&opts.season, "season", "", "palette season (default from config)")
	f.Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	f.StringVar(&opts.caption, "caption", "", "caption drawn on PNG output")
	f.StringVarP(&opts.out, "out", "o", "", "output file (default stdout)")
	f.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func run(opts options, stdout io.Writer, logger *log.Logger) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("canvas must be positive, got %dx%d", opts.width, opts.height)
	}
	if !render.ValidFormat(opts.format) {
		return fmt.Errorf("%w: %q", render.ErrUnknownFormat, opts.format)
	}

	season := opts.season
	if season == "" {
		season = cfg.Season
	}
	palette, err := render.GetPalette(season)
	if err != nil {
		return err
	}

	var src generation.Source = generation.NewSource()
	if opts.seed != 0 {
		src = generation.NewRNG(opts.seed)
	}

	scene := render.NewScene()
	engine := layout.NewEngine(scene,
		layout.WithParams(cfg.Layout),
		layout.WithSource(src),
		layout.WithLogger(logger),
	)
	canvas := layout.Canvas{Width: opts.width, Height: opts.height}
	islands := engine.Generate(canvas)

	frame := render.FrameOf(scene, canvas, palette)
	frame.Caption = opts.caption

	if opts.out == "" {
		if err := render.Write(stdout, opts.format, frame); err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.format, err)
		}
	} else if err := writeFile(opts.out, opts.format, frame); err != nil {
		return err
	}

	logger.Info("generated islands",
		"islands", len(islands),
		"tiles", scene.TileCount(),
		"format", opts.format,
		"season", palette.Season,
	)
	if opts.out != "" {
		logger.Info("wrote output", "path", opts.out)
	}
	return nil
}

// createFile opens the output file. Tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeFile renders frame into path, creating parent directories. The
// file is closed before returning so a failed flush is reported.
func writeFile(path, format string, frame render.Frame) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	file, err := createFile(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := render.Write(file, format, frame); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", format, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
