// Command termfolio is a terminal portfolio: an interactive TUI resume with
// an animated star field backdrop, plus headless text and JSON modes.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/termfolio/internal/content"
	"github.com/litescript/termfolio/internal/logging"
	"github.com/litescript/termfolio/internal/starfield"
	"github.com/litescript/termfolio/internal/ui"
	"github.com/litescript/termfolio/internal/version"
)

// CLI flags for headless mode
var (
	printMode   bool
	exportPath  string
	versionMode bool
)

const (
	defaultFPS = 30
	minFPS     = 1
	maxFPS     = 60
)

func main() {
	// Parse flags
	fps := flag.Int("fps", defaultFPS, "Star field frames per second (1-60)")
	noStars := flag.Bool("no-stars", false, "Disable the star field backdrop")
	contentPath := flag.String("content", "", "YAML content file overlaying the embedded defaults")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Write logs to file instead of discarding them")
	seed := flag.Int64("seed", 0, "Star field random seed (0 = time-based)")
	flag.BoolVar(&printMode, "print", false, "Print plain-text resume instead of TUI")
	flag.StringVar(&exportPath, "export-json", "", "Export JSON snapshot to file (use - for stdout)")
	flag.BoolVar(&versionMode, "version", false, "Print version and exit")
	flag.Parse()

	if versionMode {
		fmt.Printf("termfolio v%s\n", version.Version)
		return
	}

	// Clamp frame rate
	if *fps < minFPS {
		*fps = minFPS
	} else if *fps > maxFPS {
		*fps = maxFPS
	}

	// Set up logging. The TUI owns the terminal, so logs are dropped unless
	// a file is given.
	logger := logging.Discard()
	if *logFile != "" {
		f, err := logging.OpenFile(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = logging.New(logging.ParseLevel(*logLevel))
		logger.SetOutput(f)
	}

	portfolio, err := content.Load(*contentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("Content loaded: %d projects, %d experience items", len(portfolio.Projects), len(portfolio.Experience))

	// Headless modes: no TUI
	if printMode || exportPath != "" {
		if err := runHeadless(portfolio); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Piped output cannot host the TUI; fall back to the text resume.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		content.WriteResume(os.Stdout, portfolio)
		return
	}

	// Star field animator. The render loop starts on the first window size
	// message and is torn down when the program exits.
	var anim *starfield.Animator
	if !*noStars {
		opts := []starfield.Option{
			starfield.WithScheduler(starfield.TimerScheduler(time.Second / time.Duration(*fps))),
		}
		if *seed != 0 {
			opts = append(opts, starfield.WithSeed(*seed))
		}
		anim = starfield.New(starfield.DefaultConfig(), opts...)
		defer anim.Stop()
	}

	model := ui.New(portfolio, anim)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Each rendered star frame wakes the program for a repaint.
	if anim != nil {
		anim.SetNotify(func() {
			p.Send(ui.StarFrameMsg{})
		})
	}

	logger.Info("Starting TUI (fps=%d, stars=%v)", *fps, !*noStars)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless handles the print and export modes without starting the TUI.
func runHeadless(portfolio content.Portfolio) error {
	if exportPath != "" {
		export := content.ExportSnapshot(portfolio, time.Now().UTC())
		if exportPath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(exportPath)
			if err != nil {
				return fmt.Errorf("create snapshot file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if printMode {
		content.WriteResume(os.Stdout, portfolio)
	}
	return nil
}
