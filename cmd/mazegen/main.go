package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/VHN27/Pacman/internal/catalog"
	"github.com/VHN27/Pacman/internal/maze"
	"github.com/VHN27/Pacman/internal/store"
	"github.com/VHN27/Pacman/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.LoadDefault()
	}
	return catalog.LoadFile(path)
}

type options struct {
	cfg         maze.Config
	height      int
	width       int
	seed        int64
	catalogPath string
	dbFile      string
	tui         bool
}

func main() {
	opts := options{cfg: maze.NewConfig()}
	opts.cfg.Bind(flag.CommandLine)
	flag.IntVar(&opts.height, "height", ui.DefaultHeight, "maze height without margins, odd, 25..51")
	flag.IntVar(&opts.width, "width", ui.DefaultWidth, "maze width, even, 26..50")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	flag.StringVar(&opts.catalogPath, "catalog", "", "Lua piece catalog, the built-in one when empty")
	flag.StringVar(&opts.dbFile, "save", "", "SQLite archive to save the maze into")
	flag.BoolVar(&opts.tui, "tui", false, "browse and generate mazes in the terminal UI")
	debug := flag.Bool("debug", false, "log every generation attempt")
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, opts, os.Stdout)
	stop()
	if err != nil {
		log.Error("mazegen failed", "error", err)
		os.Exit(1)
	}
}

// run does the work of main. Every resource it opens is closed before it
// returns.
func run(ctx context.Context, opts options, out io.Writer) error {
	cat, err := loadCatalog(opts.catalogPath)
	if err != nil {
		return fmt.Errorf("load piece catalog %q: %w", opts.catalogPath, err)
	}
	gen, err := maze.NewGenerator(cat, opts.cfg, log.Default())
	if err != nil {
		return fmt.Errorf("create generator: %w", err)
	}

	var archive store.Storage
	if opts.dbFile != "" {
		archive, err = store.NewSqliteStore(opts.dbFile)
		if err != nil {
			return fmt.Errorf("open archive %q: %w", opts.dbFile, err)
		}
		defer archive.Close()
	}

	if opts.tui {
		p := tea.NewProgram(ui.NewControllerModel(ctx, gen, archive, 0, 0), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err := p.Run()
		return err
	}

	m, err := gen.Generate(ctx, opts.height, opts.width, opts.seed)
	if err != nil {
		return fmt.Errorf("generate %dx%d seed %d: %w", opts.height, opts.width, opts.seed, err)
	}
	if archive != nil {
		id, err := archive.Save(m)
		if err != nil {
			return fmt.Errorf("save maze: %w", err)
		}
		log.Info("Maze archived", "id", id)
	}
	log.Info("Maze generated", "height", m.Height, "width", m.Width, "seed", m.Seed, "attempts", m.Attempts, "pellets", m.CountPellets())
	_, err = fmt.Fprint(out, m.String())
	return err
}
