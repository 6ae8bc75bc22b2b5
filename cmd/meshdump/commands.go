package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/Faultbox/meshgrid/internal/assets"
	"github.com/Faultbox/meshgrid/internal/config"
	"github.com/Faultbox/meshgrid/internal/logger"
	"github.com/Faultbox/meshgrid/internal/scatter"
)

// options are the flags shared by every command.
type options struct {
	configPath string
	seed       string
	columns    int
	timeout    time.Duration
	logLevel   string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.configPath, "config", "", "Path to config file")
	fs.StringVar(&o.seed, "seed", "", "Placement seed (64 hex characters)")
	fs.IntVar(&o.columns, "columns", 0, "Grid columns")
	fs.DurationVar(&o.timeout, "timeout", 30*time.Second, "Decode timeout")
	fs.StringVar(&o.logLevel, "log-level", "", "Log to stderr at this level")
}

// settings layers the defaults, the config file and the flags.
func (o *options) settings() (scatter.Settings, error) {
	cfg := config.Default()
	if o.configPath != "" {
		if err := config.LoadFile(cfg, o.configPath); err != nil {
			return scatter.Settings{}, fmt.Errorf("loading config from %s: %w", o.configPath, err)
		}
	}
	if o.seed != "" {
		cfg.Placement.Seed = o.seed
	}
	if o.columns != 0 {
		cfg.Placement.Columns = o.columns
	}
	if cfg.Placement.Columns < 1 {
		return scatter.Settings{}, fmt.Errorf("columns %d must be at least 1", cfg.Placement.Columns)
	}
	return cfg.SceneSettings()
}

func (o *options) initLogger() {
	if o.logLevel == "" {
		logger.InitNop()
		return
	}
	logger.InitStderr(o.logLevel)
}

func parse(name string, args []string, opts *options, extra func(*flag.FlagSet)) (string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts.register(fs)
	if extra != nil {
		extra(fs)
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return "", errUsage
		}
		return "", fmt.Errorf("%s: %w", name, err)
	}
	if fs.NArg() != 1 {
		return "", errUsage
	}
	opts.initLogger()
	return fs.Arg(0), nil
}

func loadModel(path string, timeout time.Duration) (*assets.Document, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	l := assets.NewLoader()
	if err := l.Start(path); err != nil {
		return nil, err
	}
	return l.Wait(ctx)
}

func cmdIndex(args []string, w io.Writer) error {
	var opts options
	path, err := parse("index", args, &opts, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	doc, err := loadModel(path, opts.timeout)
	if err != nil {
		return err
	}
	idx, err := scatter.BuildIndex(doc.Model)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: %d nodes, %d names\n", doc.Path, doc.Model.Len(), idx.Len())
	for _, e := range idx.Entries() {
		fmt.Fprintf(w, "  %-24s %s\n", e.Name, e.Geometry)
	}
	for i, n := range doc.Model.Nodes {
		if _, ok := idx.ByName(n.Name); !ok {
			fmt.Fprintf(w, "  %-24s replaced (node %d)\n", n.Name, i)
		}
	}
	return nil
}

func cmdPlace(args []string, w io.Writer) error {
	var opts options
	path, err := parse("place", args, &opts, nil)
	if err != nil {
		return err
	}
	defer logger.Sync()

	scene, err := buildScene(path, &opts)
	if err != nil {
		return err
	}
	printInstances(w, scene.Instances())
	return nil
}

func cmdSpin(args []string, w io.Writer) error {
	var opts options
	ticks := 1
	dt := 1.0 / 60
	path, err := parse("spin", args, &opts, func(fs *flag.FlagSet) {
		fs.IntVar(&ticks, "ticks", ticks, "Ticks to run")
		fs.Float64Var(&dt, "dt", dt, "Seconds per tick")
	})
	if err != nil {
		return err
	}
	defer logger.Sync()

	scene, err := buildScene(path, &opts)
	if err != nil {
		return err
	}
	for i := 0; i < ticks; i++ {
		scene.Tick(float32(dt))
	}
	fmt.Fprintf(w, "after %d ticks of %gs\n", ticks, dt)
	printInstances(w, scene.Instances())
	return nil
}

func buildScene(path string, opts *options) (*scatter.Scene, error) {
	settings, err := opts.settings()
	if err != nil {
		return nil, err
	}
	doc, err := loadModel(path, opts.timeout)
	if err != nil {
		return nil, err
	}
	scene := scatter.NewScene(scatter.NewRecorder(), settings)
	if err := scene.Build(doc.Model); err != nil {
		return nil, err
	}
	return scene, nil
}

func printInstances(w io.Writer, instances []scatter.Instance) {
	for _, inst := range instances {
		p, q := inst.Position, inst.Rotation
		fmt.Fprintf(w, "%3d %-24s %-16s pos (%g, %g, %g) rot (%.6f, %.6f, %.6f, %.6f)\n",
			inst.ID, inst.Name, inst.Geometry,
			p.X, p.Y, p.Z,
			q.X, q.Y, q.Z, q.W)
	}
}
