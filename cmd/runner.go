package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/wgx/internal/catalog"
	"github.com/desertthunder/wgx/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	adapter    *catalog.Adapter
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Adapter    *catalog.Adapter
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Adapter == nil {
		opts.Adapter = catalog.NewAdapterFromConfig(opts.Config.Upstream, opts.Logger)
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		adapter:    opts.Adapter,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		serveCommand, packagesCommand, refreshCommand, tuiCommand, configCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// configure loads --config when the file exists, applies the log level and rebuilds the adapter.
//
// A missing file is not an error: the embedded defaults apply, which is what `config init` relies on.
func (r *Runner) configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	r.configPath = path

	if _, err := os.Stat(path); err == nil {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
	} else {
		r.logger.Debug("config file not found, using defaults", "path", path)
	}

	if level := cmd.String("log-level"); level != "" {
		r.config.Log.Level = level
	}
	level, err := r.config.LogLevel()
	if err != nil {
		return ctx, fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	shared.SetLogLevel(r.logger, level)

	r.adapter = catalog.NewAdapterFromConfig(r.config.Upstream, r.logger)
	return ctx, nil
}

// SetLogger replaces the logger of the runner and its adapter.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
	r.adapter = r.adapter.WithLogger(logger)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
