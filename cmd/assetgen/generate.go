package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/stevk/glTF-Asset-Generator/config"
	"github.com/stevk/glTF-Asset-Generator/generator"
	"github.com/stevk/glTF-Asset-Generator/logger"
)

type generateFlags struct {
	config   string
	out      string
	groups   []string
	figures  string
	glb      bool
	html     bool
	parallel int
	logLevel string
	logFile  string
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the selected model groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(&f, cmd.Flags())
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel, cfg.LogFile)
			return runGenerate(cmd.Context(), cmd, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "YAML config file")
	fl.StringVarP(&f.out, "out", "o", "", "output directory")
	fl.StringSliceVarP(&f.groups, "group", "g", nil, "model group to generate (repeatable, default all)")
	fl.StringVar(&f.figures, "figures", "", "directory holding Figures/ and SampleImages/")
	fl.BoolVar(&f.glb, "glb", false, "also write .glb files")
	fl.BoolVar(&f.html, "html", false, "also render READMEs to HTML")
	fl.IntVar(&f.parallel, "parallel", 0, "groups generated at once")
	fl.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	fl.StringVar(&f.logFile, "log-file", "", "also log to this file")
	return cmd
}

// loadConfig applies, in order, the defaults, the config file and the flags
// set on the command line.
func loadConfig(f *generateFlags, flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if flags.Changed("out") {
		cfg.Output = f.out
	}
	if flags.Changed("group") {
		cfg.Groups = f.groups
	}
	if flags.Changed("figures") {
		cfg.FiguresDir = f.figures
	}
	if flags.Changed("glb") {
		cfg.Binary = f.glb
	}
	if flags.Changed("html") {
		cfg.HTML = f.html
	}
	if flags.Changed("parallel") {
		cfg.Parallelism = f.parallel
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	return cfg, cfg.Validate()
}

func runGenerate(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := generator.New(cfg).Run(ctx)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: FAILED: %v\n", r.Group, r.Err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d files\n", r.Group, len(r.Files))
	}
	logger.Log.Debug("generation finished", zap.Int("groups", len(results)))
	return generator.Failed(results)
}
