// Package cmd provides the root command and CLI setup for almanac.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/almanac/internal/adapter"
	"github.com/mouse-blink/almanac/internal/config"
	"github.com/mouse-blink/almanac/internal/controller"
	"github.com/mouse-blink/almanac/internal/domain"
	almanaclog "github.com/mouse-blink/almanac/internal/log"
	m "github.com/mouse-blink/almanac/internal/model"
)

var workflow domain.Workflow
var historyStore adapter.HistoryStore
var appConfig config.Config

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "almanac",
		Short:         "Map seeds through an almanac to their lowest location",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .almanac.yaml)")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("strict", false, "reject overlapping rules and broken stage chains while loading")
	flags.Bool("any-sections", false, "accept any section names, in file order")

	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("strict", flags.Lookup("strict"))
	_ = viper.BindPFlag("any_sections", flags.Lookup("any-sections"))

	return cmd
}

// setup loads the configuration and, unless a workflow was already
// provided, wires the adapters behind it.
func setup(cmd *cobra.Command) error {
	if err := config.Init(cfgFile); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appConfig = cfg

	if workflow != nil {
		return nil
	}

	logger := almanaclog.NewLogger(cmd.ErrOrStderr(), almanaclog.Format(cfg.LogFormat), cfg.LogLevel)
	fsAdapter := adapter.NewLocalAlmanacFSAdapter()

	var history adapter.HistoryStore

	if cfg.History.Enabled {
		store, err := adapter.NewSQLiteHistoryStore(cfg.History.Path)
		if err != nil {
			logger.Warn("solve history disabled", "path", cfg.History.Path, "error", err)
		} else {
			history = store
			historyStore = store
		}
	}

	workflow = domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(fsAdapter),
		history,
		adapter.NewFileWatcher(cfg.Watch.Debounce),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		logger,
	)

	return nil
}

// loadArgs applies the loading options from the configuration to path.
func loadArgs(path string) domain.LoadArgs {
	return domain.LoadArgs{
		Path:        m.Path(path),
		Sections:    appConfig.Sections,
		AnySections: appConfig.AnySections,
		Strict:      appConfig.Strict,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if historyStore != nil {
		_ = historyStore.Close()
	}

	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
