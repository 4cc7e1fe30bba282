package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/s0up4200/queuemeta/config"
	"github.com/s0up4200/queuemeta/qbittorrent"
	"github.com/s0up4200/queuemeta/reconcile"
)

var (
	cfgFile  string
	settings config.Settings
	logger   zerolog.Logger

	// Command flags
	host         string
	username     string
	password     string
	interval     int
	once         bool
	verbose      bool
	verifyCert   bool
	noVerifyCert bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "queuemeta",
	Short: "Force-start qBittorrent torrents that are waiting for metadata",
	Long: `queuemeta monitors a qBittorrent instance and force-starts torrents that
do not have metadata yet, so queued magnets can fetch it despite the maximum
active downloads limit. Once metadata is retrieved, force-start is disabled
and the torrent returns to the normal queue.

Settings can be provided via a YAML configuration file using --config.
Command-line flags override config file values.`,
	Example: `  queuemeta --host localhost:8080 --username admin --password adminadmin --interval 60
  queuemeta --config config.yaml --once --verbose`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PreRunE:       initializeApp,
	RunE:          runReconcile,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		exitLogger := setupLogger(settings.Verbose)
		exitLogger.Error().Err(err).Msg("Exiting")
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "path to YAML configuration file")
	flags.StringVar(&host, "host", "", "qBittorrent Web UI URL (e.g., localhost:8080)")
	flags.StringVar(&username, "username", "", "qBittorrent username (if needed)")
	flags.StringVar(&password, "password", "", "qBittorrent password (if needed)")
	flags.IntVar(&interval, "interval", config.DefaultInterval, "polling interval in seconds")
	flags.BoolVar(&once, "once", false, "run once and exit")
	flags.BoolVar(&verbose, "verbose", false, "enable debug logging")
	flags.BoolVar(&verifyCert, "verify-certificate", false, "verify Web UI certificate (default unless the config file disables it)")
	flags.BoolVar(&noVerifyCert, "no-verify-certificate", false, "do not verify Web UI certificate")

	rootCmd.MarkFlagsMutuallyExclusive("verify-certificate", "no-verify-certificate")
}

// initializeApp resolves settings and sets up the logger
func initializeApp(cmd *cobra.Command, args []string) error {
	// Config file problems are reported before the verbosity is known
	file := config.LoadFile(cfgFile, setupLogger(false))

	settings = config.Build(config.Defaults(), file, overridesFromFlags(cmd.Flags()))
	logger = setupLogger(settings.Verbose)

	logger.Info().Msg("Starting queuemeta...")

	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// overridesFromFlags returns the command-line tier, holding only flags the user set
func overridesFromFlags(flags *pflag.FlagSet) config.Layer {
	var overrides config.Layer

	if flags.Changed("host") {
		overrides.Host = &host
	}
	if flags.Changed("username") {
		overrides.Username = &username
	}
	if flags.Changed("password") {
		overrides.Password = &password
	}
	if flags.Changed("interval") {
		overrides.Interval = &interval
	}
	if flags.Changed("once") {
		overrides.Once = &once
	}
	if flags.Changed("verbose") {
		overrides.Verbose = &verbose
	}

	switch {
	case flags.Changed("verify-certificate"):
		v := verifyCert
		overrides.VerifyCertificate = &v
	case flags.Changed("no-verify-certificate"):
		v := !noVerifyCert
		overrides.VerifyCertificate = &v
	}

	return overrides
}

// setupLogger configures the zerolog logger
func setupLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// newClient builds the qBittorrent client from the resolved settings
var newClient = func(s config.Settings, logger zerolog.Logger) *qbittorrent.Client {
	var opts []qbittorrent.Option
	if !s.VerifyCertificate {
		opts = append(opts, qbittorrent.WithInsecureSkipVerify())
	}

	return qbittorrent.NewClient(s.Host, s.Username, s.Password, logger, opts...)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	client := newClient(settings, logger)
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("error connecting to qBittorrent at %s: %w", settings.Host, err)
	}

	logger.Info().
		Str("host", settings.Host).
		Int("interval", settings.Interval).
		Bool("once", settings.Once).
		Bool("verify_certificate", settings.VerifyCertificate).
		Msg("Connected to qBittorrent")

	reconciler := reconcile.New(client, logger)
	if err := reconciler.Run(ctx, settings.PollInterval(), settings.Once); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info().Msg("Shutting down")
			return nil
		}
		return err
	}

	return nil
}
