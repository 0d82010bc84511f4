package main

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	twitter "github.com/RyuaNerin/twitter-dm"
)

type app struct {
	out io.Writer

	configPath string
	envFile    string
	verbose    bool
	format     string

	client *twitter.Client
	sentry bool
}

func newRootCommand(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:           "twitter-dm",
		Short:         "Read, send and delete Twitter direct messages",
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "config file path (JSON)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "dotenv file with TWITTER_DM_* overrides")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every request to stderr")
	rootCmd.PersistentFlags().StringVarP(&a.format, "format", "f", formatText, "output format: text or json")

	rootCmd.AddCommand(
		a.newListCommand("received", "List received direct messages", (*twitter.Client).GetDirectMessagesReceived),
		a.newListCommand("sent", "List sent direct messages", (*twitter.Client).GetDirectMessagesSent),
		a.newShowCommand(),
		a.newSendCommand(),
		a.newDeleteCommand(),
	)

	return rootCmd
}

func (a *app) init() error {
	if a.envFile != "" {
		if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	cfg, err := twitter.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.sentry, err = initSentry(cfg.SentryDsn)
	if err != nil {
		return err
	}

	logger := zerolog.Nop()
	if a.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger().
			Level(zerolog.DebugLevel)
	}

	a.client, err = twitter.NewClient(cfg, twitter.WithLogger(logger))
	return err
}

// fail reports err to sentry when it is configured and hands it back to cobra.
func (a *app) fail(err error) error {
	if err != nil && a.sentry {
		reportError(err)
	}
	return err
}
