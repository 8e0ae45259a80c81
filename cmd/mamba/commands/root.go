package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/battlesnakeio/mamba/config"
	"github.com/battlesnakeio/mamba/rules"
	"github.com/battlesnakeio/mamba/version"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "mamba",
	Short:   "mamba is Hungry Mamba, a snake game for the terminal",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return play()
	},
}

var (
	configPath string
	seed       int64
	twoPlayer  bool
	logLevel   = "info"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML game config")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.PersistentFlags().BoolVar(&twoPlayer, "two-player", false, "play with two snakes")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func setupLogging(out io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", logLevel)
	}
	log.SetLevel(level)
	log.SetOutput(out)
	return nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if twoPlayer {
		cfg.TwoPlayer = true
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func gameSeed() int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func newGame(console io.Writer) (*rules.Game, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	s := gameSeed()
	log.WithFields(log.Fields{
		"Seed":    s,
		"Players": cfg.Players(),
		"Width":   cfg.Width(),
		"Height":  cfg.Height(),
	}).Info("starting game")
	return rules.New(cfg, rules.WithSeed(s), rules.WithConsole(console))
}
