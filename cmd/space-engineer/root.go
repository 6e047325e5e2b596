package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/space-engineer/audio"
	"github.com/lixenwraith/space-engineer/config"
	"github.com/lixenwraith/space-engineer/input"
	"github.com/lixenwraith/space-engineer/level"
	"github.com/lixenwraith/space-engineer/ranking"
)

var (
	v        = config.New()
	cfgFile  string
	settings *config.Config
	logFile  *os.File
)

var rootCmd = &cobra.Command{
	Use:   "space-engineer",
	Short: "Typing-combat arcade game in the terminal",
	Long: `Space Engineer: destroy descending words by typing them, collect the right
answers to fill the level's response, and climb the ranking.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		if mute, _ := cmd.Flags().GetBool("mute"); mute {
			c.Audio.Enabled = false
		}
		settings = c
		logFile = setupLogging(c.Debug)
		if c.Source != "" {
			log.Printf("[main] config read from %s", c.Source)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGame(cmd.Context(), settings)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default ./space-engineer.yaml or $HOME/.space-engineer.yaml)")
	flags.Bool("debug", false, "write diagnostics to logs/space-engineer.log")
	flags.String("levels", "", "external level definition file (YAML)")
	flags.String("dialect", "sqlite", "ranking store dialect: sqlite, postgres or mysql")
	flags.String("dsn", "", "ranking store connection string")
	rootCmd.Flags().Int64("seed", 0, "random seed, 0 picks one from the clock")
	rootCmd.Flags().Bool("mute", false, "start with audio disabled")

	mustBind(v.BindPFlag(config.KeyDebug, flags.Lookup("debug")))
	mustBind(v.BindPFlag(config.KeyLevelsFile, flags.Lookup("levels")))
	mustBind(v.BindPFlag(config.KeyRankingDialect, flags.Lookup("dialect")))
	mustBind(v.BindPFlag(config.KeyRankingDSN, flags.Lookup("dsn")))
	mustBind(v.BindPFlag(config.KeySeed, rootCmd.Flags().Lookup("seed")))
}

func mustBind(err error) {
	if err != nil {
		panic(fmt.Sprintf("bind flag: %v", err))
	}
}

// openProgression loads the configured level file, the embedded set when none is configured
func openProgression(c *config.Config) (*level.Progression, error) {
	prog, err := level.Load(c.LevelsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load levels: %w", err)
	}
	return prog, nil
}

// openRanking opens the configured store, falling back to an in-memory board on failure
func openRanking(ctx context.Context, c *config.Config) *ranking.Ranking {
	store, err := ranking.OpenSQL(ctx, c.Ranking.Dialect, c.Ranking.DSN)
	if err != nil {
		log.Printf("[ranking] %v, using in-memory board", err)
		return ranking.New(ctx, ranking.NewMemoryStore())
	}
	return ranking.New(ctx, store)
}

// openSound starts the speaker when audio is enabled, a silent player otherwise
func openSound(c *config.Config) *audio.SoundManager {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.SetMasterVolume(c.Audio.Volume)
	sm := audio.NewSoundManager(ac)
	if err := sm.Initialize(); err != nil {
		log.Printf("[audio] initialization failed: %v (continuing without audio)", err)
	}
	return sm
}

// loadKeymap reads the optional key binding overrides
func loadKeymap(path string) (*input.KeyTable, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read keymap %s: %w", path, err)
	}
	return input.LoadKeyConfig(data)
}
