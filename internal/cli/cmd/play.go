package cmd

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/wmiitile/internal/cli/model"
	"github.com/bnema/wmiitile/internal/infrastructure/config"
	"github.com/bnema/wmiitile/internal/logging"
)

const (
	playLogMaxSizeMB  = 5
	playLogMaxBackups = 3
)

var playNoWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Drive a layout from the keyboard",
	Long: `Open an interactive playground where the terminal stands in for the screen.

Windows are simulated. Open a few with 'n', then move focus with h/j/k/l,
shuffle windows between columns with H/J/K/L and toggle the focused column
between split and stacked with 's'. Press '?' for all bindings.

Edits to the config file are picked up live: border width, margin and
colors change without restarting. Logs go to
$XDG_STATE_HOME/wmiitile/play.log while the playground is open.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoWatch, "no-watch", false, "Do not reload the config file on change")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	if !stdinIsTerminal() {
		return errors.New("play needs an interactive terminal")
	}

	// The TUI owns the terminal; logging moves to a file.
	logPath, err := config.GetLogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}
	logFile, err := logging.NewFileWriter(logPath, playLogMaxSizeMB, playLogMaxBackups)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	app.RedirectLogs(logFile)
	log := logging.FromContext(app.Ctx())

	var updates chan *config.Config
	if !playNoWatch {
		updates = make(chan *config.Config, 1)
		app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
			select {
			case updates <- cfg:
			default:
				log.Debug().Msg("playground busy, dropping config update")
			}
		})
		app.ConfigManager.SetLogger(*log)
		if err := app.ConfigManager.Watch(); err != nil {
			log.Warn().Err(err).Msg("config watch unavailable")
		}
	}

	m := model.NewPlaygroundModel(app.Ctx(), app.Theme, model.PlaygroundConfig{
		Options: app.LayoutOptions(),
		Updates: updates,
	})

	log.Info().Str("config_file", app.ConfigManager.GetConfigFile()).Msg("playground started")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("playground: %w", err)
	}
	log.Info().Msg("playground closed")
	return nil
}

// stdinIsTerminal reports whether stdin is attached to a terminal.
func stdinIsTerminal() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
