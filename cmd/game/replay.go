package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/catleap/internal/application/replay"
	"github.com/younwookim/catleap/internal/application/session"
	"github.com/younwookim/catleap/internal/domain/entity"
	"github.com/younwookim/catleap/internal/infrastructure/config"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recording without a window",
	Long: `Feeds a recorded input file through the simulation at full speed and
prints the outcome. A recording made against the same configs always
produces the same result.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	cfg, catalog, err := loadCatalog(loader, logger)
	if err != nil {
		return err
	}

	sum, err := replayFile(logger, args[0], cfg, catalog)
	if err != nil {
		return err
	}
	logger.Debug("replay finished", "file", args[0], "deaths", sum.Deaths)

	printSummary(cmd.OutOrStdout(), sum)
	return nil
}

func replayFile(logger *log.Logger, path string, cfg *config.GameConfig, catalog []entity.LevelTemplate) (replay.Summary, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Summary{}, err
	}
	if data.Version != replay.FormatVersion {
		return replay.Summary{}, fmt.Errorf("replay version %q, want %q", data.Version, replay.FormatVersion)
	}

	sess, err := session.New(catalog, cfg.Physics, cfg.Campaign.FinalMessage)
	if err != nil {
		return replay.Summary{}, err
	}
	r := replay.NewReplayer(*data)
	logger.Debug("replaying", "file", path, "frames", r.TotalFrames(), "level", r.StartLevel()+1)
	return replay.Run(sess, r), nil
}

func printSummary(w io.Writer, sum replay.Summary) {
	fmt.Fprintf(w, "Frames:           %d\n", sum.Frames)
	fmt.Fprintf(w, "Deaths:           %d\n", sum.Deaths)
	fmt.Fprintf(w, "Levels completed: %d\n", sum.LevelsCompleted)
	fmt.Fprintf(w, "Game completed:   %d\n", sum.GameCompleted)
	fmt.Fprintf(w, "Final level:      %d (%s)\n", sum.FinalLevel+1, sum.FinalMode)
}
