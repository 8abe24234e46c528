package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/catleap/internal/application/system"
	"github.com/younwookim/catleap/internal/domain/entity"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels in the campaign",
	Long:  `Shows every level in play order with its hazard counts.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}
	loader, err := newLoader(flagConfigDir)
	if err != nil {
		return err
	}
	_, catalog, err := loadCatalog(loader, logger)
	if err != nil {
		return err
	}

	printLevels(cmd.OutOrStdout(), catalog)
	return nil
}

// printLevels writes one row per level: static, timed (authored plus
// generated) and patrol hazard counts
func printLevels(w io.Writer, catalog []entity.LevelTemplate) {
	if len(catalog) == 0 {
		fmt.Fprintln(w, "No levels.")
		return
	}

	maxNameLen := len("Name")
	for _, t := range catalog {
		maxNameLen = max(maxNameLen, len(t.Name))
	}

	fmt.Fprintf(w, "  #  %-*s  %6s  %5s  %6s\n", maxNameLen, "Name", "Spikes", "Timed", "Patrol")
	fmt.Fprintf(w, "  -  %-*s  %6s  %5s  %6s\n", maxNameLen, "----", "------", "-----", "------")

	loader := system.NewLevelLoader(catalog)
	for i := range catalog {
		lvl := loader.Load(i)
		fmt.Fprintf(w, "  %d  %-*s  %6d  %5d  %6d\n",
			i+1, maxNameLen, lvl.Template.Name, len(lvl.Template.Spikes), len(lvl.TimedHazards()), len(lvl.Patrols()))
	}
}
