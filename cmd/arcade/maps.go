package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weekend-arcade/internal/config"
	"github.com/vovakirdan/weekend-arcade/internal/games/fps"
	"github.com/vovakirdan/weekend-arcade/internal/raycast/maps"
)

var (
	flagMapDir  string
	flagMapShow string
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List ray-caster maps",
	Long: `Lists the built-in maps and any maps found in the map directory.

The directory comes from --dir, else from map.dir in raycast.yaml.
Files that fail to parse are reported and skipped.

Examples:
  arcade maps
  arcade maps --dir ./my-maps
  arcade maps --show pillars`,
	RunE: runMaps,
}

func init() {
	mapsCmd.Flags().StringVar(&flagMapDir, "dir", "", "Directory of extra map files")
	mapsCmd.Flags().StringVar(&flagMapShow, "show", "", "Print the grid of one map")
}

func runMaps(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	dir := flagMapDir
	if dir == "" {
		rc, _, err := config.LoadRaycast(flagConfig)
		if err != nil {
			logger.Warn("using default raycast config", "error", err)
		} else {
			dir = rc.Map.Dir
		}
	}

	list, skipped := fps.Levels(dir)
	for _, err := range skipped {
		logger.Warn("skipping map", "error", err)
	}

	out := cmd.OutOrStdout()
	if flagMapShow != "" {
		m, err := maps.Find(list, flagMapShow)
		if err != nil {
			return fmt.Errorf("%w: %q", err, flagMapShow)
		}
		fmt.Fprintf(out, "%s (%s)\n", m.Name, m.ID)
		fmt.Fprint(out, mapPreview(m))
		fmt.Fprintln(out)
		return nil
	}

	fmt.Fprintln(out, mapTable(list))
	return nil
}

// mapTable renders one row per map.
func mapTable(list []maps.Map) string {
	t := newTable("ID", "Name", "Size", "Source")
	for _, m := range list {
		source := "built-in"
		if m.FilePath != "" {
			source = m.FilePath
		}
		t.Row(m.ID, m.Name, fmt.Sprintf("%dx%d", m.Grid.Width(), m.Grid.Height()), source)
	}
	return t.Render()
}

// mapPreview returns the grid rows with the spawn cell marked '@'.
func mapPreview(m maps.Map) string {
	sx, sy := m.Spawn.Cell()
	s := ""
	for y, row := range m.Grid.Rows() {
		if y == sy {
			r := []rune(row)
			r[sx] = '@'
			row = string(r)
		}
		s += row + "\n"
	}
	return s
}
