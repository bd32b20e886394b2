package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/bundlestats/internal/config"
)

// SettingsCmd displays settings metadata
type SettingsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		return writeJSON(os.Stdout, map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)
	fmt.Println("Example settings.json:")
	fmt.Println()

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		fmt.Fprintf(w, "%s\t%v\n", key, example[key])
	}
	w.Flush()

	fmt.Println()
	fmt.Println("Create or edit this file to configure bundlestats.")
	fmt.Println("All settings are optional. Flags and BUNDLESTATS_* environment variables take precedence.")

	return nil
}
