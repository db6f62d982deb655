package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"futuristic-aid/internal/app"
	"futuristic-aid/internal/sim"
	"futuristic-aid/internal/tui"
)

const version = "1.0.0"

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = app.DefaultConfigPath()
	}
	return path
}

func loadConfig(cmd *cobra.Command) (app.Config, error) {
	return app.LoadConfig(configPath(cmd))
}

func main() {
	root := &cobra.Command{
		Use:     "aid",
		Short:   "Futuristic AID - AI-powered productivity dashboard",
		Long:    "Futuristic AID is an interactive dashboard of simulated AI productivity features.\n\nRun without arguments for the full-screen dashboard, or use a subcommand for one-shot output.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
				if theme != app.ThemeLight && theme != app.ThemeDark {
					return fmt.Errorf("unknown theme %q (light|dark)", theme)
				}
				cfg.Theme = theme
				// The override sticks for the next launch.
				if path := configPath(cmd); path != "" {
					if err := app.SaveConfig(cfg, path); err != nil {
						return err
					}
				}
			}
			seed, _ := cmd.Flags().GetInt64("seed")

			application, err := app.NewApplication(cfg, seed)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.New(application), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file (default: "+app.DefaultConfigPath()+")")
	root.PersistentFlags().Int64("seed", 0, "random seed, 0 for time-based")
	root.Flags().String("theme", "", "theme: light|dark")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate an analytics report and save it to the export directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			engine := sim.NewEngine(seed)

			report := engine.GenerateReport()
			fmt.Println(report.Render())

			if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
				return nil
			}
			path, err := report.Export(cfg.ExportDir)
			if err != nil {
				return err
			}
			color.Green("Saved to %s", path)
			return nil
		},
	}
	reportCmd.Flags().Bool("no-save", false, "print the report without saving it")

	weatherCmd := &cobra.Command{
		Use:   "weather [location]",
		Short: "Show the simulated weather for a location",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			location := cfg.DefaultLocation
			if len(args) > 0 {
				location = args[0]
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			svc := sim.NewWeatherService(sim.NewEngine(seed))

			snap, err := svc.Lookup(location)
			if err != nil {
				return err
			}
			color.Cyan("%s", snap.Location)
			fmt.Printf("%d°C  %s\n", snap.TempC, snap.Condition)
			fmt.Printf("Humidity %d%% · Wind %d km/h\n\n", snap.HumidityPct, snap.WindKmh)
			for _, day := range snap.Forecast {
				fmt.Printf("%-9s %3d°C  %s\n", day.Day, day.TempC, day.Condition)
			}
			if alert := sim.Alert(snap); alert != nil {
				if alert.Severity == "warning" {
					color.Yellow("\n%s", alert.Message)
				} else {
					color.Blue("\n%s", alert.Message)
				}
			}
			return nil
		},
	}

	translateCmd := &cobra.Command{
		Use:   "translate [text]",
		Short: "Translate text between supported languages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")

			tr, err := sim.Translate(strings.Join(args, " "), from, to)
			if err != nil {
				return err
			}
			color.Cyan("%s → %s", sim.LanguageName(tr.FromLang), sim.LanguageName(tr.ToLang))
			fmt.Println(tr.Translated)
			return nil
		},
	}
	translateCmd.Flags().String("from", "en", "source language code")
	translateCmd.Flags().String("to", "es", "target language code")

	root.AddCommand(reportCmd, weatherCmd, translateCmd)

	if err := root.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}
