// Command golay inspects layout resolution: it loads a theme, a monitor
// topology and a component tree from JSON files, runs a resolution pass and
// prints the resulting rectangles.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/germtb/golay"
)

var (
	themePath    string
	monitorsPath string
	treePath     string
	modeFlag     string
	monitorFlag  int
	groupFlag    string
	jsonOut      bool
	previewOut   bool
	strictFlag   bool
)

var rootCmd = &cobra.Command{
	Use:   "golay",
	Short: "Inspect layout resolution for a theme, monitor topology and component tree",
	Long: `golay resolves a declarative component tree against a theme and a monitor
topology and prints the absolute pixel rectangle of every component.

Input files:
  --theme     theme JSON ({"base_size": 16, "components": {...}})
  --monitors  topology JSON ({"monitors": [...], "groups": {...}})
  --tree      tree JSON ({"nodes": [{"id": "a", "parent": "", "text": ""}]})`,
	SilenceUsage: true,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Run one resolution pass and print the result",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}
		result := session.resolve()
		return printResult(cmd.OutOrStdout(), session, result)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-resolve and reprint whenever the theme file changes",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, err := loadSession()
		if err != nil {
			return err
		}

		watcher, err := golay.WatchTheme(themePath, session.engine)
		if err != nil {
			return err
		}
		defer watcher.Close()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

		out := cmd.OutOrStdout()
		for {
			select {
			case reload, ok := <-watcher.Reloads():
				if !ok {
					return nil
				}
				if reload.Err != nil {
					fmt.Fprintln(out, errStyle.Render(fmt.Sprintf("theme reload failed: %v", reload.Err)))
					continue
				}
				for _, warning := range reload.Warnings {
					fmt.Fprintln(out, warnStyle.Render("warning: "+warning.String()))
				}
				if err := printResult(out, session, session.resolve()); err != nil {
					return err
				}
			case <-interrupt:
				return nil
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", "", "theme JSON file (omit for all-defaults)")
	rootCmd.PersistentFlags().StringVar(&monitorsPath, "monitors", "", "monitor topology JSON file")
	rootCmd.PersistentFlags().StringVar(&treePath, "tree", "", "component tree JSON file (required)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "unified", "monitor layout mode: unified, separate or mixed")
	rootCmd.PersistentFlags().IntVar(&monitorFlag, "monitor", 0, "monitor id for separate mode (or mixed singletons)")
	rootCmd.PersistentFlags().StringVar(&groupFlag, "group", "", "group id for mixed mode")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print the pass result as JSON")
	rootCmd.PersistentFlags().BoolVar(&previewOut, "preview", false, "print an ASCII preview of the resolved rects")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "treat edge pair plus explicit size as an error")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
