package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/diagnostics"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the research environment",
	Long:  "Verify the agent runtime, storage locations and host resources a research run depends on.",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "output as JSON")
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func runDoctor(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	checks := diagnostics.RunChecks(cfg)
	if doctorJSON {
		return outputJSON(checks)
	}

	fmt.Println("Checking research environment...")
	fmt.Println()

	failed := 0
	for _, check := range checks {
		icon := okStyle.Render("✓")
		if !check.OK {
			icon = failStyle.Render("✗")
			failed++
		}
		fmt.Printf("  %s %s: %s\n", icon, check.Name, check.Detail)
	}
	fmt.Println()

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println("All checks passed.")
	return nil
}
