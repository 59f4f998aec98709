package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
)

var (
	statusJSON      bool
	statusVariation bool
	statusReport    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the worker pool",
	Long:  "Prepare the worker pool for the selected mode and display each worker's profile and capabilities.",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	statusCmd.Flags().BoolVar(&statusVariation, "variation", false, "show the variation-mode pool")
	statusCmd.Flags().BoolVar(&statusReport, "report", false, "output the full markdown status report")
}

var statusHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func runStatus(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	coordinator, cleanup, err := buildCoordinator(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	mode := core.ModeStandard
	if statusVariation {
		mode = core.ModeVariation
	}
	if err := coordinator.Prepare(cmd.Context(), mode); err != nil {
		return err
	}

	if statusReport {
		fmt.Println(coordinator.StatusReport())
		return nil
	}

	statuses := coordinator.Status()
	if statusJSON {
		return outputJSON(statuses)
	}

	fmt.Println(statusHeaderStyle.Render(fmt.Sprintf("Research workers (%s mode)", mode)))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORKER\tPROFILE\tINTENSITY\tAPPROACH\tSEARCH\tMEMORY")
	for _, s := range statuses {
		intensity := "-"
		if s.Intensity != nil {
			intensity = fmt.Sprintf("%.1f", *s.Intensity)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\n",
			s.Name, s.Profile, intensity, s.Approach, s.HasSearch, s.HasMemory)
	}
	return w.Flush()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
