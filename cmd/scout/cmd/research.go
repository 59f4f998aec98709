package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/clip"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/core"
	"github.com/hugo-lorenzo-mato/scout-ai/internal/report"
)

var (
	researchVariation bool
	researchCopy      bool
	researchOutput    bool
	researchPlain     bool
)

var researchCmd = &cobra.Command{
	Use:   "research <query>",
	Short: "Run a parallel research query",
	Long: `Run one research query across the worker pool and print the synthesized
report.

Examples:
  # Standard run with three numbered workers
  scout research "impact of tariffs on chip supply chains"

  # Intensity variation run (conservative / balanced / creative)
  scout research --variation "impact of tariffs on chip supply chains"

  # Save the report and copy it to the clipboard
  scout research --output --copy "battery recycling economics"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResearch,
}

func init() {
	rootCmd.AddCommand(researchCmd)

	researchCmd.Flags().BoolVar(&researchVariation, "variation", false,
		"run in intensity variation mode")
	researchCmd.Flags().BoolVar(&researchCopy, "copy", false,
		"copy the report to the clipboard")
	researchCmd.Flags().BoolVarP(&researchOutput, "output", "o", false,
		"save the report under report.dir")
	researchCmd.Flags().BoolVar(&researchPlain, "plain", false,
		"print raw markdown without terminal rendering")
}

func runResearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return core.ErrValidation(core.CodeEmptyQuery, "query must not be empty")
	}
	if len(query) > core.MaxQueryLength {
		return core.ErrValidation(core.CodeEmptyQuery,
			fmt.Sprintf("query exceeds %d bytes", core.MaxQueryLength))
	}

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
	if researchVariation {
		mode = core.ModeVariation
	}

	result := coordinator.Run(cmd.Context(), query, mode)

	if err := printReport(result); err != nil {
		return err
	}

	if researchOutput {
		path, err := report.NewWriter(cfg.Report.Dir).Save(query, string(mode), result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Report saved to %s\n", path)
	}

	if researchCopy {
		copied, err := clip.Copy(result)
		if err != nil {
			return err
		}
		switch copied.Method {
		case clip.MethodFile:
			fmt.Fprintf(os.Stderr, "Clipboard unavailable; report written to %s\n", copied.FilePath)
		default:
			fmt.Fprintln(os.Stderr, "Report copied to clipboard")
		}
	}

	return nil
}

// printReport renders markdown for terminals and prints raw text otherwise.
func printReport(markdown string) error {
	if researchPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(markdown)
		return nil
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		fmt.Println(markdown)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
