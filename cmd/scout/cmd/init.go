package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hugo-lorenzo-mato/scout-ai/internal/config"
)

var initPath string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  "Create a .scout.yaml with the default worker profiles, report settings and runtime selection.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initPath, "path", ".scout.yaml", "where to write the config file")
}

func runInit(_ *cobra.Command, _ []string) error {
	if err := config.WriteInitFile(initPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", initPath)
	return nil
}
