package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strategix/strategix/internal/config"
	"github.com/strategix/strategix/internal/display"
	"github.com/strategix/strategix/internal/task"
)

var (
	planCategory string
	planJSON     bool
)

var planCmd = &cobra.Command{
	Use:   "plan <description>",
	Short: "Show the step plan for a task without executing it",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planCategory, "category", "", "task category used to select a plan template")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the plan as JSON")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	category, err := task.ParseCategory(planCategory)
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	generator, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	description := strings.Join(args, " ")
	specs, err := generator.GeneratePlan(cmd.Context(), description, category, nil)
	if err != nil {
		return fmt.Errorf("failed to generate plan: %w", err)
	}

	if planJSON {
		out, err := json.MarshalIndent(specs, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Print(display.PlanReport(description, specs))
	return nil
}
