package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/suhlee/facilitysim/internal/models"
	"github.com/suhlee/facilitysim/internal/simulator"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Project a what-if scenario against a usage baseline",
	Long: `Applies a single what-if scenario (capacity change, closure, extended
hours or new facility) to a baseline usage snapshot and prints the
projected metrics, deltas and recommendation as JSON. The baseline is
derived from a simulated day unless --static-baseline is set.`,
	RunE: runScenario,
}

func init() {
	rootCmd.AddCommand(scenarioCmd)

	scenarioCmd.Flags().String("kind", "", "Scenario kind: capacity, closure, hours or new_facility")
	scenarioCmd.Flags().String("facility", "", "Target facility name")
	scenarioCmd.Flags().Int("change-percent", 0, "Capacity change percent, bounded to [-50, 100]")
	scenarioCmd.Flags().String("day", "Monday", "Closure day of week")
	scenarioCmd.Flags().String("new-open", "06:00", "New opening time for the hours scenario")
	scenarioCmd.Flags().String("new-close", "24:00", "New closing time for the hours scenario")
	scenarioCmd.Flags().String("name", "", "Name of the new facility")
	scenarioCmd.Flags().Int("capacity", 0, "Capacity of the new facility")
	scenarioCmd.Flags().Bool("static-baseline", false, "Use the built-in reference baseline instead of simulating one")

	_ = scenarioCmd.MarkFlagRequired("kind")
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	params, err := scenarioParamsFromFlags(cmd)
	if err != nil {
		return err
	}

	sim := simulator.NewSimulator(cfg)

	var baseline models.BaselineMetrics
	useStatic, _ := cmd.Flags().GetBool("static-baseline")
	if useStatic {
		baseline = models.DefaultBaseline()
	} else {
		baseline = sim.DeriveBaseline(models.ParseDay(cfg.StartDay))
	}

	projector := simulator.NewProjector(cfg.Scenario, sim.Facilities, rand.New(rand.NewSource(int64(cfg.Seed))))
	result := projector.Project(baseline, params)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func scenarioParamsFromFlags(cmd *cobra.Command) (models.ScenarioParams, error) {
	kind, _ := cmd.Flags().GetString("kind")
	facility, _ := cmd.Flags().GetString("facility")

	switch models.ScenarioKind(kind) {
	case models.ScenarioCapacity:
		changePercent, _ := cmd.Flags().GetInt("change-percent")
		return models.ScenarioParams{
			Kind:     models.ScenarioCapacity,
			Capacity: &models.CapacityParams{FacilityName: facility, ChangePercent: changePercent},
		}, nil
	case models.ScenarioClosure:
		day, _ := cmd.Flags().GetString("day")
		return models.ScenarioParams{
			Kind:    models.ScenarioClosure,
			Closure: &models.ClosureParams{FacilityName: facility, Day: models.ParseDay(day)},
		}, nil
	case models.ScenarioHours:
		openStr, _ := cmd.Flags().GetString("new-open")
		closeStr, _ := cmd.Flags().GetString("new-close")
		newOpen, err := models.ParseClock(openStr)
		if err != nil {
			return models.ScenarioParams{}, fmt.Errorf("invalid --new-open: %w", err)
		}
		newClose, err := models.ParseClock(closeStr)
		if err != nil {
			return models.ScenarioParams{}, fmt.Errorf("invalid --new-close: %w", err)
		}
		return models.ScenarioParams{
			Kind:  models.ScenarioHours,
			Hours: &models.HoursParams{FacilityName: facility, NewOpen: newOpen, NewClose: newClose},
		}, nil
	case models.ScenarioNewFacility:
		name, _ := cmd.Flags().GetString("name")
		capacity, _ := cmd.Flags().GetInt("capacity")
		return models.ScenarioParams{
			Kind:        models.ScenarioNewFacility,
			NewFacility: &models.NewFacilityParams{Name: name, Capacity: capacity},
		}, nil
	default:
		return models.ScenarioParams{}, fmt.Errorf("unknown scenario kind %q", kind)
	}
}
