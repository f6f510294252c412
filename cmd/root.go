package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/suhlee/facilitysim/internal/models"
	"github.com/suhlee/facilitysim/internal/simulator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "facilitysim",
	Short: "Simulates time-indexed facility occupancy",
	Long:  `facilitysim is a CLI tool that plays persona schedules against facility operating hours over a simulated week, streaming occupancy events tick by tick for downstream analysis.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		sim := simulator.NewSimulator(cfg)
		sim.Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.json)")

	rootCmd.Flags().Int("seed", 42, "Random seed for simulation")
	rootCmd.Flags().Int("days", 1, "Number of simulated days to play")
	rootCmd.Flags().String("start-day", "Monday", "Day of week the run starts on")
	rootCmd.Flags().Int("initial-personas", 8, "Number of personas when generating data")
	rootCmd.Flags().Bool("generate-data", false, "Generate facilities and personas instead of loading them")
	rootCmd.Flags().String("facilities-file", "", "JSON file describing facilities")
	rootCmd.Flags().String("personas-file", "", "JSON file describing personas and schedules")
	rootCmd.Flags().Bool("realtime", false, "Advance on the wall clock instead of sweeping")
	rootCmd.Flags().Float64("speed", 1.0, "Playback speed multiplier in realtime mode")
	rootCmd.Flags().Int("tick-interval-ms", 1000, "Milliseconds per tick before the speed multiplier")
	rootCmd.Flags().String("output", "console", "Output format: console, json, csv, parquet or postgres")
	rootCmd.Flags().String("output-path", "", "Base path for file outputs")
	rootCmd.Flags().String("output-folder", "facilitysim", "Folder under the output path")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")

	viper.BindPFlags(rootCmd.Flags())
	bindFlagAliases()
}

// bindFlagAliases maps dashed flag names onto the snake_case config keys.
func bindFlagAliases() {
	aliases := map[string]string{
		"start_day":         "start-day",
		"initial_personas":  "initial-personas",
		"generate_data":     "generate-data",
		"facilities_file":   "facilities-file",
		"personas_file":     "personas-file",
		"tick_interval_ms":  "tick-interval-ms",
		"output_path":       "output-path",
		"output_folder":     "output-folder",
		"kafka_enabled":     "kafka-enabled",
		"kafka_broker_list": "kafka-broker-list",
	}
	for key, flag := range aliases {
		viper.BindPFlag(key, rootCmd.Flags().Lookup(flag))
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
