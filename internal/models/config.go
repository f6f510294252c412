package models

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// CloudStorageConfig selects where parquet output lands when the
// destination is not local disk.
type CloudStorageConfig struct {
	Provider   string `mapstructure:"provider"`
	Region     string `mapstructure:"region"`
	BucketName string `mapstructure:"bucket_name"`
}

// DatabaseConfig is the postgres sink/loader connection.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

// ScenarioTuning holds the what-if heuristic constants. They come from
// observed demo behaviour, not from a fitted model, so they are
// configuration rather than hard-coded truths.
type ScenarioTuning struct {
	PeakDamping               float64 `mapstructure:"peak_damping"`
	AverageRatio              float64 `mapstructure:"average_ratio"`
	SatisfactionGainDivisor   float64 `mapstructure:"satisfaction_gain_divisor"`
	SatisfactionLossDivisor   float64 `mapstructure:"satisfaction_loss_divisor"`
	SatisfactionMin           int     `mapstructure:"satisfaction_min"`
	SatisfactionMax           int     `mapstructure:"satisfaction_max"`
	ClosurePeakFactor         float64 `mapstructure:"closure_peak_factor"`
	ClosureSatisfactionDrop   int     `mapstructure:"closure_satisfaction_drop"`
	ClosureSatisfactionFloor  int     `mapstructure:"closure_satisfaction_floor"`
	OvercrowdFactor           float64 `mapstructure:"overcrowd_factor"`
	ExtensionEarlyUsers       int     `mapstructure:"extension_early_users"`
	ExtensionLateUsers        int     `mapstructure:"extension_late_users"`
	ExtensionPeakRatio        float64 `mapstructure:"extension_peak_ratio"`
	ExtensionSatisfactionGain int     `mapstructure:"extension_satisfaction_gain"`
	NewFacilityPeakRatio      float64 `mapstructure:"new_facility_peak_ratio"`
	NewFacilityAverageRatio   float64 `mapstructure:"new_facility_average_ratio"`
	NewFacilitySatisfaction   int     `mapstructure:"new_facility_satisfaction"`
}

// DefaultScenarioTuning returns the reference constants.
func DefaultScenarioTuning() ScenarioTuning {
	return ScenarioTuning{
		PeakDamping:               150,
		AverageRatio:              0.7,
		SatisfactionGainDivisor:   5,
		SatisfactionLossDivisor:   3,
		SatisfactionMin:           50,
		SatisfactionMax:           95,
		ClosurePeakFactor:         1.3,
		ClosureSatisfactionDrop:   15,
		ClosureSatisfactionFloor:  40,
		OvercrowdFactor:           1.4,
		ExtensionEarlyUsers:       8,
		ExtensionLateUsers:        12,
		ExtensionPeakRatio:        0.6,
		ExtensionSatisfactionGain: 8,
		NewFacilityPeakRatio:      0.8,
		NewFacilityAverageRatio:   0.6,
		NewFacilitySatisfaction:   88,
	}
}

type Config struct {
	Seed             int     `mapstructure:"seed"`
	Days             int     `mapstructure:"days"`
	StartDay         string  `mapstructure:"start_day"`
	InitialPersonas  int     `mapstructure:"initial_personas"`
	GenerateData     bool    `mapstructure:"generate_data"`
	FacilitiesFile   string  `mapstructure:"facilities_file"`
	PersonasFile     string  `mapstructure:"personas_file"`
	Realtime         bool    `mapstructure:"realtime"`
	Speed            float64 `mapstructure:"speed"`
	TickIntervalMs   int     `mapstructure:"tick_interval_ms"`
	Output           string  `mapstructure:"output"`
	OutputPath       string  `mapstructure:"output_path"`
	OutputFolder     string  `mapstructure:"output_folder"`
	KafkaEnabled     bool    `mapstructure:"kafka_enabled"`
	KafkaBrokerList  string  `mapstructure:"kafka_broker_list"`
	SessionTimeoutMs int     `mapstructure:"session_timeout_ms"`

	OutputDestination string             `mapstructure:"output_destination"`
	CloudStorage      CloudStorageConfig `mapstructure:"cloud_storage"`
	Database          DatabaseConfig     `mapstructure:"database"`

	MinCapacity int `mapstructure:"min_capacity"`
	MaxCapacity int `mapstructure:"max_capacity"`

	Scenario ScenarioTuning `mapstructure:"scenario"`
}

func setDefaults() {
	viper.SetDefault("seed", 42)
	viper.SetDefault("days", 1)
	viper.SetDefault("start_day", "Monday")
	viper.SetDefault("initial_personas", 8)
	viper.SetDefault("speed", 1.0)
	viper.SetDefault("tick_interval_ms", 1000)
	viper.SetDefault("output", "console")
	viper.SetDefault("output_destination", "local")
	viper.SetDefault("min_capacity", 10)
	viper.SetDefault("max_capacity", 50)

	tuning := DefaultScenarioTuning()
	viper.SetDefault("scenario.peak_damping", tuning.PeakDamping)
	viper.SetDefault("scenario.average_ratio", tuning.AverageRatio)
	viper.SetDefault("scenario.satisfaction_gain_divisor", tuning.SatisfactionGainDivisor)
	viper.SetDefault("scenario.satisfaction_loss_divisor", tuning.SatisfactionLossDivisor)
	viper.SetDefault("scenario.satisfaction_min", tuning.SatisfactionMin)
	viper.SetDefault("scenario.satisfaction_max", tuning.SatisfactionMax)
	viper.SetDefault("scenario.closure_peak_factor", tuning.ClosurePeakFactor)
	viper.SetDefault("scenario.closure_satisfaction_drop", tuning.ClosureSatisfactionDrop)
	viper.SetDefault("scenario.closure_satisfaction_floor", tuning.ClosureSatisfactionFloor)
	viper.SetDefault("scenario.overcrowd_factor", tuning.OvercrowdFactor)
	viper.SetDefault("scenario.extension_early_users", tuning.ExtensionEarlyUsers)
	viper.SetDefault("scenario.extension_late_users", tuning.ExtensionLateUsers)
	viper.SetDefault("scenario.extension_peak_ratio", tuning.ExtensionPeakRatio)
	viper.SetDefault("scenario.extension_satisfaction_gain", tuning.ExtensionSatisfactionGain)
	viper.SetDefault("scenario.new_facility_peak_ratio", tuning.NewFacilityPeakRatio)
	viper.SetDefault("scenario.new_facility_average_ratio", tuning.NewFacilityAverageRatio)
	viper.SetDefault("scenario.new_facility_satisfaction", tuning.NewFacilitySatisfaction)
}

// LoadConfig initializes and reads the configuration using Viper. A
// missing config file is not an error; flag and default values carry the
// run. An explicitly named file that fails to parse is fatal.
func LoadConfig(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("examples")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("json")
	}

	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	decoderConfigOption := viper.DecoderConfigOption(func(config *mapstructure.DecoderConfig) {
		config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			config.DecodeHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		)
	})
	if err := viper.Unmarshal(&config, decoderConfigOption); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &config, nil
}

// TickInterval is the playback cadence before the speed multiplier.
func (cfg *Config) TickInterval() time.Duration {
	if cfg.TickIntervalMs <= 0 {
		return time.Second
	}
	return time.Duration(cfg.TickIntervalMs) * time.Millisecond
}
