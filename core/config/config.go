package config

import (
	"reflect"
	"strings"

	"roster-manager/core/database"
	"roster-manager/core/logger"
	"roster-manager/core/reconcile"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Course identifies the course and term the rosters belong to.
	Course CourseConfig `mapstructure:"course"`
	// Paths holds the input and output directory layout.
	Paths PathsConfig `mapstructure:"paths"`
	// Statuses holds the status vocabulary the engine recognizes.
	Statuses reconcile.Sentinels `mapstructure:"statuses"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the lifecycle archive connection.
	Database database.Config `mapstructure:"database"`
}

// CourseConfig identifies the course whose rosters are processed.
// It is informational: it appears in logs and report titles only.
type CourseConfig struct {
	// Name is the course name (e.g., "Calculus I").
	Name string `mapstructure:"name" default:""`
	// Term is the term name (e.g., "Spring 2026").
	Term string `mapstructure:"term" default:""`
}

// PathsConfig holds the directory layout for inputs and outputs.
type PathsConfig struct {
	// RostersDir contains the dated subdirectories of roster captures.
	RostersDir string `mapstructure:"rosters_dir" default:"data/interim/rosters"`
	// RosterOutputDir receives generated enrollment roster CSV files.
	RosterOutputDir string `mapstructure:"roster_output_dir" default:"data/processed/enrollment"`
	// ReportOutputDir receives generated enrollment report files.
	ReportOutputDir string `mapstructure:"report_output_dir" default:"reports/enrollment"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. PATHS_ROSTERS_DIR -> paths.rosters_dir)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
