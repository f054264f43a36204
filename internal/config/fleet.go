// Package config loads fleet manifests: YAML documents declaring ships,
// containers and an optional loading plan for the CLI driver to execute.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// FleetConfig is a fully parsed fleet manifest.
type FleetConfig struct {
	Ships      []ShipConfig      `mapstructure:"ships"`
	Containers []ContainerConfig `mapstructure:"containers"`
	Plan       []Step            `mapstructure:"plan"`
}

// ShipConfig declares a single ship and its limits.
type ShipConfig struct {
	Name              string  `mapstructure:"name"`
	MaxSpeed          float64 `mapstructure:"max_speed"`
	MaxWeightTonnes   float64 `mapstructure:"max_weight_tonnes"`
	MaxContainerCount int     `mapstructure:"max_container_count"`
}

// ContainerConfig declares a single container. Kind selects the variant;
// hazardous, pressure, product_type and temperature only apply to the
// variant that defines them.
type ContainerConfig struct {
	SerialNumber string  `mapstructure:"serial_number"`
	Kind         string  `mapstructure:"kind"`
	Height       float64 `mapstructure:"height"`
	TareWeight   float64 `mapstructure:"tare_weight"`
	Depth        float64 `mapstructure:"depth"`
	MaxLoad      float64 `mapstructure:"max_load"`
	Hazardous    bool    `mapstructure:"hazardous"`
	Pressure     float64 `mapstructure:"pressure"`
	ProductType  string  `mapstructure:"product_type"`
	Temperature  float64 `mapstructure:"temperature"`
}

// Step is one operation of a loading plan. Action selects the operation;
// the remaining fields are interpreted per action.
type Step struct {
	Action      string  `mapstructure:"action"`
	Ship        string  `mapstructure:"ship"`
	Target      string  `mapstructure:"target"`
	Serial      string  `mapstructure:"serial"`
	Replacement string  `mapstructure:"replacement"`
	Mass        float64 `mapstructure:"mass"`
	Message     string  `mapstructure:"message"`
}

// LoadFleetConfig loads a fleet manifest using Viper. When path is empty the
// manifest is searched for under the usual configuration locations. The
// manifest is the sole source of fleet state: every key decodes to a list of
// ships, containers or steps, so there is no environment override.
func LoadFleetConfig(path string) (*FleetConfig, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cargoship")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.cargoship")
		v.AddConfigPath("/etc/cargoship")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading fleet manifest: %w", err)
	}

	var cfg FleetConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling fleet manifest: %w", err)
	}

	return &cfg, nil
}
