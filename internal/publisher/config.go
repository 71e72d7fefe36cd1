package publisher

import (
	"encoding/xml"
	"fmt"
	"mcaststats/internal/global"
	"mcaststats/internal/network"
	"os"
	"strconv"
	"strings"
)

// Loads XML config from file
func LoadConfig(path string) (cfg XMLConfig, err error) {
	configFile, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("failed to read config file: %w", err)
		return
	}

	err = xml.Unmarshal(configFile, &cfg)
	if err != nil {
		err = fmt.Errorf("invalid config syntax in '%s': %w", path, err)
		return
	}
	return
}

// Parses XML config into daemon config.
// Numeric fields that fail to parse count as 0, and any zero field is fatal.
func (cfg XMLConfig) NewDaemonConf() (config Config, err error) {
	config.GroupAddress = strings.TrimSpace(cfg.MulticastAddress)
	port := parseIntOrZero(cfg.Port)
	minValue := parseIntOrZero(cfg.MinValue)
	maxValue := parseIntOrZero(cfg.MaxValue)

	if config.GroupAddress == "" || port == 0 || minValue == 0 || maxValue == 0 {
		err = fmt.Errorf("check the correctness of the configuration file: multicast address, port, minimum and maximum value are all required and non-zero")
		return
	}

	config.Port = port
	config.MinValue = int32(minValue)
	config.MaxValue = int32(maxValue)

	config.Group, err = network.ParseGroup(config.GroupAddress)
	if err != nil {
		err = fmt.Errorf("impossible to parse multicast address: %w", err)
		return
	}

	err = config.validate()
	return
}

// Rejects settings the send loop cannot work with
func (cfg *Config) validate() (err error) {
	if cfg.Group == nil {
		err = fmt.Errorf("cannot start without a multicast group")
		return
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		err = fmt.Errorf("port %d outside of 1-65535", cfg.Port)
		return
	}
	if cfg.MinValue == 0 || cfg.MaxValue == 0 {
		err = fmt.Errorf("minimum and maximum value must be non-zero")
		return
	}
	if cfg.MinValue >= cfg.MaxValue {
		err = fmt.Errorf("minimum value %d must be less than maximum value %d", cfg.MinValue, cfg.MaxValue)
		return
	}
	return
}

// Sets defaults for any missing values
func (cfg *Config) setDefaults() {
	if cfg.SendInterval <= 0 {
		cfg.SendInterval = global.DefaultSendInterval
	}
}

// Mirrors a lenient integer parse: whitespace trimmed, anything invalid or out of int32 range is 0
func parseIntOrZero(field string) (value int) {
	parsed, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
	if err != nil {
		return
	}
	value = int(parsed)
	return
}
