package subscriber

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
// An unparseable address is not an error here: the daemon runs without joining.
func (cfg XMLConfig) NewDaemonConf() (config Config, err error) {
	config.GroupAddress = strings.TrimSpace(cfg.MulticastAddress)

	port, parseErr := strconv.ParseInt(strings.TrimSpace(cfg.Port), 10, 32)
	if parseErr == nil {
		config.Port = int(port)
	}

	config.Group, parseErr = network.ParseGroup(config.GroupAddress)
	if parseErr != nil {
		config.Group = nil
	}

	err = config.validate()
	return
}

func (cfg *Config) validate() (err error) {
	if cfg.Port < 1 || cfg.Port > 65535 {
		err = fmt.Errorf("port %d outside of 1-65535", cfg.Port)
		return
	}
	return
}

// Sets defaults for any missing values
func (cfg *Config) setDefaults() {
	if cfg.HistoryCapacity <= 0 {
		cfg.HistoryCapacity = global.DefaultHistoryCapacity
	}
	if cfg.SuspendPoll <= 0 {
		cfg.SuspendPoll = global.DefaultSuspendPoll
	}
	if cfg.ControlPoll <= 0 {
		cfg.ControlPoll = global.DefaultControlPoll
	}
	if cfg.ProcessIdle <= 0 {
		cfg.ProcessIdle = global.DefaultProcessIdle
	}
}
