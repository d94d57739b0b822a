package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ftl/ts2000adapter/ts2000"
)

// Config holds the connection settings of the adapter. All values can also
// be given on the command line, flags take precedence over the file.
type Config struct {
	LocalAddress string `yaml:"local_address"`
	Portname     string `yaml:"portname"`
	Baud         int    `yaml:"baud"`
	TraceCAT     bool   `yaml:"trace_cat"`
	TraceHamlib  bool   `yaml:"trace_hamlib"`
}

// LoadConfig loads the connection settings from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", filename, err)
	}
	return &config, nil
}

// effectiveConfig merges the command line flags with the config file given
// through --config. A flag that was set on the command line wins over the
// file.
func effectiveConfig(cmd *cobra.Command) (*Config, error) {
	config := &Config{
		LocalAddress: *rootFlags.localAddress,
		Portname:     *rootFlags.portname,
		Baud:         *rootFlags.baud,
		TraceCAT:     *rootFlags.traceCAT,
		TraceHamlib:  *rootFlags.traceHamlib,
	}
	if *rootFlags.config == "" {
		return config, nil
	}

	fileConfig, err := LoadConfig(*rootFlags.config)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if !flags.Changed("local_address") && fileConfig.LocalAddress != "" {
		config.LocalAddress = fileConfig.LocalAddress
	}
	if !flags.Changed("portname") && fileConfig.Portname != "" {
		config.Portname = fileConfig.Portname
	}
	if !flags.Changed("baud") && fileConfig.Baud != 0 {
		config.Baud = fileConfig.Baud
	}
	if !flags.Changed("trace_cat") {
		config.TraceCAT = fileConfig.TraceCAT
	}
	if !flags.Changed("trace_hamlib") {
		config.TraceHamlib = fileConfig.TraceHamlib
	}
	return config, nil
}

func openRadio(config *Config) (*ts2000.Radio, error) {
	if config.Portname == "" {
		return nil, fmt.Errorf("no serial port given, use --portname or a config file")
	}
	return ts2000.Open(config.Portname, config.Baud, config.TraceCAT)
}

// mustOpenRadio opens the radio for one of the CLI commands and aborts the
// process if that fails.
func mustOpenRadio(cmd *cobra.Command) *ts2000.Radio {
	config, err := effectiveConfig(cmd)
	if err != nil {
		log.Fatal(err)
	}
	radio, err := openRadio(config)
	if err != nil {
		log.Fatal(err)
	}
	return radio
}
