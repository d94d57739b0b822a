package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "ts2000adapter.yaml")
	content := `local_address: "0.0.0.0:4532"
portname: /dev/ttyUSB0
baud: 57600
trace_cat: true
`
	err := os.WriteFile(filename, []byte(content), 0644)
	if err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(filename)
	if err != nil {
		t.Fatal(err)
	}

	if config.LocalAddress != "0.0.0.0:4532" {
		t.Errorf("local address: got %q", config.LocalAddress)
	}
	if config.Portname != "/dev/ttyUSB0" {
		t.Errorf("portname: got %q", config.Portname)
	}
	if config.Baud != 57600 {
		t.Errorf("baud: got %d", config.Baud)
	}
	if !config.TraceCAT {
		t.Error("trace_cat not set")
	}
	if config.TraceHamlib {
		t.Error("trace_hamlib must not be set")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}
