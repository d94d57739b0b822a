package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ftl/ts2000adapter/ts2000"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the serial port for a Kenwood radio",
	Run:   probe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func probe(cmd *cobra.Command, args []string) {
	config, err := effectiveConfig(cmd)
	if err != nil {
		log.Fatal(err)
	}
	if config.Portname == "" {
		log.Fatal("no serial port given, use --portname or a config file")
	}

	id, baud, err := ts2000.Probe(config.Portname, config.TraceCAT)
	if err != nil {
		log.Fatal(err)
	}
	note := ""
	if id == ts2000.IDString {
		note = " (TS-2000)"
	}
	log.Printf("found a Kenwood radio with model ID %s%s at %d Bd on %s", id, note, baud, config.Portname)
}
