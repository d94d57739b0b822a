package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ftl/ts2000adapter/adapter"
)

var version = "development"

var rootFlags = struct {
	localAddress *string
	portname     *string
	baud         *int
	traceCAT     *bool
	traceHamlib  *bool
	config       *string
}{}

var rootCmd = &cobra.Command{
	Use:   "ts2000adapter",
	Short: "An adapter to connect Hamlib clients to a Kenwood TS-2000 on a serial port.",
	Run:   root,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootFlags.localAddress = rootCmd.PersistentFlags().StringP("local_address", "l", "localhost:4532", "Listen for incoming Hamlib connections on this local network address")
	rootFlags.portname = rootCmd.PersistentFlags().StringP("portname", "p", "", "Talk to the radio through this serial port")
	rootFlags.baud = rootCmd.PersistentFlags().IntP("baud", "b", 0, "Use this baud rate on the serial port, 0 probes all rates the radio knows")
	rootFlags.traceCAT = rootCmd.PersistentFlags().Bool("trace_cat", false, "Trace the CAT communication with the radio on the console")
	rootFlags.traceHamlib = rootCmd.PersistentFlags().Bool("trace_hamlib", false, "Trace the Hamlib communication on the console")
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "Read the connection settings from this YAML file")
}

func root(cmd *cobra.Command, args []string) {
	log.Printf("TS-2000 Hamlib Adapter %s", version)

	config, err := effectiveConfig(cmd)
	if err != nil {
		log.Fatal(err)
	}
	radio, err := openRadio(config)
	if err != nil {
		log.Fatal(err)
	}
	defer radio.Close()

	done := make(chan struct{})
	a, err := adapter.Listen(config.LocalAddress, radio, done, config.TraceHamlib, version)
	if err != nil {
		log.Fatalf("starting the adapter failed: %v", err)
	}
	log.Printf("listening for Hamlib clients on %s", config.LocalAddress)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		close(done)
	}()

	a.Wait()
}
