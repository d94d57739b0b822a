//go:build windows
// +build windows

package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"golang.org/x/sys/windows/svc"
	"golang.org/x/sys/windows/svc/eventlog"
	"golang.org/x/sys/windows/svc/mgr"

	"github.com/ftl/ts2000adapter/adapter"
)

// see https://cs.opensource.google/go/x/sys/+/0f9fa26a:windows/svc/example/install.go

const serviceName = "ts2000adapter"

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Run the TS-2000 adapter as Windows service (must not be used on the command line)",
	Run:   service,
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the TS-2000 adapter as Windows service",
	Run:   install,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Uninstall the Windows service",
	Run:   uninstall,
}

func init() {
	rootCmd.AddCommand(serviceCmd, installCmd, uninstallCmd)
}

func service(cmd *cobra.Command, args []string) {
	log.Printf("TS-2000 Hamlib Adapter %s", version)

	runningAsService, err := svc.IsWindowsService()
	if !runningAsService || err != nil {
		log.Fatalf("not running as Windows service, do not use the 'service' command on the command line!")
	}
	log.Print("running as Windows service")

	config, err := effectiveConfig(cmd)
	if err != nil {
		log.Fatal(err)
	}

	err = svc.Run(serviceName, &serviceHandler{config: config})
	if err != nil {
		log.Fatalf("service failed: %v", err)
	}
}

func install(cmd *cobra.Command, args []string) {
	log.Printf("TS-2000 Hamlib Adapter %s", version)
	log.Print("installing ts2000adapter as Windows service")

	serviceFilename, err := exePath()
	if err != nil {
		log.Fatal(err)
	}

	serviceArgs := []string{
		"service",
		"-l", *rootFlags.localAddress,
		"-p", *rootFlags.portname,
		"-b", strconv.Itoa(*rootFlags.baud),
	}
	if *rootFlags.config != "" {
		serviceArgs = append(serviceArgs, "-c", *rootFlags.config)
	}
	if *rootFlags.traceCAT {
		serviceArgs = append(serviceArgs, "--trace_cat")
	}
	if *rootFlags.traceHamlib {
		serviceArgs = append(serviceArgs, "--trace_hamlib")
	}

	serviceConfig := mgr.Config{
		StartType:   mgr.StartAutomatic,
		DisplayName: "TS-2000 Hamlib Adapter",
		Description: "Run the TS-2000 Hamlib adapter as a windows service",
	}

	log.Printf("service command: %s %s", serviceFilename, strings.Join(serviceArgs, " "))

	services, err := mgr.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer services.Disconnect()

	service, err := services.OpenService(serviceName)
	if err == nil {
		service.Close()
		log.Fatalf("the %s service already exists", serviceName)
	}

	service, err = services.CreateService(serviceName, serviceFilename, serviceConfig, serviceArgs...)
	if err != nil {
		log.Fatal(err)
	}
	defer service.Close()

	err = eventlog.InstallAsEventCreate(serviceName, eventlog.Error|eventlog.Warning|eventlog.Info)
	if err != nil {
		service.Delete()
		log.Fatalf("cannot setup log for the %s service: %v", serviceName, err)
	}
	log.Print("the ts2000adapter Windows service was sucessfully installed")
}

func uninstall(cmd *cobra.Command, args []string) {
	log.Printf("TS-2000 Hamlib Adapter %s", version)
	log.Print("uninstalling the ts2000adapter Windows service")

	services, err := mgr.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer services.Disconnect()

	service, err := services.OpenService(serviceName)
	if err != nil {
		log.Fatalf("the %s Windows service is currently not installed: %v", serviceName, err)
	}
	defer service.Close()

	err = service.Delete()
	if err != nil {
		log.Fatal(err)
	}

	err = eventlog.Remove(serviceName)
	if err != nil {
		log.Fatalf("cannot remove log for the %s service: %v", serviceName, err)
	}
	log.Print("the ts2000adapter Windows service was sucessfully uninstalled")
}

func exePath() (string, error) {
	prog := os.Args[0]
	p, err := filepath.Abs(prog)
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(p)
	if err == nil {
		if !fi.Mode().IsDir() {
			return p, nil
		}
		err = fmt.Errorf("%s is directory", p)
	}
	if filepath.Ext(p) == "" {
		p += ".exe"
		fi, err := os.Stat(p)
		if err == nil {
			if !fi.Mode().IsDir() {
				return p, nil
			}
			err = fmt.Errorf("%s is directory", p)
		}
	}
	return "", err
}

type serviceHandler struct {
	config *Config
}

func (s *serviceHandler) Execute(args []string, requests <-chan svc.ChangeRequest, changes chan<- svc.Status) (ssec bool, errno uint32) {
	const cmdsAccepted = svc.AcceptStop | svc.AcceptShutdown
	changes <- svc.Status{State: svc.StartPending}

	if s.config.TraceCAT {
		log.Print("CAT tracing enabled")
	}
	if s.config.TraceHamlib {
		log.Print("hamlib tracing enabled")
	}

	radio, err := openRadio(s.config)
	if err != nil {
		log.Fatalf("cannot open the radio: %v", err)
	}

	done := make(chan struct{})
	a, err := adapter.Listen(s.config.LocalAddress, radio, done, s.config.TraceHamlib, version)
	if err != nil {
		log.Fatalf("starting the adapter failed: %v", err)
	}

	changes <- svc.Status{State: svc.Running, Accepts: cmdsAccepted}
	for {
		select {
		case c := <-requests:
			switch c.Cmd {
			case svc.Interrogate:
				changes <- c.CurrentStatus
			case svc.Stop, svc.Shutdown:
				changes <- svc.Status{State: svc.StopPending}
				close(done)
				a.Wait()
				radio.Close()
				return
			default:
				log.Printf("unexpected control request #%d", c)
			}
		}
	}
}
