// Package adapter accepts Hamlib network clients and translates their
// requests into CAT commands for a Kenwood TS-2000.
package adapter

import (
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"strings"

	hamlib "github.com/ftl/rigproxy/pkg/client"
	"github.com/ftl/rigproxy/pkg/protocol"

	"github.com/ftl/ts2000adapter/ts2000"
)

// Rig is the part of the TS-2000 driver that the network front-end uses.
type Rig interface {
	VFOFrequency(vfo ts2000.VFO) (int, error)
	SetVFOFrequency(vfo ts2000.VFO, frequency int) error
	CurrentMode() (ts2000.Mode, error)
	SetCurrentMode(mode ts2000.Mode) error
	SetReceiveVFO(vfo ts2000.VFO) error
	SetTransmitVFO(vfo ts2000.VFO) error
	Status() (ts2000.Status, error)
	SetTX(enabled bool) error
	KeyerSpeed() (int, error)
	SetKeyerSpeed(wpm int) error
	RecallMemory(number int) error
	CurrentMemory() (int, error)
}

func Listen(localAddress string, rig Rig, done <-chan struct{}, traceHamlib bool, version string) (*Adapter, error) {
	listener, err := net.Listen("tcp", localAddress)
	if err != nil {
		return nil, fmt.Errorf("cannot open local port %s: %w", localAddress, err)
	}

	result := &Adapter{
		listener:    listener,
		rig:         rig,
		closed:      make(chan struct{}),
		traceHamlib: traceHamlib,
		version:     version,
	}

	go result.run()
	go func() {
		select {
		case <-done:
		case <-result.closed:
		}
		listener.Close()
		result.Close()
	}()

	return result, nil
}

type Adapter struct {
	listener    net.Listener
	rig         Rig
	closed      chan struct{}
	traceHamlib bool
	version     string
}

func (a *Adapter) run() {
	for {
		select {
		case <-a.closed:
			return
		default:
		}

		c, err := a.listener.Accept()
		if err != nil {
			log.Print(err)
			a.Close()
			return
		}

		conn := inboundConnection{
			conn:          c,
			rig:           a.rig,
			state:         newConnState(),
			adapterClosed: a.closed,
			closed:        make(chan struct{}),
			trace:         a.traceHamlib,
			version:       a.version,
		}
		go conn.run()
		go func() {
			select {
			case <-conn.adapterClosed:
				c.Close()
				conn.Close()
			case <-conn.closed:
				c.Close()
			}
		}()
	}
}

func (a *Adapter) Close() {
	select {
	case <-a.closed:
	default:
		close(a.closed)
	}
}

func (a *Adapter) Wait() {
	<-a.closed
}

type inboundConnection struct {
	conn          io.ReadWriteCloser
	rig           Rig
	state         *connState
	adapterClosed <-chan struct{}
	closed        chan struct{}
	trace         bool
	version       string
	modeLocked    bool
}

func (c *inboundConnection) run() {
	defer c.conn.Close()
	r := protocol.NewRequestReader(c.conn)
	for {
		req, err := r.ReadRequest()
		if err == io.EOF {
			log.Print("connection EOF")
			c.Close()
			return
		}
		if err != nil {
			log.Printf("connection: %v", err)
			c.Close()
			return
		}

		resp, err := c.handleRequest(req)
		if err != nil {
			log.Printf("request failed: %v", err)
			resp = protocol.Response{
				Command: req.Key(),
				Result:  "-1",
			}
		}

		var response string
		if req.ExtendedSeparator != "" {
			response = resp.ExtendedFormat(req.ExtendedSeparator)
		} else {
			response = resp.Format()
		}
		if c.trace {
			log.Printf("> %s", response)
		}
		fmt.Fprintln(c.conn, response)
	}
}

func (c *inboundConnection) handleRequest(req protocol.Request) (protocol.Response, error) {
	key := strings.ToLower(string(req.Key()))
	if c.trace {
		log.Printf("< %s (%s)", req.LongFormat(), key)
	}
	switch key {
	case "chk_vfo":
		return protocol.ChkVFOResponse, nil
	case "dump_state":
		return protocol.DumpStateResponse, nil
	case "dump_caps":
		return dumpCapsResponse(c.version), nil
	case "get_freq":
		frequency, err := c.rig.VFOFrequency(c.state.currentVFO)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_freq: %w", err)
		}
		return protocol.GetFreqResponse(frequency), nil
	case "set_freq":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_freq: no arguments")
		}
		frequency, err := strconv.ParseFloat(req.Args[0], 64)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_freq: invalid frequency: %w", err)
		}
		err = c.rig.SetVFOFrequency(c.state.currentVFO, int(frequency))
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_freq: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "get_vfo":
		vfo := rigToHamlibVFO[c.state.currentVFO]
		return protocol.GetVFOResponse(string(vfo)), nil
	case "set_vfo":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_vfo: no arguments")
		}
		vfo, ok := hamlibToRigVFO[hamlib.VFO(req.Args[0])]
		if !ok {
			return protocol.NoResponse, fmt.Errorf("set_vfo: unknown VFO %s", req.Args[0])
		}
		err := c.rig.SetReceiveVFO(vfo)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_vfo: %w", err)
		}
		if !c.state.split {
			err = c.rig.SetTransmitVFO(vfo)
			if err != nil {
				return protocol.NoResponse, fmt.Errorf("set_vfo: %w", err)
			}
		}
		c.state.currentVFO = vfo
		return protocol.OKResponse(req.Key()), nil
	case "get_mode":
		mode, err := c.rig.CurrentMode()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_mode: %w", err)
		}
		return protocol.GetModeResponse(string(rigToHamlibMode[mode]), nominalPassband[mode]), nil
	case "set_mode":
		if len(req.Args) < 2 {
			return protocol.NoResponse, fmt.Errorf("set_mode: no arguments")
		}
		if c.modeLocked {
			return protocol.OKResponse(req.Key()), nil
		}
		mode, ok := hamlibToRigMode[hamlib.Mode(req.Args[0])]
		if !ok {
			return protocol.NoResponse, fmt.Errorf("set_mode: unsupported mode %s", req.Args[0])
		}
		err := c.rig.SetCurrentMode(mode)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_mode: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "get_split_vfo":
		status, err := c.rig.Status()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_split_vfo: %w", err)
		}
		c.state.split = status.Split
		return protocol.GetSplitVFOResponse(status.Split, string(hamlib.VFOB)), nil
	case "set_split_vfo":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_split_vfo: no arguments")
		}
		enabled := (req.Args[0] != "0")
		txVFO := c.state.currentVFO
		if enabled {
			txVFO = ts2000.VFOB
			if len(req.Args) > 1 {
				if vfo, ok := hamlibToRigVFO[hamlib.VFO(req.Args[1])]; ok {
					txVFO = vfo
				}
			}
		}
		err := c.rig.SetTransmitVFO(txVFO)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_split_vfo: %w", err)
		}
		c.state.split = enabled
		return protocol.OKResponse(req.Key()), nil
	case "get_split_freq":
		frequency, err := c.rig.VFOFrequency(ts2000.VFOB)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_split_freq: %w", err)
		}
		return protocol.GetSplitFreqResponse(frequency), nil
	case "set_split_freq":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_split_freq: no arguments")
		}
		frequency, err := strconv.ParseFloat(req.Args[0], 64)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_split_freq: invalid frequency: %w", err)
		}
		err = c.rig.SetVFOFrequency(ts2000.VFOB, int(frequency))
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_split_freq: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "get_split_mode":
		mode, err := c.rig.CurrentMode()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_split_mode: %w", err)
		}
		return protocol.GetSplitModeResponse(string(rigToHamlibMode[mode]), nominalPassband[mode]), nil
	case "set_split_mode":
		// Both VFOs of the main transceiver share one mode on the TS-2000.
		return protocol.OKResponse(req.Key()), nil
	case "get_ptt":
		status, err := c.rig.Status()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_ptt: %w", err)
		}
		return protocol.GetPTTResponse(status.TX), nil
	case "set_ptt":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_ptt: no arguments")
		}
		enabled := (req.Args[0] != "0")
		err := c.rig.SetTX(enabled)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_ptt: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "set_level_keyspd":
		if len(req.Args) < 2 {
			return protocol.NoResponse, fmt.Errorf("set_level: no arguments")
		}
		wpm, err := strconv.Atoi(req.Args[1])
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_level: invalid keyer speed in WPM: %w", err)
		}
		err = c.rig.SetKeyerSpeed(wpm)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_level: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "get_level_keyspd":
		wpm, err := c.rig.KeyerSpeed()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_level: %w", err)
		}
		return protocol.GetLevelKeyspdResponse(wpm), nil
	case "set_mem":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_mem: no arguments")
		}
		number, err := strconv.Atoi(req.Args[0])
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_mem: invalid memory number: %w", err)
		}
		err = c.rig.RecallMemory(number)
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("set_mem: %w", err)
		}
		return protocol.OKResponse(req.Key()), nil
	case "get_mem":
		number, err := c.rig.CurrentMemory()
		if err != nil {
			return protocol.NoResponse, fmt.Errorf("get_mem: %w", err)
		}
		return protocol.Response{
			Command: req.Key(),
			Data:    []string{strconv.Itoa(number)},
			Keys:    []string{""},
			Result:  "0",
		}, nil
	case "set_lock_mode":
		if len(req.Args) < 1 {
			return protocol.NoResponse, fmt.Errorf("set_lock_mode: no arguments")
		}
		c.modeLocked = (req.Args[0] == "1")
		return protocol.OKResponse(req.Key()), nil
	case "get_lock_mode":
		return protocol.GetPTTResponse(c.modeLocked), nil
	default:
		log.Printf("unsupported request: %v", req.LongFormat())
		return notImplementedResponse(req.Key()), nil
	}
}

func (c *inboundConnection) Close() {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
}

func notImplementedResponse(cmd protocol.CommandKey) protocol.Response {
	return protocol.Response{Command: cmd, Result: "-4"}
}
