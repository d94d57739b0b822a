package kenwood

import (
	"fmt"
	"log"
	"strings"
	"time"

	"go.bug.st/serial"
)

const readTimeout = 500 * time.Millisecond

// Port is the serial implementation of Exchanger. It owns the serial link
// exclusively; all framing is done by the command delimiter, the radios of
// this family send no line endings of their own.
type Port struct {
	portname string
	port     serial.Port
	trace    bool
}

// Open opens the serial port with the family's parameters: 8N1, no
// hardware flow control.
func Open(portname string, baud int, trace bool) (*Port, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(portname, mode)
	if err != nil {
		return nil, fmt.Errorf("cannot open serial port %s: %w", portname, err)
	}
	err = port.SetReadTimeout(readTimeout)
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("cannot set read timeout on %s: %w", portname, err)
	}
	return &Port{
		portname: portname,
		port:     port,
		trace:    trace,
	}, nil
}

// Exchange writes the command followed by the command delimiter and reads
// the response up to the next delimiter. A read that yields nothing within
// the read timeout ends the exchange with ErrTimeout.
func (p *Port) Exchange(cmd string) (string, error) {
	if p.trace {
		log.Printf("> %s", cmd)
	}
	_, err := p.port.Write([]byte(cmd + ";"))
	if err != nil {
		return "", fmt.Errorf("cannot write to %s: %w", p.portname, err)
	}

	var response strings.Builder
	buf := make([]byte, 64)
	for {
		n, err := p.port.Read(buf)
		if err != nil {
			return "", fmt.Errorf("cannot read from %s: %w", p.portname, err)
		}
		if n == 0 {
			return "", fmt.Errorf("%s: %w", p.portname, ErrTimeout)
		}
		for i := 0; i < n; i++ {
			switch buf[i] {
			case ';':
				resp := response.String()
				if p.trace {
					log.Printf("< %s", resp)
				}
				return resp, nil
			case '\r', '\n':
				// ignored, the delimiter is the only framing
			default:
				response.WriteByte(buf[i])
			}
		}
	}
}

// Close closes the serial port.
func (p *Port) Close() error {
	return p.port.Close()
}
