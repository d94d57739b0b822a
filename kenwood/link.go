// Package kenwood implements the command layer that is common to Kenwood's
// CAT protocol family: ";"-delimited ASCII commands over a half-duplex
// serial link, with the radio echoing writes for verification.
package kenwood

import (
	"errors"
	"fmt"
	"strings"
)

// Exchanger sends one command to the radio and returns its response with
// the trailing command delimiter already stripped. The protocol is strictly
// half-duplex request/response, implementations must not pipeline commands.
type Exchanger interface {
	Exchange(cmd string) (string, error)
}

// Primer runs the prerequisite command that some menu keys require
// immediately before (enable = true) and after (enable = false) a write to
// that key. The TS-2000 does not need any, other family members do.
type Primer func(key string, enable bool) error

var (
	// ErrNAK is returned when the radio answers "N": the addressed entry
	// does not exist, typically an unprogrammed memory channel.
	ErrNAK = errors.New("radio answered N")
	// ErrCommandError is returned when the radio answers "?": it did not
	// understand or could not execute the command.
	ErrCommandError = errors.New("radio answered ?")
	// ErrTimeout is returned when the radio does not answer at all.
	ErrTimeout = errors.New("timeout waiting for the radio")
)

// Link wraps an Exchanger with the delimiter conventions of one radio
// model. CmdDelimiter separates commands on the wire, ArgDelimiter
// separates a command key from its payload in an echoed response. The
// TS-2000 uses ";" and an empty argument delimiter, some siblings of the
// family use a non-empty one.
type Link struct {
	exchanger    Exchanger
	prime        Primer
	CmdDelimiter string
	ArgDelimiter string
}

// NewLink returns a Link with the family's default delimiters. prime may be
// nil if the radio model has no prerequisite commands.
func NewLink(exchanger Exchanger, prime Primer) *Link {
	return &Link{
		exchanger:    exchanger,
		prime:        prime,
		CmdDelimiter: ";",
		ArgDelimiter: "",
	}
}

// Command sends the given command and classifies the response: "N" and "?"
// are error acknowledgements, everything else is returned verbatim.
func (l *Link) Command(cmd string) (string, error) {
	resp, err := l.exchanger.Exchange(cmd)
	if err != nil {
		return "", fmt.Errorf("cannot exchange %q: %w", cmd, err)
	}
	switch resp {
	case "N":
		return "", ErrNAK
	case "?":
		return "", ErrCommandError
	}
	return resp, nil
}

// Get reads the value of a settings key. The radio echoes the key as a
// literal prefix followed by the payload; a response that is exactly the
// key carries an empty value.
func (l *Link) Get(key string) (string, error) {
	resp, err := l.Command(key)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(resp, key) {
		return "", fmt.Errorf("radio refused to return %s", key)
	}
	return resp[len(key):], nil
}

// Set writes a value to a settings key and verifies the echoed response.
// The write is followed by a query of the same key within one command line,
// so the radio answers even with auto-information mode disabled. Priming
// runs immediately before and after the write.
func (l *Link) Set(key, value string) error {
	if err := l.runPrime(key, true); err != nil {
		return err
	}
	resp, err := l.Command(key + value + l.CmdDelimiter + key)
	if err != nil {
		return err
	}
	if err := l.runPrime(key, false); err != nil {
		return err
	}
	if resp != key+l.ArgDelimiter+value {
		return fmt.Errorf("radio refused to set %s", key)
	}
	return nil
}

func (l *Link) runPrime(key string, enable bool) error {
	if l.prime == nil {
		return nil
	}
	return l.prime(key, enable)
}

// ParseIDResponse extracts the model code from an identity response. Most
// Kenwood HF radios answer an ID query with "ID" followed by three digits.
// It returns the empty string if the response has a different shape.
func ParseIDResponse(resp string) string {
	if len(resp) >= 5 && resp[len(resp)-5:len(resp)-3] == "ID" {
		return resp[len(resp)-3:]
	}
	return ""
}

// DisableAI turns the radio's auto-information mode off using the model's
// disable command and returns the model code from the identity response
// that the command forces. With auto-information mode on, the radio sends
// unsolicited status messages that would corrupt request/response pairing.
func DisableAI(e Exchanger, cmd string) (string, error) {
	resp, err := e.Exchange(cmd)
	if err != nil {
		return "", err
	}
	id := ParseIDResponse(resp)
	if id == "" {
		return "", fmt.Errorf("unexpected identity response %q", resp)
	}
	return id, nil
}
