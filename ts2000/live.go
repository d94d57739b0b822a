package ts2000

import (
	"fmt"
	"strconv"

	"github.com/ftl/ts2000adapter/kenwood"
)

// VFO selects one of the two VFOs of the main transceiver.
type VFO int

const (
	VFOA VFO = iota
	VFOB
)

func (v VFO) String() string {
	if v == VFOB {
		return "VFO B"
	}
	return "VFO A"
}

func (v VFO) key() string {
	if v == VFOB {
		return "FB"
	}
	return "FA"
}

func (v VFO) digit() string {
	if v == VFOB {
		return "1"
	}
	return "0"
}

// Status is the condensed transceiver status from the IF command.
type Status struct {
	Frequency int
	TX        bool
	Mode      Mode
	Split     bool
}

// VFOFrequency reads the frequency of the given VFO in Hz.
func (r *Radio) VFOFrequency(vfo VFO) (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	value, err := r.link.Get(vfo.key())
	if err != nil {
		return 0, err
	}
	frequency, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid frequency %q", value)
	}
	return frequency, nil
}

// SetVFOFrequency tunes the given VFO, in Hz.
func (r *Radio) SetVFOFrequency(vfo VFO, frequency int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.link.Set(vfo.key(), fmt.Sprintf("%011d", frequency))
}

// CurrentMode reads the operating mode of the current band.
func (r *Radio) CurrentMode() (Mode, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	value, err := r.link.Get("MD")
	if err != nil {
		return "", err
	}
	code, err := strconv.Atoi(value)
	if err != nil {
		return "", fmt.Errorf("invalid mode %q", value)
	}
	mode, ok := r.codec.Modes[code]
	if !ok {
		return "", fmt.Errorf("unknown mode code %d", code)
	}
	return mode, nil
}

// SetCurrentMode switches the operating mode of the current band.
func (r *Radio) SetCurrentMode(mode Mode) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	code, err := r.codec.modeCode(mode)
	if err != nil {
		return err
	}
	return r.link.Set("MD", strconv.Itoa(code))
}

// ReceiveVFO reports which VFO the radio receives on. When the radio is
// in memory or call channel mode this fails.
func (r *Radio) ReceiveVFO() (VFO, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	value, err := r.link.Get("FR")
	if err != nil {
		return VFOA, err
	}
	switch value {
	case "0":
		return VFOA, nil
	case "1":
		return VFOB, nil
	default:
		return VFOA, fmt.Errorf("the radio is not in VFO mode (FR%s)", value)
	}
}

// SetReceiveVFO selects the VFO to receive on.
func (r *Radio) SetReceiveVFO(vfo VFO) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.link.Set("FR", vfo.digit())
}

// SetTransmitVFO selects the VFO to transmit on. Selecting a transmit VFO
// different from the receive VFO puts the radio into split operation.
func (r *Radio) SetTransmitVFO(vfo VFO) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.link.Set("FT", vfo.digit())
}

// Status reads the condensed transceiver status.
func (r *Radio) Status() (Status, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	resp, err := r.link.Command("IF")
	if err != nil {
		return Status{}, err
	}
	fields := splitRecord(resp, statusFields)
	if fields["echo"] != "IF" {
		return Status{}, fmt.Errorf("unexpected status response %q", resp)
	}
	frequency, err := strconv.Atoi(fields["frequency"])
	if err != nil {
		return Status{}, fmt.Errorf("invalid frequency in %q", resp)
	}
	modeCode, err := strconv.Atoi(fields["mode"])
	if err != nil {
		return Status{}, fmt.Errorf("invalid mode in %q", resp)
	}
	mode, ok := r.codec.Modes[modeCode]
	if !ok {
		return Status{}, fmt.Errorf("unknown mode code %d in %q", modeCode, resp)
	}
	return Status{
		Frequency: frequency,
		TX:        fields["tx"] == "1",
		Mode:      mode,
		Split:     fields["split"] == "1",
	}, nil
}

// SetTX keys or unkeys the transmitter.
func (r *Radio) SetTX(enabled bool) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cmd := "RX"
	if enabled {
		cmd = "TX"
	}
	// TX and RX answer nothing, the chained identity query forces the
	// acknowledgement.
	resp, err := r.link.Command(cmd + ";ID")
	if err != nil {
		return fmt.Errorf("cannot switch to %s: %w", cmd, err)
	}
	if kenwood.ParseIDResponse(resp) == "" {
		return fmt.Errorf("radio refused to switch to %s", cmd)
	}
	return nil
}

// KeyerSpeed reads the CW keyer speed in WPM.
func (r *Radio) KeyerSpeed() (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	value, err := r.link.Get("KS")
	if err != nil {
		return 0, err
	}
	speed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid keyer speed %q", value)
	}
	return speed, nil
}

// SetKeyerSpeed sets the CW keyer speed in WPM.
func (r *Radio) SetKeyerSpeed(wpm int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	return r.link.Set("KS", fmt.Sprintf("%03d", wpm))
}
