package ts2000

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"sync"

	"github.com/ftl/ts2000adapter/kenwood"
)

// Radio drives a TS-2000 through a kenwood.Link. All operations are
// serialized, the CAT protocol is half-duplex and knows no pipelining.
type Radio struct {
	link   *kenwood.Link
	codec  *Codec
	closer io.Closer
	mutex  sync.Mutex
}

// New returns a radio that talks through the given exchanger. If the
// exchanger is an io.Closer, Close closes it.
func New(exchanger kenwood.Exchanger) *Radio {
	result := &Radio{
		link:  kenwood.NewLink(exchanger, nil),
		codec: NewCodec(),
	}
	if closer, ok := exchanger.(io.Closer); ok {
		result.closer = closer
	}
	return result
}

// Open connects to the TS-2000 on the given serial port. A baud rate of 0
// probes all supported rates. Auto-information mode is switched off and
// the model code is verified before the radio is put to use.
func Open(portname string, baud int, trace bool) (*Radio, error) {
	port, id, foundBaud, err := findRadio(portname, baud, trace)
	if err != nil {
		return nil, err
	}
	if id != IDString {
		port.Close()
		return nil, fmt.Errorf("the radio on %s identifies as model %s, expected a TS-2000 (%s)", portname, id, IDString)
	}
	log.Printf("connected to the TS-2000 on %s at %d Bd", portname, foundBaud)
	return New(port), nil
}

// Probe looks for any radio of the family on the given serial port and
// reports its model code and baud rate.
func Probe(portname string, trace bool) (id string, baud int, err error) {
	port, id, baud, err := findRadio(portname, 0, trace)
	if err != nil {
		return "", 0, err
	}
	port.Close()
	return id, baud, nil
}

func findRadio(portname string, baud int, trace bool) (*kenwood.Port, string, int, error) {
	bauds := Bauds
	if baud != 0 {
		bauds = []int{baud}
	}
	for _, b := range bauds {
		port, err := kenwood.Open(portname, b, trace)
		if err != nil {
			return nil, "", 0, err
		}
		id, err := kenwood.DisableAI(port, disableAICommand)
		if err == nil {
			return port, id, b, nil
		}
		port.Close()
		log.Printf("no answer on %s at %d Bd", portname, b)
	}
	return nil, "", 0, fmt.Errorf("no radio answered on %s", portname)
}

// Close closes the connection to the radio.
func (r *Radio) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadChannel reads one memory channel. Unprogrammed channels come back
// with Empty set, not as an error. For normal channels the transmit
// record is read as well to detect split operation.
func (r *Radio) ReadChannel(number int) (Channel, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cmd, _ := r.codec.ReadCommand(number, false)
	resp, err := r.link.Command(cmd)
	if errors.Is(err, kenwood.ErrNAK) {
		return r.codec.EmptyChannel(number), nil
	}
	if err != nil {
		return Channel{}, fmt.Errorf("cannot read channel %d: %w", number, err)
	}
	ch, err := r.codec.ParseChannel(resp)
	if err != nil {
		return Channel{}, err
	}
	if ch.Empty {
		return ch, nil
	}

	splitCmd, ok := r.codec.ReadCommand(number, true)
	if !ok {
		return ch, nil
	}
	resp, err = r.link.Command(splitCmd)
	if errors.Is(err, kenwood.ErrNAK) {
		return ch, nil
	}
	if err != nil {
		return Channel{}, fmt.Errorf("cannot read the transmit record of channel %d: %w", number, err)
	}
	return r.codec.ParseSplit(ch, resp)
}

// WriteChannel programs one memory channel. Split channels are written as
// a pair of records.
func (r *Radio) WriteChannel(ch Channel) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cmd, err := r.codec.WriteCommand(ch, false)
	if err != nil {
		return err
	}
	if _, err := r.link.Command(cmd); err != nil {
		return fmt.Errorf("cannot write channel %d: %w", ch.Number, err)
	}
	if ch.Empty || ch.Duplex != DuplexSplit {
		return nil
	}

	cmd, err = r.codec.WriteCommand(ch, true)
	if err != nil {
		return err
	}
	if _, err := r.link.Command(cmd); err != nil {
		return fmt.Errorf("cannot write the transmit record of channel %d: %w", ch.Number, err)
	}
	return nil
}

// EraseChannel clears one memory channel. The radio does not acknowledge
// its erase command, so erasing writes an empty channel instead.
func (r *Radio) EraseChannel(number int) error {
	return r.WriteChannel(Channel{Number: number, Empty: true})
}

// RecallMemory makes the given channel the current memory channel.
func (r *Radio) RecallMemory(number int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	// MC answers nothing when setting, so the readback is chained onto
	// the command and serves as the acknowledgement.
	cmd := r.codec.RecallCommand(number)
	resp, err := r.link.Command(cmd + ";MC")
	if err != nil {
		return fmt.Errorf("cannot recall memory %d: %w", number, err)
	}
	if resp != cmd {
		return fmt.Errorf("radio refused to recall memory %d", number)
	}
	return nil
}

// CurrentMemory returns the number of the current memory channel.
func (r *Radio) CurrentMemory() (int, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	value, err := r.link.Get("MC")
	if err != nil {
		return 0, err
	}
	number, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid memory channel %q", value)
	}
	return number, nil
}

// ReadSetting fetches the entry's current value from the radio.
func (r *Radio) ReadSetting(e *Entry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.readSetting(e)
}

func (r *Radio) readSetting(e *Entry) error {
	wire, err := r.link.Get(e.Key)
	if err != nil {
		return err
	}
	value, err := e.Schema.Parse(wire)
	if err != nil {
		return fmt.Errorf("%s: %w", e.Key, err)
	}
	e.value = value
	e.changed = false
	return nil
}

// WriteSetting writes the entry's value if it was changed locally.
func (r *Radio) WriteSetting(e *Entry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if !e.changed {
		return nil
	}
	wire, err := e.Schema.Render(e.value)
	if err != nil {
		return err
	}
	if err := r.link.Set(e.Key, wire); err != nil {
		return err
	}
	e.changed = false
	return nil
}

// ReadDTMFSlot fills both fields of the DTMF memory slot.
func (r *Radio) ReadDTMFSlot(slot DTMFSlot) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := r.readSetting(slot.Name); err != nil {
		return err
	}
	return r.readSetting(slot.Value)
}

// WriteDTMFSlot writes the changed fields of the DTMF memory slot.
func (r *Radio) WriteDTMFSlot(slot DTMFSlot) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, e := range []*Entry{slot.Name, slot.Value} {
		if !e.changed {
			continue
		}
		wire, err := e.Schema.Render(dtmfOutgoing(e.value))
		if err != nil {
			return err
		}
		if err := r.link.Set(e.Key, wire); err != nil {
			return err
		}
		e.changed = false
	}
	return nil
}
