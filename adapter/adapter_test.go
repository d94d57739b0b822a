package adapter

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/ftl/rigproxy/pkg/protocol"

	"github.com/ftl/ts2000adapter/ts2000"
)

func request(t *testing.T, line string) protocol.Request {
	t.Helper()
	req, err := protocol.NewRequestReader(strings.NewReader(line + "\n")).ReadRequest()
	if err != nil {
		t.Fatalf("cannot read request %q: %v", line, err)
	}
	return req
}

func newTestConnection(rig Rig) *inboundConnection {
	return &inboundConnection{
		rig:    rig,
		state:  newConnState(),
		closed: make(chan struct{}),
	}
}

type fakeRig struct {
	frequencies  map[ts2000.VFO]int
	mode         ts2000.Mode
	receiveVFOs  []ts2000.VFO
	transmitVFOs []ts2000.VFO
	status       ts2000.Status
	tx           bool
	keyerSpeed   int
	memory       int
	recalled     []int
}

func newFakeRig() *fakeRig {
	return &fakeRig{
		frequencies: map[ts2000.VFO]int{
			ts2000.VFOA: 14205000,
			ts2000.VFOB: 14210000,
		},
		mode:       ts2000.ModeUSB,
		keyerSpeed: 25,
		memory:     12,
	}
}

func (r *fakeRig) VFOFrequency(vfo ts2000.VFO) (int, error) { return r.frequencies[vfo], nil }

func (r *fakeRig) SetVFOFrequency(vfo ts2000.VFO, frequency int) error {
	r.frequencies[vfo] = frequency
	return nil
}

func (r *fakeRig) CurrentMode() (ts2000.Mode, error) { return r.mode, nil }

func (r *fakeRig) SetCurrentMode(mode ts2000.Mode) error {
	r.mode = mode
	return nil
}

func (r *fakeRig) SetReceiveVFO(vfo ts2000.VFO) error {
	r.receiveVFOs = append(r.receiveVFOs, vfo)
	return nil
}

func (r *fakeRig) SetTransmitVFO(vfo ts2000.VFO) error {
	r.transmitVFOs = append(r.transmitVFOs, vfo)
	return nil
}

func (r *fakeRig) Status() (ts2000.Status, error) { return r.status, nil }

func (r *fakeRig) SetTX(enabled bool) error {
	r.tx = enabled
	return nil
}

func (r *fakeRig) KeyerSpeed() (int, error) { return r.keyerSpeed, nil }

func (r *fakeRig) SetKeyerSpeed(wpm int) error {
	r.keyerSpeed = wpm
	return nil
}

func (r *fakeRig) RecallMemory(number int) error {
	r.recalled = append(r.recalled, number)
	return nil
}

func (r *fakeRig) CurrentMemory() (int, error) { return r.memory, nil }

func TestGetFreqFollowsCurrentVFO(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_freq`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetFreqResponse(14205000); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}

	_, err = conn.handleRequest(request(t, `\set_vfo VFOB`))
	if err != nil {
		t.Fatal(err)
	}

	resp, err = conn.handleRequest(request(t, `\get_freq`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetFreqResponse(14210000); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
}

func TestSetFreqTunesCurrentVFO(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	req := request(t, `\set_freq 7012500`)
	resp, err := conn.handleRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.OKResponse(req.Key()); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
	if rig.frequencies[ts2000.VFOA] != 7012500 {
		t.Errorf("got %d", rig.frequencies[ts2000.VFOA])
	}
}

func TestSetVFOKeepsTransmitVFOInSync(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	_, err := conn.handleRequest(request(t, `\set_vfo VFOB`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []ts2000.VFO{ts2000.VFOB}; !reflect.DeepEqual(rig.receiveVFOs, want) {
		t.Errorf("receive VFOs: got %v, want %v", rig.receiveVFOs, want)
	}
	if want := []ts2000.VFO{ts2000.VFOB}; !reflect.DeepEqual(rig.transmitVFOs, want) {
		t.Errorf("transmit VFOs: got %v, want %v", rig.transmitVFOs, want)
	}

	resp, err := conn.handleRequest(request(t, `\get_vfo`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetVFOResponse("VFOB"); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
}

func TestSetVFOLeavesTransmitVFOInSplit(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)
	conn.state.split = true

	_, err := conn.handleRequest(request(t, `\set_vfo VFOA`))
	if err != nil {
		t.Fatal(err)
	}
	if len(rig.transmitVFOs) != 0 {
		t.Errorf("transmit VFO must not change in split operation, got %v", rig.transmitVFOs)
	}
}

func TestSetModeTranslatesHamlibModes(t *testing.T) {
	tt := []struct {
		line string
		want ts2000.Mode
	}{
		{`\set_mode USB 2400`, ts2000.ModeUSB},
		{`\set_mode CW 500`, ts2000.ModeCW},
		{`\set_mode CWR 500`, ts2000.ModeCWR},
		{`\set_mode RTTY 1500`, ts2000.ModeFSK},
		{`\set_mode PKTUSB 2400`, ts2000.ModeUSB},
	}
	for _, tc := range tt {
		t.Run(tc.line, func(t *testing.T) {
			rig := newFakeRig()
			rig.mode = ts2000.ModeAM
			conn := newTestConnection(rig)

			_, err := conn.handleRequest(request(t, tc.line))
			if err != nil {
				t.Fatal(err)
			}
			if rig.mode != tc.want {
				t.Errorf("got %v, want %v", rig.mode, tc.want)
			}
		})
	}
}

func TestSetModeRejectsUnknownMode(t *testing.T) {
	conn := newTestConnection(newFakeRig())

	_, err := conn.handleRequest(request(t, `\set_mode WFM 230000`))
	if err == nil {
		t.Error("expected an error for a mode the radio does not have")
	}
}

func TestLockModeSwallowsSetMode(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	_, err := conn.handleRequest(request(t, `\set_lock_mode 1`))
	if err != nil {
		t.Fatal(err)
	}
	req := request(t, `\set_mode CW 500`)
	resp, err := conn.handleRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.OKResponse(req.Key()); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
	if rig.mode != ts2000.ModeUSB {
		t.Errorf("mode changed to %v although it is locked", rig.mode)
	}
}

func TestGetModeReportsNominalPassband(t *testing.T) {
	rig := newFakeRig()
	rig.mode = ts2000.ModeCW
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_mode`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetModeResponse("CW", 500); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
}

func TestGetSplitVFOAsksTheRadio(t *testing.T) {
	rig := newFakeRig()
	rig.status = ts2000.Status{Frequency: 14205000, Mode: ts2000.ModeUSB, Split: true}
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_split_vfo`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetSplitVFOResponse(true, "VFOB"); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
	if !conn.state.split {
		t.Error("split state not updated")
	}
}

func TestSetSplitVFO(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	_, err := conn.handleRequest(request(t, `\set_split_vfo 1 VFOB`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []ts2000.VFO{ts2000.VFOB}; !reflect.DeepEqual(rig.transmitVFOs, want) {
		t.Errorf("enable: got %v, want %v", rig.transmitVFOs, want)
	}
	if !conn.state.split {
		t.Error("split state not set")
	}

	_, err = conn.handleRequest(request(t, `\set_split_vfo 0`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []ts2000.VFO{ts2000.VFOB, ts2000.VFOA}; !reflect.DeepEqual(rig.transmitVFOs, want) {
		t.Errorf("disable: got %v, want %v", rig.transmitVFOs, want)
	}
	if conn.state.split {
		t.Error("split state not cleared")
	}
}

func TestSplitFreqUsesVFOB(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_split_freq`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetSplitFreqResponse(14210000); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}

	_, err = conn.handleRequest(request(t, `\set_split_freq 14212000`))
	if err != nil {
		t.Fatal(err)
	}
	if rig.frequencies[ts2000.VFOB] != 14212000 {
		t.Errorf("got %d", rig.frequencies[ts2000.VFOB])
	}
	if rig.frequencies[ts2000.VFOA] != 14205000 {
		t.Errorf("VFO A changed to %d", rig.frequencies[ts2000.VFOA])
	}
}

func TestPTT(t *testing.T) {
	rig := newFakeRig()
	rig.status = ts2000.Status{TX: true}
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_ptt`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetPTTResponse(true); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}

	_, err = conn.handleRequest(request(t, `\set_ptt 1`))
	if err != nil {
		t.Fatal(err)
	}
	if !rig.tx {
		t.Error("radio not transmitting")
	}

	_, err = conn.handleRequest(request(t, `\set_ptt 0`))
	if err != nil {
		t.Fatal(err)
	}
	if rig.tx {
		t.Error("radio still transmitting")
	}
}

func TestKeyerSpeedLevel(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	resp, err := conn.handleRequest(request(t, `\get_level KEYSPD`))
	if err != nil {
		t.Fatal(err)
	}
	if want := protocol.GetLevelKeyspdResponse(25); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}

	_, err = conn.handleRequest(request(t, `\set_level KEYSPD 28`))
	if err != nil {
		t.Fatal(err)
	}
	if rig.keyerSpeed != 28 {
		t.Errorf("got %d", rig.keyerSpeed)
	}
}

func TestMemory(t *testing.T) {
	rig := newFakeRig()
	conn := newTestConnection(rig)

	_, err := conn.handleRequest(request(t, `\set_mem 100`))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{100}; !reflect.DeepEqual(rig.recalled, want) {
		t.Errorf("got %v, want %v", rig.recalled, want)
	}

	req := request(t, `\get_mem`)
	resp, err := conn.handleRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	want := protocol.Response{
		Command: req.Key(),
		Data:    []string{"12"},
		Keys:    []string{""},
		Result:  "0",
	}
	if !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
}

func TestUnsupportedRequest(t *testing.T) {
	conn := newTestConnection(newFakeRig())

	req := request(t, `\get_powerstat`)
	resp, err := conn.handleRequest(req)
	if err != nil {
		t.Fatal(err)
	}
	if want := notImplementedResponse(req.Key()); !reflect.DeepEqual(resp, want) {
		t.Errorf("got %v, want %v", resp, want)
	}
}

type fakeConn struct {
	io.Reader
	io.Writer
}

func (f fakeConn) Close() error { return nil }

func TestConnectionAnswersRequests(t *testing.T) {
	rig := newFakeRig()
	out := &bytes.Buffer{}
	conn := inboundConnection{
		conn:   fakeConn{Reader: strings.NewReader("\\get_freq\n"), Writer: out},
		rig:    rig,
		state:  newConnState(),
		closed: make(chan struct{}),
	}

	conn.run()

	wantResponse := protocol.GetFreqResponse(14205000)
	want := wantResponse.Format() + "\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestCapsText(t *testing.T) {
	caps := capsText("1.2.3")
	for _, want := range []string{
		"Caps dump for model: 2014",
		"Model name:\tTS-2000",
		"Mfg name:\tKenwood",
		"Backend version:\t1.2.3",
		"Serial speed: 4800..57600 baud",
		"38 tones",
		"104 codes",
		"Mode list: LSB USB CW FM AM RTTY CWR RTTYR ",
		"\t0..289:   \tMEM",
		"\t290..309:   \tEDGE",
		"\t2.4000 kHz:   \tLSB USB ",
		"\t500.0 Hz:   \tCW CWR ",
	} {
		if !strings.Contains(caps, want) {
			t.Errorf("caps dump misses %q", want)
		}
	}
}
