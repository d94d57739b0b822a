package adapter

import (
	hamlib "github.com/ftl/rigproxy/pkg/client"

	"github.com/ftl/ts2000adapter/ts2000"
)

func newConnState() *connState {
	return &connState{
		currentVFO: ts2000.VFOA,
	}
}

// connState is the VFO bookkeeping of one Hamlib connection. Frequencies and
// modes always come from the radio, only the VFO selection and the last known
// split state live here.
type connState struct {
	currentVFO ts2000.VFO
	split      bool
}

var hamlibToRigVFO = map[hamlib.VFO]ts2000.VFO{
	hamlib.VFOA:    ts2000.VFOA,
	hamlib.VFOB:    ts2000.VFOB,
	hamlib.MainVFO: ts2000.VFOA,
	hamlib.SubVFO:  ts2000.VFOB,
}

var rigToHamlibVFO = map[ts2000.VFO]hamlib.VFO{
	ts2000.VFOA: hamlib.VFOA,
	ts2000.VFOB: hamlib.VFOB,
}

var hamlibToRigMode = map[hamlib.Mode]ts2000.Mode{
	hamlib.ModeUSB:     ts2000.ModeUSB,
	hamlib.ModeLSB:     ts2000.ModeLSB,
	hamlib.ModeCW:      ts2000.ModeCW,
	hamlib.ModeCWR:     ts2000.ModeCWR,
	hamlib.ModeRTTY:    ts2000.ModeFSK,
	hamlib.ModeRTTYR:   ts2000.ModeFSKR,
	hamlib.ModeAM:      ts2000.ModeAM,
	hamlib.ModeFM:      ts2000.ModeFM,
	hamlib.ModePKTLSB:  ts2000.ModeLSB,
	hamlib.ModePKTUSB:  ts2000.ModeUSB,
	hamlib.ModePKTFM:   ts2000.ModeFM,
	hamlib.ModeECSSLSB: ts2000.ModeLSB,
	hamlib.ModeECSSUSB: ts2000.ModeUSB,
	hamlib.ModeFAX:     ts2000.ModeUSB,
}

var rigToHamlibMode = map[ts2000.Mode]hamlib.Mode{
	ts2000.ModeLSB:  hamlib.ModeLSB,
	ts2000.ModeUSB:  hamlib.ModeUSB,
	ts2000.ModeCW:   hamlib.ModeCW,
	ts2000.ModeCWR:  hamlib.ModeCWR,
	ts2000.ModeFM:   hamlib.ModeFM,
	ts2000.ModeAM:   hamlib.ModeAM,
	ts2000.ModeFSK:  hamlib.ModeRTTY,
	ts2000.ModeFSKR: hamlib.ModeRTTYR,
}

// nominalPassband is the filter width reported per mode. The radio does not
// answer its current DSP filter width in a single command, so the adapter
// reports the standard width of the mode.
var nominalPassband = map[ts2000.Mode]int{
	ts2000.ModeLSB:  2400,
	ts2000.ModeUSB:  2400,
	ts2000.ModeCW:   500,
	ts2000.ModeCWR:  500,
	ts2000.ModeFSK:  1500,
	ts2000.ModeFSKR: 1500,
	ts2000.ModeAM:   6000,
	ts2000.ModeFM:   12000,
}
