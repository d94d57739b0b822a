// Package ts2000 implements memory channel and menu settings programming
// for the Kenwood TS-2000 over its CAT protocol.
package ts2000

const (
	// Upper is the highest normal memory channel. Beyond it the radio has
	// ten sweep-limit pairs (290..299), each with a start and an end half.
	Upper = 289
	// NameLength is the longest channel name the radio accepts.
	NameLength = 7
	// IDString identifies the TS-2000 in an ID response.
	IDString = "019"

	// The trailing identity query forces a response to the otherwise
	// silent AI command.
	disableAICommand = "AI0;ID"
)

// Bauds lists the supported baud rates in probing order. 9600 is the
// factory default, the faster rates are tried first.
var Bauds = []int{57600, 38400, 19200, 9600, 4800}

// Mode is an operating mode of the radio.
type Mode string

const (
	ModeLSB  Mode = "LSB"
	ModeUSB  Mode = "USB"
	ModeCW   Mode = "CW"
	ModeFM   Mode = "FM"
	ModeAM   Mode = "AM"
	ModeFSK  Mode = "FSK"
	ModeCWR  Mode = "CW-R"
	ModeFSKR Mode = "FSK-R"
)

// ToneMode selects the tone squelch scheme of a channel.
type ToneMode string

const (
	ToneModeNone ToneMode = ""
	ToneModeTone ToneMode = "Tone"
	ToneModeTSQL ToneMode = "TSQL"
	ToneModeDTCS ToneMode = "DTCS"
)

// Duplex is the repeater shift of a channel. DuplexEqual is the "=" shift
// the radio shows on the 1.2 GHz band. DuplexSplit has no wire code of its
// own, split channels are written as a pair of records instead.
type Duplex string

const (
	DuplexNone  Duplex = ""
	DuplexPlus  Duplex = "+"
	DuplexMinus Duplex = "-"
	DuplexEqual Duplex = "="
	DuplexSplit Duplex = "split"
)

// Codec translates between Channel values and the radio's fixed-width
// memory records. All lookup tables are explicit fields, so sibling models
// of the family can reuse the logic with their own tables.
type Codec struct {
	Upper        int
	NameLength   int
	MinFrequency int
	MaxFrequency int
	Modes        map[int]Mode
	SSBSteps     []float64
	FMSteps      []float64
	ToneModes    []ToneMode
	Tones        []float64
	DTCSCodes    []int
	Duplexes     map[int]Duplex
}

// NewCodec returns the codec with the TS-2000 tables.
func NewCodec() *Codec {
	return &Codec{
		Upper:        Upper,
		NameLength:   NameLength,
		MinFrequency: 1000,
		MaxFrequency: 1300000000,
		Modes: map[int]Mode{
			1: ModeLSB,
			2: ModeUSB,
			3: ModeCW,
			4: ModeFM,
			5: ModeAM,
			6: ModeFSK,
			7: ModeCWR,
			9: ModeFSKR,
		},
		SSBSteps:  []float64{1, 2.5, 5, 10},
		FMSteps:   []float64{5.0, 6.25, 10.0, 12.5, 15.0, 20.0, 25.0, 30.0, 50.0, 100.0},
		ToneModes: []ToneMode{ToneModeNone, ToneModeTone, ToneModeTSQL, ToneModeDTCS},
		Tones:     Tones(),
		DTCSCodes: DTCSCodes(),
		Duplexes: map[int]Duplex{
			0: DuplexNone,
			1: DuplexPlus,
			2: DuplexMinus,
			3: DuplexEqual,
			4: DuplexSplit,
		},
	}
}

// Tones returns the CTCSS tone table of the radio in Hz: the classic
// 38-tone list, without 69.3. Tone numbers on the wire are 1-based indexes
// into this table.
func Tones() []float64 {
	return []float64{
		67.0, 71.9, 74.4, 77.0, 79.7, 82.5, 85.4, 88.5, 91.5, 94.8,
		97.4, 100.0, 103.5, 107.2, 110.9, 114.8, 118.8, 123.0, 127.3, 131.8,
		136.5, 141.3, 146.2, 151.4, 156.7, 162.2, 167.9, 173.8, 179.9, 186.2,
		192.8, 203.5, 210.7, 218.1, 225.7, 233.6, 241.8, 250.3,
	}
}

// DTCSCodes returns the DCS code table of the radio. DCS numbers on the
// wire are 0-based indexes into this table.
func DTCSCodes() []int {
	return []int{
		23, 25, 26, 31, 32, 36, 43, 47, 51, 53,
		54, 65, 71, 72, 73, 74, 114, 115, 116, 122,
		125, 131, 132, 134, 143, 145, 152, 155, 156, 162,
		165, 172, 174, 205, 212, 223, 225, 226, 243, 244,
		245, 246, 251, 252, 255, 261, 263, 265, 266, 271,
		274, 306, 311, 315, 325, 331, 332, 343, 346, 351,
		356, 364, 365, 371, 411, 412, 413, 423, 431, 432,
		445, 446, 452, 454, 455, 462, 464, 465, 466, 503,
		506, 516, 523, 526, 532, 546, 565, 606, 612, 624,
		627, 631, 632, 654, 662, 664, 703, 712, 723, 731,
		732, 734, 743, 754,
	}
}
