package ts2000

import (
	"fmt"
	"strconv"
	"strings"
)

// Schema describes how one settings value is validated and translated
// between its display form and its wire form.
type Schema interface {
	// Render turns a display value into its wire form.
	Render(value string) (string, error)
	// Parse turns a wire form into its display value.
	Parse(wire string) (string, error)
}

// BoolSchema is a plain "0"/"1" flag.
type BoolSchema struct{}

func (s BoolSchema) Render(value string) (string, error) {
	if value != "0" && value != "1" {
		return "", fmt.Errorf("invalid flag value %q, use 0 or 1", value)
	}
	return value, nil
}

func (s BoolSchema) Parse(wire string) (string, error) {
	if wire != "0" && wire != "1" {
		return "", fmt.Errorf("invalid flag value %q", wire)
	}
	return wire, nil
}

// ListSchema selects one value from an ordered list. The wire form is the
// zero-based index, zero-padded to the width of the highest index.
type ListSchema struct {
	Values []string
}

func (s ListSchema) width() int {
	return len(strconv.Itoa(len(s.Values) - 1))
}

func (s ListSchema) Render(value string) (string, error) {
	for i, v := range s.Values {
		if v == value {
			return fmt.Sprintf("%0*d", s.width(), i), nil
		}
	}
	return "", fmt.Errorf("%q is not one of: %s", value, strings.Join(s.Values, ", "))
}

func (s ListSchema) Parse(wire string) (string, error) {
	index, err := strconv.Atoi(wire)
	if err != nil || index < 0 || index >= len(s.Values) {
		return "", fmt.Errorf("invalid value %q", wire)
	}
	return s.Values[index], nil
}

// IntSchema is a bounded integer, zero-padded to the width of Max on the
// wire.
type IntSchema struct {
	Min, Max int
}

func (s IntSchema) width() int {
	return len(strconv.Itoa(s.Max))
}

func (s IntSchema) Render(value string) (string, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return "", fmt.Errorf("invalid number %q", value)
	}
	if n < s.Min || n > s.Max {
		return "", fmt.Errorf("%d is out of range [%d, %d]", n, s.Min, s.Max)
	}
	return fmt.Sprintf("%0*d", s.width(), n), nil
}

func (s IntSchema) Parse(wire string) (string, error) {
	n, err := strconv.Atoi(wire)
	if err != nil {
		return "", fmt.Errorf("invalid value %q", wire)
	}
	return strconv.Itoa(n), nil
}

// StringSchema is a free-form string with a maximum length and an
// optional restricted alphabet.
type StringSchema struct {
	MaxLength int
	Charset   string
}

func (s StringSchema) Render(value string) (string, error) {
	if len(value) > s.MaxLength {
		return "", fmt.Errorf("%q is longer than %d characters", value, s.MaxLength)
	}
	if s.Charset != "" {
		for _, r := range value {
			if !strings.ContainsRune(s.Charset, r) {
				return "", fmt.Errorf("%q contains the invalid character %q", value, r)
			}
		}
	}
	return value, nil
}

func (s StringSchema) Parse(wire string) (string, error) {
	return wire, nil
}

// MapSchema maps display labels to literal wire codes.
type MapSchema struct {
	Items []MapItem
}

// MapItem is one label with its wire code.
type MapItem struct {
	Label string
	Code  string
}

func (s MapSchema) Render(value string) (string, error) {
	for _, item := range s.Items {
		if item.Label == value {
			return item.Code, nil
		}
	}
	return "", fmt.Errorf("unknown value %q", value)
}

func (s MapSchema) Parse(wire string) (string, error) {
	for _, item := range s.Items {
		if item.Code == wire {
			return item.Label, nil
		}
	}
	return "", fmt.Errorf("unknown code %q", wire)
}

// Entry is one named device parameter with its schema and the locally
// held display value.
type Entry struct {
	Key    string
	Schema Schema

	value   string
	changed bool
}

// Value returns the locally held display value.
func (e *Entry) Value() string {
	return e.value
}

// SetValue validates the display value against the schema and marks the
// entry for writing.
func (e *Entry) SetValue(value string) error {
	if _, err := e.Schema.Render(value); err != nil {
		return err
	}
	e.value = value
	e.changed = true
	return nil
}

// Changed indicates whether the entry holds a value that was not yet
// written to the radio.
func (e *Entry) Changed() bool {
	return e.changed
}

// SettingEntry returns a fresh entry for the given menu key.
func SettingEntry(key string) (*Entry, bool) {
	schema, ok := settingsSchemas[key]
	if !ok {
		return nil, false
	}
	return &Entry{Key: key, Schema: schema}, true
}

var (
	boolSchema   = BoolSchema{}
	offToNine    = ListSchema{Values: []string{"Off", "1", "2", "3", "4", "5", "6", "7", "8", "9"}}
	linearDelay  = ListSchema{Values: []string{"Off", "10ms TX delay", "25ms TX delay"}}
	dspEqualizer = ListSchema{Values: []string{"Off", "High Boost", "Formant (Voice) Pass", "Bass Boost", "Conventional (+3dB at 600 Hz and higher)", "User"}}
	packetBaud   = ListSchema{Values: []string{"1200 bps", "9600 bps"}}
	mainSub      = ListSchema{Values: []string{"Main", "Sub"}}
	callsign     = StringSchema{MaxLength: 9, Charset: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-"}
	zeroToNine   = IntSchema{Min: 0, Max: 9}
	pfKeys       = pfKeySchema()
	cwWeight     = ListSchema{Values: cwWeightValues()}
	cwPitch      = ListSchema{Values: cwPitchValues()}
	skyCmdTone   = ListSchema{Values: toneValues()}
)

func cwWeightValues() []string {
	values := []string{"Auto"}
	for x := 25; x <= 40; x++ {
		values = append(values, fmt.Sprintf("%.1f", float64(x)/10))
	}
	return values
}

func cwPitchValues() []string {
	values := make([]string, 0, 13)
	for hz := 400; hz <= 1000; hz += 50 {
		values = append(values, fmt.Sprintf("%d Hz", hz))
	}
	return values
}

func toneValues() []string {
	tones := Tones()
	values := make([]string, len(tones))
	for i, t := range tones {
		values[i] = strconv.FormatFloat(t, 'f', 1, 64)
	}
	return values
}

// pfKeySchema enumerates the functions that can be put on a programmable
// key: the 63 menu shortcuts plus the named functions.
func pfKeySchema() MapSchema {
	items := make([]MapItem, 0, 93)
	for menu := 0; menu <= 62; menu++ {
		items = append(items, MapItem{Label: fmt.Sprintf("Menu %d", menu), Code: fmt.Sprintf("%02d", menu)})
	}
	items = append(items,
		MapItem{"Voice 1", "63"},
		MapItem{"Voice 2", "64"},
		MapItem{"RX Moni", "65"},
		MapItem{"DSP Moni", "66"},
		MapItem{"Quick Memo MR", "67"},
		MapItem{"Quick Memo M.In", "68"},
		MapItem{"Split", "69"},
		MapItem{"TF-SET", "70"},
		MapItem{"A/B", "71"},
		MapItem{"VFO/M", "72"},
		MapItem{"A=B", "73"},
		MapItem{"Scan", "74"},
		MapItem{"M→VFO", "75"},
		MapItem{"M.In", "76"},
		MapItem{"CW Tune", "77"},
		MapItem{"CH1", "78"},
		MapItem{"CH2", "79"},
		MapItem{"CH3", "80"},
		MapItem{"Fine", "81"},
		MapItem{"CLR", "82"},
		MapItem{"Call", "83"},
		MapItem{"Ctrl", "84"},
		MapItem{"1 MHz", "85"},
		MapItem{"ANT1/2", "86"},
		MapItem{"NB", "87"},
		MapItem{"N.R.", "88"},
		MapItem{"B.C.", "89"},
		MapItem{"A.N.", "90"},
		MapItem{"No Function", "99"},
	)
	return MapSchema{Items: items}
}

// settingsSchemas holds the schema for every menu key of the radio. The
// ten DTMF memories have composite keys and are handled as slots, see
// DTMFSlots.
var settingsSchemas = map[string]Schema{
	"EX0000000": ListSchema{Values: []string{"Off", "1", "2", "3", "4"}},
	"EX0010000": boolSchema,
	"EX0020000": ListSchema{Values: []string{"500", "1000"}},
	"EX0030000": boolSchema,
	"EX0040000": boolSchema,
	"EX0050000": boolSchema,
	"EX0060100": boolSchema,
	"EX0060200": boolSchema,
	"EX0070000": boolSchema,
	"EX0080000": ListSchema{Values: []string{"100", "200", "300", "400", "500"}},
	"EX0090000": boolSchema,
	"EX0100000": ListSchema{Values: []string{"TO", "CO"}},
	"EX0110000": ListSchema{Values: []string{"31 Channel", "61 Channel", "91 Channel", "181 Channel"}},
	"EX0120000": offToNine,
	"EX0130000": offToNine,
	"EX0140000": offToNine,
	"EX0150000": offToNine,
	"EX0160000": ListSchema{Values: []string{
		"Main/Sub Mix on Both",
		"SP1 (L) Main, SP2 (R) Sub",
		"SP1 (L) Main + ¼ Sub, SP2 (R) Sub + ¼ Main",
	}},
	"EX0170000": boolSchema,
	"EX0180000": boolSchema,
	"EX0190100": boolSchema,
	"EX0190200": ListSchema{Values: []string{"Off", "150ms", "250ms", "500ms"}},
	"EX0200000": dspEqualizer,
	"EX0210000": dspEqualizer,
	"EX0220000": ListSchema{Values: []string{"2.0 kHz", "2.2 kHz", "2.4 kHz", "2.6 kHz", "2.8 kHz", "3.0 kHz"}},
	"EX0230000": boolSchema,
	"EX0240000": ListSchema{Values: []string{"Off", "3 minutes", "5 minutes", "10 minutes", "20 minutes", "30 minutes"}},
	"EX0250000": boolSchema,
	"EX0260000": boolSchema,
	"EX0270000": boolSchema,
	"EX0280100": linearDelay,
	"EX0280200": linearDelay,
	"EX0280300": linearDelay,
	"EX0280400": linearDelay,
	"EX0280500": linearDelay,
	"EX0290100": boolSchema,
	"EX0290200": IntSchema{Min: 0, Max: 60},
	"EX0300000": boolSchema,
	"EX0310000": cwPitch,
	"EX0320000": ListSchema{Values: []string{"1ms", "2ms", "4ms", "6ms"}},
	"EX0330000": cwWeight,
	"EX0340000": boolSchema,
	"EX0350000": boolSchema,
	"EX0360000": boolSchema,
	"EX0370000": boolSchema,
	"EX0380000": ListSchema{Values: []string{"170 Hz", "200 Hz", "425 Hz", "850 Hz"}},
	"EX0390000": ListSchema{Values: []string{"Normal", "Inverse"}},
	"EX0400000": ListSchema{Values: []string{"1275 Hz", "2125 Hz"}},
	"EX0410000": ListSchema{Values: []string{"Low", "Mid", "High"}},
	"EX0420000": ListSchema{Values: []string{"Burst", "Continuous"}},
	"EX0430000": boolSchema,
	"EX0440000": boolSchema,
	"EX0450200": ListSchema{Values: []string{"Slow", "Fast"}},
	"EX0450300": ListSchema{Values: []string{"100ms", "250ms", "500ms", "750ms", "1000ms", "1500ms", "2000ms"}},
	"EX0450400": boolSchema,
	"EX0460000": mainSub,
	"EX0470000": packetBaud,
	"EX0480000": ListSchema{Values: []string{"TNC Band", "Main & Sub"}},
	"EX0490100": ListSchema{Values: []string{"Auto", "Manual"}},
	"EX0490200": ListSchema{Values: []string{"Off", "Morse", "Voice"}},
	"EX0500100": boolSchema,
	"EX0500200": zeroToNine,
	"EX0500300": zeroToNine,
	"EX0500400": zeroToNine,
	"EX0500500": mainSub,
	"EX0500600": packetBaud,
	"EX0510100": pfKeys,
	"EX0510200": pfKeys,
	"EX0510300": pfKeys,
	"EX0510400": pfKeys,
	"EX0510500": pfKeys,
	"EX0520000": boolSchema,
	"EX0530000": boolSchema,
	"EX0540000": boolSchema,
	// The packet cluster tune flag answers inverted, with a leading blank.
	"TC": MapSchema{Items: []MapItem{
		{Label: "Off", Code: " 1"},
		{Label: "On", Code: " 0"},
	}},
	"EX0560000": ListSchema{Values: []string{"4800 bps", "9600 bps", "19200 bps", "38400 bps", "57600 bps"}},
	"EX0570000": ListSchema{Values: []string{"Off", "60min", "120min", "180min"}},
	"EX0580000": ListSchema{Values: []string{"Font 1", "Font 2"}},
	"EX0590000": IntSchema{Min: 1, Max: 16},
	"EX0600000": ListSchema{Values: []string{"Negative", "Positive"}},
	"EX0610100": ListSchema{Values: []string{"Off", "Locked-Band", "Cross-Band"}},
	"EX0610200": boolSchema,
	"EX0610300": IntSchema{Min: 0, Max: 999},
	"EX0610400": boolSchema,
	"EX0610500": boolSchema,
	"EX0620100": callsign,
	"EX0620200": callsign,
	"EX0620300": skyCmdTone,
	"EX0620400": packetBaud,
	"EX0620500": ListSchema{Values: []string{"Off", "Client", "Commander", "Transporter"}},
}
