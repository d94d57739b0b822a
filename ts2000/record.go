package ts2000

import (
	"fmt"
	"strconv"
	"strings"
)

// recordField is one fixed-width field of a response record.
type recordField struct {
	name  string
	width int
}

// channelFields describes the layout of a memory record. The response is
// left-padded by one character before slicing, so the positions match the
// 1-based field numbering of the PC control reference. The name is the
// trailing remainder and may be missing entirely.
var channelFields = []recordField{
	{"echo", 2},
	{"split", 1},
	{"bank", 1},
	{"channel", 2},
	{"frequency", 11},
	{"mode", 1},
	{"lockout", 1},
	{"tonemode", 1},
	{"rtone", 2},
	{"ctone", 2},
	{"dtcs", 3},
	{"reverse", 1},
	{"duplex", 1},
	{"offset", 9},
	{"step", 2},
	{"group", 1},
	{"name", 7},
}

// specFields is the numeric part of an MW payload, in wire order. It is
// the tail of the memory record layout, the name is appended unpadded.
var specFields = channelFields[4 : len(channelFields)-1]

// statusFields describes the layout of an IF response.
var statusFields = []recordField{
	{"echo", 2},
	{"frequency", 11},
	{"blank", 5},
	{"rit", 5},
	{"ritOn", 1},
	{"xitOn", 1},
	{"bank", 1},
	{"channel", 2},
	{"tx", 1},
	{"mode", 1},
	{"vfo", 1},
	{"scan", 1},
	{"split", 1},
	{"tone", 1},
	{"toneNumber", 2},
	{"shift", 1},
}

// splitRecord slices raw into its fields. Fields beyond the end of raw
// come out empty.
func splitRecord(raw string, fields []recordField) map[string]string {
	padded := " " + raw
	result := make(map[string]string, len(fields))
	pos := 1
	for _, f := range fields {
		start, end := pos, pos+f.width
		if start > len(padded) {
			start = len(padded)
		}
		if end > len(padded) {
			end = len(padded)
		}
		result[f.name] = padded[start:end]
		pos += f.width
	}
	return result
}

// joinRecord renders the given numeric values zero-padded to their
// declared width, in field order.
func joinRecord(fields []recordField, values map[string]int) (string, error) {
	var b strings.Builder
	for _, f := range fields {
		value := values[f.name]
		if value < 0 || len(strconv.Itoa(value)) > f.width {
			return "", fmt.Errorf("%s %d does not fit into %d digits", f.name, value, f.width)
		}
		fmt.Fprintf(&b, "%0*d", f.width, value)
	}
	return b.String(), nil
}
