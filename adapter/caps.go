package adapter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ftl/rigproxy/pkg/protocol"

	"github.com/ftl/ts2000adapter/ts2000"
)

// hamlibModelID is Hamlib's rig model number of the Kenwood TS-2000.
const hamlibModelID = 2014

func dumpCapsResponse(version string) protocol.Response {
	return protocol.Response{
		Command: "dump_caps",
		Data:    []string{capsText(version)},
		Keys:    []string{""},
		Result:  "0",
	}
}

// capsText renders a dump_caps report for the TS-2000 from the codec tables.
func capsText(version string) string {
	codec := ts2000.NewCodec()
	allModes := strings.Join(modeNames(codec), " ")
	ssbModes, fmModes := stepModeNames(codec)
	b := &strings.Builder{}

	fmt.Fprintf(b, "Caps dump for model: %d\n", hamlibModelID)
	fmt.Fprintf(b, "Model name:\tTS-2000\n")
	fmt.Fprintf(b, "Mfg name:\tKenwood\n")
	fmt.Fprintf(b, "Backend version:\t%s\n", version)
	fmt.Fprintf(b, "Backend copyright:\tMIT\n")
	fmt.Fprintf(b, "Backend status:\tStable\n")
	fmt.Fprintf(b, "Rig type:\tTransceiver\n")
	fmt.Fprintf(b, "PTT type:\tRig capable\n")
	fmt.Fprintf(b, "DCD type:\tRig capable\n")
	fmt.Fprintf(b, "Port type:\tRS-232\n")
	fmt.Fprintf(b, "Serial speed: %d..%d baud, 8N1, ctrl=NONE\n", ts2000.Bauds[len(ts2000.Bauds)-1], ts2000.Bauds[0])
	fmt.Fprintf(b, "Write delay: 0mS, timeout 500mS, 0 retry\n")
	fmt.Fprintf(b, "Post Write delay: 0mS\n")
	fmt.Fprintf(b, "Has targetable VFO: Y\n")
	fmt.Fprintf(b, "Announce: 0x0\n")
	fmt.Fprintf(b, "Max RIT: -9.999kHz/+9.999kHz\n")
	fmt.Fprintf(b, "Max XIT: -9.999kHz/+9.999kHz\n")
	fmt.Fprintf(b, "Max IF-SHIFT: -1.0kHz/+1.0kHz\n")
	fmt.Fprintf(b, "Preamp: 12dB\n")
	fmt.Fprintf(b, "Attenuator: 12dB\n")
	fmt.Fprintf(b, "CTCSS: %s Hz, %d tones\n", toneList(codec.Tones), len(codec.Tones))
	fmt.Fprintf(b, "DCS: %s, %d codes\n", dtcsList(codec.DTCSCodes), len(codec.DTCSCodes))
	fmt.Fprintf(b, "Mode list: %s \n", allModes)
	fmt.Fprintf(b, "VFO list: VFOA VFOB MEM currVFO \n")
	fmt.Fprintf(b, "VFO Ops: CPY XCHG FROM_VFO TO_VFO UP DOWN TOGGLE \n")
	fmt.Fprintf(b, "Scan Ops: VFO MEM STOP \n")
	fmt.Fprintf(b, "Number of banks:\t1\n")
	fmt.Fprintf(b, "Memory name desc size:\t%d\n", codec.NameLength)
	fmt.Fprintf(b, "Memories:\n")
	fmt.Fprintf(b, "\t0..%d:   \tMEM\n", codec.Upper)
	fmt.Fprintf(b, "\t\tMem caps: FREQ MODE TS SPLIT RPTRSHIFT RPTROFS TONE CTCSS DCSCODE FLAG NAME \n")
	fmt.Fprintf(b, "\t%d..%d:   \tEDGE\n", codec.Upper+1, codec.Upper+20)
	fmt.Fprintf(b, "\t\tMem caps: FREQ MODE TS \n")
	fmt.Fprintf(b, "TX ranges #1:\n")
	fmt.Fprintf(b, "\t%d Hz - %d Hz\n", codec.MinFrequency, codec.MaxFrequency)
	fmt.Fprintf(b, "\t\tVFO list: VFOA VFOB MEM currVFO \n")
	fmt.Fprintf(b, "\t\tMode list: %s \n", allModes)
	fmt.Fprintf(b, "RX ranges #1:\n")
	fmt.Fprintf(b, "\t%d Hz - %d Hz\n", codec.MinFrequency, codec.MaxFrequency)
	fmt.Fprintf(b, "\t\tVFO list: VFOA VFOB MEM currVFO \n")
	fmt.Fprintf(b, "\t\tMode list: %s \n", allModes)
	fmt.Fprintf(b, "Tuning steps:\n")
	for _, step := range codec.SSBSteps {
		fmt.Fprintf(b, "\t%s:   \t%s \n", freqLabel(step*1000), strings.Join(ssbModes, " "))
	}
	for _, step := range codec.FMSteps {
		fmt.Fprintf(b, "\t%s:   \t%s \n", freqLabel(step*1000), strings.Join(fmModes, " "))
	}
	fmt.Fprintf(b, "Tuning steps status:\tOK (0)\n")
	fmt.Fprintf(b, "Filters:\n")
	for _, group := range filterGroups(codec) {
		fmt.Fprintf(b, "\t%s:   \t%s \n", freqLabel(float64(group.passband)), strings.Join(group.modes, " "))
	}
	fmt.Fprintf(b, "Has priv data:\tN\n")
	fmt.Fprintf(b, "Has Init:\tN\n")
	fmt.Fprintf(b, "Has Cleanup:\tN\n")
	fmt.Fprintf(b, "Has Open:\tY\n")
	fmt.Fprintf(b, "Has Close:\tY\n")
	fmt.Fprintf(b, "Can set Frequency:\tY\n")
	fmt.Fprintf(b, "Can get Frequency:\tY\n")
	fmt.Fprintf(b, "Can set Mode:\tY\n")
	fmt.Fprintf(b, "Can get Mode:\tY\n")
	fmt.Fprintf(b, "Can set VFO:\tY\n")
	fmt.Fprintf(b, "Can get VFO:\tY\n")
	fmt.Fprintf(b, "Can set PTT:\tY\n")
	fmt.Fprintf(b, "Can get PTT:\tY\n")
	fmt.Fprintf(b, "Can set Split Freq:\tY\n")
	fmt.Fprintf(b, "Can get Split Freq:\tY\n")
	fmt.Fprintf(b, "Can set Split Mode:\tY\n")
	fmt.Fprintf(b, "Can get Split Mode:\tY\n")
	fmt.Fprintf(b, "Can set Split VFO:\tY\n")
	fmt.Fprintf(b, "Can get Split VFO:\tY\n")
	fmt.Fprintf(b, "Can set Level:\tY\n")
	fmt.Fprintf(b, "Can get Level:\tY\n")
	fmt.Fprintf(b, "Can set Mem:\tY\n")
	fmt.Fprintf(b, "Can get Mem:\tY\n")
	fmt.Fprintf(b, "Can set Channel:\tN\n")
	fmt.Fprintf(b, "Can get Channel:\tN\n")
	fmt.Fprintf(b, "\nOverall backend warnings: 0\n")

	return b.String()
}

func modeCodes(codec *ts2000.Codec) []int {
	codes := make([]int, 0, len(codec.Modes))
	for code := range codec.Modes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

func modeNames(codec *ts2000.Codec) []string {
	names := make([]string, 0, len(codec.Modes))
	for _, code := range modeCodes(codec) {
		names = append(names, string(rigToHamlibMode[codec.Modes[code]]))
	}
	return names
}

func stepModeNames(codec *ts2000.Codec) (ssb, fm []string) {
	for _, code := range modeCodes(codec) {
		mode := codec.Modes[code]
		name := string(rigToHamlibMode[mode])
		switch mode {
		case ts2000.ModeAM, ts2000.ModeFM:
			fm = append(fm, name)
		default:
			ssb = append(ssb, name)
		}
	}
	return ssb, fm
}

type filterGroup struct {
	passband int
	modes    []string
}

func filterGroups(codec *ts2000.Codec) []filterGroup {
	groups := []filterGroup{}
	index := map[int]int{}
	for _, code := range modeCodes(codec) {
		mode := codec.Modes[code]
		passband, ok := nominalPassband[mode]
		if !ok {
			continue
		}
		i, ok := index[passband]
		if !ok {
			i = len(groups)
			index[passband] = i
			groups = append(groups, filterGroup{passband: passband})
		}
		groups[i].modes = append(groups[i].modes, string(rigToHamlibMode[mode]))
	}
	return groups
}

func toneList(tones []float64) string {
	parts := make([]string, len(tones))
	for i, tone := range tones {
		parts[i] = strconv.FormatFloat(tone, 'f', 1, 64)
	}
	return strings.Join(parts, " ")
}

func dtcsList(codes []int) string {
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = strconv.Itoa(code)
	}
	return strings.Join(parts, " ")
}

func freqLabel(hz float64) string {
	if hz >= 1000 {
		return fmt.Sprintf("%.4f kHz", hz/1000)
	}
	return fmt.Sprintf("%.1f Hz", hz)
}
