package ts2000

import (
	"errors"
	"fmt"
	"strconv"
)

// Channel is one memory channel of the radio. Frequency and Offset are in
// Hz. For split channels Duplex is DuplexSplit and Offset carries the
// transmit frequency.
type Channel struct {
	Number       int      `json:"number"`
	ExtendedName string   `json:"extended_name,omitempty"`
	Frequency    int      `json:"frequency"`
	Mode         Mode     `json:"mode"`
	TuningStep   float64  `json:"tuning_step"`
	ToneMode     ToneMode `json:"tone_mode"`
	RTone        float64  `json:"rtone"`
	CTone        float64  `json:"ctone"`
	DTCS         int      `json:"dtcs"`
	Duplex       Duplex   `json:"duplex"`
	Offset       int      `json:"offset"`
	Skip         bool     `json:"skip"`
	Name         string   `json:"name"`
	Empty        bool     `json:"empty,omitempty"`
	Immutable    []string `json:"-"`
}

// sweepLimitImmutable lists the fields that are read-only on the end half
// of a sweep-limit pair. The radio keeps them in sync with the start half.
func sweepLimitImmutable() []string {
	return []string{
		"name", "tone_mode", "rtone", "ctone", "dtcs",
		"duplex", "offset", "mode", "tuning_step", "skip",
	}
}

// IsSweepLimit indicates whether the channel number addresses one of the
// sweep-limit halves beyond the normal channel range.
func (c *Codec) IsSweepLimit(number int) bool {
	return number > c.Upper
}

// SweepLimitHalf splits an extended channel number into the pair half
// (0 = start, 1 = end) and the memory number of the pair on the wire.
func (c *Codec) SweepLimitHalf(number int) (half int, pair int) {
	delta := number - c.Upper - 1
	return delta % 2, delta/2 + c.Upper + 1
}

// ChannelNumber is the inverse of SweepLimitHalf. It maps a pair number
// and half back to the extended channel number.
func (c *Codec) ChannelNumber(pair int, half int) int {
	return c.Upper + (pair-c.Upper)*2 - 1 + half
}

// MemoryLabel returns the display label of a channel number, "290 Start"
// and "290 End" for the sweep-limit halves.
func (c *Codec) MemoryLabel(number int) string {
	if number <= c.Upper {
		return fmt.Sprintf("%03d", number)
	}
	half, pair := c.SweepLimitHalf(number)
	if half == 0 {
		return fmt.Sprintf("%d Start", pair)
	}
	return fmt.Sprintf("%d End", pair)
}

// EmptyChannel returns the unprogrammed channel with the given number.
func (c *Codec) EmptyChannel(number int) Channel {
	ch := Channel{Number: number, Empty: true}
	if c.IsSweepLimit(number) {
		ch.ExtendedName = c.MemoryLabel(number)
	}
	return ch
}

// memoryTag renders the channel address used in MR and MW commands: the
// split digit and the memory number, or half and pair number for the
// sweep-limit range.
func (c *Codec) memoryTag(number int, split bool) string {
	if c.IsSweepLimit(number) {
		half, pair := c.SweepLimitHalf(number)
		return fmt.Sprintf("%d%03d", half, pair)
	}
	splitDigit := 0
	if split {
		splitDigit = 1
	}
	return fmt.Sprintf("%d%03d", splitDigit, number)
}

// ReadCommand returns the MR command that reads the channel. Sweep-limit
// halves have no separate split record, ok is false then and the read
// must be skipped.
func (c *Codec) ReadCommand(number int, split bool) (cmd string, ok bool) {
	if split && c.IsSweepLimit(number) {
		return "", false
	}
	return "MR" + c.memoryTag(number, split), true
}

// WriteCommand returns the MW command that programs the channel. The
// trailing identity query forces a response, MW alone answers nothing.
func (c *Codec) WriteCommand(ch Channel, split bool) (string, error) {
	if split && c.IsSweepLimit(ch.Number) {
		return "", errors.New("can't set split on start/end memories")
	}
	tag := c.memoryTag(ch.Number, split)
	if ch.Empty {
		return fmt.Sprintf("MW%s%035d;ID", tag, 0), nil
	}
	spec, err := c.buildSpec(ch, split)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("MW%s%s;ID", tag, spec), nil
}

// EraseCommand returns the bare MW command that zeroes the channel. The
// radio does not acknowledge it, so callers that need a response write an
// empty channel instead.
func (c *Codec) EraseCommand(number int) string {
	return fmt.Sprintf("MW%04d%035d", number, 0)
}

// RecallCommand returns the MC command that recalls the channel into the
// memory mode display.
func (c *Codec) RecallCommand(number int) string {
	return fmt.Sprintf("MC%03d", number)
}

// ParseChannel decodes a memory record into a channel.
func (c *Codec) ParseChannel(raw string) (Channel, error) {
	fields := splitRecord(raw, channelFields)
	if fields["echo"] != "MR" {
		return Channel{}, fmt.Errorf("unexpected memory record %q", raw)
	}

	number, err := strconv.Atoi(fields["bank"] + fields["channel"])
	if err != nil {
		return Channel{}, fmt.Errorf("invalid memory number in %q", raw)
	}
	endHalf := false
	if c.IsSweepLimit(number) {
		half := 0
		if fields["split"] == "1" {
			half = 1
			endHalf = true
		}
		number = c.ChannelNumber(number, half)
	}
	ch := Channel{Number: number}
	if c.IsSweepLimit(number) {
		ch.ExtendedName = c.MemoryLabel(number)
	}

	if fields["mode"] == "0" {
		// Unprogrammed channels usually answer with a NAK, some firmware
		// revisions return an all-zero record instead.
		ch.Empty = true
		if endHalf {
			ch.Immutable = sweepLimitImmutable()
		}
		return ch, nil
	}

	ch.Frequency, err = strconv.Atoi(fields["frequency"])
	if err != nil {
		return Channel{}, fmt.Errorf("invalid frequency in %q", raw)
	}
	modeCode, err := strconv.Atoi(fields["mode"])
	if err != nil {
		return Channel{}, fmt.Errorf("invalid mode in %q", raw)
	}
	mode, ok := c.Modes[modeCode]
	if !ok {
		return Channel{}, fmt.Errorf("unknown mode code %d in %q", modeCode, raw)
	}
	ch.Mode = mode
	steps := c.stepTable(ch.Mode)
	stepIndex, err := strconv.Atoi(fields["step"])
	if err != nil || stepIndex < 0 || stepIndex >= len(steps) {
		return Channel{}, fmt.Errorf("invalid tuning step in %q", raw)
	}
	ch.TuningStep = steps[stepIndex]

	if endHalf {
		// The end half of a sweep-limit pair carries only frequency, mode
		// and step of its own, everything else mirrors the start half.
		ch.Immutable = sweepLimitImmutable()
		return ch, nil
	}

	ch.Skip = fields["lockout"] == "1"
	toneModeIndex, err := strconv.Atoi(fields["tonemode"])
	if err != nil || toneModeIndex < 0 || toneModeIndex >= len(c.ToneModes) {
		return Channel{}, fmt.Errorf("invalid tone mode in %q", raw)
	}
	ch.ToneMode = c.ToneModes[toneModeIndex]
	rtone, err := strconv.Atoi(fields["rtone"])
	if err != nil || rtone > len(c.Tones) {
		return Channel{}, fmt.Errorf("invalid tone number in %q", raw)
	}
	if rtone > 0 {
		ch.RTone = c.Tones[rtone-1]
	}
	ctone, err := strconv.Atoi(fields["ctone"])
	if err != nil || ctone > len(c.Tones) {
		return Channel{}, fmt.Errorf("invalid tone squelch number in %q", raw)
	}
	if ctone > 0 {
		ch.CTone = c.Tones[ctone-1]
	}
	dtcs, err := strconv.Atoi(fields["dtcs"])
	if err != nil || dtcs < 0 || dtcs >= len(c.DTCSCodes) {
		return Channel{}, fmt.Errorf("invalid DCS number in %q", raw)
	}
	ch.DTCS = c.DTCSCodes[dtcs]
	duplexCode, err := strconv.Atoi(fields["duplex"])
	if err != nil {
		return Channel{}, fmt.Errorf("invalid shift in %q", raw)
	}
	duplex, ok := c.Duplexes[duplexCode]
	if !ok {
		return Channel{}, fmt.Errorf("unknown shift code %d in %q", duplexCode, raw)
	}
	ch.Duplex = duplex
	ch.Offset, err = strconv.Atoi(fields["offset"])
	if err != nil {
		return Channel{}, fmt.Errorf("invalid offset in %q", raw)
	}
	ch.Name = fields["name"]

	return ch, nil
}

// ParseSplit merges the transmit record of a split channel into the
// already decoded channel. The radio answers the split read even for
// simplex channels, a transmit frequency equal to the receive frequency
// means no split is programmed.
func (c *Codec) ParseSplit(ch Channel, raw string) (Channel, error) {
	fields := splitRecord(raw, channelFields)
	if fields["echo"] != "MR" {
		return ch, fmt.Errorf("unexpected memory record %q", raw)
	}
	txFrequency, err := strconv.Atoi(fields["frequency"])
	if err != nil {
		return ch, fmt.Errorf("invalid transmit frequency in %q", raw)
	}
	if txFrequency != ch.Frequency {
		ch.Duplex = DuplexSplit
		ch.Offset = txFrequency
	}
	return ch, nil
}

// buildSpec renders the payload of an MW command. The transmit record of
// a split pair carries the transmit frequency in the frequency field and
// a zero offset.
func (c *Codec) buildSpec(ch Channel, split bool) (string, error) {
	if err := c.validateName(ch.Name); err != nil {
		return "", err
	}
	frequency := ch.Frequency
	if split {
		frequency = ch.Offset
	}
	if frequency < c.MinFrequency || frequency > c.MaxFrequency {
		return "", fmt.Errorf("frequency %d Hz is out of range", frequency)
	}
	modeCode, err := c.modeCode(ch.Mode)
	if err != nil {
		return "", err
	}
	stepIndex, err := c.stepIndex(ch.Mode, ch.TuningStep)
	if err != nil {
		return "", err
	}
	toneModeIndex, rtone, ctone, dtcs, err := c.toneCodes(ch)
	if err != nil {
		return "", err
	}
	duplexCode, offset, err := c.duplexCode(ch)
	if err != nil {
		return "", err
	}
	if split {
		offset = 0
	}

	lockout := 0
	if ch.Skip {
		lockout = 1
	}
	values := map[string]int{
		"frequency": frequency,
		"mode":      modeCode,
		"lockout":   lockout,
		"tonemode":  toneModeIndex,
		"rtone":     rtone,
		"ctone":     ctone,
		"dtcs":      dtcs,
		"reverse":   0,
		"duplex":    duplexCode,
		"offset":    offset,
		"step":      stepIndex,
		"group":     0,
	}
	spec, err := joinRecord(specFields, values)
	if err != nil {
		return "", err
	}
	return spec + ch.Name, nil
}

func (c *Codec) validateName(name string) error {
	if len(name) > c.NameLength {
		return fmt.Errorf("name %q is longer than %d characters", name, c.NameLength)
	}
	for _, r := range name {
		if r < 0x20 || r > 0x7e || r == ';' {
			return fmt.Errorf("name %q contains the invalid character %q", name, r)
		}
	}
	return nil
}

func (c *Codec) modeCode(mode Mode) (int, error) {
	for code, m := range c.Modes {
		if m == mode {
			return code, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", mode)
}

// stepTable selects the tuning step table for the mode. AM and FM use the
// coarse steps, all other modes the fine ones.
func (c *Codec) stepTable(mode Mode) []float64 {
	if mode == ModeAM || mode == ModeFM {
		return c.FMSteps
	}
	return c.SSBSteps
}

func (c *Codec) stepIndex(mode Mode, step float64) (int, error) {
	for i, s := range c.stepTable(mode) {
		if s == step {
			return i, nil
		}
	}
	return 0, fmt.Errorf("tuning step %v kHz is not available in mode %s", step, mode)
}

// toneCodes renders the tone fields. With the tone mode off all three are
// zero, regardless of the channel's tone values.
func (c *Codec) toneCodes(ch Channel) (toneModeIndex int, rtone int, ctone int, dtcs int, err error) {
	toneModeIndex = -1
	for i, t := range c.ToneModes {
		if t == ch.ToneMode {
			toneModeIndex = i
			break
		}
	}
	if toneModeIndex < 0 {
		return 0, 0, 0, 0, fmt.Errorf("unknown tone mode %q", ch.ToneMode)
	}
	if ch.ToneMode == ToneModeNone {
		return toneModeIndex, 0, 0, 0, nil
	}
	rtone = -1
	ctone = -1
	for i, t := range c.Tones {
		if t == ch.RTone {
			rtone = i + 1
		}
		if t == ch.CTone {
			ctone = i + 1
		}
	}
	if rtone < 0 {
		return 0, 0, 0, 0, fmt.Errorf("unknown tone %v Hz", ch.RTone)
	}
	if ctone < 0 {
		return 0, 0, 0, 0, fmt.Errorf("unknown tone squelch %v Hz", ch.CTone)
	}
	dtcs = -1
	for i, code := range c.DTCSCodes {
		if code == ch.DTCS {
			dtcs = i
		}
	}
	if dtcs < 0 {
		return 0, 0, 0, 0, fmt.Errorf("unknown DCS code %d", ch.DTCS)
	}
	return toneModeIndex, rtone, ctone, dtcs, nil
}

// duplexCode renders the shift field. Split channels have a zero shift in
// both records, the split is expressed by the record pair itself.
func (c *Codec) duplexCode(ch Channel) (code int, offset int, err error) {
	if ch.Duplex == DuplexSplit {
		return 0, 0, nil
	}
	for dc, duplex := range c.Duplexes {
		if duplex == ch.Duplex && duplex != DuplexSplit {
			return dc, ch.Offset, nil
		}
	}
	return 0, 0, fmt.Errorf("unsupported shift %q", ch.Duplex)
}
