package ts2000

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// scriptedExchanger answers commands from a fixed script and records what
// was sent.
type scriptedExchanger struct {
	responses map[string]string
	commands  []string
}

func (x *scriptedExchanger) Exchange(cmd string) (string, error) {
	x.commands = append(x.commands, cmd)
	resp, ok := x.responses[cmd]
	if !ok {
		return "", fmt.Errorf("unexpected command %q", cmd)
	}
	return resp, nil
}

func TestReadChannel(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MR0005": "MR000500146520000402080800000000000000000CALL",
		"MR1005": "MR100500146520000402080800000000000000000CALL",
	}}
	radio := New(exchanger)

	channel, err := radio.ReadChannel(5)

	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	expected := Channel{
		Number:     5,
		Frequency:  146520000,
		Mode:       ModeFM,
		TuningStep: 5.0,
		ToneMode:   ToneModeTSQL,
		RTone:      88.5,
		CTone:      88.5,
		DTCS:       23,
		Name:       "CALL",
	}
	if !reflect.DeepEqual(channel, expected) {
		t.Errorf("got %+v, expected %+v", channel, expected)
	}
}

func TestReadChannelSplit(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MR0007": "MR000700146520000400000000000000000000000REPEAT",
		"MR1007": "MR100700147000000400000000000000000000000REPEAT",
	}}
	radio := New(exchanger)

	channel, err := radio.ReadChannel(7)

	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	expected := Channel{
		Number:     7,
		Frequency:  146520000,
		Mode:       ModeFM,
		TuningStep: 5.0,
		DTCS:       23,
		Duplex:     DuplexSplit,
		Offset:     147000000,
		Name:       "REPEAT",
	}
	if !reflect.DeepEqual(channel, expected) {
		t.Errorf("got %+v, expected %+v", channel, expected)
	}
}

func TestReadChannelUnprogrammed(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MR0005": "N",
	}}
	radio := New(exchanger)

	channel, err := radio.ReadChannel(5)

	if err != nil {
		t.Fatalf("an unprogrammed channel is not an error: %v", err)
	}
	expected := Channel{Number: 5, Empty: true}
	if !reflect.DeepEqual(channel, expected) {
		t.Errorf("got %+v, expected %+v", channel, expected)
	}
}

func TestReadChannelSweepLimitSkipsSplit(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MR1290": "MR129000014100000300000000000000000000010",
	}}
	radio := New(exchanger)

	channel, err := radio.ReadChannel(291)

	if err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	if len(exchanger.commands) != 1 {
		t.Errorf("got %d commands, the transmit record of a sweep limit must not be read: %v", len(exchanger.commands), exchanger.commands)
	}
	expected := Channel{
		Number:       291,
		ExtendedName: "290 End",
		Frequency:    14100000,
		Mode:         ModeCW,
		TuningStep:   2.5,
		Immutable:    sweepLimitImmutable(),
	}
	if !reflect.DeepEqual(channel, expected) {
		t.Errorf("got %+v, expected %+v", channel, expected)
	}
}

func TestWriteChannelSplitPair(t *testing.T) {
	primary := "MW000700146520000400000000000000000000000REPEAT;ID"
	transmit := "MW100700147000000400000000000000000000000REPEAT;ID"
	exchanger := &scriptedExchanger{responses: map[string]string{
		primary:  "ID019",
		transmit: "ID019",
	}}
	radio := New(exchanger)

	err := radio.WriteChannel(Channel{
		Number:     7,
		Frequency:  146520000,
		Mode:       ModeFM,
		TuningStep: 5.0,
		Duplex:     DuplexSplit,
		Offset:     147000000,
		Name:       "REPEAT",
	})

	if err != nil {
		t.Fatalf("writing failed: %v", err)
	}
	expected := []string{primary, transmit}
	if !reflect.DeepEqual(exchanger.commands, expected) {
		t.Errorf("got %v, expected %v", exchanger.commands, expected)
	}
}

func TestWriteChannelSimplex(t *testing.T) {
	cmd := "MW000500146520000402080800000000000000000CALL;ID"
	exchanger := &scriptedExchanger{responses: map[string]string{
		cmd: "ID019",
	}}
	radio := New(exchanger)

	err := radio.WriteChannel(Channel{
		Number:     5,
		Frequency:  146520000,
		Mode:       ModeFM,
		TuningStep: 5.0,
		ToneMode:   ToneModeTSQL,
		RTone:      88.5,
		CTone:      88.5,
		DTCS:       23,
		Name:       "CALL",
	})

	if err != nil {
		t.Fatalf("writing failed: %v", err)
	}
	if len(exchanger.commands) != 1 {
		t.Errorf("got %d commands, a simplex channel needs only one record: %v", len(exchanger.commands), exchanger.commands)
	}
}

func TestEraseChannel(t *testing.T) {
	cmd := "MW0005" + strings.Repeat("0", 35) + ";ID"
	exchanger := &scriptedExchanger{responses: map[string]string{
		cmd: "ID019",
	}}
	radio := New(exchanger)

	err := radio.EraseChannel(5)

	if err != nil {
		t.Fatalf("erasing failed: %v", err)
	}
	if len(exchanger.commands) != 1 || exchanger.commands[0] != cmd {
		t.Errorf("got %v, expected only %q", exchanger.commands, cmd)
	}
}

func TestRecallMemory(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MC005;MC": "MC005",
	}}
	radio := New(exchanger)

	if err := radio.RecallMemory(5); err != nil {
		t.Errorf("recalling failed: %v", err)
	}

	refusing := New(&scriptedExchanger{responses: map[string]string{
		"MC007;MC": "MC005",
	}})
	if err := refusing.RecallMemory(7); err == nil {
		t.Error("expected an error when the radio stays on a different channel")
	}
}

func TestCurrentMemory(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MC": "MC014",
	}}
	radio := New(exchanger)

	number, err := radio.CurrentMemory()

	if err != nil {
		t.Fatalf("reading the current memory failed: %v", err)
	}
	if number != 14 {
		t.Errorf("got %d, expected 14", number)
	}
}

func TestReadSetting(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"EX0000000": "EX00000004",
		"EX0620100": "EX0620100",
		"EX0010000": "FA00014205000",
	}}
	radio := New(exchanger)

	brightness, _ := SettingEntry("EX0000000")
	if err := radio.ReadSetting(brightness); err != nil {
		t.Fatalf("reading failed: %v", err)
	}
	if brightness.Value() != "4" {
		t.Errorf("got %q, expected 4", brightness.Value())
	}
	if brightness.Changed() {
		t.Error("a read value must not be marked as changed")
	}

	commanderCall, _ := SettingEntry("EX0620100")
	if err := radio.ReadSetting(commanderCall); err != nil {
		t.Fatalf("reading an empty value failed: %v", err)
	}
	if commanderCall.Value() != "" {
		t.Errorf("got %q, expected an empty value", commanderCall.Value())
	}

	keyIllumination, _ := SettingEntry("EX0010000")
	if err := radio.ReadSetting(keyIllumination); err == nil {
		t.Error("expected an error for a response to a different key")
	}
}

func TestWriteSettingInvertedFlag(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"TC 1;TC": "TC 1",
	}}
	radio := New(exchanger)
	packetMode, _ := SettingEntry("TC")
	if err := packetMode.SetValue("Off"); err != nil {
		t.Fatalf("setting the value failed: %v", err)
	}

	err := radio.WriteSetting(packetMode)

	if err != nil {
		t.Fatalf("writing failed: %v", err)
	}
	if packetMode.Changed() {
		t.Error("a written entry must not stay marked as changed")
	}
	if len(exchanger.commands) != 1 || exchanger.commands[0] != "TC 1;TC" {
		t.Errorf("got %v, expected only TC 1;TC", exchanger.commands)
	}
}

func TestWriteSettingSkipsUnchanged(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{}}
	radio := New(exchanger)
	entry, _ := SettingEntry("EX0000000")

	if err := radio.WriteSetting(entry); err != nil {
		t.Fatalf("writing an unchanged entry failed: %v", err)
	}
	if len(exchanger.commands) != 0 {
		t.Errorf("got %v, expected no commands", exchanger.commands)
	}
}

func TestWriteDTMFSlot(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"EX0450120HOME;EX0450120": "EX0450120HOME",
		"EX0450121123;EX0450121":  "EX0450121123",
	}}
	radio := New(exchanger)
	slot := DTMFSlots()[2]
	if err := slot.Name.SetValue("HOME"); err != nil {
		t.Fatalf("setting the name failed: %v", err)
	}
	if err := slot.Value.SetValue("123"); err != nil {
		t.Fatalf("setting the number failed: %v", err)
	}

	err := radio.WriteDTMFSlot(slot)

	if err != nil {
		t.Fatalf("writing failed: %v", err)
	}
	expected := []string{"EX0450120HOME;EX0450120", "EX0450121123;EX0450121"}
	if !reflect.DeepEqual(exchanger.commands, expected) {
		t.Errorf("got %v, expected %v", exchanger.commands, expected)
	}
}

func TestWriteDTMFSlotDeletesWithBlank(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"EX0450121 ;EX0450121": "EX0450121 ",
	}}
	radio := New(exchanger)
	slot := DTMFSlots()[2]
	if err := slot.Value.SetValue(""); err != nil {
		t.Fatalf("setting the empty number failed: %v", err)
	}

	err := radio.WriteDTMFSlot(slot)

	if err != nil {
		t.Fatalf("writing failed: %v", err)
	}
	expected := []string{"EX0450121 ;EX0450121"}
	if !reflect.DeepEqual(exchanger.commands, expected) {
		t.Errorf("got %v, expected %v", exchanger.commands, expected)
	}
}

func TestVFOFrequency(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"FA": "FA00014205000",
		"FB": "FB00007100000",
	}}
	radio := New(exchanger)

	frequencyA, err := radio.VFOFrequency(VFOA)
	if err != nil {
		t.Fatalf("reading VFO A failed: %v", err)
	}
	if frequencyA != 14205000 {
		t.Errorf("got %d, expected 14205000", frequencyA)
	}

	frequencyB, err := radio.VFOFrequency(VFOB)
	if err != nil {
		t.Fatalf("reading VFO B failed: %v", err)
	}
	if frequencyB != 7100000 {
		t.Errorf("got %d, expected 7100000", frequencyB)
	}
}

func TestSetVFOFrequency(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"FB00007100000;FB": "FB00007100000",
	}}
	radio := New(exchanger)

	if err := radio.SetVFOFrequency(VFOB, 7100000); err != nil {
		t.Errorf("setting the frequency failed: %v", err)
	}
}

func TestCurrentMode(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"MD":     "MD2",
		"MD3;MD": "MD3",
	}}
	radio := New(exchanger)

	mode, err := radio.CurrentMode()
	if err != nil {
		t.Fatalf("reading the mode failed: %v", err)
	}
	if mode != ModeUSB {
		t.Errorf("got %q, expected USB", mode)
	}

	if err := radio.SetCurrentMode(ModeCW); err != nil {
		t.Errorf("setting the mode failed: %v", err)
	}
	if err := radio.SetCurrentMode("WFM"); err == nil {
		t.Error("expected an error for an unsupported mode")
	}
}

func TestReceiveVFO(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"FR": "FR1",
	}}
	radio := New(exchanger)

	vfo, err := radio.ReceiveVFO()
	if err != nil {
		t.Fatalf("reading the receive VFO failed: %v", err)
	}
	if vfo != VFOB {
		t.Errorf("got %v, expected VFO B", vfo)
	}

	memoryMode := New(&scriptedExchanger{responses: map[string]string{
		"FR": "FR2",
	}})
	if _, err := memoryMode.ReceiveVFO(); err == nil {
		t.Error("expected an error in memory mode")
	}
}

func TestSelectVFOs(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"FR0;FR": "FR0",
		"FT1;FT": "FT1",
	}}
	radio := New(exchanger)

	if err := radio.SetReceiveVFO(VFOA); err != nil {
		t.Errorf("selecting the receive VFO failed: %v", err)
	}
	if err := radio.SetTransmitVFO(VFOB); err != nil {
		t.Errorf("selecting the transmit VFO failed: %v", err)
	}
}

func TestStatus(t *testing.T) {
	tt := []struct {
		desc     string
		response string
		expected Status
	}{
		{
			desc:     "receiving on USB with split",
			response: "IF00014205000     +000000000020010080",
			expected: Status{Frequency: 14205000, TX: false, Mode: ModeUSB, Split: true},
		},
		{
			desc:     "transmitting on FM",
			response: "IF00145500000     +000000000140000080",
			expected: Status{Frequency: 145500000, TX: true, Mode: ModeFM, Split: false},
		},
	}
	for _, tc := range tt {
		t.Run(tc.desc, func(t *testing.T) {
			radio := New(&scriptedExchanger{responses: map[string]string{
				"IF": tc.response,
			}})

			status, err := radio.Status()

			if err != nil {
				t.Fatalf("reading the status failed: %v", err)
			}
			if !reflect.DeepEqual(status, tc.expected) {
				t.Errorf("got %+v, expected %+v", status, tc.expected)
			}
		})
	}
}

func TestSetTX(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"TX;ID": "ID019",
		"RX;ID": "ID019",
	}}
	radio := New(exchanger)

	if err := radio.SetTX(true); err != nil {
		t.Errorf("keying failed: %v", err)
	}
	if err := radio.SetTX(false); err != nil {
		t.Errorf("unkeying failed: %v", err)
	}
	expected := []string{"TX;ID", "RX;ID"}
	if !reflect.DeepEqual(exchanger.commands, expected) {
		t.Errorf("got %v, expected %v", exchanger.commands, expected)
	}
}

func TestKeyerSpeed(t *testing.T) {
	exchanger := &scriptedExchanger{responses: map[string]string{
		"KS":       "KS020",
		"KS025;KS": "KS025",
	}}
	radio := New(exchanger)

	speed, err := radio.KeyerSpeed()
	if err != nil {
		t.Fatalf("reading the keyer speed failed: %v", err)
	}
	if speed != 20 {
		t.Errorf("got %d, expected 20", speed)
	}

	if err := radio.SetKeyerSpeed(25); err != nil {
		t.Errorf("setting the keyer speed failed: %v", err)
	}
}
