package ts2000

// MenuItem is one line of the settings menu: either a settings key with
// its label, or a nested group of items.
type MenuItem struct {
	Key   string
	Label string
	Items []MenuItem
}

// MenuGroup is one top level group of the settings menu.
type MenuGroup struct {
	Label string
	Items []MenuItem
}

// Menus returns the settings menu tree the way the operating manual
// groups it. The tree is purely presentational, the schemas of the keys
// live in the settings table.
func Menus() []MenuGroup {
	return []MenuGroup{
		{"Operator Interface", []MenuItem{
			{Key: "EX0000000", Label: "Display Brightness"},
			{Key: "EX0010000", Label: "Key Illumination"},
		}},
		{"Tuning Control", []MenuItem{
			{Key: "EX0020000", Label: "Tuning control change per revolution"},
			{Key: "EX0030000", Label: "Tuning with MULTI/ CH control"},
			{Key: "EX0040000", Label: "Rounds off VFO frequencies changed by using the MULTI/ CH control"},
			{Key: "EX0050000", Label: "9 kHz frequency step size for the MULTI/ CH control in AM mode on the AM broadcast band"},
		}},
		{"Memory Channel", []MenuItem{
			{Key: "EX0060100", Label: "Memory-VFO split operation"},
			{Key: "EX0060200", Label: "Tunable (ON) or fixed (OFF) memory channel frequencies"},
		}},
		{"Scan Operation", []MenuItem{
			{Key: "EX0070000", Label: "Program scan partially slowed"},
			{Key: "EX0080000", Label: "Slow down frequency range for the Program scan"},
			{Key: "EX0090000", Label: "Program scan hold"},
			{Key: "EX0100000", Label: "Scan resume method"},
			{Key: "EX0110000", Label: "Visual scan range"},
		}},
		{"Monitor Sound", []MenuItem{
			{Key: "EX0120000", Label: "Beep output level"},
			{Key: "EX0130000", Label: "TX sidetone volume"},
			{Key: "EX0140000", Label: "DRU-3A playback volume"},
			{Key: "EX0150000", Label: "VS-3 playback volume"},
		}},
		{"Speaker Output", []MenuItem{
			{Key: "EX0160000", Label: "Audio output configuration for EXT.SP2 or headphone"},
			{Key: "EX0170000", Label: "Reverses the EXT.SP1 and EXT.SP2 (the headphone jack L/R channels) audio outputs"},
		}},
		{"RX Antenna", []MenuItem{
			{Key: "EX0180000", Label: "Enable an input from the HF RX ANT connector"},
		}},
		{"S-meter Squelch", []MenuItem{
			{Key: "EX0190100", Label: "Enable S-meter squelch"},
			{Key: "EX0190200", Label: "Hang time for S-meter squelch"},
		}},
		{"DSP Equalizer", []MenuItem{
			{Key: "EX0200000", Label: "DSP RX equalizer"},
			{Key: "EX0210000", Label: "DSP TX equalizer"},
		}},
		{"DSP Filter", []MenuItem{
			{Key: "EX0220000", Label: "DSP Filter"},
		}},
		{"Fine Tuning", []MenuItem{
			{Key: "EX0230000", Label: "Fine transmit power tuning"},
		}},
		{"TOT", []MenuItem{
			{Key: "EX0240000", Label: "Time-out timer"},
		}},
		{"Transverter", []MenuItem{
			{Key: "EX0250000", Label: "Transverter frequency display"},
		}},
		{"Antenna Tuner", []MenuItem{
			{Key: "EX0260000", Label: "TX hold when AT completes the tuning"},
			{Key: "EX0270000", Label: "In-line AT while receiving"},
		}},
		{"Linear Amplifier", []MenuItem{
			{Key: "EX0280100", Label: "Linear amplifier control delay for HF band"},
			{Key: "EX0280200", Label: "Linear amplifier control delay for 50 MHz band"},
			{Key: "EX0280300", Label: "Linear amplifier control delay for 144 MHz band"},
			{Key: "EX0280400", Label: "Linear amplifier control delay for 430/ 440 MHz band"},
			{Key: "EX0280500", Label: "Linear amplifier control delay for 1.2 GHz band"},
		}},
		{"Message Playback", []MenuItem{
			{Key: "EX0290100", Label: "Repeat the playback"},
			{Key: "EX0290200", Label: "Interval time for repeating the playback"},
		}},
		{"CW", []MenuItem{
			{Key: "EX0300000", Label: "Keying priority over playback"},
			{Key: "EX0310000", Label: "CW RX pitch/ TX sidetone frequency"},
			{Key: "EX0320000", Label: "CW rise time"},
			{Key: "EX0330000", Label: "CW keying dot, dash weight ratio"},
			{Key: "EX0340000", Label: "Reverse CW keying auto weight ratio"},
			{Key: "EX0350000", Label: "Bug key mode"},
			{Key: "EX0360000", Label: "Auto CW TX in SSB mode"},
			{Key: "EX0370000", Label: "Frequency correction for changing SSB to CW"},
		}},
		{"FSK", []MenuItem{
			{Key: "EX0380000", Label: "FSK shift"},
			{Key: "EX0390000", Label: "FSK keying polarity"},
			{Key: "EX0400000", Label: "FSK tone frequency"},
		}},
		{"FM", []MenuItem{
			{Key: "EX0410000", Label: "Mic gain for FM"},
			{Key: "EX0420000", Label: "Sub-tone mode for FM"},
			{Key: "EX0430000", Label: "Auto repeater offset"},
			{Key: "EX0440000", Label: "TX hold: 1750 Hz tone"},
		}},
		{"DTMF", []MenuItem{
			{Label: "DTMF number memory select", Items: []MenuItem{
				{Key: "EX045010", Label: "Memory 0"},
				{Key: "EX045011", Label: "Memory 1"},
				{Key: "EX045012", Label: "Memory 2"},
				{Key: "EX045013", Label: "Memory 3"},
				{Key: "EX045014", Label: "Memory 4"},
				{Key: "EX045015", Label: "Memory 5"},
				{Key: "EX045016", Label: "Memory 6"},
				{Key: "EX045017", Label: "Memory 7"},
				{Key: "EX045018", Label: "Memory 8"},
				{Key: "EX045019", Label: "Memory 9"},
			}},
			{Key: "EX0450200", Label: "TX speed for stored DTMF number"},
			{Key: "EX0450300", Label: "Pause duration for stored DTMF number"},
			{Key: "EX0450400", Label: "Enable Mic remote control"},
		}},
		{"TNC", []MenuItem{
			{Key: "EX0460000", Label: "MAIN/ SUB band: Internal TNC"},
			{Key: "EX0470000", Label: "Data transfer speed: Internal TNC"},
			{Key: "EX0480000", Label: "DCD sensing band"},
			{Label: "P.C.T. (Packet Cluster Tune) mode", Items: []MenuItem{
				{Key: "EX0490100", Label: "Packet Cluster Tune mode"},
				{Key: "EX0490200", Label: "Packet Cluster RX confirmation tone"},
			}},
			{Label: "Packet configuration", Items: []MenuItem{
				{Key: "EX0500100", Label: "Packet filter bandwidth"},
				{Key: "EX0500200", Label: "AF input level for Packet"},
				{Key: "EX0500300", Label: "MAIN band AF output level for packet operation"},
				{Key: "EX0500400", Label: "SUB band AF output level for packet operation"},
				{Key: "EX0500500", Label: "MAIN/ SUB band: External TNC"},
				{Key: "EX0500600", Label: "Data transfer speed: External TNC"},
			}},
		}},
		{"PF keys", []MenuItem{
			{Key: "EX0510100", Label: "Front panel PF key"},
			{Key: "EX0510200", Label: "Microphone PF1 (CALL) key"},
			{Key: "EX0510300", Label: "Microphone PF2 (VFO) key"},
			{Key: "EX0510400", Label: "Microphone PF3 (MR) key"},
			{Key: "EX0510500", Label: "Microphone PF4 (PF) key"},
		}},
		{"Master/ Slave operation", []MenuItem{
			{Key: "EX0520000", Label: "Split frequency transfer in master/slave operation"},
			{Key: "EX0530000", Label: "Permit to write the transferred Split frequencies to the target VFOs"},
		}},
		{"TX Inhibit", []MenuItem{
			{Key: "EX0540000", Label: "TX Inhibit"},
		}},
		{"Packet", []MenuItem{
			{Key: "TC", Label: "Packet communication mode"},
			{Key: "EX0560000", Label: "COM port communication speed"},
		}},
		{"APO", []MenuItem{
			{Key: "EX0570000", Label: "APO (Auto Power Off) function"},
		}},
		{"RC-2000 Configuration", []MenuItem{
			{Key: "EX0580000", Label: "RC-2000 font in easy operation mode"},
			{Key: "EX0590000", Label: "RC-2000 panel/ TS-2000(X) dot-matrix display contrast"},
			{Key: "EX0600000", Label: "Display mode for RC-2000"},
		}},
		// The remaining groups exist on the K-type only.
		{"Repeater Functions", []MenuItem{
			{Key: "EX0610100", Label: "Repeater mode select"},
			{Key: "EX0610200", Label: "Repeater TX hold"},
			{Key: "EX0610300", Label: "Remote control ID code"},
			{Key: "EX0610400", Label: "Acknowledgement signal in external remote control mode"},
			{Key: "EX0610500", Label: "External remote control"},
		}},
		{"Sky Command II+", []MenuItem{
			{Key: "EX0620100", Label: "Commander callsign for Sky Command II+"},
			{Key: "EX0620200", Label: "Transporter callsign for Sky Command II+"},
			{Key: "EX0620300", Label: "Sky Command II+ tone frequency"},
			{Key: "EX0620400", Label: "Sky Command II+ communication speed"},
			{Key: "EX0620500", Label: "Sky Command II+ mode"},
		}},
	}
}
