package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ftl/ts2000adapter/ts2000"
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Work with the memory channels of the radio",
}

var channelsReadCmd = &cobra.Command{
	Use:   "read [from] [to]",
	Short: "Read memory channels and print them as JSON",
	Long:  "Read memory channels and print them as JSON. Without arguments all programmed channels are printed, with an explicit range also the empty ones.",
	Args:  cobra.MaximumNArgs(2),
	Run:   channelsRead,
}

var channelsWriteCmd = &cobra.Command{
	Use:   "write number",
	Short: "Program one memory channel",
	Args:  cobra.ExactArgs(1),
	Run:   channelsWrite,
}

var channelsEraseCmd = &cobra.Command{
	Use:   "erase from [to]",
	Short: "Erase memory channels",
	Args:  cobra.RangeArgs(1, 2),
	Run:   channelsErase,
}

var channelsExportCmd = &cobra.Command{
	Use:   "export filename",
	Short: "Export all programmed memory channels to a JSON file",
	Args:  cobra.ExactArgs(1),
	Run:   channelsExport,
}

var channelsImportCmd = &cobra.Command{
	Use:   "import filename",
	Short: "Import memory channels from a JSON file",
	Args:  cobra.ExactArgs(1),
	Run:   channelsImport,
}

var writeFlags = struct {
	frequency *int
	mode      *string
	step      *float64
	toneMode  *string
	rtone     *float64
	ctone     *float64
	dtcs      *int
	duplex    *string
	offset    *int
	skip      *bool
	name      *string
}{}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.AddCommand(channelsReadCmd, channelsWriteCmd, channelsEraseCmd, channelsExportCmd, channelsImportCmd)

	writeFlags.frequency = channelsWriteCmd.Flags().Int("frequency", 0, "Receive frequency in Hz")
	writeFlags.mode = channelsWriteCmd.Flags().String("mode", "FM", "Mode: LSB, USB, CW, FM, AM, FSK, CW-R, FSK-R")
	writeFlags.step = channelsWriteCmd.Flags().Float64("step", 5, "Tuning step in kHz")
	writeFlags.toneMode = channelsWriteCmd.Flags().String("tone_mode", "", "Tone mode: Tone, TSQL, DTCS, or empty for none")
	writeFlags.rtone = channelsWriteCmd.Flags().Float64("rtone", 88.5, "Repeater tone in Hz")
	writeFlags.ctone = channelsWriteCmd.Flags().Float64("ctone", 88.5, "Squelch tone in Hz")
	writeFlags.dtcs = channelsWriteCmd.Flags().Int("dtcs", 23, "DTCS code")
	writeFlags.duplex = channelsWriteCmd.Flags().String("duplex", "", "Duplex: +, -, =, split, or empty for simplex")
	writeFlags.offset = channelsWriteCmd.Flags().Int("offset", 0, "Repeater offset in Hz, or the transmit frequency with duplex 'split'")
	writeFlags.skip = channelsWriteCmd.Flags().Bool("skip", false, "Lock the channel out of the memory scan")
	writeFlags.name = channelsWriteCmd.Flags().String("name", "", "Channel name, up to 7 characters")
}

func channelRange(args []string, max int) (int, int, error) {
	if len(args) == 0 {
		return 0, max, nil
	}
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid channel number %q", args[0])
	}
	to := from
	if len(args) > 1 {
		to, err = strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid channel number %q", args[1])
		}
	}
	if to < from {
		from, to = to, from
	}
	return from, to, nil
}

func channelsRead(cmd *cobra.Command, args []string) {
	codec := ts2000.NewCodec()
	from, to, err := channelRange(args, codec.Upper+20)
	if err != nil {
		log.Fatal(err)
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	channels := make([]ts2000.Channel, 0, to-from+1)
	for number := from; number <= to; number++ {
		channel, err := radio.ReadChannel(number)
		if err != nil {
			log.Fatalf("cannot read channel %s: %v", codec.MemoryLabel(number), err)
		}
		if channel.Empty && len(args) == 0 {
			continue
		}
		channels = append(channels, channel)
	}

	out, err := json.MarshalIndent(channels, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(out))
}

func channelsWrite(cmd *cobra.Command, args []string) {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		log.Fatalf("invalid channel number %q", args[0])
	}
	if *writeFlags.frequency == 0 {
		log.Fatal("a receive frequency is required, use --frequency")
	}

	channel := ts2000.Channel{
		Number:     number,
		Frequency:  *writeFlags.frequency,
		Mode:       ts2000.Mode(*writeFlags.mode),
		TuningStep: *writeFlags.step,
		ToneMode:   ts2000.ToneMode(*writeFlags.toneMode),
		RTone:      *writeFlags.rtone,
		CTone:      *writeFlags.ctone,
		DTCS:       *writeFlags.dtcs,
		Duplex:     ts2000.Duplex(*writeFlags.duplex),
		Offset:     *writeFlags.offset,
		Skip:       *writeFlags.skip,
		Name:       *writeFlags.name,
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	err = radio.WriteChannel(channel)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("channel %d programmed", number)
}

func channelsErase(cmd *cobra.Command, args []string) {
	codec := ts2000.NewCodec()
	from, to, err := channelRange(args, codec.Upper+20)
	if err != nil {
		log.Fatal(err)
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	for number := from; number <= to; number++ {
		err := radio.EraseChannel(number)
		if err != nil {
			log.Fatalf("cannot erase channel %s: %v", codec.MemoryLabel(number), err)
		}
	}
	log.Printf("erased channels %d to %d", from, to)
}

func channelsExport(cmd *cobra.Command, args []string) {
	codec := ts2000.NewCodec()
	radio := mustOpenRadio(cmd)
	defer radio.Close()

	channels := make([]ts2000.Channel, 0, codec.Upper+21)
	for number := 0; number <= codec.Upper+20; number++ {
		channel, err := radio.ReadChannel(number)
		if err != nil {
			log.Fatalf("cannot read channel %s: %v", codec.MemoryLabel(number), err)
		}
		if channel.Empty {
			continue
		}
		channels = append(channels, channel)
	}

	out, err := json.MarshalIndent(channels, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	err = os.WriteFile(args[0], out, 0644)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("exported %d channels to %s", len(channels), args[0])
}

func channelsImport(cmd *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatal(err)
	}
	var channels []ts2000.Channel
	err = json.Unmarshal(data, &channels)
	if err != nil {
		log.Fatalf("cannot parse %s: %v", args[0], err)
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	count := 0
	for _, channel := range channels {
		if channel.Empty {
			continue
		}
		err := radio.WriteChannel(channel)
		if err != nil {
			log.Fatalf("cannot write channel %d: %v", channel.Number, err)
		}
		count++
	}
	log.Printf("imported %d channels from %s", count, args[0])
}
