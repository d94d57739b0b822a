package cmd

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ftl/ts2000adapter/ts2000"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Work with the menu settings of the radio",
}

var settingsGetCmd = &cobra.Command{
	Use:   "get key",
	Short: "Read one menu setting from the radio",
	Args:  cobra.ExactArgs(1),
	Run:   settingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set key value",
	Short: "Write one menu setting to the radio",
	Args:  cobra.ExactArgs(2),
	Run:   settingsSet,
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all menu settings with their keys",
	Run:   settingsList,
}

var settingsDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Read all menu settings from the radio",
	Run:   settingsDump,
}

var settingsDTMFCmd = &cobra.Command{
	Use:   "dtmf slot [name] [number]",
	Short: "Read or write one of the ten DTMF number memories",
	Args:  cobra.RangeArgs(1, 3),
	Run:   settingsDTMF,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsGetCmd, settingsSetCmd, settingsListCmd, settingsDumpCmd, settingsDTMFCmd)
}

func settingsGet(cmd *cobra.Command, args []string) {
	entry, ok := ts2000.SettingEntry(args[0])
	if !ok {
		log.Fatalf("unknown setting %q", args[0])
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	err := radio.ReadSetting(entry)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s = %s\n", entry.Key, entry.Value())
}

func settingsSet(cmd *cobra.Command, args []string) {
	entry, ok := ts2000.SettingEntry(args[0])
	if !ok {
		log.Fatalf("unknown setting %q", args[0])
	}
	err := entry.SetValue(args[1])
	if err != nil {
		log.Fatal(err)
	}

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	err = radio.WriteSetting(entry)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%s set to %s", entry.Key, entry.Value())
}

func settingsList(cmd *cobra.Command, args []string) {
	for _, group := range ts2000.Menus() {
		fmt.Println(group.Label)
		printMenuItems(group.Items, 1)
	}
}

func printMenuItems(items []ts2000.MenuItem, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, item := range items {
		if item.Key != "" {
			fmt.Printf("%s%-9s  %s\n", indent, item.Key, item.Label)
		} else {
			fmt.Printf("%s%s\n", indent, item.Label)
		}
		printMenuItems(item.Items, depth+1)
	}
}

func settingsDump(cmd *cobra.Command, args []string) {
	radio := mustOpenRadio(cmd)
	defer radio.Close()

	for _, group := range ts2000.Menus() {
		fmt.Printf("# %s\n", group.Label)
		dumpMenuItems(radio, group.Items)
	}
}

func dumpMenuItems(radio *ts2000.Radio, items []ts2000.MenuItem) {
	for _, item := range items {
		if entry, ok := ts2000.SettingEntry(item.Key); ok {
			err := radio.ReadSetting(entry)
			if err != nil {
				log.Fatalf("cannot read %s: %v", item.Key, err)
			}
			fmt.Printf("%s = %s  (%s)\n", entry.Key, entry.Value(), item.Label)
		} else if slot, ok := ts2000.DTMFSlotForKey(item.Key); ok {
			err := radio.ReadDTMFSlot(slot)
			if err != nil {
				log.Fatalf("cannot read DTMF memory %d: %v", slot.Index, err)
			}
			fmt.Printf("%s = %q %q  (%s)\n", item.Key, slot.Name.Value(), slot.Value.Value(), item.Label)
		}
		dumpMenuItems(radio, item.Items)
	}
}

func settingsDTMF(cmd *cobra.Command, args []string) {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 0 || index > 9 {
		log.Fatalf("invalid DTMF memory %q, use 0 to 9", args[0])
	}
	slot := ts2000.DTMFSlots()[index]

	radio := mustOpenRadio(cmd)
	defer radio.Close()

	if len(args) == 1 {
		err := radio.ReadDTMFSlot(slot)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("DTMF %d: %q %q\n", slot.Index, slot.Name.Value(), slot.Value.Value())
		return
	}

	number := ""
	if len(args) > 2 {
		number = args[2]
	}
	err = slot.Name.SetValue(args[1])
	if err != nil {
		log.Fatal(err)
	}
	err = slot.Value.SetValue(number)
	if err != nil {
		log.Fatal(err)
	}
	err = radio.WriteDTMFSlot(slot)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("DTMF memory %d written", slot.Index)
}
