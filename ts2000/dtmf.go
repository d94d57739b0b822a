package ts2000

import (
	"fmt"
	"strings"
)

// DTMFCharset lists the characters a stored DTMF number may contain.
const DTMFCharset = "ABCD#*0123456789 "

// DTMFSlot is one of the ten DTMF number memories: a name and the
// dialable number, each behind its own settings key.
type DTMFSlot struct {
	Index int
	Name  *Entry
	Value *Entry
}

// DTMFSlots enumerates the ten DTMF number memories with their keys.
func DTMFSlots() []DTMFSlot {
	slots := make([]DTMFSlot, 10)
	for i := range slots {
		slots[i] = DTMFSlot{
			Index: i,
			Name: &Entry{
				Key:    fmt.Sprintf("EX04501%d0", i),
				Schema: StringSchema{MaxLength: 8},
			},
			Value: &Entry{
				Key:    fmt.Sprintf("EX04501%d1", i),
				Schema: StringSchema{MaxLength: 16, Charset: DTMFCharset},
			},
		}
	}
	return slots
}

// DTMFSlotForKey maps a menu key of the DTMF memory group ("EX045010" to
// "EX045019") to a fresh slot.
func DTMFSlotForKey(key string) (DTMFSlot, bool) {
	if len(key) != 8 || !strings.HasPrefix(key, "EX04501") {
		return DTMFSlot{}, false
	}
	index := int(key[7] - '0')
	if index < 0 || index > 9 {
		return DTMFSlot{}, false
	}
	return DTMFSlots()[index], true
}

// dtmfOutgoing coerces a DTMF field for writing. The radio deletes a
// field when it is set to a single blank, so an empty value and one that
// starts with a blank both turn into exactly that.
func dtmfOutgoing(value string) string {
	if value == "" || strings.HasPrefix(value, " ") {
		return " "
	}
	return value
}
