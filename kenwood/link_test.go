package kenwood

import (
	"errors"
	"reflect"
	"testing"
)

type fakeExchanger struct {
	responses map[string]string
	err       error
	commands  []string
}

func (f *fakeExchanger) Exchange(cmd string) (string, error) {
	f.commands = append(f.commands, cmd)
	if f.err != nil {
		return "", f.err
	}
	return f.responses[cmd], nil
}

func TestLinkGet(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		response string
		want     string
		wantErr  bool
	}{
		{"value payload", "EX0000000", "EX00000004", "4", false},
		{"empty value, bare key echo", "EX0010000", "EX0010000", "", false},
		{"multi digit payload", "EX0610300", "EX0610300123", "123", false},
		{"response for a different key", "EX0000000", "EX0010000 1", "", true},
		{"garbage response", "EX0000000", "FA00014205000", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := NewLink(&fakeExchanger{responses: map[string]string{tt.key: tt.response}}, nil)
			got, err := link.Get(tt.key)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("Get() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinkSet(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		response string
		wantCmd  string
		wantErr  bool
	}{
		{"accepted", "EX0000000", "4", "EX00000004", "EX00000004;EX0000000", false},
		{"inverted boolean code", "TC", " 1", "TC 1", "TC 1;TC", false},
		{"echo mismatch", "EX0000000", "4", "EX00000003", "EX00000004;EX0000000", true},
		{"echo of wrong key", "EX0000000", "4", "EX00100004", "EX00000004;EX0000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exchanger := &fakeExchanger{responses: map[string]string{tt.wantCmd: tt.response}}
			link := NewLink(exchanger, nil)
			err := link.Set(tt.key, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("Set() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(exchanger.commands, []string{tt.wantCmd}) {
				t.Errorf("Set() sent %v, want %v", exchanger.commands, []string{tt.wantCmd})
			}
		})
	}
}

type recordingPrimer struct {
	events *[]string
}

func (r recordingPrimer) prime(key string, enable bool) error {
	if enable {
		*r.events = append(*r.events, "prime "+key+" on")
	} else {
		*r.events = append(*r.events, "prime "+key+" off")
	}
	return nil
}

type eventExchanger struct {
	events   *[]string
	response string
}

func (e eventExchanger) Exchange(cmd string) (string, error) {
	*e.events = append(*e.events, "exchange "+cmd)
	return e.response, nil
}

func TestLinkSetPrimingOrder(t *testing.T) {
	events := []string{}
	link := NewLink(
		eventExchanger{events: &events, response: "EX00000004"},
		recordingPrimer{events: &events}.prime,
	)

	err := link.Set("EX0000000", "4")

	if err != nil {
		t.Errorf("Set() error = %v", err)
	}
	want := []string{
		"prime EX0000000 on",
		"exchange EX00000004;EX0000000",
		"prime EX0000000 off",
	}
	if !reflect.DeepEqual(events, want) {
		t.Errorf("Set() sequence = %v, want %v", events, want)
	}
}

func TestCommandClassification(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantErr  error
	}{
		{"NAK", "N", ErrNAK},
		{"command error", "?", ErrCommandError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := NewLink(&fakeExchanger{responses: map[string]string{"MR0005": tt.response}}, nil)
			_, err := link.Command("MR0005")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Command() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseIDResponse(t *testing.T) {
	tests := []struct {
		name string
		resp string
		want string
	}{
		{"TS-2000", "ID019", "019"},
		{"TS-480", "ID020", "020"},
		{"leading garbage kept off the code", "FB00007100000;ID019", "019"},
		{"too short", "ID1", ""},
		{"not an identity response", "FA00014205000", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseIDResponse(tt.resp); got != tt.want {
				t.Errorf("ParseIDResponse(%q) = %q, want %q", tt.resp, got, tt.want)
			}
		})
	}
}
