package ttl

import (
	"errors"
	"strings"
	"testing"
)

func TestExpandStatesBits(t *testing.T) {
	codes := []int32{0, 1, 0x0024, 0xFFFF}
	states, err := ExpandStates(codes)
	if err != nil {
		t.Fatalf("ExpandStates: %v", err)
	}
	if len(states) != len(codes) {
		t.Fatalf("got %d state rows, want %d", len(states), len(codes))
	}

	for i, c := range codes {
		for ch := 0; ch < NumChannels; ch++ {
			want := (c>>ch)&1 != 0
			if states[i][ch] != want {
				t.Errorf("code %#x channel %d: got %v, want %v", c, ch, states[i][ch], want)
			}
		}
	}
}

func TestExpandStatesSignExtension(t *testing.T) {
	// The decoder reports unsigned 32768 (bit 15 only) as signed -32768.
	states, err := ExpandStates([]int32{-32768})
	if err != nil {
		t.Fatalf("ExpandStates: %v", err)
	}
	for ch := 0; ch < NumChannels; ch++ {
		want := ch == 15
		if states[0][ch] != want {
			t.Errorf("channel %d: got %v, want %v", ch, states[0][ch], want)
		}
	}
}

func TestExpandStatesOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		codes []int32
	}{
		{"negative", []int32{0, 5, -7}},
		{"too large", []int32{65536}},
		{"negative not sign quirk", []int32{-32767}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ExpandStates(tt.codes)
			if !errors.Is(err, ErrCodeOutOfRange) {
				t.Fatalf("got err %v, want ErrCodeOutOfRange", err)
			}
		})
	}
}

func TestExpandStatesErrorNamesEvent(t *testing.T) {
	_, err := ExpandStates([]int32{0, 1, 70000})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "event 2") {
		t.Errorf("error %q should name the offending event index", err)
	}
}

func TestExpandStatesEmpty(t *testing.T) {
	states, err := ExpandStates(nil)
	if err != nil {
		t.Fatalf("ExpandStates: %v", err)
	}
	if len(states) != 0 {
		t.Errorf("got %d rows, want 0", len(states))
	}
}
