package web

import (
	"encoding/json"
	"time"
)

// ResultJSON is the top-level JSON envelope for pulse output.
type ResultJSON struct {
	Recording RecordingJSON `json:"recording"`
}

// RecordingJSON contains the recording details.
type RecordingJSON struct {
	Source   string        `json:"source"`
	TimeUnit string        `json:"time_unit"`
	Events   int           `json:"events"`
	Span     float64       `json:"span"`
	LoadedAt string        `json:"loaded_at"`
	Channels []ChannelJSON `json:"channels"`
}

// ChannelJSON is one active channel's pulse list.
type ChannelJSON struct {
	Channel int          `json:"channel"`
	Pulses  [][2]float64 `json:"pulses"`
}

func buildResult(view View) ResultJSON {
	res := view.Result

	// Only active channels appear; an absent channel means no pulses.
	channels := []ChannelJSON{}
	for _, ch := range res.ActiveChannels() {
		pulses := make([][2]float64, len(res.Pulses[ch]))
		for i, p := range res.Pulses[ch] {
			pulses[i] = [2]float64{p.Start, p.End}
		}
		channels = append(channels, ChannelJSON{Channel: ch, Pulses: pulses})
	}

	return ResultJSON{
		Recording: RecordingJSON{
			Source:   view.Source,
			TimeUnit: string(res.Unit),
			Events:   len(res.Times),
			Span:     res.Span(),
			LoadedAt: view.LoadedAt.UTC().Format(time.RFC3339),
			Channels: channels,
		},
	}
}

// FormatResult renders the JSON document for a view. It is also used by
// the extract command's --json output.
func FormatResult(view View) []byte {
	b, err := json.MarshalIndent(buildResult(view), "", "  ")
	if err != nil {
		// Only reachable on a marshal bug; the envelope has no error paths.
		return []byte(`{"error":"marshal failure"}`)
	}
	return b
}
