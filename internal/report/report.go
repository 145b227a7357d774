// Package report renders an HTML overview of a loaded recording using
// go-echarts: a pulse-count bar chart over all 16 channels plus a state
// timeline per active channel.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sweeney/nev-ttl/internal/ttl"
)

// Render writes the full report page for one recording to w.
func Render(w io.Writer, res *ttl.Result, source string) error {
	page := components.NewPage()
	page.AddCharts(pulseCountBar(res, source))

	for _, ch := range res.ActiveChannels() {
		page.AddCharts(channelTimeline(res, ch))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func pulseCountBar(res *ttl.Result, source string) *charts.Bar {
	x := make([]string, ttl.NumChannels)
	y := make([]opts.BarData, ttl.NumChannels)
	for ch := 0; ch < ttl.NumChannels; ch++ {
		x[ch] = strconv.Itoa(ch)
		y[ch] = opts.BarData{Value: len(res.Pulses[ch])}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "TTL pulse counts",
			Subtitle: fmt.Sprintf("source=%s events=%d unit=%s", source, len(res.Times), res.Unit),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "channel"}),
	)
	bar.SetXAxis(x).
		AddSeries("pulses", y,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

// channelTimeline draws one channel's high intervals as a square wave:
// each pulse contributes a rising edge at its start and a falling edge at
// its end.
func channelTimeline(res *ttl.Result, ch int) *charts.Line {
	var data []opts.LineData
	point := func(t, v float64) {
		data = append(data, opts.LineData{Value: []interface{}{t, v}})
	}

	if len(res.Times) > 0 {
		point(res.Times[0], 0)
	}
	for _, p := range res.Pulses[ch] {
		point(p.Start, 0)
		point(p.Start, 1)
		point(p.End, 1)
		point(p.End, 0)
	}
	if len(res.Times) > 0 {
		point(res.Times[len(res.Times)-1], 0)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "220px"}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Channel %d (%d pulses)", ch, len(res.Pulses[ch])),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: string(res.Unit)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1.2}),
	)
	line.AddSeries(fmt.Sprintf("ch%d", ch), data)
	return line
}
