package main

import (
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// exportChart renders the given sample window of a real source into an HTML
// line chart.
func exportChart(name string, source SampleSource[float64], sel Range[int64]) error {
	buf := source.Get(sel.Min, sel.Max)

	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Demodulated trace",
		Subtitle: name,
	}))
	data := make([]opts.LineData, len(buf))
	for i := 0; i < len(buf); i++ {
		data[i] = opts.LineData{Value: buf[i]}
	}
	line.SetXAxis(rng(len(buf))).AddSeries("demod", data)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return line.Render(f)
}

func rng(n int) []int {
	r := make([]int, n)
	for i := 0; i < n; i++ {
		r[i] = i
	}
	return r
}
