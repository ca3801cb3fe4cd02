package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {

	var fileName string
	var outName string
	var rate float64
	var fftSize, zoomLevel int
	var start, end int64
	var gain float64
	var logLevel string

	app := &cli.App{
		Name:                 "iqview",
		Usage:                "Windowed multi-track viewer for I/Q recordings",
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Logrus log level",
				Value:       "info",
				Destination: &logLevel,
			},
		},
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "view",
				Aliases: []string{"v"},
				Usage:   "Open a recording in the viewer",
				Action: func(cCtx *cli.Context) error {
					fmt.Printf("Handling file name: %s\n", fileName)
					MainLoop(fileName, rate, fftSize, zoomLevel)
					return nil
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "Recording to view (.cf32, .cs16 or .wav)",
						Destination: &fileName,
						Required:    true,
					},
					&cli.Float64Flag{
						Name:        "rate",
						Aliases:     []string{"r"},
						Usage:       "Sample rate of raw recordings, in samples/s",
						Value:       1e6,
						Destination: &rate,
					},
					&cli.IntFlag{
						Name:        "fft",
						Usage:       "Initial FFT size",
						Value:       1024,
						Destination: &fftSize,
					},
					&cli.IntFlag{
						Name:        "zoom",
						Usage:       "Initial zoom level",
						Value:       1,
						Destination: &zoomLevel,
					},
				},
			},
			{
				Name:    "export",
				Aliases: []string{"e"},
				Usage:   "Run the demodulation chain over a range and write an HTML chart",
				Action: func(cCtx *cli.Context) error {
					fmt.Printf("Handling file name: %s\n", fileName)
					source, err := loadSource(fileName, rate)
					if err != nil {
						return err
					}
					demod := NewQuadDemodSource(source, gain, false)
					if end == 0 {
						end = demod.Count()
					}
					return exportChart(outName, demod, Range[int64]{start, end})
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "file",
						Aliases:     []string{"f"},
						Usage:       "Recording to demodulate",
						Destination: &fileName,
						Required:    true,
					},
					&cli.StringFlag{
						Name:        "out",
						Aliases:     []string{"o"},
						Usage:       "Output HTML file",
						Value:       "demod.html",
						Destination: &outName,
					},
					&cli.Float64Flag{
						Name:        "rate",
						Aliases:     []string{"r"},
						Usage:       "Sample rate of raw recordings, in samples/s",
						Value:       1e6,
						Destination: &rate,
					},
					&cli.Int64Flag{
						Name:        "start",
						Usage:       "First sample of the exported range",
						Destination: &start,
					},
					&cli.Int64Flag{
						Name:        "end",
						Usage:       "One past the last sample of the exported range (0 = end of file)",
						Destination: &end,
					},
					&cli.Float64Flag{
						Name:        "gain",
						Usage:       "Demodulator gain",
						Value:       5,
						Destination: &gain,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
