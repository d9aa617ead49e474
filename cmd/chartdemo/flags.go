package main

import "github.com/urfave/cli/v2"

func demoFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "width",
			Value:   1080,
			Usage:   "chart width in pixels",
			EnvVars: []string{"CHARTDEMO_WIDTH"},
		},
		&cli.IntFlag{
			Name:    "height",
			Usage:   "maximum chart height in pixels; 0 makes the charts square",
			EnvVars: []string{"CHARTDEMO_HEIGHT"},
		},
		&cli.Float64Flag{
			Name:    "stroke",
			Value:   100,
			Usage:   "donut ring thickness",
			EnvVars: []string{"CHARTDEMO_STROKE"},
		},
		&cli.IntFlag{
			Name:    "segments",
			Value:   6,
			Usage:   "maximum number of pie segments",
			EnvVars: []string{"CHARTDEMO_SEGMENTS"},
		},
		&cli.Float64Flag{
			Name:    "total",
			Value:   30000,
			Usage:   "amount split across the generated data",
			EnvVars: []string{"CHARTDEMO_TOTAL"},
		},
		&cli.Uint64Flag{
			Name:    "seed",
			Usage:   "random seed; 0 picks one from the clock",
			EnvVars: []string{"CHARTDEMO_SEED"},
		},
		&cli.StringFlag{
			Name:    "pie-output",
			Value:   "pie.png",
			Usage:   "the path of the rendered donut chart",
			EnvVars: []string{"CHARTDEMO_PIE_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "line-output",
			Value:   "line.png",
			Usage:   "the path of the rendered line chart",
			EnvVars: []string{"CHARTDEMO_LINE_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "log level (debug, info, warn, error)",
			EnvVars: []string{"CHARTDEMO_LOG_LEVEL"},
		},
	}
}
