// Command chartdemo renders a random donut chart and a month of random
// expenses as a line chart, then replays taps on the donut and reports the
// selected segments.
package main

import (
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/internal/geom"
	"github.com/gogpu/ggchart/internal/sample"
	"github.com/gogpu/ggchart/line"
	"github.com/gogpu/ggchart/pie"
	"github.com/gogpu/gpucontext"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:   "chartdemo",
		Usage:  "Render sample donut and line charts to PNG",
		Flags:  demoFlags(),
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(cCtx *cli.Context) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cCtx.String("log-level"))); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ggchart.SetLogger(logger)

	seed := cCtx.Uint64("seed")
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	logger.Info("generating data", "seed", seed)

	width := ggchart.ExactSize(cCtx.Int("width"))
	height := ggchart.UnspecifiedSize()
	if h := cCtx.Int("height"); h > 0 {
		height = ggchart.AtMostSize(h)
	}
	total := cCtx.Float64("total")

	now := time.Now()
	title := now.Format("January")
	ds := sample.PieSegments(rng, title, cCtx.Int("segments"), total/20, total)
	donut := pie.New(ggchart.WithStrokeWidth(cCtx.Float64("stroke")))
	donut.SetData(ds)
	donut.SetSize(donut.Measure(width, height))
	donut.SetSegmentClickListener(func(id string, index int, s pie.Segment) {
		fmt.Printf("%s: segment %d selected (%.2f, %s)\n", id, index, s.Value, s.Label)
	})
	if err := render(donut, cCtx.String("pie-output")); err != nil {
		return err
	}
	replayTaps(donut)

	chart := line.New()
	chart.SetData(line.FromValues(sample.MonthExpenses(rng, now, total)...))
	chart.SetSize(chart.Measure(width, height))
	return render(chart, cCtx.String("line-output"))
}

func render(c ggchart.Component, path string) error {
	w, h := c.Size()
	dc := gg.NewContext(w, h)
	defer dc.Close()
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	if err := c.Draw(dc); err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	ggchart.Logger().Info("chart saved", "path", path, "width", w, "height", h)
	return nil
}

// replayTaps taps the middle of every segment, then the hole.
func replayTaps(c *pie.Chart) {
	g := c.Geometry()
	var at time.Duration
	tap := func(x, y float64) bool {
		c.HandlePointer(pointer(gpucontext.PointerDown, x, y, at))
		at += 60 * time.Millisecond
		handled := c.HandlePointer(pointer(gpucontext.PointerUp, x, y, at))
		at += 200 * time.Millisecond
		return handled
	}

	for _, span := range pie.Spans(c.Data().Segments, pie.StartingAngle) {
		x, y := geom.PolarToCartesian(g.CenterX, g.CenterY, g.Radius, span.MidAngle())
		tap(x, y)
	}
	if !tap(g.CenterX, g.CenterY) {
		fmt.Println("tap in the hole: no segment")
	}
}

func pointer(typ gpucontext.PointerEventType, x, y float64, at time.Duration) gpucontext.PointerEvent {
	return gpucontext.PointerEvent{
		Type:        typ,
		PointerID:   1,
		X:           x,
		Y:           y,
		PointerType: gpucontext.PointerTypeMouse,
		IsPrimary:   true,
		Button:      gpucontext.ButtonLeft,
		Timestamp:   at,
	}
}
