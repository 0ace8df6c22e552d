package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/hookparty/components"
	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/memdom"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey      = "iters"
	validateKey   = "validate"
	cpuProfileKey = "cpuprofile"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 2, 4, 8}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure render pass latency for growing counter trees",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  itersKey,
				Usage: "Passes measured per tree shape",
				Value: 100,
			},
			&cli.BoolFlag{
				Name:  validateKey,
				Usage: "Parse every anchor wrapper while rendering",
				Value: true,
			},
			&cli.StringFlag{
				Name:  cpuProfileKey,
				Usage: "Write a CPU profile to this file",
			},
		},
		Action: benchmark,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func benchmark(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(cpuProfileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Int(itersKey))
	validate := cmd.Bool(validateKey)
	log.Printf("warming up")
	if _, err := benchmarkShape(1, 1, 1, validate); err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetTitle("Render passes")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "markup", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			res, err := benchmarkShape(w, h, iters, validate)
			if err != nil {
				return fmt.Errorf("%d counters x %d factors: %w", w, h, err)
			}
			calc := res.tach.Calc()
			tbl.AppendRow(table.Row{
				fmt.Sprintf("click all: %d * %d", w, h),
				humanize.Bytes(uint64(res.bytes)),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			})
		}
	}

	tbl.Render()
	return nil
}

type shapeResult struct {
	tach  *tachymeter.Tachymeter
	bytes int
}

// benchmarkShape renders w counters with h multipliers each, then clicks
// every counter and times the pass that applies the clicks.
func benchmarkShape(w, h, iters int, validate bool) (*shapeResult, error) {
	var passErr error
	doc := memdom.New()
	frames := &memdom.FrameQueue{}
	rt := hooks.New(doc, frames,
		hooks.WithAnchorValidation(validate),
		hooks.WithErrorHandler(func(err error) { passErr = err }),
	)

	factors := make([]int, h)
	for i := range factors {
		factors[i] = i + 2
	}
	props := &components.AppProps{
		Title:    "bench",
		Counters: w,
		Factors:  factors,
	}
	if err := hooks.Render(rt, components.App, props, doc.CreateContainer("app")); err != nil {
		return nil, err
	}

	tach := tachymeter.New(&tachymeter.Config{Size: iters})
	for i := 0; i < iters; i++ {
		for _, button := range doc.FindAll(components.IncrementSelector) {
			button.Click()
		}
		start := time.Now()
		frames.Flush()
		tach.AddTime(time.Since(start))
		if passErr != nil {
			return nil, passErr
		}
	}

	return &shapeResult{
		tach:  tach,
		bytes: rt.Stats().LastBytes,
	}, nil
}
