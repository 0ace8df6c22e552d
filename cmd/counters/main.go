package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/hookparty/components"
	"github.com/delaneyj/hookparty/hooks"
	"github.com/delaneyj/hookparty/memdom"
	"github.com/delaneyj/hookparty/pkg/frameloop"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	configKey   = "config"
	titleKey    = "title"
	countersKey = "counters"
	clickKey    = "click"
	intervalKey = "interval"
	markupKey   = "markup"
	verboseKey  = "verbose"
)

type config struct {
	Title         string        `yaml:"title"`
	Counters      int           `yaml:"counters"`
	Clicks        []int         `yaml:"clicks"`
	FrameInterval time.Duration `yaml:"frame_interval"`
}

func main() {
	cmd := &cli.Command{
		Name:  "counters",
		Usage: "Render the counters app into an in-memory document and click through it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configKey,
				Usage: "YAML file with title, counters, clicks and frame_interval",
			},
			&cli.StringFlag{
				Name:  titleKey,
				Usage: "App title",
				Value: "Title",
			},
			&cli.IntFlag{
				Name:  countersKey,
				Usage: "Number of counters to render",
				Value: 2,
			},
			&cli.IntSliceFlag{
				Name:  clickKey,
				Usage: "Index of a counter to click, repeatable",
			},
			&cli.DurationFlag{
				Name:  intervalKey,
				Usage: "Frame interval",
				Value: frameloop.DefaultInterval,
			},
			&cli.BoolFlag{
				Name:  markupKey,
				Usage: "Print the committed markup",
			},
			&cli.BoolFlag{
				Name:  verboseKey,
				Usage: "Log every render pass",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(cmd *cli.Command) (*config, error) {
	cfg := &config{
		Title:         cmd.String(titleKey),
		Counters:      int(cmd.Int(countersKey)),
		FrameInterval: cmd.Duration(intervalKey),
	}
	for _, c := range cmd.IntSlice(clickKey) {
		cfg.Clicks = append(cfg.Clicks, int(c))
	}

	path := cmd.String(configKey)
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	fromFile := &config{}
	if err := yaml.Unmarshal(b, fromFile); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// flags given on the command line win over the file
	if fromFile.Title != "" && !cmd.IsSet(titleKey) {
		cfg.Title = fromFile.Title
	}
	if fromFile.Counters > 0 && !cmd.IsSet(countersKey) {
		cfg.Counters = fromFile.Counters
	}
	if len(fromFile.Clicks) > 0 && !cmd.IsSet(clickKey) {
		cfg.Clicks = fromFile.Clicks
	}
	if fromFile.FrameInterval > 0 && !cmd.IsSet(intervalKey) {
		cfg.FrameInterval = fromFile.FrameInterval
	}
	return cfg, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	for _, c := range cfg.Clicks {
		if c < 0 || c >= cfg.Counters {
			return fmt.Errorf("click target %d out of range, have %d counters", c, cfg.Counters)
		}
	}

	logger := zap.NewNop()
	if cmd.Bool(verboseKey) {
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
		defer logger.Sync()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var passErr error
	doc := memdom.New()
	loop := frameloop.New(cfg.FrameInterval)
	rt := hooks.New(doc, loop,
		hooks.WithLogger(logger),
		hooks.WithErrorHandler(func(err error) {
			passErr = err
			cancel()
		}),
	)

	container := doc.CreateContainer("app")
	props := &components.AppProps{
		Title:    cfg.Title,
		Counters: cfg.Counters,
	}
	start := time.Now()
	if err := hooks.Render(rt, components.App, props, container); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	go func() {
		for _, target := range cfg.Clicks {
			loop.Dispatch(func() {
				buttons := doc.FindAll(components.IncrementSelector)
				buttons[target].Click()
				logger.Debug("click", zap.Int("counter", target))
			})
			if !wait(ctx, 2*cfg.FrameInterval) {
				return
			}
		}
		if wait(ctx, 2*cfg.FrameInterval) {
			loop.Dispatch(cancel)
		}
	}()

	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if passErr != nil {
		return passErr
	}

	if cmd.Bool(markupKey) {
		fmt.Println(container.InnerHTML())
	}

	stats := rt.Stats()
	counts := doc.FindAll(".count")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"counter", "value"})
	for i, c := range counts {
		table.Append([]string{fmt.Sprint(i), c.TextContent()})
	}
	table.SetFooter([]string{"passes", humanize.Comma(int64(stats.Passes))})
	table.Render()

	summary := tablewriter.NewWriter(os.Stdout)
	summary.SetHeader([]string{"mutations", "effects", "anchors", "markup", "digest", "last pass", "elapsed"})
	summary.Append([]string{
		humanize.Comma(int64(stats.Mutations)),
		humanize.Comma(int64(stats.Effects)),
		fmt.Sprint(stats.LastAnchors),
		humanize.Bytes(uint64(stats.LastBytes)),
		fmt.Sprintf("%016x", stats.LastDigest),
		fmt.Sprint(stats.LastDuration),
		fmt.Sprint(time.Since(start).Round(time.Millisecond)),
	})
	summary.Render()
	return nil
}

// wait sleeps for d and reports false if ctx ended first.
func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
