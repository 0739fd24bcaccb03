package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/spf13/pflag"

	"github.com/agentspec/agentspec/agent"
	"github.com/agentspec/agentspec/schedule"
)

// decayWindowEnd returns the timestep a decaying schedule reaches its
// final value at.
func decayWindowEnd(c schedule.Config) (int64, bool) {
	switch s := c.(type) {
	case schedule.LinearConfig:
		return s.StartTimestep + s.NumTimesteps, true
	case schedule.PolynomialConfig:
		return s.StartTimestep + s.NumTimesteps, true
	case schedule.ExponentialConfig:
		return s.StartTimestep + s.NumTimesteps, true
	}
	return 0, false
}

func runPlot(args []string) error {
	flags := pflag.NewFlagSet("plot", pflag.ContinueOnError)
	out := flags.String("out", "",
		"output PNG path (default: the document's name with .png)")
	width := flags.Int("width", 800, "plot width in pixels")
	height := flags.Int("height", 400, "plot height in pixels")
	until := flags.Int64("until", 0,
		"last timestep plotted (default: a fifth past the decay window)")
	registerToolFlags(flags)
	if err := flags.Parse(args); err != nil {
		return err
	}

	config, err := loadToolConfig(flags)
	if err != nil {
		return err
	}
	log, err := newLogger(config)
	if err != nil {
		return err
	}

	if flags.NArg() != 1 {
		return fmt.Errorf("plot: exactly one document expected")
	}
	path := flags.Arg(0)

	typed, err := agent.FromFile(path)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	explore, ok := explorationOf(typed.Config)
	if !ok || !explore.EpsilonGreedy() {
		return fmt.Errorf("plot %v: the document has no exploration "+
			"epsilon", path)
	}

	last := *until
	if last <= 0 {
		end, ok := decayWindowEnd(explore.EpsilonSpec.DecaySpec.Config)
		if !ok {
			return fmt.Errorf("plot %v: cannot infer a window for %v "+
				"schedules; pass --until", path,
				explore.EpsilonSpec.DecaySpec.Config.Type())
		}
		last = end + end/5
	}
	if last < 1 {
		last = 1
	}

	margin := 40.0
	plotW := float64(*width) - 2*margin
	plotH := float64(*height) - 2*margin
	if plotW < 1 || plotH < 1 {
		return fmt.Errorf("plot: %vx%v leaves no plot area", *width,
			*height)
	}

	samples := int(plotW)
	values := make([]float64, samples+1)
	low, high := math.Inf(1), math.Inf(-1)
	for i := 0; i <= samples; i++ {
		t := int64(float64(last) * float64(i) / float64(samples))
		value, err := explore.EpsilonAt(t)
		if err != nil {
			return fmt.Errorf("plot %v: %w", path, err)
		}
		values[i] = value
		low = math.Min(low, value)
		high = math.Max(high, value)
	}
	if high == low {
		high = low + 1
	}

	dc := gg.NewContext(*width, *height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(margin, margin, margin, float64(*height)-margin)
	dc.DrawLine(margin, float64(*height)-margin,
		float64(*width)-margin, float64(*height)-margin)
	dc.Stroke()

	dc.SetRGB(0.8, 0.2, 0.2)
	dc.SetLineWidth(2)
	for i, value := range values {
		x := margin + plotW*float64(i)/float64(samples)
		y := float64(*height) - margin - plotH*(value-low)/(high-low)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(path, filepath.Ext(path)) + ".png"
	}
	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("plot: %v", err)
	}

	log.Info().Str("plot", outPath).Int64("until", last).
		Msg("wrote schedule plot")
	return nil
}
