package main

import (
	"io"
	"text/template"
	"time"
)

// GameResult captures the outcome of a single simulated game.
type GameResult struct {
	Score  uint32
	Frames int
	Lost   bool
}

// Stats aggregates min/max/avg over a series of samples.
type Stats struct {
	Min, Max, Avg float64

	samples []float64
}

func (s *Stats) Add(v float64) {
	s.samples = append(s.samples, v)
}

func (s *Stats) Finalize() {
	if len(s.samples) == 0 {
		return
	}

	s.Min, s.Max = s.samples[0], s.samples[0]
	var total float64
	for _, v := range s.samples {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		total += v
	}
	s.Avg = total / float64(len(s.samples))
}

// Report holds the run configuration and aggregated results.
type Report struct {
	// Configuration
	Games     int
	Dt        float64
	MaxFrames int

	// Results
	Completed    int
	TotalUpdates int64
	WallTime     time.Duration
	Score        Stats
	Frames       Stats
}

func (r *Report) Add(result GameResult) {
	r.Score.Add(float64(result.Score))
	r.Frames.Add(float64(result.Frames))
	r.TotalUpdates += int64(result.Frames)
	if result.Lost {
		r.Completed++
	}
}

func (r *Report) Finalize() {
	r.Score.Finalize()
	r.Frames.Finalize()
}

const reportTemplate = `
--- Whack Simulation Report ---

Configuration:
  Games:      {{.Games}}
  Frame Time: {{printf "%.4f" .Dt}}s
  Frame Cap:  {{.MaxFrames}}

Results:
  Completed:    {{.Completed}} / {{.Games}} (reached Lose)
  Total Frames: {{.TotalUpdates}}
  Wall Time:    {{.WallTime}}

Score:
  Min: {{printf "%.0f" .Score.Min}}  Max: {{printf "%.0f" .Score.Max}}  Avg: {{printf "%.1f" .Score.Avg}}

Frames per Game:
  Min: {{printf "%.0f" .Frames.Min}}  Max: {{printf "%.0f" .Frames.Max}}  Avg: {{printf "%.1f" .Frames.Avg}}
`

func (r *Report) Render(w io.Writer) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
