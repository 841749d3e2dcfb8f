package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/homestead/game"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	MaxFrames int64
	Seed      uint64
	Entities  int

	// Results
	TotalFrames   int64
	TotalTime     time.Duration
	FrameTime     Stats
	Systems       []game.SystemStats
	Actions       []ActionCount
	LiveEntities  int
	PeakEntities  int
	Throttled     int64
	Inventory     int
	ItemKinds     int
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type ActionCount struct {
	Name  string
	Count int64
}

// Stats keeps a running min, max and total so memory stays flat over long
// runs.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	Count int64
	Total time.Duration
}

func (s *Stats) Add(sample time.Duration) {
	if s.Count == 0 || sample < s.Min {
		s.Min = sample
	}
	if sample > s.Max {
		s.Max = sample
	}
	s.Total += sample
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

// Collect copies the end state of the run into the report.
func (r *Report) Collect(g *game.Game, d *driver) {
	r.Systems = g.Stats().Systems
	r.LiveEntities = g.World().Pool.Len()
	r.PeakEntities = max(d.peak, r.LiveEntities)
	r.Throttled = d.throttled
	r.Inventory = g.World().Inventory.Total()
	r.ItemKinds = g.World().Inventory.Kinds()
	for a, n := range d.counts {
		r.Actions = append(r.Actions, ActionCount{Name: actionNames[a], Count: n})
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Homestead Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Limit:** {{if .MaxFrames}}{{.MaxFrames}}{{else}}none{{end}}
- **Seed:** {{.Seed}}
- **Initial Entities:** {{.Entities}}

## Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
- **Live Entities:** {{.LiveEntities}} (peak {{.PeakEntities}})
- **Building Actions Skipped (pool near full):** {{.Throttled}}
- **Items Held:** {{.Inventory}} across {{.ItemKinds}} kinds

## Systems
{{range .Systems}}- {{.Name}}: avg {{.AvgDuration}}, max {{.MaxDuration}}, runs {{.ExecutionCount}}
{{end}}
## Input
{{range .Actions}}- {{.Name}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:  {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc: {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:      {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
