package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	Duration   time.Duration
	Nodes      int // Positions visited, root children included
	Leaves     int // Positions scored by the evaluator
	Passes     int // Forced passes inside the tree
	Score      int // Value of the chosen move
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	Phase  string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	BlackDiscs     int
	WhiteDiscs     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
	Fallbacks      int // Illegal answers replaced by the engine
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddPass()
	Complete(score int) SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	passes     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth, goroutines int) {
	m.startTime = time.Now()
	m.depth = depth
	m.goroutines = goroutines
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.passes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddPass() {
	m.passes.Add(1)
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:      m.depth,
		Goroutines: m.goroutines,
		Duration:   time.Since(m.startTime),
		Nodes:      int(m.nodes.Load()),
		Leaves:     int(m.leaves.Load()),
		Passes:     int(m.passes.Load()),
		Score:      score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth, goroutines int)     {}
func (m *dummyCollector) AddNode()                        {}
func (m *dummyCollector) AddLeaf()                        {}
func (m *dummyCollector) AddPass()                        {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{Score: score} }
