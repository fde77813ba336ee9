// Package game ties a grid and a rule set to the play/stop/reset controls of a front-end.
package game

import (
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// Game owns the board for one run. It is not safe for concurrent use; front-ends
// funnel input and ticks through a single goroutine.
type Game struct {
	grid  *model.Grid
	rules *rules.RuleConfig
	pool  *model.GridPool
	stats *utils.Stats

	playing    bool
	stagnant   bool
	generation int
	lastStep   time.Time
}

// Status is a snapshot of the run for display
type Status struct {
	Generation int
	Population int
	Playing    bool
	Stagnant   bool
	Rule       string
}

// New wraps an existing grid and rule set. The game starts stopped.
func New(grid *model.Grid, rc *rules.RuleConfig) *Game {
	g := &Game{
		grid:  grid,
		rules: rc,
		pool:  model.NewGridPool(),
		stats: utils.NewStats(),
	}
	g.stats.Record(grid.GetGridHash())
	return g
}

// NewFromConfig builds the grid, rule set and initial pattern described by cfg
func NewFromConfig(cfg utils.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc, err := BuildRules(cfg)
	if err != nil {
		return nil, err
	}

	grid, err := model.NewGrid(cfg.Rows, cfg.Columns)
	if err != nil {
		return nil, err
	}

	if cfg.RandomDensity > 0 {
		model.Randomize(grid, cfg.RandomDensity, rand.New(rand.NewPCG(uint64(cfg.Seed), 0)))
	}
	if cfg.Pattern != "" {
		if err = model.PlacePatternCentered(grid, cfg.Pattern); err != nil {
			return nil, errors.Wrap(err, "[NewFromConfig] failed to place pattern")
		}
	}

	return New(grid, rc), nil
}

// BuildRules returns the rule set named by cfg.Rule, or assembled from the
// radius/born/survive fields when no rule string is given
func BuildRules(cfg utils.Config) (*rules.RuleConfig, error) {
	if cfg.Rule != "" {
		return rules.Parse(cfg.Rule)
	}

	rc := rules.NewRuleConfig()
	if err := rc.SetNeighbourRadius(cfg.NeighbourRadius); err != nil {
		return nil, err
	}
	if err := rc.SetBornConditions(cfg.Born); err != nil {
		return nil, err
	}
	if err := rc.SetSurviveConditions(cfg.Survive); err != nil {
		return nil, err
	}
	return rc, nil
}

func (g *Game) Grid() *model.Grid { return g.grid }
func (g *Game) Rules() *rules.RuleConfig { return g.rules }
func (g *Game) Stats() *utils.Stats { return g.stats }
func (g *Game) Generation() int { return g.generation }
func (g *Game) Playing() bool { return g.playing }

// Play starts advancing the board on each Tick
func (g *Game) Play() {
	g.playing = true
	g.lastStep = time.Time{}
}

// Stop pauses the board; Tick becomes a no-op
func (g *Game) Stop() {
	g.playing = false
}

// Reset stops the run and kills every cell
func (g *Game) Reset() {
	g.Stop()
	model.Reset(g.grid)
	g.generation = 0
	g.stagnant = false
	g.stats.ResetHistory()
	g.stats.Record(g.grid.GetGridHash())
}

// Toggle flips a cell in response to user input
func (g *Game) Toggle(row, column int) error {
	if err := g.grid.Toggle(row, column); err != nil {
		return err
	}
	g.stagnant = false
	g.stats.ResetHistory()
	g.stats.Record(g.grid.GetGridHash())
	return nil
}

// Tick advances one generation while playing and reports whether it did
func (g *Game) Tick() bool {
	if !g.playing {
		return false
	}
	g.StepOnce()
	return true
}

// StepOnce advances exactly one generation regardless of the play state
func (g *Game) StepOnce() {
	model.Step(g.grid, g.rules, g.pool)
	g.generation++

	now := time.Now()
	var elapsed time.Duration
	if !g.lastStep.IsZero() {
		elapsed = now.Sub(g.lastStep)
	}
	g.lastStep = now

	population := g.grid.CountLivingCells()
	g.stats.Update(g.generation, population, elapsed)

	hash := g.grid.GetGridHash()
	g.stagnant = g.stats.IsStagnant(hash)
	g.stats.Record(hash)
}

// Status returns a snapshot for status lines
func (g *Game) Status() Status {
	return Status{
		Generation: g.generation,
		Population: g.grid.CountLivingCells(),
		Playing:    g.playing,
		Stagnant:   g.stagnant,
		Rule:       g.rules.String(),
	}
}
