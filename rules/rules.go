package rules

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

// RuleConfig holds the neighbourhood radius and the birth/survival neighbour counts
// evaluated by the engine. The zero value is not usable, construct with NewRuleConfig.
type RuleConfig struct {
	neighbourRadius int
	born            []int
	survive         []int
}

// NewRuleConfig returns a RuleConfig with the standard Conway rules
func NewRuleConfig() *RuleConfig {
	return &RuleConfig{
		neighbourRadius: DefaultNeighbourRadius,
		born:            slices.Clone(conwayBorn),
		survive:         slices.Clone(conwaySurvive),
	}
}

// NeighbourRadius returns the Chebyshev distance within which cells count as neighbours
func (rc *RuleConfig) NeighbourRadius() int {
	return rc.neighbourRadius
}

// BornConditions returns a sorted copy of the neighbour counts that bring a dead cell to life
func (rc *RuleConfig) BornConditions() []int {
	return slices.Clone(rc.born)
}

// SurviveConditions returns a sorted copy of the neighbour counts that keep a live cell alive
func (rc *RuleConfig) SurviveConditions() []int {
	return slices.Clone(rc.survive)
}

// SetNeighbourRadius replaces the neighbour radius. Non-positive values are rejected
// and leave the current radius in place.
func (rc *RuleConfig) SetNeighbourRadius(radius int) error {
	if radius <= 0 {
		return errors.Wrapf(utils.ErrInvalidArgument, "[SetNeighbourRadius] radius must be positive, got %d", radius)
	}
	rc.neighbourRadius = radius
	return nil
}

// SetBornConditions replaces the birth set wholesale
func (rc *RuleConfig) SetBornConditions(conditions []int) error {
	set, err := normalizeConditions(conditions)
	if err != nil {
		return errors.Wrap(err, "[SetBornConditions]")
	}
	rc.born = set
	return nil
}

// SetSurviveConditions replaces the survival set wholesale
func (rc *RuleConfig) SetSurviveConditions(conditions []int) error {
	set, err := normalizeConditions(conditions)
	if err != nil {
		return errors.Wrap(err, "[SetSurviveConditions]")
	}
	rc.survive = set
	return nil
}

// Born reports whether a dead cell with the given neighbour count comes alive
func (rc *RuleConfig) Born(neighbors int) bool {
	_, found := slices.BinarySearch(rc.born, neighbors)
	return found
}

// Survives reports whether a live cell with the given neighbour count stays alive
func (rc *RuleConfig) Survives(neighbors int) bool {
	_, found := slices.BinarySearch(rc.survive, neighbors)
	return found
}

// Apply returns the next state of a cell given its neighbour count and current state
func (rc *RuleConfig) Apply(neighbors int, alive bool) bool {
	if alive {
		return rc.Survives(neighbors)
	}
	return rc.Born(neighbors)
}

// normalizeConditions validates a condition list and returns a sorted, de-duplicated copy
func normalizeConditions(conditions []int) ([]int, error) {
	for _, n := range conditions {
		if n < 0 {
			return nil, errors.Wrapf(utils.ErrInvalidArgument, "conditions must be non-negative, got %d", n)
		}
	}
	set := slices.Clone(conditions)
	slices.Sort(set)
	return slices.Compact(set), nil
}
