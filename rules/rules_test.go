package rules

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

func TestNewRuleConfigDefaults(t *testing.T) {
	rc := NewRuleConfig()
	if rc.NeighbourRadius() != 1 {
		t.Fatalf("radius = %d, want 1", rc.NeighbourRadius())
	}
	if got := rc.BornConditions(); !slices.Equal(got, []int{3}) {
		t.Fatalf("born = %v, want [3]", got)
	}
	if got := rc.SurviveConditions(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("survive = %v, want [2 3]", got)
	}
}

func TestDefaultsMatchConway(t *testing.T) {
	rc := NewRuleConfig()
	for n := 0; n <= 8; n++ {
		for _, alive := range []bool{true, false} {
			if got, want := rc.Apply(n, alive), ApplyConwayRules(n, alive); got != want {
				t.Fatalf("Apply(%d, %v) = %v, want %v", n, alive, got, want)
			}
		}
	}
}

func TestSetNeighbourRadius(t *testing.T) {
	rc := NewRuleConfig()
	if err := rc.SetNeighbourRadius(3); err != nil {
		t.Fatalf("SetNeighbourRadius(3): %v", err)
	}
	if rc.NeighbourRadius() != 3 {
		t.Fatalf("radius = %d, want 3", rc.NeighbourRadius())
	}

	for _, bad := range []int{0, -1} {
		err := rc.SetNeighbourRadius(bad)
		if !errors.Is(err, utils.ErrInvalidArgument) {
			t.Fatalf("SetNeighbourRadius(%d) err = %v, want ErrInvalidArgument", bad, err)
		}
		if rc.NeighbourRadius() != 3 {
			t.Fatalf("rejected radius %d changed radius to %d", bad, rc.NeighbourRadius())
		}
	}
}

func TestSetConditionsRejectsNegative(t *testing.T) {
	rc := NewRuleConfig()

	if err := rc.SetBornConditions([]int{-1}); !errors.Is(err, utils.ErrInvalidArgument) {
		t.Fatalf("SetBornConditions([-1]) err = %v, want ErrInvalidArgument", err)
	}
	if err := rc.SetSurviveConditions([]int{2, -3}); !errors.Is(err, utils.ErrInvalidArgument) {
		t.Fatalf("SetSurviveConditions([2 -3]) err = %v, want ErrInvalidArgument", err)
	}

	if got := rc.BornConditions(); !slices.Equal(got, []int{3}) {
		t.Fatalf("born changed to %v after rejected update", got)
	}
	if got := rc.SurviveConditions(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("survive changed to %v after rejected update", got)
	}
}

func TestSetConditionsReplacesWholesale(t *testing.T) {
	rc := NewRuleConfig()
	if err := rc.SetBornConditions([]int{6, 3, 6}); err != nil {
		t.Fatalf("SetBornConditions: %v", err)
	}
	if got := rc.BornConditions(); !slices.Equal(got, []int{3, 6}) {
		t.Fatalf("born = %v, want [3 6]", got)
	}

	if err := rc.SetSurviveConditions(nil); err != nil {
		t.Fatalf("SetSurviveConditions(nil): %v", err)
	}
	if rc.Survives(2) || rc.Survives(3) {
		t.Fatal("empty survive set still keeps cells alive")
	}
	if !rc.Born(6) || rc.Born(4) {
		t.Fatal("born lookup does not match [3 6]")
	}
}

func TestSetConditionsCopiesInput(t *testing.T) {
	rc := NewRuleConfig()
	input := []int{1, 2}
	if err := rc.SetBornConditions(input); err != nil {
		t.Fatalf("SetBornConditions: %v", err)
	}
	input[0] = 7
	if rc.Born(7) || !rc.Born(1) {
		t.Fatal("config shares memory with the caller's slice")
	}

	out := rc.BornConditions()
	out[0] = 8
	if rc.Born(8) {
		t.Fatal("config shares memory with the returned slice")
	}
}
