package rules

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/utils"
)

/*
Parse builds a RuleConfig from a rule string.

Accepted forms:

	B3/S23       birth and survival digit lists, any order, case-insensitive
	B3/S23/R2    same with an explicit neighbour radius
	B3,10/S2,3   comma-separated counts for neighbourhoods with more than nine cells
	B10,/S2,3    a lone count above nine keeps a trailing comma
	23/3         legacy survival/birth notation

Segments that are left out keep the Conway defaults.
*/
func Parse(rule string) (*RuleConfig, error) {
	rc := NewRuleConfig()
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return nil, errors.Wrap(utils.ErrInvalidArgument, "[Parse] empty rule string")
	}

	segments := strings.Split(rule, "/")
	if len(segments) == 2 && isCountList(segments[0]) && isCountList(segments[1]) {
		segments = []string{"S" + segments[0], "B" + segments[1]}
	}

	for _, segment := range segments {
		if segment == "" {
			return nil, errors.Wrapf(utils.ErrInvalidArgument, "[Parse] empty segment in %q", rule)
		}
		body := segment[1:]
		var err error
		switch segment[0] {
		case 'B', 'b':
			var counts []int
			if counts, err = parseCounts(body); err == nil {
				err = rc.SetBornConditions(counts)
			}
		case 'S', 's':
			var counts []int
			if counts, err = parseCounts(body); err == nil {
				err = rc.SetSurviveConditions(counts)
			}
		case 'R', 'r':
			var radius int
			if radius, err = strconv.Atoi(body); err == nil {
				err = rc.SetNeighbourRadius(radius)
			} else {
				err = errors.Wrapf(utils.ErrInvalidArgument, "bad radius %q", body)
			}
		default:
			err = errors.Wrapf(utils.ErrInvalidArgument, "unknown segment %q", segment)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "[Parse] failed to parse rule: %+v", rule)
		}
	}
	return rc, nil
}

// String renders the config in B/S notation, appending the radius when it is not 1
func (rc *RuleConfig) String() string {
	var sb strings.Builder
	sb.WriteString("B")
	sb.WriteString(formatCounts(rc.born))
	sb.WriteString("/S")
	sb.WriteString(formatCounts(rc.survive))
	if rc.neighbourRadius != DefaultNeighbourRadius {
		sb.WriteString("/R")
		sb.WriteString(strconv.Itoa(rc.neighbourRadius))
	}
	return sb.String()
}

func isCountList(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func parseCounts(body string) ([]int, error) {
	if strings.Contains(body, ",") {
		// a single wide count is written with a trailing comma, e.g. B10,
		fields := strings.Split(strings.TrimSuffix(body, ","), ",")
		counts := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, errors.Wrapf(utils.ErrInvalidArgument, "bad count %q", f)
			}
			counts = append(counts, n)
		}
		return counts, nil
	}

	counts := make([]int, 0, len(body))
	for _, r := range body {
		if r < '0' || r > '9' {
			return nil, errors.Wrapf(utils.ErrInvalidArgument, "bad count %q", r)
		}
		counts = append(counts, int(r-'0'))
	}
	return counts, nil
}

func formatCounts(counts []int) string {
	wide := false
	for _, n := range counts {
		if n > 9 {
			wide = true
			break
		}
	}

	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	if wide {
		if len(parts) == 1 {
			return parts[0] + ","
		}
		return strings.Join(parts, ",")
	}
	return strings.Join(parts, "")
}
