// core/calc/cogs.go
package calc

import "fmt"

// Pair is a (front cog, rear cog) combination, identified by tooth counts.
// It is the map key for every per-combination result in this package.
type Pair struct {
	Front int
	Rear  int
}

func (p Pair) String() string { return fmt.Sprintf("%d/%d", p.Front, p.Rear) }

// Pairs returns every (front, rear) combination exactly once.
// Order is unspecified; callers that need determinism sort the result.
func Pairs(frontCogs, rearCogs []int) []Pair {
	out := make([]Pair, 0, len(frontCogs)*len(rearCogs))
	for _, f := range frontCogs {
		for _, r := range rearCogs {
			out = append(out, Pair{Front: f, Rear: r})
		}
	}
	return out
}

// checkCogs enforces the shared cog-list invariants: both lists non-empty,
// every tooth count positive. name is "front_cogs" or "rear_cogs".
func checkCogs(name string, cogs []int) error {
	if len(cogs) == 0 {
		return invalidf("%s must not be empty", name)
	}
	for _, c := range cogs {
		if c <= 0 {
			return invalidf("%s contains non-positive tooth count %d", name, c)
		}
	}
	return nil
}

func checkBothCogs(frontCogs, rearCogs []int) error {
	if err := checkCogs("front_cogs", frontCogs); err != nil {
		return err
	}
	return checkCogs("rear_cogs", rearCogs)
}
