// core/calc/capacity.go
package calc

// DerailerCapacity returns the chain take-up a rear derailer needs to
// cover the given cog set: the front tooth range plus the rear tooth
// range. A single-cog side contributes zero.
func DerailerCapacity(frontCogs, rearCogs []int) (int, error) {
	if err := checkBothCogs(frontCogs, rearCogs); err != nil {
		return 0, err
	}
	return spread(frontCogs) + spread(rearCogs), nil
}

func spread(cogs []int) int {
	min, max := cogs[0], cogs[0]
	for _, c := range cogs[1:] {
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max - min
}
