// core/calc/skid.go
package calc

// SkidPatches returns, per cog combination, the number of distinct worn
// patches a skid-stopping fixed-gear rider puts on the rear tire.
//
// With f/r reduced to lowest terms a/b, one full skid cycle spreads the
// contact point over b patches. An ambidextrous skidder (either foot
// forward) doubles that, but only when a is odd: with a even, the
// half-revolution shift lands on an existing patch.
func SkidPatches(frontCogs, rearCogs []int, ambidextrous bool) (map[Pair]int, error) {
	if err := checkBothCogs(frontCogs, rearCogs); err != nil {
		return nil, err
	}
	out := make(map[Pair]int, len(frontCogs)*len(rearCogs))
	for _, p := range Pairs(frontCogs, rearCogs) {
		g := gcd(p.Front, p.Rear)
		num := p.Front / g
		den := p.Rear / g
		if ambidextrous && num%2 != 0 {
			out[p] = 2 * den
		} else {
			out[p] = den
		}
	}
	return out, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
