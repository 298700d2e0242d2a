package breaking

// PairRuns forbids a break between the 1st and 2nd, 3rd and 4th, ... of
// every maximal run of positions bearing the property v, respecting the
// cursor's skip configuration. The even-pair predicate is non-local, so
// regional indicator pairing (GB12/13, WB15/16, LB30a) runs as a
// post-pass rather than in the main rule chain.
func PairRuns[P comparable](r *Run[P], v P) {
	r.Head()
	for {
		for r.Curr() != v {
			if !r.Walk() {
				return
			}
		}
		if !r.Walk() {
			return
		}
		for r.Prev() == v && r.Curr() == v {
			r.DoNotBreakHere()
			if !r.Walk() {
				return
			}
			if !r.Walk() {
				return
			}
		}
	}
}
