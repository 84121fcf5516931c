// Package planner implements the route-planning core: the permutation
// trie and the RoutePlanner that walks it to find the cheapest feasible
// route for one cart and up to a configured number of jobs.
package planner

// Combinations enumerates every way to choose selectN indices from
// [0, fromSet) in lexicographic order (ascending start index, then
// ascending end index) — e.g. Combinations(2, 8) yields 28 pairs. Ported
// from original_source/pyRoute13/api/planner/combinations.py, which
// generates eagerly via recursion rather than true generators; Go has no
// lazy generator either, so this returns the full slice, matching
// JobAssigner's only use of it.
func Combinations(selectN, fromSet int) [][]int {
	if selectN == 0 {
		return nil
	}
	var out [][]int
	var sel []int
	generateCombinations(selectN, 0, fromSet, &sel, &out)
	return out
}

func generateCombinations(remainingToChoose, start, end int, sel *[]int, out *[][]int) {
	if remainingToChoose == 0 {
		cp := append([]int(nil), (*sel)...)
		*out = append(*out, cp)
		return
	}
	remainingAfterThis := remainingToChoose - 1
	count := start
	for count < end-remainingAfterThis {
		*sel = append(*sel, count)
		count++
		generateCombinations(remainingAfterThis, count, end, sel, out)
		*sel = (*sel)[:len(*sel)-1]
	}
}
