package planner

// TrieNode is one node of the precomputed permutation trie: Key is an
// action-slot index; Children enumerates every index that may legally
// come next.
type TrieNode struct {
	Key      int
	Children []*TrieNode
}

// BuildTrie precomputes every ordering of indices [0, n) subject to: index
// k may appear only after index k-1 has appeared, for odd k (pickup/
// suspend before its matching dropoff/terminator). Ported directly from
// original_source/pyRoute13/api/planner/trie.py's build_trie(head, tail).
func BuildTrie(n int) []*TrieNode {
	tail := make([]int, n)
	for i := range tail {
		tail[i] = i
	}
	return buildTrie(nil, tail)
}

func buildTrie(head, tail []int) []*TrieNode {
	var children []*TrieNode

	for _, key := range tail {
		if key%2 == 0 || contains(head, key-1) {
			newHead := append(append([]int(nil), head...), key)
			newTail := removeValue(tail, key)
			children = append(children, &TrieNode{
				Key:      key,
				Children: buildTrie(newHead, newTail),
			})
		}
	}

	return children
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func removeValue(xs []int, v int) []int {
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
