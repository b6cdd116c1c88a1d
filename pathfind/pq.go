// SPDX-License-Identifier: MIT

package pathfind

import "github.com/katalvlaran/hexpath/hex"

// nodeItem is a frontier entry: a tile, the cost spent reaching it and its
// priority key. seq records discovery order so that equal keys pop in the
// order they were pushed, which keeps route shapes stable across runs.
type nodeItem struct {
	loc  hex.Location
	cost float64 // accumulated cost g
	key  float64 // g for Paths, g+h for AStar
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (key, seq).
// Decrease-key is lazy: an improved tile is pushed again and the outdated
// entry is skipped when popped.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by key, then by discovery sequence.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].key != pq[j].key {
		return pq[i].key < pq[j].key
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
