package constellation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"
)

// MinCycleLength is the smallest loop of stars that qualifies as a
// constellation.
const MinCycleLength = 3

// DetectCycles enumerates closed loops of at least minLength stars in the
// graph's undirected adjacency view. Cycles that are set-equal to an earlier
// find are discarded, keeping the first-found ordering.
//
// The search is a depth-first walk from every unvisited star on an explicit
// stack, so recursion depth never threatens the goroutine stack on large
// graphs. A step never backtracks along the edge it just used (the immediate
// predecessor is skipped as a next hop); any other return to a star already
// on the path ends that branch, except a return to the path's start, which
// records the path as a cycle.
func DetectCycles(store *galaxy.Store, minLength int) [][]int {
	if minLength < MinCycleLength {
		minLength = MinCycleLength
	}

	var cycles [][]int
	visited := make(map[int]bool)

	for _, star := range store.Stars() {
		if !visited[star.ID()] {
			cycles = append(cycles, cyclesFrom(store, star.ID(), minLength, visited)...)
		}
	}

	return dedupeCycles(cycles)
}

// frame is one level of the explicit DFS stack; the stack as a whole is the
// current path.
type frame struct {
	node      int
	parent    int
	neighbors []int
	next      int
}

func cyclesFrom(store *galaxy.Store, start, minLength int, visited map[int]bool) [][]int {
	var cycles [][]int

	stack := []frame{{node: start, parent: -1, neighbors: store.Neighbors(start)}}
	onPath := map[int]bool{start: true}
	visited[start] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.next >= len(top.neighbors) {
			onPath[top.node] = false
			stack = stack[:len(stack)-1]
			continue
		}

		candidate := top.neighbors[top.next]
		top.next++

		if candidate == top.parent {
			continue
		}

		if candidate == start && len(stack) >= minLength {
			path := make([]int, len(stack))
			for i, f := range stack {
				path[i] = f.node
			}
			cycles = append(cycles, path)
			continue
		}

		if !onPath[candidate] {
			visited[candidate] = true
			onPath[candidate] = true
			stack = append(stack, frame{
				node:      candidate,
				parent:    top.node,
				neighbors: store.Neighbors(candidate),
			})
		}
	}

	return cycles
}

// dedupeCycles drops cycles whose member set matches an earlier cycle,
// regardless of traversal order or direction.
func dedupeCycles(cycles [][]int) [][]int {
	seen := make(map[string]bool, len(cycles))
	unique := cycles[:0]

	for _, cycle := range cycles {
		key := memberKey(cycle)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, cycle)
	}

	return unique
}

func memberKey(members []int) string {
	sorted := make([]int, len(members))
	copy(sorted, members)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, id := range sorted {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}
