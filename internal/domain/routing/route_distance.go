package routing

import "github.com/andrescamacho/zodiakos-go/internal/domain/galaxy"

// DistanceToNearestHub computes the minimum number of connection hops from
// the start star to any storage hub, treating every connection as
// traversable in both directions. Returns (0, true) when the start star is
// itself a hub and (0, false) when no hub is reachable.
//
// This is a pure read-only query over current graph state: it allocates its
// own visited set per call and never caches across mutations, so it is safe
// to run every tick for any star.
func DistanceToNearestHub(store *galaxy.Store, start int) (int, bool) {
	startStar, err := store.Star(start)
	if err != nil {
		return 0, false
	}
	if startStar.IsStorageHub() {
		return 0, true
	}

	visited := map[int]bool{start: true}
	frontier := []int{start}
	hops := 0

	for len(frontier) > 0 {
		hops++
		var next []int
		for _, id := range frontier {
			for _, neighbor := range store.Neighbors(id) {
				if visited[neighbor] {
					continue
				}
				visited[neighbor] = true

				star, err := store.Star(neighbor)
				if err != nil {
					continue
				}
				if star.IsStorageHub() {
					return hops, true
				}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}

	return 0, false
}

// EfficiencyMultiplier maps a route distance to the production multiplier.
// Stars need supply routes to stay efficient: reachable hubs give a stepped
// falloff through five hops, longer routes decay toward the same 10% floor
// an isolated star gets.
func EfficiencyMultiplier(hops int, reachable bool) float64 {
	if !reachable {
		return 0.10
	}

	switch hops {
	case 0:
		return 1.00
	case 1:
		return 0.90
	case 2:
		return 0.75
	case 3:
		return 0.60
	case 4:
		return 0.45
	case 5:
		return 0.35
	default:
		decayed := 0.30 / float64(hops-4)
		if decayed < 0.10 {
			return 0.10
		}
		return decayed
	}
}
