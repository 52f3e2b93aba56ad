package services

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"drone-delivery-planner/internal/domain"
)

// ErrNoPath indicates no connecting path exists between two specific cities.
var ErrNoPath = errors.New("shortest path: no path exists")

// PathResult is a shortest path to one city together with its total distance.
type PathResult struct {
	Path     []string
	Distance float64
}

// Dijkstra computes, for every city in the network, the minimum cumulative
// distance from start and the predecessor on that shortest path.
//
// Unreachable cities keep distance = +Inf and predecessor = "". Ties between
// equal-distance frontier entries are broken by heap insertion order and are
// not a contract.
//
// Complexity: O((V + E) log V) with a lazy-decrease-key min-heap.
func Dijkstra(net *domain.Network, start string) (map[string]float64, map[string]string, error) {
	if !net.HasCity(start) {
		return nil, nil, fmt.Errorf("dijkstra: start %q: %w", start, domain.ErrCityNotFound)
	}

	names := net.CityNames()
	dist := make(map[string]float64, len(names))
	prev := make(map[string]string, len(names))
	for _, name := range names {
		dist[name] = math.Inf(1)
		prev[name] = ""
	}
	dist[start] = 0

	visited := make(map[string]bool, len(names))

	pq := make(cityQueue, 0, len(names))
	heap.Init(&pq)
	heap.Push(&pq, &cityItem{name: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*cityItem)
		current := item.name

		// Stale heap entry from lazy decrease-key; the city is already final.
		if visited[current] {
			continue
		}
		visited[current] = true

		if len(visited) == len(names) {
			break
		}

		neighbors, err := net.Neighbors(current)
		if err != nil {
			return nil, nil, fmt.Errorf("dijkstra: neighbors of %q: %w", current, err)
		}

		for neighbor, weight := range neighbors {
			if visited[neighbor] {
				continue
			}

			candidate := item.dist + weight
			if candidate < dist[neighbor] {
				dist[neighbor] = candidate
				prev[neighbor] = current
				heap.Push(&pq, &cityItem{name: neighbor, dist: candidate})
			}
		}
	}

	return dist, prev, nil
}

// ShortestPath returns the shortest path from start to end and its distance.
// When start == end the result is a single-city path with distance 0, without
// touching the rest of the graph.
func ShortestPath(net *domain.Network, start, end string) ([]string, float64, error) {
	if !net.HasCity(start) {
		return nil, 0, fmt.Errorf("shortest path: start %q: %w", start, domain.ErrCityNotFound)
	}
	if !net.HasCity(end) {
		return nil, 0, fmt.Errorf("shortest path: end %q: %w", end, domain.ErrCityNotFound)
	}

	if start == end {
		return []string{start}, 0, nil
	}

	dist, prev, err := Dijkstra(net, start)
	if err != nil {
		return nil, 0, err
	}

	if math.IsInf(dist[end], 1) {
		return nil, 0, fmt.Errorf("%w: from %q to %q", ErrNoPath, start, end)
	}

	return rebuildPath(prev, end), dist[end], nil
}

// AllShortestPaths returns the shortest path and distance from start to every
// reachable city, keyed by destination name. Unreachable cities are omitted.
func AllShortestPaths(net *domain.Network, start string) (map[string]PathResult, error) {
	dist, prev, err := Dijkstra(net, start)
	if err != nil {
		return nil, err
	}

	paths := make(map[string]PathResult, len(dist))
	for city, d := range dist {
		if math.IsInf(d, 1) {
			continue
		}
		paths[city] = PathResult{Path: rebuildPath(prev, city), Distance: d}
	}

	return paths, nil
}

// rebuildPath walks predecessors backward from end to the source, then
// reverses the result. prev[source] is "" which terminates the walk.
func rebuildPath(prev map[string]string, end string) []string {
	path := []string{end}
	for current := prev[end]; current != ""; current = prev[current] {
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// cityItem is a frontier entry: a city and its tentative distance from the source.
type cityItem struct {
	name string
	dist float64
}

// cityQueue is a min-heap of frontier entries ordered by tentative distance.
// Shorter paths push duplicate entries instead of decreasing keys; stale
// entries are skipped on pop once the city is visited.
type cityQueue []*cityItem

func (q cityQueue) Len() int            { return len(q) }
func (q cityQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q cityQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *cityQueue) Push(x interface{}) { *q = append(*q, x.(*cityItem)) }

func (q *cityQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
