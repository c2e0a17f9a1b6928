package generation

// Connected reports whether every point is reachable from the first one
// through orthogonal steps over other points in the set. An empty set is
// connected. A set with duplicate points is not a valid tile set and
// reports false.
func Connected(points []Point) bool {
	if len(points) == 0 {
		return true
	}
	members := make(map[Point]bool, len(points))
	for _, p := range points {
		if members[p] {
			return false
		}
		members[p] = true
	}
	return len(reach(points[0], members)) == len(members)
}

// Unreachable returns the points that cannot be reached from the first one
func Unreachable(points []Point) []Point {
	if len(points) == 0 {
		return nil
	}
	members := make(map[Point]bool, len(points))
	for _, p := range points {
		members[p] = true
	}

	visited := reach(points[0], members)
	unreachable := make([]Point, 0)
	for _, p := range points {
		if !visited[p] {
			unreachable = append(unreachable, p)
		}
	}
	return unreachable
}

// reach flood fills members from start using BFS
func reach(start Point, members map[Point]bool) map[Point]bool {
	visited := map[Point]bool{start: true}
	queue := []Point{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, adj := range current.Adjacent() {
			if members[adj] && !visited[adj] {
				visited[adj] = true
				queue = append(queue, adj)
			}
		}
	}
	return visited
}
