package maze

// neighbourSteps are the unit moves between adjacent cells.
var neighbourSteps = [4]CellPosition{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Path returns the shortest run of open cells from start to end, both included.
// It returns nil when either end is a wall or the two are not connected.
func (g Grid) Path(start, end CellPosition) []CellPosition {
	if g.At(start.X, start.Y) != Open || g.At(end.X, end.Y) != Open {
		return nil
	}

	queue := []CellPosition{start}
	cameFrom := map[CellPosition]CellPosition{}
	visited := map[CellPosition]struct{}{start: {}}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			path := []CellPosition{curr}
			for curr != start {
				curr = cameFrom[curr]
				path = append(path, curr)
			}
			reverse(path)
			return path
		}

		for _, d := range neighbourSteps {
			next := curr.Add(d)
			if _, seen := visited[next]; seen || g.At(next.X, next.Y) != Open {
				continue
			}
			visited[next] = struct{}{}
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}

	return nil
}

// Reachable returns every open cell connected to start.
func (g Grid) Reachable(start CellPosition) map[CellPosition]struct{} {
	visited := map[CellPosition]struct{}{}
	if g.At(start.X, start.Y) != Open {
		return visited
	}

	stack := []CellPosition{start}
	visited[start] = struct{}{}
	for len(stack) > 0 {
		cell := pop(&stack)
		for _, d := range neighbourSteps {
			next := cell.Add(d)
			if _, seen := visited[next]; seen || g.At(next.X, next.Y) != Open {
				continue
			}
			visited[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	return visited
}

// pop removes and returns the last element of a stack of CellPositions.
func pop(s *[]CellPosition) CellPosition {
	lastIndex := len(*s) - 1
	popped := (*s)[lastIndex]
	*s = (*s)[:lastIndex]
	return popped
}

func reverse(p []CellPosition) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}
