package aoc

// DisjointSet is a union-find forest over the elements 0..n-1, using path
// compression and union by size.
type DisjointSet struct {
	parent []int
	size   []int
	groups int
}

// NewDisjointSet returns a forest where each of the n elements is its own
// group.
func NewDisjointSet(n int) *DisjointSet {
	ds := &DisjointSet{
		parent: make([]int, n),
		size:   make([]int, n),
		groups: n,
	}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}
	return ds
}

// Len returns the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent)
}

// NumGroups returns the number of disjoint groups.
func (ds *DisjointSet) NumGroups() int {
	return ds.groups
}

// Find returns the root of the group containing x.
func (ds *DisjointSet) Find(x int) int {
	root := x
	for ds.parent[root] != root {
		root = ds.parent[root]
	}
	for ds.parent[x] != root {
		x, ds.parent[x] = ds.parent[x], root
	}
	return root
}

// Union joins the groups containing x and y. It reports whether two distinct
// groups were merged; joining elements already in one group does nothing.
func (ds *DisjointSet) Union(x, y int) bool {
	rx, ry := ds.Find(x), ds.Find(y)
	if rx == ry {
		return false
	}
	if ds.size[rx] < ds.size[ry] {
		rx, ry = ry, rx
	}
	ds.parent[ry] = rx
	ds.size[rx] += ds.size[ry]
	ds.groups--
	return true
}

// Connected reports whether x and y are in the same group.
func (ds *DisjointSet) Connected(x, y int) bool {
	return ds.Find(x) == ds.Find(y)
}

// Size returns the size of the group containing x.
func (ds *DisjointSet) Size(x int) int {
	return ds.size[ds.Find(x)]
}

// Groups returns the size of each group keyed by its root.
func (ds *DisjointSet) Groups() map[int]int {
	out := make(map[int]int, ds.groups)
	for i := range ds.parent {
		if r := ds.Find(i); r == i {
			out[r] = ds.size[r]
		}
	}
	return out
}
