package detection

import "fmt"

// GroupAdjacentLines partitions lines into connected structures.
//
// Two segments are adjacent when at least one endpoint of one lies within
// Chebyshev distance delta of at least one endpoint of the other. Structures
// are the connected components of that relation: every input segment appears
// in exactly one structure, and a segment with no neighbors forms a singleton
// structure.
//
// Candidate pairs are pruned through a coordinate bucket index with cell edge
// delta+1, so endpoints that can be adjacent always fall into neighboring
// buckets; the exact Chebyshev test decides membership. Components are
// tracked with union-find over segment indices, which keeps segment identity
// by position rather than by shared references.
//
// Structures are returned in order of their first member's position in lines,
// and members keep their input order. Returns ErrInvalidInput when delta is
// negative.
func GroupAdjacentLines(lines []Segment, delta int) ([]Structure, error) {
	if delta < 0 {
		return nil, fmt.Errorf("%w: delta must be >= 0, got %d", ErrInvalidInput, delta)
	}

	uf := newUnionFind(len(lines))
	cell := delta + 1

	type bucketKey struct{ X, Y int }
	buckets := make(map[bucketKey][]int)
	keyOf := func(p Point) bucketKey {
		return bucketKey{X: floorDiv(p.X, cell), Y: floorDiv(p.Y, cell)}
	}
	for i, seg := range lines {
		for _, p := range seg.endpoints() {
			k := keyOf(p)
			ids := buckets[k]
			if len(ids) == 0 || ids[len(ids)-1] != i {
				buckets[k] = append(ids, i)
			}
		}
	}

	for i, seg := range lines {
		for _, p := range seg.endpoints() {
			base := keyOf(p)
			for ky := base.Y - 1; ky <= base.Y+1; ky++ {
				for kx := base.X - 1; kx <= base.X+1; kx++ {
					for _, j := range buckets[bucketKey{X: kx, Y: ky}] {
						if j <= i || uf.find(i) == uf.find(j) {
							continue
						}
						if seg.Adjacent(lines[j], delta) {
							uf.union(i, j)
						}
					}
				}
			}
		}
	}

	structureOf := make(map[int]int)
	var structures []Structure
	for i := range lines {
		root := uf.find(i)
		idx, ok := structureOf[root]
		if !ok {
			idx = len(structures)
			structureOf[root] = idx
			structures = append(structures, Structure{})
		}
		structures[idx].Segments = append(structures[idx].Segments, lines[i])
	}
	return structures, nil
}

// unionFind implements disjoint sets over integer ids with union by rank and
// path compression.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (u *unionFind) find(i int) int {
	for u.parent[i] != i {
		u.parent[i] = u.parent[u.parent[i]]
		i = u.parent[i]
	}
	return i
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// floorDiv divides rounding toward negative infinity, so bucket keys stay
// consistent for negative coordinates.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
