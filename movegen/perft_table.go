package movegen

import "unsafe"

const perftClusterSize = 4

type perftEntry struct {
	hash  uint64
	nodes uint64
	depth int8
}

// PerftTable caches subtree node counts by position hash and depth. Entries are
// grouped in fixed-size clusters; a full cluster evicts its shallowest entry.
// A PerftTable is not safe for concurrent use.
type PerftTable struct {
	entries      []perftEntry
	clusterCount uint64
}

// NewPerftTable allocates a table of roughly sizeMB megabytes.
func NewPerftTable(sizeMB int) *PerftTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	clusterBytes := uint64(unsafe.Sizeof(perftEntry{})) * perftClusterSize
	clusterCount := uint64(sizeMB) * 1024 * 1024 / clusterBytes
	if clusterCount == 0 {
		clusterCount = 1
	}
	return &PerftTable{
		entries:      make([]perftEntry, clusterCount*perftClusterSize),
		clusterCount: clusterCount,
	}
}

// Clear drops every cached count.
func (t *PerftTable) Clear() {
	clear(t.entries)
}

func (t *PerftTable) cluster(hash uint64) []perftEntry {
	base := (hash % t.clusterCount) * perftClusterSize
	return t.entries[base : base+perftClusterSize]
}

func (t *PerftTable) probe(hash uint64, depth int) (uint64, bool) {
	for _, e := range t.cluster(hash) {
		if e.hash == hash && int(e.depth) == depth {
			return e.nodes, true
		}
	}
	return 0, false
}

func (t *PerftTable) store(hash uint64, depth int, nodes uint64) {
	c := t.cluster(hash)
	target := -1

	// Prefer an empty slot, otherwise replace the shallowest entry.
	for i := range c {
		if c[i].hash == 0 {
			target = i
			break
		}
	}
	if target == -1 {
		target = 0
		for i := 1; i < len(c); i++ {
			if c[i].depth < c[target].depth {
				target = i
			}
		}
	}
	c[target] = perftEntry{hash: hash, nodes: nodes, depth: int8(depth)}
}

// PerftCached is Perft with subtree counts shared through t. Distinct positions
// with colliding 64-bit hashes would be counted wrongly, which is accepted for a
// debugging tool.
func PerftCached(p *Position, depth int, t *PerftTable) uint64 {
	if depth <= 0 {
		return 1
	}
	if t == nil {
		return Perft(p, depth)
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftCachedRec(p, depth, &pc, t)
}

func perftCachedRec(p *Position, depth int, pc *perftCtx, t *PerftTable) uint64 {
	if depth > 1 {
		if n, ok := t.probe(p.hash, depth); ok {
			return n
		}
	}
	moves := p.GenerateLegalMovesInto(pc.bufFor(depth))
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		u := p.MakeMove(m)
		nodes += perftCachedRec(p, depth-1, pc, t)
		p.UnmakeMove(m, u)
	}
	t.store(p.hash, depth, nodes)
	return nodes
}
