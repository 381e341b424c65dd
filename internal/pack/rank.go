package pack

import "math/rand"

// rank.go adapts internal/game/spatial/skiplist.go's augmented skip
// list: same node/span/level machinery, minus the concurrency control
// the original needed for a live multiplayer leaderboard. The core is
// single-threaded by contract (spec.md §5), so the mutex and atomics
// are dropped; the key type narrows from a player-id string to a wolf
// id, and the score is "closeness to the player" (higher score =
// closer), used by the Commit plan to rank attackers. The global
// threat-budget scan (wolf.Sim.countAttackers) does not use it.

const (
	rankMaxLevel        = 16
	rankLevelProbability = 0.25
)

type rankEntry struct {
	id    uint32
	score float64
}

type rankNode struct {
	entry rankEntry
	next  []*rankNode
	span  []int
}

// rankList is a single-threaded skip list ordered by descending score.
type rankList struct {
	head   *rankNode
	level  int
	length int
	rng    *rand.Rand
}

func newRankList(seed int64) *rankList {
	head := &rankNode{
		next: make([]*rankNode, rankMaxLevel),
		span: make([]int, rankMaxLevel),
	}
	return &rankList{head: head, level: 1, rng: rand.New(rand.NewSource(seed))}
}

func (rl *rankList) randomLevel() int {
	level := 1
	for level < rankMaxLevel && rl.rng.Float64() < rankLevelProbability {
		level++
	}
	return level
}

// insert adds an entry; ranking by descending score, ties broken by id
// for a stable total order.
func (rl *rankList) insert(id uint32, score float64) {
	update := make([]*rankNode, rankMaxLevel)
	rank := make([]int, rankMaxLevel)

	x := rl.head
	for i := rl.level - 1; i >= 0; i-- {
		if i == rl.level-1 {
			rank[i] = 0
		} else {
			rank[i] = rank[i+1]
		}
		for x.next[i] != nil && (x.next[i].entry.score > score ||
			(x.next[i].entry.score == score && x.next[i].entry.id < id)) {
			rank[i] += x.span[i]
			x = x.next[i]
		}
		update[i] = x
	}

	newLevel := rl.randomLevel()
	if newLevel > rl.level {
		for i := rl.level; i < newLevel; i++ {
			rank[i] = 0
			update[i] = rl.head
			update[i].span[i] = rl.length
		}
		rl.level = newLevel
	}

	node := &rankNode{
		entry: rankEntry{id: id, score: score},
		next:  make([]*rankNode, newLevel),
		span:  make([]int, newLevel),
	}
	for i := 0; i < newLevel; i++ {
		node.next[i] = update[i].next[i]
		update[i].next[i] = node
		node.span[i] = update[i].span[i] - (rank[0] - rank[i])
		update[i].span[i] = (rank[0] - rank[i]) + 1
	}
	for i := newLevel; i < rl.level; i++ {
		update[i].span[i]++
	}
	rl.length++
}

// closest returns up to n ids in descending-score (closest-first) order.
func (rl *rankList) closest(n int) []uint32 {
	if n > rl.length {
		n = rl.length
	}
	out := make([]uint32, 0, n)
	x := rl.head.next[0]
	for x != nil && len(out) < n {
		out = append(out, x.entry.id)
		x = x.next[0]
	}
	return out
}

// rankByDistance builds a closest-first ordering of ids by distance
// (lower distance = higher rank). The seed only affects the skip
// list's internal level balancing, never the resulting order, so this
// stays deterministic despite using math/rand for that balancing — the
// same source the teacher's original used for the identical purpose.
func rankByDistance(distances map[uint32]float64) []uint32 {
	rl := newRankList(1)
	for id, d := range distances {
		rl.insert(id, -d)
	}
	return rl.closest(len(distances))
}
