// Package scratch provides the per-planner bookkeeping shared by every
// search engine: an epoch-tagged distance/predecessor array offering O(1)
// logical reset between searches, and a lazy-deletion binary min-heap of
// frontier nodes keyed on priority.
//
// What:
//
//   - Space holds dist[id], cameFrom[id], and epoch[id] arrays sized once
//     at construction to W*H. Reset() increments a generation counter in
//     O(1) instead of zeroing the arrays; a cell is "touched" in the
//     current search iff its stamped epoch equals the current generation.
//   - Frontier is a container/heap-based priority queue of Node records
//     ordered by ascending F, with ties broken by insertion order so heap
//     iteration is deterministic for a given input and build.
//
// Why:
//
//   - Every engine in planner (BFS, the A*-like engine, and the
//     reverse-Dijkstra window fill) needs the same "have I seen this cell,
//     and at what cost" bookkeeping; centralizing it here means the hot
//     path never zeroes W*H memory between searches and never defines its
//     own heap type.
//
// Complexity:
//
//   - NewSpace: O(W*H) time and memory (one-time allocation).
//   - Reset, Touched, Dist, SetDist, Pred, SetPred: O(1).
//   - Frontier Push/Pop: O(log n).
package scratch
