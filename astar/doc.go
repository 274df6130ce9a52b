// Package astar finds a least-cost path between two tiles of a tilegrid.Grid with a
// weighted best-first search (a weighted variant of A*).
//
// Overview:
//
//   - Every step selects the open node with the smallest priority
//     AccumulatedCost·W + Heuristic, with W = 3 by default, and expands its
//     unblocked neighbors.
//   - The heuristic is the straight-line (Euclidean) distance to the goal in cells.
//   - Weighting the accumulated cost breaks admissibility, so the returned path is a
//     good path, not a guaranteed shortest one.
//   - Paths are returned goal first, start last. Result.StartToGoal gives the
//     reversed order.
//
// Supersession:
//
//   - A candidate for a position that already has a node in the open or closed set
//     replaces that node only if it is strictly better. SupersedeByHeuristic (the
//     default) compares Heuristic values; since the heuristic depends only on the
//     position, the first node recorded for a position is never replaced.
//   - SupersedeByPriority compares Priority instead and reopens closed nodes when a
//     cheaper route to them appears. It is the stricter, more conventional mode.
//
// Frontier:
//
//   - FrontierHeap (default) keeps open nodes in a binary heap ordered by priority,
//     then insertion sequence. O(log n) per operation.
//   - FrontierLinear scans the whole open list to select the minimum, keeping the
//     first inserted node among ties. O(n) per selection.
//   - Both select the same node on every step, so they return identical paths.
//
// Outcomes:
//
//   - Result.Found == true: Result.Path holds the path.
//   - Result.Found == false, err == nil: no path exists for the current block layout
//     (or the expansion cap was hit). This is not an error.
//   - err != nil: invalid input (ErrNilGrid, tilegrid.ErrOutOfBounds, ErrOptionViolation).
//
// Edge cases:
//
//   - start == goal: a single-node path.
//   - Blocked start or goal tiles are still searchable: blocking only filters tiles
//     out of neighbor lists, and the goal test runs on the selected node.
//
// Complexity:
//
//   - Time:  O(N log N) with FrontierHeap, O(N²) with FrontierLinear, N = expanded nodes.
//   - Space: O(N).
//
// Thread safety:
//
//   - A search reads the Grid without locking. Do not mutate the Grid while FindPath
//     runs. A Stepper reads the Grid on every Step, so changes made between steps
//     affect the remaining search.
package astar
