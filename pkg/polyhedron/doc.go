// Package polyhedron animates Conway operators on a shape through a queue of
// transactions.
//
// A [Polyhedron] is driven by [Polyhedron.Tick], one call per frame. Each
// tick advances the [Layout] and then looks at the head of the queue:
//
//   - Contraction waits until every edge's endpoints are within
//     [Config.Epsilon] of each other in the layout, then contracts them
//   - Release removes edges at once
//   - Conway runs the operator's rewrite and pushes its script onto the
//     front of the queue
//   - Name and ShortenName edit the running Conway name
//   - Wait holds the queue until its deadline passes
//
// Scripts live in a table keyed by operator. Ambo truncates immediately and
// queues the contraction of the original edges, so the animation shows the
// truncated solid collapsing into the ambo. Bevel and expand are scripts of
// nested Conway transactions separated by settle delays.
//
// Every structural edit is followed by a layout sync: handles new to the
// shape are spawned near the vertices they came from and dead handles are
// forgotten. A layout that disagrees with the shape on the vertex count
// afterwards is an invariant violation, and halts the polyhedron for good.
package polyhedron
