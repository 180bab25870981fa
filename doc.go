// Package compose is a declarative layout and reconciliation engine.
//
// Application code builds a tree of [Component] values. An [Engine] lays the
// tree out against the viewport ([Component.Layout] returns a [RenderNode]),
// asks the render node for the [Renderable] leaves that intersect the visible
// frame, diffs them by identity against what is on screen, and drives the
// native views of a [Host] through an [Animator].
//
// Users import this single package for the public API: geometry and
// constraint types, the component protocol, the built-in layouts, the engine
// and the tick [Loop]. Native view layers live in pkg/termhost,
// pkg/rasterhost and pkg/fynehost.
package compose
