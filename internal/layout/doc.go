// Package layout provides the container tree for terminal UIs: dimension
// negotiation, leaf windows, vertical stacks, overlay floats, and the
// ScrollablePane virtual-scrolling compositor.
//
// Architecture:
//
//	┌──────────────────────────────────────────────┐
//	│ ScrollablePane                               │
//	│  1. negotiate dimensions with content        │
//	│  2. render content into oversized virtual    │
//	│     screen, composite floats                 │
//	│  3. resolve vertical scroll from focus state │
//	│  4. copy visible slice into the real screen, │
//	│     translating registries                   │
//	└──────────────────────────────────────────────┘
//	          │ renders into
//	┌──────────────────────────────────────────────┐
//	│ screen.Screen (virtual, per-render arena)    │
//	└──────────────────────────────────────────────┘
//
// Containers implement the Container interface and may nest arbitrarily.
// Only vertical scrolling is supported; horizontal coordinates always
// pass through unchanged.
package layout
