package layout

import "github.com/dshills/paneview/internal/screen"

// ResolveVerticalScroll computes the new top-row offset into a virtual
// buffer. All focus state is injected so the function stays pure.
//
// The feasible scroll range starts at [0, virtualHeight-visibleHeight]
// and each enabled visibility policy narrows it by interval intersection:
//
//   - keepCursor requires the cursor row to keep offsets.Top rows of
//     clearance from the viewport's top edge and offsets.Bottom rows
//     from its bottom edge.
//   - keepWindow requires the focused unit's rectangle to be fully
//     contained in the viewport when it fits, or to fully cover the
//     viewport when it is taller than the viewport.
//
// When the two policies are irreconcilable the window bound wins. The
// current scroll is then clamped into the final interval, so a value
// already inside it is returned unchanged.
func ResolveVerticalScroll(
	current int,
	visibleHeight int,
	virtualHeight int,
	winPos screen.WritePosition,
	cursor *screen.Point,
	offsets ScrollOffsets,
	keepCursor bool,
	keepWindow bool,
) int {
	minScroll := 0
	maxScroll := virtualHeight - visibleHeight

	if keepCursor && cursor != nil {
		cursorMinScroll := cursor.Y - visibleHeight + 1 + offsets.Bottom
		cursorMaxScroll := cursor.Y - offsets.Top
		minScroll = max(minScroll, cursorMinScroll)
		maxScroll = max(0, min(maxScroll, cursorMaxScroll))
	}

	if keepWindow {
		var windowMinScroll, windowMaxScroll int
		if winPos.Height <= visibleHeight {
			// The unit fits; require full containment.
			windowMinScroll = winPos.YPos + winPos.Height - visibleHeight
			windowMaxScroll = winPos.YPos
		} else {
			// The unit is taller than the viewport; keep the viewport
			// entirely inside it so no unrelated neighbor shows.
			windowMinScroll = winPos.YPos
			windowMaxScroll = winPos.YPos + winPos.Height - visibleHeight
		}
		minScroll = max(minScroll, windowMinScroll)
		maxScroll = min(maxScroll, windowMaxScroll)
	}

	if minScroll > maxScroll {
		// The policies conflict; the window bound wins.
		minScroll = maxScroll
	}

	if current > maxScroll {
		current = maxScroll
	}
	if current < minScroll {
		current = minScroll
	}
	return current
}
