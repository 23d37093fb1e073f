// Package pagination renders navigation controls for a paginated list as a
// pure function of (current page, total pages, loading). It owns no state;
// the list controller is the only consumer of the targets it produces.
package pagination

import "strconv"

// Control is one navigation element.
type Control struct {
	Label    string
	Page     int // target page when activated
	Disabled bool
	Current  bool
}

// Controls returns previous, one control per page in [1..totalPages], and
// next. Previous is disabled at the first page, next at the last, and every
// control while the list is loading.
func Controls(current, totalPages int, loading bool) []Control {
	if totalPages < 1 {
		totalPages = 1
	}

	controls := make([]Control, 0, totalPages+2)
	controls = append(controls, Control{
		Label:    "prev",
		Page:     clamp(current-1, 1, totalPages),
		Disabled: loading || current <= 1,
	})
	for p := 1; p <= totalPages; p++ {
		controls = append(controls, Control{
			Label:    strconv.Itoa(p),
			Page:     p,
			Disabled: loading,
			Current:  p == current,
		})
	}
	controls = append(controls, Control{
		Label:    "next",
		Page:     clamp(current+1, 1, totalPages),
		Disabled: loading || current >= totalPages,
	})
	return controls
}

// PageTarget validates a direct page click. It reports the target and whether
// the click should fire: out-of-range pages and the current page are no-ops.
func PageTarget(current, totalPages, page int) (int, bool) {
	if page < 1 || page > totalPages {
		return 0, false
	}
	if page == current {
		return 0, false
	}
	return page, true
}

// PrevTarget computes the previous-page target via clamped arithmetic, then
// applies the same no-op rules as PageTarget.
func PrevTarget(current, totalPages int) (int, bool) {
	return PageTarget(current, totalPages, clamp(current-1, 1, totalPages))
}

// NextTarget computes the next-page target via clamped arithmetic, then
// applies the same no-op rules as PageTarget.
func NextTarget(current, totalPages int) (int, bool) {
	return PageTarget(current, totalPages, clamp(current+1, 1, totalPages))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
