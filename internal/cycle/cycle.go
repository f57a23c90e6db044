// Package cycle implements keyboard stepping through the active group's
// items. It is pure sequence arithmetic; callers feed it the group's current
// order and apply the returned id to the selection.
package cycle

// Next returns the item after current in the sequence. With no current item
// it returns the first. When current is last, wrap decides between the first
// item and staying put. ok is false only for an empty sequence.
func Next(items []string, current string, wrap bool) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	idx := indexOf(items, current)
	if idx < 0 {
		return items[0], true
	}
	if idx == len(items)-1 {
		if wrap {
			return items[0], true
		}
		return current, true
	}
	return items[idx+1], true
}

// Previous is the mirror of Next.
func Previous(items []string, current string, wrap bool) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	idx := indexOf(items, current)
	if idx < 0 {
		return items[len(items)-1], true
	}
	if idx == 0 {
		if wrap {
			return items[len(items)-1], true
		}
		return current, true
	}
	return items[idx-1], true
}

func indexOf(items []string, id string) int {
	for i, existing := range items {
		if existing == id {
			return i
		}
	}
	return -1
}
