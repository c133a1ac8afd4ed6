package relations

// DiffIds compares two id sequences and reports which ids appeared and
// which disappeared, preserving input order
func DiffIds(previous, current []string) (added, removed []string) {
	prevSet := make(map[string]struct{}, len(previous))
	for _, id := range previous {
		prevSet[id] = struct{}{}
	}
	curSet := make(map[string]struct{}, len(current))
	for _, id := range current {
		curSet[id] = struct{}{}
	}

	added = make([]string, 0)
	for _, id := range current {
		if _, ok := prevSet[id]; !ok {
			added = append(added, id)
		}
	}
	removed = make([]string, 0)
	for _, id := range previous {
		if _, ok := curSet[id]; !ok {
			removed = append(removed, id)
		}
	}
	return added, removed
}
