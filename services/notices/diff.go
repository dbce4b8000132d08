package notices

// SelectNew returns the sub-sequence of fresh notices whose url is not
// in the baseline, preserving listing order. Entries with an empty url
// cannot be identified and are dropped (counted, not an error). When
// the listing itself repeats a url, the first occurrence wins.
func SelectNew(fresh []Notice, baseline map[string]struct{}) (selected []Notice, dropped int) {
	seen := make(map[string]struct{}, len(fresh))
	for _, n := range fresh {
		if n.Url == "" {
			dropped++
			continue
		}
		if _, ok := baseline[n.Url]; ok {
			continue
		}
		if _, ok := seen[n.Url]; ok {
			continue
		}
		seen[n.Url] = struct{}{}
		selected = append(selected, n)
	}
	return selected, dropped
}
