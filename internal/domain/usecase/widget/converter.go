package widget

// pushRecent moves city to the front, dropping an older copy and anything past limit
func pushRecent(recent []string, city string, limit int) []string {
	result := make([]string, 0, limit)
	result = append(result, city)
	for _, name := range recent {
		if len(result) == limit {
			break
		}
		if name != city {
			result = append(result, name)
		}
	}
	return result
}

// mergeRecent keeps front in order and appends the names of rest it does not hold yet, up to limit
func mergeRecent(front, rest []string, limit int) []string {
	result := make([]string, 0, limit)
	seen := make(map[string]struct{}, len(front)+len(rest))
	for _, names := range [][]string{front, rest} {
		for _, name := range names {
			if len(result) == limit {
				return result
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}
	return result
}
