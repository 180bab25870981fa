package compose

import "strconv"

// assignIdentities returns one unique identity per renderable, in order.
// The first occurrence of a key keeps it; later duplicates get a numeric
// suffix ("x", "x1", "x2"), skipping any suffix already taken.
func assignIdentities(rs []Renderable) []string {
	ids := make([]string, len(rs))
	used := make(map[string]struct{}, len(rs))
	next := make(map[string]int)
	for i, r := range rs {
		base := r.Key
		n := next[base]
		id := base
		if n > 0 {
			id = base + strconv.Itoa(n)
		}
		for {
			if _, taken := used[id]; !taken {
				break
			}
			n++
			id = base + strconv.Itoa(n)
		}
		next[base] = n + 1
		used[id] = struct{}{}
		ids[i] = id
	}
	return ids
}
