package distinct

// By reports whether all items have pairwise-distinct keys.
func By[T any, K comparable](items []T, key func(T) K) bool {
	seen := make(map[K]struct{}, len(items))
	for _, item := range items {
		k := key(item)
		if _, ok := seen[k]; ok {
			return false
		}
		seen[k] = struct{}{}
	}
	return true
}
