package biaction

// ForEachMap applies f to every key/value entry of m. No iteration order is
// promised.
func ForEachMap[K comparable, V any](m map[K]V, f Action[K, V]) {
	for k, v := range m {
		f(k, v)
	}
}

// TryForEachMap applies f to entries of m until one fails, returning that
// error, or nil once every entry has been visited.
func TryForEachMap[K comparable, V any](m map[K]V, f ErrorableAction[K, V]) error {
	for k, v := range m {
		if err := f(k, v); err != nil {
			return err
		}
	}
	return nil
}

// ForEachSlice applies f to every index/element pair of s in index order.
func ForEachSlice[V any](s []V, f Action[int, V]) {
	for i, v := range s {
		f(i, v)
	}
}

// TryForEachSlice applies f to index/element pairs of s in index order until
// one fails, returning that error, or nil once every element has been
// visited.
func TryForEachSlice[V any](s []V, f ErrorableAction[int, V]) error {
	for i, v := range s {
		if err := f(i, v); err != nil {
			return err
		}
	}
	return nil
}
