package stores

// upsertByID replaces the element with the same id or appends the value when
// absent. removeByID drops the element when present. Both are idempotent:
// applying the same event twice leaves the slice unchanged.

func upsertByID[T any](list []T, id func(T) string, v T) []T {
	key := id(v)
	for i := range list {
		if id(list[i]) == key {
			list[i] = v
			return list
		}
	}
	return append(list, v)
}

func removeByID[T any](list []T, id func(T) string, key string) []T {
	for i := range list {
		if id(list[i]) == key {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
