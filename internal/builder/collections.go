package builder

// item is satisfied by every collection element type; the immutable id is
// the sole identity used for update and remove, never positional index.
type item interface {
	GetID() string
}

// updateByID applies fn to the element matching id in place and reports
// whether a match was found. A miss is a tolerated no-op, not an error.
func updateByID[T item](list []T, id string, fn func(*T)) bool {
	for i := range list {
		if list[i].GetID() == id {
			fn(&list[i])
			return true
		}
	}
	return false
}

// removeByID filters id out of the list, preserving the relative order of
// the remaining elements. When id is absent the original slice is returned
// untouched.
func removeByID[T item](list []T, id string) ([]T, bool) {
	for i := range list {
		if list[i].GetID() == id {
			out := make([]T, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)
			return out, true
		}
	}
	return list, false
}
