package internal

// ReconstructPath walks parent links backward from target until origin is
// reached and returns the visited keys in forward order. The origin is
// excluded and the target included. A broken chain, including a target with
// no parent, yields nil.
func ReconstructPath[Key comparable](
	parent func(Key) (Key, bool),
	target Key,
	origin Key,
) []Key {
	var path []Key
	for current := target; current != origin; {
		path = append(path, current)
		previous, exists := parent(current)
		if !exists {
			return nil
		}
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
