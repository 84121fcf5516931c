package fleet

// LocationId is opaque: equality is the only required operation.
// Scenarios are free to use any comparable representation (the demo
// scenarios in cmd/ use small integers, mirroring pyRoute13/hello-bb8.py's
// numbered gates).
type LocationId any

// SameLocation reports whether a and b identify the same location.
func SameLocation(a, b LocationId) bool {
	return a == b
}
