// Package memory implements the domain repositories over process-local maps.
// Each repository guards its collection with a single mutex, so every
// mutating call runs as an exclusive section: the per-job and per-account
// serialization the apply/status paths require falls out of that. Records
// are cloned on the way in and out so callers never share slices or maps
// with the store.
package memory

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
