// Package inventory holds the item/count types shared by the store, the
// HTTP client and the tool adapters.
package inventory

// Snapshot is the full item-to-count mapping at a point in time.
//
// A Snapshot is always a copy: the store hands out clones and the agent
// layer never holds a reference into live store state.
type Snapshot map[string]int

// Clone returns an independent copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for item, count := range s {
		out[item] = count
	}
	return out
}

// Default stock levels for a fresh deployment.
var DefaultStock = Snapshot{
	"tshirts": 20,
	"pants":   15,
}
