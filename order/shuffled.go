package order

import (
	"github.com/zeebo/xxh3"

	"github.com/jikamens/event-scheduler/types"
)

// Shuffled orders attendees pseudo-randomly from a fixed seed.
type Shuffled struct {
	seed uint64
}

var _ types.AttendeeOrderer = (*Shuffled)(nil)

// NewShuffled creates a seeded pseudo-random orderer.
//
// Each attendee's position is derived from a seeded xxh3 hash of their
// identity key, so the order is stable within a run and across runs with the
// same seed, while different seeds produce different orders. Running the
// scheduler with a few different seeds is a practical way to rescue inputs
// where the deterministic order leaves some attendees unscheduled.
//
// Parameters:
//   - seed: Hash seed; each seed defines one fixed shuffle
//
// Returns:
//   - *Shuffled: Initialized shuffled orderer
//
// Example:
//
//	s, err := scheduler.New(cfg, scheduler.WithOrderer(order.NewShuffled(42)))
func NewShuffled(seed uint64) *Shuffled {
	return &Shuffled{seed: seed}
}

// Less compares the seeded hashes of the two attendees' identity keys,
// falling back to the keys themselves on a hash collision.
func (o *Shuffled) Less(a, b *types.Attendee) bool {
	ha := xxh3.HashSeed([]byte(a.Key()), o.seed)
	hb := xxh3.HashSeed([]byte(b.Key()), o.seed)
	if ha != hb {
		return ha < hb
	}

	return a.Key() < b.Key()
}
