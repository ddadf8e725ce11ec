package keys

import (
	"fmt"
	"math/rand/v2"

	"github.com/cacack/gedcom-engine/gnode"
)

// sigilFor returns the sigil byte a generated key should use for rtype,
// the same letters the source's GEDCOM records carry: I for persons, F
// for families, S for sources, E for standalone events.
func sigilFor(rtype gnode.RecordType) byte {
	switch rtype {
	case gnode.Person:
		return 'I'
	case gnode.Family:
		return 'F'
	case gnode.Source:
		return 'S'
	case gnode.EventRecord:
		return 'E'
	default:
		return 'X'
	}
}

// Remapper hands out fresh, never-repeating record keys for a randomize-keys
// pass: one random permutation of [1, n] per sigil, so the new keys are a
// shuffle of the tightest possible range rather than large sparse numbers.
type Remapper struct {
	perm map[byte][]int64
	next map[byte]int
}

// NewRemapper builds a Remapper. counts gives, per record type, how many
// keys of that type will need remapping; it sizes each sigil's permutation
// so every generated key is used exactly once.
func NewRemapper(counts map[gnode.RecordType]int) *Remapper {
	r := &Remapper{perm: make(map[byte][]int64), next: make(map[byte]int)}
	for rtype, n := range counts {
		sigil := sigilFor(rtype)
		nums := make([]int64, n)
		for i := range nums {
			nums[i] = int64(i + 1)
		}
		rand.Shuffle(len(nums), func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		r.perm[sigil] = nums
	}
	return r
}

// Next returns the next unused random key for rtype. It panics if called
// more times than the count given to NewRemapper for that type, a
// programming error, since the caller is expected to size counts from the
// same record set it's about to remap.
func (r *Remapper) Next(rtype gnode.RecordType) string {
	sigil := sigilFor(rtype)
	i := r.next[sigil]
	nums := r.perm[sigil]
	if i >= len(nums) {
		panic(fmt.Sprintf("keys: Remapper exhausted for sigil %c", sigil))
	}
	r.next[sigil] = i + 1
	return fmt.Sprintf("@%c%d@", sigil, nums[i])
}
