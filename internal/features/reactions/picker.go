// picker.go selects a phrase while suppressing recent repeats.
package reactions

import (
	"math/rand"
	"sync"
)

// Picker chooses reaction phrases and remembers the last few it handed
// out in a bounded ring, so back-to-back replies don't echo each other.
// The capacity is injected; there is no package-level state.
type Picker struct {
	mu     sync.Mutex
	rng    *rand.Rand
	recent []string // ring buffer of recently used phrases
	next   int      // ring write position
}

// NewPicker creates a picker remembering up to capacity recent phrases.
func NewPicker(capacity int, seed int64) *Picker {
	if capacity < 1 {
		capacity = 1
	}
	return &Picker{
		rng:    rand.New(rand.NewSource(seed)),
		recent: make([]string, 0, capacity),
	}
}

// Pick returns a phrase for the attempts token. It retries a few random
// draws to dodge recently used phrases, then gives up and repeats —
// better a repeat than no reply.
func (p *Picker) Pick(attemptsToken string) string {
	pool := Themes[attemptsToken]
	if len(pool) == 0 {
		return Fallback
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	phrase := pool[p.rng.Intn(len(pool))]
	for tries := 0; tries < 2*len(pool) && p.seenRecently(phrase); tries++ {
		phrase = pool[p.rng.Intn(len(pool))]
	}

	p.remember(phrase)
	return phrase
}

func (p *Picker) seenRecently(phrase string) bool {
	for _, used := range p.recent {
		if used == phrase {
			return true
		}
	}
	return false
}

func (p *Picker) remember(phrase string) {
	if len(p.recent) < cap(p.recent) {
		p.recent = append(p.recent, phrase)
		return
	}
	p.recent[p.next] = phrase
	p.next = (p.next + 1) % cap(p.recent)
}
