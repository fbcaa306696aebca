package engine

import "fmt"

// CardSetCapacity bounds every per-trial card set (spec §3).
const CardSetCapacity = 20

// CardSet is a bounded, order-preserving sequence of card pointers. Order
// is semantic: see spec §4.3 for deck (stack, top = last index), field
// (position 0 = front/leftmost), and the lack of ordering semantics for
// hand beyond iteration order.
type CardSet struct {
	items [CardSetCapacity]*Card
	n     int
}

// Len reports the number of cards currently held.
func (s *CardSet) Len() int { return s.n }

// At returns the card at index i.
func (s *CardSet) At(i int) *Card { return s.items[i] }

// Set overwrites the card at index i in place (used to install the
// DeadCard sentinel over a field slot, spec §4.3/§4.6).
func (s *CardSet) Set(i int, c *Card) { s.items[i] = c }

// Reset empties the set without releasing capacity.
func (s *CardSet) Reset() { s.n = 0 }

// PushBack appends to the end (deck tail, hand end). Fails fast on
// capacity breach — a misconfigured deck/rune combination (spec §7).
func (s *CardSet) PushBack(c *Card) {
	if s.n >= CardSetCapacity {
		panic(fmt.Sprintf("card set capacity exceeded pushing %s", c.Name()))
	}
	s.items[s.n] = c
	s.n++
}

// InsertAt inserts c at index i, shifting the tail right.
func (s *CardSet) InsertAt(i int, c *Card) {
	if s.n >= CardSetCapacity {
		panic(fmt.Sprintf("card set capacity exceeded inserting %s", c.Name()))
	}
	if i < 0 {
		i = 0
	}
	if i > s.n {
		i = s.n
	}
	copy(s.items[i+1:s.n+1], s.items[i:s.n])
	s.items[i] = c
	s.n++
}

// InsertRandom inserts c at a uniformly random position (exile, spec §4.3).
func (s *CardSet) InsertRandom(c *Card, rng *PRNG) {
	pos := 0
	if s.n > 0 {
		pos = rng.Rnd(s.n + 1)
	}
	s.InsertAt(pos, c)
}

// RemoveAt removes the card at index i, shifting the tail left to
// preserve order (spec §4.3).
func (s *CardSet) RemoveAt(i int) *Card {
	if i < 0 || i >= s.n {
		return nil
	}
	c := s.items[i]
	copy(s.items[i:s.n-1], s.items[i+1:s.n])
	s.n--
	s.items[s.n] = nil
	return c
}

// PopBack removes and returns the last card (deck top, spec §4.3).
func (s *CardSet) PopBack() *Card {
	if s.n == 0 {
		return nil
	}
	return s.RemoveAt(s.n - 1)
}

// RemoveCard removes the first pointer-equal occurrence of c, if present.
func (s *CardSet) RemoveCard(c *Card) bool {
	for i := 0; i < s.n; i++ {
		if s.items[i] == c {
			s.RemoveAt(i)
			return true
		}
	}
	return false
}

// IndexOf returns the index of c, or -1.
func (s *CardSet) IndexOf(c *Card) int {
	for i := 0; i < s.n; i++ {
		if s.items[i] == c {
			return i
		}
	}
	return -1
}

// CountClass reports how many cards in the set carry the given class tag
// and are alive (used by rune activation gates, spec §4.9).
func (s *CardSet) CountClass(class AttrKind) int {
	n := 0
	for i := 0; i < s.n; i++ {
		if s.items[i] == nil || !s.items[i].IsAlive() {
			continue
		}
		if has, _ := s.items[i].Has(class); has {
			n++
		}
	}
	return n
}

// CountClassAny counts cards with the class tag regardless of liveness
// (used for grave counts, where every card is already "dead").
func (s *CardSet) CountClassAny(class AttrKind) int {
	n := 0
	for i := 0; i < s.n; i++ {
		if s.items[i] == nil {
			continue
		}
		if has, _ := s.items[i].Has(class); has {
			n++
		}
	}
	return n
}

// ForEachAlive calls fn for every alive card in the set, in order.
func (s *CardSet) ForEachAlive(fn func(i int, c *Card)) {
	for i := 0; i < s.n; i++ {
		if s.items[i] != nil && s.items[i].IsAlive() {
			fn(i, s.items[i])
		}
	}
}

// RemoveDeadCards compacts the set, dropping every card that is not alive.
// This is the end-of-round field sweep (spec §4.3, §4.8).
func (s *CardSet) RemoveDeadCards() {
	out := 0
	for i := 0; i < s.n; i++ {
		if s.items[i] != nil && s.items[i].IsAlive() {
			s.items[out] = s.items[i]
			out++
		}
	}
	for i := out; i < s.n; i++ {
		s.items[i] = nil
	}
	s.n = out
}
