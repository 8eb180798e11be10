package rng

// Tausworthe is the three-component combined Tausworthe generator (taus88).
// Each component keeps 32 significant bits in an int64 word.
type Tausworthe struct {
	s [3]int64
}

// NewTausworthe seeds the three components from seed with an LCG and
// discards the first ten outputs. Component seeds are kept to 32 bits and
// raised above the minimum each component needs (2, 8 and 16).
func NewTausworthe(seed int64) *Tausworthe {
	x := uint64(seed)
	t := &Tausworthe{}
	for i, floor := range [3]int64{2, 8, 16} {
		s := int64(uint32(x))
		if s < floor {
			s += floor
		}
		t.s[i] = s
		x = x*6364136223846793005 + 1442695040888963407
	}
	// Warm up
	for range 10 {
		t.Uint32()
	}
	return t
}

// Uint32 advances all three components and returns their xor.
func (t *Tausworthe) Uint32() uint32 {
	s := &t.s
	s[0] = (((s[0] & 4294967294) << 12) & 0xFFFFFFFF) ^
		((((s[0] << 13) & 0xFFFFFFFF) ^ s[0]) >> 19)
	s[1] = (((s[1] & 4294967288) << 4) & 0xFFFFFFFF) ^
		((((s[1] << 2) & 0xFFFFFFFF) ^ s[1]) >> 25)
	s[2] = (((s[2] & 4294967280) << 17) & 0xFFFFFFFF) ^
		((((s[2] << 3) & 0xFFFFFFFF) ^ s[2]) >> 11)
	return uint32(s[0] ^ s[1] ^ s[2])
}

func (t *Tausworthe) Next() uint64 { return uint64(t.Uint32()) }
func (t *Tausworthe) Min() uint64  { return min32 }
func (t *Tausworthe) Max() uint64  { return max32 }
