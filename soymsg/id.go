package soymsg

import "encoding/binary"

// Fingerprint calculates the content-based identifier of a message with the
// given placeholder text. It changes if the text or the meaning changes and
// is invariant to changes in description.
//
// The hash is the one Closure Templates uses for message ids, but it is taken
// over the text with its {$name} placeholders, so the ids agree with Soy's
// only for messages without placeholders.
func Fingerprint(text, meaning string) uint64 {
	var fp = fingerprint([]byte(text))
	if meaning != "" {
		fp = fp<<1 + fp>>63 + fingerprint([]byte(meaning))
	}
	return fp & (1<<63 - 1)
}

// fingerprint combines two 32-bit hashes of str that use different seeds.
func fingerprint(str []byte) uint64 {
	var hi = hash32(str, 0)
	var lo = hash32(str, 102072)
	if hi == 0 && (lo == 0 || lo == 1) {
		hi ^= 0x130f9bef
		lo ^= 0x94a0a928
	}
	return uint64(hi)<<32 | uint64(lo)
}

const golden = 0x9e3779b9

// hash32 is Bob Jenkins' lookup2 hash of str, seeded with c.
func hash32(str []byte, c uint32) uint32 {
	var a, b uint32 = golden, golden
	var rest = str
	for ; len(rest) >= 12; rest = rest[12:] {
		a += binary.LittleEndian.Uint32(rest[0:])
		b += binary.LittleEndian.Uint32(rest[4:])
		c += binary.LittleEndian.Uint32(rest[8:])
		a, b, c = mix(a, b, c)
	}

	// The low byte of c holds the length, so the last word starts one byte up.
	c += uint32(len(str))
	for k, ch := range rest {
		var v = uint32(ch)
		switch {
		case k < 4:
			a += v << (8 * k)
		case k < 8:
			b += v << (8 * (k - 4))
		default:
			c += v << (8 * (k - 7))
		}
	}
	_, _, c = mix(a, b, c)
	return c
}

func mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= b
	a -= c
	a ^= c >> 13
	b -= c
	b -= a
	b ^= a << 8
	c -= a
	c -= b
	c ^= b >> 13
	a -= b
	a -= c
	a ^= c >> 12
	b -= c
	b -= a
	b ^= a << 16
	c -= a
	c -= b
	c ^= b >> 5
	a -= b
	a -= c
	a ^= c >> 3
	b -= c
	b -= a
	b ^= a << 10
	c -= a
	c -= b
	c ^= b >> 15
	return a, b, c
}
