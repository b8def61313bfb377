package util

import "github.com/dchest/siphash"

var hashSeedKey []byte

// SetHashSeed installs the 16-byte siphash key used by SipHash. Must
// be called before the first SipHash call.
func SetHashSeed(seed []byte) {
	hashSeedKey = make([]byte, 16)
	copy(hashSeedKey, seed)
}

func SipHash(buf []byte) uint64 {
	h := siphash.New(hashSeedKey)
	h.Write(buf)
	return h.Sum64()
}
