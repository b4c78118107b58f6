package kzg

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"KZG-Commitment/curve"
)

const (
	fpInfinity byte = 0x00
	fpAffine   byte = 0x01
)

// Fingerprint returns a 16-byte SHAKE-256 digest identifying the SRS: the
// field modulus, the curve coefficients, the subgroup order and every SRS
// point in order. Two KZG instances agree on commitments iff their
// fingerprints match, which makes the digest useful for logging and sanity
// checks. It is an identity, not a serialization format.
func (k *KZG) Fingerprint() [16]byte {
	h := sha3.NewShake256()
	writeU64 := func(v uint64) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = h.Write(buf[:])
	}
	writePoint := func(p curve.Point) {
		if p.IsInfinity() {
			_, _ = h.Write([]byte{fpInfinity})
			return
		}
		_, _ = h.Write([]byte{fpAffine})
		writeU64(p.X().Value())
		writeU64(p.Y().Value())
	}
	writePointExt := func(p curve.PointExt) {
		if p.IsInfinity() {
			_, _ = h.Write([]byte{fpInfinity})
			return
		}
		_, _ = h.Write([]byte{fpAffine})
		writeU64(p.X().A.Value())
		writeU64(p.X().B.Value())
		writeU64(p.Y().A.Value())
		writeU64(p.Y().B.Value())
	}

	writeU64(k.curve.Modulus())
	writeU64(k.curve.A().Value())
	writeU64(k.curve.B().Value())
	writeU64(k.curve.SubgroupOrder())
	writeU64(uint64(len(k.setupG1)))
	for _, p := range k.setupG1 {
		writePoint(p)
	}
	for _, p := range k.setupG2 {
		writePointExt(p)
	}

	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}
