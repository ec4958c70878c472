package driver

import (
	"crypto/sha256"
	"encoding/binary"
)

// Digest is a SHA-256 value; file hashes and cache keys share the type.
type Digest = [32]byte

// lexFlags are the lexer options that change the token stream.
type lexFlags uint8

const (
	flagLenientEscapes lexFlags = 1 << iota
	flagEmitEOF
)

func (o *Options) lexFlags() lexFlags {
	var f lexFlags
	if o.LenientEscapes {
		f |= flagLenientEscapes
	}
	if o.EmitEOF {
		f |= flagEmitEOF
	}
	return f
}

// combineDigest: H(schema || flags || content). A schema bump or different
// lexer options give a different key for the same file.
func combineDigest(content Digest, flags lexFlags) Digest {
	h := sha256.New()
	var hdr [3]byte
	binary.LittleEndian.PutUint16(hdr[:2], tokenCacheSchemaVersion)
	hdr[2] = byte(flags)
	_, _ = h.Write(hdr[:])
	_, _ = h.Write(content[:])
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
