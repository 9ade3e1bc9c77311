package project

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
)

// Digest is a SHA-256 content hash.
type Digest [sha256.Size]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool {
	var zero Digest
	return d == zero
}

// HashBytes digests a content blob.
func HashBytes(content []byte) Digest {
	return sha256.Sum256(content)
}

// HashFile digests a file's content.
func HashFile(path string) (Digest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Digest{}, err
	}
	return HashBytes(content), nil
}
