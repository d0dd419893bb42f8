package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/bent101/wordle-signal/hint"
)

var ErrUnknownKey = errors.New("key not in codec")

// Compressed is a fingerprint keyed by codec index instead of key text.
type Compressed map[int]int

// Codec numbers the 51 short keys 0..50 in hint.AllKeys order.
type Codec struct {
	keys  []string
	index map[string]int
}

var defaultCodec = NewCodec()

// DefaultCodec returns the shared codec. It is never modified.
func DefaultCodec() *Codec {
	return defaultCodec
}

func NewCodec() *Codec {
	c := &Codec{index: make(map[string]int)}
	for i, k := range hint.AllKeys() {
		c.keys = append(c.keys, k.String())
		c.index[k.String()] = i
	}
	return c
}

func (c *Codec) Len() int {
	return len(c.keys)
}

func (c *Codec) Encode(key string) (int, bool) {
	n, ok := c.index[key]
	return n, ok
}

func (c *Codec) Decode(n int) (string, bool) {
	if n < 0 || n >= len(c.keys) {
		return "", false
	}
	return c.keys[n], true
}

func (c *Codec) Compress(fp Fingerprint) (Compressed, error) {
	ret := make(Compressed, len(fp))
	for k, n := range fp {
		i, ok := c.Encode(k)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, k)
		}
		ret[i] = n
	}
	return ret, nil
}

func (c *Codec) Decompress(cf Compressed) (Fingerprint, error) {
	ret := make(Fingerprint, len(cf))
	for i, n := range cf {
		k, ok := c.Decode(i)
		if !ok {
			return nil, fmt.Errorf("%w: index %d", ErrUnknownKey, i)
		}
		ret[k] = n
	}
	return ret, nil
}

// Canonical lists the keys in index order.
func (c *Codec) Canonical() string {
	return strings.Join(c.keys, ",")
}

// Hash identifies the key order; compressed files record it so they are not
// decoded with a different numbering.
func (c *Codec) Hash() string {
	hash := sha256.Sum256([]byte(c.Canonical()))
	return hex.EncodeToString(hash[:8])
}
