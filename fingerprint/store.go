package fingerprint

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var (
	ErrUnknownReference = errors.New("unknown reference list")
	ErrCodecMismatch    = errors.New("file was compressed with a different codec")
)

// Metadata describes a saved store.
type Metadata struct {
	Reference  Reference `json:"reference"`
	Words      int       `json:"words"`
	Compressed bool      `json:"compressed"`
	Codec      string    `json:"codec,omitempty"`
}

type document struct {
	Metadata     Metadata               `json:"metadata"`
	Fingerprints map[string]Fingerprint `json:"fingerprints,omitempty"`
	Compressed   map[string]Compressed  `json:"compressed,omitempty"`
}

// CompressStore encodes every fingerprint of s with c.
func CompressStore(c *Codec, s *Store) (map[string]Compressed, error) {
	ret := make(map[string]Compressed, len(s.Fingerprints))
	for w, fp := range s.Fingerprints {
		cf, err := c.Compress(fp)
		if err != nil {
			return nil, fmt.Errorf("compressing %s: %w", w, err)
		}
		ret[w] = cf
	}
	return ret, nil
}

// DecompressStore is the inverse of CompressStore.
func DecompressStore(c *Codec, ref Reference, compressed map[string]Compressed) (*Store, error) {
	s := NewStore(ref)
	for w, cf := range compressed {
		fp, err := c.Decompress(cf)
		if err != nil {
			return nil, fmt.Errorf("decompressing %s: %w", w, err)
		}
		s.Fingerprints[w] = fp
	}
	return s, nil
}

// Save writes s as JSON, with keys replaced by codec indexes when compress
// is set.
func Save(w io.Writer, s *Store, compress bool) error {
	doc := document{Metadata: Metadata{
		Reference:  s.Reference,
		Words:      len(s.Fingerprints),
		Compressed: compress,
	}}

	if compress {
		c := DefaultCodec()
		cs, err := CompressStore(c, s)
		if err != nil {
			return err
		}
		doc.Compressed = cs
		doc.Metadata.Codec = c.Hash()
	} else {
		doc.Fingerprints = s.Fingerprints
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding fingerprints: %w", err)
	}
	return nil
}

// Read parses a store written by Save.
func Read(r io.Reader) (*Store, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding fingerprints: %w", err)
	}

	if !doc.Metadata.Compressed {
		s := NewStore(doc.Metadata.Reference)
		for w, fp := range doc.Fingerprints {
			s.Fingerprints[w] = fp
		}
		return s, nil
	}

	c := DefaultCodec()
	if doc.Metadata.Codec != c.Hash() {
		return nil, fmt.Errorf("%w: %q", ErrCodecMismatch, doc.Metadata.Codec)
	}
	return DecompressStore(c, doc.Metadata.Reference, doc.Compressed)
}

func SaveFile(path string, s *Store, compress bool) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := Save(file, s, compress); err != nil {
		return err
	}
	return file.Close()
}

func ReadFile(path string) (*Store, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Read(file)
}

// Loader reads stores by reference name and keeps them for the session.
type Loader struct {
	Paths  map[Reference]string
	Logger *zap.Logger

	cache map[Reference]*Store
}

func NewLoader(paths map[Reference]string, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{Paths: paths, Logger: logger, cache: make(map[Reference]*Store)}
}

// Load returns the store for key, which must be "NYT" or "Dracos". Anything
// else is logged and reported as ErrUnknownReference.
func (l *Loader) Load(key string) (*Store, error) {
	ref := Reference(key)
	if !ref.Valid() {
		l.Logger.Warn("unknown fingerprint reference", zap.String("reference", key))
		return nil, fmt.Errorf("%w: %q", ErrUnknownReference, key)
	}
	if s, ok := l.cache[ref]; ok {
		return s, nil
	}

	path, ok := l.Paths[ref]
	if !ok || path == "" {
		l.Logger.Warn("no fingerprint file configured", zap.String("reference", key))
		return nil, fmt.Errorf("%w: no file for %q", ErrUnknownReference, key)
	}

	s, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s fingerprints: %w", key, err)
	}
	s.Reference = ref
	l.cache[ref] = s
	l.Logger.Debug("loaded fingerprints", zap.String("reference", key), zap.Int("words", len(s.Fingerprints)))
	return s, nil
}
