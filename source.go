package uuidv1

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mrand "math/rand/v2"
	"sync"
)

// Source supplies the random clock sequence and node of encoded UUIDs.
// Implementations must be safe for concurrent use.
type Source interface {
	// Uint14 returns a value in [0, 1<<14).
	Uint14() (uint16, error)
	// Uint48 returns a value in [0, 1<<48).
	Uint48() (uint64, error)
}

type readerSource struct {
	r io.Reader
}

// NewReaderSource returns a Source reading from r. Concurrent safety is
// that of r.
func NewReaderSource(r io.Reader) Source {
	return readerSource{r: r}
}

// CryptoSource returns a Source backed by crypto/rand.
func CryptoSource() Source {
	return readerSource{r: rand.Reader}
}

func (s readerSource) Uint14() (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(s.r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]) & clockSeqMask, nil
}

func (s readerSource) Uint48() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(s.r, b[2:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// seededSource is a deterministic Source for tests and reproducible runs.
type seededSource struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewSeededSource returns a deterministic Source. Two sources built from
// the same seed produce the same sequence.
func NewSeededSource(seed uint64) Source {
	return &seededSource{rng: mrand.New(mrand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Uint14() (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return uint16(s.rng.Uint64() & clockSeqMask), nil
}

func (s *seededSource) Uint48() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Uint64() & nodeMask, nil
}
