package uuidv1

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Encoder builds version 1 UUIDs carrying a caller-chosen timestamp.
// Clock sequence and node are drawn from its Source unless fixed with
// WithClockSeq or WithNode. An Encoder is immutable and safe for
// concurrent use.
type Encoder struct {
	src      Source
	clockSeq uint16
	node     uint64
	fixedSeq bool
	fixedNod bool
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithSource sets the random source for clock sequence and node.
func WithSource(src Source) Option {
	return func(e *Encoder) {
		e.src = src
	}
}

// WithClockSeq fixes the clock sequence. Only the low 14 bits are used.
func WithClockSeq(seq uint16) Option {
	return func(e *Encoder) {
		e.clockSeq = seq & clockSeqMask
		e.fixedSeq = true
	}
}

// WithNode fixes the node. Only the low 48 bits are used.
func WithNode(node uint64) Option {
	return func(e *Encoder) {
		e.node = node & nodeMask
		e.fixedNod = true
	}
}

// WithHardwareNode fixes the node to the host's interface address as
// reported by github.com/google/uuid, which falls back to random bytes when
// no hardware address is available.
func WithHardwareNode() Option {
	return func(e *Encoder) {
		var b [8]byte
		copy(b[2:], uuid.NodeID())
		e.node = binary.BigEndian.Uint64(b[:])
		e.fixedNod = true
	}
}

// NewEncoder creates an Encoder. Without options it draws clock sequence
// and node from crypto/rand.
func NewEncoder(opts ...Option) *Encoder {
	e := &Encoder{src: CryptoSource()}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = CryptoSource()
	}
	return e
}

// NewEncoderWithSource creates an Encoder drawing clock sequence and node
// from src. This is primarily useful for testing with deterministic sources.
func NewEncoderWithSource(src Source) *Encoder {
	return NewEncoder(WithSource(src))
}

// Encode returns a version 1 UUID whose timestamp is t rounded to the
// nearest 100ns tick. Instants before Epoch or beyond 60 bits of ticks
// fail with a KindRange error.
func (e *Encoder) Encode(t time.Time) (UUID, error) {
	ts, err := TimestampFromTime(t)
	if err != nil {
		return Nil, err
	}
	return e.EncodeTimestamp(ts)
}

// EncodeTimestamp returns a version 1 UUID carrying ts.
func (e *Encoder) EncodeTimestamp(ts Timestamp) (UUID, error) {
	if !ts.Valid() {
		return Nil, newError(KindRange, ts.String(), "exceeds 60 bits of 100ns ticks")
	}

	seq, node := e.clockSeq, e.node
	var err error
	if !e.fixedSeq {
		if seq, err = e.src.Uint14(); err != nil {
			return Nil, fmt.Errorf("uuidv1: reading clock sequence: %w", err)
		}
	}
	if !e.fixedNod {
		if node, err = e.src.Uint48(); err != nil {
			return Nil, fmt.Errorf("uuidv1: reading node: %w", err)
		}
	}

	timeLow, timeMid, timeHi := SplitTimestamp(ts)
	seqHi, seqLow := PackClockSeq(seq)
	return FromFields(Fields{
		TimeLow:               timeLow,
		TimeMid:               timeMid,
		TimeHiAndVersion:      timeHi,
		ClockSeqHiAndReserved: seqHi,
		ClockSeqLow:           seqLow,
		Node:                  node,
	}), nil
}

// Timestamp returns the 60-bit tick count of a version 1 UUID. Other
// versions, and version nibble 1 outside the RFC 4122 variant, fail with a
// KindVersionMismatch error.
func (u UUID) Timestamp() (Timestamp, error) {
	if v := u.Variant(); v != VariantRFC4122 {
		return 0, &Error{Kind: KindVersionMismatch, Input: u.String(), Detail: fmt.Sprintf("variant %s", v), Err: ErrInvalidVariant}
	}
	if v := u.Version(); v != VersionTimeBased {
		return 0, newError(KindVersionMismatch, u.String(), fmt.Sprintf("got version %d", v))
	}
	f := u.Fields()
	return JoinTimestamp(f.TimeLow, f.TimeMid, f.TimeHiAndVersion), nil
}

// Decode returns the creation time embedded in a version 1 UUID, in UTC,
// truncated to whole microseconds. Use Timestamp().Time() for full 100ns
// precision.
func Decode(u UUID) (time.Time, error) {
	ts, err := u.Timestamp()
	if err != nil {
		return time.Time{}, err
	}
	return ts.Micros(), nil
}

// DecodeString parses s with Parse and decodes it.
func DecodeString(s string) (time.Time, error) {
	u, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return Decode(u)
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuidv1.Must(uuidv1.Encode(t))
func Must(id UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return id
}

var defaultEncoder = NewEncoder()

// Encode encodes t with a package-level Encoder backed by crypto/rand.
func Encode(t time.Time) (UUID, error) {
	return defaultEncoder.Encode(t)
}
