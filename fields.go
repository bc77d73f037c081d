package uuidv1

import "encoding/binary"

const (
	versionShift  = 12
	timeHiMask    = 0x0FFF
	clockSeqMask  = 0x3FFF // 14 bits
	clockSeqHiMax = 0x3F
	variantRFC    = 0x80 // 10xx xxxx
	nodeMask      = 1<<48 - 1
)

// Fields is the RFC 4122 field view of a UUID.
type Fields struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  uint64 // low 48 bits
}

// Fields splits the UUID into its six RFC 4122 fields.
func (u UUID) Fields() Fields {
	var node [8]byte
	copy(node[2:], u[10:16])
	return Fields{
		TimeLow:               binary.BigEndian.Uint32(u[0:4]),
		TimeMid:               binary.BigEndian.Uint16(u[4:6]),
		TimeHiAndVersion:      binary.BigEndian.Uint16(u[6:8]),
		ClockSeqHiAndReserved: u[8],
		ClockSeqLow:           u[9],
		Node:                  binary.BigEndian.Uint64(node[:]),
	}
}

// FromFields packs the six fields into a UUID. Bits of Node above 48 are
// dropped; no version or variant bits are forced.
func FromFields(f Fields) UUID {
	var uuid UUID
	binary.BigEndian.PutUint32(uuid[0:4], f.TimeLow)
	binary.BigEndian.PutUint16(uuid[4:6], f.TimeMid)
	binary.BigEndian.PutUint16(uuid[6:8], f.TimeHiAndVersion)
	uuid[8] = f.ClockSeqHiAndReserved
	uuid[9] = f.ClockSeqLow

	var node [8]byte
	binary.BigEndian.PutUint64(node[:], f.Node&nodeMask)
	copy(uuid[10:16], node[2:])
	return uuid
}

// SplitTimestamp divides a 60-bit tick count into the three UUID time
// fields. The version nibble of timeHiVersion is set to 1.
func SplitTimestamp(ts Timestamp) (timeLow uint32, timeMid uint16, timeHiVersion uint16) {
	timeLow = uint32(ts & 0xFFFFFFFF)
	timeMid = uint16((ts >> 32) & 0xFFFF)
	timeHiVersion = uint16((ts>>48)&timeHiMask) | uint16(VersionTimeBased)<<versionShift
	return timeLow, timeMid, timeHiVersion
}

// JoinTimestamp is the inverse of SplitTimestamp. The version nibble is
// stripped before the tick count is rebuilt.
func JoinTimestamp(timeLow uint32, timeMid uint16, timeHiVersion uint16) Timestamp {
	timeHi := uint64(timeHiVersion & timeHiMask)
	return Timestamp(timeHi<<48 | uint64(timeMid)<<32 | uint64(timeLow))
}

// PackClockSeq splits a 14-bit clock sequence into its two bytes, setting
// the RFC 4122 variant bits on hi.
func PackClockSeq(seq uint16) (hi, low uint8) {
	low = uint8(seq & 0xFF)
	hi = uint8((seq>>8)&clockSeqHiMax) | variantRFC
	return hi, low
}

// UnpackClockSeq drops the variant bits and rebuilds the 14-bit clock sequence.
func UnpackClockSeq(hi, low uint8) uint16 {
	return uint16(hi&clockSeqHiMax)<<8 | uint16(low)
}

// ClockSeq returns the 14-bit clock sequence of the UUID.
func (u UUID) ClockSeq() uint16 {
	return UnpackClockSeq(u[8], u[9])
}

// Node returns the 48-bit node of the UUID.
func (u UUID) Node() uint64 {
	return u.Fields().Node
}
