// Package uuidv1 converts between version 1 UUIDs and the calendar time
// they embed, in both directions.
//
// A version 1 UUID (RFC 4122) carries a 60-bit timestamp counting 100
// nanosecond intervals since 1582-10-15T00:00:00Z, spread over the
// time_low, time_mid and time_hi_and_version fields, plus a 14-bit clock
// sequence and a 48-bit node.
//
// Basic Usage:
//
//	// Recover the creation time of a UUIDv1
//	t, err := uuidv1.DecodeString("c232ab00-9414-11ec-b3c8-9f6bdeced846")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t) // 2022-02-22 19:22:22 +0000 UTC
//
//	// Build a UUIDv1 carrying a chosen time
//	id, err := uuidv1.Encode(time.Date(2025, 5, 20, 10, 15, 55, 217000000, time.UTC))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)
//
// Fixed fields:
//
//	// Clock sequence and node are random by default; fix them for
//	// reproducible output, or use the host's interface address.
//	enc := uuidv1.NewEncoder(uuidv1.WithClockSeq(0x33c8), uuidv1.WithNode(0x9f6bdeced846))
//	id, err := enc.Encode(t)
//
// Precision:
//
// Decode reports whole microseconds and drops the final tick digit.
// UUID.Timestamp returns the raw tick count and Timestamp.Time converts it
// without loss.
//
// Errors:
//
// Every failure is an *Error whose Kind is one of KindParse,
// KindVersionMismatch, KindFormat or KindRange; errors.Is matches the
// corresponding ErrParse, ErrVersionMismatch, ErrFormat and ErrRange.
//
// Thread Safety:
//
// Encoders are immutable and the bundled Sources are safe for concurrent
// use, so the package-level Encode may be called from multiple goroutines.
package uuidv1
