package uuidv1

import (
	"errors"
	"sync"
	"testing"
	"testing/iotest"
	"time"

	"github.com/google/uuid"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KnownVector(t *testing.T) {
	got, err := DecodeString("c232ab00-9414-11ec-b3c8-9f6bdeced846")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.February, 22, 19, 22, 22, 0, time.UTC), got)

	ts, err := sampleV1.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, Timestamp(138648505420000000), ts)
}

func TestDecode_AgreesWithGoogleUUID(t *testing.T) {
	g, err := uuid.NewUUID()
	require.NoError(t, err)

	ts, err := FromGoogle(g).Timestamp()
	require.NoError(t, err)
	assert.Equal(t, Timestamp(g.Time()), ts)

	back := sampleV1.ToGoogle()
	assert.Equal(t, uuid.Version(1), back.Version())
	assert.Equal(t, uuid.Time(138648505420000000), back.Time())
	assert.Equal(t, sampleV1, FromGoogle(back))

	sec, nsec := g.Time().UnixTime()
	assert.True(t, time.Unix(sec, nsec).Equal(ts.Time()))
}

func TestDecode_TruncatesToMicroseconds(t *testing.T) {
	enc := NewEncoder(WithClockSeq(0), WithNode(0))
	id, err := enc.EncodeTimestamp(138648505420000009)
	require.NoError(t, err)

	got, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.February, 22, 19, 22, 22, 0, time.UTC), got)

	ts, err := id.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, 900, ts.Time().Nanosecond())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		err   error
	}{
		{"malformed", "not-a-uuid", KindParse, ErrParse},
		{"empty", "", KindParse, ErrParse},
		{"bad hex", "c232ab00-9414-11ec-b3c8-9f6bdeced84z", KindParse, ErrParse},
		{"version 4", "f47ac10b-58cc-4372-a567-0e02b2c3d479", KindVersionMismatch, ErrVersionMismatch},
		{"version 7", "01890a5d-ac96-774b-bcce-b302099a8057", KindVersionMismatch, ErrVersionMismatch},
		{"nil uuid", "00000000-0000-0000-0000-000000000000", KindVersionMismatch, ErrVersionMismatch},
		{"ncs variant", "c232ab00-9414-11ec-33c8-9f6bdeced846", KindVersionMismatch, ErrVersionMismatch},
		{"microsoft variant", "c232ab00-9414-11ec-d3c8-9f6bdeced846", KindVersionMismatch, ErrInvalidVariant},
		{"future variant", "c232ab00-9414-11ec-f3c8-9f6bdeced846", KindVersionMismatch, ErrInvalidVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.kind, KindOf(err))
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, got.IsZero(), "no partial result on failure")
		})
	}
}

func TestDecode_RejectsNonRFC4122Variant(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("version 1 outside variant 10 is a mismatch", prop.ForAll(
		func(b []uint8, top uint8) bool {
			var u UUID
			copy(u[:], b)
			u[6] = u[6]&0x0f | 0x10
			u[8] = u[8]&0x3f | top<<6
			_, err := Decode(u)
			return KindOf(err) == KindVersionMismatch && errors.Is(err, ErrInvalidVariant)
		},
		gen.SliceOfN(16, gen.UInt8()),
		gen.OneConstOf(uint8(0), uint8(1), uint8(3)),
	))

	properties.TestingRun(t)
}

func TestDecode_RejectsNonV1(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("any version other than 1 is a mismatch", prop.ForAll(
		func(b []uint8, version uint8) bool {
			var u UUID
			copy(u[:], b)
			u[6] = u[6]&0x0f | version<<4
			_, err := Decode(u)
			return KindOf(err) == KindVersionMismatch
		},
		gen.SliceOfN(16, gen.UInt8()),
		gen.UInt8Range(0, 14).Map(func(v uint8) uint8 {
			if v >= 1 {
				return v + 1
			}
			return v
		}),
	))

	properties.TestingRun(t)
}

func TestEncode_KnownVector(t *testing.T) {
	enc := NewEncoder(WithClockSeq(0x33c8), WithNode(0x9f6bdeced846))
	got, err := enc.Encode(time.Date(2022, time.February, 22, 19, 22, 22, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "c232ab00-9414-11ec-b3c8-9f6bdeced846", got.String())
}

func TestEncode_Epoch(t *testing.T) {
	id, err := Encode(Epoch)
	require.NoError(t, err)
	assert.Equal(t, VersionTimeBased, id.Version())
	assert.Equal(t, VariantRFC4122, id.Variant())
	assert.Equal(t, "00000000-0000-1000", id.String()[:18])

	got, err := Decode(id)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1582, time.October, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestEncode_Range(t *testing.T) {
	last := MaxTimestamp.Time()

	tests := []struct {
		name    string
		input   time.Time
		wantErr bool
	}{
		{"epoch", Epoch, false},
		{"one tick before epoch", Epoch.Add(-100 * time.Nanosecond), true},
		{"one day before epoch", Epoch.AddDate(0, 0, -1), true},
		{"year 1", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), true},
		{"last tick", last, false},
		{"one tick past the end", last.Add(100 * time.Nanosecond), true},
		{"year 9999", time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Encode(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, VersionTimeBased, id.Version())
				return
			}
			require.Error(t, err)
			assert.Equal(t, KindRange, KindOf(err))
			assert.ErrorIs(t, err, ErrRange)
			assert.Equal(t, Nil, id)
		})
	}
}

func TestEncodeTimestamp_Range(t *testing.T) {
	enc := NewEncoderWithSource(NewSeededSource(7))

	id, err := enc.EncodeTimestamp(MaxTimestamp)
	require.NoError(t, err)
	ts, err := id.Timestamp()
	require.NoError(t, err)
	assert.Equal(t, MaxTimestamp, ts)

	_, err = enc.EncodeTimestamp(MaxTimestamp + 1)
	assert.Equal(t, KindRange, KindOf(err))
}

func TestEncode_RoundsToNearestTick(t *testing.T) {
	enc := NewEncoder(WithClockSeq(1), WithNode(1))
	base := time.Date(2025, time.May, 20, 10, 15, 55, 217000000, time.UTC)

	tests := []struct {
		offset time.Duration
		want   time.Duration
	}{
		{49 * time.Nanosecond, 0},
		{50 * time.Nanosecond, 100 * time.Nanosecond},
		{149 * time.Nanosecond, 100 * time.Nanosecond},
	}

	for _, tt := range tests {
		id, err := enc.Encode(base.Add(tt.offset))
		require.NoError(t, err)
		ts, err := id.Timestamp()
		require.NoError(t, err)
		assert.Equal(t, base.Add(tt.want), ts.Time(), "offset %v", tt.offset)
	}
}

func TestEncode_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500

	properties := gopter.NewProperties(parameters)
	enc := NewEncoderWithSource(NewSeededSource(42))

	// The last whole second is excluded: its sub-second ticks can pass 60 bits.
	seconds := gen.Int64Range(-epochToUnix, maxSeconds-epochToUnix-1)
	micros := gen.Int64Range(0, 999_999)

	properties.Property("encoded UUIDs are version 1, variant 10", prop.ForAll(
		func(sec, us int64) bool {
			id, err := enc.Encode(time.Unix(sec, us*1000))
			return err == nil && id.Version() == VersionTimeBased && id[8]&0xc0 == 0x80
		},
		seconds, micros,
	))

	properties.Property("decode(encode(t)) == t at microsecond precision", prop.ForAll(
		func(sec, us int64) bool {
			in := time.Unix(sec, us*1000)
			id, err := enc.Encode(in)
			if err != nil {
				return false
			}
			out, err := Decode(id)
			return err == nil && out.Equal(in)
		},
		seconds, micros,
	))

	properties.Property("decode is monotonic in ticks", prop.ForAll(
		func(a, b uint64) bool {
			if a > b {
				a, b = b, a
			}
			return !Timestamp(a).Micros().After(Timestamp(b).Micros())
		},
		gen.UInt64Range(0, uint64(MaxTimestamp)),
		gen.UInt64Range(0, uint64(MaxTimestamp)),
	))

	properties.TestingRun(t)
}

func TestEncoder_FixedFields(t *testing.T) {
	in := time.Date(2025, time.May, 20, 10, 15, 55, 217000000, time.UTC)

	a, err := NewEncoder(WithClockSeq(0x1234), WithNode(0xaabbccddeeff)).Encode(in)
	require.NoError(t, err)
	b, err := NewEncoder(WithClockSeq(0x1234), WithNode(0xaabbccddeeff)).Encode(in)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, uint16(0x1234), a.ClockSeq())
	assert.Equal(t, uint64(0xaabbccddeeff), a.Node())
}

func TestEncoder_MasksFixedFields(t *testing.T) {
	id, err := NewEncoder(WithClockSeq(0xffff), WithNode(^uint64(0))).Encode(Epoch)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x3fff), id.ClockSeq())
	assert.Equal(t, uint64(1<<48-1), id.Node())
	assert.Equal(t, VariantRFC4122, id.Variant())
}

func TestEncoder_SeededIsDeterministic(t *testing.T) {
	in := time.Date(2025, time.May, 20, 10, 15, 55, 217000000, time.UTC)

	a, err := NewEncoderWithSource(NewSeededSource(99)).Encode(in)
	require.NoError(t, err)
	b, err := NewEncoderWithSource(NewSeededSource(99)).Encode(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncoder_RandomFieldsVary(t *testing.T) {
	in := time.Date(2025, time.May, 20, 10, 15, 55, 217000000, time.UTC)
	enc := NewEncoder()

	seen := make(map[UUID]bool)
	for i := 0; i < 32; i++ {
		id, err := enc.Encode(in)
		require.NoError(t, err)
		seen[id] = true

		got, err := Decode(id)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
	assert.Greater(t, len(seen), 1)
}

func TestEncoder_HardwareNode(t *testing.T) {
	id, err := NewEncoder(WithHardwareNode(), WithClockSeq(0)).Encode(Epoch)
	require.NoError(t, err)

	want := uuid.NodeID()
	assert.Equal(t, want, id[10:16])
}

func TestEncoder_SourceError(t *testing.T) {
	errBoom := errors.New("boom")
	enc := NewEncoderWithSource(NewReaderSource(iotest.ErrReader(errBoom)))

	_, err := enc.Encode(Epoch)
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, KindUnknown, KindOf(err))

	// Fixed fields never touch the source.
	_, err = NewEncoder(WithSource(NewReaderSource(iotest.ErrReader(errBoom))), WithClockSeq(1), WithNode(1)).Encode(Epoch)
	assert.NoError(t, err)
}

func TestEncoder_Concurrent(t *testing.T) {
	enc := NewEncoderWithSource(NewSeededSource(3))
	in := time.Date(2025, time.May, 20, 10, 15, 55, 217000000, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				id, err := enc.Encode(in)
				if err != nil {
					t.Error(err)
					return
				}
				if id.Version() != VersionTimeBased {
					t.Errorf("version = %v, want 1", id.Version())
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestMust(t *testing.T) {
	assert.Equal(t, sampleV1, Must(sampleV1, nil))
	assert.Panics(t, func() {
		Must(Encode(Epoch.Add(-time.Hour)))
	})
}
