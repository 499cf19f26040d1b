// SPDX-FileCopyrightText: 2021 The peerwire Authors
//
// SPDX-License-Identifier: MIT

package peerwire

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolEncoding(t *testing.T) {
	r := require.New(t)

	r.Equal([]byte{0x00}, Serialize(Bool(false)))
	r.Equal([]byte{0x01}, Serialize(Bool(true)))

	// any nonzero byte decodes as true
	for _, b := range []byte{0x01, 0x02, 0x7F, 0xFF} {
		var v Bool
		r.NoError(Deserialize([]byte{b}, &v))
		r.True(bool(v))
	}

	var v Bool
	r.NoError(Deserialize([]byte{0x00}, &v))
	r.False(bool(v))
}

func TestIntegerEndianness(t *testing.T) {
	r := require.New(t)

	r.Equal([]byte{0xEF, 0xBE, 0xAD, 0xDE}, Serialize(U32(0xDEADBEEF)))
	r.Equal([]byte{0xAD, 0xDE}, Serialize(U16(0xDEAD)))
	r.Equal(
		[]byte{0xEF, 0xBE, 0xAD, 0xDE, 0xFE, 0xCA, 0xAD, 0x1B},
		Serialize(U64(0x1BADCAFEDEADBEEF)),
	)
	r.Equal([]byte{0xFF, 0xFF, 0xFF, 0xFF}, Serialize(I32(-1)))

	var i I64
	r.NoError(Deserialize([]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, &i))
	r.EqualValues(-2, i)
}

func TestExactConsumption(t *testing.T) {
	r := require.New(t)

	// a valid bool with one trailing byte
	wire := []byte{0x01, 0x99}

	var v Bool
	err := Deserialize(wire, &v)
	r.Error(err)
	r.IsType(ParseError(""), err)

	consumed, err := DeserializePartial(wire, &v)
	r.NoError(err)
	r.Equal(1, consumed)
	r.True(bool(v))
}

// three fields of distinct shapes, composed through one field list
type testRecord struct {
	ID      uint32
	Tag     Bytes4
	Payload []byte
}

func (t *testRecord) fields() []Field {
	return []Field{
		(*U32)(&t.ID),
		&t.Tag,
		(*ByteSlice)(&t.Payload),
	}
}

func (t *testRecord) Encode(w io.Writer) (int, error) { return EncodeAll(w, t.fields()...) }
func (t *testRecord) Decode(r io.Reader) error        { return DecodeAll(r, t.fields()...) }

func TestStructuralComposition(t *testing.T) {
	r := require.New(t)

	rec := testRecord{
		ID:      0xDEADBEEF,
		Tag:     Bytes4{0xCA, 0xFE, 0xBA, 0xBE},
		Payload: []byte{0x01, 0x02, 0x03},
	}

	wire := Serialize(&rec)

	// concatenation of the field encodings, in declared order
	var want []byte
	want = append(want, Serialize(U32(rec.ID))...)
	want = append(want, Serialize(rec.Tag)...)
	want = append(want, Serialize(ByteSlice(rec.Payload))...)
	r.Equal(want, wire)

	var got testRecord
	r.NoError(Deserialize(wire, &got))
	r.Equal(rec, got)
}

func TestEncodeReportsSinkFailure(t *testing.T) {
	r := require.New(t)

	rec := testRecord{ID: 1, Payload: []byte("xyz")}
	n, err := rec.Encode(failingWriter{})
	r.Error(err)
	r.Equal(0, n)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestFixedArrayRoundTrip(t *testing.T) {
	r := require.New(t)

	var h Bytes32
	for i := range h {
		h[i] = byte(i)
	}

	wire := Serialize(h)
	r.Len(wire, 32)

	var got Bytes32
	r.NoError(Deserialize(wire, &got))
	r.Equal(h, got)

	// one byte short
	var short Bytes32
	r.Error(Deserialize(wire[:31], &short))
}
