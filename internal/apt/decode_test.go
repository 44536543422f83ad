package apt

import (
	"errors"
	"reflect"
	"testing"
)

type testMsg struct {
	ID   uint16
	Data []byte
}

func (m testMsg) MessageID() uint16 { return m.ID }

func testDecoder(id uint16) DecodeFunc[testMsg] {
	return func(b []byte) (testMsg, error) {
		return testMsg{ID: id, Data: append([]byte(nil), b...)}, nil
	}
}

func testCatalog() *Catalog[testMsg] {
	return MustCatalog(
		Descriptor[testMsg]{ID: 0x0444, Name: "MOT_MOVE_HOMED", Length: 6, Decode: testDecoder(0x0444)},
		Descriptor[testMsg]{ID: 0x0412, Name: "MOT_GET_POSCOUNTER", Length: 12, Decode: testDecoder(0x0412)},
		Descriptor[testMsg]{ID: 0x0212, Name: "MOD_GET_CHANENABLESTATE", Length: 6, Decode: func(b []byte) (testMsg, error) {
			if b[3] != 0x01 && b[3] != 0x02 {
				return testMsg{}, &RangeError{Field: "enable state", Value: int64(b[3]), Legal: "one of 1, 2"}
			}
			return testMsg{ID: 0x0212}, nil
		}},
	)
}

const (
	homedFrame    = "44-04-01-00-01-50"
	positionFrame = "12-04-06-00-81-50-01-00-a0-86-01-00"
)

func TestDecodeWaitsForCompleteFrame(t *testing.T) {
	cat := testCatalog()
	frame := parseHexString(positionFrame)

	buf := NewBuffer()
	for i := 0; i < len(frame)-1; i++ {
		buf.Write(frame[i : i+1])
		if _, err := Decode(buf, cat); !errors.Is(err, ErrInsufficientData) {
			t.Fatalf("after %d bytes: expected ErrInsufficientData, got %v", i+1, err)
		}
		if buf.Available() != i+1 {
			t.Fatalf("after %d bytes: %d available, nothing should be consumed", i+1, buf.Available())
		}
	}

	buf.Write(frame[len(frame)-1:])
	got, err := Decode(buf, cat)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	want := testMsg{ID: 0x0412, Data: parseHexString("01-00-a0-86-01-00")}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if buf.Available() != 0 {
		t.Errorf("%d bytes left over", buf.Available())
	}
}

func TestDecodeHeaderOnly(t *testing.T) {
	buf := NewBuffer()
	buf.Write(parseHexString(homedFrame))

	got, err := Decode(buf, testCatalog())
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(got.Data, parseHexString(homedFrame)) {
		t.Errorf("header-only decoders receive the header, got %x", got.Data)
	}
}

func TestDecodeResync(t *testing.T) {
	tests := []struct {
		name     string
		leading  string
		wantErr  func(error) bool
		consumed int
	}{
		{
			name:    "unknown header-only message",
			leading: "99-09-00-00-50-01",
			wantErr: func(err error) bool {
				var ue *UnknownMessageError
				return errors.As(err, &ue) && ue.ID == 0x0999
			},
			consumed: 6,
		},
		{
			name:    "unknown message with data packet",
			leading: "99-09-03-00-81-50-aa-bb-cc",
			wantErr: func(err error) bool {
				var ue *UnknownMessageError
				return errors.As(err, &ue)
			},
			consumed: 9,
		},
		{
			name:    "unknown message announcing an oversized data packet",
			leading: "99-09-ff-ff-81-50",
			wantErr: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe)
			},
			consumed: 6,
		},
		{
			name:    "header-only frame for a data packet message",
			leading: "12-04-01-00-01-50",
			wantErr: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe) && fe.ID == 0x0412
			},
			consumed: 6,
		},
		{
			name:    "data packet header for a header-only message",
			leading: "44-04-01-00-81-50",
			wantErr: func(err error) bool {
				var fe *FormatError
				return errors.As(err, &fe) && fe.ID == 0x0444
			},
			consumed: 6,
		},
		{
			name:     "field out of range",
			leading:  "12-02-01-07-01-50",
			wantErr:  IsRangeError,
			consumed: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := testCatalog()
			buf := NewBuffer()
			buf.Write(parseHexString(tt.leading))
			buf.Write(parseHexString(homedFrame))
			before := buf.Available()

			_, err := Decode(buf, cat)
			if !tt.wantErr(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := before - buf.Available(); got != tt.consumed {
				t.Errorf("consumed %d bytes, want %d", got, tt.consumed)
			}

			msg, err := Decode(buf, cat)
			if err != nil {
				t.Fatalf("next frame failed to decode: %v", err)
			}
			if msg.ID != 0x0444 {
				t.Errorf("got 0x%04X after resync, want 0x0444", msg.ID)
			}
		})
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog(
		Descriptor[testMsg]{ID: 0x0444, Length: 6, Decode: testDecoder(0x0444)},
		Descriptor[testMsg]{ID: 0x0444, Length: 6, Decode: testDecoder(0x0444)},
	)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
}
