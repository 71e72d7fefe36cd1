package protocol

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSampleRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value int32
	}{
		{name: "zero", value: 0},
		{name: "answer", value: 42},
		{name: "minus one", value: -1},
		{name: "int32 min", value: math.MinInt32},
		{name: "int32 max", value: math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := EncodeSample(tt.value)
			if len(payload) != SampleLen {
				t.Fatalf("expected %d byte payload, got %d", SampleLen, len(payload))
			}

			got, err := DecodeSample(payload)
			if err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
			if got != tt.value {
				t.Errorf("expected %d, got %d", tt.value, got)
			}
		})
	}
}

func TestEncodeSample_LittleEndian(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		want  []byte
	}{
		{name: "42", value: 42, want: []byte{0x2a, 0x00, 0x00, 0x00}},
		{name: "minus one", value: -1, want: []byte{0xff, 0xff, 0xff, 0xff}},
		{name: "int32 min", value: math.MinInt32, want: []byte{0x00, 0x00, 0x00, 0x80}},
		{name: "multi byte", value: 0x01020304, want: []byte{0x04, 0x03, 0x02, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, EncodeSample(tt.value)); diff != "" {
				t.Errorf("payload mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSample(t *testing.T) {
	tests := []struct {
		name        string
		payload     []byte
		want        int32
		expectedErr bool
	}{
		{name: "exact length", payload: []byte{0x2a, 0, 0, 0}, want: 42},
		{name: "trailing bytes ignored", payload: []byte{0x2a, 0, 0, 0, 0xde, 0xad}, want: 42},
		{name: "three bytes", payload: []byte{1, 2, 3}, expectedErr: true},
		{name: "empty", payload: nil, expectedErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSample(tt.payload)
			if tt.expectedErr {
				if !errors.Is(err, ErrShortPayload) {
					t.Fatalf("expected ErrShortPayload, got '%v'", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, but got '%v'", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPutSample(t *testing.T) {
	buf := make([]byte, SampleLen)
	if err := PutSample(buf, -7); err != nil {
		t.Fatalf("expected no error, but got '%v'", err)
	}
	got, _ := DecodeSample(buf)
	if got != -7 {
		t.Errorf("expected -7, got %d", got)
	}

	if err := PutSample(make([]byte, 2), 1); !errors.Is(err, ErrShortPayload) {
		t.Errorf("expected ErrShortPayload for short buffer, got '%v'", err)
	}
}
