// Wire format shared by publisher and subscriber: a raw little-endian int32 per datagram
package protocol

import (
	"encoding/binary"
	"fmt"
)

// Encodes one sample into a fresh datagram payload
func EncodeSample(value int32) (payload []byte) {
	payload = make([]byte, SampleLen)
	binary.LittleEndian.PutUint32(payload, uint32(value))
	return
}

// Encodes one sample into the start of buf (reused by the send loop)
func PutSample(buf []byte, value int32) (err error) {
	if len(buf) < SampleLen {
		err = fmt.Errorf("buffer of %d bytes cannot hold sample: %w", len(buf), ErrShortPayload)
		return
	}
	binary.LittleEndian.PutUint32(buf, uint32(value))
	return
}

// Decodes the first four bytes of a datagram. Trailing bytes are ignored.
func DecodeSample(payload []byte) (value int32, err error) {
	if len(payload) < SampleLen {
		err = fmt.Errorf("received %d bytes: %w", len(payload), ErrShortPayload)
		return
	}
	value = int32(binary.LittleEndian.Uint32(payload[:SampleLen]))
	return
}
