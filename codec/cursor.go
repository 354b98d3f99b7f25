package codec

import "encoding/binary"

// SetHeaderCursor rewrites the cursor field of an already-encoded header
// in place, leaving the rest of the bytes untouched.
func SetHeaderCursor(header []byte, cursor uint32) error {
	if len(header) != HeaderSize {
		return newErrf("W3-WIRE-004", "header must be %d bytes, got %d", HeaderSize, len(header))
	}
	binary.BigEndian.PutUint32(header[0:4], cursor)
	return nil
}

// SetInstructionCursor rewrites the cursor field of the header embedded
// in an already-encoded instruction, in place. Used when forwarding
// cross-domain so the forwarded instruction begins at the correct step.
func SetInstructionCursor(instruction []byte, cursor uint32) error {
	if len(instruction) < 4 {
		return newErr("W3-WIRE-016", "truncated before header length")
	}
	hlen := binary.BigEndian.Uint32(instruction[0:4])
	if hlen != HeaderSize || uint32(len(instruction)) < 4+hlen {
		return newErr("W3-WIRE-018", "instruction does not carry a full header")
	}
	binary.BigEndian.PutUint32(instruction[4:8], cursor)
	return nil
}
