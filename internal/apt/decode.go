package apt

// Decode reads one frame from the front of buf and decodes it with the matching
// catalog entry.
//
// When buf does not yet hold a complete frame, Decode returns ErrInsufficientData
// and consumes nothing. On any other error the offending bytes are consumed so the
// next call starts at the following frame: an unknown message is skipped using the
// data packet length from its own header, a header that contradicts its catalog
// entry is dropped (a header-only frame for a data packet message, or a data packet
// header for a header-only message), and a frame whose fields fail validation is
// consumed whole.
func Decode[M Message](buf *Buffer, cat *Catalog[M]) (M, error) {
	var zero M

	raw, err := buf.Peek(HeaderLen)
	if err != nil {
		return zero, err
	}
	h, err := ParseHeader(raw)
	if err != nil {
		return zero, err
	}

	desc, known := cat.Lookup(h.ID)
	if !known {
		if !h.HasPayload() {
			buf.Pop(HeaderLen)
			return zero, &UnknownMessageError{ID: h.ID}
		}
		n := h.PayloadLen()
		if n > MaxPayloadLen {
			buf.Pop(HeaderLen)
			return zero, &FormatError{ID: h.ID, Reason: "announced data packet exceeds the maximum length"}
		}
		if buf.Available() < HeaderLen+n {
			return zero, ErrInsufficientData
		}
		buf.Pop(HeaderLen + n)
		return zero, &UnknownMessageError{ID: h.ID}
	}

	if !h.HasPayload() {
		if desc.Length != HeaderLen {
			buf.Pop(HeaderLen)
			return zero, &FormatError{ID: h.ID, Reason: "header-only frame for a message that carries a data packet"}
		}
		buf.Pop(HeaderLen)
		return desc.Decode(raw)
	}

	if desc.Length == HeaderLen {
		buf.Pop(HeaderLen)
		return zero, &FormatError{ID: h.ID, Reason: "data packet for a header-only message"}
	}

	frame, err := buf.Peek(desc.Length)
	if err != nil {
		return zero, err
	}
	buf.Pop(desc.Length)
	return desc.Decode(frame[HeaderLen:])
}
