package multipart

import (
	"bytes"
	"fmt"
	"io"
)

type state int

const (
	stateNext       state = iota // pick the next part, or move to the terminator
	stateHeader                  // draining the current part's header block
	stateContent                 // draining the current part's content bytes
	stateTerminator              // draining the closing delimiter
	stateDone
)

// Encoder serializes fields and parts into a multipart/form-data body,
// one Read at a time. Create one with NewEncoder for each outgoing body;
// an Encoder cannot be rewound or reused.
//
// Read blocks while a Pending part's future is being resolved. There is no
// forced-unblock mechanism: abandoning the body (the caller ceasing to
// read) does not interrupt a wait already in progress, so producers that
// may stall should watch the context handed to async.Async.
type Encoder struct {
	boundary string
	fields   []Field
	parts    []Part

	state    state
	fieldIdx int
	partIdx  int
	expanded []PartData // resolved sequence of the pending entry in progress
	expIdx   int

	buf     []byte // bytes of the stage being drained
	content []byte // content queued behind the current header block
	off     int
	started bool // at least one part header was built; delimiters need a leading CRLF
	err     error
}

// NewEncoder returns an encoder over the given fields and parts. The
// boundary is used verbatim and never validated; the caller guarantees it
// does not occur inside any part's content (see NewBoundary). Both slices
// are read, not copied, and must not be mutated once encoding starts.
func NewEncoder(boundary string, fields []Field, parts []Part) *Encoder {
	return &Encoder{boundary: boundary, fields: fields, parts: parts}
}

// ContentType returns the value for the request's Content-Type header,
// carrying the encoder's boundary parameter.
func (e *Encoder) ContentType() string {
	return "multipart/form-data; boundary=" + e.boundary
}

// Read fills p with the next encoded bytes and reports how many were
// written. It returns (0, io.EOF) once the body is exhausted, and keeps
// doing so on every later call. A failed Pending future surfaces as a
// sticky error wrapping ErrPendingPart; bytes already written in the same
// call are still returned alongside it, per the io.Reader contract.
func (e *Encoder) Read(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.state == stateDone {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && e.state != stateDone {
		switch e.state {
		case stateNext:
			d, ok, err := e.advance()
			if err != nil {
				e.err = fmt.Errorf("%w: %v", ErrPendingPart, err)
				return n, e.err
			}
			if !ok {
				e.buf = e.terminator()
				e.off = 0
				e.state = stateTerminator
				continue
			}
			e.buf = e.headerBlock(d)
			e.content = d.Content.data
			e.off = 0
			e.started = true
			e.state = stateHeader

		case stateHeader:
			n += e.drain(p[n:])
			if e.off == len(e.buf) {
				if len(e.content) == 0 {
					// Empty content: the header is still emitted in full,
					// only the content stage is skipped.
					e.state = stateNext
				} else {
					e.buf, e.off = e.content, 0
					e.content = nil
					e.state = stateContent
				}
			}

		case stateContent:
			n += e.drain(p[n:])
			if e.off == len(e.buf) {
				e.state = stateNext
			}

		case stateTerminator:
			n += e.drain(p[n:])
			if e.off == len(e.buf) {
				e.buf = nil
				e.state = stateDone
			}

		default:
			panic(fmt.Sprintf("multipart: encoder in invalid state %d", e.state))
		}
	}

	if n == 0 && e.state == stateDone {
		return 0, io.EOF
	}
	return n, nil
}

// drain copies as much of the current stage's remainder as fits into p.
// Copies are byte-level, so a multi-byte UTF-8 sequence may be split
// across calls.
func (e *Encoder) drain(p []byte) int {
	n := copy(p, e.buf[e.off:])
	e.off += n
	return n
}

// advance moves the cursors forward and returns the next part to encode:
// fields first, then parts in list order, expanding each pending entry
// into its resolved sequence. It blocks while a pending future resolves.
// ok is false once everything is exhausted. The loop (rather than
// recursion) keeps a run of consecutive empty expansions from growing the
// stack.
func (e *Encoder) advance() (PartData, bool, error) {
	if e.fieldIdx < len(e.fields) {
		f := e.fields[e.fieldIdx]
		e.fieldIdx++
		return PartData{Name: f.Name, MIMEType: contentTypeText, Content: Text(f.Value)}, true, nil
	}

	for {
		if e.expIdx < len(e.expanded) {
			d := e.expanded[e.expIdx]
			e.expIdx++
			return d, true, nil
		}

		if e.partIdx >= len(e.parts) {
			return PartData{}, false, nil
		}
		part := e.parts[e.partIdx]
		e.partIdx++

		if part.pending == nil {
			return part.data, true, nil
		}
		seq, err := part.pending.Await()
		if err != nil {
			return PartData{}, false, err
		}
		e.expanded, e.expIdx = seq, 0
	}
}

// headerBlock renders the delimiter and header lines for one part. The
// leading CRLF belongs to the delimiter of the part that follows, so the
// first part emitted carries none.
func (e *Encoder) headerBlock(d PartData) []byte {
	var b bytes.Buffer
	if e.started {
		b.WriteString("\r\n")
	}
	b.WriteString("--")
	b.WriteString(e.boundary)
	b.WriteString("\r\n")

	b.WriteString(`Content-Disposition: form-data; name="`)
	b.WriteString(Escape(d.Name))
	b.WriteByte('"')
	if d.Filename != "" {
		b.WriteString(`; filename="`)
		b.WriteString(Escape(d.Filename))
		b.WriteByte('"')
	}
	b.WriteString("\r\n")

	b.WriteString("Content-Type: ")
	if d.MIMEType != "" {
		b.WriteString(d.MIMEType)
	} else {
		b.WriteString(d.Content.defaultType())
	}
	b.WriteString("\r\n\r\n")

	return b.Bytes()
}

func (e *Encoder) terminator() []byte {
	t := "--" + e.boundary + "--\r\n"
	if e.started {
		t = "\r\n" + t
	}
	return []byte(t)
}
