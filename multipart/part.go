package multipart

import "github.com/otanistudio/pmhttp/pkg/async"

const (
	contentTypeText        = "text/plain; charset=utf-8"
	contentTypeOctetStream = "application/octet-stream"
)

// Field is an ordinary key/value form field. Fields are encoded before any
// body parts, in the order supplied. Duplicate names are legal and all of
// them are encoded. The zero Value encodes as an empty string.
type Field struct {
	Name  string
	Value string
}

// Content is the payload of a body part: raw bytes or text. Construct it
// with Bytes or Text. The distinction only affects the Content-Type
// inferred when PartData.MIMEType is empty; on the wire, text is emitted
// as its UTF-8 bytes either way.
type Content struct {
	data   []byte
	isText bool
}

// Bytes wraps a byte slice as part content. The encoder reads from b
// without copying; b must not be mutated until encoding finishes.
func Bytes(b []byte) Content { return Content{data: b} }

// Text wraps a string as part content.
func Text(s string) Content { return Content{data: []byte(s), isText: true} }

func (c Content) defaultType() string {
	if c.isText {
		return contentTypeText
	}
	return contentTypeOctetStream
}

// PartData describes a single encodable part. It is a pure data carrier:
// the encoder performs no validation and encodes whatever it is given,
// byte for byte.
type PartData struct {
	Name     string // required by the multipart grammar, not enforced
	Filename string // empty for non-file parts
	MIMEType string // inferred from Content when empty
	Content  Content
}

// Part is one entry in the encoder's part list: either data that is ready
// now, or a future resolving to zero or more PartData entries.
type Part struct {
	data    PartData
	pending *async.Future[[]PartData]
}

// Known wraps part data that is available immediately.
func Known(d PartData) Part { return Part{data: d} }

// Pending wraps a future resolving to a sequence of part data entries, for
// content produced asynchronously — a file picker result, a remote fetch.
// The encoder awaits the future when its cursor reaches the entry and
// consumes the resolved sequence in order, exactly once. A future that
// resolves to an empty sequence contributes nothing to the output.
func Pending(f *async.Future[[]PartData]) Part { return Part{pending: f} }
