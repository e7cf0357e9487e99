package body

type payloadKind uint8

const (
	payloadBytes payloadKind = iota
	payloadText
)

// Body holds a request payload, either raw bytes or text written through
// SetString.
type Body struct {
	kind  payloadKind
	bytes []byte
	text  string
}

func New(b []byte) *Body {
	return &Body{kind: payloadBytes, bytes: b}
}

func Empty() *Body {
	return New([]byte{})
}

func FromString(s string) *Body {
	return &Body{kind: payloadText, text: s}
}

// SetString overwrites the payload with s verbatim. The payload is text from
// then on.
func (b *Body) SetString(s string) {
	b.kind = payloadText
	b.text = s
	b.bytes = nil
}

func (b *Body) IsText() bool {
	return b.kind == payloadText
}

func (b *Body) String() string {
	if b == nil {
		return ""
	}
	if b.kind == payloadText {
		return b.text
	}
	return string(b.bytes)
}

// Bytes returns the payload as bytes. Text payloads are converted on every
// call.
func (b *Body) Bytes() []byte {
	if b == nil {
		return nil
	}
	if b.kind == payloadText {
		return []byte(b.text)
	}
	return b.bytes
}

func (b *Body) Len() int {
	if b == nil {
		return 0
	}
	if b.kind == payloadText {
		return len(b.text)
	}
	return len(b.bytes)
}
