package core

// HeaderType is the constant "typ" header value.
const HeaderType = "JWT"

// Header is the JOSE header emitted on every token. Field order fixes the
// serialized key order: typ, then alg.
type Header struct {
	Typ string `json:"typ"`
	Alg string `json:"alg"`
}

// Core represents a split and decoded compact token. Segments are kept in
// their encoded form because the signature covers the encoded text.
type Core struct {
	Raw            string
	HeaderSegment  string
	PayloadSegment string
	Signature      string
	Header         map[string]any
	Claims         map[string]any
}

// Alg returns the "alg" header parameter and whether it is a string.
func (t *Core) Alg() (string, bool) {
	alg, ok := t.Header["alg"].(string)
	return alg, ok
}

// SignedParts returns the encoded segments covered by the signature.
func (t *Core) SignedParts() []string {
	return []string{t.HeaderSegment, t.PayloadSegment}
}
