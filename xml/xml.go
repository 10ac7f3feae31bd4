// Package xml provides an XML codec implementation.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/flame"
)

// xmlCodec implements flame.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() flame.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// Decode returns a coercer unmarshaling XML input into a new T.
func Decode[T any]() flame.Coercer {
	return flame.Decode[T](New())
}
