// Package yaml provides a YAML codec implementation.
package yaml

import (
	"github.com/zoobzio/flame"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements flame.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() flame.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// Decode returns a coercer unmarshaling YAML input into a new T.
func Decode[T any]() flame.Coercer {
	return flame.Decode[T](New())
}
