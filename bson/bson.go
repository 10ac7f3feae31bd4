// Package bson provides a BSON codec implementation.
package bson

import (
	"github.com/zoobzio/flame"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements flame.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() flame.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}

// Decode returns a coercer unmarshaling BSON input into a new T.
func Decode[T any]() flame.Coercer {
	return flame.Decode[T](New())
}
