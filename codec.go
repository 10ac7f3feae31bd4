package flame

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Decode returns a coercer that unmarshals a string or []byte into a new T
// using codec. Defaults for such parameters are written encoded:
//
//	flame.Keyword("filter", flame.Decode[Filter](json.New()), `{}`)
//
// Decode failures are *CodecError values wrapping ErrUnmarshal.
func Decode[T any](codec Codec) Coercer {
	return CoerceFunc(func(raw any) (any, error) {
		data, err := toBytes(raw)
		if err != nil {
			return nil, err
		}
		var v T
		if err := codec.Unmarshal(data, &v); err != nil {
			return nil, newCodecError(codec.ContentType(), err)
		}
		return v, nil
	})
}
