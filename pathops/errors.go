package pathops

import "errors"

var (
	// ErrDecode is wrapped by ReadText when the bytes do not match the encoding.
	ErrDecode = errors.New("decode failed")

	// ErrUnsupportedEncoding is returned for labels no codec is registered for.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)
