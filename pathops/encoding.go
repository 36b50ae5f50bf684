package pathops

import (
	"fmt"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

const (
	// SampleSize is the number of leading bytes handed to a Detector.
	SampleSize = 200

	// UnknownEncoding is returned when detection is inconclusive.
	UnknownEncoding = "unknown"

	// UTF8BOM is the default label used when writing text.
	UTF8BOM = "UTF-8 with BOM"
)

// Detector guesses the character encoding of a byte sample. Implementations
// return an encoding label or UnknownEncoding.
type Detector interface {
	Detect(sample []byte) string
}

// DetectorFunc adapts a plain function to the Detector interface.
type DetectorFunc func(sample []byte) string

// Detect calls f(sample).
func (f DetectorFunc) Detect(sample []byte) string { return f(sample) }

// ChardetDetector is the statistical Detector backed by saintfish/chardet.
type ChardetDetector struct{}

// Detect returns the best chardet guess for sample.
func (ChardetDetector) Detect(sample []byte) string {
	if len(sample) == 0 {
		return UnknownEncoding
	}
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result == nil || result.Confidence == 0 || result.Charset == "" {
		return UnknownEncoding
	}
	return result.Charset
}

// aliases maps detector spellings onto names the codec indexes know.
var aliases = map[string]string{
	"gb-18030":     "gb18030",
	"iso-8859-8-i": "iso-8859-8",
	"ibm420-ltr":   "ibm420",
	"ibm420-rtl":   "ibm420",
	"ibm424-ltr":   "ibm424",
	"ibm424-rtl":   "ibm424",
}

// codec pairs an encoding with the checks its decoder needs. x/text replaces
// malformed input with U+FFFD, so UTF-8 input is validated up front and
// fixed-width Unicode input must be a whole number of code units.
type codec struct {
	enc     encoding.Encoding
	unicode bool
	utf8    bool
	unit    int
}

// lookupCodec resolves an encoding label. Unicode labels are handled here so
// BOM behavior stays explicit; everything else goes through the WHATWG index
// and then the IANA registry.
func lookupCodec(label string) (codec, error) {
	name := strings.ToLower(strings.TrimSpace(label))
	key := strings.NewReplacer("_", "-", " ", "-").Replace(name)

	switch key {
	case "utf-8-with-bom", "utf-8-sig", "utf8-sig", "utf-8-bom", "utf8bom":
		return codec{enc: unicode.UTF8BOM, unicode: true, utf8: true, unit: 1}, nil
	case "utf-8", "utf8":
		return codec{enc: unicode.UTF8, unicode: true, utf8: true, unit: 1}, nil
	case "utf-16", "utf16":
		return codec{enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), unicode: true, unit: 2}, nil
	case "utf-16le", "utf16le":
		return codec{enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), unicode: true, unit: 2}, nil
	case "utf-16be", "utf16be":
		return codec{enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), unicode: true, unit: 2}, nil
	case "utf-32", "utf32":
		return codec{enc: utf32.UTF32(utf32.LittleEndian, utf32.UseBOM), unicode: true, unit: 4}, nil
	case "utf-32le", "utf32le":
		return codec{enc: utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), unicode: true, unit: 4}, nil
	case "utf-32be", "utf32be":
		return codec{enc: utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), unicode: true, unit: 4}, nil
	}

	if alias, ok := aliases[key]; ok {
		name = alias
	}
	if enc, _ := charset.Lookup(name); enc != nil {
		return codec{enc: enc}, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return codec{enc: enc}, nil
	}
	return codec{}, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, label)
}

// decode converts raw bytes to a string. Unicode codecs drop the leading
// byte-order mark.
func (c codec) decode(raw []byte) (string, error) {
	if c.utf8 {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, raw); err != nil {
			return "", fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	if c.unit > 1 && len(raw)%c.unit != 0 {
		return "", fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrDecode, len(raw), c.unit)
	}
	dec := c.enc.NewDecoder()
	if c.utf8 {
		dec = unicode.UTF8.NewDecoder()
	}
	out, _, err := transform.Bytes(dec, raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	text := string(out)
	if c.unicode {
		text = strings.TrimPrefix(text, "\uFEFF")
	}
	return text, nil
}

func (c codec) encode(text string) ([]byte, error) {
	out, _, err := transform.Bytes(c.enc.NewEncoder(), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode failed: %w", err)
	}
	return out, nil
}
