package pathops

import (
	"io"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// CreateFile creates an empty file at p unless something already exists there.
func (o *Ops) CreateFile(p string) error {
	p = Normalize(p)
	if Exists(p) {
		return nil
	}
	f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE|os.O_EXCL, o.filePerm)
	if err != nil {
		return o.fail("create file", p, err)
	}
	if err := f.Close(); err != nil {
		return o.fail("create file", p, err)
	}
	o.logger.Debug("file created", zap.String("path", p))
	return nil
}

// EmptyFile truncates p to zero length by removing and recreating it.
// Directories are left alone.
func (o *Ops) EmptyFile(p string) error {
	p = Normalize(p)
	if ExistsAsDir(p) {
		return nil
	}
	if err := o.Remove(p); err != nil {
		return err
	}
	return o.CreateFile(p)
}

// DetectTextEncoding guesses the encoding of p from its first SampleSize
// bytes. The result is a hint: short or mixed files are often misjudged.
func (o *Ops) DetectTextEncoding(p string) (string, error) {
	p = Normalize(p)
	f, err := os.Open(p)
	if err != nil {
		return "", o.fail("detect encoding", p, err)
	}
	defer f.Close()

	sample := make([]byte, SampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", o.fail("detect encoding", p, err)
	}
	label := o.detector.Detect(sample[:n])
	o.logger.Debug("encoding detected", zap.String("path", p), zap.String("encoding", label))
	return label, nil
}

// ReadText reads the whole of p and decodes it. An empty encoding is
// detected first; an inconclusive detection is read as UTF-8.
func (o *Ops) ReadText(p, encoding string) (string, error) {
	p = Normalize(p)
	if encoding == "" {
		detected, err := o.DetectTextEncoding(p)
		if err != nil {
			return "", err
		}
		encoding = detected
	}
	if encoding == UnknownEncoding {
		encoding = "UTF-8"
	}

	c, err := lookupCodec(encoding)
	if err != nil {
		return "", err
	}
	raw, err := os.ReadFile(p)
	if err != nil {
		return "", o.fail("read text", p, err)
	}
	text, err := c.decode(raw)
	if err != nil {
		return "", o.fail("read text", p, err)
	}
	return text, nil
}

// WriteText replaces p with text encoded as encoding, or as the configured
// default when encoding is empty. Directories are left alone.
func (o *Ops) WriteText(p, text, encoding string) error {
	p = Normalize(p)
	if ExistsAsDir(p) {
		return nil
	}
	if encoding == "" {
		encoding = o.defaultEncoding
	}
	c, err := lookupCodec(encoding)
	if err != nil {
		return err
	}
	data, err := c.encode(text)
	if err != nil {
		return o.fail("write text", p, err)
	}

	if err := o.EmptyFile(p); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_WRONLY|os.O_TRUNC, o.filePerm)
	if err != nil {
		return o.fail("write text", p, err)
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return o.fail("write text", p, err)
	}
	if err := f.Close(); err != nil {
		return o.fail("write text", p, err)
	}
	o.logger.Debug("text written",
		zap.String("path", p),
		zap.String("encoding", encoding),
		zap.Int("bytes", len(data)))
	return nil
}

// ConvertTextEncoding rewrites p in target, reading it as source or as the
// detected encoding when source is empty. The rewrite is not atomic.
func (o *Ops) ConvertTextEncoding(p, target, source string) error {
	text, err := o.ReadText(p, source)
	if err != nil {
		return err
	}
	return o.WriteText(p, text, target)
}

// IsTextFile sniffs the MIME type of p and reports whether it is textual.
func (o *Ops) IsTextFile(p string) (bool, error) {
	p = Normalize(p)
	mtype, err := mimetype.DetectFile(p)
	if err != nil {
		return false, o.fail("detect mime type", p, err)
	}
	for m := mtype; m != nil; m = m.Parent() {
		if strings.HasPrefix(m.String(), "text/") ||
			m.Is("application/json") ||
			m.Is("application/xml") ||
			m.Is("application/javascript") {
			return true, nil
		}
	}
	return false, nil
}
