package pathops

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const multiByte = "héllo, 世界 🌍\nsecond line"

func TestCreateFile(t *testing.T) {
	ops := New()
	dir := tempDir(t)

	p := dir + "/new.txt"
	require.NoError(t, ops.CreateFile(p))
	assert.True(t, ExistsAsFile(p))
	assert.Equal(t, "", readFile(t, p))

	// Existing file is left alone
	writeFile(t, p, "keep")
	require.NoError(t, ops.CreateFile(p))
	assert.Equal(t, "keep", readFile(t, p))

	// So is an existing directory
	require.NoError(t, ops.CreateFile(dir))
	assert.True(t, ExistsAsDir(dir))
}

func TestEmptyFile(t *testing.T) {
	ops := New()
	dir := tempDir(t)

	p := dir + "/full.txt"
	writeFile(t, p, "content")
	require.NoError(t, ops.EmptyFile(p))
	assert.Equal(t, "", readFile(t, p))

	missing := dir + "/missing.txt"
	require.NoError(t, ops.EmptyFile(missing))
	assert.True(t, ExistsAsFile(missing))

	sub := dir + "/sub"
	writeFile(t, sub+"/keep.txt", "x")
	require.NoError(t, ops.EmptyFile(sub))
	assert.Equal(t, "x", readFile(t, sub+"/keep.txt"))
}

func TestWriteReadRoundTrip(t *testing.T) {
	ops := New()

	for _, enc := range []string{"UTF-8", "UTF-8 with BOM", "UTF-16", "UTF-16LE", "UTF-16BE", "UTF-32"} {
		t.Run(enc, func(t *testing.T) {
			p := tempDir(t) + "/text.txt"
			require.NoError(t, ops.WriteText(p, multiByte, enc))

			got, err := ops.ReadText(p, enc)
			require.NoError(t, err)
			assert.Equal(t, multiByte, got)
		})
	}
}

func TestWriteTextDefaultsToUTF8WithBOM(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/bom.txt"

	require.NoError(t, ops.WriteText(p, multiByte, ""))
	raw := readFile(t, p)
	assert.True(t, strings.HasPrefix(raw, "\xef\xbb\xbf"))
	assert.Equal(t, multiByte, strings.TrimPrefix(raw, "\xef\xbb\xbf"))

	enc, err := ops.DetectTextEncoding(p)
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", enc)

	got, err := ops.ReadText(p, "")
	require.NoError(t, err)
	assert.Equal(t, multiByte, got)
}

func TestWriteTextUsesConfiguredDefault(t *testing.T) {
	ops := New(WithDefaultEncoding("UTF-8"))
	p := tempDir(t) + "/plain.txt"

	require.NoError(t, ops.WriteText(p, multiByte, ""))
	assert.Equal(t, multiByte, readFile(t, p))
}

func TestWriteTextOverwrites(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/over.txt"
	writeFile(t, p, "a much longer original body")

	require.NoError(t, ops.WriteText(p, "short", "UTF-8"))
	assert.Equal(t, "short", readFile(t, p))
}

func TestWriteTextSkipsDirectory(t *testing.T) {
	ops := New()
	dir := tempDir(t)

	require.NoError(t, ops.WriteText(dir, "ignored", "UTF-8"))
	assert.True(t, ExistsAsDir(dir))
}

func TestWriteTextUnencodable(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/latin.txt"
	writeFile(t, p, "original")

	err := ops.WriteText(p, "世界", "windows-1252")
	assert.Error(t, err)
	assert.Equal(t, "original", readFile(t, p))
}

func TestReadTextDecodeError(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/bad.txt"
	writeFile(t, p, "a\xc3\x28b")

	_, err := ops.ReadText(p, "UTF-8")
	assert.ErrorIs(t, err, ErrDecode)

	writeFile(t, p, "odd")
	_, err = ops.ReadText(p, "UTF-16LE")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestReadTextUnsupportedEncoding(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/x.txt"
	writeFile(t, p, "x")

	_, err := ops.ReadText(p, "klingon-8")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	err = ops.WriteText(p, "y", "klingon-8")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
	assert.Equal(t, "x", readFile(t, p))
}

func TestReadTextMissingFile(t *testing.T) {
	ops := New()

	_, err := ops.ReadText(tempDir(t)+"/missing.txt", "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadTextEmptyFile(t *testing.T) {
	ops := New()
	p := tempDir(t) + "/empty.txt"
	writeFile(t, p, "")

	got, err := ops.ReadText(p, "")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDetectTextEncodingUsesInjectedDetector(t *testing.T) {
	var sampled int
	ops := New(WithDetector(DetectorFunc(func(sample []byte) string {
		sampled = len(sample)
		return "windows-1252"
	})))

	p := tempDir(t) + "/long.txt"
	writeFile(t, p, strings.Repeat("caf\xe9 ", 100))

	enc, err := ops.DetectTextEncoding(p)
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", enc)
	assert.Equal(t, SampleSize, sampled)

	got, err := ops.ReadText(p, "")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("café ", 100), got)
}

func TestReadTextUnknownFallsBackToUTF8(t *testing.T) {
	ops := New(WithDetector(DetectorFunc(func([]byte) string { return UnknownEncoding })))
	p := tempDir(t) + "/u.txt"
	writeFile(t, p, multiByte)

	got, err := ops.ReadText(p, "")
	require.NoError(t, err)
	assert.Equal(t, multiByte, got)
}

func TestConvertTextEncoding(t *testing.T) {
	ops := New()

	t.Run("explicit source", func(t *testing.T) {
		p := tempDir(t) + "/c.txt"
		writeFile(t, p, "héllo")

		require.NoError(t, ops.ConvertTextEncoding(p, "windows-1252", "UTF-8"))
		assert.Equal(t, "h\xe9llo", readFile(t, p))

		got, err := ops.ReadText(p, "windows-1252")
		require.NoError(t, err)
		assert.Equal(t, "héllo", got)
	})

	t.Run("detected source", func(t *testing.T) {
		p := tempDir(t) + "/c.txt"
		require.NoError(t, ops.WriteText(p, multiByte, ""))

		require.NoError(t, ops.ConvertTextEncoding(p, "UTF-16LE", ""))
		got, err := ops.ReadText(p, "UTF-16LE")
		require.NoError(t, err)
		assert.Equal(t, multiByte, got)
	})

	t.Run("decode failure leaves file", func(t *testing.T) {
		p := tempDir(t) + "/c.txt"
		writeFile(t, p, "a\xffb")

		err := ops.ConvertTextEncoding(p, "UTF-16", "UTF-8")
		assert.ErrorIs(t, err, ErrDecode)
		assert.Equal(t, "a\xffb", readFile(t, p))
	})
}

func TestIsTextFile(t *testing.T) {
	ops := New()
	dir := tempDir(t)

	text := dir + "/notes.txt"
	writeFile(t, text, "just some plain words\n")
	ok, err := ops.IsTextFile(text)
	require.NoError(t, err)
	assert.True(t, ok)

	png := dir + "/pixel.png"
	writeFile(t, png, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	ok, err = ops.IsTextFile(png)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = ops.IsTextFile(dir + "/missing")
	assert.Error(t, err)
}
