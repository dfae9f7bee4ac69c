package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func TestDecode(t *testing.T) {
	assert.Equal(t, "Address,Packets", Decode([]byte("\xef\xbb\xbfAddress,Packets")))
	assert.Equal(t, "a\uFFFDb", Decode([]byte("a\xffb")))

	utf16, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Bytes([]byte("IPv4\r\nAddress,Packets"))
	require.NoError(t, err)
	assert.Equal(t, "IPv4\r\nAddress,Packets", Decode(utf16))
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c", ""}, SplitLines("a\r\nb\rc\n"))
}
