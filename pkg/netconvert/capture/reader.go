// Package capture summarizes packet captures into per-protocol endpoint
// exports that the parser reads like any other network export.
package capture

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
)

// ErrUnknownFormat indicates input that is neither pcap nor pcapng.
var ErrUnknownFormat = errors.New("not a pcap or pcapng capture")

// Extensions lists the file extensions treated as captures.
var Extensions = []string{".pcap", ".pcapng", ".cap"}

var (
	pcapMagics = [][]byte{
		{0xd4, 0xc3, 0xb2, 0xa1}, // microseconds, little endian
		{0xa1, 0xb2, 0xc3, 0xd4}, // microseconds, big endian
		{0x4d, 0x3c, 0xb2, 0xa1}, // nanoseconds, little endian
		{0xa1, 0xb2, 0x3c, 0x4d}, // nanoseconds, big endian
	}
	pcapngMagic = []byte{0x0a, 0x0d, 0x0d, 0x0a}
)

// IsCapture reports whether path has a capture file extension.
func IsCapture(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// packetReader is the common surface of pcapgo.Reader and pcapgo.NgReader.
type packetReader interface {
	gopacket.PacketDataSource
	LinkType() layers.LinkType
}

// newReader picks the pcap or pcapng reader from the leading magic bytes.
func newReader(r io.Reader) (packetReader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(4)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}

	if bytes.Equal(magic, pcapngMagic) {
		ng, err := pcapgo.NewNgReader(br, pcapgo.DefaultNgReaderOptions)
		if err != nil {
			return nil, fmt.Errorf("open pcapng: %w", err)
		}
		return ng, nil
	}
	for _, m := range pcapMagics {
		if bytes.Equal(magic, m) {
			pr, err := pcapgo.NewReader(br)
			if err != nil {
				return nil, fmt.Errorf("open pcap: %w", err)
			}
			return pr, nil
		}
	}
	return nil, ErrUnknownFormat
}
