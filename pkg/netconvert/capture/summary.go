package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/rs/zerolog"
)

// Protocol keys produced by Summarize.
const (
	ProtocolEthernet = "Ethernet"
	ProtocolIPv4     = "IPv4"
	ProtocolIPv6     = "IPv6"
	ProtocolTCP      = "TCP"
	ProtocolUDP      = "UDP"
)

// Protocols lists the protocol keys in export order.
var Protocols = []string{ProtocolEthernet, ProtocolIPv4, ProtocolIPv6, ProtocolTCP, ProtocolUDP}

// cancelCheckInterval is how many packets are read between context checks.
const cancelCheckInterval = 1024

// Endpoint holds the traffic counters of one address (and port).
type Endpoint struct {
	Address   string
	Port      uint16
	HasPort   bool
	TxPackets uint64
	TxBytes   uint64
	RxPackets uint64
	RxBytes   uint64
}

// Packets returns the packets sent and received by the endpoint.
func (e *Endpoint) Packets() uint64 { return e.TxPackets + e.RxPackets }

// Bytes returns the bytes sent and received by the endpoint.
func (e *Endpoint) Bytes() uint64 { return e.TxBytes + e.RxBytes }

type endpointKey struct {
	address string
	port    uint16
}

// Summary aggregates endpoint counters per protocol.
type Summary struct {
	// Packets is the number of packets read.
	Packets int
	// NonIP counts packets without an IPv4 or IPv6 layer.
	NonIP int

	endpoints map[string]map[endpointKey]*Endpoint
}

func newSummary() *Summary {
	return &Summary{endpoints: make(map[string]map[endpointKey]*Endpoint)}
}

// Endpoints returns the endpoints of protocol ordered by total packets
// descending, then address and port.
func (s *Summary) Endpoints(protocol string) []*Endpoint {
	m := s.endpoints[protocol]
	out := make([]*Endpoint, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Packets() != b.Packets() {
			return a.Packets() > b.Packets()
		}
		if a.Address != b.Address {
			return a.Address < b.Address
		}
		return a.Port < b.Port
	})
	return out
}

func (s *Summary) endpoint(protocol, address string, port uint16, hasPort bool) *Endpoint {
	m, ok := s.endpoints[protocol]
	if !ok {
		m = make(map[endpointKey]*Endpoint)
		s.endpoints[protocol] = m
	}
	k := endpointKey{address: address, port: port}
	e, ok := m[k]
	if !ok {
		e = &Endpoint{Address: address, Port: port, HasPort: hasPort}
		m[k] = e
	}
	return e
}

// record counts one packet of size bytes from src to dst.
func (s *Summary) record(protocol, src string, srcPort uint16, dst string, dstPort uint16, hasPort bool, size uint64) {
	from := s.endpoint(protocol, src, srcPort, hasPort)
	from.TxPackets++
	from.TxBytes += size

	to := s.endpoint(protocol, dst, dstPort, hasPort)
	to.RxPackets++
	to.RxBytes += size
}

// add decodes one packet and updates every protocol it carries.
func (s *Summary) add(packet gopacket.Packet, size uint64) {
	s.Packets++

	if eth, ok := packet.Layer(layers.LayerTypeEthernet).(*layers.Ethernet); ok {
		s.record(ProtocolEthernet, eth.SrcMAC.String(), 0, eth.DstMAC.String(), 0, false, size)
	}

	var src, dst string
	if ip4, ok := packet.Layer(layers.LayerTypeIPv4).(*layers.IPv4); ok {
		src, dst = ip4.SrcIP.String(), ip4.DstIP.String()
		s.record(ProtocolIPv4, src, 0, dst, 0, false, size)
	} else if ip6, ok := packet.Layer(layers.LayerTypeIPv6).(*layers.IPv6); ok {
		src, dst = ip6.SrcIP.String(), ip6.DstIP.String()
		s.record(ProtocolIPv6, src, 0, dst, 0, false, size)
	}
	if src == "" {
		s.NonIP++
		return
	}

	if tcp, ok := packet.Layer(layers.LayerTypeTCP).(*layers.TCP); ok {
		s.record(ProtocolTCP, src, uint16(tcp.SrcPort), dst, uint16(tcp.DstPort), true, size)
	} else if udp, ok := packet.Layer(layers.LayerTypeUDP).(*layers.UDP); ok {
		s.record(ProtocolUDP, src, uint16(udp.SrcPort), dst, uint16(udp.DstPort), true, size)
	}
}

// Summarize reads a pcap or pcapng stream and aggregates endpoint counters.
// Packet sizes use the original wire length. A truncated final packet ends
// the read without error.
func Summarize(ctx context.Context, r io.Reader, logger zerolog.Logger) (*Summary, error) {
	pr, err := newReader(r)
	if err != nil {
		return nil, err
	}

	s := newSummary()
	linkType := pr.LinkType()
	opts := gopacket.DecodeOptions{Lazy: true, NoCopy: true}

	for {
		if s.Packets%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		data, ci, err := pr.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			logger.Warn().Int("packets", s.Packets).Msg("capture truncated")
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read packet %d: %w", s.Packets+1, err)
		}

		size := uint64(ci.Length)
		if size == 0 {
			size = uint64(len(data))
		}
		s.add(gopacket.NewPacket(data, linkType, opts), size)
	}

	logger.Debug().
		Int("packets", s.Packets).
		Int("non_ip", s.NonIP).
		Str("link_type", linkType.String()).
		Msg("capture summarized")

	return s, nil
}

// SummarizeFile opens path and summarizes it.
func SummarizeFile(ctx context.Context, path string, logger zerolog.Logger) (*Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Summarize(ctx, f, logger)
}
