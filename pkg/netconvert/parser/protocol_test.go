package parser

import (
	"testing"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

func TestLabel(t *testing.T) {
	catalog := models.DefaultCatalog()
	tests := []struct {
		line     string
		expected string
		ok       bool
	}{
		{"IPv4", "IPv4", true},
		{"  ipv6: ", "IPv6", true},
		{"== TCP ==", "TCP", true},
		{"UDP,", "", false},
		{"Ethernet\t", "", false},
		{"Address  Packets", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		name, ok := Label(tt.line, catalog)
		if name != tt.expected || ok != tt.ok {
			t.Errorf("Label(%q) = (%q, %v), expected (%q, %v)", tt.line, name, ok, tt.expected, tt.ok)
		}
	}
}

func TestIdentify(t *testing.T) {
	catalog := models.DefaultCatalog()
	tests := []struct {
		source   string
		label    string
		expected string
	}{
		{"/data/ethernet_endpoints.csv", "", "Ethernet"},
		{"IPV4.txt", "", "IPv4"},
		{"capture-ipv6.tsv", "", "IPv6"},
		{"Tcp.txt", "UDP", "TCP"},
		{"/tmp/udp/export.txt", "", models.DefaultSheetName},
		{"export.txt", "UDP", "UDP"},
		{"", "", models.DefaultSheetName},
	}

	for _, tt := range tests {
		result := Identify(tt.source, tt.label, catalog)
		if result != tt.expected {
			t.Errorf("Identify(%q, %q) = %q, expected %q", tt.source, tt.label, result, tt.expected)
		}
	}
}
