package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingyongtan/NetworkConvertdata/pkg/netconvert/models"
)

func TestLoadCatalog_Default(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCatalog().ProtocolNames(), c.ProtocolNames())
}

func TestLoadCatalog_Merge(t *testing.T) {
	path := writeFile(t, "schemas.yaml", `
schemas:
  - name: QUIC
    headers: [Address, Port, Packets, Bytes, Streams]
  - name: ipv4
    headers: [Address, Packets, Bytes, Country]
numeric_columns: [Streams]
port_protocols: [QUIC, tcp]
`)

	c, err := LoadCatalog(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ethernet", "ipv4", "IPv6", "TCP", "UDP", "QUIC"}, c.ProtocolNames())

	s, ok := c.Lookup("IPv4")
	require.True(t, ok)
	assert.Equal(t, []string{"Address", "Packets", "Bytes", "Country"}, s.Headers)

	assert.True(t, c.IsNumericColumn("Streams"))
	assert.True(t, c.IsNumericColumn("Packets"))
	assert.True(t, c.DropsPort("QUIC"))
	assert.True(t, c.DropsPort("TCP"))
	assert.Len(t, c.Config().PortProtocols, 3)
	assert.True(t, c.DropsGeo("IPv4"))
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no name", "schemas:\n  - headers: [Address]\n"},
		{"no headers", "schemas:\n  - name: QUIC\n"},
		{"bad yaml", "schemas: {\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeFile(t, "s.yaml", tt.content))
			assert.Error(t, err)
		})
	}

	_, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMergeCatalog_DoesNotMutateBase(t *testing.T) {
	base := models.DefaultCatalogConfig()
	extra := models.CatalogConfig{Schemas: []models.Schema{{Name: "TCP", Headers: []string{"Address"}}}}

	out := MergeCatalog(base, extra)

	assert.Equal(t, []string{"Address"}, out.Schemas[3].Headers)
	assert.NotEqual(t, []string{"Address"}, base.Schemas[3].Headers)
}
