package utils

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListenAddr(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		want    string
		wantErr bool
	}{
		{"bare port", "12000", ":12000", false},
		{"host and port", "localhost:12000", "localhost:12000", false},
		{"all interfaces", "0.0.0.0:13000", "0.0.0.0:13000", false},
		{"colon port", ":9000", ":9000", false},
		{"not a port", "localhost", "", true},
		{"port too high", "70000", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeListenAddr(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBaseURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"12000", "http://localhost:12000"},
		{":12000", "http://localhost:12000"},
		{"127.0.0.1:13000", "http://127.0.0.1:13000"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			got, err := BaseURL(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAddrAvailable(t *testing.T) {
	// port 0 lets the OS pick a free port
	assert.True(t, IsAddrAvailable("127.0.0.1:0"))
}

func TestIsAddrAvailable_InUse(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "Failed to create test listener")
	defer listener.Close()

	assert.False(t, IsAddrAvailable(listener.Addr().String()))
}
