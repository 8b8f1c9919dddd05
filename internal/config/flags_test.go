package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		host    string
		port    int
	}{
		{name: "localhost with port", input: "localhost:8080", host: "localhost", port: 8080},
		{name: "ip with port", input: "127.0.0.1:9090", host: "127.0.0.1", port: 9090},
		{name: "empty host", input: ":8080", host: "", port: 8080},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:abc", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "bad ip", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.host, a.Host)
			assert.Equal(t, tt.port, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	a := NetAddress{Host: "localhost", Port: 8080}
	assert.Equal(t, "localhost:8080", a.String())

	var zero NetAddress
	assert.Equal(t, "", zero.String())
}
