package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.Equal(t, 9420, GetInt(ListeningPortKey))
	require.Equal(t, DbTypeBadger, GetString(DbTypeKey))
	require.NoError(t, validate())
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"port_out_of_range", ListeningPortKey, 0},
		{"unknown_db_type", DbTypeKey, "cloud"},
		{"null_request_rate", RequestRateKey, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			previous := vip.Get(tt.key)
			Set(tt.key, tt.value)
			defer Set(tt.key, previous)

			require.Error(t, validate())
		})
	}
}
