package configs

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-link-shortener/internal/app/registry"
	"reflect"
	"testing"
	"time"
)

func TestReadConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		want    *Config
		wantErr bool
	}{
		{
			name: "read config with defaults",
			want: &Config{ServerAddress: "localhost:8080", BaseURL: "http://localhost:8080",
				CollisionPolicy: "overwrite", RegistryShards: 32, ShutdownTimeout: 5 * time.Second},
		},
		{
			name: "read config from env",
			env: map[string]string{"SERVER_ADDRESS": ":9090", "BASE_URL": "http://sho.rt",
				"TRUSTED_SUBNET": "10.0.0.0/8", "COLLISION_POLICY": "retry", "REGISTRY_SHARDS": "8",
				"SHUTDOWN_TIMEOUT": "1s"},
			want: &Config{ServerAddress: ":9090", BaseURL: "http://sho.rt", TrustedSubnet: "10.0.0.0/8",
				CollisionPolicy: "retry", RegistryShards: 8, ShutdownTimeout: time.Second},
		},
		{
			name: "flags override env",
			env:  map[string]string{"SERVER_ADDRESS": ":9090"},
			args: []string{"-a", ":7070", "-p", "retry"},
			want: &Config{ServerAddress: ":7070", BaseURL: "http://localhost:8080",
				CollisionPolicy: "retry", RegistryShards: 32, ShutdownTimeout: 5 * time.Second},
		},
		{
			name:    "unknown policy",
			env:     map[string]string{"COLLISION_POLICY": "reject"},
			wantErr: true,
		},
		{
			name:    "bad subnet",
			env:     map[string]string{"TRUSTED_SUBNET": "not-a-cidr"},
			wantErr: true,
		},
		{
			name:    "bad shard count",
			args:    []string{"-n", "0"},
			wantErr: true,
		},
		{
			name:    "too many shards",
			env:     map[string]string{"REGISTRY_SHARDS": "65537"},
			wantErr: true,
		},
		{
			name:    "bad duration",
			env:     map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got, err := readConfig(tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ReadConfig() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigNetworkAndPolicy(t *testing.T) {
	cfg := &Config{TrustedSubnet: "192.168.0.0/16", CollisionPolicy: "retry"}
	network, err := cfg.Network()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/16", network.String())
	assert.Equal(t, registry.PolicyRetry, cfg.Policy())

	cfg = &Config{}
	network, err = cfg.Network()
	require.NoError(t, err)
	assert.Nil(t, network)
	assert.Equal(t, registry.PolicyOverwrite, cfg.Policy())
}
