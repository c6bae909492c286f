package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurePostgresPool(t *testing.T) {
	tests := []struct {
		name      string
		config    *DatabaseConfig
		wantTLS   bool
		wantConns int32
		wantLife  time.Duration
	}{
		{
			name: "require ssl",
			config: &DatabaseConfig{
				Host: "db.internal", Port: 5432, User: "site", Password: "pw", Name: "gk",
				SSLMode: "require", MaxConnections: 20, ConnMaxLife: "30m",
			},
			wantTLS:   true,
			wantConns: 20,
			wantLife:  30 * time.Minute,
		},
		{
			name: "local defaults",
			config: &DatabaseConfig{
				Host: "localhost", Port: 5432, User: "postgres", Name: "gk",
				SSLMode: "disable",
			},
			wantTLS:   false,
			wantConns: 5,
			wantLife:  time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ConfigurePostgresPool(tt.config)
			require.NoError(t, err)

			assert.Equal(t, tt.config.User, cfg.ConnConfig.User)
			assert.Equal(t, tt.config.Name, cfg.ConnConfig.Database)
			assert.Equal(t, tt.wantConns, cfg.MaxConns)
			assert.Equal(t, tt.wantLife, cfg.MaxConnLifetime)
			if tt.wantTLS {
				assert.NotNil(t, cfg.ConnConfig.TLSConfig)
			} else {
				assert.Nil(t, cfg.ConnConfig.TLSConfig)
			}
		})
	}
}

func TestConfigureRedisOptions(t *testing.T) {
	opts := ConfigureRedisOptions(&RedisConfig{Address: "cache:6379", DB: 2, PoolSize: 4})
	assert.Equal(t, "cache:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, 4, opts.PoolSize)
	assert.Nil(t, opts.TLSConfig)

	opts = ConfigureRedisOptions(&RedisConfig{Address: "cache:6380", UseTLS: true})
	assert.NotNil(t, opts.TLSConfig)
}
