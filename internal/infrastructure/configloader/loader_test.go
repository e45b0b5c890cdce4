package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte("logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "ethereum", cfg.State.NetworkType)
	assert.Equal(t, "dark", cfg.State.Colorway)
	assert.Equal(t, 20.0, cfg.Scheduler.TicksPerSecond)
	assert.Equal(t, 5, cfg.Scheduler.Burst)
	assert.Equal(t, 300, cfg.Populated.TTLSeconds)
	assert.Equal(t, 50.0, cfg.Fees.WarningThresholdUSD)
	assert.Equal(t, int32(6), cfg.Fees.NativeDisplayDecimals)
	assert.Equal(t, 100, cfg.Events.SubscriberBuffer)
	assert.Equal(t, 256, cfg.Events.HistorySize)
}

func TestParse_Values(t *testing.T) {
	data := []byte(`
server:
  port: ":9090"
  readTimeout: 3
state:
  seedFile: seed.json
  networkType: solana
  colorway: light
scheduler:
  ticksPerSecond: 2.5
  burst: 1
populated:
  ttlSeconds: -1
fees:
  warningThresholdUSD: 10
  nativeDisplayDecimals: 4
events:
  historySize: 8
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 3, cfg.Server.ReadTimeout)
	assert.Equal(t, "seed.json", cfg.State.SeedFile)
	assert.Equal(t, "solana", cfg.State.NetworkType)
	assert.Equal(t, "light", cfg.State.Colorway)
	assert.Equal(t, 2.5, cfg.Scheduler.TicksPerSecond)
	assert.Equal(t, 1, cfg.Scheduler.Burst)
	assert.Equal(t, -1, cfg.Populated.TTLSeconds)
	assert.Equal(t, 10.0, cfg.Fees.WarningThresholdUSD)
	assert.Equal(t, int32(4), cfg.Fees.NativeDisplayDecimals)
	assert.Equal(t, 8, cfg.Events.HistorySize)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("state:\n  colorway: sepia\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("fees:\n  warningThresholdUSD: -1\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("server: [1, 2"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \":7000\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Server.Port)

	_, err = Load(filepath.Join(dir, "missing.yml"))
	assert.Error(t, err)
}
