package config

import (
	"os"
	"testing"

	"github.com/aryanved123/Ultimate-Texas-Holdem/internal/util"
	"github.com/stretchr/testify/assert"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("UTH_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("UTH_DEFAULT_BUY_IN", "900")
	defer clear2()

	a := assert.New(t)
	a.NoError(Load())

	cfg := Instance()
	a.Equal("debug", cfg.Log.Level)
	a.True(cfg.Log.DisableAccessLogs)
	a.Equal(900, cfg.DefaultBuyIn)
	a.Equal([]string{"https://holdem.example.com"}, cfg.AllowedOrigins)

	// ensure that it's only loaded once
	_ = os.Setenv("UTH_DEFAULT_BUY_IN", "901")
	// ensure we aren't using a pointer
	cfg.DefaultBuyIn = 0
	cfg = Instance()
	a.Equal(900, cfg.DefaultBuyIn)
}

func TestDefaults(t *testing.T) {
	clear := util.SetEnv("UTH_CONFIG_FILE", "testdata/no-such-file.yaml")
	defer clear()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, 100, cfg.DefaultBuyIn)
	assert.Empty(t, cfg.AllowedOrigins)
}
