package weapon_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-fps/parameter"
	"github.com/lixenwraith/vi-fps/weapon"
)

const catalogYAML = `
weapons:
  - name: smg
    fire_rate: 15
    magazine_size: 40
    reload_time: 1.5
    max_recoil: {x: 0.8, y: 1.2}
  - name: launcher
    effect: projectile
    fire_rate: 1
    magazine_size: 4
    projectile_speed: 25
`

func TestParseCatalogOverlaysDefaults(t *testing.T) {
	weapons, err := weapon.ParseCatalog([]byte(catalogYAML))
	require.NoError(t, err)
	require.Len(t, weapons, 2)

	smg := weapons[0]
	assert.Equal(t, "smg", smg.Name)
	assert.Equal(t, 15.0, smg.FireRate)
	assert.Equal(t, 0.8, smg.MaxRecoil.X)
	assert.Equal(t, 1.2, smg.MaxRecoil.Y)
	assert.Equal(t, weapon.EffectHitscan, smg.Effect)
	assert.Equal(t, parameter.RifleRecoilSpeed, smg.RecoilSpeed, "unset fields keep defaults")

	launcher := weapons[1]
	assert.Equal(t, weapon.EffectProjectile, launcher.Effect)
	assert.Equal(t, 25.0, launcher.ProjectileSpeed)
	assert.Equal(t, parameter.ProjectileLifetime, launcher.ProjectileLifetime)
}

func TestParseCatalogRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero fire rate", "weapons:\n  - name: a\n    fire_rate: 0\n"},
		{"empty magazine", "weapons:\n  - name: a\n    magazine_size: 0\n"},
		{"negative reload", "weapons:\n  - name: a\n    reload_time: -1\n"},
		{"unknown effect", "weapons:\n  - name: a\n    effect: laser\n"},
		{"duplicate", "weapons:\n  - name: a\n  - name: a\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := weapon.ParseCatalog([]byte(tt.yaml))
			assert.ErrorIs(t, err, weapon.ErrInvalidConfig)
		})
	}

	_, err := weapon.ParseCatalog([]byte("weapons: [: bad"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weapons.yaml")
	require.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))

	weapons, err := weapon.LoadCatalog(path)
	require.NoError(t, err)
	assert.Len(t, weapons, 2)

	_, err = weapon.LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestFireIntervalAndReloadDuration(t *testing.T) {
	cfg := weapon.DefaultConfig()
	cfg.FireRate = 10
	cfg.ReloadTime = 2
	assert.Equal(t, "100ms", cfg.FireInterval().String())
	assert.Equal(t, "2s", cfg.ReloadDuration().String())
}
