package parameter

// Default rifle tuning, used when no weapon catalog is configured
const (
	RifleName          = "rifle"
	RifleShootingRange = 100.0
	RifleFireRate      = 10.0
	RifleMagazineSize  = 30
	RifleReloadTime    = 2.0
	RifleRecoilAmount  = 1.0
	RifleMaxRecoilX    = 1.5
	RifleMaxRecoilY    = 2.0
	RifleRecoilSpeed   = 20.0
	RifleResetSpeed    = 5.0
)

// Projectile defaults
const (
	ProjectileSpeed    = 40.0
	ProjectileLifetime = 3.0
)

// Collision layers
const (
	LayerTerrain uint32 = 1 << iota
	LayerTarget
	LayerActor

	LayerAll uint32 = 0xFFFFFFFF
)
