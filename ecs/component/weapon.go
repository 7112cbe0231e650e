package component

import "github.com/go-gl/mathgl/mgl64"

// Weapon defaults.
const (
	DefaultWeaponRange  = 3000.0
	DefaultWeaponDamage = 1.0
	DefaultMuzzleSocket = "b_gun_muzzleflash"
)

// Weapon is the hit-scan gun carried by a shooter.
type Weapon struct {
	Range  float64
	Damage float64
	Socket string
}

// DefaultWeapon returns the stock rifle.
func DefaultWeapon() Weapon {
	return Weapon{Range: DefaultWeaponRange, Damage: DefaultWeaponDamage, Socket: DefaultMuzzleSocket}
}

// Normalized fills zero range and socket with defaults. Damage is kept as
// configured, zero included.
func (w Weapon) Normalized() Weapon {
	if w.Range <= 0 {
		w.Range = DefaultWeaponRange
	}
	if w.Socket == "" {
		w.Socket = DefaultMuzzleSocket
	}
	return w
}

var WeaponComponent = NewComponent[Weapon]()

// Sockets maps attachment point names to offsets in the entity's local
// frame (X forward, Y right, Z up). An entity without the socket a weapon
// asks for has no muzzle.
type Sockets map[string]mgl64.Vec3

var SocketsComponent = NewComponent[Sockets]()
