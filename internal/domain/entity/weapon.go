package entity

import "image/color"

// Weapon is the gun the player currently auto-fires
type Weapon int

const (
	WeaponNone       Weapon = iota
	WeaponMachineGun        // one bullet every machinegunInterval frames
	WeaponShotgun           // three-pellet fan
	WeaponXRay              // continuous beam
)

// WeaponColors maps weapons to their HUD/beam colors
var WeaponColors = map[Weapon]color.RGBA{
	WeaponNone:       {200, 200, 200, 255},
	WeaponMachineGun: {255, 215, 0, 255},
	WeaponShotgun:    {255, 99, 71, 255},
	WeaponXRay:       {100, 200, 255, 255},
}

func (w Weapon) String() string {
	switch w {
	case WeaponMachineGun:
		return "Machine Gun"
	case WeaponShotgun:
		return "Shotgun"
	case WeaponXRay:
		return "X-Ray"
	default:
		return "None"
	}
}
