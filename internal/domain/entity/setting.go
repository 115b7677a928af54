package entity

// Claves de configuración persistidas en el almacén.
const (
	SettingPINHash = "pin_hash"
)
