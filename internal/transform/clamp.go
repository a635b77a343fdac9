package transform

// Clamp constrains a computed channel value to [0, 255].
func Clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
