// Package imaging is the file and color plumbing around the transform engine.
//
// It decodes image files into transform.Buffer values, encodes buffers back
// to files or base64 PNG, samples and compares pixel colors, and keeps
// transform results in memory for later inspection. The transform package
// itself never touches the filesystem; everything that does lives here.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// # Conversion
//
// Decoded images of any color model are normalized to 8-bit RGB by ToBuffer.
// Alpha is discarded and 16-bit channels are reduced to their high byte.
// FromBuffer always produces an opaque image.
//
// # Thread Safety
//
// ImageCache and ResultStore are safe for concurrent use. The remaining
// functions are stateless.
//
// # Color Representation
//
// Colors are returned as:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
package imaging
