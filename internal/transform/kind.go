package transform

import (
	"fmt"
	"strings"
)

// Kind selects one of the supported transforms. The zero value is not a
// valid transform.
type Kind int

const (
	Grayscale Kind = iota + 1
	Sepia
	Negative
	Noise
	BrightnessChange
	Monochrome
	Detail
)

var kindNames = map[Kind]string{
	Grayscale:        "grayscale",
	Sepia:            "sepia",
	Negative:         "negative",
	Noise:            "noise",
	BrightnessChange: "brightness_change",
	Monochrome:       "monochrome",
	Detail:           "detail",
}

var kindDescriptions = map[Kind]string{
	Grayscale:        "Average of R, G and B replicated to all channels",
	Sepia:            "Grayscale average tinted warm (red +2*depth, green +depth)",
	Negative:         "Each channel inverted (255 - value)",
	Noise:            "Uniform random offset in [-factor, factor], same offset for all channels of a pixel",
	BrightnessChange: "Constant offset added to every channel, clamped to [0,255]",
	Monochrome:       "White when the channel average is above 127, black otherwise",
	Detail:           "3x3 sharpen convolution {0,-1,0,-1,5,-1,0,-1,0} on interior pixels",
}

// Kinds returns every supported transform in declaration order.
func Kinds() []Kind {
	return []Kind{Grayscale, Sepia, Negative, Noise, BrightnessChange, Monochrome, Detail}
}

// Valid reports whether k names a supported transform.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the canonical transform name, e.g. "brightness_change".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Description returns a one-line summary of what the transform does.
func (k Kind) Description() string {
	return kindDescriptions[k]
}

// PerPixel reports whether the transform reads only the pixel at its own
// coordinates.
func (k Kind) PerPixel() bool {
	return k.Valid() && k != Detail
}

// ParseKind resolves a transform name. Matching ignores case and surrounding
// whitespace, and accepts '-' in place of '_'.
func ParseKind(name string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for k, n := range kindNames {
		if n == norm {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedTransform, name)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedTransform, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
