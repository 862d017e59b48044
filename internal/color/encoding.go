package color

import (
	"encoding/json"
)

// Document is the serialized shape of a Color: the derived hex next to the
// channels it was derived from.
type Document struct {
	Hex string      `json:"hex" yaml:"hex"`
	RGB DocumentRGB `json:"rgb" yaml:"rgb"`
}

// DocumentRGB holds the channels of a Document.
type DocumentRGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Document returns the serializable form of c.
func (c Color) Document() Document {
	return Document{
		Hex: c.Hex(),
		RGB: DocumentRGB{R: c.r, G: c.g, B: c.b},
	}
}

// MarshalJSON implements json.Marshaler.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}

// UnmarshalJSON rebuilds the color from its channels; the hex field is ignored
// because it is derived.
func (c *Color) UnmarshalJSON(data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*c = RGB(doc.RGB.R, doc.RGB.G, doc.RGB.B)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.Document(), nil
}

// Description is the full readout of a color shown by the commands and tools.
type Description struct {
	Hex       string      `json:"hex" yaml:"hex"`
	RGB       DocumentRGB `json:"rgb" yaml:"rgb"`
	HSL       string      `json:"hsl" yaml:"hsl"`
	TextColor string      `json:"textColor" yaml:"textColor"`
}

// Describe returns the readout of c, including the text color to draw on it.
func Describe(c Color) Description {
	doc := c.Document()
	return Description{
		Hex:       doc.Hex,
		RGB:       doc.RGB,
		HSL:       c.HSLString(),
		TextColor: ContrastingTextColor(c),
	}
}

// DescribeAll describes every color of palette in order.
func DescribeAll(palette []Color) []Description {
	out := make([]Description, len(palette))
	for i, c := range palette {
		out[i] = Describe(c)
	}
	return out
}
