package domain

// Product represents a single item in the catalog
type Product struct {
	ID              int     `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	PopularityScore float64 `json:"popularity_score" yaml:"popularity_score"`
	Weight          float64 `json:"weight" yaml:"weight"`
	ImageYellow     string  `json:"image_yellow" yaml:"image_yellow"`
	ImageRose       string  `json:"image_rose" yaml:"image_rose"`
	ImageWhite      string  `json:"image_white" yaml:"image_white"`
	Price           float64 `json:"price" yaml:"price"`
}

// ColorKey identifies a metal colour variant
type ColorKey string

const (
	ColorYellow ColorKey = "yellow"
	ColorWhite  ColorKey = "white"
	ColorRose   ColorKey = "rose"
)

// ColorVariant describes one entry of the colour picker
type ColorVariant struct {
	Key  ColorKey
	Name string
	Hex  string
}

// ColorVariants lists the picker entries in display order
var ColorVariants = []ColorVariant{
	{Key: ColorYellow, Name: "Yellow Gold", Hex: "#E6CA97"},
	{Key: ColorWhite, Name: "White Gold", Hex: "#D9D9D9"},
	{Key: ColorRose, Name: "Rose Gold", Hex: "#E1A4A9"},
}

// VariantFor returns the variant for key, falling back to yellow gold
func VariantFor(key ColorKey) ColorVariant {
	for _, v := range ColorVariants {
		if v.Key == key {
			return v
		}
	}
	return ColorVariants[0]
}

// ImageFor returns the image URL matching the colour variant.
// Unknown keys use the yellow gold image.
func (p Product) ImageFor(key ColorKey) string {
	switch key {
	case ColorWhite:
		return p.ImageWhite
	case ColorRose:
		return p.ImageRose
	default:
		return p.ImageYellow
	}
}
