package tokens

import "strconv"

// Weight indexes a shade in the neutral ramp, from 50 (lightest) to 900 (darkest).
type Weight int

const (
	Weight50 Weight = iota
	Weight100
	Weight200
	Weight300
	Weight400
	Weight500
	Weight600
	Weight700
	Weight800
	Weight900
)

// WeightCount is the number of shades in a ramp.
const WeightCount = int(Weight900) + 1

// Weights returns every weight ordered from lightest to darkest.
func Weights() []Weight {
	out := make([]Weight, WeightCount)
	for i := range out {
		out[i] = Weight(i)
	}
	return out
}

// Value returns the numeric label of the weight (50, 100, ... 900).
func (w Weight) Value() int {
	if w == Weight50 {
		return 50
	}
	return int(w) * 100
}

func (w Weight) String() string {
	return strconv.Itoa(w.Value())
}

func (w Weight) valid() bool {
	return w >= Weight50 && w <= Weight900
}

// SpacingKey names a step of the spacing scale.
type SpacingKey int

const (
	SpacingXS SpacingKey = iota
	SpacingSM
	SpacingMD
	SpacingLG
	SpacingXL
	Spacing2XL
)

const spacingKeyCount = int(Spacing2XL) + 1

var spacingNames = [spacingKeyCount]string{"xs", "sm", "md", "lg", "xl", "2xl"}

func (k SpacingKey) String() string {
	if k < 0 || int(k) >= spacingKeyCount {
		return "SpacingKey(" + strconv.Itoa(int(k)) + ")"
	}
	return spacingNames[k]
}

// SpacingKeys returns every spacing key in ascending order.
func SpacingKeys() []SpacingKey {
	out := make([]SpacingKey, spacingKeyCount)
	for i := range out {
		out[i] = SpacingKey(i)
	}
	return out
}

// FontSizeKey names a step of the font size scale.
type FontSizeKey int

const (
	FontSizeXS FontSizeKey = iota
	FontSizeSM
	FontSizeMD
	FontSizeLG
	FontSizeXL
	FontSize2XL
	FontSize3XL
	FontSize4XL
)

const fontSizeKeyCount = int(FontSize4XL) + 1

var fontSizeNames = [fontSizeKeyCount]string{"xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}

func (k FontSizeKey) String() string {
	if k < 0 || int(k) >= fontSizeKeyCount {
		return "FontSizeKey(" + strconv.Itoa(int(k)) + ")"
	}
	return fontSizeNames[k]
}

// FontSizeKeys returns every font size key in ascending order.
func FontSizeKeys() []FontSizeKey {
	out := make([]FontSizeKey, fontSizeKeyCount)
	for i := range out {
		out[i] = FontSizeKey(i)
	}
	return out
}

// FontWeightKey names a font weight.
type FontWeightKey int

const (
	FontWeightNormal FontWeightKey = iota
	FontWeightMedium
	FontWeightSemibold
	FontWeightBold
)

const fontWeightKeyCount = int(FontWeightBold) + 1

var fontWeightNames = [fontWeightKeyCount]string{"normal", "medium", "semibold", "bold"}

func (k FontWeightKey) String() string {
	if k < 0 || int(k) >= fontWeightKeyCount {
		return "FontWeightKey(" + strconv.Itoa(int(k)) + ")"
	}
	return fontWeightNames[k]
}

// FontWeightKeys returns every font weight key from lightest to heaviest.
func FontWeightKeys() []FontWeightKey {
	out := make([]FontWeightKey, fontWeightKeyCount)
	for i := range out {
		out[i] = FontWeightKey(i)
	}
	return out
}

// LineHeightKey names a line height ratio.
type LineHeightKey int

const (
	LineHeightTight LineHeightKey = iota
	LineHeightNormal
	LineHeightRelaxed
)

const lineHeightKeyCount = int(LineHeightRelaxed) + 1

var lineHeightNames = [lineHeightKeyCount]string{"tight", "normal", "relaxed"}

func (k LineHeightKey) String() string {
	if k < 0 || int(k) >= lineHeightKeyCount {
		return "LineHeightKey(" + strconv.Itoa(int(k)) + ")"
	}
	return lineHeightNames[k]
}

// LetterSpacingKey names a tracking value.
type LetterSpacingKey int

const (
	LetterSpacingTight LetterSpacingKey = iota
	LetterSpacingNormal
	LetterSpacingWide
)

const letterSpacingKeyCount = int(LetterSpacingWide) + 1

var letterSpacingNames = [letterSpacingKeyCount]string{"tight", "normal", "wide"}

func (k LetterSpacingKey) String() string {
	if k < 0 || int(k) >= letterSpacingKeyCount {
		return "LetterSpacingKey(" + strconv.Itoa(int(k)) + ")"
	}
	return letterSpacingNames[k]
}

// RadiusKey names a border radius.
type RadiusKey int

const (
	RadiusSM RadiusKey = iota
	RadiusMD
	RadiusLG
	RadiusXL
	RadiusFull
)

const radiusKeyCount = int(RadiusFull) + 1

var radiusNames = [radiusKeyCount]string{"sm", "md", "lg", "xl", "full"}

func (k RadiusKey) String() string {
	if k < 0 || int(k) >= radiusKeyCount {
		return "RadiusKey(" + strconv.Itoa(int(k)) + ")"
	}
	return radiusNames[k]
}

// RadiusKeys returns every radius key in ascending order.
func RadiusKeys() []RadiusKey {
	out := make([]RadiusKey, radiusKeyCount)
	for i := range out {
		out[i] = RadiusKey(i)
	}
	return out
}
