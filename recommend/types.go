package recommend

type Category string

const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryOuterwear Category = "outerwear"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// Categories lists the slots in the order items are placed into an outfit.
var Categories = []Category{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryShoes, CategoryAccessory}

type Formality string

const (
	FormalityCasual      Formality = "casual"
	FormalitySmartCasual Formality = "smart casual"
	FormalityFormal      Formality = "formal"
)

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

// StyleAll disables the style filter.
const StyleAll = "all"

type ClothingItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Color     string    `json:"color"`
	Pattern   string    `json:"pattern"`
	Style     string    `json:"style"`
	Formality Formality `json:"formality"`
	Season    Season    `json:"season"`
	ImageURL  string    `json:"imageUrl"`
}

type Preferences struct {
	Colors   []string `json:"colors"`
	Styles   []string `json:"styles"`
	Patterns []string `json:"patterns"`
}

type FacialFeatures struct {
	FaceShape string `json:"faceShape"`
	EyeColor  string `json:"eyeColor"`
	NoseType  string `json:"noseType"`
	LipShape  string `json:"lipShape"`
}

type UserProfile struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Height         float64         `json:"height"`
	BodyType       string          `json:"bodyType"`
	SkinTone       string          `json:"skinTone"`
	HairColor      string          `json:"hairColor"`
	Preferences    Preferences     `json:"preferences"`
	FacialFeatures *FacialFeatures `json:"facialFeatures,omitempty"`
}

type Outfit struct {
	ID         string         `json:"id"`
	Name       string         `json:"name,omitempty"`
	Items      []ClothingItem `json:"items"`
	Occasion   string         `json:"occasion"`
	Season     Season         `json:"season"`
	Weather    string         `json:"weather"`
	Confidence float64        `json:"confidence"`
	Style      string         `json:"style,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	// Fallback marks the minimal top and bottom outfit built when no round produced one.
	Fallback bool `json:"fallback,omitempty"`
}

// Request carries the context of one generation call. Style is optional.
type Request struct {
	Occasion string
	Weather  string
	Style    string
}
