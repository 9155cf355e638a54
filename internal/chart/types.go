package chart

import "strings"

// ChartType identifies one of the supported renderings.
type ChartType string

const (
	TypeBar         ChartType = "bar"
	TypeLine        ChartType = "line"
	TypePie         ChartType = "pie"
	TypeDoughnut    ChartType = "doughnut"
	TypeRadar       ChartType = "radar"
	TypePolarArea   ChartType = "polarArea"
	TypeScatter     ChartType = "scatter"
	TypeBubble      ChartType = "bubble"
	TypeRadialGauge ChartType = "radialGauge"
	TypeSpeedometer ChartType = "speedometer"
	TypeGraphViz    ChartType = "graphviz"
	TypeWordCloud   ChartType = "wordcloud"
)

// validTypes lists every supported type in the order used by error messages
// and the tool schema.
var validTypes = []ChartType{
	TypeBar, TypeLine, TypePie, TypeDoughnut, TypeRadar, TypePolarArea,
	TypeScatter, TypeBubble, TypeRadialGauge, TypeSpeedometer,
	TypeGraphViz, TypeWordCloud,
}

// ValidTypes returns the supported chart types as strings.
func ValidTypes() []string {
	out := make([]string, len(validTypes))
	for i, t := range validTypes {
		out[i] = string(t)
	}
	return out
}

func validTypeList() string {
	return strings.Join(ValidTypes(), ", ")
}

// IsValid reports whether t is one of the supported types.
func (t ChartType) IsValid() bool {
	for _, v := range validTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsChartFamily reports whether t shares the dataset/label/options shape.
// Graphviz and wordcloud are the two exceptions.
func (t ChartType) IsChartFamily() bool {
	return t.IsValid() && t != TypeGraphViz && t != TypeWordCloud
}

// Dataset is one data series within a chart-family request.
type Dataset struct {
	Label           string `json:"label,omitempty"`
	Data            []any  `json:"data"`
	BackgroundColor any    `json:"backgroundColor,omitempty"`
	BorderColor     any    `json:"borderColor,omitempty"`

	// AdditionalConfig is merged verbatim over the normalized dataset;
	// caller keys win on collision.
	AdditionalConfig map[string]any `json:"additionalConfig,omitempty"`
}

// Request is the untrusted, caller-supplied tool input. One instance is
// decoded per tool invocation and discarded when the invocation completes.
//
// Optional numeric and boolean word-cloud parameters are pointers so that an
// unset parameter can be told apart from an explicit zero or false.
type Request struct {
	Type     string         `json:"type"`
	Labels   []string       `json:"labels,omitempty"`
	Datasets []Dataset      `json:"datasets,omitempty"`
	Title    string         `json:"title,omitempty"`
	Options  map[string]any `json:"options,omitempty"`

	// Graphviz fields. Format is shared with wordcloud.
	Dot    string `json:"dot,omitempty"`
	Layout string `json:"layout,omitempty"`
	Format string `json:"format,omitempty"`

	// Word-cloud fields. Defaults for unset parameters are applied by the
	// remote service, not here.
	Text            string   `json:"text,omitempty"`
	Width           *int     `json:"width,omitempty"`
	Height          *int     `json:"height,omitempty"`
	BackgroundColor string   `json:"backgroundColor,omitempty"`
	FontFamily      string   `json:"fontFamily,omitempty"`
	FontWeight      string   `json:"fontWeight,omitempty"`
	LoadGoogleFonts *bool    `json:"loadGoogleFonts,omitempty"`
	FontScale       *float64 `json:"fontScale,omitempty"`
	Scale           string   `json:"scale,omitempty"`
	Padding         *int     `json:"padding,omitempty"`
	Rotation        *int     `json:"rotation,omitempty"`
	MaxNumWords     *int     `json:"maxNumWords,omitempty"`
	MinWordLength   *int     `json:"minWordLength,omitempty"`
	Case            string   `json:"case,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	RemoveStopwords *bool    `json:"removeStopwords,omitempty"`
	CleanWords      *bool    `json:"cleanWords,omitempty"`
	Language        string   `json:"language,omitempty"`
	UseWordList     *bool    `json:"useWordList,omitempty"`
}

// ChartData holds the labels and normalized datasets of a ChartConfig.
// Datasets are open maps because AdditionalConfig may introduce arbitrary
// keys.
type ChartData struct {
	Labels   []string         `json:"labels"`
	Datasets []map[string]any `json:"datasets"`
}

// ChartConfig is the validated, normalized configuration for chart-family
// types. Once built it is closed and serializable with no caller-side
// defaults left unresolved.
type ChartConfig struct {
	Type    string         `json:"type"`
	Data    ChartData      `json:"data"`
	Options map[string]any `json:"options,omitempty"`
}

// GraphRequest is the normalized graphviz request.
type GraphRequest struct {
	Dot    string
	Layout string
	Format string
}

// WordCloudRequest is the normalized word-cloud request: the required text
// plus only the optional parameters the caller set, in the encoder's fixed
// emission order.
type WordCloudRequest struct {
	Text   string
	Params []QueryParam
}

// QueryParam is one already-stringified query parameter.
type QueryParam struct {
	Name  string
	Value string
}

// Built is the tagged result of the Builder. Chart is populated only for
// chart-family types; for graphviz and wordcloud the value is a placeholder
// carrying the type alone, and the encoder extracts the remaining fields
// from the raw request.
type Built struct {
	Type  ChartType
	Chart *ChartConfig
}
