package chart

import (
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/chartsmith/chart-tools-mcp/internal/config"
	"github.com/chartsmith/chart-tools-mcp/internal/mcperr"
)

// Encoder converts built configurations into rendering URLs. It captures the
// endpoint configuration once at construction and is safe for concurrent
// use: Encode is a pure function of its arguments, and identical input
// always yields a byte-identical URL.
type Encoder struct {
	cfg config.Config
}

// NewEncoder creates an Encoder bound to the given endpoint configuration.
func NewEncoder(cfg config.Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// Encode produces the final request URL for a built configuration. For the
// graphviz and wordcloud placeholders the type-specific fields are read from
// the raw request, re-checking their presence here.
func (e *Encoder) Encode(built *Built, raw *Request) (string, error) {
	switch built.Type {
	case TypeGraphViz:
		return e.encodeGraph(raw)
	case TypeWordCloud:
		return e.encodeWordCloud(raw)
	default:
		return e.encodeChart(built.Chart)
	}
}

// URL runs the full Validate, Build, Encode pipeline on a raw request.
func (e *Encoder) URL(raw *Request) (string, error) {
	if err := Validate(raw); err != nil {
		return "", err
	}
	built, err := Build(raw)
	if err != nil {
		return "", err
	}
	return e.Encode(built, raw)
}

// encodeChart serializes the full config to compact JSON and appends it as
// the single c= parameter. encoding/json sorts map keys, which keeps the
// output deterministic.
func (e *Encoder) encodeChart(cfg *ChartConfig) (string, error) {
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", mcperr.Wrap(mcperr.KindInternal, err, "cannot serialize chart config")
	}
	return e.cfg.ChartBaseURL + "?c=" + url.QueryEscape(string(b)), nil
}

// encodeGraph builds the graphviz URL. The dot text was not carried by the
// build placeholder, so its presence is re-checked here. Layout and format
// default to "dot" and "png".
func (e *Encoder) encodeGraph(raw *Request) (string, error) {
	gr := NormalizeGraph(raw)
	if gr.Dot == "" {
		return "", mcperr.InvalidParamsf("graphviz requires a dot field containing the graph description")
	}

	var sb strings.Builder
	sb.WriteString(e.cfg.GraphVizBaseURL)
	sb.WriteString("?graph=")
	sb.WriteString(url.QueryEscape(gr.Dot))
	sb.WriteString("&layout=")
	sb.WriteString(url.QueryEscape(gr.Layout))
	sb.WriteString("&format=")
	sb.WriteString(url.QueryEscape(gr.Format))
	return sb.String(), nil
}

// NormalizeGraph extracts the graphviz fields from a raw request, applying
// the layout and format defaults.
func NormalizeGraph(raw *Request) GraphRequest {
	gr := GraphRequest{Dot: raw.Dot, Layout: raw.Layout, Format: raw.Format}
	if gr.Layout == "" {
		gr.Layout = "dot"
	}
	if gr.Format == "" {
		gr.Format = "png"
	}
	return gr
}

// encodeWordCloud builds the word-cloud URL from the required text plus the
// optional parameters the caller set. Omitted parameters are absent from the
// query string entirely; the remote service applies its own defaults.
func (e *Encoder) encodeWordCloud(raw *Request) (string, error) {
	wc, err := NormalizeWordCloud(raw)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(e.cfg.WordCloudBaseURL)
	sb.WriteString("?text=")
	sb.WriteString(url.QueryEscape(wc.Text))
	for _, p := range wc.Params {
		sb.WriteByte('&')
		sb.WriteString(p.Name)
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.Value))
	}
	return sb.String(), nil
}

// NormalizeWordCloud extracts the word-cloud fields from a raw request. The
// optional parameters are emitted in a fixed order so the resulting URL is
// stable. Colors given as hex strings are checked for parseability; values
// pass through unmodified.
func NormalizeWordCloud(raw *Request) (*WordCloudRequest, error) {
	if raw.Text == "" {
		return nil, mcperr.InvalidParamsf("wordcloud requires a text field")
	}
	if err := checkHexColor("backgroundColor", raw.BackgroundColor); err != nil {
		return nil, err
	}
	for _, c := range raw.Colors {
		if err := checkHexColor("colors", c); err != nil {
			return nil, err
		}
	}

	wc := &WordCloudRequest{Text: raw.Text}
	add := func(name, value string) {
		wc.Params = append(wc.Params, QueryParam{Name: name, Value: value})
	}
	addStr := func(name, v string) {
		if v != "" {
			add(name, v)
		}
	}
	addInt := func(name string, v *int) {
		if v != nil {
			add(name, strconv.Itoa(*v))
		}
	}
	addBool := func(name string, v *bool) {
		if v != nil {
			add(name, strconv.FormatBool(*v))
		}
	}

	addStr("format", raw.Format)
	addInt("width", raw.Width)
	addInt("height", raw.Height)
	addStr("backgroundColor", raw.BackgroundColor)
	addStr("fontFamily", raw.FontFamily)
	addStr("fontWeight", raw.FontWeight)
	addBool("loadGoogleFonts", raw.LoadGoogleFonts)
	if raw.FontScale != nil {
		add("fontScale", strconv.FormatFloat(*raw.FontScale, 'f', -1, 64))
	}
	addStr("scale", raw.Scale)
	addInt("padding", raw.Padding)
	addInt("rotation", raw.Rotation)
	addInt("maxNumWords", raw.MaxNumWords)
	addInt("minWordLength", raw.MinWordLength)
	addStr("case", raw.Case)
	if len(raw.Colors) > 0 {
		b, err := json.Marshal(raw.Colors)
		if err != nil {
			return nil, mcperr.Wrap(mcperr.KindInternal, err, "cannot serialize colors")
		}
		add("colors", string(b))
	}
	addBool("removeStopwords", raw.RemoveStopwords)
	addBool("cleanWords", raw.CleanWords)
	addStr("language", raw.Language)
	addBool("useWordList", raw.UseWordList)

	return wc, nil
}

// checkHexColor rejects malformed #-prefixed colors early instead of letting
// the remote service fail on them. Only the 3 and 6 digit forms are checked;
// alpha-hex forms like #rrggbbaa and non-hex color syntaxes pass through
// untouched.
func checkHexColor(field, value string) error {
	if !strings.HasPrefix(value, "#") {
		return nil
	}
	if len(value) != 4 && len(value) != 7 {
		return nil
	}
	if _, err := colorful.Hex(value); err != nil {
		return mcperr.InvalidParamsf("%s contains an invalid hex color %q", field, value)
	}
	return nil
}
