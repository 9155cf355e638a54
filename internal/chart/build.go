package chart

import "github.com/chartsmith/chart-tools-mcp/internal/mcperr"

// shaper applies a type-specific validation and shaping step to a built
// ChartConfig. One shaper per chart-type variant; selected once in Build.
type shaper func(cfg *ChartConfig) error

var shapers = map[ChartType]shaper{
	TypeRadialGauge: shapeGauge,
	TypeSpeedometer: shapeGauge,
	TypeScatter:     shapePointData,
	TypeBubble:      shapePointData,
}

// Build consumes validated arguments and produces the tagged build result.
// Graphviz and wordcloud bypass dataset shaping entirely: they have no
// dataset or axis concept, so Build returns a placeholder carrying only the
// type and defers field extraction to the encoder.
func Build(raw *Request) (*Built, error) {
	t := ChartType(raw.Type)

	if t == TypeGraphViz || t == TypeWordCloud {
		return &Built{Type: t}, nil
	}

	cfg := &ChartConfig{
		Type: raw.Type,
		Data: ChartData{
			Labels:   raw.Labels,
			Datasets: make([]map[string]any, len(raw.Datasets)),
		},
	}
	if cfg.Data.Labels == nil {
		cfg.Data.Labels = []string{}
	}
	for i, ds := range raw.Datasets {
		cfg.Data.Datasets[i] = normalizeDataset(ds)
	}

	opts := make(map[string]any, len(raw.Options)+1)
	for k, v := range raw.Options {
		opts[k] = v
	}
	if raw.Title != "" {
		opts["title"] = map[string]any{
			"display": true,
			"text":    raw.Title,
		}
	}
	if len(opts) > 0 {
		cfg.Options = opts
	}

	if shape, ok := shapers[t]; ok {
		if err := shape(cfg); err != nil {
			return nil, err
		}
	}

	return &Built{Type: t, Chart: cfg}, nil
}

// normalizeDataset maps one caller dataset into its wire shape. The label
// defaults to the empty string; data and styling pass through; any
// additionalConfig entries are merged last so caller overrides win.
func normalizeDataset(ds Dataset) map[string]any {
	m := map[string]any{
		"label": ds.Label,
		"data":  ds.Data,
	}
	if ds.BackgroundColor != nil {
		m["backgroundColor"] = ds.BackgroundColor
	}
	if ds.BorderColor != nil {
		m["borderColor"] = ds.BorderColor
	}
	for k, v := range ds.AdditionalConfig {
		m[k] = v
	}
	return m
}

// shapeGauge enforces the single-scalar-reading contract of radialGauge and
// speedometer, then merges the plugin block that renders the value label.
func shapeGauge(cfg *ChartConfig) error {
	v, ok := firstDataValue(cfg)
	if !ok || isFalsy(v) {
		return mcperr.InvalidParamsf("%s charts require a numeric value as the first data point", cfg.Type)
	}

	if cfg.Options == nil {
		cfg.Options = map[string]any{}
	}
	plugins, _ := cfg.Options["plugins"].(map[string]any)
	if plugins == nil {
		plugins = map[string]any{}
	}
	plugins["datalabels"] = map[string]any{
		"display":         true,
		"backgroundColor": "transparent",
	}
	cfg.Options["plugins"] = plugins
	return nil
}

// shapePointData enforces the [x,y] / [x,y,r] point-format contract of
// scatter and bubble charts on every dataset.
func shapePointData(cfg *ChartConfig) error {
	for i, ds := range cfg.Data.Datasets {
		data, _ := ds["data"].([]any)
		if len(data) == 0 {
			return mcperr.InvalidParamsf("%s dataset %d has no data points", cfg.Type, i)
		}
		if _, isSeq := data[0].([]any); !isSeq {
			return mcperr.InvalidParamsf("%s dataset %d must contain [x, y] coordinate pairs", cfg.Type, i)
		}
	}
	return nil
}

// firstDataValue returns the first data element of the first dataset.
func firstDataValue(cfg *ChartConfig) (any, bool) {
	if len(cfg.Data.Datasets) == 0 {
		return nil, false
	}
	data, _ := cfg.Data.Datasets[0]["data"].([]any)
	if len(data) == 0 {
		return nil, false
	}
	return data[0], true
}

// isFalsy mirrors the truthiness rules of the tool-call JSON: null, zero
// numbers, empty strings and false all reject. A zero gauge reading is
// therefore rejected as well.
func isFalsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case int:
		return x == 0
	case string:
		return x == ""
	default:
		return false
	}
}
