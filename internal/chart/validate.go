package chart

import "github.com/chartsmith/chart-tools-mcp/internal/mcperr"

// Validate checks presence and shape of the caller-supplied arguments before
// any transformation. It is a pure function: no side effects, and the first
// violated precondition terminates the check.
func Validate(raw *Request) error {
	if raw == nil {
		return mcperr.InvalidParamsf("missing arguments")
	}
	if raw.Type == "" {
		return mcperr.InvalidParamsf("missing required field: type")
	}

	t := ChartType(raw.Type)
	if !t.IsValid() {
		return mcperr.InvalidParamsf("invalid chart type %q: valid types are %s", raw.Type, validTypeList())
	}

	switch t {
	case TypeGraphViz:
		if raw.Dot == "" {
			return mcperr.InvalidParamsf("graphviz requires a dot field containing the graph description")
		}
	case TypeWordCloud:
		if raw.Text == "" {
			return mcperr.InvalidParamsf("wordcloud requires a text field")
		}
	default:
		if raw.Datasets == nil {
			return mcperr.InvalidParamsf("chart type %q requires a datasets array", raw.Type)
		}
		for i, ds := range raw.Datasets {
			if ds.Data == nil {
				return mcperr.InvalidParamsf("dataset %d is missing its data field", i)
			}
		}
	}

	return nil
}
