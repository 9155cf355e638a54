package chart

import (
	"reflect"
	"testing"

	"github.com/chartsmith/chart-tools-mcp/internal/mcperr"
)

func TestBuild_GraphVizPlaceholder(t *testing.T) {
	built, err := Build(&Request{Type: "graphviz", Dot: "digraph G {}"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if built.Type != TypeGraphViz {
		t.Errorf("Type = %v, want graphviz", built.Type)
	}
	if built.Chart != nil {
		t.Error("graphviz placeholder should not carry a chart config")
	}
}

func TestBuild_WordCloudPlaceholder(t *testing.T) {
	built, err := Build(&Request{Type: "wordcloud", Text: "a b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if built.Type != TypeWordCloud || built.Chart != nil {
		t.Errorf("got %+v, want bare wordcloud placeholder", built)
	}
}

func TestBuild_NormalizesDatasets(t *testing.T) {
	req := &Request{
		Type:   "bar",
		Labels: []string{"Q1", "Q2"},
		Datasets: []Dataset{
			{
				Data:            []any{float64(1), float64(2)},
				BackgroundColor: "#ff0000",
			},
			{
				Label:       "second",
				Data:        []any{float64(3), float64(4)},
				BorderColor: []any{"#00ff00", "#0000ff"},
			},
		},
	}

	built, err := Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := built.Chart

	if cfg.Type != "bar" {
		t.Errorf("Type = %q, want bar", cfg.Type)
	}
	if !reflect.DeepEqual(cfg.Data.Labels, []string{"Q1", "Q2"}) {
		t.Errorf("Labels = %v", cfg.Data.Labels)
	}

	first := cfg.Data.Datasets[0]
	if first["label"] != "" {
		t.Errorf("missing label should default to empty string, got %v", first["label"])
	}
	if first["backgroundColor"] != "#ff0000" {
		t.Errorf("backgroundColor not passed through: %v", first["backgroundColor"])
	}
	if _, present := first["borderColor"]; present {
		t.Error("unset borderColor should be omitted")
	}

	second := cfg.Data.Datasets[1]
	if second["label"] != "second" {
		t.Errorf("label = %v", second["label"])
	}
}

func TestBuild_NilLabelsBecomeEmptySlice(t *testing.T) {
	built, err := Build(&Request{
		Type:     "pie",
		Datasets: []Dataset{{Data: []any{float64(1)}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if built.Chart.Data.Labels == nil || len(built.Chart.Data.Labels) != 0 {
		t.Errorf("Labels = %#v, want empty slice", built.Chart.Data.Labels)
	}
}

func TestBuild_AdditionalConfigWins(t *testing.T) {
	req := &Request{
		Type: "line",
		Datasets: []Dataset{{
			Label: "original",
			Data:  []any{float64(1)},
			AdditionalConfig: map[string]any{
				"label":   "override",
				"fill":    false,
				"tension": 0.4,
			},
		}},
	}

	built, err := Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ds := built.Chart.Data.Datasets[0]

	if ds["label"] != "override" {
		t.Errorf("additionalConfig should override label, got %v", ds["label"])
	}
	if ds["fill"] != false {
		t.Errorf("fill = %v", ds["fill"])
	}
	if ds["tension"] != 0.4 {
		t.Errorf("tension = %v", ds["tension"])
	}
}

func TestBuild_TitleMerge(t *testing.T) {
	req := &Request{
		Type:     "bar",
		Title:    "Quarterly Sales",
		Options:  map[string]any{"responsive": true},
		Datasets: []Dataset{{Data: []any{float64(1)}}},
	}

	built, err := Build(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := built.Chart.Options

	if opts["responsive"] != true {
		t.Error("caller options should be preserved")
	}
	title, ok := opts["title"].(map[string]any)
	if !ok {
		t.Fatalf("title block missing: %v", opts)
	}
	if title["display"] != true || title["text"] != "Quarterly Sales" {
		t.Errorf("title = %v", title)
	}
}

func TestBuild_NoTitleNoOptions(t *testing.T) {
	built, err := Build(&Request{Type: "bar", Datasets: []Dataset{{Data: []any{float64(1)}}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if built.Chart.Options != nil {
		t.Errorf("Options = %v, want nil", built.Chart.Options)
	}
}

func TestBuild_GaugeValidation(t *testing.T) {
	tests := []struct {
		name    string
		data    []any
		wantErr bool
	}{
		{"positive reading", []any{float64(72)}, false},
		{"zero rejected", []any{float64(0)}, true},
		{"null rejected", []any{nil}, true},
		{"empty data rejected", []any{}, true},
	}

	for _, typ := range []string{"radialGauge", "speedometer"} {
		for _, tt := range tests {
			t.Run(typ+"/"+tt.name, func(t *testing.T) {
				built, err := Build(&Request{
					Type:     typ,
					Datasets: []Dataset{{Data: tt.data}},
				})

				if tt.wantErr {
					if err == nil {
						t.Fatal("expected error")
					}
					if mcperr.KindOf(err) != mcperr.KindInvalidParams {
						t.Errorf("kind = %v, want KindInvalidParams", mcperr.KindOf(err))
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				plugins, ok := built.Chart.Options["plugins"].(map[string]any)
				if !ok {
					t.Fatal("gauge build should merge a plugins block")
				}
				if _, ok := plugins["datalabels"]; !ok {
					t.Error("plugins block should enable datalabels")
				}
			})
		}
	}
}

func TestBuild_GaugeKeepsCallerPlugins(t *testing.T) {
	built, err := Build(&Request{
		Type:     "radialGauge",
		Datasets: []Dataset{{Data: []any{float64(50)}}},
		Options: map[string]any{
			"plugins": map[string]any{"legend": map[string]any{"display": false}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	plugins := built.Chart.Options["plugins"].(map[string]any)
	if _, ok := plugins["legend"]; !ok {
		t.Error("caller plugin entries should survive the datalabels merge")
	}
	if _, ok := plugins["datalabels"]; !ok {
		t.Error("datalabels block missing")
	}
}

func TestBuild_PointDataValidation(t *testing.T) {
	pair := []any{float64(1), float64(2)}
	triple := []any{float64(1), float64(2), float64(3)}

	tests := []struct {
		name    string
		data    []any
		wantErr bool
	}{
		{"pairs accepted", []any{pair, pair}, false},
		{"triples accepted", []any{triple}, false},
		{"bare number rejected", []any{float64(5)}, true},
		{"string rejected", []any{"5,6"}, true},
		{"empty rejected", []any{}, true},
	}

	for _, typ := range []string{"scatter", "bubble"} {
		for _, tt := range tests {
			t.Run(typ+"/"+tt.name, func(t *testing.T) {
				_, err := Build(&Request{
					Type:     typ,
					Datasets: []Dataset{{Data: tt.data}},
				})

				if tt.wantErr && err == nil {
					t.Fatal("expected error")
				}
				if !tt.wantErr && err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tt.wantErr && mcperr.KindOf(err) != mcperr.KindInvalidParams {
					t.Errorf("kind = %v, want KindInvalidParams", mcperr.KindOf(err))
				}
			})
		}
	}
}

func TestBuild_PointDataChecksEveryDataset(t *testing.T) {
	_, err := Build(&Request{
		Type: "scatter",
		Datasets: []Dataset{
			{Data: []any{[]any{float64(1), float64(2)}}},
			{Data: []any{float64(3)}},
		},
	})
	if err == nil {
		t.Fatal("second dataset with bare numbers should fail")
	}
}
