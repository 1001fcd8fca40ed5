package service

import (
	"encoding/json"
	"fmt"
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// compareFields lists the series inlined into the comparison page, in the
// order the page's JavaScript expects them.
var compareFields = []string{
	domain.ColumnFrameID,
	"total_cost_init", "total_cost_final", "total_reduction_pct",
	"visual_cost_init", "visual_cost_final", "visual_reduction_pct",
	"imu_cost_init", "imu_cost_final", "imu_reduction_pct",
	"depth_cost_init", "depth_cost_final", "depth_reduction_pct",
	"margin_cost_init", "margin_cost_final", "margin_reduction_pct",
	domain.ColumnDepthFactors,
	domain.ColumnIMUFactors,
	domain.ColumnMarginFactors,
	domain.ColumnSolverTime,
	domain.ColumnIterations,
	domain.ColumnFeatures,
}

// PageRendererImpl implements the PageRenderer interface
type PageRendererImpl struct {
	chartHeight int

	indexTmpl   *template.Template
	datasetTmpl *template.Template
	compareTmpl *template.Template
}

// NewPageRenderer creates a renderer producing pages with the given chart height.
func NewPageRenderer(chartHeight int) (*PageRendererImpl, error) {
	if chartHeight <= 0 {
		chartHeight = domain.DefaultChartHeight
	}

	funcs := template.FuncMap{
		"f0": func(v float64) string { return fmt.Sprintf("%.0f", v) },
		"f1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"f4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
		"e2": formatCompact(2),
		"e4": formatCompact(4),
		"f1js": func(v float64) template.JS {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return template.JS("0")
			}
			return template.JS(fmt.Sprintf("%.1f", v))
		},
	}

	indexTmpl, err := template.New("index").Funcs(funcs).Parse(indexPageTemplate)
	if err != nil {
		return nil, domain.NewRenderError("failed to parse index template", err)
	}
	datasetTmpl, err := template.New("dataset").Funcs(funcs).Parse(datasetPageTemplate)
	if err != nil {
		return nil, domain.NewRenderError("failed to parse dataset template", err)
	}
	compareTmpl, err := template.New("compare").Funcs(funcs).Parse(comparePageTemplate)
	if err != nil {
		return nil, domain.NewRenderError("failed to parse compare template", err)
	}

	return &PageRendererImpl{
		chartHeight: chartHeight,
		indexTmpl:   indexTmpl,
		datasetTmpl: datasetTmpl,
		compareTmpl: compareTmpl,
	}, nil
}

// formatCompact renders small values with fixed decimals and large or tiny
// values in scientific notation, matching the pages' JavaScript formatNum.
func formatCompact(decimals int) func(float64) string {
	return func(v float64) string {
		if math.Abs(v) > 1000 || (math.Abs(v) < 0.01 && v != 0) {
			return fmt.Sprintf("%.*e", decimals, v)
		}
		return fmt.Sprintf("%.*f", decimals, v)
	}
}

type indexCard struct {
	Key         string
	Page        string
	Description string

	HasScore bool
	Score    float64

	Frames        int
	SolverTimeAvg float64
	IterationsAvg float64
	FeaturesAvg   float64

	TotalInitMed       float64
	TotalFinalMed      float64
	TotalReductionAvg  float64
	VisualInitMed      float64
	VisualFinalMed     float64
	VisualReductionAvg float64
	IMUInitMed         float64
	IMUFinalMed        float64
	DepthFactorsAvg    float64
}

type indexView struct {
	Cards       []indexCard
	GeneratedAt string
	Version     string
}

type navLink struct {
	Key  string
	Page string
}

type datasetView struct {
	Key         string
	Description string
	Nav         []navLink
	DataJSON    template.JS
	ChartHeight template.JS
	HasDepth    bool

	Stats             domain.DatasetStats
	TotalInitMed      float64
	TotalFinalMed     float64
	TotalReductionAvg float64
	VisualFinalMed    float64

	GeneratedAt string
	Version     string
}

type compareOption struct {
	Key      string
	Selected bool
}

type compareView struct {
	Options          []compareOption
	DatasetsJSON     template.JS
	DescriptionsJSON template.JS
	ScoresJSON       template.JS
	GeneratedAt      string
	Version          string
}

// RenderIndex renders the overview page: one card per dataset plus the
// detailed statistics table.
func (r *PageRendererImpl) RenderIndex(data *domain.DashboardData) (string, error) {
	view := indexView{
		Cards:       make([]indexCard, 0, len(data.Keys)),
		GeneratedAt: data.GeneratedAt.Format("2006-01-02 15:04:05"),
		Version:     data.Version,
	}

	for _, key := range data.Keys {
		stats := data.Stats[key]
		card := indexCard{
			Key:             key,
			Page:            key + ".html",
			Description:     domain.DescribeDataset(key),
			Frames:          stats.Frames,
			SolverTimeAvg:   stats.SolverTimeAvg,
			IterationsAvg:   stats.IterationsAvg,
			FeaturesAvg:     stats.FeaturesAvg,
			DepthFactorsAvg: stats.DepthFactorsAvg,
		}
		if score, ok := data.Score(key); ok {
			card.HasScore = true
			card.Score = score
		}
		if c, ok := stats.Cost(domain.CostGroupTotal); ok {
			card.TotalInitMed = c.InitMedian
			card.TotalFinalMed = c.FinalMedian
			card.TotalReductionAvg = c.ReductionAvg
		}
		if c, ok := stats.Cost(domain.CostGroupVisual); ok {
			card.VisualInitMed = c.InitMedian
			card.VisualFinalMed = c.FinalMedian
			card.VisualReductionAvg = c.ReductionAvg
		}
		if c, ok := stats.Cost(domain.CostGroupIMU); ok {
			card.IMUInitMed = c.InitMedian
			card.IMUFinalMed = c.FinalMedian
		}
		view.Cards = append(view.Cards, card)
	}

	var sb strings.Builder
	if err := r.indexTmpl.Execute(&sb, view); err != nil {
		return "", domain.NewRenderError("failed to render index page", err)
	}
	return sb.String(), nil
}

// RenderDataset renders the detail page for one dataset: four chart sections
// over the inlined series plus the summary statistics table.
func (r *PageRendererImpl) RenderDataset(data *domain.DashboardData, key string) (string, error) {
	dataset, ok := data.Datasets[key]
	if !ok {
		return "", domain.NewRenderError(fmt.Sprintf("unknown dataset: %s", key), nil)
	}
	stats := data.Stats[key]

	payload, err := json.Marshal(seriesPayload(dataset))
	if err != nil {
		return "", domain.NewRenderError(fmt.Sprintf("failed to encode series for %s", key), err)
	}

	view := datasetView{
		Key:         key,
		Description: domain.DescribeDataset(key),
		Nav:         r.navLinks(data.Keys),
		DataJSON:    template.JS(payload),
		ChartHeight: template.JS(strconv.Itoa(r.chartHeight)),
		HasDepth:    hasDepthFactors(dataset),
		Stats:       stats,
		GeneratedAt: data.GeneratedAt.Format("2006-01-02 15:04:05"),
		Version:     data.Version,
	}
	if c, ok := stats.Cost(domain.CostGroupTotal); ok {
		view.TotalInitMed = c.InitMedian
		view.TotalFinalMed = c.FinalMedian
		view.TotalReductionAvg = c.ReductionAvg
	}
	if c, ok := stats.Cost(domain.CostGroupVisual); ok {
		view.VisualFinalMed = c.FinalMedian
	}

	var sb strings.Builder
	if err := r.datasetTmpl.Execute(&sb, view); err != nil {
		return "", domain.NewRenderError(fmt.Sprintf("failed to render dataset page: %s", key), err)
	}
	return sb.String(), nil
}

// RenderCompare renders the interactive comparison page with every dataset's
// series inlined as JSON.
func (r *PageRendererImpl) RenderCompare(data *domain.DashboardData) (string, error) {
	datasets := make(map[string]map[string][]float64, len(data.Keys))
	descriptions := make(map[string]string, len(data.Keys))
	scores := make(map[string]*float64, len(data.Keys))
	options := make([]compareOption, 0, len(data.Keys))

	for i, key := range data.Keys {
		dataset := data.Datasets[key]
		datasets[key] = seriesPayload(dataset)
		descriptions[key] = domain.DescribeDataset(key)
		if score, ok := data.Score(key); ok {
			s := score
			scores[key] = &s
		} else {
			scores[key] = nil
		}
		options = append(options, compareOption{Key: key, Selected: i == 1})
	}

	datasetsJSON, err := json.Marshal(datasets)
	if err != nil {
		return "", domain.NewRenderError("failed to encode comparison datasets", err)
	}
	descriptionsJSON, err := json.Marshal(descriptions)
	if err != nil {
		return "", domain.NewRenderError("failed to encode descriptions", err)
	}
	scoresJSON, err := json.Marshal(scores)
	if err != nil {
		return "", domain.NewRenderError("failed to encode scores", err)
	}

	view := compareView{
		Options:          options,
		DatasetsJSON:     template.JS(datasetsJSON),
		DescriptionsJSON: template.JS(descriptionsJSON),
		ScoresJSON:       template.JS(scoresJSON),
		GeneratedAt:      data.GeneratedAt.Format("2006-01-02 15:04:05"),
		Version:          data.Version,
	}

	var sb strings.Builder
	if err := r.compareTmpl.Execute(&sb, view); err != nil {
		return "", domain.NewRenderError("failed to render compare page", err)
	}
	return sb.String(), nil
}

// navLinks builds the per-page navigation bar, capped at the first ten
// datasets to keep the bar one line.
func (r *PageRendererImpl) navLinks(keys []string) []navLink {
	limit := len(keys)
	if limit > 10 {
		limit = 10
	}
	links := make([]navLink, 0, limit)
	for _, key := range keys[:limit] {
		links = append(links, navLink{Key: key, Page: key + ".html"})
	}
	return links
}

// seriesPayload assembles the JSON series for a dataset. Columns the charts
// expect but the table lacks come out as zero series of the right length, and
// the combined visual factor count is derived here.
func seriesPayload(dataset *domain.Dataset) map[string][]float64 {
	payload := make(map[string][]float64, len(compareFields)+1)
	for _, field := range compareFields {
		if values, ok := dataset.Column(field); ok {
			payload[field] = finiteSeries(values)
		} else {
			payload[field] = make([]float64, dataset.Rows)
		}
	}

	visual := make([]float64, dataset.Rows)
	for _, name := range []string{
		domain.ColumnVisualMonoFactors,
		domain.ColumnVisualStereoFactors,
		domain.ColumnVisualOneFrameFactors,
	} {
		if values, ok := dataset.Column(name); ok {
			for i := range visual {
				visual[i] += values[i]
			}
		}
	}
	payload["total_visual_factors"] = finiteSeries(visual)

	return payload
}

// finiteSeries replaces NaN and infinite samples with zero; encoding/json
// refuses to marshal them.
func finiteSeries(values []float64) []float64 {
	clean := values
	copied := false
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if !copied {
				clean = make([]float64, len(values))
				copy(clean, values)
				copied = true
			}
			clean[i] = 0
		}
	}
	return clean
}

// hasDepthFactors reports whether the run carried any depth factors; the
// depth cost chart only gets a log axis when it did.
func hasDepthFactors(dataset *domain.Dataset) bool {
	values, ok := dataset.Column(domain.ColumnDepthFactors)
	if !ok {
		return false
	}
	for _, v := range values {
		if v > 0 {
			return true
		}
	}
	return false
}
