package service

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/aalniak/vins-dashboard-generator/domain"
)

// TableFormatterImpl implements the TableFormatter interface
type TableFormatterImpl struct{}

// NewTableFormatter creates a new table formatter
func NewTableFormatter() *TableFormatterImpl {
	return &TableFormatterImpl{}
}

// Format formats the response according to the specified format
func (f *TableFormatterImpl) Format(response *domain.TableResponse, format domain.OutputFormat) (string, error) {
	switch format {
	case domain.OutputFormatText:
		return f.formatText(response)
	case domain.OutputFormatCSV:
		return f.formatCSV(response)
	case domain.OutputFormatJSON:
		return f.formatJSON(response)
	case domain.OutputFormatYAML:
		return f.formatYAML(response)
	case domain.OutputFormatHTML:
		return f.formatHTML(response)
	default:
		return "", domain.NewUnsupportedFormatError(string(format))
	}
}

// Write writes the formatted output to the writer
func (f *TableFormatterImpl) Write(response *domain.TableResponse, format domain.OutputFormat, writer io.Writer) error {
	output, err := f.Format(response, format)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(writer, output)
	return err
}

func formatScore(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%.4f", v)
}

func (f *TableFormatterImpl) formatText(response *domain.TableResponse) (string, error) {
	table := response.Table
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("  RMSE Comparison (lower is better)\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s", table.IndexColumn)
	for _, variant := range table.Variants {
		fmt.Fprintf(w, "\t%s", variant)
	}
	fmt.Fprintln(w)

	for _, seq := range table.Sequences() {
		fmt.Fprintf(w, "%s", seq)
		for _, variant := range table.Variants {
			v, ok := table.Score(seq, variant)
			fmt.Fprintf(w, "\t%s", formatScore(v, ok))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "MEAN")
	for _, sum := range response.Summaries {
		fmt.Fprintf(w, "\t%s", formatScore(sum.Mean, sum.Count > 0))
	}
	fmt.Fprintln(w)
	if err := w.Flush(); err != nil {
		return "", err
	}

	sb.WriteString(strings.Repeat("-", 80) + "\n")
	if response.BestVariant != "" {
		for _, sum := range response.Summaries {
			if sum.Variant == response.BestVariant {
				sb.WriteString(fmt.Sprintf("Best variant (lowest mean RMSE): %s = %.4f\n", sum.Variant, sum.Mean))
				break
			}
		}
	}
	for _, warning := range response.Warnings {
		sb.WriteString(fmt.Sprintf("Warning: %s\n", warning))
	}

	return sb.String(), nil
}

func (f *TableFormatterImpl) formatCSV(response *domain.TableResponse) (string, error) {
	table := response.Table
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	header := append([]string{table.IndexColumn}, table.Variants...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, seq := range table.Sequences() {
		record := make([]string, 0, len(header))
		record = append(record, seq)
		for _, variant := range table.Variants {
			if v, ok := table.Score(seq, variant); ok {
				record = append(record, fmt.Sprintf("%.4f", v))
			} else {
				record = append(record, "")
			}
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	return sb.String(), w.Error()
}

// tableDocument is the structured view serialized for JSON and YAML output.
type tableDocument struct {
	IndexColumn string                  `json:"index_column" yaml:"index_column"`
	Variants    []string                `json:"variants" yaml:"variants"`
	Rows        []tableRow              `json:"rows" yaml:"rows"`
	Summaries   []domain.VariantSummary `json:"summaries" yaml:"summaries"`
	BestVariant string                  `json:"best_variant" yaml:"best_variant"`
	Warnings    []string                `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	GeneratedAt string                  `json:"generated_at,omitempty" yaml:"generated_at,omitempty"`
	Version     string                  `json:"version,omitempty" yaml:"version,omitempty"`
}

type tableRow struct {
	Sequence string              `json:"sequence" yaml:"sequence"`
	Scores   map[string]*float64 `json:"scores" yaml:"scores"`
}

func buildTableDocument(response *domain.TableResponse) tableDocument {
	table := response.Table
	doc := tableDocument{
		IndexColumn: table.IndexColumn,
		Variants:    table.Variants,
		Summaries:   response.Summaries,
		BestVariant: response.BestVariant,
		Warnings:    response.Warnings,
		GeneratedAt: response.GeneratedAt,
		Version:     response.Version,
	}
	for _, seq := range table.Sequences() {
		row := tableRow{Sequence: seq, Scores: make(map[string]*float64, len(table.Variants))}
		for _, variant := range table.Variants {
			if v, ok := table.Score(seq, variant); ok {
				score := v
				row.Scores[variant] = &score
			} else {
				row.Scores[variant] = nil
			}
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}

func (f *TableFormatterImpl) formatJSON(response *domain.TableResponse) (string, error) {
	data, err := json.MarshalIndent(buildTableDocument(response), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data) + "\n", nil
}

func (f *TableFormatterImpl) formatYAML(response *domain.TableResponse) (string, error) {
	data, err := yaml.Marshal(buildTableDocument(response))
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

func (f *TableFormatterImpl) formatHTML(response *domain.TableResponse) (string, error) {
	table := response.Table
	var sb strings.Builder

	sb.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>VIO Results Comparison</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 20px; background: #f5f5f5; }
        h1 { color: #2c3e50; text-align: center; }
        h2 { color: #34495e; margin-top: 30px; }
        table { border-collapse: collapse; width: 100%; background: white; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        th { background: #3498db; color: white; padding: 16px 12px; text-align: center; font-size: 18px; font-weight: bold; }
        td { padding: 14px 12px; text-align: center; border-bottom: 1px solid #ddd; font-size: 20px; }
        tr:hover { background: #f1f8ff; }
        tr:nth-child(even) { background: #f9f9f9; }
        .best { background: #d4edda !important; font-weight: bold; color: #155724; }
        .worst { background: #f8d7da !important; color: #721c24; }
        .summary { background: #fff3cd; font-weight: bold; }
    </style>
</head>
<body>
    <h1>&#127919; VIO Results Comparison</h1>

    <h2>&#128202; RMSE Comparison Table (Lower is Better)</h2>
`)

	sb.WriteString("<table>\n<tr><th>" + template.HTMLEscapeString(table.IndexColumn) + "</th>")
	for _, variant := range table.Variants {
		sb.WriteString("<th>" + template.HTMLEscapeString(variant) + "</th>")
	}
	sb.WriteString("</tr>\n")

	for _, seq := range table.Sequences() {
		minVal, maxVal, present := rowExtremes(table, seq)

		sb.WriteString("<tr><td><b>" + template.HTMLEscapeString(seq) + "</b></td>")
		for _, variant := range table.Variants {
			v, ok := table.Score(seq, variant)
			if !ok {
				sb.WriteString("<td>-</td>")
				continue
			}
			css := ""
			if v == minVal {
				css = "best"
			} else if v == maxVal && present > 2 {
				css = "worst"
			}
			sb.WriteString(fmt.Sprintf(`<td class="%s">%.4f</td>`, css, v))
		}
		sb.WriteString("</tr>\n")
	}

	// Mean row with the best column highlighted.
	minMean, hasMean := 0.0, false
	for _, sum := range response.Summaries {
		if sum.Count > 0 && (!hasMean || sum.Mean < minMean) {
			minMean = sum.Mean
			hasMean = true
		}
	}
	sb.WriteString(`<tr class="summary"><td><b>MEAN</b></td>`)
	for _, sum := range response.Summaries {
		if sum.Count == 0 {
			sb.WriteString("<td>-</td>")
			continue
		}
		css := ""
		if sum.Mean == minMean {
			css = "best"
		}
		sb.WriteString(fmt.Sprintf(`<td class="%s">%.4f</td>`, css, sum.Mean))
	}
	sb.WriteString("</tr>\n</table>\n")

	sb.WriteString(`
    <div style="margin-top: 20px; text-align: center;">
        <span style="background: #d4edda; padding: 5px 10px; margin: 5px;">&#128994; Best in row</span>
        <span style="background: #f8d7da; padding: 5px 10px; margin: 5px;">&#128308; Worst in row</span>
    </div>

    <h2>&#128200; Summary Statistics</h2>
    <table style="width: auto; margin: 0 auto;">
        <tr><th>Variant</th><th>Mean RMSE</th><th>Std RMSE</th><th>Best Seq</th><th>Worst Seq</th></tr>
`)

	for _, sum := range response.Summaries {
		if sum.Count == 0 {
			continue
		}
		css := ""
		if sum.Mean == minMean {
			css = "best"
		}
		sb.WriteString(fmt.Sprintf("<tr class=\"%s\"><td>%s</td><td>%.4f</td><td>%.4f</td><td>%s</td><td>%s</td></tr>\n",
			css,
			template.HTMLEscapeString(sum.Variant),
			sum.Mean,
			sum.Std,
			template.HTMLEscapeString(sum.BestSequence),
			template.HTMLEscapeString(sum.WorstSequence)))
	}

	sb.WriteString(`
    </table>
</body>
</html>
`)

	return sb.String(), nil
}

// rowExtremes returns the lowest and highest present score of a row and how
// many cells are present.
func rowExtremes(table *domain.SummaryTable, seq string) (minVal, maxVal float64, present int) {
	for _, variant := range table.Variants {
		v, ok := table.Score(seq, variant)
		if !ok {
			continue
		}
		if present == 0 || v < minVal {
			minVal = v
		}
		if present == 0 || v > maxVal {
			maxVal = v
		}
		present++
	}
	return minVal, maxVal, present
}
