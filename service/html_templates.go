package service

// Page templates for the static dashboard. Charts are Plotly.js drawn from
// JSON series inlined into each page, so the output needs nothing beyond a
// browser and the Plotly CDN.

const indexPageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>VINS-Fusion Optimization Dashboard</title>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .container { max-width: 1200px; margin: 0 auto; }
        h1 { color: #2c3e50; text-align: center; margin-bottom: 10px; }
        .subtitle { text-align: center; color: #666; margin-bottom: 30px; }
        .card-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(280px, 1fr)); gap: 20px; }
        .card { background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); transition: transform 0.2s; }
        .card:hover { transform: translateY(-5px); box-shadow: 0 5px 15px rgba(0,0,0,0.15); }
        .card h3 { margin: 0 0 10px 0; color: #2c3e50; }
        .card .description { color: #7f8c8d; font-size: 12px; margin-bottom: 12px; line-height: 1.4; font-style: italic; border-left: 3px solid #3498db; padding-left: 10px; }
        .card a { color: #3498db; text-decoration: none; font-weight: bold; }
        .card a:hover { text-decoration: underline; }
        .card .stat { color: #666; font-size: 14px; margin: 5px 0; }
        .card .stat.rmse { color: #e74c3c; font-weight: bold; font-size: 15px; margin: 8px 0; }
        .section { margin: 40px 0; }
        .section h2 { color: #34495e; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        .compare-button { display: block; text-align: center; padding: 20px 40px; background: linear-gradient(135deg, #3498db, #2980b9); color: white; text-decoration: none; font-size: 20px; font-weight: bold; border-radius: 10px; margin: 20px auto; max-width: 400px; box-shadow: 0 4px 15px rgba(52,152,219,0.4); transition: all 0.3s; }
        .compare-button:hover { transform: translateY(-3px); box-shadow: 0 6px 20px rgba(52,152,219,0.5); }
        .detailed-stats { width: 100%; border-collapse: collapse; font-size: 12px; background: white; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .detailed-stats th { background: #34495e; color: white; padding: 10px 8px; text-align: left; position: sticky; top: 0; }
        .detailed-stats td { padding: 8px; border-bottom: 1px solid #eee; font-family: monospace; }
        .detailed-stats tr:hover { background: #f5f9fc; }
        .detailed-stats td:first-child { font-family: 'Segoe UI', Arial, sans-serif; font-weight: bold; }
        .detailed-stats a { color: #3498db; text-decoration: none; }
        .detailed-stats a:hover { text-decoration: underline; }
        .footer { text-align: center; color: #999; font-size: 12px; margin-top: 40px; }
    </style>
</head>
<body>
<div class="container">
    <h1>&#128295; VINS-Fusion Optimization Dashboard</h1>
    <p class="subtitle">You may compare baselines with variants below!:</p>

    <a href="compare.html" class="compare-button">&#9878;&#65039; Interactive Comparison Tool</a>

    <div class="section">
        <h2>&#128202; Datasets ({{len .Cards}})</h2>
        <div class="card-grid">
{{- range .Cards}}
            <div class="card">
                <h3><a href="{{.Page}}">{{.Key}}</a></h3>
                <div class="description">{{.Description}}</div>
                {{- if .HasScore}}
                <div class="stat rmse">&#128208; RMSE: {{f4 .Score}}</div>
                {{- end}}
                <div class="stat">&#128200; Frames: {{.Frames}}</div>
                <div class="stat">&#9201;&#65039; Avg Solver: {{f1 .SolverTimeAvg}}ms</div>
                <div class="stat">&#128201; Avg Reduction: {{f1 .TotalReductionAvg}}%</div>
                <div class="stat">&#128207; Depth Factors: {{f0 .DepthFactorsAvg}}</div>
            </div>
{{- end}}
        </div>
    </div>

    <div class="section">
        <h2>&#128203; Detailed Statistics</h2>
        <p style="color: #666; margin-bottom: 20px;">Comprehensive statistics for all datasets. Cost values are medians (robust to outliers), reductions are averages.</p>
        <div style="overflow-x: auto;">
            <table class="detailed-stats">
                <thead>
                    <tr>
                        <th>Dataset</th>
                        <th>Frames</th>
                        <th>Solver (ms)</th>
                        <th>Iterations</th>
                        <th>Total Init</th>
                        <th>Total Final</th>
                        <th>Total Red %</th>
                        <th>Visual Init</th>
                        <th>Visual Final</th>
                        <th>Visual Red %</th>
                        <th>IMU Init</th>
                        <th>IMU Final</th>
                        <th>Depth Factors</th>
                        <th>Features</th>
                    </tr>
                </thead>
                <tbody>
{{- range .Cards}}
                    <tr>
                        <td><a href="{{.Page}}">{{.Key}}</a></td>
                        <td>{{.Frames}}</td>
                        <td>{{f1 .SolverTimeAvg}}</td>
                        <td>{{f1 .IterationsAvg}}</td>
                        <td>{{e2 .TotalInitMed}}</td>
                        <td>{{e2 .TotalFinalMed}}</td>
                        <td>{{f1 .TotalReductionAvg}}%</td>
                        <td>{{e2 .VisualInitMed}}</td>
                        <td>{{e2 .VisualFinalMed}}</td>
                        <td>{{f1 .VisualReductionAvg}}%</td>
                        <td>{{e2 .IMUInitMed}}</td>
                        <td>{{e2 .IMUFinalMed}}</td>
                        <td>{{f0 .DepthFactorsAvg}}</td>
                        <td>{{f0 .FeaturesAvg}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>
    </div>

    <div class="footer">Generated {{.GeneratedAt}} &middot; vinsdash {{.Version}}</div>
</div>
</body>
</html>
`

const datasetPageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Key}} - Optimization Analysis</title>
    <script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .container { max-width: 1400px; margin: 0 auto; }
        h1 { color: #2c3e50; text-align: center; }
        .description { text-align: center; color: #7f8c8d; font-style: italic; margin-bottom: 20px; }
        .nav { text-align: center; margin: 20px 0; padding: 15px; background: white; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .nav a { margin: 0 15px; text-decoration: none; color: #3498db; font-weight: bold; }
        .nav a:hover { color: #2980b9; text-decoration: underline; }
        .chart { background: white; margin: 20px 0; padding: 15px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .stats { background: white; padding: 20px; border-radius: 8px; margin: 20px 0; }
        .stats table { width: 100%; border-collapse: collapse; }
        .stats th, .stats td { padding: 10px; text-align: left; border-bottom: 1px solid #eee; }
        .stats th { background: #3498db; color: white; }
        .footer { text-align: center; color: #999; font-size: 12px; margin-top: 40px; }
    </style>
</head>
<body>
<div class="container">
    <h1>&#128295; {{.Key}}</h1>
    <div class="description">{{.Description}}</div>
    <div class="nav">
        <a href="index.html">&#128203; Overview</a>
{{- range .Nav}}
        <a href="{{.Page}}">{{.Key}}</a>
{{- end}}
    </div>

    <div id="chart_total" class="chart"></div>
    <div id="chart_visual" class="chart"></div>
    <div id="chart_imu" class="chart"></div>
    <div id="chart_depth" class="chart"></div>

    <div class="stats">
        <h3>&#128203; Summary Statistics</h3>
        <table>
            <tr><th>Metric</th><th>Value</th></tr>
            <tr><td>Total Frames</td><td>{{.Stats.Frames}}</td></tr>
            <tr><td>Avg Solver Time (ms)</td><td>{{f2 .Stats.SolverTimeAvg}}</td></tr>
            <tr><td>Median Total Cost (Init)</td><td>{{e4 .TotalInitMed}}</td></tr>
            <tr><td>Median Total Cost (Final)</td><td>{{e4 .TotalFinalMed}}</td></tr>
            <tr><td>Avg Total Reduction %</td><td>{{f2 .TotalReductionAvg}}%</td></tr>
            <tr><td>Median Visual Cost (Final)</td><td>{{e4 .VisualFinalMed}}</td></tr>
            <tr><td>Avg Depth Factors</td><td>{{f1 .Stats.DepthFactorsAvg}}</td></tr>
        </table>
    </div>

    <div class="footer">Generated {{.GeneratedAt}} &middot; vinsdash {{.Version}}</div>
</div>

<script>
const data = {{.DataJSON}};
const chartHeight = {{.ChartHeight}};
const hasDepth = {{.HasDepth}};

function costSection(divId, title, initField, finalField, reductionField, factorField, opts) {
    opts = opts || {};
    const traces = [
        { x: data.frame_id, y: data[initField], mode: 'lines+markers', name: 'Initial Cost',
          line: {color: '#EF553B', width: 2}, marker: {size: 4}, xaxis: 'x', yaxis: 'y' },
        { x: data.frame_id, y: data[finalField], mode: 'lines+markers', name: 'Final Cost',
          line: {color: '#00CC96', width: 2}, marker: {size: 4}, xaxis: 'x', yaxis: 'y' },
        { x: data.frame_id, y: data[reductionField], mode: 'lines', name: 'Reduction %',
          fill: 'tozeroy', line: {color: '#636EFA', width: 2}, xaxis: 'x2', yaxis: 'y2' },
    ];
    if (factorField) {
        traces.push({ x: data.frame_id, y: data[factorField], mode: 'lines', name: '# Factors',
          line: {color: '#FFA15A', width: 2, dash: 'dot'}, xaxis: 'x2', yaxis: 'y3' });
    }

    const layout = {
        title: { text: '<b>' + title + '</b>', x: 0.5 },
        height: chartHeight,
        hovermode: 'x unified',
        legend: { orientation: 'h', yanchor: 'bottom', y: 1.02, xanchor: 'right', x: 1 },
        xaxis:  { domain: [0, 1], anchor: 'y' },
        yaxis:  { domain: [0.48, 1], title: { text: 'Cost (log scale)' }, type: opts.linearCost ? 'linear' : 'log' },
        xaxis2: { domain: [0, 1], anchor: 'y2', title: { text: 'Frame ID' } },
        yaxis2: { domain: [0, 0.36], title: { text: 'Reduction %' } },
    };
    if (factorField) {
        layout.yaxis3 = { overlaying: 'y2', side: 'right', title: { text: '# Factors' } };
    }
    if (opts.avgLine !== undefined) {
        layout.shapes = [{ type: 'line', xref: 'x2 domain', yref: 'y2', x0: 0, x1: 1,
            y0: opts.avgLine, y1: opts.avgLine, line: {color: 'orange', dash: 'dash'} }];
        layout.annotations = [{ xref: 'x2 domain', yref: 'y2', x: 1, y: opts.avgLine,
            text: 'Avg: ' + opts.avgLine.toFixed(1) + '%', showarrow: false, yshift: 10 }];
    }

    Plotly.newPlot(divId, traces, layout, {responsive: true});
}

costSection('chart_total', 'Overall Optimization Performance - {{.Key}}',
    'total_cost_init', 'total_cost_final', 'total_reduction_pct', null,
    { avgLine: {{f1js .TotalReductionAvg}} });
costSection('chart_visual', 'Visual Reprojection Factor Analysis - {{.Key}}',
    'visual_cost_init', 'visual_cost_final', 'visual_reduction_pct', 'total_visual_factors');
costSection('chart_imu', 'IMU Preintegration Factor Analysis - {{.Key}}',
    'imu_cost_init', 'imu_cost_final', 'imu_reduction_pct', 'num_imu_factors');
costSection('chart_depth', 'Depth Prior Factor Analysis - {{.Key}}',
    'depth_cost_init', 'depth_cost_final', 'depth_reduction_pct', 'num_depth_factors',
    { linearCost: !hasDepth });
</script>
</body>
</html>
`

const comparePageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Interactive Comparison - VINS Optimization</title>
    <script src="https://cdn.plot.ly/plotly-latest.min.js"></script>
    <style>
        body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; padding: 20px; background: #f5f5f5; }
        .container { max-width: 1600px; margin: 0 auto; }
        h1 { color: #2c3e50; text-align: center; }
        .nav { text-align: center; margin: 20px 0; padding: 15px; background: white; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .nav a { margin: 0 15px; text-decoration: none; color: #3498db; font-weight: bold; }
        .selectors { display: flex; justify-content: center; gap: 40px; margin: 20px 0; padding: 20px; background: white; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); flex-wrap: wrap; }
        .selector-group { display: flex; flex-direction: column; align-items: center; }
        .selector-group label { font-weight: bold; margin-bottom: 8px; color: #2c3e50; font-size: 16px; }
        .selector-group select { padding: 10px 15px; font-size: 14px; border: 2px solid #3498db; border-radius: 5px; min-width: 350px; cursor: pointer; }
        .selector-group select:focus { outline: none; border-color: #2980b9; }
        .selector-group .description { color: #7f8c8d; font-size: 12px; margin-top: 8px; font-style: italic; text-align: center; max-width: 350px; }
        .rmse-value { color: #e74c3c; font-weight: bold; font-style: normal; }
        .plot-type-selector { margin: 20px 0; text-align: center; }
        .plot-type-selector button { padding: 12px 24px; margin: 5px; cursor: pointer; border: none; background: #ecf0f1; color: #2c3e50; border-radius: 5px; font-size: 14px; font-weight: bold; transition: all 0.2s; }
        .plot-type-selector button:hover { background: #3498db; color: white; }
        .plot-type-selector button.active { background: #2c3e50; color: white; }
        .chart-container { background: white; margin: 20px 0; padding: 20px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .chart-row { display: grid; grid-template-columns: 1fr 1fr; gap: 20px; }
        .chart { min-height: 400px; }
        .stats-comparison { display: grid; grid-template-columns: 1fr 1fr 1fr; gap: 20px; margin: 20px 0; }
        .stats-card { background: white; padding: 20px; border-radius: 8px; box-shadow: 0 2px 5px rgba(0,0,0,0.1); }
        .stats-card h3 { margin: 0 0 5px 0; color: #2c3e50; text-align: center; }
        .stats-card table { width: 100%; border-collapse: collapse; font-size: 13px; }
        .stats-card td { padding: 6px 8px; border-bottom: 1px solid #eee; }
        .stats-card td:first-child { color: #666; }
        .stats-card td:last-child { text-align: right; font-family: monospace; }
        .stats-card .section-header td { background: #34495e; color: white; font-weight: bold; padding: 8px; font-size: 12px; }
        .better { color: #27ae60; font-weight: bold; }
        .worse { color: #e74c3c; font-weight: bold; }
        .delta-card { background: #e8f6f3; }
        .delta-card .better { background: #d4edda; }
        .delta-card .worse { background: #f8d7da; }
        .footer { text-align: center; color: #999; font-size: 12px; margin-top: 40px; }
    </style>
</head>
<body>
<div class="container">
    <h1>&#9878;&#65039; Interactive Comparison Tool</h1>
    <div class="nav">
        <a href="index.html">&#128203; Overview</a> | <a href="compare.html">&#9878;&#65039; Compare</a>
    </div>

    <div class="selectors">
        <div class="selector-group">
            <label>&#128193; File A (Base)</label>
            <select id="selectA" onchange="updateComparison()">
{{- range .Options}}
                <option value="{{.Key}}">{{.Key}}</option>
{{- end}}
            </select>
            <div class="description" id="descA"></div>
        </div>
        <div class="selector-group">
            <label>&#128193; File B (Compare)</label>
            <select id="selectB" onchange="updateComparison()">
{{- range .Options}}
                <option value="{{.Key}}"{{if .Selected}} selected{{end}}>{{.Key}}</option>
{{- end}}
            </select>
            <div class="description" id="descB"></div>
        </div>
    </div>

    <div class="plot-type-selector">
        <button onclick="setPlotType('total', this)">&#128202; Total Cost</button>
        <button onclick="setPlotType('visual', this)">&#128247; Visual</button>
        <button onclick="setPlotType('imu', this)">&#128260; IMU</button>
        <button onclick="setPlotType('depth', this)">&#128207; Depth</button>
        <button class="active" onclick="setPlotType('all', this)">&#128200; All Plots</button>
    </div>

    <div id="summary-stats-container" class="stats-comparison"></div>

    <div id="charts-container"></div>

    <div id="detailed-stats-container" class="stats-comparison" style="margin-top: 40px;"></div>

    <div class="footer">Generated {{.GeneratedAt}} &middot; vinsdash {{.Version}}</div>
</div>

<script>
const datasets = {{.DatasetsJSON}};
const descriptions = {{.DescriptionsJSON}};
const rmseData = {{.ScoresJSON}};
let currentPlotType = 'all';

function setPlotType(type, btn) {
    currentPlotType = type;
    document.querySelectorAll('.plot-type-selector button').forEach(b => b.classList.remove('active'));
    btn.classList.add('active');
    updateComparison();
}

function formatNum(n, decimals) {
    if (decimals === undefined) decimals = 4;
    if (Math.abs(n) > 1000 || (Math.abs(n) < 0.01 && n !== 0)) {
        return n.toExponential(decimals);
    }
    return n.toFixed(decimals);
}

function mean(arr) {
    if (!arr || arr.length === 0) return 0;
    return arr.reduce(function(a, b) { return a + b; }, 0) / arr.length;
}

function median(arr) {
    if (!arr || arr.length === 0) return 0;
    const sorted = arr.slice().sort(function(a, b) { return a - b; });
    const mid = Math.floor(sorted.length / 2);
    return sorted.length % 2 ? sorted[mid] : (sorted[mid - 1] + sorted[mid]) / 2;
}

function summarize(d) {
    return {
        frames: d.frame_id.length,
        total_init: median(d.total_cost_init),
        total_final: median(d.total_cost_final),
        total_reduction: mean(d.total_reduction_pct),
        visual_init: median(d.visual_cost_init),
        visual_final: median(d.visual_cost_final),
        visual_reduction: mean(d.visual_reduction_pct),
        imu_init: median(d.imu_cost_init),
        imu_final: median(d.imu_cost_final),
        imu_reduction: mean(d.imu_reduction_pct),
        depth_init: median(d.depth_cost_init),
        depth_final: median(d.depth_cost_final),
        depth_reduction: mean(d.depth_reduction_pct),
        margin_init: median(d.margin_cost_init),
        margin_final: median(d.margin_cost_final),
        margin_reduction: mean(d.margin_reduction_pct),
        solver_time: mean(d.solver_time_ms),
        iterations: mean(d.iterations),
        visual_factors: mean(d.total_visual_factors),
        imu_factors: mean(d.num_imu_factors),
        depth_factors: mean(d.num_depth_factors),
        margin_factors: mean(d.num_margin_factors),
        features: mean(d.num_features),
    };
}

function diffClass(a, b, lowerBetter) {
    if (lowerBetter === undefined) lowerBetter = true;
    const pct = ((b - a) / Math.abs(a)) * 100;
    if (lowerBetter) {
        return pct < -1 ? 'better' : (pct > 1 ? 'worse' : '');
    }
    return pct > 1 ? 'better' : (pct < -1 ? 'worse' : '');
}

function diffStr(a, b, lowerBetter) {
    const pct = ((b - a) / Math.abs(a)) * 100;
    const cls = diffClass(a, b, lowerBetter);
    const icon = cls === 'better' ? '🟢' : (cls === 'worse' ? '🔴' : '⚪');
    return '<span class="' + cls + '">' + icon + ' ' + (pct >= 0 ? '+' : '') + pct.toFixed(1) + '%</span>';
}

function summaryCard(name, s) {
    return '<div class="stats-card">' +
        '<h3>📊 ' + name + '</h3><table>' +
        '<tr><td>Frames</td><td>' + s.frames + '</td></tr>' +
        '<tr><td>Total Cost (Init)</td><td>' + formatNum(s.total_init) + '</td></tr>' +
        '<tr><td>Total Cost (Final)</td><td>' + formatNum(s.total_final) + '</td></tr>' +
        '<tr><td>Total Reduction</td><td>' + s.total_reduction.toFixed(2) + '%</td></tr>' +
        '<tr><td>Visual Cost (Final)</td><td>' + formatNum(s.visual_final) + '</td></tr>' +
        '<tr><td>IMU Cost (Final)</td><td>' + formatNum(s.imu_final) + '</td></tr>' +
        '<tr><td>Depth Cost (Final)</td><td>' + formatNum(s.depth_final) + '</td></tr>' +
        '</table></div>';
}

function detailCard(name, s) {
    return '<div class="stats-card">' +
        '<h3>📊 ' + name + ' - Full Details</h3><table>' +
        '<tr class="section-header"><td colspan="2">📈 General</td></tr>' +
        '<tr><td>Frames</td><td>' + s.frames + '</td></tr>' +
        '<tr><td>Avg Solver Time</td><td>' + s.solver_time.toFixed(2) + ' ms</td></tr>' +
        '<tr><td>Avg Iterations</td><td>' + s.iterations.toFixed(1) + '</td></tr>' +
        '<tr class="section-header"><td colspan="2">💰 Total Cost</td></tr>' +
        '<tr><td>Initial (med)</td><td>' + formatNum(s.total_init) + '</td></tr>' +
        '<tr><td>Final (med)</td><td>' + formatNum(s.total_final) + '</td></tr>' +
        '<tr><td>Reduction (avg)</td><td>' + s.total_reduction.toFixed(2) + '%</td></tr>' +
        '<tr class="section-header"><td colspan="2">👁️ Visual Cost</td></tr>' +
        '<tr><td>Initial (med)</td><td>' + formatNum(s.visual_init) + '</td></tr>' +
        '<tr><td>Final (med)</td><td>' + formatNum(s.visual_final) + '</td></tr>' +
        '<tr><td>Reduction (avg)</td><td>' + s.visual_reduction.toFixed(2) + '%</td></tr>' +
        '<tr class="section-header"><td colspan="2">🎯 IMU Cost</td></tr>' +
        '<tr><td>Initial (med)</td><td>' + formatNum(s.imu_init) + '</td></tr>' +
        '<tr><td>Final (med)</td><td>' + formatNum(s.imu_final) + '</td></tr>' +
        '<tr><td>Reduction (avg)</td><td>' + s.imu_reduction.toFixed(2) + '%</td></tr>' +
        '<tr class="section-header"><td colspan="2">📏 Depth Cost</td></tr>' +
        '<tr><td>Initial (med)</td><td>' + formatNum(s.depth_init) + '</td></tr>' +
        '<tr><td>Final (med)</td><td>' + formatNum(s.depth_final) + '</td></tr>' +
        '<tr><td>Reduction (avg)</td><td>' + s.depth_reduction.toFixed(2) + '%</td></tr>' +
        '<tr class="section-header"><td colspan="2">📦 Margin Cost</td></tr>' +
        '<tr><td>Initial (med)</td><td>' + formatNum(s.margin_init) + '</td></tr>' +
        '<tr><td>Final (med)</td><td>' + formatNum(s.margin_final) + '</td></tr>' +
        '<tr><td>Reduction (avg)</td><td>' + s.margin_reduction.toFixed(2) + '%</td></tr>' +
        '<tr class="section-header"><td colspan="2">🔢 Factor Counts (avg)</td></tr>' +
        '<tr><td>Visual Factors</td><td>' + s.visual_factors.toFixed(0) + '</td></tr>' +
        '<tr><td>IMU Factors</td><td>' + s.imu_factors.toFixed(0) + '</td></tr>' +
        '<tr><td>Depth Factors</td><td>' + s.depth_factors.toFixed(0) + '</td></tr>' +
        '<tr><td>Margin Factors</td><td>' + s.margin_factors.toFixed(1) + '</td></tr>' +
        '<tr><td>Features</td><td>' + s.features.toFixed(0) + '</td></tr>' +
        '</table></div>';
}

function deltaRow(label, a, b, lowerBetter) {
    return '<tr><td>' + label + '</td><td>' + diffStr(a, b, lowerBetter) + '</td></tr>';
}

function deltaDetailCard(sa, sb) {
    return '<div class="stats-card delta-card">' +
        '<h3>Δ Change (B vs A) - Full Details</h3><table>' +
        '<tr class="section-header"><td colspan="2">📈 General</td></tr>' +
        '<tr><td>Frames</td><td>-</td></tr>' +
        deltaRow('Solver Time', sa.solver_time, sb.solver_time) +
        deltaRow('Iterations', sa.iterations, sb.iterations) +
        '<tr class="section-header"><td colspan="2">💰 Total Cost</td></tr>' +
        deltaRow('Initial', sa.total_init, sb.total_init) +
        deltaRow('Final', sa.total_final, sb.total_final) +
        deltaRow('Reduction', sa.total_reduction, sb.total_reduction, false) +
        '<tr class="section-header"><td colspan="2">👁️ Visual Cost</td></tr>' +
        deltaRow('Initial', sa.visual_init, sb.visual_init) +
        deltaRow('Final', sa.visual_final, sb.visual_final) +
        deltaRow('Reduction', sa.visual_reduction, sb.visual_reduction, false) +
        '<tr class="section-header"><td colspan="2">🎯 IMU Cost</td></tr>' +
        deltaRow('Initial', sa.imu_init, sb.imu_init) +
        deltaRow('Final', sa.imu_final, sb.imu_final) +
        deltaRow('Reduction', sa.imu_reduction, sb.imu_reduction, false) +
        '<tr class="section-header"><td colspan="2">📏 Depth Cost</td></tr>' +
        deltaRow('Initial', sa.depth_init, sb.depth_init) +
        deltaRow('Final', sa.depth_final, sb.depth_final) +
        deltaRow('Reduction', sa.depth_reduction, sb.depth_reduction, false) +
        '<tr class="section-header"><td colspan="2">📦 Margin Cost</td></tr>' +
        deltaRow('Initial', sa.margin_init, sb.margin_init) +
        deltaRow('Final', sa.margin_final, sb.margin_final) +
        deltaRow('Reduction', sa.margin_reduction, sb.margin_reduction, false) +
        '<tr class="section-header"><td colspan="2">🔢 Factor Counts</td></tr>' +
        deltaRow('Visual Factors', sa.visual_factors, sb.visual_factors, false) +
        deltaRow('IMU Factors', sa.imu_factors, sb.imu_factors, false) +
        deltaRow('Depth Factors', sa.depth_factors, sb.depth_factors, false) +
        deltaRow('Margin Factors', sa.margin_factors, sb.margin_factors, false) +
        deltaRow('Features', sa.features, sb.features, false) +
        '</table></div>';
}

function updateStats(nameA, nameB, dataA, dataB) {
    const sa = summarize(dataA);
    const sb = summarize(dataB);

    document.getElementById('summary-stats-container').innerHTML =
        summaryCard(nameA, sa) + summaryCard(nameB, sb) +
        '<div class="stats-card delta-card">' +
        '<h3>Δ Change (B vs A)</h3><table>' +
        '<tr><td>Frames</td><td>-</td></tr>' +
        deltaRow('Total Cost (Init)', sa.total_init, sb.total_init) +
        deltaRow('Total Cost (Final)', sa.total_final, sb.total_final) +
        deltaRow('Total Reduction', sa.total_reduction, sb.total_reduction, false) +
        deltaRow('Visual Cost (Final)', sa.visual_final, sb.visual_final) +
        deltaRow('IMU Cost (Final)', sa.imu_final, sb.imu_final) +
        deltaRow('Depth Cost (Final)', sa.depth_final, sb.depth_final) +
        '</table></div>';

    document.getElementById('detailed-stats-container').innerHTML =
        '<h2 style="grid-column: 1 / -1; color: #2c3e50; margin-bottom: 20px; text-align: center; border-bottom: 2px solid #3498db; padding-bottom: 10px;">📋 Detailed Statistics</h2>' +
        detailCard(nameA, sa) + detailCard(nameB, sb) + deltaDetailCard(sa, sb);
}

function createComparisonPlot(container, dataA, dataB, nameA, nameB, type, title) {
    const chartDiv = document.createElement('div');
    chartDiv.className = 'chart-container';
    chartDiv.innerHTML = '<h3 style="text-align:center; color:#2c3e50;">' + title + '</h3>' +
        '<div class="chart-row"><div id="chart_' + type + '_A" class="chart"></div><div id="chart_' + type + '_B" class="chart"></div></div>';
    container.appendChild(chartDiv);

    const fieldMap = {
        total: ['total_cost_init', 'total_cost_final'],
        visual: ['visual_cost_init', 'visual_cost_final'],
        imu: ['imu_cost_init', 'imu_cost_final'],
        depth: ['depth_cost_init', 'depth_cost_final'],
    };
    const initField = fieldMap[type][0];
    const finalField = fieldMap[type][1];

    const layoutFor = function(name) {
        return {
            title: { text: name },
            yaxis: { type: 'log', title: { text: 'Cost (log)' } },
            xaxis: { title: { text: 'Frame ID' } },
            hovermode: 'x unified',
            margin: { t: 40 },
        };
    };

    Plotly.newPlot('chart_' + type + '_A', [
        { x: dataA.frame_id, y: dataA[initField], name: 'Initial', line: {color: '#EF553B', width: 2} },
        { x: dataA.frame_id, y: dataA[finalField], name: 'Final', line: {color: '#00CC96', width: 2} },
    ], layoutFor(nameA));

    Plotly.newPlot('chart_' + type + '_B', [
        { x: dataB.frame_id, y: dataB[initField], name: 'Initial', line: {color: '#EF553B', width: 2} },
        { x: dataB.frame_id, y: dataB[finalField], name: 'Final', line: {color: '#00CC96', width: 2} },
    ], layoutFor(nameB));
}

function updateComparison() {
    const nameA = document.getElementById('selectA').value;
    const nameB = document.getElementById('selectB').value;
    const dataA = datasets[nameA];
    const dataB = datasets[nameB];

    const rmseA = rmseData[nameA];
    const rmseB = rmseData[nameB];
    const rmseStrA = (rmseA !== null && rmseA !== undefined) ? '<span class="rmse-value">📐 RMSE: ' + rmseA.toFixed(4) + '</span>' : '';
    const rmseStrB = (rmseB !== null && rmseB !== undefined) ? '<span class="rmse-value">📐 RMSE: ' + rmseB.toFixed(4) + '</span>' : '';
    document.getElementById('descA').innerHTML = (descriptions[nameA] || '') + (rmseStrA ? '<br>' + rmseStrA : '');
    document.getElementById('descB').innerHTML = (descriptions[nameB] || '') + (rmseStrB ? '<br>' + rmseStrB : '');

    updateStats(nameA, nameB, dataA, dataB);

    const container = document.getElementById('charts-container');
    container.innerHTML = '';

    const titles = { total: 'Total Cost', visual: 'Visual Cost', imu: 'IMU Cost', depth: 'Depth Cost' };
    if (currentPlotType === 'all') {
        ['total', 'visual', 'imu', 'depth'].forEach(function(type) {
            createComparisonPlot(container, dataA, dataB, nameA, nameB, type, titles[type]);
        });
    } else {
        createComparisonPlot(container, dataA, dataB, nameA, nameB, currentPlotType, titles[currentPlotType]);
    }
}

document.addEventListener('DOMContentLoaded', updateComparison);
</script>
</body>
</html>
`
