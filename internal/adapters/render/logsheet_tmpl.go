package render

const logSheetTmpl = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 {{.SvgWidth}} {{.SvgHeight}}" font-family="monospace">
<rect x="{{.MarginLeft}}" y="{{.MarginTop}}" width="{{.GridWidth}}" height="{{.GridHeight}}" fill="white"/>
<g transform="translate({{.MarginLeft}}, {{.MarginTop}})">
{{- range .RowLines}}
<line x1="0" y1="{{.}}" x2="{{$.GridWidth}}" y2="{{.}}" stroke="black" stroke-width="1"/>
{{- end}}
{{- range .Ticks}}
<line x1="{{.X}}" y1="0" x2="{{.X}}" y2="{{$.GridHeight}}" stroke="black" stroke-width="{{.Stroke}}" opacity="{{.Op}}"/>
{{- end}}
{{- range .Hours}}
<line x1="{{.X}}" y1="-5" x2="{{.X}}" y2="{{$.GridHeight}}" stroke="black" stroke-width="{{.Width}}"/>
{{- if .Label}}<text x="{{.X}}" y="-8" font-size="10" font-weight="bold">{{.Label}}</text>{{end}}
{{- end}}
{{- range .Lanes}}
<text x="-5" y="{{.Y}}" text-anchor="end" font-size="10" font-weight="bold">{{.Text}}</text>
{{- end}}
{{- if .PathD}}
<path d="{{.PathD}}" fill="none" stroke="#000" stroke-width="2.5" stroke-linejoin="round" stroke-linecap="square"/>
{{- end}}
<text x="0" y="{{.GridHeight}}" dy="14" font-size="10">{{.Date}} | Driving: {{.Driving}}h | On Duty: {{.OnDuty}}h | Cycle Remaining: {{.CycleLeft}}h</text>
</g>
</svg>
`
