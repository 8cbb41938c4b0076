package render

import (
	"fmt"
	"hos-log-service/internal/services"
	"html/template"
	"io"
	"strings"
)

// Fixed geometry of the FMCSA-style log grid, in SVG user units.
// The engine's path arrives in logical (hour, lane) coordinates; the two
// linear scales below are the only place pixels enter the picture.
const (
	gridWidth  = 800.0
	rowHeight  = 40.0
	marginTop  = 20.0
	marginLeft = 100.0
	marginSide = 30.0
	laneRows   = 4
)

var hourWidth = gridWidth / 24

type laneLabel struct {
	Y    float64
	Text string
}

type tick struct {
	X      float64
	Stroke float64
	Op     string
}

type hourMark struct {
	X     float64
	Width float64
	Label string
}

type sheetData struct {
	SvgWidth   float64
	SvgHeight  float64
	GridWidth  float64
	GridHeight float64
	MarginTop  float64
	MarginLeft float64
	Date       string
	Lanes      []laneLabel
	RowLines   []float64
	Ticks      []tick
	Hours      []hourMark
	PathD      string
	Driving    string
	OnDuty     string
	CycleLeft  string
}

// LogSheet writes one day view as a standalone SVG log sheet.
func LogSheet(w io.Writer, view services.DayView) error {
	data := sheetData{
		SvgWidth:   gridWidth + marginLeft + marginSide,
		SvgHeight:  rowHeight*laneRows + 2*marginTop,
		GridWidth:  gridWidth,
		GridHeight: rowHeight * laneRows,
		MarginTop:  marginTop,
		MarginLeft: marginLeft,
		Date:       view.Date,
		PathD:      pathD(view),
		Driving:    fmt.Sprintf("%.2f", view.Summary.TotalDrivingHours),
		OnDuty:     fmt.Sprintf("%.2f", view.Summary.TotalOnDutyHours),
		CycleLeft:  fmt.Sprintf("%.2f", view.Summary.CycleHoursRemaining),
	}

	labels := []string{"1. OFF DUTY", "2. SLEEPER BERTH", "3. DRIVING", "4. ON DUTY (Not Driving)"}
	for i, text := range labels {
		data.Lanes = append(data.Lanes, laneLabel{Y: laneY(i), Text: text})
	}

	for i := 0; i <= laneRows; i++ {
		data.RowLines = append(data.RowLines, float64(i)*rowHeight)
	}

	// Quarter-hour ticks, hour lines emphasized.
	for t := 0; t < 24*4; t++ {
		x := float64(t) * hourWidth / 4
		if t%4 == 0 {
			data.Ticks = append(data.Ticks, tick{X: x, Stroke: 1, Op: "0.3"})
		} else {
			data.Ticks = append(data.Ticks, tick{X: x, Stroke: 0.5, Op: "0.1"})
		}
	}

	for h := 0; h <= 24; h++ {
		m := hourMark{X: float64(h) * hourWidth, Width: 1}
		if h%12 == 0 {
			m.Width = 2
		}
		switch {
		case h == 24:
			// right border, no label
		case h == 0:
			m.Label = "MDT"
		case h == 12:
			m.Label = "NOON"
		default:
			m.Label = fmt.Sprintf("%d", h)
		}
		data.Hours = append(data.Hours, m)
	}

	return sheetTmpl.Execute(w, data)
}

func laneY(lane int) float64 {
	return float64(lane)*rowHeight + rowHeight/2
}

// pathD converts the logical path to an SVG path command string.
func pathD(view services.DayView) string {
	if len(view.Path) == 0 {
		return ""
	}

	var b strings.Builder
	for i, pt := range view.Path {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&b, "%s %.2f %.2f ", cmd, pt.Hour*hourWidth, laneY(pt.Lane))
	}
	return strings.TrimSpace(b.String())
}

var sheetTmpl = template.Must(template.New("logsheet").Parse(logSheetTmpl))
