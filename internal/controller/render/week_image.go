package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// WeekEntry is one appointment placed on the weekly grid.
type WeekEntry struct {
	Start    time.Time
	Duration time.Duration
	Title    string
	Paid     bool
}

// Layout constants
const (
	imageWidth      = 1120
	imageHeight     = 760
	headerHeight    = 70
	leftLabelsWidth = 56
	dayPaddingX     = 6
	minSlotHeight   = 10.0
	slotRadius      = 5.0
	shadowOffset    = 2.0
	totalDays       = 7
	defaultMinHour  = 8
	defaultMaxHour  = 20
)

// Color scheme
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 255}
	hourLabelColor = color.RGBA{110, 115, 120, 255}
	hourLineColor  = color.RGBA{200, 202, 205, 255}
	evenDayColor   = color.RGBA{240, 240, 240, 255}
	oddDayColor    = color.RGBA{228, 229, 231, 255}

	slotUnpaidColor = color.RGBA{255, 182, 193, 255}
	slotPaidColor   = color.RGBA{133, 193, 85, 255}
	slotTextColor   = color.RGBA{20, 24, 28, 255}
	slotShadowColor = color.RGBA{0, 0, 0, 24}
)

type hourRange struct {
	start int
	end   int
}

func (r hourRange) total() int {
	return r.end - r.start + 1
}

// hoursFor widens the default visible range so every entry fits on the grid.
func hoursFor(entries []WeekEntry) hourRange {
	r := hourRange{start: defaultMinHour, end: defaultMaxHour}
	for _, e := range entries {
		startHour := e.Start.Hour()
		endHour := e.Start.Add(e.Duration).Hour() + 1
		if startHour < r.start {
			r.start = startHour
		}
		if endHour > r.end {
			r.end = endHour
		}
	}
	if r.end > 23 {
		r.end = 23
	}
	return r
}

// WeekImage draws a teacher's appointments for the week starting at
// weekStart onto a day-by-hour grid and returns the encoded PNG.
func WeekImage(teacherName string, weekStart time.Time, entries []WeekEntry) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	hours := hoursFor(entries)
	dayWidth := float64(imageWidth-leftLabelsWidth) / totalDays
	gridHeight := float64(imageHeight - headerHeight)
	hourHeight := gridHeight / float64(hours.total())

	// Header
	title := fmt.Sprintf("%s — %s / %s",
		teacherName,
		weekStart.Format("02.01.2006"),
		weekStart.AddDate(0, 0, 6).Format("02.01.2006"))
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2-10, 0.5, 0.5)

	// Day columns
	for day := 0; day < totalDays; day++ {
		x := float64(leftLabelsWidth) + float64(day)*dayWidth
		if day%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, float64(headerHeight), dayWidth, gridHeight)
		dc.Fill()

		dc.SetColor(textColor)
		label := weekStart.AddDate(0, 0, day).Format("Mon 02.01")
		dc.DrawStringAnchored(label, x+dayWidth/2, float64(headerHeight)-12, 0.5, 0.5)
	}

	// Hour lines and labels
	for h := 0; h <= hours.total(); h++ {
		y := float64(headerHeight) + float64(h)*hourHeight
		dc.SetColor(hourLineColor)
		dc.SetLineWidth(1)
		dc.DrawLine(float64(leftLabelsWidth), y, float64(imageWidth), y)
		dc.Stroke()

		if h < hours.total() {
			dc.SetColor(hourLabelColor)
			dc.DrawStringAnchored(fmt.Sprintf("%02d:00", hours.start+h),
				float64(leftLabelsWidth)/2, y+hourHeight/2, 0.5, 0.5)
		}
	}

	// Appointment boxes
	for _, e := range entries {
		day := int(e.Start.Sub(weekStart).Hours() / 24)
		if day < 0 || day >= totalDays {
			continue
		}

		startOffset := float64(e.Start.Hour()-hours.start) + float64(e.Start.Minute())/60
		x := float64(leftLabelsWidth) + float64(day)*dayWidth + dayPaddingX
		y := float64(headerHeight) + startOffset*hourHeight
		w := dayWidth - 2*dayPaddingX
		h := e.Duration.Hours() * hourHeight
		if h < minSlotHeight {
			h = minSlotHeight
		}

		dc.SetColor(slotShadowColor)
		dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, h, slotRadius)
		dc.Fill()

		if e.Paid {
			dc.SetColor(slotPaidColor)
		} else {
			dc.SetColor(slotUnpaidColor)
		}
		dc.DrawRoundedRectangle(x, y, w, h, slotRadius)
		dc.Fill()

		dc.SetColor(slotTextColor)
		label := fmt.Sprintf("%s %s", e.Start.Format("15:04"), e.Title)
		dc.DrawStringAnchored(truncate(label, int(w/8)), x+w/2, y+h/2, 0.5, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if max < 4 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
