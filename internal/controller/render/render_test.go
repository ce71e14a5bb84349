package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlain(&buf)

	r.Title("BAŞLIK")
	r.Line("satır")
	r.Success("oldu")
	r.Error("olmadı")
	r.Prompt("> ")

	out := buf.String()
	assert.Contains(t, out, "BAŞLIK\n")
	assert.Contains(t, out, "satır\n")
	assert.Contains(t, out, "✅ oldu\n")
	assert.Contains(t, out, "❌ olmadı\n")
	assert.True(t, strings.HasSuffix(out, "> "), "prompt must not end with a newline")
	assert.NotContains(t, out, "\x1b[", "plain output must carry no ANSI codes")
}

func TestANSIRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewANSI(&buf)

	r.Success("oldu")
	r.Error("olmadı")

	out := buf.String()
	assert.Contains(t, out, ansiGreen)
	assert.Contains(t, out, ansiRed)
	assert.Contains(t, out, ansiReset)
}

func TestWeekImageProducesPNG(t *testing.T) {
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC) // Monday
	entries := []WeekEntry{
		{Start: weekStart.Add(14 * time.Hour), Duration: time.Hour, Title: "Analiz", Paid: true},
		{Start: weekStart.AddDate(0, 0, 2).Add(9*time.Hour + 30*time.Minute), Duration: 90 * time.Minute, Title: "Mekanik"},
	}

	data, err := WeekImage("Ebru", weekStart, entries)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestWeekImageEmptyWeek(t *testing.T) {
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	data, err := WeekImage("Ebru", weekStart, nil)
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
