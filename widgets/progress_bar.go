package widgets

import (
	"compot/device"
	"fmt"
	"math"
	"sort"
	"strings"
)

// blocks[i] fills i eighths of a cell.
var blocks = []string{" ", "▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

const fullBlock = "█"

// Band colors the part of a progress bar up to Threshold.
type Band struct {
	Threshold float64
	Color     device.Color
}

type ProgressBarStyle struct {
	Bands []Band
}

var DefaultProgressBarStyle = ProgressBarStyle{
	Bands: []Band{
		{Threshold: 1.0 / 3, Color: device.Error},
		{Threshold: 2.0 / 3, Color: device.Warning},
		{Threshold: 3.0 / 3, Color: device.Ok},
	},
}

type progressBar struct {
	Progress float64
	Style    ProgressBarStyle
}

// ProgressBar draws progress in [0, 1] between brackets that sit at the two
// ends of the granted width, with eighth-of-a-cell precision.
func ProgressBar(progress float64) progressBar {
	return progressBar{Progress: progress}
}

func (pb progressBar) WithStyle(style ProgressBarStyle) progressBar {
	pb.Style = style
	return pb
}

func (pb progressBar) Name() string { return "ProgressBar" }

func (pb progressBar) Measure(ctx *Context, offered Size) (Size, error) {
	return ctx.Measure(pb.compose(offered.W), offered)
}

func (pb progressBar) Build(ctx *Context, placement Placement) (*Graph, error) {
	return pb.compose(placement.W).Build(ctx, placement)
}

func (pb progressBar) bands() []Band {
	bands := pb.Style.Bands
	if len(bands) == 0 {
		bands = DefaultProgressBarStyle.Bands
	}
	sorted := make([]Band, len(bands))
	for i, band := range bands {
		band.Threshold = math.Max(0, math.Min(1, band.Threshold))
		sorted[i] = band
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold < sorted[j].Threshold
	})
	return sorted
}

func (pb progressBar) compose(width int) Widget {
	available := float64(max(width-2, 0))
	progress := math.Max(0, math.Min(1, pb.Progress))
	bands := pb.bands()

	segments := make([]Widget, 0, len(bands)+1)
	last := 0.0
	active := -1
	for i, band := range bands {
		if progress < band.Threshold {
			active = i
			break
		}
		size := max(int(math.Floor((band.Threshold-last)*available)), 0)
		segments = append(segments, Text(strings.Repeat(fullBlock, size)).Color(band.Color))
		last = band.Threshold
	}

	if active < 0 {
		segments = append(segments, Text("").Color(bands[len(bands)-1].Color))
	} else {
		remaining := (progress - last) * available
		full := math.Floor(remaining)
		eighths := int(math.RoundToEven((remaining - full) * 8))
		partial := strings.Repeat(fullBlock, int(full)) + blocks[eighths]
		segments = append(segments, Text(partial).Color(bands[active].Color))
	}

	return Row(
		Row(Text("["), Row(segments...)),
		Row(Text("]")),
	).Layout(Fill).Spacing(SpaceBetween)
}

func (pb progressBar) String() string { return toString(pb) }

func (pb progressBar) ToString(buf *strings.Builder, offset string) {
	bands := make([]string, len(pb.bands()))
	for i, band := range pb.bands() {
		bands[i] = fmt.Sprintf("%.3g:%s", band.Threshold, band.Color)
	}
	header(buf, offset, pb.Name(),
		fmt.Sprintf("%g", pb.Progress),
		fmt.Sprintf("style={%s}", strings.Join(bands, ", ")))
}
