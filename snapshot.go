package qtads

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Snapshot queues a labeled capture of the view's document region, taken at
// the end of the current frame's Draw call. The resulting PNG is written to
// SnapshotDir with a timestamped filename. Safe to call from Update or Draw;
// scripted replays use it through the "snapshot" action.
func (v *View) Snapshot(label string) {
	v.snapshotQueue = append(v.snapshotQueue, label)
}

// flushSnapshots captures the view region for every queued label and writes
// each as a PNG file. Called at the end of View.Draw and View.DrawDamaged.
func (v *View) flushSnapshots(region *ebiten.Image) {
	if len(v.snapshotQueue) == 0 {
		return
	}

	if err := os.MkdirAll(v.SnapshotDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "[qtads] snapshot: mkdir %s: %v\n", v.SnapshotDir, err)
		v.snapshotQueue = v.snapshotQueue[:0]
		return
	}

	bounds := region.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 4*w*h)
	region.ReadPixels(pixels)

	// Convert premultiplied RGBA to straight-alpha NRGBA.
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(pixels); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	stamp := time.Now().Format("20060102_150405")

	for _, label := range v.snapshotQueue {
		safe := sanitizeLabel(label)
		path := fmt.Sprintf("%s/%s_%s.png", v.SnapshotDir, stamp, safe)
		if err := writePNG(path, img); err != nil {
			fmt.Fprintf(os.Stderr, "[qtads] snapshot: %v\n", err)
		}
	}

	v.snapshotQueue = v.snapshotQueue[:0]
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
