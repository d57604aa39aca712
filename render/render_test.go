package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/cluster-gol/model"
)

func TestToImage(t *testing.T) {
	buf := model.NewColorBuffer(2, 1)
	buf.Set(0, 0, 1, 0.5, 0)
	buf.Set(1, 0, -0.2, 1.3, 0.2)

	img := ToImage(buf, 1)
	if got, want := img.RGBAAt(0, 0), (color.RGBA{R: 255, G: 128, B: 0, A: 255}); got != want {
		t.Fatalf("pixel (0,0) = %v, want %v", got, want)
	}
	if got, want := img.RGBAAt(1, 0), (color.RGBA{R: 0, G: 255, B: 51, A: 255}); got != want {
		t.Fatalf("pixel (1,0) = %v, want %v", got, want)
	}

	scaled := ToImage(buf, 4)
	if b := scaled.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Fatalf("scaled bounds %v, want 8x4", b)
	}
	if scaled.RGBAAt(3, 3) != img.RGBAAt(0, 0) || scaled.RGBAAt(4, 0) != img.RGBAAt(1, 0) {
		t.Fatal("nearest-neighbor scaling blurred cell colors")
	}
}

func TestQuantizeKeepsExactColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(1, 0, color.RGBA{R: 200, G: 100, B: 0, A: 255})
	img.SetRGBA(2, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	p := Quantize(img)
	if len(p.Palette) != 2 {
		t.Fatalf("palette has %d colors, want 2", len(p.Palette))
	}
	for x := range 3 {
		r1, g1, b1, _ := p.At(x, 0).RGBA()
		r2, g2, b2, _ := img.At(x, 0).RGBA()
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Fatalf("pixel %d changed by quantization", x)
		}
	}
}

func TestQuantizeFallsBackForRichFrames(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	rng := rand.New(rand.NewPCG(1, 2))
	for i := range img.Pix {
		img.Pix[i] = uint8(rng.IntN(256))
	}
	p := Quantize(img)
	if len(p.Palette) != 256 {
		t.Fatalf("fallback palette has %d colors, want 256", len(p.Palette))
	}
}

func TestCaptionDrawsText(t *testing.T) {
	buf := model.NewColorBuffer(40, 20)
	buf.Fill(1, 1, 1)
	img := ToImage(buf, 1)
	Caption(img, "42")

	dark := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 {
			dark++
		}
	}
	if dark == 0 {
		t.Fatal("caption left the frame untouched")
	}
}

func TestLifeSourceAlternatesColorsAndUpdate(t *testing.T) {
	engine, err := model.NewEngineFromGrid(model.GridFromRows(".....", ".....", ".###.", ".....", "....."))
	if err != nil {
		t.Fatal(err)
	}
	colorer := model.NewColorer()
	var observed []int
	source := LifeSource(engine, colorer, func(gen int, grid *model.Grid, clusters *model.Clusters) {
		if clusters.Count() != 1 || clusters.Sizes[0] != grid.CountLivingCells() {
			t.Fatalf("generation %d: unexpected clusters %v", gen, clusters.Sizes)
		}
		observed = append(observed, gen)
	})

	first := source(0)
	if engine.Generation() != 1 {
		t.Fatalf("generation = %d after one frame, want 1", engine.Generation())
	}
	if r, g, b := first.At(1, 2); r == 1 && g == 1 && b == 1 {
		t.Fatal("first frame does not show the horizontal blinker")
	}
	second := source(1)
	if r, g, b := second.At(2, 1); r == 1 && g == 1 && b == 1 {
		t.Fatal("second frame does not show the vertical blinker")
	}
	if len(observed) != 2 || observed[0] != 0 || observed[1] != 1 {
		t.Fatalf("observed generations %v, want [0 1]", observed)
	}
}

func TestWriteGIF(t *testing.T) {
	engine, err := model.NewEngine(10, 20, 80, rand.New(rand.NewPCG(4, 0)))
	if err != nil {
		t.Fatal(err)
	}
	a := &Animator{Scale: 3, FPS: 20, Caption: true}
	frames, err := a.Collect(context.Background(), LifeSource(engine, model.NewColorer(), nil), 5)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	var out bytes.Buffer
	if err = a.WriteGIF(context.Background(), &out, frames); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	decoded, err := gif.DecodeAll(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded.Image) != 5 {
		t.Fatalf("decoded %d frames, want 5", len(decoded.Image))
	}
	if b := decoded.Image[0].Bounds(); b.Dx() != 60 || b.Dy() != 30 {
		t.Fatalf("frame bounds %v, want 60x30", b)
	}
	for i, d := range decoded.Delay {
		if d != 5 {
			t.Fatalf("frame %d delay = %d, want 5", i, d)
		}
	}
}

func TestWriteGIFRejectsEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := (&Animator{}).WriteGIF(context.Background(), &out, nil); err == nil {
		t.Fatal("expected error for zero frames")
	}
}

func TestSaveFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	buf := model.NewColorBuffer(4, 4)
	a := &Animator{Scale: 1}
	frames, err := a.Collect(context.Background(), func(int) *model.ColorBuffer { return buf }, 3)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	if err := a.SaveFrames(dir, "frame", frames); err != nil {
		t.Fatalf("SaveFrames: %v", err)
	}
	for _, name := range []string{"frame_0000.png", "frame_0001.png", "frame_0002.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}

func TestSaveGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	buf := model.NewColorBuffer(4, 4)
	a := &Animator{Scale: 2, FPS: 10}
	frames, err := a.Collect(context.Background(), func(int) *model.ColorBuffer { return buf }, 2)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if err = a.SaveGIF(context.Background(), path, frames); err != nil {
		t.Fatalf("SaveGIF: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("gif not written: %v", err)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory holds %d entries, want only the gif", len(entries))
	}
}

func TestSaveGIFCancelledLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gif")
	a := &Animator{Scale: 2, FPS: 10}
	frames := []*image.RGBA{ToImage(model.NewColorBuffer(4, 4), 2)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.SaveGIF(ctx, path, frames); !errors.Is(err, context.Canceled) {
		t.Fatalf("SaveGIF err = %v, want context.Canceled", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("cancelled save left %d entries behind", len(entries))
	}
}

func TestSaveGIFBadDirectoryLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.gif")
	a := &Animator{Scale: 1}
	frames := []*image.RGBA{ToImage(model.NewColorBuffer(2, 2), 1)}
	if err := a.SaveGIF(context.Background(), path, frames); err == nil {
		t.Fatal("expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("stat after failed save: %v", err)
	}
}

func TestCollectStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pulled := 0
	source := func(i int) *model.ColorBuffer {
		pulled++
		if i == 1 {
			cancel()
		}
		return model.NewColorBuffer(2, 2)
	}

	frames, err := (&Animator{Scale: 1}).Collect(ctx, source, 5)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Collect err = %v, want context.Canceled", err)
	}
	if frames != nil {
		t.Fatalf("Collect returned %d frames alongside the error", len(frames))
	}
	if pulled != 2 {
		t.Fatalf("pulled %d frames, want 2", pulled)
	}
}
