// Package render turns sequences of color buffers into animations: an
// animated GIF or a directory of numbered PNG frames.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/cluster-gol/model"
)

// FrameSource produces frame i. Sources may be stateful and expect i to count up from 0.
type FrameSource func(i int) *model.ColorBuffer

// Observer is told about the clusters of each generation before it is advanced
type Observer func(generation int, grid *model.Grid, clusters *model.Clusters)

// LifeSource returns the cluster colors of the current generation, then advances the engine.
// observe may be nil.
func LifeSource(engine *model.Engine, colorer *model.Colorer, observe Observer) FrameSource {
	return func(int) *model.ColorBuffer {
		grid := engine.Grid()
		colors := model.NewColorBuffer(grid.GetWidth(), grid.GetHeight())
		clusters := colorer.ColorsInto(grid, colors)
		if observe != nil {
			observe(engine.Generation(), grid, clusters)
		}
		engine.Update()
		return colors
	}
}

// Animator collects frames and writes them out
type Animator struct {
	Scale   int  // pixels per buffer cell
	FPS     int  // GIF playback rate
	Caption bool // stamp the frame number on each frame
}

// Collect pulls n frames from source in order and converts them to images.
// It stops before the next frame once ctx is done.
func (a *Animator) Collect(ctx context.Context, source FrameSource, n int) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, n)
	for i := range n {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "[Collect] stopped after %d of %d frames", i, n)
		}
		img := ToImage(source(i), a.Scale)
		if a.Caption {
			Caption(img, fmt.Sprintf("%d", i))
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// delay returns the per-frame GIF delay in 100ths of a second
func (a *Animator) delay() int {
	if a.FPS <= 0 {
		return 10
	}
	return max(1, 100/a.FPS)
}

// WriteGIF quantizes frames concurrently and encodes a looping GIF
func (a *Animator) WriteGIF(ctx context.Context, w io.Writer, frames []*image.RGBA) error {
	if len(frames) == 0 {
		return errors.New("[WriteGIF] no frames to encode")
	}

	paletted := make([]*image.Paletted, len(frames))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for i, frame := range frames {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paletted[i] = Quantize(frame)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, "[WriteGIF] failed to quantize frames")
	}

	anim := &gif.GIF{
		Image:     paletted,
		Delay:     make([]int, len(paletted)),
		LoopCount: 0,
	}
	for i := range anim.Delay {
		anim.Delay[i] = a.delay()
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return errors.Wrap(err, "[WriteGIF] failed to encode")
	}
	return nil
}

// SaveGIF writes the animation to filename.
// The GIF is encoded in memory and moved into place through a temp file in the
// same directory, so a failed or cancelled run never leaves a partial file behind.
func (a *Animator) SaveGIF(ctx context.Context, filename string, frames []*image.RGBA) error {
	var buf bytes.Buffer
	if err := a.WriteGIF(ctx, &buf, frames); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "[SaveGIF] failed to create temp file for: %+v", filename)
	}
	if _, err = buf.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveGIF] failed to write file: %+v", filename)
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveGIF] failed to close file: %+v", filename)
	}
	if err = os.Rename(tmp.Name(), filename); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "[SaveGIF] failed to move file into place: %+v", filename)
	}
	return nil
}

// SaveFrames writes each frame to dir as prefix_0000.png, prefix_0001.png, ...
func (a *Animator) SaveFrames(dir, prefix string, frames []*image.RGBA) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "[SaveFrames] failed to create directory: %+v", dir)
	}
	for i, frame := range frames {
		name := filepath.Join(dir, fmt.Sprintf("%s_%04d.png", prefix, i))
		if err := writePNG(name, frame); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "[SaveFrames] failed to create file: %+v", name)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveFrames] failed to close file: %+v", name)
		}
	}()
	if err = png.Encode(f, img); err != nil {
		return errors.Wrapf(err, "[SaveFrames] failed to encode: %+v", name)
	}
	return nil
}
