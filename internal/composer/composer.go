// Package composer renders one astronomy picture of the day into a frame:
// fetch, optional fit onto the display canvas, caption overlay.
package composer

import (
	"context"
	"image"
	"image/color"
	"log/slog"
	"math/rand"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"

	"github.com/ewoodall/apodframe/internal/apod"
	"github.com/ewoodall/apodframe/internal/device"
	"github.com/ewoodall/apodframe/internal/render"
)

// borderSamplePx is the frame thickness sampled for the automatic
// background color.
const borderSamplePx = 10

// Composer produces composed frames. Each Generate call is independent;
// nothing persists between invocations.
type Composer struct {
	client *apod.Client
	logger *slog.Logger
	rng    *rand.Rand
	now    func() time.Time
	face   font.Face
}

// New creates a Composer with a time-seeded date selector.
func New(client *apod.Client, logger *slog.Logger) *Composer {
	return NewWithRand(client, logger, rand.New(rand.NewSource(time.Now().UnixNano())), time.Now)
}

// NewWithRand creates a Composer with an injected random source and clock,
// for deterministic tests.
func NewWithRand(client *apod.Client, logger *slog.Logger, rng *rand.Rand, now func() time.Time) *Composer {
	return &Composer{
		client: client,
		logger: logger.With(slog.String("component", "composer")),
		rng:    rng,
		now:    now,
		face:   render.LoadCaptionFace(),
	}
}

// Generate fetches the picture for the date the settings select and
// composes the output frame. With autoResize the result is exactly the
// display resolution; otherwise it keeps the source dimensions. Every
// failure is terminal and typed per the apod package taxonomy.
func (c *Composer) Generate(ctx context.Context, settings device.Settings, dev device.Config) (image.Image, error) {
	date := apod.DateParam(settings.RandomizeAPOD(), settings.CustomDate(), c.rng, c.now())
	c.logger.Info("generating frame",
		slog.String("date", date),
		slog.Bool("auto_resize", settings.AutoResize()),
		slog.Bool("auto_bg", settings.AutoBgColor()))

	meta, err := c.client.Fetch(ctx, date)
	if err != nil {
		return nil, err
	}

	img, err := c.client.FetchImage(ctx, meta.ImageURL())
	if err != nil {
		return nil, err
	}

	var canvas *image.NRGBA
	if settings.AutoResize() {
		w, h := dev.Resolution()
		bg := color.NRGBA{A: 255}
		if settings.AutoBgColor() {
			bg = render.AverageBorderColor(img, borderSamplePx)
		}
		canvas = render.FitWithBackground(img, w, h, bg)
	} else {
		canvas = imaging.Clone(img)
	}

	render.DrawCaption(canvas, render.CaptionText(meta.Title, meta.Copyright), c.face)
	return canvas, nil
}
