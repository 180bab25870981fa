package main

import (
	"fmt"
	"image/color"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/pkg/rasterhost"
)

var (
	headerFill = color.RGBA{R: 0x2d, G: 0x3e, B: 0x50, A: 0xff}
	cardFill   = color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}
	cardInk    = color.RGBA{R: 0x34, G: 0x49, B: 0x5e, A: 0xff}
	accent     = color.RGBA{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff}
)

func rasterFeed(items int) compose.Component {
	return feed(items,
		func(section int) compose.Component {
			return rasterhost.Block(headerFill, 0, 28, compose.WithWidth(compose.Fill()))
		},
		func(i int) compose.Component {
			return compose.Inset(
				compose.HStack(
					rasterhost.Card(fmt.Sprintf("item %d", i), cardFill, cardInk, 8),
					compose.Spacer(),
					rasterhost.Block(accent, 12, 12),
				).Align(compose.AlignCenter),
				compose.EdgeSymmetric(4, 8),
			)
		},
	)
}

func runSnapshot(opts docopt.Opts) error {
	items, width, height, err := dims(opts)
	if err != nil {
		return err
	}
	offset, err := intOpt(opts, "--offset")
	if err != nil {
		return err
	}
	out, _ := opts.String("--out")

	host := rasterhost.NewHost(width, height)
	e, err := compose.NewEngine(host,
		compose.WithViewport(compose.NewSize(float64(width), float64(height))),
		compose.WithComponent(rasterFeed(items)),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	e.SetContentOffset(compose.Point{Y: float64(offset)})
	e.LayoutIfNeeded()
	host.Draw(e)

	if err := host.SavePNG(out); err != nil {
		return err
	}
	glog.Infof("snapshot %s: %d views, content %v", out, len(e.VisibleViews()), e.ContentSize())
	return nil
}
