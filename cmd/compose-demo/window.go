package main

import (
	"context"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/pkg/fynehost"
)

const scrollStep = 40

func fyneFeed(items int) compose.Component {
	return feed(items,
		func(section int) compose.Component {
			return compose.Inset(compose.HStack(
				fynehost.Rectangle(headerFill, 6, 24),
				fynehost.Text(fmt.Sprintf("Section %d", section+1), headerFill),
			).Spacing(8).Align(compose.AlignCenter), compose.EdgeSymmetric(4, 0))
		},
		func(i int) compose.Component {
			return compose.Inset(compose.HStack(
				fynehost.Text(fmt.Sprintf("item %d", i), cardInk),
				compose.Spacer(),
				fynehost.Rectangle(accent, 12, 12),
			).Align(compose.AlignCenter), compose.EdgeSymmetric(6, 12))
		},
	)
}

func runWindow(opts docopt.Opts) error {
	items, width, height, err := dims(opts)
	if err != nil {
		return err
	}

	a := app.New()
	w := a.NewWindow("compose-demo")
	w.Resize(fyne.NewSize(float32(width), float32(height)))

	host := fynehost.NewHost()
	e, err := compose.NewEngine(host,
		compose.WithViewport(compose.NewSize(float64(width), float64(height))),
		compose.WithComponent(fyneFeed(items)),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	loop, err := compose.NewLoop()
	if err != nil {
		return fmt.Errorf("create loop: %w", err)
	}
	loop.Attach(e)

	w.SetContent(host.Container())
	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDown:
			e.ScrollBy(0, scrollStep)
		case fyne.KeyUp:
			e.SetContentOffset(compose.Point{Y: max(0, e.ContentOffset().Y-scrollStep)})
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fyne.Do(func() {
					loop.Tick()
					host.Draw(e)
				})
			}
		}
	}()

	w.ShowAndRun()
	reloads, renders := e.Passes()
	glog.Infof("window: %d reloads, %d renders", reloads, renders)
	return nil
}
