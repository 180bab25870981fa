package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/docopt/docopt-go"
	"github.com/golang/glog"
	compose "github.com/grindlemire/go-compose"
	"github.com/grindlemire/go-compose/pkg/termhost"
	"golang.org/x/term"
)

func termFeed(items int) compose.Component {
	header := termhost.NewStyle().Foreground(termhost.White).Background(termhost.Blue).Bold()
	index := termhost.NewStyle().Dim()
	return feed(items,
		func(section int) compose.Component {
			return termhost.Label(fmt.Sprintf(" Section %d", section+1), header,
				compose.WithWidth(compose.Fill()))
		},
		func(i int) compose.Component {
			return compose.HStack(
				termhost.Label(fmt.Sprintf("  item %d", i), termhost.Style{}),
				compose.Spacer(),
				termhost.Label(fmt.Sprintf("#%03d ", i), index),
			)
		},
	)
}

// scroller advances the engine one row per frame and flushes the result.
type scroller struct {
	engine *compose.Engine
	host   *termhost.Host
	loop   *compose.Loop
	frames int
	ticks  int
	err    error
}

func (s *scroller) Advance() {
	s.engine.LayoutIfNeeded()
	s.host.Draw(s.engine)
	if _, err := s.host.Flush(os.Stdout); err != nil {
		s.err = err
		s.loop.Stop()
		return
	}

	s.ticks++
	end := s.engine.ContentSize().Height - s.engine.Viewport().Height
	if (s.frames > 0 && s.ticks >= s.frames) || s.engine.ContentOffset().Y >= end {
		s.loop.Stop()
		return
	}
	s.engine.ScrollBy(0, 1)
}

func runTerm(opts docopt.Opts) error {
	items, width, height, err := dims(opts)
	if err != nil {
		return err
	}
	frames, err := intOpt(opts, "--frames")
	if err != nil {
		return err
	}
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, h, err := term.GetSize(fd); err == nil {
			width, height = w, h
		} else {
			glog.Warningf("terminal size: %v", err)
		}
	}

	host := termhost.NewHost(width, height)
	e, err := compose.NewEngine(host,
		compose.WithViewport(compose.NewSize(float64(width), float64(height))),
		compose.WithComponent(termFeed(items)),
	)
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	loop, err := compose.NewLoop(compose.WithFrameRate(30))
	if err != nil {
		return fmt.Errorf("create loop: %w", err)
	}
	s := &scroller{engine: e, host: host, loop: loop, frames: frames}
	loop.Attach(e)
	loop.AttachTicker(s)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stopResize := notifyResize(func() {
		w, h, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			glog.Warningf("terminal size: %v", err)
			return
		}
		loop.QueueUpdate(func() {
			host.Resize(w, h)
			e.SetViewport(compose.NewSize(float64(w), float64(h)))
		})
	})
	defer stopResize()

	if err := host.Begin(os.Stdout); err != nil {
		return err
	}
	runErr := loop.Run(ctx)
	if err := host.End(os.Stdout); err != nil {
		return err
	}
	if s.err != nil {
		return s.err
	}
	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	reloads, renders := e.Passes()
	glog.Infof("term: %d ticks, %d reloads, %d renders", loop.Ticks(), reloads, renders)
	return nil
}
