package commands

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"os"

	"github.com/battlesnakeio/mamba/render"
	"github.com/battlesnakeio/mamba/rules"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logFile    string
	promListen string
)

func init() {
	playCmd.Flags().StringVar(&logFile, "log-file", "", "file to write logs and debug dumps to, the terminal is taken by the game")
	playCmd.Flags().StringVar(&promListen, "prometheus-listen", "", "serve prometheus metrics on this address")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play Hungry Mamba in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return play()
	},
}

func openLogFile() (io.Writer, func(), error) {
	if logFile == "" {
		return ioutil.Discard, func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to open log file %s", logFile)
	}
	return f, func() { f.Close() }, nil
}

func prometheus() {
	if promListen == "" {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}

func play() error {
	out, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	if err := setupLogging(out); err != nil {
		return err
	}

	g, err := newGame(out)
	if err != nil {
		return err
	}
	prometheus()

	if err := termbox.Init(); err != nil {
		return errors.Wrap(err, "unable to start the terminal")
	}
	defer termbox.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	return runLoop(g, &render.Termbox{Left: 1, Top: 1}, setupEventQueue(), setupTickQueue(ctx, g.Config.TickLimit()))
}

// runLoop drives the game from terminal events and ticks until quit, then
// returns. Every event or tick is followed by a redraw. A failed tick leaves
// the game paused and the loop running.
func runLoop(g *rules.Game, r render.Renderer, events <-chan termbox.Event, ticks <-chan struct{}) error {
	palette := render.NewPalette(g.Config.Colors)
	if err := render.Frame(r, g, palette); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			switch ev.Type {
			case termbox.EventError:
				return errors.Wrap(ev.Err, "terminal error")
			case termbox.EventKey:
				quit, err := apply(g, keyCommand(ev, g.Config.TwoPlayer))
				if err != nil {
					log.WithError(err).Error("command failed")
				}
				if quit {
					log.WithField("Round", g.Round).Info("quit")
					return nil
				}
			}
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if _, err := g.Tick(); err != nil {
				log.WithFields(log.Fields{
					"Round": g.Round,
					"Turn":  g.Turn,
				}).WithError(err).Error("tick failed, game paused")
			}
		}

		if err := render.Frame(r, g, palette); err != nil {
			return err
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
