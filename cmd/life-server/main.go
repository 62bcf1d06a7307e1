// Command life-server runs the simulation headlessly and streams it to
// browser viewers over a websocket, accepting play/pause/step/toggle/load
// commands back from them.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/HanzPo/gameoflife/internal/sim"
	"github.com/HanzPo/gameoflife/internal/storage"
	"github.com/HanzPo/gameoflife/internal/ws"
	"github.com/HanzPo/gameoflife/pkg/life"
	"github.com/HanzPo/gameoflife/pkg/token"
)

func main() {
	addr := flag.String("addr", ":8080", "HTTP listen address")
	statePath := flag.String("state", "gameoflife.json", "persisted seed file")
	shareToken := flag.String("load", "", "share token to load instead of the persisted seed")
	delayMS := flag.Int("delay", 100, "milliseconds between generations while running")
	flag.Parse()

	ctrl := sim.New()
	ctrl.SetDelay(time.Duration(*delayMS) * time.Millisecond)

	// A share token outranks the persisted seed; either failing quietly
	// leaves the board empty.
	if *shareToken != "" {
		if cells, ok := token.Decode(*shareToken); ok {
			ctrl.Load(cells)
		} else {
			log.Printf("share token did not decode, starting empty")
		}
	} else if cells, ok := storage.LoadSeed(*statePath); ok {
		ctrl.Load(cells)
	}

	hub := ws.NewHub()
	go hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, w, r)
	})
	go func() {
		log.Printf("listening on %s", *addr)
		if err := http.ListenAndServe(*addr, mux); err != nil {
			log.Fatal(err)
		}
	}()

	run(ctrl, hub, *statePath)
}

// run is the single goroutine that owns the controller: commands and tick
// scheduling interleave on one timeline, so a tick can never overlap a board
// edit.
func run(ctrl *sim.Controller, hub *ws.Hub, statePath string) {
	frames := time.NewTicker(33 * time.Millisecond)
	defer frames.Stop()

	dirty := true
	lastGen := -1
	lastRunning := false

	for {
		select {
		case cmd := <-hub.Commands:
			if apply(ctrl, cmd, statePath) {
				dirty = true
			}
		case <-frames.C:
			ctrl.Update()
			if ctrl.Generation() != lastGen || ctrl.Running() != lastRunning {
				dirty = true
			}
			if !dirty {
				continue
			}
			dirty = false
			lastGen = ctrl.Generation()
			lastRunning = ctrl.Running()
			data, err := json.Marshal(frame(ctrl))
			if err != nil {
				log.Printf("frame marshal: %v", err)
				continue
			}
			hub.Broadcast <- data
		}
	}
}

// apply routes one viewer command to the controller and reports whether the
// visible state may have changed. Unknown commands are dropped.
func apply(ctrl *sim.Controller, cmd ws.Command, statePath string) bool {
	switch cmd.Type {
	case "play":
		ctrl.Play()
	case "pause":
		ctrl.Pause()
	case "step":
		ctrl.StepOnce()
	case "toggle":
		ctrl.Toggle(life.Cell{Row: cmd.Row, Col: cmd.Col})
		persistSeed(ctrl, statePath)
	case "clear":
		ctrl.Clear()
		persistSeed(ctrl, statePath)
	case "reset":
		ctrl.Reset()
	case "set_delay":
		ctrl.SetDelay(time.Duration(cmd.Value) * time.Millisecond)
	case "load":
		cells, ok := token.Decode(cmd.Token)
		if !ok {
			log.Printf("ws: undecodable token, ignoring load")
			return false
		}
		ctrl.Load(cells)
		persistSeed(ctrl, statePath)
	default:
		log.Printf("ws: unknown command type %q", cmd.Type)
		return false
	}
	return true
}

func persistSeed(ctrl *sim.Controller, statePath string) {
	if err := storage.SaveSeed(statePath, ctrl.Seed()); err != nil {
		log.Printf("seed save: %v", err)
	}
}

func frame(ctrl *sim.Controller) ws.Frame {
	return ws.Frame{
		Generation: ctrl.Generation(),
		Population: ctrl.Population(),
		Running:    ctrl.Running(),
		DelayMS:    int(ctrl.Delay() / time.Millisecond),
		Cells:      storage.NewDocument(ctrl.Cells()).Cells,
	}
}
