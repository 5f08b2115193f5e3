// Package web provides a websocket backed display driver. Frames
// are brotli compressed and deduplicated by hash before being
// broadcast, so a static screen costs a few bytes per frame
// instead of a full image.
package web

import (
	"encoding/binary"
	"net/http"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"

	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emu/dotmatrix/pkg/display"
	"github.com/dotmatrix-emu/dotmatrix/pkg/log"
)

// frameCacheSize is the number of recent frames kept for replay by
// index.
const frameCacheSize = 64

// Addr is the listen address of the web driver. The main program
// may override it before the driver starts.
var Addr = ":8090"

func init() {
	display.Install("web", &driver{
		Log:  log.New(),
		stop: make(chan struct{}),
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024 * 16,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type hub struct {
	clients map[*Client]bool

	broadcast            chan []byte
	register, unregister chan *Client
}

type driver struct {
	hub *hub

	Log  log.Logger
	stop chan struct{}
}

// Start serves websocket clients on Addr and broadcasts every
// received frame until the driver is stopped.
func (d *driver) Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error {
	d.hub = &hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(wr http.ResponseWriter, r *http.Request) {
		wr.Header().Set("Access-Control-Allow-Origin", "*")

		conn, err := upgrader.Upgrade(wr, r, nil)
		if err != nil {
			d.Log.Errorf("web: upgrade: %v", err)
			return
		}

		c := &Client{
			hub:  d.hub,
			conn: conn,
			Send: make(chan []byte, 256),
		}
		d.hub.register <- c

		go c.ReadPump(pressed, released)
		go c.WritePump()
	})

	go func() {
		if err := http.ListenAndServe(Addr, mux); err != nil {
			d.Log.Errorf("web: listen: %v", err)
		}
	}()
	d.Log.Infof("web: serving on %s", Addr)

	go d.pump(fb)

	d.hub.run(d.stop)
	return nil
}

// Stop disconnects the clients and shuts the hub down.
func (d *driver) Stop() error {
	close(d.stop)
	return nil
}

// pump compresses, deduplicates and broadcasts incoming frames.
func (d *driver) pump(fb <-chan []byte) {
	frames := newCache(frameCacheSize)
	idxBuf := make([]byte, 2)

	for {
		select {
		case <-d.stop:
			return
		case frame := <-fb:
			hash := xxhash.Sum64(frame)

			frames.Lock()
			if idx := frames.index(hash); idx != -1 {
				// already sent, replay by index
				binary.LittleEndian.PutUint16(idxBuf, uint16(idx))
				d.hub.broadcast <- append([]byte{FrameCache}, idxBuf...)
				frames.Unlock()
				continue
			}

			output, err := cbrotli.Encode(frame, cbrotli.WriterOptions{
				Quality: 7,
			})
			if err != nil {
				frames.Unlock()
				d.Log.Errorf("web: compress frame: %v", err)
				continue
			}

			idx := frames.add(hash, output)
			frames.Unlock()

			binary.LittleEndian.PutUint16(idxBuf, uint16(idx))
			d.hub.broadcast <- append(append([]byte{Frame}, idxBuf...), output...)
		}
	}
}

// run owns the client set. Registration, unregistration and
// broadcasting all go through here so no lock is needed.
func (h *hub) run(stop <-chan struct{}) {
	for {
		select {
		case <-stop:
			for c := range h.clients {
				c.Send <- []byte{ClientClosing}
				close(c.Send)
				delete(h.clients, c)
			}
			return
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				close(c.Send)
				delete(h.clients, c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					// client too slow, drop it
					close(c.Send)
					delete(h.clients, c)
				}
			}
		}
	}
}
