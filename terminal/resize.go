// @lixen: #focus{sys[term,resize]}
package terminal

import (
	"os"

	"github.com/rs/zerolog"
)

// ResizeEvent represents a terminal resize
type ResizeEvent struct {
	Width  int
	Height int
}

// resizeWatcher turns window-change signals into ResizeEvents
type resizeWatcher struct {
	size    func() (int, int, error)
	log     zerolog.Logger
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newResizeWatcher(size func() (int, int, error), log zerolog.Logger) *resizeWatcher {
	return &resizeWatcher{
		size:    size,
		log:     log,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// start begins listening for window-change signals
func (r *resizeWatcher) start() {
	notifyResize(r.sigCh)
	go r.watchLoop()
}

// stop stops listening and closes the event channel
func (r *resizeWatcher) stop() {
	stopResize(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *resizeWatcher) events() <-chan ResizeEvent {
	return r.eventCh
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)
	defer close(r.eventCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			w, h, err := r.size()
			if err != nil || w <= 0 || h <= 0 {
				r.log.Debug().Err(err).Msg("resize signal without usable size")
				continue
			}
			r.deliver(ResizeEvent{Width: w, Height: h})
		}
	}
}

// deliver never blocks; an unconsumed event is replaced by the newer one
func (r *resizeWatcher) deliver(ev ResizeEvent) {
	select {
	case r.eventCh <- ev:
	default:
		select {
		case <-r.eventCh:
		default:
		}
		r.eventCh <- ev
	}
}
