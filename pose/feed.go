package pose

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/websocket"

	"github.com/lixenwraith/body-surfer/signal"
	"github.com/lixenwraith/body-surfer/status"
)

// FeedConfig controls the landmark websocket endpoint
type FeedConfig struct {
	Addr            string
	Path            string
	ConnectTimeout  time.Duration
	MaxDecodeErrors int
}

// Feed accepts one estimator connection at a time and publishes classified
// frames to its slot; the feed goroutine is the slot's only writer
type Feed struct {
	cfg        FeedConfig
	slot       *signal.Slot
	classifier *Classifier
	logger     *zap.Logger

	busy      atomic.Bool
	connected chan struct{}
	connOnce  sync.Once

	statFrames      *atomic.Int64
	statDecodeErrs  *atomic.Int64
	statConnections *atomic.Int64
}

// NewFeed wires a feed to its slot; logger and metrics may be nil
func NewFeed(cfg FeedConfig, slot *signal.Slot, c *Classifier, logger *zap.Logger, metrics *status.Registry) *Feed {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = status.NewRegistry()
	}
	if cfg.MaxDecodeErrors <= 0 {
		cfg.MaxDecodeErrors = 1
	}
	if cfg.Path == "" {
		cfg.Path = "/pose"
	}
	return &Feed{
		cfg:        cfg,
		slot:       slot,
		classifier: c,
		logger:     logger.Named("pose"),
		connected:  make(chan struct{}),

		statFrames:      metrics.Ints.Get("pose.frames"),
		statDecodeErrs:  metrics.Ints.Get("pose.decode_errors"),
		statConnections: metrics.Ints.Get("pose.connections"),
	}
}

// Handler returns the HTTP routes of the feed
func (f *Feed) Handler() http.Handler {
	mux := http.NewServeMux()
	wsHandler := websocket.Handler(f.handleConn)

	mux.HandleFunc(f.cfg.Path, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if !f.busy.CompareAndSwap(false, true) {
			f.logger.Warn("rejected second estimator", zap.String("remote", r.RemoteAddr))
			http.Error(w, ErrFeedBusy.Error(), http.StatusConflict)
			return
		}
		defer f.busy.Store(false)
		wsHandler.ServeHTTP(w, r)
	})
	return mux
}

// Run serves the feed until ctx is cancelled
// If no estimator connects within ConnectTimeout the slot is marked unavailable,
// a later connection still activates it
func (f *Feed) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", f.cfg.Addr)
	if err != nil {
		err = fmt.Errorf("pose feed listen %s: %w", f.cfg.Addr, err)
		f.slot.SetStatus(signal.StatusUnavailable, err.Error())
		return err
	}
	return f.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (f *Feed) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           f.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	f.slot.SetStatus(signal.StatusPending, "waiting for pose estimator on "+ln.Addr().String())
	f.logger.Info("pose feed listening", zap.String("addr", ln.Addr().String()), zap.String("path", f.cfg.Path))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	connected := f.connected
	var timeout <-chan time.Time
	if f.cfg.ConnectTimeout > 0 {
		timer := time.NewTimer(f.cfg.ConnectTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
			return nil
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			err = fmt.Errorf("pose feed serve: %w", err)
			f.slot.SetStatus(signal.StatusUnavailable, err.Error())
			return err
		case <-timeout:
			timeout = nil
			if st, _ := f.slot.Status(); st == signal.StatusPending {
				f.slot.SetStatus(signal.StatusUnavailable, ErrNoEstimator.Error())
				f.logger.Warn("pose estimator did not connect", zap.Duration("timeout", f.cfg.ConnectTimeout))
			}
		case <-connected:
			connected = nil
			timeout = nil
		}
	}
}

func (f *Feed) handleConn(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	// Hijacked connections outlive server shutdown, close on cancellation
	if req := conn.Request(); req != nil {
		stop := context.AfterFunc(req.Context(), func() { _ = conn.Close() })
		defer stop()
	}

	f.statConnections.Add(1)
	f.classifier.Recalibrate()
	f.slot.Reset()
	f.slot.SetStatus(signal.StatusActive, "pose estimator connected")
	f.connOnce.Do(func() { close(f.connected) })
	f.logger.Info("pose estimator connected", zap.String("remote", conn.Request().RemoteAddr))

	reason := f.readFrames(conn)

	f.slot.Reset()
	f.slot.SetStatus(signal.StatusUnavailable, "pose estimator disconnected: "+reason)
	f.logger.Info("pose estimator disconnected", zap.String("reason", reason))
}

// readFrames decodes one JSON frame per websocket message until the peer
// goes away or sends too many consecutive bad frames
func (f *Feed) readFrames(conn *websocket.Conn) string {
	decodeErrors := 0
	for {
		var data []byte
		if err := websocket.Message.Receive(conn, &data); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
				return "closed"
			}
			return err.Error()
		}

		var frame Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			f.statDecodeErrs.Add(1)
			decodeErrors++
			f.logger.Debug("invalid pose frame", zap.Error(err), zap.Int("consecutive", decodeErrors))
			if decodeErrors >= f.cfg.MaxDecodeErrors {
				return "too many invalid frames"
			}
			continue
		}
		decodeErrors = 0
		f.statFrames.Add(1)

		if sig, ok := f.classifier.Classify(frame); ok {
			f.slot.Store(sig)
		}
	}
}
