// Package web provides an HTTP server exposing one loaded recording:
// a summary page, the pulse lists as JSON, and the echarts report.
package web

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/sweeney/nev-ttl/internal/report"
	"github.com/sweeney/nev-ttl/internal/stats"
	"github.com/sweeney/nev-ttl/internal/ttl"
)

// View is the immutable recording the server shows.
type View struct {
	Source   string
	Result   *ttl.Result
	Stats    []stats.ChannelStats
	LoadedAt time.Time
}

// NewView assembles a View for a loaded result.
func NewView(source string, res *ttl.Result) View {
	return View{
		Source:   source,
		Result:   res,
		Stats:    stats.Summarize(res),
		LoadedAt: time.Now(),
	}
}

// Server serves a loaded recording over HTTP.
type Server struct {
	httpServer *http.Server
	view       View
}

// New creates a Server for the given view.
func New(addr string, view View) *Server {
	s := &Server{view: view}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/index.html", s.handleIndex)
	mux.HandleFunc("/pulses.json", s.handleJSON)
	mux.HandleFunc("/chart", s.handleChart)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: mux,
	}
	return s
}

// ListenAndServe starts listening. It blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on the given listener. Useful for tests.
func (s *Server) Serve(ln net.Listener) error {
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	renderHTML(w, s.view)
}

func (s *Server) handleJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write(FormatResult(s.view))
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, s.view.Result, s.view.Source); err != nil {
		log.Printf("render chart: %v", err)
	}
}
