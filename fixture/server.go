// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package fixture serves a local copy of the table search demo page: a
// searchable, paginated table with the same DOM shape and caption format as
// the public playground page.
package fixture

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/sirupsen/logrus"
)

//go:embed demo.html.tmpl
var demoPageHTML string

var demoPage = template.Must(template.New("demo").Parse(demoPageHTML))

// DefaultPageLength is the number of rows shown per page.
const DefaultPageLength = 10

// DefaultSearchDelay is how long the page's search box waits after the last
// keystroke before filtering.
const DefaultSearchDelay = 150 * time.Millisecond

// Options are the page variants, selected with query parameters.
type Options struct {
	PageLength int  `json:"pageLength"`
	Empty      bool `json:"empty"`
	// Stuck keeps the next button enabled but makes it do nothing.
	Stuck bool `json:"stuck"`
	// Wrap keeps the next button enabled and returns to the first page
	// after the last one.
	Wrap bool `json:"wrap"`
	// Endless generates a fresh page of rows on every click of an always
	// enabled next button.
	Endless bool `json:"endless"`
	// SearchDelay is in milliseconds.
	SearchDelay int `json:"searchDelay"`
}

// Query encodes the options as query parameters understood by
// ParseOptions. Zero and default values are omitted.
func (o Options) Query() url.Values {
	q := url.Values{}
	if o.PageLength != 0 && o.PageLength != DefaultPageLength {
		q.Set("page_length", strconv.Itoa(o.PageLength))
	}
	for name, set := range map[string]bool{"empty": o.Empty, "stuck": o.Stuck, "wrap": o.Wrap, "endless": o.Endless} {
		if set {
			q.Set(name, "1")
		}
	}
	if o.SearchDelay != 0 && o.SearchDelay != int(DefaultSearchDelay/time.Millisecond) {
		q.Set("search_delay", strconv.Itoa(o.SearchDelay))
	}
	return q
}

// ParseOptions reads page options from query parameters.
func ParseOptions(q url.Values) (Options, error) {
	opts := Options{
		PageLength:  DefaultPageLength,
		SearchDelay: int(DefaultSearchDelay / time.Millisecond),
	}
	var err error
	if v := q.Get("page_length"); v != "" {
		if opts.PageLength, err = strconv.Atoi(v); err != nil || opts.PageLength < 1 || opts.PageLength > 1000 {
			return opts, fmt.Errorf("invalid page_length %q", v)
		}
	}
	if v := q.Get("search_delay"); v != "" {
		if opts.SearchDelay, err = strconv.Atoi(v); err != nil || opts.SearchDelay < 0 || opts.SearchDelay > 10000 {
			return opts, fmt.Errorf("invalid search_delay %q", v)
		}
	}
	for name, dst := range map[string]*bool{"empty": &opts.Empty, "stuck": &opts.Stuck, "wrap": &opts.Wrap, "endless": &opts.Endless} {
		if v := q.Get(name); v != "" {
			if *dst, err = strconv.ParseBool(v); err != nil {
				return opts, fmt.Errorf("invalid %s %q", name, v)
			}
		}
	}
	return opts, nil
}

type demoPageData struct {
	Columns []string
	Rows    [][]string
	Options Options
}

func demoPageHandler(w http.ResponseWriter, r *http.Request) {
	opts, err := ParseOptions(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	data := demoPageData{
		Columns: Columns,
		Rows:    rows(Employees),
		Options: opts,
	}
	if opts.Empty {
		data.Rows = rows(nil)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := demoPage.Execute(w, data); err != nil {
		logrus.Errorf("Failed to render demo page: %s", err.Error())
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// NewRouter returns the fixture's routes.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)
	r.HandleFunc(shared.DemoPagePath, demoPageHandler).Methods(http.MethodGet).Name("demo")
	r.HandleFunc("/healthz", healthHandler).Methods(http.MethodGet).Name("healthz")
	return r
}

// NewHandler wraps the fixture's routes with access logging to logOutput
// and panic recovery.
func NewHandler(logOutput io.Writer) http.Handler {
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(
		handlers.CombinedLoggingHandler(logOutput, NewRouter()))
}

// Server is a running fixture HTTP server.
type Server struct {
	http     *http.Server
	listener net.Listener
	logw     *io.PipeWriter
	errc     chan error
}

// Start listens on addr (e.g. "localhost:8080") and serves the fixture in
// the background. Access logs go to logrus at debug level.
func Start(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	logw := logrus.StandardLogger().WriterLevel(logrus.DebugLevel)
	s := &Server{
		http: &http.Server{
			Handler:           NewHandler(logw),
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: ln,
		logw:     logw,
		errc:     make(chan error, 1),
	}
	go func() {
		s.errc <- s.http.Serve(ln)
	}()
	return s, nil
}

// URL returns the base URL of the server, without a trailing slash.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Done receives the serve error once the server stops.
func (s *Server) Done() <-chan error {
	return s.errc
}

// Close gracefully shuts the server down.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	err := s.http.Shutdown(ctx)
	s.logw.Close()
	return err
}
