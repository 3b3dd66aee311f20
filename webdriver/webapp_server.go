package webdriver

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phayes/freeport"
	"github.com/seleniumwithgo/tablesearch/fixture"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

var (
	remote    = flag.Bool("remote", false, "Run against the public demo page instead of the local fixture")
	remoteURL = flag.String("remote_url", "https://www.lambdatest.com", "Base URL of the public demo site")
)

// AppServer is an abstraction for navigating an instance of the table page.
type AppServer interface {
	// Hook for stopping whatever serves the page.
	io.Closer

	// GetWebappURL returns the URL for the given path on the server.
	GetWebappURL(path string) string
}

type remoteAppServer struct {
	baseURL string
}

func (i *remoteAppServer) GetWebappURL(path string) string {
	return i.baseURL + path
}

func (i *remoteAppServer) Close() error {
	return nil // Nothing needed here :)
}

// FixtureAppServer is a local fixture server the browser can reach.
type FixtureAppServer interface {
	AppServer

	// AwaitReady starts the server and waits until it answers health
	// checks.
	AwaitReady() error
}

type fixtureAppServer struct {
	server         *fixture.Server
	startupTimeout time.Duration

	host string
	port int
}

func (i *fixtureAppServer) GetWebappURL(path string) string {
	return fmt.Sprintf("http://%s:%d%s", i.host, i.port, path)
}

func (i *fixtureAppServer) Close() error {
	if i.server == nil {
		return nil
	}
	return i.server.Close()
}

func (i *fixtureAppServer) AwaitReady() error {
	s, err := fixture.Start(fmt.Sprintf("%s:%d", i.host, i.port))
	if err != nil {
		return err
	}
	i.server = s

	healthz := i.GetWebappURL("/healthz")
	client := &http.Client{Timeout: time.Second}
	err = wait.PollUntilContextTimeout(context.Background(), 50*time.Millisecond, i.startupTimeout, true,
		func(context.Context) (bool, error) {
			select {
			case serr := <-s.Done():
				return false, fmt.Errorf("fixture server exited: %w", serr)
			default:
			}
			res, err := client.Get(healthz)
			if err != nil {
				return false, nil
			}
			res.Body.Close()
			return res.StatusCode == http.StatusOK, nil
		})
	if err != nil {
		s.Close()
		if wait.Interrupted(err) {
			return errors.New("timeout starting fixture server")
		}
		return err
	}
	return nil
}

// NewFixtureAppServer creates a fixture server on a free local port. Call
// AwaitReady to start it.
func NewFixtureAppServer() (FixtureAppServer, error) {
	port, err := freeport.GetFreePort()
	if err != nil {
		return nil, err
	}
	return &fixtureAppServer{
		startupTimeout: 15 * time.Second,
		host:           "127.0.0.1",
		port:           port,
	}, nil
}

// NewWebserver creates an AppServer instance, which may be backed by the
// local fixture or the public demo site.
func NewWebserver() (AppServer, error) {
	if *remote {
		return &remoteAppServer{baseURL: strings.TrimSuffix(*remoteURL, "/")}, nil
	}

	app, err := NewFixtureAppServer()
	if err != nil {
		return nil, err
	}
	if err := app.AwaitReady(); err != nil {
		return nil, err
	}
	logrus.Debugf("Fixture server ready at %s", app.GetWebappURL("/"))
	return app, nil
}
