// Copyright 2025 The WPT Dashboard Project. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/phayes/freeport"
	"github.com/seleniumwithgo/tablesearch/fixture"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/sirupsen/logrus"
)

var (
	host     = flag.String("host", "localhost", "Host to listen on")
	port     = flag.Int("port", 8080, "Port to listen on; 0 picks a free port")
	logLevel = flag.String("log_level", "debug", "Log level; access logs are written at debug")
)

// Serves the local copy of the table search demo page until interrupted.
//
// Usage (from the repository root):
// go run ./fixture/service --port=8080
func main() {
	flag.Parse()
	if err := shared.SetLogLevel(*logLevel); err != nil {
		logrus.Fatal(err)
	}

	if *port == 0 {
		p, err := freeport.GetFreePort()
		if err != nil {
			logrus.Fatalf("Unable to pick a port: %s", err.Error())
		}
		*port = p
	}
	s, err := fixture.Start(fmt.Sprintf("%s:%d", *host, *port))
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("Serving the demo table at %s%s", s.URL(), shared.DemoPagePath)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sig:
		logrus.Info("Shutting down")
	case err := <-s.Done():
		logrus.Fatalf("Server stopped: %s", err.Error())
	}
	if err := s.Close(); err != nil {
		logrus.Errorf("Shutdown failed: %s", err.Error())
	}
}
