package webdriver

import (
	"flag"
	"fmt"
	"os"

	"github.com/phayes/freeport"
	"github.com/sirupsen/logrus"
	"github.com/tebeka/selenium"
)

var (
	backend          = flag.String("backend", "selenium", "Browser automation backend: selenium or chromedp")
	browser          = flag.String("browser", "chrome", "Which browser to run the tests with (selenium backend only)")
	headless         = flag.Bool("headless", true, "Run the browser without a visible window")
	startFrameBuffer = flag.Bool("frame_buffer", false, "Whether to start an X frame buffer for the Selenium service")
	seleniumPath     = flag.String("selenium_path", "", "Path to the selenium standalone binary.")
	seleniumURL      = flag.String("selenium_url", "", "URL of an already running WebDriver hub; nothing is started locally when set")
	seleniumHost     = flag.String("selenium_host", "localhost", "Host to run selenium on")
	seleniumPort     = flag.Int("selenium_port", 0, "Port to run selenium on; 0 picks a free port")
	seleniumDebug    = flag.Bool("selenium_debug", false, "Log the WebDriver wire protocol")
)

// NewSession opens a browser session for the backend and browser selected
// by flags.
func NewSession() (*Session, error) {
	switch *backend {
	case "chromedp":
		return ChromeDPSession()
	case "selenium":
		selenium.SetDebug(*seleniumDebug)
		switch *browser {
		case "chrome":
			return ChromeWebDriver()
		case "firefox":
			return FirefoxWebDriver()
		}
		return nil, fmt.Errorf("invalid --browser value %q", *browser)
	}
	return nil, fmt.Errorf("invalid --backend value %q", *backend)
}

func serviceOptions() []selenium.ServiceOption {
	var options []selenium.ServiceOption
	// Start an X frame buffer for the browser to run in.
	if *startFrameBuffer {
		options = append(options, selenium.StartFrameBuffer())
	}
	// Output debug information to STDERR.
	return append(options, selenium.Output(os.Stderr))
}

func servicePort() (int, error) {
	if *seleniumPort != 0 {
		return *seleniumPort, nil
	}
	return freeport.GetFreePort()
}

// remoteSession connects to the WebDriver endpoint at urlPrefix. closers
// release whatever was started to serve it and run even when connecting
// fails.
func remoteSession(caps selenium.Capabilities, urlPrefix string, closers ...func() error) (*Session, error) {
	wd, err := selenium.NewRemote(caps, urlPrefix)
	if err != nil {
		if cerr := closeAll(closers); cerr != nil {
			logrus.Warningf("%s", cerr.Error())
		}
		return nil, fmt.Errorf("connecting to %s: %w", urlPrefix, err)
	}
	if !*headless {
		if err := wd.MaximizeWindow(""); err != nil {
			logrus.Warningf("Unable to maximize window: %s", err.Error())
		}
	}
	return NewSessionFromDriver(NewSeleniumDriver(wd), closers...), nil
}
