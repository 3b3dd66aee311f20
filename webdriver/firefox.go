package webdriver

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/firefox"
)

var (
	geckoDriverPath = flag.String("geckodriver_path", "", "Path to the geckodriver binary")
	firefoxPath     = flag.String("firefox_path", "", "Path to the firefox binary")
)

// FirefoxWebDriver starts up a Firefox WebDriver session, the same way
// ChromeWebDriver does for Chrome.
func FirefoxWebDriver() (*Session, error) {
	caps := selenium.Capabilities{"browserName": "firefox"}
	firefoxCaps := firefox.Capabilities{
		Args: []string{"-width=1920", "-height=1080"},
	}
	if *headless {
		firefoxCaps.Args = append(firefoxCaps.Args, "-headless")
	}
	if *firefoxPath != "" {
		firefoxAbsPath, err := filepath.Abs(*firefoxPath)
		if err != nil {
			return nil, err
		}
		firefoxCaps.Binary = firefoxAbsPath
	}
	caps.AddFirefox(firefoxCaps)

	if *seleniumURL != "" {
		return remoteSession(caps, *seleniumURL)
	}

	port, err := servicePort()
	if err != nil {
		return nil, fmt.Errorf("picking a port: %w", err)
	}
	var service *selenium.Service
	urlPrefix := fmt.Sprintf("http://%s:%d", *seleniumHost, port)
	switch {
	case *seleniumPath != "":
		options := serviceOptions()
		if *geckoDriverPath != "" {
			// Specify the path to GeckoDriver in order to use Firefox.
			options = append(options, selenium.GeckoDriver(*geckoDriverPath))
		}
		service, err = selenium.NewSeleniumService(*seleniumPath, port, options...)
		urlPrefix += "/wd/hub"
	case *geckoDriverPath != "":
		// geckodriver serves the protocol at the root.
		service, err = selenium.NewGeckoDriverService(*geckoDriverPath, port, serviceOptions()...)
	default:
		return nil, errors.New("one of --selenium_url, --selenium_path or --geckodriver_path is required")
	}
	if err != nil {
		return nil, fmt.Errorf("starting webdriver service: %w", err)
	}
	return remoteSession(caps, urlPrefix, service.Stop)
}
