package webdriver

import (
	"errors"
	"flag"
	"fmt"
	"path/filepath"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

var (
	chromeDriverPath = flag.String("chromedriver_path", "", "Path to the chromedriver binary")
	chromePath       = flag.String("chrome_path", "", "Path to the chrome binary")
)

// ChromeWebDriver starts up a Chrome WebDriver session. Depending on flags it
// connects to --selenium_url, or starts a Selenium standalone service, or
// starts chromedriver directly. Close the returned session to stop whatever
// was started.
func ChromeWebDriver() (*Session, error) {
	caps := selenium.Capabilities{"browserName": "chrome"}
	chromeCaps := chrome.Capabilities{
		Args: []string{"--window-size=1920,1080", "--no-sandbox"},
	}
	if *headless {
		chromeCaps.Args = append(chromeCaps.Args, "--headless=new", "--disable-gpu")
	}
	if *chromePath != "" {
		chromeAbsPath, err := filepath.Abs(*chromePath)
		if err != nil {
			return nil, err
		}
		chromeCaps.Path = chromeAbsPath
	}
	caps.AddChrome(chromeCaps)

	if *seleniumURL != "" {
		return remoteSession(caps, *seleniumURL)
	}

	port, err := servicePort()
	if err != nil {
		return nil, fmt.Errorf("picking a port: %w", err)
	}
	var service *selenium.Service
	switch {
	case *seleniumPath != "":
		options := serviceOptions()
		if *chromeDriverPath != "" {
			// Specify the path to ChromeDriver in order to use Chrome.
			options = append(options, selenium.ChromeDriver(*chromeDriverPath))
		}
		service, err = selenium.NewSeleniumService(*seleniumPath, port, options...)
	case *chromeDriverPath != "":
		service, err = selenium.NewChromeDriverService(*chromeDriverPath, port, serviceOptions()...)
	default:
		return nil, errors.New("one of --selenium_url, --selenium_path or --chromedriver_path is required")
	}
	if err != nil {
		return nil, fmt.Errorf("starting webdriver service: %w", err)
	}
	return remoteSession(caps, fmt.Sprintf("http://%s:%d/wd/hub", *seleniumHost, port), service.Stop)
}
