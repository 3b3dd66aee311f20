package webdriver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"
)

// NewSeleniumDriver adapts a selenium.WebDriver to Driver, classifying
// stale and missing element errors.
func NewSeleniumDriver(wd selenium.WebDriver) Driver {
	return &seleniumDriver{wd: wd}
}

type seleniumDriver struct {
	wd selenium.WebDriver
}

func (d *seleniumDriver) Get(url string) error {
	return classifySeleniumError(d.wd.Get(url))
}

func (d *seleniumDriver) FindElement(by, value string) (Element, error) {
	e, err := d.wd.FindElement(by, value)
	if err != nil {
		return nil, classifySeleniumError(err)
	}
	return &seleniumElement{e: e}, nil
}

func (d *seleniumDriver) FindElements(by, value string) ([]Element, error) {
	found, err := d.wd.FindElements(by, value)
	if err != nil {
		return nil, classifySeleniumError(err)
	}
	elements := make([]Element, len(found))
	for i, e := range found {
		elements[i] = &seleniumElement{e: e}
	}
	return elements, nil
}

func (d *seleniumDriver) WaitWithTimeoutAndInterval(condition Condition, timeout, interval time.Duration) error {
	// selenium reports a timeout as a plain error; remember whether the
	// condition itself failed so the two can be told apart.
	var conditionErr error
	err := d.wd.WaitWithTimeoutAndInterval(func(selenium.WebDriver) (bool, error) {
		done, err := condition(d)
		conditionErr = err
		return done, err
	}, timeout, interval)
	if err != nil && conditionErr == nil {
		return fmt.Errorf("%w: %s", ErrWaitTimeout, err.Error())
	}
	return err
}

func (d *seleniumDriver) Screenshot() ([]byte, error) {
	return d.wd.Screenshot()
}

func (d *seleniumDriver) Quit() error {
	return d.wd.Quit()
}

type seleniumElement struct {
	e selenium.WebElement
}

func (e *seleniumElement) Text() (string, error) {
	text, err := e.e.Text()
	return text, classifySeleniumError(err)
}

func (e *seleniumElement) GetAttribute(name string) (string, error) {
	value, err := e.e.GetAttribute(name)
	return value, classifySeleniumError(err)
}

func (e *seleniumElement) IsDisplayed() (bool, error) {
	displayed, err := e.e.IsDisplayed()
	return displayed, classifySeleniumError(err)
}

func (e *seleniumElement) SendKeys(keys string) error {
	return classifySeleniumError(e.e.SendKeys(keys))
}

func (e *seleniumElement) Clear() error {
	return classifySeleniumError(e.e.Clear())
}

func (e *seleniumElement) Click() error {
	return classifySeleniumError(e.e.Click())
}

// classifySeleniumError maps W3C error codes onto ErrStaleElement and
// ErrNoSuchElement. Legacy servers only return a message, so that is
// matched too.
func classifySeleniumError(err error) error {
	if err == nil {
		return nil
	}
	code := err.Error()
	var se *selenium.Error
	if errors.As(err, &se) {
		code = se.Err
	}
	switch {
	case strings.Contains(code, "stale element reference"):
		return fmt.Errorf("%w: %s", ErrStaleElement, err.Error())
	case strings.Contains(code, "no such element"):
		return fmt.Errorf("%w: %s", ErrNoSuchElement, err.Error())
	}
	return err
}
