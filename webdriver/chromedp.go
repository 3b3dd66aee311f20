package webdriver

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/seleniumwithgo/tablesearch/shared"
	"github.com/sirupsen/logrus"
	"k8s.io/apimachinery/pkg/util/wait"
)

var opTimeout = flag.Duration("op_timeout", 10*time.Second, "Timeout for a single chromedp browser operation")

// ChromeDPSession launches Chrome and drives it over the DevTools protocol,
// without a WebDriver server in between.
func ChromeDPSession() (*Session, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", *headless),
		chromedp.Flag("disable-gpu", *headless),
		chromedp.NoSandbox,
		chromedp.WindowSize(1920, 1080),
	)
	if *chromePath != "" {
		chromeAbsPath, err := filepath.Abs(*chromePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, chromedp.ExecPath(chromeAbsPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(logrus.Debugf))
	// Run with no actions starts the browser, so launch failures show up here.
	if err := chromedp.Run(ctx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}
	return NewSessionFromDriver(&chromeDPDriver{
		ctx:         ctx,
		cancelAlloc: cancelAlloc,
		timeout:     *opTimeout,
	}), nil
}

type chromeDPDriver struct {
	ctx         context.Context
	cancelAlloc context.CancelFunc
	timeout     time.Duration
}

func (d *chromeDPDriver) run(actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(d.ctx, d.timeout)
	defer cancel()
	return classifyChromeDPError(chromedp.Run(ctx, actions...))
}

func queryOption(by string) (chromedp.QueryOption, error) {
	switch by {
	case shared.ByXPath:
		return chromedp.BySearch, nil
	case shared.ByCSSSelector:
		return chromedp.ByQueryAll, nil
	case shared.ByID:
		return chromedp.ByID, nil
	}
	return nil, fmt.Errorf("unsupported locator strategy %q", by)
}

func (d *chromeDPDriver) Get(url string) error {
	return d.run(chromedp.Navigate(url))
}

func (d *chromeDPDriver) FindElement(by, value string) (Element, error) {
	elements, err := d.FindElements(by, value)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: %s=%s", ErrNoSuchElement, by, value)
	}
	return elements[0], nil
}

func (d *chromeDPDriver) FindElements(by, value string) ([]Element, error) {
	opt, err := queryOption(by)
	if err != nil {
		return nil, err
	}
	var nodes []*cdp.Node
	if err := d.run(chromedp.Nodes(value, &nodes, opt, chromedp.AtLeast(0))); err != nil {
		return nil, err
	}
	elements := make([]Element, len(nodes))
	for i, n := range nodes {
		elements[i] = &chromeDPElement{d: d, node: n}
	}
	return elements, nil
}

func (d *chromeDPDriver) WaitWithTimeoutAndInterval(condition Condition, timeout, interval time.Duration) error {
	var conditionErr error
	err := wait.PollUntilContextTimeout(d.ctx, interval, timeout, true, func(context.Context) (bool, error) {
		done, err := condition(d)
		conditionErr = err
		return done, err
	})
	if err != nil && conditionErr == nil && wait.Interrupted(err) {
		return fmt.Errorf("%w: %s", ErrWaitTimeout, err.Error())
	}
	return err
}

func (d *chromeDPDriver) Screenshot() ([]byte, error) {
	var buf []byte
	err := d.run(chromedp.CaptureScreenshot(&buf))
	return buf, err
}

func (d *chromeDPDriver) Quit() error {
	defer d.cancelAlloc()
	return chromedp.Cancel(d.ctx)
}

// Node scripts run with the element bound to this.
const (
	textJS        = `function() { return this.innerText; }`
	attributeJS   = `function(name) {
	const v = name === 'value' ? this.value : this.getAttribute(name);
	return v === null ? '' : v;
}`
	clearJS       = `function() {
	this.value = '';
	this.dispatchEvent(new Event('input', { bubbles: true }));
}`
	isDisplayedJS = `function() {
	if (!this.isConnected) { return false; }
	const style = window.getComputedStyle(this);
	if (style.display === 'none' || style.visibility === 'hidden') { return false; }
	return this.getClientRects().length > 0;
}`
)

type chromeDPElement struct {
	d    *chromeDPDriver
	node *cdp.Node
}

// call runs fn against the live node. Resolving by node ID fails straight
// away once the node has been removed, which surfaces as ErrStaleElement.
func (e *chromeDPElement) call(fn string, res interface{}, args ...interface{}) error {
	return e.d.run(chromedp.ActionFunc(func(ctx context.Context) error {
		obj, err := dom.ResolveNode().WithNodeID(e.node.NodeID).Do(ctx)
		if err != nil {
			return err
		}
		return chromedp.CallFunctionOn(fn, res,
			func(p *runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams {
				return p.WithObjectID(obj.ObjectID)
			}, args...).Do(ctx)
	}))
}

func (e *chromeDPElement) Text() (string, error) {
	var text string
	err := e.call(textJS, &text)
	return strings.TrimSpace(text), err
}

func (e *chromeDPElement) GetAttribute(name string) (string, error) {
	var value string
	err := e.call(attributeJS, &value, name)
	return value, err
}

func (e *chromeDPElement) IsDisplayed() (bool, error) {
	var displayed bool
	err := e.call(isDisplayedJS, &displayed)
	return displayed, err
}

func (e *chromeDPElement) SendKeys(keys string) error {
	return e.d.run(chromedp.KeyEventNode(e.node, keys))
}

func (e *chromeDPElement) Clear() error {
	return e.call(clearJS, nil)
}

func (e *chromeDPElement) Click() error {
	return e.d.run(chromedp.MouseClickNode(e.node))
}

var staleNodeMessages = []string{
	"No node with given id",
	"Could not find node with given id",
	"Node is detached from document",
	"Cannot find context with specified id",
}

func classifyChromeDPError(err error) error {
	if err == nil {
		return nil
	}
	for _, msg := range staleNodeMessages {
		if strings.Contains(err.Error(), msg) {
			return fmt.Errorf("%w: %s", ErrStaleElement, err.Error())
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("browser operation exceeded %v: %w", *opTimeout, err)
	}
	return err
}
