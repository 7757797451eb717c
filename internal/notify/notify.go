// Package notify pushes run outcomes to the operator's notification
// services through shoutrrr. With no address configured the client is a
// no-op, so callers can notify unconditionally.
package notify

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/router"
)

type Erroer interface {
	Error(s string)
}

type Settings struct {
	Addresses    []string
	DefaultTitle string
	Logger       Erroer
}

type Client struct {
	serviceRouter *router.ServiceRouter
	serviceNames  []string
	logger        Erroer
}

func New(settings Settings) (client *Client, err error) {
	client = &Client{
		logger: settings.Logger,
	}
	if len(settings.Addresses) == 0 {
		return client, nil
	}

	addresses := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i], err = addDefaultTitle(address, settings.DefaultTitle)
		if err != nil {
			return nil, fmt.Errorf("address %q: %w", address, err)
		}
	}

	client.serviceRouter, err = shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	client.serviceNames = make([]string, len(addresses))
	for i, address := range addresses {
		client.serviceNames[i] = strings.Split(address, ":")[0]
	}

	return client, nil
}

// Notify sends the message to every configured service, best effort:
// delivery errors are logged, not returned.
func (c *Client) Notify(message string) {
	if c.serviceRouter == nil {
		return
	}
	errs := c.serviceRouter.Send(message, nil)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

func addDefaultTitle(address, defaultTitle string) (updatedAddress string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address as url: %w", err)
	}

	urlValues := u.Query()
	if urlValues.Has("title") {
		return address, nil
	}

	urlValues.Set("title", defaultTitle)
	u.RawQuery = urlValues.Encode()
	return u.String(), nil
}
