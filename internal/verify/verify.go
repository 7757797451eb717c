// Package verify queries submitted DNS records against a resolver and
// reports what is currently visible. Results are informational only: a
// mismatch right after an upload usually just means propagation lag, so
// verification never changes counters or exit codes.
package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/miekg/dns"

	"github.com/awstools/awstools/internal/records"
)

//go:generate mockgen -destination=mock_verify/verify.go -package=mock_verify . Client

// Client is implemented by *dns.Client.
type Client interface {
	ExchangeContext(ctx context.Context, m *dns.Msg, a string) (
		r *dns.Msg, rtt time.Duration, err error)
}

type Reporter interface {
	Successf(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Detailf(format string, args ...interface{})
}

type Checker struct {
	client   Client
	resolver string
	reporter Reporter
}

type Settings struct {
	Client   Client
	Reporter Reporter
	// Resolver is the address of the DNS resolver to query, defaulting
	// to Cloudflare's public resolver.
	Resolver string
}

func NewChecker(settings Settings) *Checker {
	if settings.Resolver == "" {
		settings.Resolver = "1.1.1.1:53"
	}
	if settings.Client == nil {
		settings.Client = &dns.Client{}
	}
	return &Checker{
		client:   settings.Client,
		resolver: settings.Resolver,
		reporter: settings.Reporter,
	}
}

// Check queries each record once and reports observed against expected
// values.
func (c *Checker) Check(ctx context.Context, submitted []records.Record) {
	if len(submitted) == 0 {
		return
	}
	c.reporter.Noticef("Verifying %d record(s) against %s...", len(submitted), c.resolver)
	for _, record := range submitted {
		c.check(ctx, record)
	}
}

func (c *Checker) check(ctx context.Context, record records.Record) {
	questionType, ok := dns.StringToType[string(record.Type)]
	if !ok {
		return
	}

	message := new(dns.Msg)
	message.SetQuestion(record.FQDN(), questionType)

	response, _, err := c.client.ExchangeContext(ctx, message, c.resolver)
	if err != nil {
		c.reporter.Noticef("Cannot verify %s %s: %s", record.Type, record.FQDN(), err)
		return
	}

	if response == nil || len(response.Answer) == 0 {
		c.reporter.Noticef("%s %s is not yet visible at %s, likely propagation lag",
			record.Type, record.FQDN(), c.resolver)
		return
	}

	expected := strings.TrimSuffix(record.Value, ".")
	for _, rr := range response.Answer {
		observed := answerValue(rr)
		if strings.TrimSuffix(observed, ".") == expected {
			c.reporter.Successf("%s %s resolves to the uploaded value", record.Type, record.FQDN())
			return
		}
	}

	c.reporter.Noticef("%s %s does not show the uploaded value yet: observed %s",
		record.Type, record.FQDN(), strings.Join(answerValues(response.Answer), ", "))
}

func answerValues(answers []dns.RR) (values []string) {
	values = make([]string, len(answers))
	for i, rr := range answers {
		values[i] = answerValue(rr)
	}
	return values
}

func answerValue(rr dns.RR) string {
	switch record := rr.(type) {
	case *dns.A:
		return record.A.String()
	case *dns.AAAA:
		return record.AAAA.String()
	case *dns.CNAME:
		return record.Target
	case *dns.MX:
		return fmt.Sprintf("%d %s", record.Preference, record.Mx)
	case *dns.NS:
		return record.Ns
	case *dns.PTR:
		return record.Ptr
	case *dns.TXT:
		return strings.Join(record.Txt, "")
	default:
		return rr.String()
	}
}
