// Package upload drives the bulk upload of DNS records from a CSV file
// to Route 53, one row at a time in file order.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/awstools/awstools/internal/awsapi"
	"github.com/awstools/awstools/internal/csvsource"
	"github.com/awstools/awstools/internal/records"
	"github.com/awstools/awstools/internal/report"
	"github.com/awstools/awstools/internal/zones"
)

// Summary aggregates row outcomes over one run.
type Summary struct {
	Succeeded int
	Failed    int
	Skipped   int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d successful, %d failed, %d skipped",
		s.Succeeded, s.Failed, s.Skipped)
}

type Reporter interface {
	Successf(format string, args ...interface{})
	Failuref(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Detailf(format string, args ...interface{})
}

type Runner struct {
	api      awsapi.Route53API
	resolver *zones.Resolver
	reporter Reporter
	rowDelay time.Duration
}

type Settings struct {
	API      awsapi.Route53API
	Resolver *zones.Resolver
	Reporter Reporter
	RowDelay time.Duration
}

func NewRunner(settings Settings) *Runner {
	return &Runner{
		api:      settings.API,
		resolver: settings.Resolver,
		reporter: settings.Reporter,
		rowDelay: settings.RowDelay,
	}
}

// Run processes every row of the file in order. Row failures are isolated:
// a malformed row, an unresolvable zone or a rejected submission marks that
// row failed and the run continues. Rows with an unsupported record type
// are counted as skipped. A row is never retried. The only error returned
// is context cancellation; everything else ends up in the summary.
func (r *Runner) Run(ctx context.Context, file *csvsource.File, dryRun bool) (
	summary Summary, submitted []records.Record, err error) {
	for {
		if ctx.Err() != nil {
			return summary, submitted, ctx.Err()
		}

		line, record, err := file.Next()
		switch {
		case errors.Is(err, io.EOF):
			return summary, submitted, nil
		case errors.Is(err, records.ErrTypeUnsupported):
			r.reporter.Noticef("Skipping row %d: %s", line, err)
			summary.Skipped++
			continue
		case err != nil:
			r.reporter.Failuref("Error processing row %d: %s", line, err)
			summary.Failed++
			continue
		}

		r.reporter.Noticef("Processing row %d: %s %s %s %s %s %d",
			line, record.Env, record.Zone, record.Type,
			record.Name, record.Value, record.TTL)

		hostedZoneID, err := r.resolver.Resolve(ctx, record.Zone)
		if err != nil {
			r.reporter.Failuref("Error resolving hosted zone for row %d: %s", line, err)
			summary.Failed++
			continue
		}
		r.reporter.Detailf("Found hosted zone ID %s for %s", hostedZoneID, record.Zone)

		if dryRun {
			batch := records.BuildChangeBatch(record)
			r.reporter.Detailf("DRY RUN: would apply change:\n%s", report.JSON(batch))
			summary.Succeeded++
			continue
		}

		err = r.submit(ctx, hostedZoneID, record)
		if err != nil {
			r.reporter.Failuref("Error uploading record %s: %s", record.FQDN(), err)
			summary.Failed++
		} else {
			summary.Succeeded++
			submitted = append(submitted, record)
		}

		// fixed delay between live submissions to stay under the
		// Route 53 API rate limit
		select {
		case <-ctx.Done():
			return summary, submitted, ctx.Err()
		case <-time.After(r.rowDelay):
		}
	}
}

func (r *Runner) submit(ctx context.Context, hostedZoneID string,
	record records.Record) (err error) {
	input := records.BuildChangeInput(hostedZoneID, record)
	output, err := r.api.ChangeResourceRecordSets(ctx, input)
	if err != nil {
		return fmt.Errorf("changing resource record sets: %w", err)
	}

	changeID := "unknown"
	if output.ChangeInfo != nil && output.ChangeInfo.Id != nil {
		changeID = *output.ChangeInfo.Id
	}
	r.reporter.Successf("Successfully submitted change, change ID: %s", changeID)
	return nil
}
