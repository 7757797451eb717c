package instance

import (
	"context"
	"fmt"
	"time"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/awstools/awstools/internal/awsapi"
)

type Reporter interface {
	Successf(format string, args ...interface{})
	Failuref(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Detailf(format string, args ...interface{})
}

type Rebooter struct {
	api            awsapi.EC2API
	reporter       Reporter
	region         string
	verbose        bool
	postCheckDelay time.Duration
}

type Settings struct {
	API      awsapi.EC2API
	Reporter Reporter
	Region   string
	Verbose  bool
	// PostCheckDelay is how long to wait before re-querying the instance
	// state after issuing the reboot. Zero means the 5 second default.
	PostCheckDelay time.Duration
}

func New(settings Settings) *Rebooter {
	const defaultPostCheckDelay = 5 * time.Second
	if settings.PostCheckDelay == 0 {
		settings.PostCheckDelay = defaultPostCheckDelay
	}
	return &Rebooter{
		api:            settings.API,
		reporter:       settings.Reporter,
		region:         settings.Region,
		verbose:        settings.Verbose,
		postCheckDelay: settings.PostCheckDelay,
	}
}

// Reboot checks the instance state, issues the reboot and re-checks the
// state once. A state outside running, stopping or stopped only produces a
// warning since the provider is the final arbiter of validity. In dry run
// mode it stops after the pre-check and reports the reboot it would have
// issued, without calling any mutating endpoint.
func (r *Rebooter) Reboot(ctx context.Context, instanceID string, dryRun bool) (err error) {
	r.reporter.Noticef("Rebooting instance %s in region %s...", instanceID, r.region)

	stateBefore, err := r.describeState(ctx, instanceID)
	if err != nil {
		return err
	}
	r.reporter.Detailf("Instance current state: %s", stateBefore)

	switch stateBefore {
	case types.InstanceStateNameRunning,
		types.InstanceStateNameStopping,
		types.InstanceStateNameStopped:
	default:
		r.reporter.Noticef("Warning: instance is in %q state, the reboot may not work as expected",
			stateBefore)
	}

	if dryRun {
		r.reporter.Detailf("DRY RUN: would reboot instance %s", instanceID)
		return nil
	}

	output, err := r.api.RebootInstances(ctx, &ec2.RebootInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return fmt.Errorf("rebooting instance %s: %w", instanceID, err)
	}

	r.reporter.Successf("Successfully initiated reboot for instance %s", instanceID)

	if r.verbose {
		requestID, ok := awsmiddleware.GetRequestIDMetadata(output.ResultMetadata)
		if !ok {
			requestID = "unknown"
		}
		r.reporter.Detailf("API request ID: %s", requestID)
		r.reporter.Detailf("To verify this API call in CloudTrail:")
		r.reporter.Detailf("  1. Open the CloudTrail console: https://%s.console.aws.amazon.com/cloudtrail/home?region=%s#",
			r.region, r.region)
		r.reporter.Detailf("  2. Select 'Event history'")
		r.reporter.Detailf("  3. Filter by 'Event name' = 'RebootInstances'")
		r.reporter.Detailf("  4. Look for request ID: %s", requestID)
	}

	r.postCheck(ctx, instanceID, stateBefore)
	return nil
}

// postCheck re-queries the instance state once after a short fixed delay.
// The EC2 API usually keeps reporting running throughout a reboot, so a
// running before and after observation is inconclusive rather than a
// success or a failure. Post-check problems never fail the reboot.
func (r *Rebooter) postCheck(ctx context.Context, instanceID string,
	stateBefore types.InstanceStateName) {
	r.reporter.Noticef("Verifying reboot initiated...")

	select {
	case <-ctx.Done():
		return
	case <-time.After(r.postCheckDelay):
	}

	stateAfter, err := r.describeState(ctx, instanceID)
	if err != nil {
		r.reporter.Noticef("Unable to verify post-reboot state: %s", err)
		return
	}

	r.reporter.Detailf("Post-reboot request state: %s", stateAfter)
	if stateBefore == types.InstanceStateNameRunning &&
		stateAfter == types.InstanceStateNameRunning {
		r.reporter.Noticef("Note: the EC2 API shows 'running' even during a reboot.")
		r.reporter.Noticef("The reboot is likely still in progress at the instance level.")
	}
}

func (r *Rebooter) describeState(ctx context.Context, instanceID string) (
	state types.InstanceStateName, err error) {
	output, err := r.api.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return "", fmt.Errorf("describing instance %s: %w", instanceID, err)
	}

	if len(output.Reservations) == 0 || len(output.Reservations[0].Instances) == 0 {
		return "", fmt.Errorf("%w: %s", ErrInstanceNotFound, instanceID)
	}

	inst := output.Reservations[0].Instances[0]
	if inst.State == nil {
		return "", fmt.Errorf("%w: for instance %s", ErrStateMissing, instanceID)
	}
	return inst.State.Name, nil
}
