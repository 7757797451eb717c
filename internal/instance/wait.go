package instance

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// WaitStatusOK polls until the instance passes both EC2 status checks,
// checking every 15 seconds for at most the given timeout. Exceeding the
// timeout returns an error for the caller to turn into a non-zero exit.
func (r *Rebooter) WaitStatusOK(ctx context.Context, instanceID string,
	timeout time.Duration) (err error) {
	const pollInterval = 15 * time.Second

	r.reporter.Noticef("Waiting for instance %s to pass status checks...", instanceID)
	r.reporter.Noticef("Will check every %s for up to %s.", pollInterval, timeout)

	waiter := ec2.NewInstanceStatusOkWaiter(r.api,
		func(options *ec2.InstanceStatusOkWaiterOptions) {
			options.MinDelay = pollInterval
			options.MaxDelay = pollInterval
		})

	err = waiter.Wait(ctx, &ec2.DescribeInstanceStatusInput{
		InstanceIds: []string{instanceID},
	}, timeout)
	if err != nil {
		return fmt.Errorf("waiting for instance %s to pass status checks: %w",
			instanceID, err)
	}

	r.reporter.Successf("Instance %s is now OK!", instanceID)
	return nil
}
