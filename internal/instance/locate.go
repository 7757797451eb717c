// Package instance locates and reboots EC2 instances.
package instance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/awstools/awstools/internal/awsapi"
)

var (
	ErrInstanceNotFound  = errors.New("no instance found")
	ErrMultipleInstances = errors.New("multiple instances found")
	ErrStateMissing      = errors.New("instance state is missing")
)

type Locator struct {
	api awsapi.EC2API
}

func NewLocator(api awsapi.EC2API) *Locator {
	return &Locator{api: api}
}

// FindByNameTag maps a Name tag value to exactly one instance ID,
// considering only instances in the pending, running, stopping or stopped
// states. Zero matches and multiple matches are both failures: the locator
// never guesses among candidates, the operator must pass a specific
// instance ID instead.
func (l *Locator) FindByNameTag(ctx context.Context, name string) (
	instanceID string, err error) {
	input := &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("tag:Name"),
				Values: []string{name},
			},
			{
				Name: aws.String("instance-state-name"),
				Values: []string{
					string(types.InstanceStateNamePending),
					string(types.InstanceStateNameRunning),
					string(types.InstanceStateNameStopping),
					string(types.InstanceStateNameStopped),
				},
			},
		},
	}

	output, err := l.api.DescribeInstances(ctx, input)
	if err != nil {
		return "", fmt.Errorf("describing instances: %w", err)
	}

	var instanceIDs []string
	for _, reservation := range output.Reservations {
		for _, inst := range reservation.Instances {
			if inst.InstanceId != nil {
				instanceIDs = append(instanceIDs, *inst.InstanceId)
			}
		}
	}

	switch len(instanceIDs) {
	case 0:
		return "", fmt.Errorf("%w: with Name tag %q", ErrInstanceNotFound, name)
	case 1:
		return instanceIDs[0], nil
	default:
		return "", fmt.Errorf("%w: with Name tag %q: %s; use --instance-id instead",
			ErrMultipleInstances, name, strings.Join(instanceIDs, ", "))
	}
}
