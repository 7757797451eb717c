package instance

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awstools/awstools/internal/awsapi/mock_awsapi"
)

type testReporter struct {
	successes []string
	failures  []string
	notices   []string
	details   []string
}

func (r *testReporter) Successf(format string, args ...interface{}) {
	r.successes = append(r.successes, fmt.Sprintf(format, args...))
}

func (r *testReporter) Failuref(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *testReporter) Noticef(format string, args ...interface{}) {
	r.notices = append(r.notices, fmt.Sprintf(format, args...))
}

func (r *testReporter) Detailf(format string, args ...interface{}) {
	r.details = append(r.details, fmt.Sprintf(format, args...))
}

const testInstanceID = "i-0123456789abcdef0"

func describeOutput(state types.InstanceStateName) *ec2.DescribeInstancesOutput {
	return &ec2.DescribeInstancesOutput{
		Reservations: []types.Reservation{
			{
				Instances: []types.Instance{
					{
						InstanceId: aws.String(testInstanceID),
						State:      &types.InstanceState{Name: state},
					},
				},
			},
		},
	}
}

func Test_Rebooter_Reboot_dryRun(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(describeOutput(types.InstanceStateNameRunning), nil)
	// no RebootInstances expectation: dry run must not mutate

	reporter := &testReporter{}
	rebooter := New(Settings{
		API:      api,
		Reporter: reporter,
		Region:   "us-west-2",
	})

	err := rebooter.Reboot(context.Background(), testInstanceID, true)

	require.NoError(t, err)
	details := strings.Join(reporter.details, "\n")
	assert.Contains(t, details, "DRY RUN: would reboot instance "+testInstanceID)
}

func Test_Rebooter_Reboot_live(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	preCheck := api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(describeOutput(types.InstanceStateNameRunning), nil)
	reboot := api.EXPECT().
		RebootInstances(gomock.Any(), &ec2.RebootInstancesInput{
			InstanceIds: []string{testInstanceID},
		}).
		Return(&ec2.RebootInstancesOutput{}, nil).
		After(preCheck)
	api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(describeOutput(types.InstanceStateNameRunning), nil).
		After(reboot)

	reporter := &testReporter{}
	rebooter := New(Settings{
		API:            api,
		Reporter:       reporter,
		Region:         "eu-west-1",
		Verbose:        true,
		PostCheckDelay: time.Millisecond,
	})

	err := rebooter.Reboot(context.Background(), testInstanceID, false)

	require.NoError(t, err)
	require.Len(t, reporter.successes, 1)
	assert.Contains(t, reporter.successes[0], "Successfully initiated reboot")

	details := strings.Join(reporter.details, "\n")
	assert.Contains(t, details, "CloudTrail")
	assert.Contains(t, details, "eu-west-1")

	// running before and after is inconclusive, not a success
	notices := strings.Join(reporter.notices, "\n")
	assert.Contains(t, notices, "shows 'running' even during a reboot")
}

func Test_Rebooter_Reboot_unexpectedStateWarns(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(describeOutput(types.InstanceStateNameShuttingDown), nil).
		Times(2) // pre-check and post-check
	api.EXPECT().
		RebootInstances(gomock.Any(), gomock.Any()).
		Return(&ec2.RebootInstancesOutput{}, nil)

	reporter := &testReporter{}
	rebooter := New(Settings{
		API:            api,
		Reporter:       reporter,
		Region:         "us-west-2",
		PostCheckDelay: time.Millisecond,
	})

	err := rebooter.Reboot(context.Background(), testInstanceID, false)

	require.NoError(t, err)
	notices := strings.Join(reporter.notices, "\n")
	assert.Contains(t, notices, "may not work as expected")
}

func Test_Rebooter_Reboot_instanceNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(&ec2.DescribeInstancesOutput{}, nil)

	rebooter := New(Settings{
		API:      api,
		Reporter: &testReporter{},
		Region:   "us-west-2",
	})

	err := rebooter.Reboot(context.Background(), testInstanceID, false)

	assert.ErrorIs(t, err, ErrInstanceNotFound)
}

func Test_Rebooter_Reboot_rebootError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	errDenied := errors.New("not authorized")

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstances(gomock.Any(), gomock.Any()).
		Return(describeOutput(types.InstanceStateNameRunning), nil)
	api.EXPECT().
		RebootInstances(gomock.Any(), gomock.Any()).
		Return(nil, errDenied)

	rebooter := New(Settings{
		API:      api,
		Reporter: &testReporter{},
		Region:   "us-west-2",
	})

	err := rebooter.Reboot(context.Background(), testInstanceID, false)

	assert.ErrorIs(t, err, errDenied)
	assert.EqualError(t, err,
		"rebooting instance i-0123456789abcdef0: not authorized")
}
