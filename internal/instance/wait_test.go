package instance

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/awstools/awstools/internal/awsapi/mock_awsapi"
)

func statusOutput(status types.SummaryStatus) *ec2.DescribeInstanceStatusOutput {
	return &ec2.DescribeInstanceStatusOutput{
		InstanceStatuses: []types.InstanceStatus{
			{
				InstanceStatus: &types.InstanceStatusSummary{Status: status},
				SystemStatus:   &types.InstanceStatusSummary{Status: status},
			},
		},
	}
}

func Test_Rebooter_WaitStatusOK(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstanceStatus(gomock.Any(), &ec2.DescribeInstanceStatusInput{
			InstanceIds: []string{testInstanceID},
		}, gomock.Any()).
		Return(statusOutput(types.SummaryStatusOk), nil)

	reporter := &testReporter{}
	rebooter := New(Settings{
		API:      api,
		Reporter: reporter,
		Region:   "us-west-2",
	})

	err := rebooter.WaitStatusOK(context.Background(), testInstanceID, time.Minute)

	require.NoError(t, err)
	require.Len(t, reporter.successes, 1)
	assert.Contains(t, reporter.successes[0], "is now OK")
}

func Test_Rebooter_WaitStatusOK_timeout(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	api := mock_awsapi.NewMockEC2API(ctrl)
	api.EXPECT().
		DescribeInstanceStatus(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(statusOutput(types.SummaryStatusInitializing), nil)

	rebooter := New(Settings{
		API:      api,
		Reporter: &testReporter{},
		Region:   "us-west-2",
	})

	// the timeout is below the poll interval so the waiter gives up after
	// the first not-ok observation
	err := rebooter.WaitStatusOK(context.Background(), testInstanceID,
		100*time.Millisecond)

	require.Error(t, err)
	assert.ErrorContains(t, err,
		"waiting for instance "+testInstanceID+" to pass status checks")
	assert.ErrorContains(t, err, "max wait time")
}
