package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

//go:generate mockgen -destination=mock_awsapi/ec2.go -package=mock_awsapi . EC2API

// EC2API is the subset of the EC2 client the reboot tool needs. The
// DescribeInstanceStatus signature matches ec2.DescribeInstanceStatusAPIClient
// so the instance-status-ok waiter accepts an EC2API directly.
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput,
		optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	RebootInstances(ctx context.Context, params *ec2.RebootInstancesInput,
		optFns ...func(*ec2.Options)) (*ec2.RebootInstancesOutput, error)
	DescribeInstanceStatus(ctx context.Context, params *ec2.DescribeInstanceStatusInput,
		optFns ...func(*ec2.Options)) (*ec2.DescribeInstanceStatusOutput, error)
}

func NewEC2(cfg aws.Config) *ec2.Client {
	return ec2.NewFromConfig(cfg)
}
