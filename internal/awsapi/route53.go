package awsapi

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
)

//go:generate mockgen -destination=mock_awsapi/route53.go -package=mock_awsapi . Route53API

// Route53API is the subset of the Route 53 client the DNS uploader needs.
type Route53API interface {
	ListHostedZones(ctx context.Context, params *route53.ListHostedZonesInput,
		optFns ...func(*route53.Options)) (*route53.ListHostedZonesOutput, error)
	ChangeResourceRecordSets(ctx context.Context, params *route53.ChangeResourceRecordSetsInput,
		optFns ...func(*route53.Options)) (*route53.ChangeResourceRecordSetsOutput, error)
}

func NewRoute53(cfg aws.Config) *route53.Client {
	return route53.NewFromConfig(cfg)
}
