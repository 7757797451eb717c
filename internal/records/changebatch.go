package records

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
)

// BuildChangeBatch maps one record to a change batch containing a single
// UPSERT over a single resource record. TXT values are wrapped in one pair
// of double quotes per the Route 53 convention, every other type is passed
// through verbatim. Value syntax is not validated here, the provider is the
// sole validator. The function is pure: same record, same batch.
func BuildChangeBatch(record Record) *types.ChangeBatch {
	value := record.Value
	if record.Type == TypeTXT {
		value = `"` + value + `"`
	}

	return &types.ChangeBatch{
		Changes: []types.Change{
			{
				Action: types.ChangeActionUpsert,
				ResourceRecordSet: &types.ResourceRecordSet{
					Name: aws.String(record.FQDN()),
					Type: types.RRType(record.Type),
					TTL:  aws.Int64(record.TTL),
					ResourceRecords: []types.ResourceRecord{
						{Value: aws.String(value)},
					},
				},
			},
		},
	}
}

// BuildChangeInput wraps the change batch for a record into the request
// targeting the given hosted zone.
func BuildChangeInput(hostedZoneID string, record Record) *route53.ChangeResourceRecordSetsInput {
	return &route53.ChangeResourceRecordSetsInput{
		HostedZoneId: aws.String(hostedZoneID),
		ChangeBatch:  BuildChangeBatch(record),
	}
}
