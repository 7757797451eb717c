package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseType(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		recordType Type
		errWrapped error
		errMessage string
	}{
		"cname": {
			s:          "CNAME",
			recordType: TypeCNAME,
		},
		"lowercase": {
			s:          "txt",
			recordType: TypeTXT,
		},
		"surrounding_spaces": {
			s:          " A ",
			recordType: TypeA,
		},
		"soa": {
			s:          "SOA",
			recordType: TypeSOA,
		},
		"bogus": {
			s:          "BOGUS",
			errWrapped: ErrTypeUnsupported,
			errMessage: `record type is not supported: "BOGUS"`,
		},
		"empty": {
			s:          "",
			errWrapped: ErrTypeUnsupported,
			errMessage: `record type is not supported: ""`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			recordType, err := ParseType(testCase.s)

			assert.Equal(t, testCase.recordType, recordType)
			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
			}
		})
	}
}

func Test_Record_FQDN(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		name string
		zone string
		fqdn string
	}{
		"name_qualified_against_zone": {
			name: "www",
			zone: "example.com",
			fqdn: "www.example.com.",
		},
		"name_already_ends_with_zone": {
			name: "www.example.com",
			zone: "example.com",
			fqdn: "www.example.com.",
		},
		"name_with_trailing_dot": {
			name: "www.example.com.",
			zone: "example.com",
			fqdn: "www.example.com.",
		},
		"zone_with_trailing_dot": {
			name: "www",
			zone: "example.com.",
			fqdn: "www.example.com.",
		},
		"name_equals_zone": {
			name: "example.com",
			zone: "example.com",
			fqdn: "example.com.",
		},
		"underscore_name": {
			name: "_verification",
			zone: "example.com",
			fqdn: "_verification.example.com.",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			record := Record{
				Name: testCase.name,
				Zone: testCase.zone,
			}

			assert.Equal(t, testCase.fqdn, record.FQDN())
		})
	}
}
