package records

import (
	"errors"
	"fmt"
	"strings"
)

// Type is a DNS record type accepted by the uploader.
type Type string

const (
	TypeA     Type = "A"
	TypeAAAA  Type = "AAAA"
	TypeCNAME Type = "CNAME"
	TypeMX    Type = "MX"
	TypeNS    Type = "NS"
	TypePTR   Type = "PTR"
	TypeSOA   Type = "SOA"
	TypeSRV   Type = "SRV"
	TypeTXT   Type = "TXT"
)

var ErrTypeUnsupported = errors.New("record type is not supported")

func ParseType(s string) (recordType Type, err error) {
	recordType = Type(strings.ToUpper(strings.TrimSpace(s)))
	switch recordType {
	case TypeA, TypeAAAA, TypeCNAME, TypeMX, TypeNS,
		TypePTR, TypeSOA, TypeSRV, TypeTXT:
		return recordType, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTypeUnsupported, s)
	}
}

// Record is one DNS record request, built from a single CSV row
// and consumed immediately.
type Record struct {
	Env   string
	Zone  string
	Type  Type
	Name  string
	Value string
	TTL   int64
}

// FQDN joins the record name with the zone name, without appending
// the zone again when the name already ends with it, and guarantees
// the trailing dot the provider expects.
func (r Record) FQDN() string {
	name := strings.TrimSuffix(r.Name, ".")
	zone := strings.TrimSuffix(r.Zone, ".")
	if !strings.HasSuffix(name, zone) {
		name = name + "." + zone
	}
	return name + "."
}
