// Package zones resolves human supplied zone names to Route 53
// hosted zone IDs, caching results for the length of one run.
package zones

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/route53"

	"github.com/awstools/awstools/internal/awsapi"
)

var ErrZoneNotFound = errors.New("hosted zone not found")

type Resolver struct {
	api   awsapi.Route53API
	cache map[string]string // zone name to hosted zone ID
}

func NewResolver(api awsapi.Route53API) *Resolver {
	return &Resolver{
		api:   api,
		cache: make(map[string]string),
	}
}

// Resolve finds the hosted zone ID for the given zone name, trying the
// name both with and without its trailing dot. An exact name match wins;
// failing that, a loose substring containment scan is attempted in both
// directions. The fallback is best-effort and can pick the wrong zone when
// zone names overlap, so callers must not treat the ID as authoritative.
func (r *Resolver) Resolve(ctx context.Context, zoneName string) (
	hostedZoneID string, err error) {
	if hostedZoneID, ok := r.cache[zoneName]; ok {
		return hostedZoneID, nil
	}

	candidates := candidateNames(zoneName)

	output, err := r.api.ListHostedZones(ctx, &route53.ListHostedZonesInput{})
	if err != nil {
		return "", fmt.Errorf("listing hosted zones: %w", err)
	}

	for _, zone := range output.HostedZones {
		if zone.Name == nil || zone.Id == nil {
			continue
		}
		for _, candidate := range candidates {
			if *zone.Name == candidate {
				hostedZoneID = trimZoneIDPrefix(*zone.Id)
				r.cache[zoneName] = hostedZoneID
				return hostedZoneID, nil
			}
		}
	}

	for _, zone := range output.HostedZones {
		if zone.Name == nil || zone.Id == nil {
			continue
		}
		for _, candidate := range candidates {
			if strings.Contains(*zone.Name, candidate) ||
				strings.Contains(candidate, *zone.Name) {
				hostedZoneID = trimZoneIDPrefix(*zone.Id)
				r.cache[zoneName] = hostedZoneID
				return hostedZoneID, nil
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrZoneNotFound, zoneName)
}

// candidateNames returns the zone name with and without its trailing dot,
// dotted form first since that is how Route 53 stores zone names.
func candidateNames(zoneName string) []string {
	if strings.HasSuffix(zoneName, ".") {
		return []string{zoneName, strings.TrimSuffix(zoneName, ".")}
	}
	return []string{zoneName + ".", zoneName}
}

// trimZoneIDPrefix strips the "/hostedzone/" path prefix from a zone ID.
func trimZoneIDPrefix(id string) string {
	parts := strings.Split(id, "/")
	return parts[len(parts)-1]
}
