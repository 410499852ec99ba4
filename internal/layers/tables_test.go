// Where: internal/layers/tables_test.go
// What: Tests for the static region snapshot.
// Why: Keep the table accessors honest about membership and ordering.
package layers

import (
	"sort"
	"testing"

	"github.com/awslabs/serverless-plugin-lambda-insights/internal/descriptor"
)

func TestLatestARNMembership(t *testing.T) {
	if _, ok := LatestARN("us-east-1", descriptor.ArchX8664); !ok {
		t.Fatalf("us-east-1 missing from the x86_64 snapshot")
	}
	if _, ok := LatestARN("not-a-region-1", descriptor.ArchX8664); ok {
		t.Fatalf("unexpected entry for an unknown region")
	}
	// The Arm64 snapshot is a strict subset of the x86_64 one.
	if _, ok := LatestARN("ap-northeast-3", descriptor.ArchARM64); ok {
		t.Fatalf("ap-northeast-3 should not be in the arm64 snapshot")
	}
}

func TestRegionsSortedAndConsistent(t *testing.T) {
	for _, arch := range []string{descriptor.ArchX8664, descriptor.ArchARM64} {
		regions := Regions(arch)
		if len(regions) == 0 {
			t.Fatalf("empty snapshot for %s", arch)
		}
		if !sort.StringsAreSorted(regions) {
			t.Fatalf("regions not sorted for %s: %v", arch, regions)
		}
		for _, region := range regions {
			if _, ok := LatestARN(region, arch); !ok {
				t.Fatalf("listed region %s has no ARN for %s", region, arch)
			}
		}
	}
}

func TestArm64RegionsAreInX8664Snapshot(t *testing.T) {
	for _, region := range Regions(descriptor.ArchARM64) {
		if _, ok := LatestARN(region, descriptor.ArchX8664); !ok {
			t.Fatalf("arm64 region %s missing from the x86_64 snapshot", region)
		}
	}
}
