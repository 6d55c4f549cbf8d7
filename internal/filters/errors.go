package filters

import (
	"fmt"

	"metric-engine/internal/shared/svcerrors"
)

const (
	codeDuplicateAggregationPolicy = "FLT_1000"
	codeDuplicateName              = "FLT_1001"
	codeDuplicateThresholdPolicy   = "FLT_1002"
)

// errDuplicateAggregationPolicy returns an error when a filter sets both an
// aggregation mask and an aggregation table.
func errDuplicateAggregationPolicy(metricID, filterName string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDuplicateAggregationPolicy,
		fmt.Sprintf("filter %q on metric %q sets both aggregation mask and aggregation table", filterName, metricID), nil)
}

// errDuplicateName returns an error when a filter name is already registered
// under the same metric id.
func errDuplicateName(metricID, filterName string) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeDuplicateName,
		fmt.Sprintf("filter %q already registered on metric %q", filterName, metricID), nil)
}

// errDuplicateThresholdPolicy returns an error when a filter sets both a
// single notice threshold and a threshold sequence.
func errDuplicateThresholdPolicy(metricID, filterName string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeDuplicateThresholdPolicy,
		fmt.Sprintf("filter %q on metric %q sets both a single threshold and a threshold sequence", filterName, metricID), nil)
}
