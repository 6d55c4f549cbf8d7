package ingestors

import (
	"fmt"

	"metric-engine/internal/shared/svcerrors"
)

// ObservationService errors
const (
	codeValidationFailed = "OBS_1000"

	codeInternalObservationPublishFailed = "OBS_9000"
)

// errValidationFailed returns an error for observation batch validation failures.
func errValidationFailed(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeValidationFailed, msg, cause)
}

// errInternalObservationPublishFailed returns an error when publishing to the
// observation stream fails.
func errInternalObservationPublishFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalObservationPublishFailed, fmt.Errorf("observationPublishFailed: %w", cause))
}
