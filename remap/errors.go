package remap

import (
	"errors"
	"fmt"
)

// The four failure kinds of the pipeline. All are unrecoverable for
// the current run: a partially-filled field must never be persisted.
var (
	ErrConfiguration  = errors.New("configuration error")
	ErrCorrespondence = errors.New("correspondence error")
	ErrGeometry       = errors.New("geometry error")
	ErrTopology       = errors.New("topology error")
)

func configErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

func correspondenceErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrCorrespondence, fmt.Sprintf(format, args...))
}

func geometryErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrGeometry, fmt.Sprintf(format, args...))
}

func topologyErrf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrTopology, fmt.Sprintf(format, args...))
}
