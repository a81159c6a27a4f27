package larcv

import (
	"errors"
	"fmt"
)

// ErrNoActivity marks an event with no wire signal anywhere in the TPC.
var ErrNoActivity = errors.New("no activity inside the TPC")

// ErrNoViableAPA marks an event where no candidate APA could be scored.
var ErrNoViableAPA = errors.New("could not find good APA")

// ErrROINotFound marks a plane without a single sample above the ADC cut.
// The whole event is dropped, not just the plane.
type ErrROINotFound struct {
	APA   int
	Plane int
}

func (e *ErrROINotFound) Error() string {
	return fmt.Sprintf("could not find good ROI in APA %d plane %d", e.APA, e.Plane)
}

// ErrInvariantViolation reports a padded region whose size is not divisible
// by its block size. It means the padding logic itself is wrong, so the run
// must stop instead of writing a malformed image.
type ErrInvariantViolation struct {
	Dimension string
	APA       int
	Plane     int
	Count     int
	Order     int
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("%s count %d in APA %d plane %d not divisible by %d after padding",
		e.Dimension, e.Count, e.APA, e.Plane, e.Order)
}

// IsSkippable reports whether the error only invalidates the current event.
// Anything else aborts the run.
func IsSkippable(err error) bool {
	var roiErr *ErrROINotFound
	return errors.Is(err, ErrNoActivity) || errors.Is(err, ErrNoViableAPA) || errors.As(err, &roiErr)
}

func IsFatal(err error) bool {
	var invErr *ErrInvariantViolation
	return errors.As(err, &invErr)
}

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrCreateGroup represents an error when creating a group.
type ErrCreateGroup struct {
	GroupName string
	Err       error
}

func (e *ErrCreateGroup) Error() string {
	return fmt.Sprintf("error creating group %q: %v", e.GroupName, e.Err)
}

// ErrCreateTable represents an error when creating a table.
type ErrCreateTable struct {
	TableName string
	Err       error
}

func (e *ErrCreateTable) Error() string {
	return fmt.Sprintf("error creating table %q: %v", e.TableName, e.Err)
}
