package trash

import (
	"errors"
	"fmt"
)

var (
	// ErrDisposalFailed is returned when the system trash refused a file
	ErrDisposalFailed = errors.New("failed to move file to trash")

	// ErrPermissionDenied is returned when a restore was blocked by filesystem permissions
	ErrPermissionDenied = errors.New("permission denied")
)

// DisposalError reports the path the trash primitive failed on
type DisposalError struct {
	Path string
	Err  error
}

func (e *DisposalError) Error() string {
	return "dispose " + e.Path + ": " + e.Err.Error()
}

func (e *DisposalError) Unwrap() error {
	return e.Err
}

func (e *DisposalError) Is(target error) bool {
	return target == ErrDisposalFailed
}

// PermissionError reports a restore that the OS did not allow. Hint carries
// the platform-specific remediation shown to the user.
type PermissionError struct {
	Entry  UndoEntry
	Target string
	Err    error
	Hint   string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("restore %s: %v. %s", e.Entry.OriginalPath, e.Err, e.Hint)
}

func (e *PermissionError) Unwrap() error {
	return e.Err
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrPermissionDenied
}

// IsDisposalFailed returns true if the error is ErrDisposalFailed
func IsDisposalFailed(err error) bool {
	return errors.Is(err, ErrDisposalFailed)
}

// IsPermissionDenied returns true if the error is ErrPermissionDenied
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}
