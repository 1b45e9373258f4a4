package launch

import "fmt"

// EnvironmentError reports that the resources directory could not be entered.
type EnvironmentError struct {
	Dir string
	Err error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("enter %s: %v", e.Dir, e.Err)
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// LaunchError reports that the interpreter process could not be created.
type LaunchError struct {
	Command Command
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Command, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}
