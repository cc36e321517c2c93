package planet

import "fmt"

// OutOfRangeError reports a planet index outside [0, Count).
type OutOfRangeError struct {
	Index int
}

func (e OutOfRangeError) Error() string { return fmt.Sprintf("Bad index: %d", e.Index) }

// ExitCode marks the error as fatal for the CLI entry point.
func (e OutOfRangeError) ExitCode() int { return 1 }

// InvalidArgumentError reports a planet index argument that is not an integer.
type InvalidArgumentError struct {
	Arg string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid planet index: %q", e.Arg)
}

// ExitCode marks the error as fatal for the CLI entry point.
func (e InvalidArgumentError) ExitCode() int { return 1 }
