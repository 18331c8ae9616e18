package commands

// Process exit statuses.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// ExitStatus documents one process exit status.
type ExitStatus struct {
	Code    int
	Meaning string
}

// ExitStatuses lists every status the CLI exits with.
func ExitStatuses() []ExitStatus {
	return []ExitStatus{
		{ExitOK, "No diagnostics at or above the severity threshold"},
		{ExitIssues, "Lint diagnostics at or above the severity threshold were reported"},
		{ExitError, "Usage, configuration or input error (details on stderr)"},
	}
}

// ExitCode maps the error a command returned to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case IsLintIssues(err):
		return ExitIssues
	default:
		return ExitError
	}
}
