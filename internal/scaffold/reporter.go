package scaffold

// Reporter receives progress while a project is generated.
type Reporter interface {
	// Step announces a new phase, e.g. "Creating package.json...".
	Step(message string)
	// FileCreated is called after each file is written.
	FileCreated(relPath string)
	// Warning reports a non-fatal problem.
	Warning(message string)
}

// nopReporter discards all progress.
type nopReporter struct{}

func (nopReporter) Step(string)        {}
func (nopReporter) FileCreated(string) {}
func (nopReporter) Warning(string)     {}
