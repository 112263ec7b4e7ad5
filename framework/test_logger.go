package framework

// TestLogger receives test lifecycle events as the suite runs. The console
// implementation lives in the main package; a null implementation is used
// when no reporting is wanted (as in the harness's own unit tests).
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, failed bool, debugOutput CapturedOutput)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)                        {}
func (n nullTestLogger) TestError(TestID, error)                   {}
func (n nullTestLogger) TestFinished(TestID, bool, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(TestID, string)                {}

// NullTestLogger returns a TestLogger that ignores all events.
func NullTestLogger() TestLogger { return nullTestLogger{} }
