package core

// Result is the outcome of one finished run, handed to score reporters.
type Result struct {
	GameID string `json:"game_id"`
	RunID  string `json:"run_id"`
	Score  int    `json:"score"`
	Lines  int    `json:"lines"`
}

// ScoreReporter receives the final result of a run.
// Games call it once per game over; implementations must not block the frame
// for long and handle their own failures.
type ScoreReporter interface {
	ReportScore(r Result)
}

// ReporterFunc adapts a plain function to ScoreReporter.
type ReporterFunc func(r Result)

// ReportScore calls f(r).
func (f ReporterFunc) ReportScore(r Result) {
	f(r)
}

// MultiReporter fans a result out to several reporters in order.
type MultiReporter []ScoreReporter

// ReportScore forwards r to every non-nil reporter.
func (m MultiReporter) ReportScore(r Result) {
	for _, rep := range m {
		if rep != nil {
			rep.ReportScore(r)
		}
	}
}
