package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records one model invocation. Task distinguishes intent
// classification from defense drafting so a slow defend task does not
// hide a slow classify in the log.
type CallEvent struct {
	Task      TaskType
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

func (e CallEvent) status() string {
	if e.Success {
		return "ok"
	}
	return "err:" + e.ErrorCode
}

// Observer receives call events. The client reports every Generate
// outcome exactly once, success or failure.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one line per call to w. Wired up when
// SHELFWISE_LLM_LOG_CALLS is set, for debugging a local Ollama setup.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	fmt.Fprintf(o.w, "[%s] llm_call task=%s model=%s latency_ms=%d status=%s\n",
		time.Now().UTC().Format(time.RFC3339), event.Task, event.Model, event.LatencyMs, event.status())
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
