package main

// StreamStartMsg announces the outbound chat request for the wire tab.
type StreamStartMsg struct {
	Request ChatRequest
}

// StreamEventMsg carries one decoded stream event. Status is set for
// thinking events; Diag is set when the event warrants a debug entry.
type StreamEventMsg struct {
	Event  StreamEvent
	Status string
	Diag   string
}

// StreamDoneMsg marks the end of a chat turn. Message is the assistant
// turn that was committed; Err is the underlying transport cause, if any.
type StreamDoneMsg struct {
	Message Message
	Err     error
}

// DiagnosticMsg carries an internal diagnostic event for the debug tab.
type DiagnosticMsg struct {
	Label   string
	Message string
}

// UploadDoneMsg reports completion of a file upload.
type UploadDoneMsg struct {
	Name string
	Err  error
}

// ResetDoneMsg reports completion of a backend memory reset.
type ResetDoneMsg struct {
	Err error
}

// HealthMsg reports the startup backend health probe.
type HealthMsg struct {
	Online bool
	Detail string
}
