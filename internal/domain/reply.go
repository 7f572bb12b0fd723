package domain

// Action is a directive the browser widget executes on the caller's behalf,
// e.g. schedule_meeting or show_projects.
type Action struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Reply is the normalized assistant output for one turn. Message is always
// non-empty after normalization; Actions and Suggestions may be empty but
// are never nil.
type Reply struct {
	Message     string   `json:"message"`
	Actions     []Action `json:"actions"`
	Suggestions []string `json:"suggestions"`
}
