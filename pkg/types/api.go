package types

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: detection service not initialized
	Error string `json:"error" example:"detection service not initialized"`
	// Stable service error code, when one applies.
	// example: not_initialized
	ErrorCode string `json:"error_code,omitempty" example:"not_initialized"`
	// HTTP status code.
	// example: 409
	Code int `json:"code" example:"409"`
}

// DetectResponse is returned by POST /v1/detect.
type DetectResponse struct {
	// Frame width in pixels.
	// example: 640
	Width int `json:"width" example:"640"`
	// Frame height in pixels.
	// example: 480
	Height int `json:"height" example:"480"`
	// Foreground pixel fraction in [0,1].
	// example: 0.27
	Confidence float64 `json:"confidence" example:"0.27"`
	// Model invocation latency in milliseconds.
	// example: 31.4
	ProcessingMS float64 `json:"processing_ms" example:"31.4"`
	// Single-channel mask, PNG-encoded and base64'd. 0xFF marks human
	// pixels, 0 background.
	MaskPNG string `json:"mask_png"`
}

// StatusResponse is returned by GET /v1/status.
type StatusResponse struct {
	// Lifecycle state of the detection service.
	// example: ready
	State string `json:"state" example:"ready"`
	// Active compute backend, when a runtime is attached.
	// example: accelerated
	Backend string `json:"backend,omitempty" example:"accelerated"`
	// Total model load attempts since process start.
	// example: 2
	LoadsTotal uint64 `json:"loads_total" example:"2"`
	// Last initialization error observed, if any.
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}

// ControlCommand is the last-write-wins remote-control envelope.
type ControlCommand struct {
	// Server-assigned command id.
	// example: 2b1a4c1e-9f30-4c55-8c5e-1a2b3c4d5e6f
	ID string `json:"id,omitempty"`
	// Action verb understood by the presentation front end.
	// example: next_slide
	Action string `json:"action" example:"next_slide"`
	// Optional free-form payload forwarded as-is.
	Payload map[string]any `json:"payload,omitempty"`
	// Time the command was stored (unix milliseconds).
	// example: 1700000000000
	UpdatedUnixMS int64 `json:"updated_unix_ms,omitempty"`
}
