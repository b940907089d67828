package health

// Response reports service liveness
type Response struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version,omitempty"`
}

// PingResponse is the /ping reply
type PingResponse struct {
	Message string `json:"message"`
}
