package mcp

// Status is the health document served on /healthz.
type Status struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Status  string   `json:"status"`
	Tools   []string `json:"tools"`
}

// Status reports the server identity and its registered tools.
func (s *Server) Status() Status {
	return Status{
		Name:    s.name,
		Version: s.version,
		Status:  "ok",
		Tools:   s.ToolNames(),
	}
}
