package platform

// StyleConfig tunes generated comment text.
type StyleConfig struct {
	Tone      string `json:"tone"`
	Language  string `json:"language"`
	MaxLength int    `json:"max_length"`
	Persona   string `json:"persona,omitempty"`
}

// PublishError is a failed publish attempt surfaced by the bridge, carrying
// the upstream reason verbatim.
type PublishError struct {
	Reason string
}

func (e *PublishError) Error() string {
	return "publish failed: " + e.Reason
}
