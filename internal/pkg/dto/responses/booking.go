package responses

// Booking renders a persisted booking or a free slot. Free slots carry no id
// and no client, so both fields are omitted when empty.
type Booking struct {
	ID     string `json:"id,omitempty"`
	Client string `json:"client,omitempty"`
	Start  string `json:"start"`
	End    string `json:"end"`
}
