package response

// Envelope wraps every successful API response. Admin clients accept both a
// bare array and this envelope; the server always sends the envelope.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}
