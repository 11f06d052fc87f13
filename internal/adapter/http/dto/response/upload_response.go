package response

// UploadResponse references a stored asset. The field names match what the
// admin upload adapter expects: `url` is mandatory, `public_id` is the
// deletion handle.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}
