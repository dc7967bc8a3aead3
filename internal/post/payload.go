package post

// PostRequest is the body of POST /posts and PUT /posts/{id}.
// IncludeTimestamps is a pointer so an omitted flag can default to true on
// create but preserve the stored value on update.
type PostRequest struct {
	Title             string  `json:"title"`
	Text              string  `json:"text"`
	ImageURL          *string `json:"image_url"`
	ImageKey          *string `json:"image_key"`
	IncludeTimestamps *bool   `json:"include_timestamps"`
}

type ConfirmResponse struct {
	Message string `json:"message"`
}
