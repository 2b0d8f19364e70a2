package domain

// ImageUpload carries the bytes and client-suggested filename of an uploaded
// image. A nil *ImageUpload means no file was submitted; on edits that also
// means the existing stored reference is kept.
type ImageUpload struct {
	Name string
	Data []byte
}

// ImageStore persists uploaded image bytes and returns a stable reference
// suitable for embedding in rendered pages.
type ImageStore interface {
	Store(data []byte, suggestedName string) (string, error)
}
