package model

import "time"

// ImageSourceKind discriminates where a photo's image lives.
type ImageSourceKind string

const (
	ImageSourceURL  ImageSourceKind = "url"  // external image URL
	ImageSourceFile ImageSourceKind = "file" // uploaded file in object storage
)

// ImageSource is the tagged variant behind a Photo: exactly one of an
// external URL or an object storage path.
type ImageSource struct {
	Kind ImageSourceKind
	URL  string // set when Kind == ImageSourceURL
	Path string // set when Kind == ImageSourceFile
}

// Photo belongs to exactly one Post. The two nullable columns are an
// either/or pair; use Source to get the resolved variant.
type Photo struct {
	ID          string    `db:"id"`
	PostID      string    `db:"post_id"`
	ImageURL    *string   `db:"image_url"`
	StoragePath *string   `db:"storage_path"`
	Timestamp   time.Time `db:"timestamp"`
}

// Source resolves the image variant. An external URL wins when both columns
// are somehow set; ok is false when neither is.
func (p *Photo) Source() (ImageSource, bool) {
	if p.ImageURL != nil && *p.ImageURL != "" {
		return ImageSource{Kind: ImageSourceURL, URL: *p.ImageURL}, true
	}
	if p.StoragePath != nil && *p.StoragePath != "" {
		return ImageSource{Kind: ImageSourceFile, Path: *p.StoragePath}, true
	}
	return ImageSource{}, false
}
