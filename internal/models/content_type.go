package models

// ContentType identifies which kind of catalog content a request targets.
// It is a closed enumeration; anything outside the three constants is invalid.
type ContentType string

const (
	ContentTypeSong  ContentType = "song"
	ContentTypeAlbum ContentType = "album"
	ContentTypeBoth  ContentType = "both"
)

// Valid reports whether t is one of the known content types.
func (t ContentType) Valid() bool {
	switch t {
	case ContentTypeSong, ContentTypeAlbum, ContentTypeBoth:
		return true
	}
	return false
}

// IncludesSongs reports whether song candidates should be generated for t.
func (t ContentType) IncludesSongs() bool {
	return t == ContentTypeSong || t == ContentTypeBoth
}

// IncludesAlbums reports whether album candidates should be generated for t.
func (t ContentType) IncludesAlbums() bool {
	return t == ContentTypeAlbum || t == ContentTypeBoth
}
