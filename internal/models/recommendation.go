package models

// RecommendedSong is a read-only projection of a catalog song. It lives only
// for the duration of one request and is never persisted.
type RecommendedSong struct {
	SongID    int64  `json:"song_id"`
	Title     string `json:"title"`
	GenreID   int64  `json:"genre_id"`
	GenreName string `json:"genre_name"`
}

// RecommendedAlbum is a read-only projection of a catalog album.
type RecommendedAlbum struct {
	AlbumID   int64  `json:"album_id"`
	Title     string `json:"title"`
	GenreID   int64  `json:"genre_id"`
	GenreName string `json:"genre_name"`
}

// RecommendationResult is the assembled response for one recommendation
// request. TotalCount always equals len(Songs)+len(Albums).
type RecommendationResult struct {
	UserID     int64              `json:"user_id"`
	TotalCount int                `json:"total_count"`
	Songs      []RecommendedSong  `json:"songs"`
	Albums     []RecommendedAlbum `json:"albums"`
}

// NewRecommendationResult builds a result with the count derived from the
// two lists. Nil slices are normalized so the JSON encoding always carries
// arrays, never null.
func NewRecommendationResult(userID int64, songs []RecommendedSong, albums []RecommendedAlbum) *RecommendationResult {
	if songs == nil {
		songs = []RecommendedSong{}
	}
	if albums == nil {
		albums = []RecommendedAlbum{}
	}
	return &RecommendationResult{
		UserID:     userID,
		TotalCount: len(songs) + len(albums),
		Songs:      songs,
		Albums:     albums,
	}
}
