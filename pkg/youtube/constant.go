package youtube

const (
	// DefaultMaxResults is the number of videos returned per search
	DefaultMaxResults = 3

	// watchURLPrefix builds a playable link from a video ID
	watchURLPrefix = "https://www.youtube.com/watch?v="
)
