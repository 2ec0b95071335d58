package youtube

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// youtubeImpl implements IYouTube
type youtubeImpl struct {
	service    *ytapi.Service
	maxResults int64
}

func newYouTubeImpl(ctx context.Context, cfg Config) (*youtubeImpl, error) {
	svc, err := ytapi.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	return &youtubeImpl{service: svc, maxResults: int64(cfg.MaxResults)}, nil
}

func newYouTubeImplFromHTTP(ctx context.Context, httpClient *http.Client, maxResults int) (*youtubeImpl, error) {
	svc, err := ytapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("youtube: failed to create service: %w", err)
	}
	return &youtubeImpl{service: svc, maxResults: int64(maxResults)}, nil
}

// SearchVideos runs a video search via the YouTube Data API
func (y *youtubeImpl) SearchVideos(ctx context.Context, query string) ([]Video, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("youtube: query is required")
	}

	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(y.maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: search failed: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	ids := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, Video{
			Title:     html.UnescapeString(item.Snippet.Title),
			URL:       watchURLPrefix + item.Id.VideoId,
			Channel:   item.Snippet.ChannelTitle,
			Published: item.Snippet.PublishedAt,
		})
		ids = append(ids, item.Id.VideoId)
	}

	if len(ids) == 0 {
		return videos, nil
	}

	// Durations come from a second lookup. A failed lookup degrades the
	// results instead of failing the whole search.
	durations, err := y.lookupDurations(ctx, ids)
	if err == nil {
		for i := range videos {
			videos[i].Duration = durations[ids[i]]
		}
	}

	return videos, nil
}

// lookupDurations fetches contentDetails for the given video IDs and returns
// a videoID -> formatted duration map
func (y *youtubeImpl) lookupDurations(ctx context.Context, ids []string) (map[string]string, error) {
	resp, err := y.service.Videos.List([]string{"contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("youtube: duration lookup failed: %w", err)
	}

	durations := make(map[string]string, len(resp.Items))
	for _, item := range resp.Items {
		if item.ContentDetails == nil {
			continue
		}
		durations[item.Id] = formatDuration(item.ContentDetails.Duration)
	}
	return durations, nil
}

var iso8601Duration = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// formatDuration converts an ISO 8601 duration like "PT1H2M3S" into a
// human readable "1:02:03". Unparseable input yields an empty string.
func formatDuration(iso string) string {
	m := iso8601Duration.FindStringSubmatch(iso)
	if m == nil {
		return ""
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}
