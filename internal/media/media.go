// Package media works out how a menu item's picture or video should be shown.
//
// Every function here is total: bad or missing input gives "" or false.
package media

import (
	"net/url"
	"strings"

	"aroma-storefront/internal/domain"
)

type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

type Provider string

const (
	ProviderYouTube Provider = "youtube"
	ProviderVimeo   Provider = "vimeo"
	ProviderFile    Provider = "file"
	ProviderImage   Provider = "image"
	ProviderNone    Provider = "none"
)

var videoExtensions = []string{".mp4", ".webm", ".ogg", ".ogv", ".mov", ".m4v", ".avi", ".mkv"}

// ThumbnailFallbackOrder lists YouTube thumbnail qualities from best to most
// reliable. maxresdefault may be missing for a valid id; the others always exist.
var ThumbnailFallbackOrder = []string{"maxresdefault", "hqdefault", "mqdefault"}

func MediaType(item domain.MenuItem) Kind {
	if strings.TrimSpace(item.Video) != "" {
		return KindVideo
	}
	return KindImage
}

func PrimaryURL(item domain.MenuItem) string {
	if video := strings.TrimSpace(item.Video); video != "" {
		return video
	}
	return strings.TrimSpace(item.Image)
}

func IsVideoURL(raw string) bool {
	if raw == "" {
		return false
	}
	lower := strings.ToLower(raw)
	for _, ext := range videoExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	for _, marker := range []string{"youtube.com", "youtu.be", "vimeo.com", "video", "stream"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func IsYouTubeShort(raw string) bool {
	return strings.Contains(raw, "youtube.com/shorts/") ||
		(strings.Contains(raw, "youtu.be/") && strings.Contains(raw, "shorts"))
}

// ExtractYouTubeID returns the id from watch?v=, /shorts/ or youtu.be/ links.
func ExtractYouTubeID(raw string) string {
	for _, marker := range []string{"watch?v=", "/shorts/", "youtu.be/"} {
		idx := strings.Index(raw, marker)
		if idx < 0 {
			continue
		}
		rest := raw[idx+len(marker):]
		if end := strings.IndexAny(rest, "&?"); end >= 0 {
			rest = rest[:end]
		}
		return rest
	}
	return ""
}

// ExtractVimeoID returns the path segment after vimeo.com/, up to any query.
func ExtractVimeoID(raw string) string {
	_, rest, found := strings.Cut(raw, "vimeo.com/")
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, "?")
	return id
}

func YouTubeThumbnailURL(id, quality string) string {
	if id == "" || quality == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/" + quality + ".jpg"
}

// YouTubeThumbnailCandidates returns thumbnail URLs in ThumbnailFallbackOrder.
func YouTubeThumbnailCandidates(id string) []string {
	if id == "" {
		return nil
	}
	out := make([]string, 0, len(ThumbnailFallbackOrder))
	for _, quality := range ThumbnailFallbackOrder {
		out = append(out, YouTubeThumbnailURL(id, quality))
	}
	return out
}

// Resolver builds player URLs for the storefront's public origin.
type Resolver struct {
	Origin string
}

func NewResolver(origin string) *Resolver {
	return &Resolver{Origin: strings.TrimRight(origin, "/")}
}

func (r *Resolver) YouTubeEmbedURL(raw string) string {
	id := ExtractYouTubeID(raw)
	if id == "" {
		return ""
	}
	params := "autoplay=1&mute=1&origin=" + url.QueryEscape(r.Origin) + "&playsinline=1&controls=1&rel=0"
	if IsYouTubeShort(raw) {
		params += "&start=0&end=60"
	}
	return "https://www.youtube.com/embed/" + url.PathEscape(id) + "?" + params
}

func (r *Resolver) VimeoEmbedURL(raw string) string {
	id := ExtractVimeoID(raw)
	if id == "" {
		return ""
	}
	return "https://player.vimeo.com/video/" + url.PathEscape(id) + "?autoplay=1&muted=1&playsinline=1&controls=1"
}

// Media is everything a client needs to display an item's media.
type Media struct {
	Kind       Kind     `json:"kind"`
	Provider   Provider `json:"provider"`
	URL        string   `json:"url,omitempty"`
	EmbedURL   string   `json:"embedUrl,omitempty"`
	Thumbnails []string `json:"thumbnails,omitempty"`
}

// Resolve picks how item is displayed. A video value that is neither a
// YouTube or Vimeo link nor a video file falls back to the item's image.
func (r *Resolver) Resolve(item domain.MenuItem) Media {
	primary := PrimaryURL(item)
	m := Media{Kind: MediaType(item), URL: primary}

	switch {
	case primary == "":
		m.Provider = ProviderNone
	case m.Kind == KindImage:
		m.Provider = ProviderImage
	case ExtractYouTubeID(primary) != "":
		m.Provider = ProviderYouTube
		m.EmbedURL = r.YouTubeEmbedURL(primary)
		m.Thumbnails = YouTubeThumbnailCandidates(ExtractYouTubeID(primary))
	case ExtractVimeoID(primary) != "":
		m.Provider = ProviderVimeo
		m.EmbedURL = r.VimeoEmbedURL(primary)
	case IsVideoURL(primary):
		m.Provider = ProviderFile
	case strings.TrimSpace(item.Image) != "":
		// Nothing can play the video value, so the picture is shown instead.
		return Media{Kind: KindImage, Provider: ProviderImage, URL: strings.TrimSpace(item.Image)}
	default:
		m.Provider = ProviderNone
	}

	if m.Kind == KindVideo && len(m.Thumbnails) == 0 && item.Image != "" {
		m.Thumbnails = []string{strings.TrimSpace(item.Image)}
	}
	return m
}
