package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2/clientcredentials"

	"tunerec/internal/models"
)

// CatalogClientConfig holds connection settings for the catalog service.
// ClientID/ClientSecret/TokenURL are optional; when all three are set the
// client authenticates with OAuth2 client credentials.
type CatalogClientConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	TokenURL     string
	Timeout      time.Duration
}

// catalogClient implements CatalogService against the catalog's REST API
type catalogClient struct {
	client *resty.Client
}

// NewCatalogClient creates a resty-backed catalog client
func NewCatalogClient(cfg CatalogClientConfig) CatalogService {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	var client *resty.Client
	if cfg.ClientID != "" && cfg.ClientSecret != "" && cfg.TokenURL != "" {
		tokenSource := &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		client = resty.NewWithClient(tokenSource.Client(context.Background()))
	} else {
		client = resty.New()
	}

	client.
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second)

	return &catalogClient{client: client}
}

// GenreExists reports whether the catalog knows the genre
func (c *catalogClient) GenreExists(ctx context.Context, genreID int64) bool {
	var exists bool
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&exists).
		Get(fmt.Sprintf("/genres/%d/exists", genreID))

	if err != nil {
		slog.Warn("Catalog genre existence check failed", "genreID", genreID, "error", err)
		return false
	}
	if resp.StatusCode() != http.StatusOK {
		slog.Warn("Catalog genre existence check returned error status",
			"genreID", genreID, "status", resp.StatusCode())
		return false
	}

	return exists
}

// GenreName returns the display name of a genre
func (c *catalogClient) GenreName(ctx context.Context, genreID int64) (string, bool) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/genres/%d/name", genreID))

	if err != nil {
		slog.Warn("Catalog genre name lookup failed", "genreID", genreID, "error", err)
		return "", false
	}
	if resp.StatusCode() != http.StatusOK {
		return "", false
	}

	// The endpoint returns a bare JSON string; tolerate an unquoted body too.
	body := resp.Body()
	var name string
	if err := json.Unmarshal(body, &name); err != nil {
		name = string(body)
	}
	if name == "" {
		return "", false
	}
	return name, true
}

// ContentByGenre fetches items of one type for a genre, in catalog order
func (c *catalogClient) ContentByGenre(ctx context.Context, genreID int64, contentType models.ContentType, limit int) []CatalogItem {
	path := "/songs"
	idKey := "song_id"
	if contentType == models.ContentTypeAlbum {
		path = "/albums"
		idKey = "album_id"
	}

	var raw []map[string]any
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"genre_id": strconv.FormatInt(genreID, 10),
			"limit":    strconv.Itoa(limit),
		}).
		SetResult(&raw).
		Get(path)

	if err != nil {
		slog.Warn("Catalog content fetch failed",
			"genreID", genreID, "contentType", contentType, "error", err)
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		slog.Warn("Catalog content fetch returned error status",
			"genreID", genreID, "contentType", contentType, "status", resp.StatusCode())
		return nil
	}

	items := make([]CatalogItem, 0, len(raw))
	for _, doc := range raw {
		id, ok := coerceID(doc[idKey])
		if !ok {
			id, ok = coerceID(doc["id"])
		}
		if !ok {
			slog.Warn("Skipping catalog item with unparseable id",
				"genreID", genreID, "contentType", contentType, "value", doc[idKey])
			continue
		}

		itemGenreID, ok := coerceID(doc["genre_id"])
		if !ok {
			itemGenreID = genreID
		}

		title, _ := doc["title"].(string)
		genreName, _ := doc["genre_name"].(string)

		items = append(items, CatalogItem{
			ID:        id,
			Title:     title,
			GenreID:   itemGenreID,
			GenreName: genreName,
		})
	}

	return items
}

// OwnedContentIDs returns the ids of content the user already owns
func (c *catalogClient) OwnedContentIDs(ctx context.Context, userID int64, contentType models.ContentType) map[int64]struct{} {
	segment := "songs"
	if contentType == models.ContentTypeAlbum {
		segment = "albums"
	}

	var raw []any
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&raw).
		Get(fmt.Sprintf("/users/%d/%s/ids", userID, segment))

	if err != nil {
		slog.Warn("Catalog owned ids fetch failed",
			"userID", userID, "contentType", contentType, "error", err)
		return map[int64]struct{}{}
	}
	if resp.StatusCode() != http.StatusOK {
		slog.Warn("Catalog owned ids fetch returned error status",
			"userID", userID, "contentType", contentType, "status", resp.StatusCode())
		return map[int64]struct{}{}
	}

	ids := make(map[int64]struct{}, len(raw))
	for _, value := range raw {
		if id, ok := coerceID(value); ok {
			ids[id] = struct{}{}
		}
	}

	return ids
}

// coerceID normalizes the numeric encodings catalog payloads arrive with
// (JSON numbers decode as float64, some upstream services send strings).
// Unparseable input fails soft.
func coerceID(value any) (int64, bool) {
	switch v := value.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		id, err := v.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	}
	return 0, false
}
