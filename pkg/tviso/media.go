package tviso

import (
	"context"
	"strconv"
)

// Media endpoints.
const (
	endpointPendingMedias = "user/media/pending/medias"
	endpointBasicInfo     = "media/basic_info"
	endpointFullInfo      = "media/full_info"
)

// MediaService provides media operations for the Tviso API.
type MediaService struct {
	client *Client
}

// GetPendingMedias returns the current user's pending medias.
//
// Requires a user token. Returns ErrMissingUserToken if none is set or
// the API rejects it.
func (m *MediaService) GetPendingMedias(ctx context.Context) (*Response, error) {
	return m.client.Query(ctx, endpointPendingMedias, nil, true)
}

// GetMediaInfo returns metadata for the media identified by id and
// mediaType. With full set the full_info endpoint is used instead of
// basic_info.
//
// Example:
//
//	info, err := client.Media().GetMediaInfo(ctx, 42, 1, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Get("name").String())
func (m *MediaService) GetMediaInfo(ctx context.Context, id, mediaType int, full bool) (*Response, error) {
	endpoint := endpointBasicInfo
	if full {
		endpoint = endpointFullInfo
	}

	return m.client.Query(ctx, endpoint, map[string]string{
		"idm":       strconv.Itoa(id),
		"mediaType": strconv.Itoa(mediaType),
	}, false)
}
