package outline

import "context"

// DefaultPageSize is the page size used when the caller doesn't supply one.
const DefaultPageSize = 25

// collectionKeys are the payload fields probed, in priority order, when a
// paginated response carries its item list inside a mapping instead of as a
// bare list.
var collectionKeys = []string{"items", "documents", "collections", "users", "groups"}

// Paginate drives Request with increasing offsets and returns the flattened
// item list. Pages are fetched strictly sequentially: whether another page
// exists is only known from the previous page's pagination.more flag.
//
// Iteration stops when a page yields no items, when maxResults (if positive)
// is reached, or when the envelope reports no more results. A server that
// always reports more with non-empty pages iterates without bound.
func (c *Client) Paginate(ctx context.Context, endpoint string, params Params, limit, maxResults int) ([]any, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	// Work on a copy so the caller's params survive unmutated.
	page := Params{}
	for k, v := range params {
		page[k] = v
	}

	results := make([]any, 0, limit)
	offset := 0

	for {
		page["limit"] = limit
		page["offset"] = offset

		envelope, err := c.Request(ctx, endpoint, page)
		if err != nil {
			return nil, err
		}

		items := extractItems(envelope["data"])
		if len(items) == 0 {
			break
		}
		results = append(results, items...)

		if maxResults > 0 && len(results) >= maxResults {
			return results[:maxResults], nil
		}
		if !hasMore(envelope) {
			break
		}
		offset += limit
	}

	return results, nil
}

// extractItems pulls the item list out of a payload that may be a bare
// list, a mapping holding the list under a known collection key, or some
// other shape entirely (which ends pagination).
func extractItems(data any) []any {
	switch payload := data.(type) {
	case []any:
		return payload
	case map[string]any:
		for _, key := range collectionKeys {
			if items, ok := payload[key].([]any); ok && len(items) > 0 {
				return items
			}
		}
		return nil
	default:
		return nil
	}
}

func hasMore(envelope Envelope) bool {
	pagination, ok := envelope["pagination"].(map[string]any)
	if !ok {
		return false
	}
	more, _ := pagination["more"].(bool)
	return more
}
