package transport

import (
	"context"
	"net/http"

	"github.com/bft-labs/redmine/pkg/codec"
	"github.com/bft-labs/redmine/pkg/communicator"
	"github.com/bft-labs/redmine/pkg/entity"
	"github.com/bft-labs/redmine/pkg/log"
	"github.com/bft-labs/redmine/pkg/uri"
)

const (
	paramLimit  = "limit"
	paramOffset = "offset"
)

// GetObjectsList fetches every T matching params, following limit/offset
// pages until total_count is reached. On success the result is never nil.
//
// The offset advances by the number of items actually returned, so a
// server that caps pages below the requested limit is still walked without
// gaps. An empty page ends the listing even if total_count claims more.
// Any failed page aborts the listing and no partial result is returned.
func GetObjectsList[T any](ctx context.Context, t *Transport, params ...uri.Param) ([]T, error) {
	cfg, err := entity.Lookup[T](t.registry)
	if err != nil {
		return nil, err
	}

	base := uri.Params(params).WithInt(paramLimit, t.objectsPerPage)
	comm := t.communicator()
	result := []T{}
	offset := 0

	for {
		target := t.uris.CollectionURI(cfg.PluralName, base.WithInt(paramOffset, offset))
		t.logger.Debug("fetching page",
			log.String("resource", cfg.PluralName),
			log.Int("offset", offset))

		resp, err := comm.Send(ctx, communicator.Request{Method: http.MethodGet, URI: target})
		if err != nil {
			return nil, err
		}
		items, total, err := codec.DecodeList(resp, cfg.PluralName, cfg.Parser)
		if err != nil {
			return nil, err
		}
		t.logger.Debug("received page",
			log.String("resource", cfg.PluralName),
			log.Int("items", len(items)),
			log.Int("total_count", total))

		if len(items) == 0 {
			break
		}
		result = append(result, items...)
		offset += len(items)
		if offset >= total {
			break
		}
	}
	return result, nil
}
