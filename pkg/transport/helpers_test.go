package transport

import (
	"github.com/bft-labs/redmine/pkg/codec"
	"github.com/bft-labs/redmine/pkg/entity"
)

func codecRoundTrip[T any](cfg entity.Config[T], v T) (T, error) {
	body, err := codec.EncodeSingle(cfg.SingleName, v, cfg.Writer)
	if err != nil {
		var zero T
		return zero, err
	}
	return codec.DecodeSingle(body, cfg.SingleName, cfg.Parser)
}
