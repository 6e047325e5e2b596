package ranking

import "errors"

var (
	ErrUnsupportedDialect = errors.New("unsupported ranking dialect")
	ErrMissingDSN         = errors.New("ranking dsn required for this dialect")
)
