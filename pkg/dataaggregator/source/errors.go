package source

import "errors"

// UnsupportedSourceError is returned by a source that cannot answer a query,
// letting the aggregator move on to the next one.
var UnsupportedSourceError = errors.New("Unsupported source for lookup")
