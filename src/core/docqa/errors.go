package docqa

import "fmt"

// FetchError reports a document that could not be downloaded: unreachable
// URL, non-PDF content or an oversized payload. It is fatal to the request.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch document %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ExtractionError reports a PDF whose text could not be extracted. It is
// fatal to the request.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract document text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
