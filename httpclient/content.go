package httpclient

import (
	"encoding/json"
	"fmt"
	"mime"
)

// Content is a request body that has already been serialized.
type Content struct {
	// Body is sent as UTF-8 text.
	Body string
	// ContentType is the declared media type of Body.
	ContentType string
}

// JSONContent serializes v as the body of a JSON request.
func JSONContent(v any) (Content, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Content{}, fmt.Errorf("httpclient: encode body: %w", err)
	}
	return Content{Body: string(data), ContentType: MediaTypeJSON}, nil
}

// StringContent pairs a raw body with its media type.
func StringContent(body, contentType string) Content {
	return Content{Body: body, ContentType: contentType}
}

// mediaType returns the Content-Type header value with a UTF-8 charset
// unless the caller declared one.
func (c Content) mediaType() string {
	ct := c.ContentType
	if ct == "" {
		ct = "text/plain"
	}
	mt, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return ct
	}
	if _, ok := params["charset"]; !ok {
		params["charset"] = "utf-8"
	}
	return mime.FormatMediaType(mt, params)
}
