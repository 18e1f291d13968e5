package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// TypedResponse wraps a response with a decoded body of type T.
type TypedResponse[T any] struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers.
	Headers map[string]string
	// Data is the decoded response body.
	Data T
}

// Get performs a GET request and decodes the JSON response into type T.
func Get[T any](c *Client, ctx context.Context, url string) (*TypedResponse[T], error) {
	resp, err := c.do(ctx, "Get", http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return decode[T](resp, url)
}

// Post performs a POST request with a JSON body and decodes the response into type T.
func Post[T any](c *Client, ctx context.Context, url string, body any) (*TypedResponse[T], error) {
	content, err := JSONContent(body)
	if err != nil {
		return nil, err
	}
	return PostContent[T](c, ctx, url, content)
}

// PostContent performs a POST request with a pre-built body.
func PostContent[T any](c *Client, ctx context.Context, url string, content Content) (*TypedResponse[T], error) {
	return sendTyped[T](c, ctx, "Post", http.MethodPost, url, content)
}

// PostString performs a POST request with a raw body of the given media type.
func PostString[T any](c *Client, ctx context.Context, url, body, contentType string) (*TypedResponse[T], error) {
	return PostContent[T](c, ctx, url, StringContent(body, contentType))
}

// Put performs a PUT request with a JSON body and decodes the response into type T.
func Put[T any](c *Client, ctx context.Context, url string, body any) (*TypedResponse[T], error) {
	content, err := JSONContent(body)
	if err != nil {
		return nil, err
	}
	return PutContent[T](c, ctx, url, content)
}

// PutContent performs a PUT request with a pre-built body.
func PutContent[T any](c *Client, ctx context.Context, url string, content Content) (*TypedResponse[T], error) {
	return sendTyped[T](c, ctx, "Put", http.MethodPut, url, content)
}

// PutString performs a PUT request with a raw body of the given media type.
func PutString[T any](c *Client, ctx context.Context, url, body, contentType string) (*TypedResponse[T], error) {
	return PutContent[T](c, ctx, url, StringContent(body, contentType))
}

// Patch performs a PATCH request with a JSON body and decodes the response into type T.
func Patch[T any](c *Client, ctx context.Context, url string, body any) (*TypedResponse[T], error) {
	content, err := JSONContent(body)
	if err != nil {
		return nil, err
	}
	return PatchContent[T](c, ctx, url, content)
}

// PatchContent performs a PATCH request with a pre-built body.
func PatchContent[T any](c *Client, ctx context.Context, url string, content Content) (*TypedResponse[T], error) {
	return sendTyped[T](c, ctx, "Patch", http.MethodPatch, url, content)
}

// PatchString performs a PATCH request with a raw body of the given media type.
func PatchString[T any](c *Client, ctx context.Context, url, body, contentType string) (*TypedResponse[T], error) {
	return PatchContent[T](c, ctx, url, StringContent(body, contentType))
}

// PatchData performs a PATCH request and discards the response body.
func PatchData(c *Client, ctx context.Context, url string, body any) error {
	content, err := JSONContent(body)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, "PatchData", http.MethodPatch, url, &content)
	return err
}

func sendTyped[T any](c *Client, ctx context.Context, op, method, url string, content Content) (*TypedResponse[T], error) {
	resp, err := c.do(ctx, op, method, url, &content)
	if err != nil {
		return nil, err
	}
	return decode[T](resp, url)
}

// decode unmarshals a 2xx body. An empty body yields the zero value.
func decode[T any](resp *response, url string) (*TypedResponse[T], error) {
	var data T
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &data); err != nil {
			return nil, fmt.Errorf("httpclient: decode response from '%s': %w", url, err)
		}
	}
	return &TypedResponse[T]{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Data:       data,
	}, nil
}
