package core

import "context"

// Request is a fully assembled outgoing HTTP request. The URL is absolute
// and already carries any query string; the signature covers these exact
// bytes, so nothing downstream may mutate them.
type Request struct {
	// Method is the uppercase HTTP method token.
	Method string
	// URL is the absolute target URL, exactly as signed.
	URL string
	// Headers are attached verbatim to the outgoing request.
	Headers map[string]string
	// Body is the serialized JSON payload, or nil when the request
	// carries no body. A nil body and an empty JSON object are distinct.
	Body []byte
}

// NewRequest creates a Request for the given method and absolute URL.
func NewRequest(method, url string) *Request {
	return &Request{
		Method:  method,
		URL:     url,
		Headers: make(map[string]string),
	}
}

// SetHeader sets a header and returns the request for chaining.
func (r *Request) SetHeader(key, value string) *Request {
	r.Headers[key] = value
	return r
}

// SetBody attaches serialized body bytes and returns the request for chaining.
func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

// Response is the raw venue reply: status, headers and body, uninterpreted.
type Response struct {
	// StatusCode is the HTTP status code returned by the server.
	StatusCode int
	// Headers contains the response headers as key-value pairs.
	Headers map[string]string
	// Body contains the raw response body bytes.
	Body []byte
}

// IsSuccess returns true if the status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport sends a fully built HTTP request and returns the raw response.
// Implementations must transmit the request's URL and body byte-for-byte;
// the Authorization signature was computed over them. Errors returned here
// are network-level failures; non-2xx responses are returned as a Response.
type Transport interface {
	RoundTrip(ctx context.Context, req *Request) (*Response, error)
}
