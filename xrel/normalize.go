package xrel

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
)

// decodeResponse turns a completed HTTP response into either a decoded
// payload (written into out) or a *ClientError. It is the single path every
// endpoint response goes through.
//
// The xREL service is known to return 2xx status codes for some error
// conditions, so a nominally successful body is additionally sniffed for an
// error-shaped payload before it is decoded against the expected shape.
// The rate-limit tracker is updated first, on success and failure alike.
func decodeResponse(statusCode int, header http.Header, body []byte, format Format, out any, tracker *RateLimitTracker) error {
	tracker.record(statusCode, header)

	switch statusCode {
	case http.StatusCreated, http.StatusAccepted, http.StatusNoContent:
		// Success without a meaningful body. Ignore the body even if present.
		return nil
	}

	if statusCode >= 200 && statusCode < 300 {
		if api := sniffError(body, format); api != nil {
			return newAPIError(api, statusCode)
		}
		if out == nil {
			return nil
		}
		if err := unmarshalBody(body, format, out); err != nil {
			return newDecodeError(err, statusCode)
		}
		return nil
	}

	// Failure status. The body usually carries a structured error payload,
	// but not always.
	var api APIError
	if err := unmarshalBody(body, format, &api); err != nil || api.empty() {
		return newStatusError(statusCode)
	}
	return newAPIError(&api, statusCode)
}

// sniffError inspects a success-status body for an error payload and returns
// it if present, nil otherwise. A body that is not even parseable is not an
// error payload; shape mismatches are reported by the decode step instead.
func sniffError(body []byte, format Format) *APIError {
	switch format {
	case FormatXML:
		return sniffErrorXML(body)
	default:
		return sniffErrorJSON(body)
	}
}

func sniffErrorJSON(body []byte) *APIError {
	var probe struct {
		Code json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err != nil || len(probe.Code) == 0 {
		return nil
	}
	var api APIError
	if err := json.Unmarshal(body, &api); err != nil {
		return nil
	}
	if api.empty() {
		return nil
	}
	return &api
}

func sniffErrorXML(body []byte) *APIError {
	dec := xml.NewDecoder(bytes.NewReader(body))
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "error" {
			return nil
		}
		var api APIError
		if err := dec.DecodeElement(&api, &start); err != nil || api.empty() {
			return nil
		}
		return &api
	}
}

func unmarshalBody(body []byte, format Format, out any) error {
	switch format {
	case FormatXML:
		return xml.Unmarshal(body, out)
	default:
		return json.Unmarshal(body, out)
	}
}

// readBody drains a response body, transparently inflating the content
// encodings the client advertises. Go's transport already handles gzip when
// it negotiated the encoding itself; this covers explicit Content-Encoding
// values and rejects anything the client never asked for.
func readBody(resp *http.Response) ([]byte, error) {
	reader, err := contentReader(resp)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(reader)
}

func contentReader(resp *http.Response) (io.Reader, error) {
	switch enc := resp.Header.Get("Content-Encoding"); enc {
	case "", "identity":
		return resp.Body, nil
	case "gzip":
		return gzip.NewReader(resp.Body)
	case "deflate":
		return flate.NewReader(resp.Body), nil
	default:
		// Covers both unknown encodings and stacked ones ("gzip, deflate"),
		// neither of which the client ever asks for.
		return nil, fmt.Errorf("unsupported content encoding %q", enc)
	}
}
