package find

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// Response is the raw list response handed over by the transport: the body
// bytes plus the full response header set the page headers live in.
type Response struct {
	Body   []byte
	Header http.Header
}

// PageInfo describes the pagination state the server reported via headers.
//
// The protocol cannot distinguish an absent header from a genuine zero: every
// missing or malformed header decodes to 0. Consumers must not read 0 as
// "unknown".
type PageInfo struct {
	Index int
	Size  int
	Count int
	Total int
}

// ListResult is the uniform shape of a decoded list response.
type ListResult[T any] struct {
	Items []T
	Page  PageInfo
	Total int
}

// DecodeList translates a raw list response into a ListResult. Header
// anomalies never fail: missing counts degrade to zero and an absent or null
// body decodes to an empty item list. When a converter is given, the raw item
// sequence goes through its batch transform; otherwise items unmarshal
// directly into T. Malformed JSON and converter failures are the only error
// paths.
func DecodeList[T any](resp *Response, conv Converter[T]) (ListResult[T], error) {
	result := ListResult[T]{Items: []T{}}
	if resp == nil {
		return result, nil
	}

	result.Page = PageInfo{
		Index: intHeader(resp.Header, HeaderPage),
		Size:  intHeader(resp.Header, HeaderPageSize),
		Count: intHeader(resp.Header, HeaderPageCount),
		Total: intHeader(resp.Header, HeaderPageTotalCount),
	}
	result.Total = intHeader(resp.Header, HeaderTotalCount)

	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return result, nil
	}

	if conv == nil {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return result, fmt.Errorf("decode list body: %w", err)
		}
		if items != nil {
			result.Items = items
		}
		return result, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return result, fmt.Errorf("decode list body: %w", err)
	}

	items, err := conv.ToTargetArray(raw)
	if err != nil {
		return result, fmt.Errorf("convert items: %w", err)
	}
	if items != nil {
		result.Items = items
	}
	return result, nil
}

// intHeader reads an optional integer header, degrading to 0 when the header
// is absent, non-numeric or negative.
func intHeader(h http.Header, key string) int {
	v := h.Get(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
