package jsonrpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrEmptyBatch    = errors.New("empty batch")
	ErrTooManyParams = errors.New("too many positional params")
)

// Decode parses a request body. It returns the calls and whether the body
// was a batch. Only malformed JSON is an error: well-formed entries whose
// members have the wrong type decode to a Request carrying just the id,
// which fails Validate.
func Decode(body []byte) ([]Request, bool, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, false, fmt.Errorf("empty body")
	}

	if body[0] != '[' {
		if !json.Valid(body) {
			var req Request
			return nil, false, json.Unmarshal(body, &req)
		}
		return []Request{decodeEntry(body)}, false, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(body, &raws); err != nil {
		return nil, true, err
	}
	if len(raws) == 0 {
		return nil, true, ErrEmptyBatch
	}

	reqs := make([]Request, len(raws))
	for i, raw := range raws {
		reqs[i] = decodeEntry(raw)
	}
	return reqs, true, nil
}

// decodeEntry decodes one well-formed JSON value into a Request.
func decodeEntry(raw json.RawMessage) Request {
	var req Request
	if err := json.Unmarshal(raw, &req); err == nil {
		return req
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Request{}
	}
	var id any
	if rawID, ok := envelope["id"]; ok && json.Unmarshal(rawID, &id) == nil {
		switch id.(type) {
		case string, float64, nil:
			return Request{ID: rawID}
		}
	}
	return Request{}
}

// BindParams decodes the request params into dst. Positional params are
// matched to names in order; named params are decoded as-is and unknown
// names are rejected.
func (r Request) BindParams(names []string, dst any) error {
	params := bytes.TrimSpace(r.Params)
	if len(params) == 0 || bytes.Equal(params, []byte("null")) {
		params = []byte("{}")
	}

	if params[0] == '[' {
		var positional []json.RawMessage
		if err := json.Unmarshal(params, &positional); err != nil {
			return err
		}
		if len(positional) > len(names) {
			return ErrTooManyParams
		}
		named := make(map[string]json.RawMessage, len(positional))
		for i, p := range positional {
			named[names[i]] = p
		}
		b, err := json.Marshal(named)
		if err != nil {
			return err
		}
		params = b
	}

	dec := json.NewDecoder(bytes.NewReader(params))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
