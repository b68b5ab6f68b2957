package contract

import "github.com/mintgate-xyz/go-mintgate/wire"

// Attribute is one key/value pair describing what a call did.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the result of a successful call: attributes describing
// it, and the outbound instructions in emission order. The whole
// message set is handed to the ledger as one atomic batch.
type Response struct {
	Attributes []Attribute `json:"attributes,omitempty"`
	Messages   []wire.Msg  `json:"messages,omitempty"`
}

// NewResponse creates an empty response.
func NewResponse() *Response {
	return &Response{}
}

// AddAttribute appends an attribute and returns the response.
func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}

// AddMessages appends instructions in order and returns the response.
func (r *Response) AddMessages(msgs ...wire.Msg) *Response {
	r.Messages = append(r.Messages, msgs...)
	return r
}

// Attribute returns the value of the first attribute with the given
// key, or "" if absent.
func (r *Response) Attribute(key string) string {
	for _, a := range r.Attributes {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}
