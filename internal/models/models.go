package models

import "encoding/json"

// Object is one on-chain object as written by an output handler.
type Object struct {
	ID      string          `json:"id"`
	Version uint64          `json:"version"`
	Digest  string          `json:"digest,omitempty"`
	Type    string          `json:"type,omitempty"`
	Owner   json.RawMessage `json:"owner,omitempty"`
	// Data is the decoded struct when its type is bound, otherwise the RPC
	// content fields.
	Data json.RawMessage `json:"data"`
	// Decoded reports whether Data came from the bindings.
	Decoded bool `json:"decoded"`
}
