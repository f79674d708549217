package suiclient

import (
	"encoding/json"
	"fmt"
)

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// ObjectError is the per-object error carried inside an ObjectResponse,
// e.g. `{"code":"notExists","object_id":"0x.."}`.
type ObjectError struct {
	Code          string         `json:"code"`
	ObjectID      string         `json:"object_id,omitempty"`
	ParentID      string         `json:"parent_object_id,omitempty"`
	Version       SequenceNumber `json:"version,omitempty"`
	Digest        string         `json:"digest,omitempty"`
	DisplayReason string         `json:"error,omitempty"`
}

func (e *ObjectError) Error() string {
	if e.ObjectID != "" {
		return fmt.Sprintf("%s (object %s)", e.Code, e.ObjectID)
	}
	return e.Code
}
