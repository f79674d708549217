// Package jsonl writes objects as JSON lines.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/originbyte/ob-sdk-go/internal/models"
	"github.com/originbyte/ob-sdk-go/internal/output"
)

// OutputHandler appends one line per object. Lines already in the file are
// indexed on open so that GetObject and GetMissingObjectIDs see them.
type OutputHandler struct {
	mu      sync.Mutex
	w       *bufio.Writer
	closer  io.Closer
	objects map[string]*models.Object
}

var _ output.OutputHandler = (*OutputHandler)(nil)

// NewOutputHandler writes to w without reading anything back.
func NewOutputHandler(w io.Writer) *OutputHandler {
	h := &OutputHandler{
		w:       bufio.NewWriter(w),
		objects: make(map[string]*models.Object),
	}
	if c, ok := w.(io.Closer); ok && w != os.Stdout {
		h.closer = c
	}
	return h
}

// Open appends to the file at path, creating it if needed. "-" is stdout.
func Open(path string) (*OutputHandler, error) {
	if path == "-" {
		return NewOutputHandler(os.Stdout), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	existing, err := readObjects(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	h := NewOutputHandler(f)
	for _, o := range existing {
		h.index(o)
	}
	return h, nil
}

func readObjects(r io.Reader) ([]*models.Object, error) {
	var objects []*models.Object
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for line := 1; sc.Scan(); line++ {
		if len(sc.Bytes()) == 0 {
			continue
		}
		var o models.Object
		if err := json.Unmarshal(sc.Bytes(), &o); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		objects = append(objects, &o)
	}
	return objects, sc.Err()
}

func (h *OutputHandler) index(o *models.Object) {
	if prev, ok := h.objects[o.ID]; ok && prev.Version > o.Version {
		return
	}
	h.objects[o.ID] = o
}

func (h *OutputHandler) WriteObjects(_ context.Context, objects []*models.Object) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, o := range objects {
		line, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("failed to encode object %s: %w", o.ID, err)
		}
		if _, err := h.w.Write(append(line, '\n')); err != nil {
			return fmt.Errorf("failed to write object %s: %w", o.ID, err)
		}
		h.index(o)
	}
	return h.w.Flush()
}

func (h *OutputHandler) GetObject(_ context.Context, id string) (*models.Object, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	o, ok := h.objects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", output.ErrNotFound, id)
	}
	return o, nil
}

func (h *OutputHandler) GetMissingObjectIDs(_ context.Context, ids []string) ([]string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var missing []string
	for _, id := range ids {
		if _, ok := h.objects[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (h *OutputHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.w.Flush(); err != nil {
		return err
	}
	if h.closer != nil {
		return h.closer.Close()
	}
	return nil
}
