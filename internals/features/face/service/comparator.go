// file: internals/features/face/service/comparator.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

// Result is the similarity verdict from the external oracle,
// returned to the caller verbatim.
type Result struct {
	Similar    bool    `json:"similar"`
	Similarity float64 `json:"similarity"`
}

// Comparator compares two face representations. The algorithm is opaque
// to this service.
type Comparator interface {
	Compare(ctx context.Context, registered, captured string) (Result, error)
}

/* =========================================================
 * HTTP-backed comparator
 * ========================================================= */

type HTTPComparator struct {
	baseURL string
	client  *http.Client
}

func NewHTTPComparator(baseURL string) *HTTPComparator {
	return &HTTPComparator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type compareRequest struct {
	RegisteredFace string `json:"registered_face"`
	CapturedFace   string `json:"captured_face"`
}

// Compare normalizes oversized snapshots and delegates the verdict to
// the comparison service at FACE_API_URL.
func (hc *HTTPComparator) Compare(ctx context.Context, registered, captured string) (Result, error) {
	payload := compareRequest{
		RegisteredFace: NormalizeSnapshot(registered),
		CapturedFace:   NormalizeSnapshot(captured),
	}
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("encode compare payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, hc.baseURL+"/compare", bytes.NewReader(raw))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("face service unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("face service returned %d", resp.StatusCode)
	}

	var out Result
	if err := sonic.Unmarshal(body, &out); err != nil {
		return Result{}, fmt.Errorf("decode compare response: %w", err)
	}
	return out, nil
}
