// Package parser turns raw request text into the word co-occurrence
// graph consumed by the ranking computation. It handles request
// validation, tokenization, and window-based edge building.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhrcook/textrank/internal/models"
)

func ParseRequest(data []byte) (*models.RankRequest, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty request body")
	}

	var req models.RankRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request: %w", err)
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("invalid request: missing text field")
	}

	return &req, nil
}
