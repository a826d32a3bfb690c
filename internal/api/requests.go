// Ludomood - Mood-Driven Board Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ludomood

package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/tomtom215/ludomood/internal/validation"
)

const (
	maxBodyBytes = 64 << 10

	// MaxBatchMoods caps one batch analysis request.
	MaxBatchMoods = 20
)

// RecommendRequest is the body of POST /api/v1/recommend.
type RecommendRequest struct {
	Mood        string `json:"mood" validate:"max=2000"`
	Count       int    `json:"count" validate:"gte=0,lte=100"`
	LibraryOnly bool   `json:"library_only"`
	GameIDs     []int  `json:"game_ids" validate:"omitempty,max=1000,dive,gt=0"`
}

// AnalyzeRequest is the body of POST /api/v1/analyze/mood.
type AnalyzeRequest struct {
	Mood string `json:"mood" validate:"max=2000"`
}

// BatchAnalyzeRequest is the body of POST /api/v1/analyze/batch.
type BatchAnalyzeRequest struct {
	Moods []string `json:"moods" validate:"required,min=1,max=20,dive,max=2000"`
}

// TagSearchRequest is the body of POST /api/v1/search/tags.
type TagSearchRequest struct {
	Tags  []string `json:"tags" validate:"required,min=1,max=20,dive,notblank"`
	Limit int      `json:"limit" validate:"gte=0,lte=100"`
}

var errEmptyBody = errors.New("request body is empty")

// decodeBody reads a bounded JSON body into v and validates it. The
// returned APIError is ready to send.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) *APIError {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			err = errEmptyBody
		}
		return &APIError{
			Code:    ErrCodeValidation,
			Message: "Invalid JSON body",
			Details: map[string]any{"reason": err.Error()},
		}
	}

	if verr := validation.ValidateStruct(v); verr != nil {
		apiErr := verr.ToAPIError()
		return &APIError{Code: apiErr.Code, Message: apiErr.Message, Details: apiErr.Details}
	}
	return nil
}

// queryInt reads a non-negative integer query parameter.
func queryInt(r *http.Request, key string, def, limit int) (int, *APIError) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 || n > limit {
		return 0, &APIError{
			Code:    ErrCodeValidation,
			Message: key + " must be an integer in [0, " + strconv.Itoa(limit) + "]",
			Details: map[string]any{"field": key, "value": raw},
		}
	}
	return n, nil
}
