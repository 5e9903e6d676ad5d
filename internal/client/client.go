package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/SWiseG/QuizLoop/internal/app"
	"github.com/SWiseG/QuizLoop/internal/domain"
)

// ErrUnauthenticated is returned when the server rejects the bearer token.
var ErrUnauthenticated = errors.New("unauthenticated")

// TokenSource supplies the bearer token for authenticated calls.
type TokenSource func(ctx context.Context) (string, error)

// Client talks to the quiz backend. Callers decide which errors to surface;
// the sync path deliberately swallows them and keeps local state.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func New(baseURL string, token TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		token:   token,
	}
}

// Questions fetches a randomized localized question set.
func (c *Client) Questions(ctx context.Context, category, locale string, limit int) ([]domain.LocalizedQuestion, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if locale != "" {
		query.Set("locale", locale)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	var questions []domain.LocalizedQuestion
	if err := c.do(ctx, http.MethodGet, "/questions?"+query.Encode(), nil, &questions, false); err != nil {
		return nil, err
	}
	return questions, nil
}

// SubmitRound posts a completed round's result.
func (c *Client) SubmitRound(ctx context.Context, mode string, score, correctCount int) (domain.Round, error) {
	body := map[string]any{"mode": mode, "score": score, "correctCount": correctCount}
	var round domain.Round
	if err := c.do(ctx, http.MethodPost, "/leaderboard/submit", body, &round, true); err != nil {
		return domain.Round{}, err
	}
	return round, nil
}

// Profile fetches the server-stored profile, creating it on first contact.
func (c *Client) Profile(ctx context.Context) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.do(ctx, http.MethodGet, "/user/profile", nil, &profile, true); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// SyncProfile reconciles the local profile against the server's copy and
// returns the merged result.
func (c *Client) SyncProfile(ctx context.Context, req app.SyncRequest) (domain.UserProfile, error) {
	var profile domain.UserProfile
	if err := c.do(ctx, http.MethodPost, "/user/sync", req, &profile, true); err != nil {
		return domain.UserProfile{}, err
	}
	return profile, nil
}

// Leaderboard fetches the ranked entries for a period.
func (c *Client) Leaderboard(ctx context.Context, period string) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, "/leaderboard?period="+url.QueryEscape(period), nil, &entries, false); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		if c.token == nil {
			return ErrUnauthenticated
		}
		token, err := c.token(ctx)
		if err != nil || token == "" {
			return ErrUnauthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthenticated
	case resp.StatusCode != http.StatusOK:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, bytes.TrimSpace(raw))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
