package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/refledger/pkg/clients"
)

//go:generate mockgen -destination=mock_profile.go -package=profile . Names

// Names resolves user ids to display names. Unknown ids are left out.
type Names interface {
	DisplayNames(ctx context.Context, ids []int) (map[int]string, error)
}

type profileDTO struct {
	ID          int    `json:"id"`
	DisplayName string `json:"displayName"`
}

// Lookup asks the profile service for display names and fills whatever it
// could not answer from the local user store.
type Lookup struct {
	url      string
	client   clients.HTTPClientI
	fallback Names
}

func New(url string, client clients.HTTPClientI, fallback Names) *Lookup {
	return &Lookup{
		url:      strings.TrimRight(url, "/"),
		client:   client,
		fallback: fallback,
	}
}

func (l *Lookup) DisplayNames(ctx context.Context, ids []int) (map[int]string, error) {
	names := make(map[int]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	if l.url != "" && l.client != nil {
		remote, err := l.fetch(ctx, ids)
		if err != nil {
			zap.L().Warn("profile lookup failed, using local names", zap.Error(err))
		}
		for id, name := range remote {
			names[id] = name
		}
	}

	var missing []int
	for _, id := range ids {
		if _, ok := names[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 || l.fallback == nil {
		return names, nil
	}

	local, err := l.fallback.DisplayNames(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, name := range local {
		names[id] = name
	}
	return names, nil
}

func (l *Lookup) fetch(ctx context.Context, ids []int) (map[int]string, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	url := l.url + "/api/profiles?ids=" + strings.Join(parts, ",")

	statusCode, body, err := l.client.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	if statusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", statusCode)
	}

	var profiles []profileDTO
	if err := json.Unmarshal(body, &profiles); err != nil {
		return nil, fmt.Errorf("failed to parse response body: %w", err)
	}
	names := make(map[int]string, len(profiles))
	for _, p := range profiles {
		if p.DisplayName != "" {
			names[p.ID] = p.DisplayName
		}
	}
	return names, nil
}
