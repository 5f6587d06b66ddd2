package service

import (
	"context"
	"errors"
	"go-link-shortener/internal/app/registry"
	"go-link-shortener/internal/app/types"
	"go-link-shortener/internal/app/utils"
	"golang.org/x/sync/errgroup"
	"log"
	"net"
)

// ErrForbidden is returned for stats requests from outside the trusted subnet.
var ErrForbidden = errors.New("access forbidden")

// LinkRegistry is the storage the service works on.
type LinkRegistry interface {
	// Shorten stores url under a new key.
	Shorten(url string) (uint32, error)
	// Resolve returns the url stored under key.
	Resolve(key uint32) (string, error)
	// Len returns the number of stored links.
	Len() int
}

// Service represents struct for http server.
type Service struct {
	registry LinkRegistry
	network  *net.IPNet
	BaseURL  string
}

func NewService(registry LinkRegistry, network *net.IPNet, baseURL string) *Service {
	return &Service{
		registry: registry,
		network:  network,
		BaseURL:  baseURL,
	}
}

func (s *Service) Shorten(url string) (uint32, error) {
	return s.registry.Shorten(url)
}

func (s *Service) Resolve(key uint32) (string, error) {
	return s.registry.Resolve(key)
}

// ShortURL returns the public short url for key.
func (s *Service) ShortURL(key uint32) string {
	return utils.MakeShortURL(s.BaseURL, key)
}

// ShortenBatch shortens every link concurrently. Order and correlation ids are kept.
// A batch with an empty url is rejected before anything is stored. A collision
// failure under the retry policy can still leave earlier items of the batch stored.
func (s *Service) ShortenBatch(ctx context.Context, links types.RequestBatch) (types.ResponseBatch, error) {
	for _, v := range links {
		if v.OriginalURL == "" {
			return nil, &registry.InvalidInputError{Reason: "URL is empty"}
		}
	}

	response := make(types.ResponseBatch, len(links)) // allocate required capacity for the links
	g, ctx := errgroup.WithContext(ctx)
	for i, v := range links {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			key, err := s.registry.Shorten(v.OriginalURL)
			if err != nil {
				return err
			}
			response[i] = types.ResponseBatchJSON{CorrelationID: v.CorrelationID, ShortURL: s.ShortURL(key)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *Service) GetInternalStats(userIP net.IP) (types.ResponseStatsJSON, error) {
	if s.network == nil || !s.network.Contains(userIP) {
		return types.ResponseStatsJSON{}, ErrForbidden
	}

	response := types.ResponseStatsJSON{URLs: s.registry.Len()}
	log.Printf("GetInternalStats ResponseStatsJSON: %+v", response)

	return response, nil
}

// Ping verifies that the registry can accept requests.
func (s *Service) Ping() bool {
	return s.registry != nil
}
