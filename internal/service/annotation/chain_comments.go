package annotation

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mktbiz-byte/cnec-kr-sub001/internal/domain"
)

// ListChainComments returns the comments of every version in the chain,
// concatenated in version order. Versions are read concurrently.
func (s *Service) ListChainComments(ctx context.Context, chain domain.ChainKey) ([]domain.VersionedAnnotation, error) {
	if err := chain.Validate(); err != nil {
		return nil, err
	}

	versions, err := s.submissions.ListChain(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("list chain: %w", err)
	}

	perVersion := make([][]domain.Annotation, len(versions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(chainReadConcurrency)
	for i, v := range versions {
		g.Go(func() error {
			comments, err := s.annotations.ListBySubmission(gctx, v.ID)
			if err != nil {
				return fmt.Errorf("list comments of version %d: %w", v.Version, err)
			}
			perVersion[i] = comments
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []domain.VersionedAnnotation
	for i, comments := range perVersion {
		for _, c := range comments {
			out = append(out, domain.VersionedAnnotation{Version: versions[i].Version, Annotation: c})
		}
	}
	return out, nil
}
