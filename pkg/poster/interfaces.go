package poster

import "github.com/shouni/memory-poster-kit/pkg/domain"

// PosterGenerator は呼び出し側（CLI や UI 層）が利用する統合窓口です。
type PosterGenerator interface {
	Generate(req domain.PosterRequest) (*domain.PosterResponse, error)
}

var _ PosterGenerator = (*Generator)(nil)
