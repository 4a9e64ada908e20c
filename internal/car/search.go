package car

import (
	"context"
	"fmt"
	"strings"
)

// SearchResult 分页搜索结果。
type SearchResult struct {
	Cars       []Car
	TotalCount int64
	TotalPages int
	Page       int
	PageSize   int
}

// NormalizeQuery 搜索词归一化：去空白、转小写。
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// TotalPages 由总数和页大小计算总页数；无数据时为 0。
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}

// SearchCars 智能搜索：对品牌/型号/车牌/城市做大小写不敏感子串匹配，
// 仅限未删除车辆；空查询等价于列出全部。page 从 1 开始。
func (s *Service) SearchCars(ctx context.Context, query string, page, pageSize int) (*SearchResult, error) {
	if s == nil || s.repo == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	normalized := NormalizeQuery(query)
	offset := (page - 1) * pageSize

	cars, total, err := s.repo.Search(ctx, normalized, offset, pageSize)
	if err != nil {
		return nil, fmt.Errorf("search cars: %w", err)
	}

	return &SearchResult{
		Cars:       cars,
		TotalCount: total,
		TotalPages: TotalPages(total, pageSize),
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
