package pos

import (
	"context"
	"sync"
)

// 增量分页加载器
// 对应旧版前端的"滚动到底加载下一页"：第一页替换、后续页追加，
// hasMore = page < totalPages，loading 标志防止同一时刻重复拉取。
// 跨页出现重复元素时原样追加，不做去重（与上游行为保持一致）。

// FetchPageFunc 拉取第 page 页，返回本页元素和总页数
type FetchPageFunc[T any] func(ctx context.Context, page int) ([]T, int, error)

// Pager 增量分页加载器
type Pager[T any] struct {
	fetch FetchPageFunc[T]

	mu         sync.Mutex
	items      []T
	page       int // 已加载到的页码，0 表示还没加载过
	totalPages int
	hasMore    bool
	loading    bool
}

// NewPager 创建加载器，pageSize 由 fetch 闭包自带
func NewPager[T any](fetch FetchPageFunc[T]) *Pager[T] {
	return &Pager[T]{
		fetch:   fetch,
		hasMore: true,
	}
}

// LoadFirst 加载第一页，替换已有内容
func (p *Pager[T]) LoadFirst(ctx context.Context) error {
	return p.load(ctx, 1, false)
}

// LoadMore 追加下一页
// 返回值 started=false 表示没有发起拉取（没有更多页，或已有一次在途）
func (p *Pager[T]) LoadMore(ctx context.Context) (started bool, err error) {
	p.mu.Lock()
	if !p.hasMore || p.loading {
		p.mu.Unlock()
		return false, nil
	}
	next := p.page + 1
	p.mu.Unlock()

	return true, p.load(ctx, next, true)
}

func (p *Pager[T]) load(ctx context.Context, page int, appendMode bool) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return nil
	}
	p.loading = true
	p.mu.Unlock()

	items, totalPages, err := p.fetch(ctx, page)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		// 拉取失败不改变已有内容，列表停在当前位置
		return err
	}

	if appendMode {
		p.items = append(p.items, items...)
	} else {
		p.items = items
	}
	p.page = page
	p.totalPages = totalPages
	p.hasMore = page < totalPages
	return nil
}

// Items 当前已加载的全部元素 (副本)
func (p *Pager[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]T, len(p.items))
	copy(out, p.items)
	return out
}

// Len 当前元素个数
func (p *Pager[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// HasMore 是否还有下一页
func (p *Pager[T]) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Page 已加载到的页码
func (p *Pager[T]) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}
