package pos

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
)

// makeFetch 构造一个 3 页、每页 10 条的假数据源，并记录调用次数
func makeFetch(totalPages, pageSize int, calls *int) FetchPageFunc[string] {
	return func(ctx context.Context, page int) ([]string, int, error) {
		*calls++
		if page > totalPages {
			return nil, totalPages, nil
		}
		items := make([]string, 0, pageSize)
		for i := 0; i < pageSize; i++ {
			items = append(items, fmt.Sprintf("p%d-%d", page, i))
		}
		return items, totalPages, nil
	}
}

func TestPagerLoadFirstThenLoadMore(t *testing.T) {
	calls := 0
	p := NewPager(makeFetch(3, 10, &calls))
	ctx := context.Background()

	if err := p.LoadFirst(ctx); err != nil {
		t.Fatalf("LoadFirst: %v", err)
	}
	if p.Len() != 10 || p.Page() != 1 {
		t.Fatalf("第一页后 len=%d page=%d", p.Len(), p.Page())
	}
	if !p.HasMore() {
		t.Fatal("3 页数据加载第 1 页后应还有更多")
	}

	started, err := p.LoadMore(ctx)
	if err != nil || !started {
		t.Fatalf("LoadMore: started=%v err=%v", started, err)
	}
	if p.Len() != 20 || p.Page() != 2 {
		t.Fatalf("第二页后 len=%d page=%d", p.Len(), p.Page())
	}

	// 追加语义：第一页的内容还在开头
	items := p.Items()
	if items[0] != "p1-0" || items[10] != "p2-0" {
		t.Fatalf("追加顺序错误: %s / %s", items[0], items[10])
	}

	if _, err := p.LoadMore(ctx); err != nil {
		t.Fatalf("LoadMore 第三页: %v", err)
	}
	if p.HasMore() {
		t.Fatal("最后一页之后不应再有更多")
	}

	// 没有更多页时 LoadMore 不发请求
	before := calls
	started, err = p.LoadMore(ctx)
	if err != nil || started {
		t.Fatalf("末页后 LoadMore 应直接返回: started=%v err=%v", started, err)
	}
	if calls != before {
		t.Fatalf("末页后不应发起请求, calls %d -> %d", before, calls)
	}
}

func TestPagerLoadFirstReplaces(t *testing.T) {
	calls := 0
	p := NewPager(makeFetch(3, 10, &calls))
	ctx := context.Background()

	_ = p.LoadFirst(ctx)
	_, _ = p.LoadMore(ctx)
	if p.Len() != 20 {
		t.Fatalf("len = %d", p.Len())
	}

	// 重新加载第一页是替换不是追加
	if err := p.LoadFirst(ctx); err != nil {
		t.Fatalf("LoadFirst: %v", err)
	}
	if p.Len() != 10 || p.Page() != 1 {
		t.Fatalf("刷新后 len=%d page=%d", p.Len(), p.Page())
	}
}

func TestPagerFailureKeepsItems(t *testing.T) {
	calls := 0
	fail := false
	inner := makeFetch(3, 10, &calls)
	p := NewPager(func(ctx context.Context, page int) ([]string, int, error) {
		if fail {
			return nil, 0, errors.New("上游挂了")
		}
		return inner(ctx, page)
	})
	ctx := context.Background()

	_ = p.LoadFirst(ctx)
	fail = true

	started, err := p.LoadMore(ctx)
	if !started || err == nil {
		t.Fatalf("失败的 LoadMore: started=%v err=%v", started, err)
	}
	// 失败不回滚已有内容，页码停在原处
	if p.Len() != 10 || p.Page() != 1 {
		t.Fatalf("失败后 len=%d page=%d", p.Len(), p.Page())
	}

	// 恢复后能继续翻页
	fail = false
	if _, err := p.LoadMore(ctx); err != nil {
		t.Fatalf("恢复后 LoadMore: %v", err)
	}
	if p.Len() != 20 {
		t.Fatalf("恢复后 len=%d", p.Len())
	}
}

func TestPagerInFlightGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	p := NewPager(func(ctx context.Context, page int) ([]string, int, error) {
		if page == 2 {
			close(entered)
			<-release
		}
		return []string{"x"}, 3, nil
	})
	ctx := context.Background()
	_ = p.LoadFirst(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = p.LoadMore(ctx)
	}()
	<-entered

	// 第一次 LoadMore 还在途，第二次应直接返回 started=false
	started, err := p.LoadMore(ctx)
	if started || err != nil {
		t.Errorf("在途期间 LoadMore 应被拒绝: started=%v err=%v", started, err)
	}

	close(release)
	wg.Wait()

	if p.Page() != 2 {
		t.Errorf("page = %d, want 2", p.Page())
	}
}
