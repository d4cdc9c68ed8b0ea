package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pos_admin_v1/internal/service"
)

// SessionTask 过期会话清理任务
// 过期会话在校验路径上是懒删除，这里兜底做周期性批量清理
type SessionTask struct {
	AuthService *service.AuthService
	Cron        *cron.Cron
}

func NewSessionTask(authService *service.AuthService) *SessionTask {
	return &SessionTask{
		AuthService: authService,
		Cron:        cron.New(cron.WithSeconds()), // 支持秒级控制
	}
}

// Start 启动定时任务
func (t *SessionTask) Start() {
	// 每 10 分钟清一次
	_, err := t.Cron.AddFunc("0 */10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		t.sweepJob(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动会话清理任务: %v", err)
	}

	t.Cron.Start()
	log.Println("会话清理任务已启动 (每10分钟执行一次)")
}

// Stop 停止任务
func (t *SessionTask) Stop() {
	t.Cron.Stop()
}

func (t *SessionTask) sweepJob(ctx context.Context) {
	count, err := t.AuthService.SweepExpired(ctx)
	if err != nil {
		log.Printf("[Cron] 过期会话清理失败: %v", err)
		return
	}
	if count > 0 {
		log.Printf("[Cron] 已清理 %d 条过期会话", count)
	}
}
