package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"pos_admin_v1/internal/service"
)

// ReportTask 报表缓存预热任务
// 上游报表接口慢，后台定时预热，仪表盘打开时大概率直接命中缓存
type ReportTask struct {
	ReportService *service.ReportService
	Cron          *cron.Cron
}

func NewReportTask(reportService *service.ReportService) *ReportTask {
	return &ReportTask{
		ReportService: reportService,
		Cron:          cron.New(cron.WithSeconds()),
	}
}

// Start 启动定时任务
func (t *ReportTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		log.Println("[Task] 服务启动，正在预热报表缓存...")
		t.ReportService.Warm(ctx)
	}()

	// 缓存 TTL 3 分钟，每 2 分钟预热一轮保证热数据不断档
	_, err := t.Cron.AddFunc("0 */2 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		t.ReportService.Warm(ctx)
	})
	if err != nil {
		log.Fatalf("无法启动报表预热任务: %v", err)
	}

	t.Cron.Start()
	log.Println("报表预热任务已启动 (每2分钟执行一次)")
}

// Stop 停止任务
func (t *ReportTask) Stop() {
	t.Cron.Stop()
}
