package service

import (
	"go.uber.org/zap"

	"github.com/muhamadnurizanfakir/school-timetable/config"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/jwt"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth      AuthService
	Person    PersonService
	Slot      SlotService
	Timetable TimetableService
	Export    ExportService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil：黑名单与变更广播降级停用，其余功能不受影响。
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	var publisher ChangePublisher
	if rdb != nil {
		publisher = rdb
	}

	return &Service{
		Auth:      NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Person:    NewPersonService(repo, logger),
		Slot:      NewSlotService(repo, publisher, logger),
		Timetable: NewTimetableService(cfg, repo, logger),
		Export:    NewExportService(cfg, repo, logger),
	}
}
