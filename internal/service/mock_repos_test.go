package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
	"github.com/muhamadnurizanfakir/school-timetable/pkg/timeutil"
	"go.uber.org/zap"
)

// ── 内存版仓储，供 Service 层测试使用 ──

type mockPersonRepo struct {
	mu      sync.Mutex
	persons map[string]model.Person
	err     error // 注入查询错误
}

func newMockPersonRepo() *mockPersonRepo {
	return &mockPersonRepo{persons: make(map[string]model.Person)}
}

func (m *mockPersonRepo) add(p model.Person) model.Person {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.PersonID == "" {
		p.PersonID = uuid.NewString()
	}
	m.persons[p.PersonID] = p
	return p
}

func (m *mockPersonRepo) List(_ context.Context) ([]model.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]model.Person, 0, len(m.persons))
	for _, p := range m.persons {
		result = append(result, p)
	}
	// 按姓名升序，与数据库排序一致
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Name < result[i].Name {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *mockPersonRepo) GetByID(_ context.Context, id string) (*model.Person, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.persons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

type mockSlotRepo struct {
	mu    sync.Mutex
	slots []model.TimetableSlot // 保持插入顺序
	err   error
}

func newMockSlotRepo() *mockSlotRepo {
	return &mockSlotRepo{}
}

func (m *mockSlotRepo) Create(_ context.Context, slot *model.TimetableSlot) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if slot.SlotID == "" {
		slot.SlotID = uuid.NewString()
	}
	m.slots = append(m.slots, *slot)
	return nil
}

func (m *mockSlotRepo) GetByID(_ context.Context, id string) (*model.TimetableSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.slots {
		if s.SlotID == id {
			copied := s
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) ListByPerson(_ context.Context, personID string) ([]model.TimetableSlot, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]model.TimetableSlot, 0)
	for _, s := range m.slots {
		if s.PersonID == personID {
			result = append(result, s)
		}
	}
	// 模拟数据库 (day, start, 插入序) 排序
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if slotLess(result[j], result[i]) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func slotLess(a, b model.TimetableSlot) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return a.DayOfWeek < b.DayOfWeek
	}
	return timeutil.MinutesOf(a.StartTime) < timeutil.MinutesOf(b.StartTime)
}

func (m *mockSlotRepo) Update(_ context.Context, slot *model.TimetableSlot) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.slots {
		if s.SlotID == slot.SlotID {
			m.slots[i] = *slot
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockSlotRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.slots {
		if s.SlotID == id {
			m.slots = append(m.slots[:i], m.slots[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockAdminRepo struct {
	admins map[string]model.Admin // key: adminID
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{admins: make(map[string]model.Admin)}
}

func (m *mockAdminRepo) add(a model.Admin) model.Admin {
	if a.AdminID == "" {
		a.AdminID = uuid.NewString()
	}
	m.admins[a.AdminID] = a
	return a
}

func (m *mockAdminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range m.admins {
		if a.Email == email {
			copied := a
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (*model.Admin, error) {
	a, ok := m.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

// mockPublisher 记录广播出去的变更事件
type mockPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

type publishedEvent struct {
	personID string
	payload  []byte
}

func (m *mockPublisher) PublishChange(_ context.Context, personID string, payload []byte) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, publishedEvent{personID: personID, payload: payload})
	return nil
}

// newTestRepos 组装内存仓储聚合
func newTestRepos() (*repository.Repository, *mockPersonRepo, *mockSlotRepo, *mockAdminRepo) {
	personRepo := newMockPersonRepo()
	slotRepo := newMockSlotRepo()
	adminRepo := newMockAdminRepo()
	repo := &repository.Repository{
		Person: personRepo,
		Slot:   slotRepo,
		Admin:  adminRepo,
	}
	return repo, personRepo, slotRepo, adminRepo
}

func testLogger() *zap.Logger { return zap.NewNop() }
