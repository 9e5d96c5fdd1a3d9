package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhamadnurizanfakir/school-timetable/internal/dto"
	"github.com/muhamadnurizanfakir/school-timetable/internal/model"
	"github.com/muhamadnurizanfakir/school-timetable/internal/repository"
)

var ErrPersonNotFound = errors.New("学生不存在")

// PersonService 学生档案业务接口
type PersonService interface {
	// ListPersons 返回全部学生，按姓名升序
	ListPersons(ctx context.Context) ([]dto.PersonResponse, error)
	GetPerson(ctx context.Context, id string) (*dto.PersonResponse, error)
}

type personService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPersonService 创建 PersonService 实例
func NewPersonService(repo *repository.Repository, logger *zap.Logger) PersonService {
	return &personService{repo: repo, logger: logger}
}

func (s *personService) ListPersons(ctx context.Context) ([]dto.PersonResponse, error) {
	persons, err := s.repo.Person.List(ctx)
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PersonResponse, 0, len(persons))
	for _, p := range persons {
		result = append(result, toPersonResponse(p))
	}
	return result, nil
}

func (s *personService) GetPerson(ctx context.Context, id string) (*dto.PersonResponse, error) {
	person, err := s.repo.Person.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("查询学生失败", zap.Error(err))
		return nil, err
	}
	resp := toPersonResponse(*person)
	return &resp, nil
}

func toPersonResponse(p model.Person) dto.PersonResponse {
	createdAt := p.CreatedAt
	return dto.PersonResponse{
		ID:          p.PersonID,
		Name:        p.Name,
		Description: p.Description,
		LogoURL:     p.LogoURL,
		CreatedAt:   &createdAt,
	}
}
